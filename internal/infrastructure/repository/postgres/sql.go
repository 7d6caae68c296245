package postgres

import (
	"database/sql"
	"fmt"
	"strings"
)

// ErrRowNotFound marks a write that matched no row.
var ErrRowNotFound = sql.ErrNoRows

func ensureAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s id=%d rows affected: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s id=%d: %w", op, id, ErrRowNotFound)
	}
	return nil
}

func nullableString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// normalizeScanValue turns driver byte slices into text so results encode as
// strings rather than base64.
func normalizeScanValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
