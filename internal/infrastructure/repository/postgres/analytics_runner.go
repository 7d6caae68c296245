package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/analytics"
)

// AnalyticsRunner executes catalog queries and returns rows in select-list
// order.
type AnalyticsRunner struct {
	db *sqlx.DB
}

func NewAnalyticsRunner(db *sqlx.DB) *AnalyticsRunner {
	return &AnalyticsRunner{db: db}
}

func (r *AnalyticsRunner) Run(ctx context.Context, query string, args ...any) (analytics.Result, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return analytics.Result{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return analytics.Result{}, fmt.Errorf("read result columns: %w", err)
	}

	out := analytics.Result{Columns: columns, Rows: make([][]any, 0)}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return analytics.Result{}, fmt.Errorf("scan result row: %w", err)
		}
		for i := range values {
			values[i] = normalizeScanValue(values[i])
		}
		out.Rows = append(out.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return analytics.Result{}, err
	}

	return out, nil
}

// Explain plans query without executing it.
func (r *AnalyticsRunner) Explain(ctx context.Context, query string, args ...any) error {
	rows, err := r.db.QueryxContext(ctx, "EXPLAIN "+query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
	}
	return rows.Err()
}
