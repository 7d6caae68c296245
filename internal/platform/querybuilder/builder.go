package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// binder collects positional arguments and hands out $n placeholders.
type binder struct {
	args []any
}

func (b *binder) bind(value any) string {
	b.args = append(b.args, value)
	return "$" + strconv.Itoa(len(b.args))
}

// expand replaces each ? in expr with the next placeholder. Surplus ? marks
// are kept verbatim.
func (b *binder) expand(expr string, values []any) string {
	if len(values) == 0 {
		return expr
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(values) {
			out.WriteString(b.bind(values[next]))
			next++
			continue
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}

type Condition interface {
	writeTo(buf *strings.Builder, b *binder)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) writeTo(buf *strings.Builder, b *binder) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(b.bind(c.value))
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) writeTo(buf *strings.Builder, b *binder) {
	if len(c.values) == 0 {
		buf.WriteString("1=0")
		return
	}

	buf.WriteString(c.column)
	buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(b.bind(v))
	}
	buf.WriteString(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) writeTo(buf *strings.Builder, _ *binder) {
	buf.WriteString(c.column)
	buf.WriteString(" IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr is a raw condition whose ? marks bind args in order.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) writeTo(buf *strings.Builder, b *binder) {
	buf.WriteString(b.expand(c.expr, c.args))
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	s.where = append(s.where, conditions...)
	return s
}

func (s *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, parts...)
	return s
}

func (s *SelectBuilder) Limit(limit int) *SelectBuilder {
	s.limit = limit
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	if len(s.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(s.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var (
		buf strings.Builder
		b   binder
	)
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(s.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(s.table)
	writeWhere(&buf, &b, s.where)
	if len(s.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(s.orderBy, ", "))
	}
	if s.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(s.limit))
	}

	return buf.String(), b.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = append([]string(nil), columns...)
	return i
}

func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = append([]any(nil), values...)
	return i
}

// Suffix appends raw SQL such as RETURNING after the values list.
func (i *InsertBuilder) Suffix(sql string) *InsertBuilder {
	i.suffix = strings.TrimSpace(sql)
	return i
}

func (i *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(i.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(i.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(i.values) != len(i.columns) {
		return "", nil, fmt.Errorf("insert has %d values, expected %d", len(i.values), len(i.columns))
	}

	var (
		buf strings.Builder
		b   binder
	)
	buf.WriteString("INSERT INTO ")
	buf.WriteString(i.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(i.columns, ", "))
	buf.WriteString(") VALUES (")
	for idx, value := range i.values {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(b.bind(value))
	}
	buf.WriteString(")")
	writeSuffix(&buf, i.suffix)

	return buf.String(), b.args, nil
}

type assignment struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table  string
	sets   []assignment
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (u *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, value: value})
	return u
}

// SetExpr assigns a raw SQL expression; its ? marks bind args in order.
func (u *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, value: exprCondition{expr: expr, args: args}})
	return u
}

func (u *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	u.where = append(u.where, conditions...)
	return u
}

func (u *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	u.suffix = strings.TrimSpace(sql)
	return u
}

func (u *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(u.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(u.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}
	if len(u.where) == 0 {
		return "", nil, fmt.Errorf("update without where clause is not allowed")
	}

	var (
		buf strings.Builder
		b   binder
	)
	buf.WriteString("UPDATE ")
	buf.WriteString(u.table)
	buf.WriteString(" SET ")
	for idx, s := range u.sets {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s.column)
		buf.WriteString(" = ")
		if expr, ok := s.value.(exprCondition); ok {
			expr.writeTo(&buf, &b)
			continue
		}
		buf.WriteString(b.bind(s.value))
	}
	writeWhere(&buf, &b, u.where)
	writeSuffix(&buf, u.suffix)

	return buf.String(), b.args, nil
}

type DeleteBuilder struct {
	table  string
	where  []Condition
	suffix string
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (d *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	d.where = append(d.where, conditions...)
	return d
}

func (d *DeleteBuilder) Suffix(sql string) *DeleteBuilder {
	d.suffix = strings.TrimSpace(sql)
	return d
}

func (d *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(d.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(d.where) == 0 {
		return "", nil, fmt.Errorf("delete without where clause is not allowed")
	}

	var (
		buf strings.Builder
		b   binder
	)
	buf.WriteString("DELETE FROM ")
	buf.WriteString(d.table)
	writeWhere(&buf, &b, d.where)
	writeSuffix(&buf, d.suffix)

	return buf.String(), b.args, nil
}

func writeWhere(buf *strings.Builder, b *binder, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.writeTo(buf, b)
	}
}

func writeSuffix(buf *strings.Builder, suffix string) {
	if suffix == "" {
		return
	}
	buf.WriteString(" ")
	buf.WriteString(suffix)
}
