package analytics

import "context"

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type ParamKind string

const (
	ParamText ParamKind = "text"
	ParamInt  ParamKind = "int"
	ParamDate ParamKind = "date"
)

// Param is a positional query parameter; the n-th Param binds to $n.
type Param struct {
	Name        string
	Kind        ParamKind
	Default     string
	Description string
}

type Query struct {
	ID                  int
	Title               string
	Level               Level
	SQL                 string
	Params              []Param
	RequiresExtraFields bool
}

// Result holds rows in select-list column order.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Runner executes read-only analytical SQL.
type Runner interface {
	Run(ctx context.Context, query string, args ...any) (Result, error)
	Explain(ctx context.Context, query string, args ...any) error
}
