package playerstats

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleBatsmen Role = "batsmen"
	RoleBowlers Role = "bowlers"
)

type Format string

const (
	FormatTest Format = "test"
	FormatODI  Format = "odi"
	FormatT20I Format = "t20i"
)

// ParseRole accepts a ranking role in any case ("Batsmen", "bowlers").
func ParseRole(value string) (Role, error) {
	switch role := Role(strings.ToLower(strings.TrimSpace(value))); role {
	case RoleBatsmen, RoleBowlers:
		return role, nil
	default:
		return "", fmt.Errorf("unsupported ranking role %q", value)
	}
}

// ParseFormat accepts a ranking format in any case ("Test", "ODI", "T20I").
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatTest, FormatODI, FormatT20I:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported ranking format %q", value)
	}
}

// Table is a column-ordered view over a list of feed records. Each row holds
// a value (possibly nil) for every column.
type Table struct {
	Title   string
	Columns []string
	Rows    []map[string]any
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

type PlayerHit struct {
	ID      string
	Name    string
	Country string
}

// Label is the name followed by the country in parentheses when known.
func (h PlayerHit) Label() string {
	if h.Country == "" {
		return h.Name
	}
	return h.Name + " (" + h.Country + ")"
}

type Field struct {
	Name  string
	Value string
}
