package playerstats

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

// ProfilePaths are the profile routes known across API mirrors, in the order
// they are tried.
func ProfilePaths(playerID string) []string {
	return []string{
		"/stats/v1/player/" + playerID,
		"/player/v1/" + playerID,
	}
}

func CareerPath(playerID string) string {
	return "/stats/v1/player/" + playerID + "/career"
}

var profileFields = []struct {
	name string
	keys []string
}{
	{name: "Name", keys: []string{"name", "fullName"}},
	{name: "Country/Team", keys: []string{"country", "teamName"}},
	{name: "Role", keys: []string{"role", "playingRole"}},
	{name: "Batting Style", keys: []string{"battingStyle"}},
	{name: "Bowling Style", keys: []string{"bowlingStyle"}},
	{name: "DOB", keys: []string{"dob"}},
	{name: "Bio", keys: []string{"bio"}},
}

// ProfileFields lists the populated profile fields in display order.
func ProfileFields(profile jsontree.Node) []Field {
	fields := make([]Field, 0, len(profileFields))
	if !profile.IsObject() {
		return fields
	}
	for _, field := range profileFields {
		nodes := make([]jsontree.Node, 0, len(field.keys))
		for _, key := range field.keys {
			nodes = append(nodes, profile.Get(key))
		}
		if value := jsontree.FirstText("", nodes...); value != "" {
			fields = append(fields, Field{Name: field.name, Value: value})
		}
	}
	return fields
}

// EmbeddedCareer returns the career section some mirrors embed in the profile.
func EmbeddedCareer(profile jsontree.Node) (jsontree.Node, bool) {
	career := profile.Get("career")
	return career, career.Exists()
}

// CareerTables renders career data as tables. A list becomes one untitled
// table; a mapping becomes one table per non-empty list value, titled after
// its key. The boolean is false when nothing tabular was found.
func CareerTables(career jsontree.Node) ([]Table, bool) {
	tables := make([]Table, 0)
	switch {
	case career.IsArray():
		if table := tableOf("", career.Items()); !table.Empty() {
			tables = append(tables, table)
		}
	case career.IsObject():
		for _, key := range career.Keys() {
			items := career.Get(key).Items()
			if len(items) == 0 {
				continue
			}
			tables = append(tables, tableOf(capitalize(key), items))
		}
	}
	return tables, len(tables) > 0
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
