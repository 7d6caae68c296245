package playerstats

import (
	"slices"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

const rankingFormatParam = "formatType"

// rankingColumns are shown in this order when present.
var rankingColumns = []string{"rank", "name", "country", "rating", "points"}

// RankingsPath is the rankings endpoint for a role; the format goes in the
// formatType query parameter.
func RankingsPath(role Role) string {
	return "/stats/v1/rankings/" + string(role)
}

func RankingsQuery(format Format) map[string]string {
	return map[string]string{rankingFormatParam: string(format)}
}

// NormalizeRankings reads the ranking list from whichever of rank, ranks or
// list is populated. Known columns are kept in display order; when none of
// them is present every column is kept.
func NormalizeRankings(doc jsontree.Node) Table {
	items := jsontree.Or(doc.Get("rank"), doc.Get("ranks"), doc.Get("list")).Items()
	table := tableOf("", items)
	if table.Empty() {
		return table
	}

	order := make([]string, 0, len(rankingColumns))
	for _, column := range rankingColumns {
		if slices.Contains(table.Columns, column) {
			order = append(order, column)
		}
	}
	if len(order) == 0 {
		return table
	}
	return table.project(order)
}
