package livematch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

const defaultSeriesName = "Series"

// Flatten walks typeMatches -> seriesMatches -> seriesAdWrapper -> matches and
// returns one summary per match in source order. Branches of the wrong shape
// contribute nothing, so an empty or foreign document yields an empty slice.
func Flatten(root jsontree.Node) []MatchSummary {
	out := make([]MatchSummary, 0)
	for _, bucket := range root.Get("typeMatches").Items() {
		for _, series := range bucket.Get("seriesMatches").Items() {
			wrapper := series.Get("seriesAdWrapper")
			if !wrapper.IsObject() {
				continue
			}
			seriesName := defaultSeriesName
			if name := wrapper.Get("seriesName"); !name.IsAbsent() {
				seriesName = name.Text()
			}

			for _, match := range wrapper.Get("matches").Items() {
				if !match.IsObject() {
					continue
				}
				out = append(out, summarize(match, seriesName))
			}
		}
	}
	return out
}

func summarize(match jsontree.Node, seriesName string) MatchSummary {
	info := objectOrEmpty(match.Get("matchInfo"))
	score := objectOrEmpty(match.Get("matchScore"))
	team1, team2 := ResolveTeams(info)
	format := ClassifyFormat(info)

	return MatchSummary{
		Label:   fmt.Sprintf("%s vs %s — %s (%s)", team1.DisplayName, team2.DisplayName, seriesName, format),
		MatchID: matchIDOf(info),
		Series:  seriesName,
		Format:  format,
		Info:    info,
		Score:   score,
	}
}

// ResolveTeams derives both team references from matchInfo. Display names fall
// back from full name to short name to a positional placeholder; short names
// fall back to the display name.
func ResolveTeams(info jsontree.Node) (TeamRef, TeamRef) {
	return resolveTeam(info.Get("team1"), "Team 1"), resolveTeam(info.Get("team2"), "Team 2")
}

func resolveTeam(team jsontree.Node, placeholder string) TeamRef {
	display := jsontree.FirstText(placeholder, team.Get("teamName"), team.Get("teamSName"))
	return TeamRef{
		DisplayName: display,
		ShortName:   jsontree.FirstText(display, team.Get("teamSName")),
	}
}

func matchIDOf(info jsontree.Node) *int64 {
	node := info.Get("matchId")
	if id, ok := node.AsInt(); ok {
		return &id
	}
	if raw, ok := node.AsString(); ok {
		if id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			return &id
		}
	}
	return nil
}

func objectOrEmpty(node jsontree.Node) jsontree.Node {
	if node.IsObject() {
		return node
	}
	return jsontree.New(map[string]any{})
}
