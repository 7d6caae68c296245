package livematch

import (
	"slices"
	"strings"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

const (
	LiveScoresURL = "https://www.cricbuzz.com/cricket-match/live-scores"
	searchURL     = "https://www.cricbuzz.com/search?q="

	// inningsListLines caps how many inningsScoreList entries become score lines.
	inningsListLines = 2
)

type Venue struct {
	Ground  string
	City    string
	Country string
}

// Where joins city and country, or Unknown when both are empty.
func (v Venue) Where() string {
	parts := make([]string, 0, 2)
	for _, part := range []string{v.City, v.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return Unknown
	}
	return strings.Join(parts, ", ")
}

type QuickLinks struct {
	LiveScores string
	Search     string
}

// Snapshot is the at-a-glance view of one match.
type Snapshot struct {
	MatchID     *int64
	Label       string
	Team1       TeamRef
	Team2       TeamRef
	Series      string
	Format      Format
	Mode        Mode
	Venue       Venue
	Status      string
	BattingTeam string
	BowlingTeam string
	Batter      string
	Bowler      string
	Wickets     string
	Overs       string
	RunRate     string
	Extras      Extras
	ScoreLines  []string
	Links       QuickLinks
}

func BuildSnapshot(summary MatchSummary, mode Mode) Snapshot {
	info := objectOrEmpty(summary.Info)
	score := objectOrEmpty(summary.Score)
	team1, team2 := ResolveTeams(info)
	selection := SelectCurrentInnings(score, team1.ShortName, team2.ShortName)
	current := selection.Innings.Doc()

	return Snapshot{
		MatchID: summary.MatchID,
		Label:   summary.Label,
		Team1:   team1,
		Team2:   team2,
		Series:  summary.Series,
		Format:  summary.Format,
		Mode:    mode,
		Venue: Venue{
			Ground:  info.Get("venueInfo", "ground").TextOr("-"),
			City:    info.Get("venueInfo", "city").Text(),
			Country: info.Get("venueInfo", "country").Text(),
		},
		Status:      jsontree.FirstText("-", info.Get("status"), info.Get("state")),
		BattingTeam: selection.BattingTeam,
		BowlingTeam: selection.BowlingTeam,
		Batter: jsontree.FirstText(Unknown,
			score.Get("batsmanStriker", "batName"),
			score.Get("batsman", "name"),
			score.Get("batsmanNonStriker", "batName"),
		),
		Bowler: jsontree.FirstText(Unknown,
			score.Get("bowlerStriker", "bowlName"),
			score.Get("bowler", "name"),
			score.Get("bowlerNonStriker", "bowlName"),
		),
		Wickets:    current.Get("wickets").TextOr(Unknown),
		Overs:      current.Get("overs").TextOr(Unknown),
		RunRate:    jsontree.FirstText(Unknown, current.Get("runRate"), current.Get("rr")),
		Extras:     NormalizeExtras(selection.Innings),
		ScoreLines: ScoreLines(score, team1.ShortName, team2.ShortName),
		Links: QuickLinks{
			LiveScores: LiveScoresURL,
			Search:     SearchLink(team1.DisplayName, team2.DisplayName, summary.Series),
		},
	}
}

// ScoreLines renders every available innings as "TEAM: score", team innings
// first and then up to two inningsScoreList entries not already listed.
func ScoreLines(score jsontree.Node, team1Short, team2Short string) []string {
	out := make([]string, 0, 6)
	teamLines := []struct {
		label string
		path  []string
	}{
		{label: team1Short, path: []string{"team1Score", "inngs1"}},
		{label: team1Short + " (Inns 2)", path: []string{"team1Score", "inngs2"}},
		{label: team2Short, path: []string{"team2Score", "inngs1"}},
		{label: team2Short + " (Inns 2)", path: []string{"team2Score", "inngs2"}},
	}
	for _, line := range teamLines {
		innings := score.Get(line.path...)
		if !innings.IsObject() || innings.Len() == 0 {
			continue
		}
		out = append(out, renderLine(line.label, RenderScore(NewInningsRecord(innings, line.label))))
	}

	list := score.Get("inningsScoreList").Items()
	if len(list) > inningsListLines {
		list = list[:inningsListLines]
	}
	for _, entry := range list {
		if !entry.IsObject() {
			continue
		}
		team := jsontree.FirstText("", entry.Get("batTeamShortName"), entry.Get("batTeamName"))
		if entry.Get("score").IsAbsent() || entry.Get("overs").IsAbsent() || team == "" {
			continue
		}
		line := renderListEntry(team, entry)
		if !slices.Contains(out, line) {
			out = append(out, line)
		}
	}
	return out
}

// SearchLink builds a Cricbuzz search URL for the fixture.
func SearchLink(team1, team2, series string) string {
	query := team1 + " vs " + team2 + " " + series + " cricbuzz"
	return searchURL + strings.ReplaceAll(query, " ", "%20")
}
