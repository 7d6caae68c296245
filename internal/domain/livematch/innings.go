package livematch

import (
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

// oversUnknown sorts below any real overs value.
const oversUnknown = -1.0

type teamInningsSource struct {
	team       int
	scoreKey   string
	inningsKey string
}

// teamInningsOrder is the candidate enumeration order. Second innings come
// first so that, at equal overs, the later innings is taken as current.
var teamInningsOrder = []teamInningsSource{
	{team: 1, scoreKey: "team1Score", inningsKey: "inngs2"},
	{team: 2, scoreKey: "team2Score", inningsKey: "inngs2"},
	{team: 1, scoreKey: "team1Score", inningsKey: "inngs1"},
	{team: 2, scoreKey: "team2Score", inningsKey: "inngs1"},
}

type inningsCandidate struct {
	overs   float64
	team    int
	innings jsontree.Node
}

// OversToFloat converts overs to a sortable float. "o.b" notation means o
// overs and b balls; plain numbers are taken as is; anything else is -1.
func OversToFloat(overs jsontree.Node) float64 {
	if overs.IsAbsent() {
		return oversUnknown
	}
	if f, ok := overs.AsFloat(); ok {
		return f
	}
	if b, ok := overs.AsBool(); ok {
		if b {
			return 1
		}
		return 0
	}

	text, ok := overs.AsString()
	if !ok {
		return oversUnknown
	}
	if !strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return oversUnknown
		}
		return f
	}

	parts := strings.Split(text, ".")
	if len(parts) != 2 {
		return oversUnknown
	}
	completed, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return oversUnknown
	}
	balls, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return oversUnknown
	}
	return completed + float64(balls)/6.0
}

// SelectCurrentInnings guesses the innings in progress: the candidate with the
// most overs bowled, ties going to the earlier enumerated candidate.
func SelectCurrentInnings(score jsontree.Node, team1Short, team2Short string) Selection {
	candidates := make([]inningsCandidate, 0, 6)
	for _, src := range teamInningsOrder {
		innings := score.Get(src.scoreKey, src.inningsKey)
		if !innings.IsObject() || innings.Len() == 0 {
			continue
		}
		candidates = append(candidates, inningsCandidate{
			overs:   OversToFloat(innings.Get("overs")),
			team:    src.team,
			innings: innings,
		})
	}

	for _, innings := range score.Get("inningsScoreList").Items() {
		if !innings.IsObject() {
			continue
		}
		team := 0
		if id, ok := innings.Get("batTeamId").AsFloat(); ok && (id == 1 || id == 2) {
			team = int(id)
		}
		candidates = append(candidates, inningsCandidate{
			overs:   OversToFloat(innings.Get("overs")),
			team:    team,
			innings: innings,
		})
	}

	if len(candidates) == 0 {
		return Selection{
			BattingTeam: Unknown,
			BowlingTeam: Unknown,
			Innings:     NewInningsRecord(jsontree.New(map[string]any{}), ""),
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overs > candidates[j].overs
	})
	best := candidates[0]

	batting := ""
	switch best.team {
	case 1:
		batting = team1Short
	case 2:
		batting = team2Short
	}
	bowling := team1Short
	if best.team != 0 && batting == team1Short {
		bowling = team2Short
	}

	return Selection{
		BattingTeam: orUnknown(batting),
		BowlingTeam: orUnknown(bowling),
		Innings:     NewInningsRecord(best.innings, batting),
	}
}

func orUnknown(value string) string {
	if value == "" {
		return Unknown
	}
	return value
}
