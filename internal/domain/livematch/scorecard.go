package livematch

import "github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"

const notOut = "not out"

type BattingRow struct {
	Batsman string
	Runs    jsontree.Node
	Balls   jsontree.Node
	Fours   jsontree.Node
	Sixes   jsontree.Node
	Status  string
}

type BowlingRow struct {
	Bowler  string
	Runs    jsontree.Node
	Wickets jsontree.Node
	NoBalls jsontree.Node
}

// Scorecard holds the first-innings batting and second-innings bowling
// tables of a match-center document.
type Scorecard struct {
	Available   bool
	BattingRows []BattingRow
	YetToBat    []string
	BowlingRows []BowlingRow
}

// ParseScorecard reads a match-center document. Documents without a
// scoreCard key are reported as unavailable.
func ParseScorecard(doc jsontree.Node) Scorecard {
	if !doc.IsObject() || !doc.Get("scoreCard").Exists() {
		return Scorecard{}
	}

	card := Scorecard{Available: true}
	cards := doc.Get("scoreCard").Items()
	if len(cards) >= 1 {
		card.BattingRows = battingRows(cards[0])
		card.YetToBat = yetToBat(cards[0])
	}
	if len(cards) >= 2 {
		card.BowlingRows = bowlingRows(cards[1])
	}
	return card
}

func battingRows(card jsontree.Node) []BattingRow {
	rows := make([]BattingRow, 0)

	keyed := card.Get("batTeamDetails", "batsmenData")
	for _, key := range keyed.Keys() {
		b := keyed.Get(key)
		rows = append(rows, BattingRow{
			Batsman: b.Get("batName").Text(),
			Runs:    b.Get("runs"),
			Balls:   b.Get("balls"),
			Fours:   b.Get("fours"),
			Sixes:   b.Get("sixes"),
			Status:  jsontree.FirstText(notOut, b.Get("outDesc")),
		})
	}

	for _, b := range card.Get("batTeamDetails", "batsmen").Items() {
		rows = append(rows, BattingRow{
			Batsman: jsontree.Or(b.Get("name"), b.Get("batName")).Text(),
			Runs:    jsontree.Or(b.Get("r"), b.Get("runs")),
			Balls:   jsontree.Or(b.Get("b"), b.Get("balls")),
			Fours:   jsontree.Or(b.Get("4s"), b.Get("fours")),
			Sixes:   jsontree.Or(b.Get("6s"), b.Get("sixes")),
			Status:  jsontree.FirstText(notOut, b.Get("dismissal"), b.Get("outDesc")),
		})
	}
	return rows
}

func yetToBat(card jsontree.Node) []string {
	details := card.Get("batTeamDetails")
	list := jsontree.Or(
		details.Get("yetToBat"),
		details.Get("didNotBat"),
		details.Get("dnb"),
		details.Get("nextBatsmen"),
		card.Get("didNotBatList"),
	)

	names := make([]string, 0)
	for _, item := range list.Items() {
		name := ""
		if s, ok := item.AsString(); ok {
			name = s
		} else if item.IsObject() {
			name = jsontree.FirstText("", item.Get("name"), item.Get("batName"))
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func bowlingRows(card jsontree.Node) []BowlingRow {
	rows := make([]BowlingRow, 0)
	zero := jsontree.New(float64(0))

	keyed := card.Get("bowlTeamDetails", "bowlersData")
	for _, key := range keyed.Keys() {
		b := keyed.Get(key)
		rows = append(rows, BowlingRow{
			Bowler:  b.Get("bowlName").Text(),
			Runs:    b.Get("runs"),
			Wickets: b.Get("wickets"),
			NoBalls: jsontree.Or(b.Get("noBalls"), b.Get("nb"), zero),
		})
	}

	for _, b := range card.Get("bowlTeamDetails", "bowlers").Items() {
		rows = append(rows, BowlingRow{
			Bowler:  jsontree.Or(b.Get("name"), b.Get("bowlName")).Text(),
			Runs:    jsontree.Or(b.Get("r"), b.Get("runs")),
			Wickets: jsontree.Or(b.Get("w"), b.Get("wickets")),
			NoBalls: jsontree.Or(b.Get("nb"), b.Get("noBalls"), zero),
		})
	}
	return rows
}
