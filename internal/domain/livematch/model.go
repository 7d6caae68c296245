package livematch

import "github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"

// Unknown is shown wherever a value cannot be derived from the payload.
const Unknown = "—"

type Format string

const (
	FormatTest    Format = "TEST"
	FormatODI     Format = "ODI"
	FormatT20     Format = "T20"
	FormatUnknown Format = "UNKNOWN"
)

type Mode string

const (
	ModeLive   Mode = "live"
	ModeRecent Mode = "recent"
)

type TeamRef struct {
	DisplayName string
	ShortName   string
}

// MatchSummary is one entry of a flattened match listing.
type MatchSummary struct {
	Label   string
	MatchID *int64
	Series  string
	Format  Format
	Info    jsontree.Node
	Score   jsontree.Node
}

// InningsRecord is a read-only view over one innings document.
type InningsRecord struct {
	doc            jsontree.Node
	BattingTeamTag string
}

func NewInningsRecord(doc jsontree.Node, battingTeamTag string) InningsRecord {
	return InningsRecord{doc: doc, BattingTeamTag: battingTeamTag}
}

func (r InningsRecord) Doc() jsontree.Node {
	return r.doc
}

func (r InningsRecord) Runs() jsontree.Node {
	return r.doc.Get("runs")
}

func (r InningsRecord) Wickets() jsontree.Node {
	return r.doc.Get("wickets")
}

func (r InningsRecord) Overs() jsontree.Node {
	return r.doc.Get("overs")
}

func (r InningsRecord) Balls() jsontree.Node {
	return r.doc.Get("balls")
}

// IsEmpty reports a record that is not a mapping or has no fields.
func (r InningsRecord) IsEmpty() bool {
	return !r.doc.IsObject() || r.doc.Len() == 0
}

// Selection is the innings picked as "current" for a match.
type Selection struct {
	BattingTeam string
	BowlingTeam string
	Innings     InningsRecord
}
