package livematch

import (
	"strconv"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
	"github.com/valyala/bytebufferpool"
)

// RenderScore formats an innings as "runs/wickets (overs)", dropping the
// wickets part when absent. It returns "" when neither runs nor wickets are
// known or the record is empty.
func RenderScore(rec InningsRecord) string {
	if rec.IsEmpty() {
		return ""
	}
	runs := rec.Runs()
	wickets := rec.Wickets()
	if runs.IsAbsent() && wickets.IsAbsent() {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(runs.TextOr("-"))
	if !wickets.IsAbsent() {
		_ = buf.WriteByte('/')
		_, _ = buf.WriteString(wickets.Text())
	}
	_, _ = buf.WriteString(" (")
	_, _ = buf.WriteString(oversDisplay(rec))
	_ = buf.WriteByte(')')
	return buf.String()
}

// oversDisplay prefers the explicit overs field verbatim and otherwise derives
// "o.b" from an integral ball count.
func oversDisplay(rec InningsRecord) string {
	if overs := rec.Overs(); !overs.IsAbsent() {
		return overs.Text()
	}
	balls, ok := rec.Balls().AsInt()
	if !ok {
		return "-"
	}
	completed, rest := balls/6, balls%6
	if rest < 0 {
		completed--
		rest += 6
	}
	return strconv.FormatInt(completed, 10) + "." + strconv.FormatInt(rest, 10)
}

// renderLine joins a team label and a rendered score.
func renderLine(label, score string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(label)
	_, _ = buf.WriteString(": ")
	_, _ = buf.WriteString(score)
	return buf.String()
}

// renderListEntry formats an inningsScoreList entry as "TEAM: score/wkts (overs)".
func renderListEntry(team string, entry jsontree.Node) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(entry.Get("score").Text())
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(entry.Get("wkts").TextOr("-"))
	_, _ = buf.WriteString(" (")
	_, _ = buf.WriteString(entry.Get("overs").Text())
	_ = buf.WriteByte(')')
	return renderLine(team, buf.String())
}
