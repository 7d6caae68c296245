package livematch

import (
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

// extrasComponents are summed when extras arrive as a breakdown.
var extrasComponents = []string{"byes", "legByes", "wides", "noBalls", "penalty"}

// Extras is an extras total as reported by the feed: a number, a verbatim
// text value, or unknown. The zero value is unknown.
type Extras struct {
	value any
}

func (e Extras) Known() bool {
	return e.value != nil
}

func (e Extras) Total() (float64, bool) {
	f, ok := e.value.(float64)
	return f, ok
}

func (e Extras) String() string {
	switch v := e.value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return Unknown
	}
}

func (e Extras) MarshalJSON() ([]byte, error) {
	if e.value == nil {
		return sonic.Marshal(Unknown)
	}
	return sonic.Marshal(e.value)
}

// NormalizeExtras reconciles the extras shapes seen across payload versions.
// Order matters because some payloads fill several fields with different
// values: scalar extras, then scalar extraRuns, then a breakdown under extras
// or extraDetail whose positive sum is used, else unknown.
func NormalizeExtras(rec InningsRecord) Extras {
	doc := rec.Doc()
	if !doc.IsObject() {
		return Extras{}
	}

	for _, key := range []string{"extras", "extraRuns"} {
		if extras, ok := scalarExtras(doc.Get(key)); ok {
			return extras
		}
	}

	breakdown := doc.Get("extras")
	if !breakdown.IsObject() {
		breakdown = doc.Get("extraDetail")
	}
	if !breakdown.IsObject() {
		return Extras{}
	}

	total := 0.0
	for _, key := range extrasComponents {
		if v, ok := breakdown.Get(key).AsFloat(); ok {
			total += v
		}
	}
	if total > 0 {
		return Extras{value: total}
	}
	return Extras{}
}

func scalarExtras(node jsontree.Node) (Extras, bool) {
	if f, ok := node.AsFloat(); ok {
		return Extras{value: f}, true
	}
	if s, ok := node.AsString(); ok {
		return Extras{value: s}, true
	}
	return Extras{}, false
}
