package livematch

import (
	"strings"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

// formatTags are tested against each field in this order.
var formatTags = []Format{FormatTest, FormatODI, FormatT20}

// formatStrategies consult matchInfo fields from most to least authoritative.
// The first field whose text names a format decides; fields that are absent
// or not strings are skipped.
var formatStrategies = []jsontree.Strategy[Format]{
	formatFromField("matchFormat"),
	formatFromField("matchDesc"),
	formatFromField("stateTitle"),
	formatFromField("seriesName"),
}

// ClassifyFormat infers the match format from a matchInfo document.
func ClassifyFormat(info jsontree.Node) Format {
	format, _, ok := jsontree.FirstMatch(info, formatStrategies)
	if !ok {
		return FormatUnknown
	}
	return format
}

func formatFromField(field string) jsontree.Strategy[Format] {
	return jsontree.Strategy[Format]{
		Name: field,
		Extract: func(info jsontree.Node) (Format, bool) {
			text, ok := info.Get(field).AsString()
			if !ok {
				return "", false
			}
			upper := strings.ToUpper(text)
			for _, tag := range formatTags {
				if strings.Contains(upper, string(tag)) {
					return tag, true
				}
			}
			return "", false
		},
	}
}
