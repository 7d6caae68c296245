package playerstats

import (
	"strings"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

// SearchEndpoint is one known player-search route and the query parameter
// carrying the name.
type SearchEndpoint struct {
	Path  string
	Param string
}

// SearchEndpoints are tried in order until one yields at least one hit.
var SearchEndpoints = []SearchEndpoint{
	{Path: "/stats/v1/player/search", Param: "plrN"},
	{Path: "/stats/v1/search", Param: "q"},
	{Path: "/search/v1", Param: "q"},
	{Path: "/search/v2", Param: "query"},
}

// ExtractHits maps a search response to player hits. Records without an id
// or a name are dropped.
func ExtractHits(doc jsontree.Node) []PlayerHit {
	items := jsontree.Or(
		doc.Get("player"),
		doc.Get("players"),
		doc.Get("list"),
		doc.Get("results"),
		doc.Get("result"),
	).Items()

	hits := make([]PlayerHit, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		id := jsontree.FirstText("", item.Get("id"), item.Get("playerId"), item.Get("idPlayer"), item.Get("pid"))
		name := jsontree.FirstText("", item.Get("name"), item.Get("fullName"), item.Get("playerName"))
		if id == "" || name == "" {
			continue
		}
		hits = append(hits, PlayerHit{
			ID:      id,
			Name:    name,
			Country: jsontree.FirstText("", item.Get("country"), item.Get("teamName"), item.Get("team")),
		})
	}
	return hits
}

// NormalizeName trims a search query; an empty result means nothing to search.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
