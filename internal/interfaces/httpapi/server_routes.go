package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("POST /v1/cache/refresh", handler.RefreshCache)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchSnapshot)
	mux.HandleFunc("GET /v1/matches/{matchID}/scorecard", handler.GetMatchScorecard)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stats/rankings", handler.GetRankings)
	mux.HandleFunc("GET /v1/stats/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/stats/players/{playerID}", handler.GetPlayerStats)
}

// Players are addressed by exact full name, so every route takes ?name=.
func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.GetPlayerByName)
	mux.HandleFunc("PUT /v1/players", handler.UpdatePlayerByName)
	mux.HandleFunc("DELETE /v1/players", handler.DeletePlayerByName)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/analytics/queries", handler.ListAnalyticsQueries)
	mux.HandleFunc("GET /v1/analytics/queries/verify", handler.VerifyAnalyticsQueries)
	mux.HandleFunc("POST /v1/analytics/queries/{queryID}/run", handler.RunAnalyticsQuery)
}
