package httpapi

import (
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/analytics"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/livematch"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/player"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/playerstats"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
	"github.com/riskibarqy/cricbuzz-livestats/internal/usecase"
)

type playerRequest struct {
	FullName     string  `json:"fullName" validate:"required"`
	Role         string  `json:"role" validate:"omitempty,oneof=Batsman Bowler All-rounder Wicket-keeper"`
	BattingStyle *string `json:"battingStyle"`
	BowlingStyle *string `json:"bowlingStyle"`
	TeamID       *int64  `json:"teamId" validate:"omitempty,gte=0"`
}

func (r playerRequest) toDomain() player.Player {
	return player.Player{
		FullName:     r.FullName,
		Role:         player.Role(r.Role),
		BattingStyle: r.BattingStyle,
		BowlingStyle: r.BowlingStyle,
		TeamID:       r.TeamID,
	}
}

type runAnalyticsQueryRequest struct {
	Params map[string]string `json:"params" validate:"omitempty,dive,keys,required,endkeys"`
}

type cacheRefreshDTO struct {
	Removed int `json:"removed"`
}

type matchSummaryDTO struct {
	MatchID *int64 `json:"matchId,omitempty"`
	Label   string `json:"label"`
	Series  string `json:"series"`
	Format  string `json:"format"`
}

type matchListingDTO struct {
	Mode    string            `json:"mode"`
	Matches []matchSummaryDTO `json:"matches"`
	Notice  string            `json:"notice,omitempty"`
	Message string            `json:"message,omitempty"`
}

type teamDTO struct {
	Name  string `json:"name"`
	Short string `json:"short"`
}

type venueDTO struct {
	Ground  string `json:"ground"`
	City    string `json:"city"`
	Country string `json:"country"`
	Where   string `json:"where"`
}

type snapshotDTO struct {
	MatchID     *int64           `json:"matchId,omitempty"`
	Label       string           `json:"label"`
	Team1       teamDTO          `json:"team1"`
	Team2       teamDTO          `json:"team2"`
	Series      string           `json:"series"`
	Format      string           `json:"format"`
	Mode        string           `json:"mode"`
	Venue       venueDTO         `json:"venue"`
	Status      string           `json:"status"`
	BattingTeam string           `json:"battingTeam"`
	BowlingTeam string           `json:"bowlingTeam"`
	Batter      string           `json:"batter"`
	Bowler      string           `json:"bowler"`
	Wickets     string           `json:"wickets"`
	Overs       string           `json:"overs"`
	RunRate     string           `json:"runRate"`
	Extras      livematch.Extras `json:"extras"`
	ScoreLines  []string         `json:"scoreLines"`
	Links       linksDTO         `json:"links"`
}

type linksDTO struct {
	LiveScores string `json:"liveScores"`
	Search     string `json:"search"`
}

type battingRowDTO struct {
	Batsman string        `json:"batsman"`
	Runs    jsontree.Node `json:"runs"`
	Balls   jsontree.Node `json:"balls"`
	Fours   jsontree.Node `json:"fours"`
	Sixes   jsontree.Node `json:"sixes"`
	Status  string        `json:"status"`
}

type bowlingRowDTO struct {
	Bowler  string        `json:"bowler"`
	Runs    jsontree.Node `json:"runs"`
	Wickets jsontree.Node `json:"wickets"`
	NoBalls jsontree.Node `json:"noBalls"`
}

type scorecardDTO struct {
	MatchID     int64           `json:"matchId"`
	Available   bool            `json:"available"`
	BattingRows []battingRowDTO `json:"battingRows"`
	YetToBat    []string        `json:"yetToBat"`
	BowlingRows []bowlingRowDTO `json:"bowlingRows"`
	Message     string          `json:"message,omitempty"`
	Preview     string          `json:"preview,omitempty"`
}

type tableDTO struct {
	Title   string           `json:"title,omitempty"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

type rankingsDTO struct {
	Role    string   `json:"role"`
	Format  string   `json:"format"`
	Table   tableDTO `json:"table"`
	Message string   `json:"message,omitempty"`
}

type playerHitDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Label   string `json:"label"`
}

type playerSearchDTO struct {
	Query   string         `json:"query"`
	Hits    []playerHitDTO `json:"hits"`
	Message string         `json:"message,omitempty"`
}

type fieldDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type playerStatsDTO struct {
	PlayerID       string     `json:"playerId"`
	Profile        []fieldDTO `json:"profile"`
	ProfileMessage string     `json:"profileMessage,omitempty"`
	Career         []tableDTO `json:"career"`
	CareerMessage  string     `json:"careerMessage,omitempty"`
}

type playerDTO struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"fullName"`
	Role         string  `json:"role"`
	BattingStyle *string `json:"battingStyle"`
	BowlingStyle *string `json:"bowlingStyle"`
	TeamID       *int64  `json:"teamId"`
}

type analyticsParamDTO struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Default     string `json:"default"`
	Description string `json:"description,omitempty"`
}

type analyticsQueryDTO struct {
	ID                  int                 `json:"id"`
	Title               string              `json:"title"`
	Level               string              `json:"level"`
	SQL                 string              `json:"sql"`
	Params              []analyticsParamDTO `json:"params"`
	RequiresExtraFields bool                `json:"requiresExtraFields"`
}

type queryRunDTO struct {
	Query     analyticsQueryDTO `json:"query"`
	Args      []any             `json:"args"`
	Columns   []string          `json:"columns"`
	Rows      [][]any           `json:"rows"`
	Message   string            `json:"message,omitempty"`
	Error     string            `json:"error,omitempty"`
	Hint      string            `json:"hint,omitempty"`
	QueriedAt string            `json:"queriedAt"`
}

type queryCheckDTO struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func matchListingToDTO(v usecase.MatchListing) matchListingDTO {
	items := make([]matchSummaryDTO, 0, len(v.Matches))
	for _, m := range v.Matches {
		items = append(items, matchSummaryDTO{
			MatchID: m.MatchID,
			Label:   m.Label,
			Series:  m.Series,
			Format:  string(m.Format),
		})
	}
	return matchListingDTO{
		Mode:    string(v.Mode),
		Matches: items,
		Notice:  v.Notice,
		Message: v.Message,
	}
}

func snapshotToDTO(v livematch.Snapshot) snapshotDTO {
	lines := v.ScoreLines
	if lines == nil {
		lines = []string{}
	}
	return snapshotDTO{
		MatchID:     v.MatchID,
		Label:       v.Label,
		Team1:       teamDTO{Name: v.Team1.DisplayName, Short: v.Team1.ShortName},
		Team2:       teamDTO{Name: v.Team2.DisplayName, Short: v.Team2.ShortName},
		Series:      v.Series,
		Format:      string(v.Format),
		Mode:        string(v.Mode),
		Venue:       venueDTO{Ground: v.Venue.Ground, City: v.Venue.City, Country: v.Venue.Country, Where: v.Venue.Where()},
		Status:      v.Status,
		BattingTeam: v.BattingTeam,
		BowlingTeam: v.BowlingTeam,
		Batter:      v.Batter,
		Bowler:      v.Bowler,
		Wickets:     v.Wickets,
		Overs:       v.Overs,
		RunRate:     v.RunRate,
		Extras:      v.Extras,
		ScoreLines:  lines,
		Links:       linksDTO{LiveScores: v.Links.LiveScores, Search: v.Links.Search},
	}
}

func scorecardToDTO(v usecase.ScorecardView) scorecardDTO {
	out := scorecardDTO{
		MatchID:     v.MatchID,
		Available:   v.Scorecard.Available,
		BattingRows: make([]battingRowDTO, 0, len(v.Scorecard.BattingRows)),
		YetToBat:    append([]string{}, v.Scorecard.YetToBat...),
		BowlingRows: make([]bowlingRowDTO, 0, len(v.Scorecard.BowlingRows)),
		Message:     v.Message,
		Preview:     v.Preview,
	}
	for _, b := range v.Scorecard.BattingRows {
		out.BattingRows = append(out.BattingRows, battingRowDTO(b))
	}
	for _, b := range v.Scorecard.BowlingRows {
		out.BowlingRows = append(out.BowlingRows, bowlingRowDTO(b))
	}
	return out
}

func tableToDTO(t playerstats.Table) tableDTO {
	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := t.Rows
	if rows == nil {
		rows = []map[string]any{}
	}
	return tableDTO{Title: t.Title, Columns: columns, Rows: rows}
}

func rankingsToDTO(v usecase.RankingsView) rankingsDTO {
	return rankingsDTO{
		Role:    string(v.Role),
		Format:  string(v.Format),
		Table:   tableToDTO(v.Table),
		Message: v.Message,
	}
}

func playerSearchToDTO(v usecase.PlayerSearchView) playerSearchDTO {
	hits := make([]playerHitDTO, 0, len(v.Hits))
	for _, h := range v.Hits {
		hits = append(hits, playerHitDTO{ID: h.ID, Name: h.Name, Country: h.Country, Label: h.Label()})
	}
	return playerSearchDTO{Query: v.Query, Hits: hits, Message: v.Message}
}

func playerStatsToDTO(v usecase.PlayerStatsView) playerStatsDTO {
	profile := make([]fieldDTO, 0, len(v.Profile))
	for _, f := range v.Profile {
		profile = append(profile, fieldDTO{Name: f.Name, Value: f.Value})
	}
	career := make([]tableDTO, 0, len(v.Career))
	for _, t := range v.Career {
		career = append(career, tableToDTO(t))
	}
	return playerStatsDTO{
		PlayerID:       v.PlayerID,
		Profile:        profile,
		ProfileMessage: v.ProfileMessage,
		Career:         career,
		CareerMessage:  v.CareerMessage,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		FullName:     v.FullName,
		Role:         string(v.Role),
		BattingStyle: v.BattingStyle,
		BowlingStyle: v.BowlingStyle,
		TeamID:       v.TeamID,
	}
}

func analyticsQueryToDTO(q analytics.Query) analyticsQueryDTO {
	params := make([]analyticsParamDTO, 0, len(q.Params))
	for _, p := range q.Params {
		params = append(params, analyticsParamDTO{
			Name:        p.Name,
			Kind:        string(p.Kind),
			Default:     p.Default,
			Description: p.Description,
		})
	}
	return analyticsQueryDTO{
		ID:                  q.ID,
		Title:               q.Title,
		Level:               string(q.Level),
		SQL:                 q.SQL,
		Params:              params,
		RequiresExtraFields: q.RequiresExtraFields,
	}
}

func queryRunToDTO(v usecase.QueryRunView) queryRunDTO {
	columns := v.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := v.Rows
	if rows == nil {
		rows = [][]any{}
	}
	args := v.Args
	if args == nil {
		args = []any{}
	}
	return queryRunDTO{
		Query:     analyticsQueryToDTO(v.Query),
		Args:      args,
		Columns:   columns,
		Rows:      rows,
		Message:   v.Message,
		Error:     v.Error,
		Hint:      v.Hint,
		QueriedAt: v.QueriedAt,
	}
}
