package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/playerstats"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
)

const defaultStatsTimeout = 20 * time.Second

type RankingsView struct {
	Role    playerstats.Role
	Format  playerstats.Format
	Table   playerstats.Table
	Message string
}

type PlayerSearchView struct {
	Query   string
	Hits    []playerstats.PlayerHit
	Message string
}

type PlayerStatsView struct {
	PlayerID       string
	Profile        []playerstats.Field
	ProfileMessage string
	Career         []playerstats.Table
	CareerMessage  string
}

type PlayerStatsServiceConfig struct {
	Timeout time.Duration
	Logger  *logging.Logger
}

type PlayerStatsService struct {
	feed    CricketFeed
	timeout time.Duration
	logger  *logging.Logger
}

func NewPlayerStatsService(feed CricketFeed, cfg PlayerStatsServiceConfig) *PlayerStatsService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultStatsTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStatsService{feed: feed, timeout: timeout, logger: logger}
}

func (s *PlayerStatsService) Rankings(ctx context.Context, role, format string) (RankingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Rankings")
	defer span.End()

	parsedRole, err := playerstats.ParseRole(role)
	if err != nil {
		return RankingsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parsedFormat, err := playerstats.ParseFormat(format)
	if err != nil {
		return RankingsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	view := RankingsView{Role: parsedRole, Format: parsedFormat}
	doc, err := s.fetch(ctx, FeedRequest{
		Path:  playerstats.RankingsPath(parsedRole),
		Query: playerstats.RankingsQuery(parsedFormat),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "rankings unavailable", "role", parsedRole, "format", parsedFormat, "error", err)
		view.Message = feedMessage(err)
		return view, nil
	}

	view.Table = playerstats.NormalizeRankings(doc)
	if view.Table.Empty() {
		view.Message = "No ranking data available right now."
	}
	return view, nil
}

// SearchPlayers walks the known search routes and returns the hits of the
// first one that finds anybody. Failing routes are skipped.
func (s *PlayerStatsService) SearchPlayers(ctx context.Context, name string) (PlayerSearchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.SearchPlayers")
	defer span.End()

	name = playerstats.NormalizeName(name)
	if name == "" {
		return PlayerSearchView{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	view := PlayerSearchView{Query: name, Hits: []playerstats.PlayerHit{}}
	for _, endpoint := range playerstats.SearchEndpoints {
		doc, err := s.fetch(ctx, FeedRequest{
			Path:  endpoint.Path,
			Query: map[string]string{endpoint.Param: name},
		})
		if err != nil {
			s.logger.DebugContext(ctx, "player search route failed", "path", endpoint.Path, "error", err)
			continue
		}
		if hits := playerstats.ExtractHits(doc); len(hits) > 0 {
			view.Hits = hits
			return view, nil
		}
	}

	view.Message = "No players found for that name."
	return view, nil
}

// PlayerStats loads the profile and career of one player. The career falls
// back to the section embedded in the profile when its own route fails.
func (s *PlayerStatsService) PlayerStats(ctx context.Context, playerID string) (PlayerStatsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.PlayerStats")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerStatsView{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	escapedID := url.PathEscape(playerID)
	view := PlayerStatsView{PlayerID: playerID}

	profile := jsontree.Missing()
	for _, path := range playerstats.ProfilePaths(escapedID) {
		doc, err := s.fetch(ctx, FeedRequest{Path: path})
		if err == nil && doc.Truthy() {
			profile = doc
			break
		}
		if err != nil {
			s.logger.DebugContext(ctx, "player profile route failed", "path", path, "error", err)
		}
	}

	view.Profile = playerstats.ProfileFields(profile)
	switch {
	case !profile.Exists():
		view.ProfileMessage = "Profile not available on this mirror."
	case len(view.Profile) == 0:
		view.ProfileMessage = "Basic profile details not available."
	}

	career, careerErr := s.fetch(ctx, FeedRequest{Path: playerstats.CareerPath(escapedID)})
	if careerErr != nil || !career.Truthy() {
		if embedded, ok := playerstats.EmbeddedCareer(profile); ok {
			career, careerErr = embedded, nil
		}
	}
	if careerErr != nil || !career.Truthy() {
		view.CareerMessage = "Career data not available."
		return view, nil
	}

	tables, ok := playerstats.CareerTables(career)
	if !ok {
		view.CareerMessage = "Career data not available in a tabular form."
	}
	view.Career = tables
	return view, nil
}

func (s *PlayerStatsService) fetch(ctx context.Context, req FeedRequest) (jsontree.Node, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.feed.Fetch(ctx, req)
}
