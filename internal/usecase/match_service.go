package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/livematch"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
)

const (
	liveMatchesPath   = "/matches/v1/live"
	recentMatchesPath = "/matches/v1/recent"

	listingPreviewLen   = 300
	scorecardPreviewLen = 400

	defaultMatchTimeout = 15 * time.Second
)

// MatchListing is the flattened match list shown on the live page. Message is
// set only when there is nothing to list.
type MatchListing struct {
	Mode    livematch.Mode
	Matches []livematch.MatchSummary
	Notice  string
	Message string
}

type ScorecardView struct {
	MatchID   int64
	Scorecard livematch.Scorecard
	Message   string
	Preview   string
}

type MatchServiceConfig struct {
	Timeout time.Duration
	Logger  *logging.Logger
}

type MatchService struct {
	feed    CricketFeed
	timeout time.Duration
	logger  *logging.Logger
}

func NewMatchService(feed CricketFeed, cfg MatchServiceConfig) *MatchService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultMatchTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{feed: feed, timeout: timeout, logger: logger}
}

// ListMatches lists live matches, falling back to recent ones when nothing is
// live. Feed failures never fail the call; they end up in Message.
func (s *MatchService) ListMatches(ctx context.Context) (MatchListing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	liveDoc, liveErr := s.fetch(ctx, FeedRequest{Path: liveMatchesPath})
	if liveErr != nil {
		s.logger.WarnContext(ctx, "live matches unavailable", "error", liveErr)
	}
	listing := MatchListing{
		Mode:    livematch.ModeLive,
		Matches: livematch.Flatten(liveDoc),
	}
	if len(listing.Matches) > 0 {
		return listing, nil
	}

	recentDoc, recentErr := s.fetch(ctx, FeedRequest{Path: recentMatchesPath})
	if recentErr != nil {
		s.logger.WarnContext(ctx, "recent matches unavailable", "error", recentErr)
	}
	listing = MatchListing{
		Mode:    livematch.ModeRecent,
		Matches: livematch.Flatten(recentDoc),
		Notice:  "No live matches right now. Showing Recent Matches instead.",
	}
	if len(listing.Matches) == 0 {
		listing.Message = emptyListingMessage(liveErr, recentErr)
	}
	return listing, nil
}

// Snapshot finds a match in the live listing, then in the recent one, and
// builds its snapshot.
func (s *MatchService) Snapshot(ctx context.Context, matchID int64) (livematch.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Snapshot")
	defer span.End()

	if matchID <= 0 {
		return livematch.Snapshot{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	listing, err := s.ListMatches(ctx)
	if err != nil {
		return livematch.Snapshot{}, fmt.Errorf("list matches: %w", err)
	}
	if summary, ok := findMatch(listing.Matches, matchID); ok {
		return livematch.BuildSnapshot(summary, listing.Mode), nil
	}

	if listing.Mode == livematch.ModeLive {
		recentDoc, recentErr := s.fetch(ctx, FeedRequest{Path: recentMatchesPath})
		if recentErr != nil {
			s.logger.WarnContext(ctx, "recent matches unavailable", "error", recentErr)
		}
		if summary, ok := findMatch(livematch.Flatten(recentDoc), matchID); ok {
			return livematch.BuildSnapshot(summary, livematch.ModeRecent), nil
		}
	}

	if listing.Message != "" {
		return livematch.Snapshot{}, fmt.Errorf("%w: match=%d: %s", ErrNotFound, matchID, listing.Message)
	}
	return livematch.Snapshot{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
}

// Scorecard loads the match-center document for a match.
func (s *MatchService) Scorecard(ctx context.Context, matchID int64) (ScorecardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Scorecard")
	defer span.End()

	if matchID <= 0 {
		return ScorecardView{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	view := ScorecardView{MatchID: matchID}
	doc, err := s.fetch(ctx, FeedRequest{Path: "/mcenter/v1/" + strconv.FormatInt(matchID, 10)})
	switch {
	case err == nil:
		view.Scorecard = livematch.ParseScorecard(doc)
	case errors.Is(err, ErrFeedMalformed):
		view.Scorecard = livematch.Scorecard{}
	default:
		s.logger.WarnContext(ctx, "scorecard unavailable", "match_id", matchID, "error", err)
		if statusErr, ok := AsFeedStatus(err); ok {
			view.Message = fmt.Sprintf("API error %d", statusErr.StatusCode)
			view.Preview = Preview(statusErr.Body, scorecardPreviewLen)
		} else {
			view.Message = feedMessage(err)
		}
		return view, nil
	}

	if !view.Scorecard.Available {
		view.Message = "No scorecard available yet."
	}
	return view, nil
}

func findMatch(matches []livematch.MatchSummary, matchID int64) (livematch.MatchSummary, bool) {
	for _, summary := range matches {
		if summary.MatchID != nil && *summary.MatchID == matchID {
			return summary, true
		}
	}
	return livematch.MatchSummary{}, false
}

func (s *MatchService) fetch(ctx context.Context, req FeedRequest) (jsontree.Node, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.feed.Fetch(ctx, req)
}

// emptyListingMessage explains an empty listing: a live status error first,
// then a recent status error, then any other failure.
func emptyListingMessage(liveErr, recentErr error) string {
	if statusErr, ok := AsFeedStatus(liveErr); ok {
		return fmt.Sprintf("Live API error %d. Preview: %s", statusErr.StatusCode, Preview(statusErr.Body, listingPreviewLen))
	}
	if statusErr, ok := AsFeedStatus(recentErr); ok {
		return fmt.Sprintf("Recent API error %d. Preview: %s", statusErr.StatusCode, Preview(statusErr.Body, listingPreviewLen))
	}
	for _, err := range []error{liveErr, recentErr} {
		if err != nil && !errors.Is(err, ErrFeedMalformed) {
			return feedMessage(err)
		}
	}
	return "No matches to display."
}
