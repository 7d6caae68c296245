package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/livematch"
)

const oneMatchListing = `{"typeMatches": [{"seriesMatches": [{"seriesAdWrapper": {
	"seriesName": "IPL 2025",
	"matches": [{
		"matchInfo": {"matchId": 42, "matchDesc": "Final, T20",
			"team1": {"teamName": "Chennai", "teamSName": "CSK"},
			"team2": {"teamName": "Mumbai", "teamSName": "MI"}},
		"matchScore": {"team1Score": {"inngs1": {"runs": 180, "wickets": 6, "overs": "20"}}}
	}]
}}]}]}`

func TestMatchService_ListMatches_PrefersLive(t *testing.T) {
	t.Parallel()

	feed := newStubFeed(t, map[string]stubResponse{
		liveMatchesPath: {raw: oneMatchListing},
	})
	listing, err := NewMatchService(feed, MatchServiceConfig{}).ListMatches(context.Background())
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if listing.Mode != livematch.ModeLive || len(listing.Matches) != 1 {
		t.Fatalf("unexpected listing: mode=%s matches=%d", listing.Mode, len(listing.Matches))
	}
	if got := listing.Matches[0].Label; got != "Chennai vs Mumbai — IPL 2025 (T20)" {
		t.Fatalf("unexpected label: %s", got)
	}
	if calls := feed.Calls(); len(calls) != 1 {
		t.Fatalf("expected only the live call, got %v", calls)
	}
}

func TestMatchService_ListMatches_FallsBackToRecent(t *testing.T) {
	t.Parallel()

	feed := newStubFeed(t, map[string]stubResponse{
		liveMatchesPath:   {raw: `{"typeMatches": []}`},
		recentMatchesPath: {raw: oneMatchListing},
	})
	listing, err := NewMatchService(feed, MatchServiceConfig{}).ListMatches(context.Background())
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if listing.Mode != livematch.ModeRecent || len(listing.Matches) != 1 {
		t.Fatalf("unexpected listing: mode=%s matches=%d", listing.Mode, len(listing.Matches))
	}
	if listing.Notice == "" || listing.Message != "" {
		t.Fatalf("unexpected notice=%q message=%q", listing.Notice, listing.Message)
	}
}

func TestMatchService_ListMatches_EmptyMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responses map[string]stubResponse
		want      string
	}{
		{
			name: "live status error wins",
			responses: map[string]stubResponse{
				liveMatchesPath:   {err: &FeedStatusError{StatusCode: 429, Body: strings.Repeat("q", 400)}},
				recentMatchesPath: {err: &FeedStatusError{StatusCode: 500, Body: "down"}},
			},
			want: "Live API error 429. Preview: " + strings.Repeat("q", 300),
		},
		{
			name: "recent status error",
			responses: map[string]stubResponse{
				liveMatchesPath:   {raw: `{}`},
				recentMatchesPath: {err: &FeedStatusError{StatusCode: 503, Body: "maintenance"}},
			},
			want: "Recent API error 503. Preview: maintenance",
		},
		{
			name: "malformed live is treated as no data",
			responses: map[string]stubResponse{
				liveMatchesPath:   {err: fmt.Errorf("%w: decode", ErrFeedMalformed)},
				recentMatchesPath: {raw: `{"typeMatches": "nope"}`},
			},
			want: "No matches to display.",
		},
		{
			name: "transport failure",
			responses: map[string]stubResponse{
				liveMatchesPath:   {err: fmt.Errorf("%w: send request: dial tcp: refused", ErrFeedTransport)},
				recentMatchesPath: {raw: `{}`},
			},
			want: "Network error: send request: dial tcp: refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			listing, err := NewMatchService(newStubFeed(t, tc.responses), MatchServiceConfig{}).ListMatches(context.Background())
			if err != nil {
				t.Fatalf("list matches: %v", err)
			}
			if len(listing.Matches) != 0 {
				t.Fatalf("expected no matches, got %d", len(listing.Matches))
			}
			if listing.Message != tc.want {
				t.Fatalf("unexpected message:\n got=%q\nwant=%q", listing.Message, tc.want)
			}
		})
	}
}

func TestMatchService_Snapshot(t *testing.T) {
	t.Parallel()

	feed := newStubFeed(t, map[string]stubResponse{
		liveMatchesPath: {raw: oneMatchListing},
	})
	service := NewMatchService(feed, MatchServiceConfig{})

	snapshot, err := service.Snapshot(context.Background(), 42)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot.BattingTeam != "CSK" || snapshot.BowlingTeam != "MI" {
		t.Fatalf("unexpected teams: batting=%s bowling=%s", snapshot.BattingTeam, snapshot.BowlingTeam)
	}
	if len(snapshot.ScoreLines) != 1 || snapshot.ScoreLines[0] != "CSK: 180/6 (20)" {
		t.Fatalf("unexpected score lines: %v", snapshot.ScoreLines)
	}

	if _, err := service.Snapshot(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Snapshot(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Snapshot_FindsRecentMatchWhileOthersAreLive(t *testing.T) {
	t.Parallel()

	recent := strings.Replace(oneMatchListing, `"matchId": 42`, `"matchId": 77`, 1)
	feed := newStubFeed(t, map[string]stubResponse{
		liveMatchesPath:   {raw: oneMatchListing},
		recentMatchesPath: {raw: recent},
	})
	service := NewMatchService(feed, MatchServiceConfig{})

	snapshot, err := service.Snapshot(context.Background(), 77)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot.Mode != livematch.ModeRecent {
		t.Fatalf("expected recent mode, got %s", snapshot.Mode)
	}

	live, err := service.Snapshot(context.Background(), 42)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if live.Mode != livematch.ModeLive {
		t.Fatalf("expected live mode, got %s", live.Mode)
	}

	if _, err := service.Snapshot(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Scorecard(t *testing.T) {
	t.Parallel()

	feed := newStubFeed(t, map[string]stubResponse{
		"/mcenter/v1/42": {raw: `{"scoreCard": [{"batTeamDetails": {"batsmen": [{"name": "Dhoni", "r": 30}]}}]}`},
		"/mcenter/v1/43": {raw: `{"matchHeader": {}}`},
		"/mcenter/v1/44": {err: &FeedStatusError{StatusCode: 500, Body: strings.Repeat("z", 500)}},
	})
	service := NewMatchService(feed, MatchServiceConfig{})

	view, err := service.Scorecard(context.Background(), 42)
	if err != nil {
		t.Fatalf("scorecard: %v", err)
	}
	if !view.Scorecard.Available || len(view.Scorecard.BattingRows) != 1 || view.Message != "" {
		t.Fatalf("unexpected scorecard view: %+v", view)
	}

	view, err = service.Scorecard(context.Background(), 43)
	if err != nil {
		t.Fatalf("scorecard: %v", err)
	}
	if view.Scorecard.Available || view.Message != "No scorecard available yet." {
		t.Fatalf("unexpected unavailable view: %+v", view)
	}

	view, err = service.Scorecard(context.Background(), 44)
	if err != nil {
		t.Fatalf("scorecard: %v", err)
	}
	if view.Message != "API error 500" || len(view.Preview) != 400 {
		t.Fatalf("unexpected error view: message=%q preview=%d", view.Message, len(view.Preview))
	}
}
