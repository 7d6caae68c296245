package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/analytics"
	analyticsmock "github.com/riskibarqy/cricbuzz-livestats/internal/mocks/domain/analytics"
	"github.com/stretchr/testify/mock"
)

func TestAnalyticsService_Run_ReturnsRows(t *testing.T) {
	t.Parallel()

	q, _ := analytics.Find(1)
	runner := analyticsmock.NewRunner(t)
	runner.
		On("Run", mock.Anything, q.SQL, "Australia").
		Return(analytics.Result{
			Columns: []string{"full_name", "role", "batting_style", "bowling_style"},
			Rows:    [][]any{{"Pat Cummins", "Bowler", "Right-hand bat", "Right-arm fast"}},
		}, nil).
		Once()

	service := NewAnalyticsService(runner, AnalyticsServiceConfig{})
	service.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	view, err := service.Run(context.Background(), 1, map[string]string{"country": "Australia"})
	if err != nil {
		t.Fatalf("run query: %v", err)
	}
	if len(view.Rows) != 1 || view.Columns[0] != "full_name" {
		t.Fatalf("unexpected result: %+v", view)
	}
	if view.Message != "" || view.Error != "" {
		t.Fatalf("unexpected message/error: %q %q", view.Message, view.Error)
	}
	if view.QueriedAt != "2025-01-02 08:34:05 IST" {
		t.Fatalf("unexpected queried-at: %s", view.QueriedAt)
	}
}

func TestAnalyticsService_Run_EmptyResult(t *testing.T) {
	t.Parallel()

	q, _ := analytics.Find(4)
	runner := analyticsmock.NewRunner(t)
	runner.On("Run", mock.Anything, q.SQL).Return(analytics.Result{Columns: []string{"name"}}, nil).Once()

	view, err := NewAnalyticsService(runner, AnalyticsServiceConfig{}).Run(context.Background(), 4, nil)
	if err != nil {
		t.Fatalf("run query: %v", err)
	}
	if view.Message != "No rows returned." {
		t.Fatalf("unexpected message: %q", view.Message)
	}
}

func TestAnalyticsService_Run_SQLErrorIsSoft(t *testing.T) {
	t.Parallel()

	q, _ := analytics.Find(2)
	runner := analyticsmock.NewRunner(t)
	runner.
		On("Run", mock.Anything, q.SQL, int64(30)).
		Return(analytics.Result{}, errors.New(`pq: relation "venues" does not exist`)).
		Once()

	view, err := NewAnalyticsService(runner, AnalyticsServiceConfig{}).Run(context.Background(), 2, nil)
	if err != nil {
		t.Fatalf("expected soft failure, got %v", err)
	}
	if !strings.HasPrefix(view.Error, "SQL error: ") || !strings.Contains(view.Error, "venues") {
		t.Fatalf("unexpected error text: %q", view.Error)
	}
	if view.Hint != analytics.SQLErrorHint {
		t.Fatalf("unexpected hint: %q", view.Hint)
	}
}

func TestAnalyticsService_Run_InputErrors(t *testing.T) {
	t.Parallel()

	service := NewAnalyticsService(analyticsmock.NewRunner(t), AnalyticsServiceConfig{})

	if _, err := service.Run(context.Background(), 99, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Run(context.Background(), 2, map[string]string{"days": "-1"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	noDB := NewAnalyticsService(nil, AnalyticsServiceConfig{})
	if _, err := noDB.Run(context.Background(), 3, nil); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if _, err := noDB.Verify(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable from verify, got %v", err)
	}
}

type explainRunner struct {
	mu    sync.Mutex
	calls int
	fail  map[string]error
	panic string
}

func (r *explainRunner) Run(context.Context, string, ...any) (analytics.Result, error) {
	return analytics.Result{}, nil
}

func (r *explainRunner) Explain(_ context.Context, query string, _ ...any) error {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.panic != "" && strings.Contains(query, r.panic) {
		panic("planner exploded")
	}
	for marker, err := range r.fail {
		if strings.Contains(query, marker) {
			return err
		}
	}
	return nil
}

func TestAnalyticsService_Verify(t *testing.T) {
	t.Parallel()

	runner := &explainRunner{
		fail:  map[string]error{"STDDEV_SAMP(pms.runs)": errors.New("function stddev_samp does not exist")},
		panic: "capacity > 50000",
	}
	service := NewAnalyticsService(runner, AnalyticsServiceConfig{VerifyWorkers: 3})

	checks, err := service.Verify(context.Background())
	if err != nil {
		t.Fatalf("verify catalog: %v", err)
	}
	if len(checks) != 25 || runner.calls != 25 {
		t.Fatalf("unexpected checks=%d calls=%d", len(checks), runner.calls)
	}

	for i, c := range checks {
		if c.ID != i+1 {
			t.Fatalf("checks out of catalog order at %d: %d", i, c.ID)
		}
		switch c.ID {
		case 4:
			if c.OK || !strings.Contains(c.Error, "planner exploded") {
				t.Fatalf("expected recovered panic for query 4, got %+v", c)
			}
		case 19:
			if c.OK || !strings.Contains(c.Error, "stddev_samp") {
				t.Fatalf("expected failure for query 19, got %+v", c)
			}
		default:
			if !c.OK {
				t.Fatalf("expected query %d ok, got %+v", c.ID, c)
			}
		}
	}
}
