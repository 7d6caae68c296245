package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/analytics"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

const (
	defaultVerifyWorkers    = 4
	defaultAnalyticsTimeout = 30 * time.Second
	queriedAtLayout         = "2006-01-02 15:04:05 IST"
)

var istZone = time.FixedZone("IST", 5*60*60+30*60)

type QueryRunView struct {
	Query     analytics.Query
	Args      []any
	Columns   []string
	Rows      [][]any
	Message   string
	Error     string
	Hint      string
	QueriedAt string
}

// QueryCheck is the outcome of planning one catalog query.
type QueryCheck struct {
	ID    int
	Title string
	OK    bool
	Error string
}

type AnalyticsServiceConfig struct {
	VerifyWorkers int
	Timeout       time.Duration
	Logger        *logging.Logger
}

type AnalyticsService struct {
	runner  analytics.Runner
	workers int
	timeout time.Duration
	logger  *logging.Logger
	now     func() time.Time
}

func NewAnalyticsService(runner analytics.Runner, cfg AnalyticsServiceConfig) *AnalyticsService {
	workers := cfg.VerifyWorkers
	if workers <= 0 {
		workers = defaultVerifyWorkers
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultAnalyticsTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalyticsService{
		runner:  runner,
		workers: workers,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *AnalyticsService) Catalog(ctx context.Context) []analytics.Query {
	_, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Catalog")
	defer span.End()

	return analytics.Catalog()
}

// Run executes one catalog query. SQL failures are reported on the view.
func (s *AnalyticsService) Run(ctx context.Context, queryID int, params map[string]string) (QueryRunView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Run")
	defer span.End()

	q, ok := analytics.Find(queryID)
	if !ok {
		return QueryRunView{}, fmt.Errorf("%w: analytics query %d", ErrNotFound, queryID)
	}
	args, err := q.BindArgs(params)
	if err != nil {
		return QueryRunView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.runner == nil {
		return QueryRunView{}, fmt.Errorf("%w: analytics database is not configured", ErrDependencyUnavailable)
	}

	view := QueryRunView{
		Query:     q,
		Args:      args,
		QueriedAt: s.now().In(istZone).Format(queriedAtLayout),
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.runner.Run(runCtx, q.SQL, args...)
	if err != nil {
		s.logger.WarnContext(ctx, "analytics query failed", "query_id", q.ID, "error", err)
		view.Error = fmt.Sprintf("SQL error: %v", err)
		view.Hint = analytics.SQLErrorHint
		return view, nil
	}

	view.Columns = result.Columns
	view.Rows = result.Rows
	if len(result.Rows) == 0 {
		view.Message = "No rows returned."
	}
	return view, nil
}

// Verify plans every catalog query with its default arguments on a bounded
// worker pool. Results keep catalog order.
func (s *AnalyticsService) Verify(ctx context.Context) ([]QueryCheck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Verify")
	defer span.End()

	if s.runner == nil {
		return nil, fmt.Errorf("%w: analytics database is not configured", ErrDependencyUnavailable)
	}

	queries := analytics.Catalog()
	checks := make([]QueryCheck, len(queries))

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, q := range queries {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			checks[i] = s.check(ctx, q)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	failed := 0
	for _, c := range checks {
		if !c.OK {
			failed++
		}
	}
	s.logger.InfoContext(ctx, "analytics catalog verified", "queries", len(checks), "failed", failed)

	return checks, nil
}

func (s *AnalyticsService) check(ctx context.Context, q analytics.Query) QueryCheck {
	out := QueryCheck{ID: q.ID, Title: q.Title}

	var catcher panics.Catcher
	var explainErr error
	catcher.Try(func() {
		runCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		explainErr = s.runner.Explain(runCtx, q.SQL, q.DefaultArgs()...)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		explainErr = recovered.AsError()
	}

	if explainErr != nil {
		out.Error = explainErr.Error()
		return out
	}
	out.OK = true
	return out
}
