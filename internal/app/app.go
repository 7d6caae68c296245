package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricbuzz-livestats/external/cricbuzz"
	"github.com/riskibarqy/cricbuzz-livestats/internal/config"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/analytics"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/player"
	feedcache "github.com/riskibarqy/cricbuzz-livestats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricbuzz-livestats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricbuzz-livestats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricbuzz-livestats/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/cricbuzz-livestats/internal/platform/cache"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/resilience"
	"github.com/riskibarqy/cricbuzz-livestats/internal/usecase"
)

// NewHTTPServer wires the service graph. The returned cleanup closes the
// database pool when one was opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	client := cricbuzz.NewClient(cricbuzz.ClientConfig{
		BaseURL: cfg.CricbuzzBaseURL,
		Host:    cfg.RapidAPIHost,
		APIKey:  cfg.RapidAPIKey,
		Timeout: cfg.CricbuzzStatsTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CricbuzzCircuitEnabled,
			FailureThreshold: cfg.CricbuzzCircuitFailureCount,
			OpenTimeout:      cfg.CricbuzzCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CricbuzzCircuitHalfOpenMax,
		},
	})
	feed := feedcache.NewCricketFeed(client, basecache.NewStore(cfg.CacheTTL), client.Host(), cfg.RapidAPIKey, cfg.CacheTTL)

	var (
		db         *sqlx.DB
		playerRepo player.Repository
		runner     analytics.Runner
	)
	if cfg.DBURL != "" {
		opened, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		db = opened
		playerRepo = postgres.NewPlayerRepository(db)
		runner = postgres.NewAnalyticsRunner(db)
		logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		playerRepo = memory.NewPlayerRepository(nil)
		logger.Warn("database not configured, players kept in memory and analytics disabled")
	}

	handler := httpapi.NewHandler(
		usecase.NewMatchService(feed, usecase.MatchServiceConfig{
			Timeout: cfg.CricbuzzMatchTimeout,
			Logger:  logger,
		}),
		usecase.NewPlayerStatsService(feed, usecase.PlayerStatsServiceConfig{
			Timeout: cfg.CricbuzzStatsTimeout,
			Logger:  logger,
		}),
		usecase.NewPlayerService(playerRepo),
		usecase.NewAnalyticsService(runner, usecase.AnalyticsServiceConfig{
			VerifyWorkers: cfg.AnalyticsVerifyWorkers,
			Timeout:       cfg.AnalyticsQueryTimeout,
			Logger:        logger,
		}),
		usecase.NewCacheService(feed, logger),
		logger,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func() error {
		if db == nil {
			return nil
		}
		return db.Close()
	}
	return server, cleanup, nil
}
