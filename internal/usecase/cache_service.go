package usecase

import (
	"context"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
)

// FeedCache is the cache in front of the Cricbuzz feed.
type FeedCache interface {
	Clear(ctx context.Context) int
}

type CacheService struct {
	cache  FeedCache
	logger *logging.Logger
}

func NewCacheService(cache FeedCache, logger *logging.Logger) *CacheService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CacheService{cache: cache, logger: logger}
}

// Refresh drops every cached feed document so the next reads hit the API.
func (s *CacheService) Refresh(ctx context.Context) int {
	ctx, span := startUsecaseSpan(ctx, "usecase.CacheService.Refresh")
	defer span.End()

	if s.cache == nil {
		return 0
	}
	removed := s.cache.Clear(ctx)
	s.logger.InfoContext(ctx, "feed cache cleared", "removed", removed)
	return removed
}
