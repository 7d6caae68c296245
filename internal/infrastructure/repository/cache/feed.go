package cache

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	basecache "github.com/riskibarqy/cricbuzz-livestats/internal/platform/cache"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
	"github.com/riskibarqy/cricbuzz-livestats/internal/usecase"
)

const feedKeyPrefix = "cricbuzz:"

// CricketFeed caches successful feed documents per host, API key and request.
// Failed fetches are not cached, so the next call reaches the API again.
type CricketFeed struct {
	next  usecase.CricketFeed
	cache *basecache.Store
	scope string
	ttl   time.Duration
}

func NewCricketFeed(next usecase.CricketFeed, cache *basecache.Store, host, apiKey string, ttl time.Duration) *CricketFeed {
	if ttl <= 0 {
		ttl = cache.TTL()
	}
	return &CricketFeed{
		next:  next,
		cache: cache,
		scope: feedScope(host, apiKey),
		ttl:   ttl,
	}
}

func (f *CricketFeed) Fetch(ctx context.Context, req usecase.FeedRequest) (jsontree.Node, error) {
	v, err := f.cache.GetOrLoadTTL(ctx, f.key(req), f.ttl, func(ctx context.Context) (any, error) {
		doc, err := f.next.Fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		return jsontree.Node{}, err
	}

	doc, _ := v.(jsontree.Node)
	return doc, nil
}

// Clear drops every cached document and reports how many were removed.
func (f *CricketFeed) Clear(context.Context) int {
	return f.cache.Clear()
}

func (f *CricketFeed) key(req usecase.FeedRequest) string {
	return feedKeyPrefix + f.scope + ":" + req.CacheKey()
}

// feedScope keeps documents fetched with different credentials apart without
// putting the key itself in the cache.
func feedScope(host, apiKey string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(apiKey))
	return host + ":" + strconv.FormatUint(h.Sum64(), 16)
}
