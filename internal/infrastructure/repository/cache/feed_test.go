package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	basecache "github.com/riskibarqy/cricbuzz-livestats/internal/platform/cache"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
	"github.com/riskibarqy/cricbuzz-livestats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFeed struct {
	calls atomic.Int32
	err   error
}

func (f *countingFeed) Fetch(_ context.Context, req usecase.FeedRequest) (jsontree.Node, error) {
	f.calls.Add(1)
	if f.err != nil {
		return jsontree.Node{}, f.err
	}
	return jsontree.New(map[string]any{"path": req.Path}), nil
}

func TestCricketFeed_CachesIdenticalRequests(t *testing.T) {
	t.Parallel()

	next := &countingFeed{}
	feed := NewCricketFeed(next, basecache.NewStore(time.Minute), "host", "key", 60*time.Second)

	req := usecase.FeedRequest{Path: "/stats/v1/rankings/batsmen", Query: map[string]string{"formatType": "test"}}
	first, err := feed.Fetch(context.Background(), req)
	require.NoError(t, err)
	second, err := feed.Fetch(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, first.Raw(), second.Raw())

	_, err = feed.Fetch(context.Background(), usecase.FeedRequest{Path: req.Path, Query: map[string]string{"formatType": "odi"}})
	require.NoError(t, err)
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCricketFeed_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	next := &countingFeed{err: &usecase.FeedStatusError{StatusCode: 500, Body: "boom"}}
	feed := NewCricketFeed(next, basecache.NewStore(time.Minute), "host", "key", 0)

	for i := 0; i < 2; i++ {
		_, err := feed.Fetch(context.Background(), usecase.FeedRequest{Path: "/matches/v1/live"})
		var statusErr *usecase.FeedStatusError
		require.True(t, errors.As(err, &statusErr))
	}
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCricketFeed_ClearForcesRefetch(t *testing.T) {
	t.Parallel()

	next := &countingFeed{}
	feed := NewCricketFeed(next, basecache.NewStore(time.Minute), "host", "key", time.Minute)
	req := usecase.FeedRequest{Path: "/matches/v1/live"}

	_, err := feed.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.Clear(context.Background()))

	_, err = feed.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCricketFeed_ScopesByCredentials(t *testing.T) {
	t.Parallel()

	store := basecache.NewStore(time.Minute)
	next := &countingFeed{}
	req := usecase.FeedRequest{Path: "/matches/v1/live"}

	_, err := NewCricketFeed(next, store, "host", "key-a", 0).Fetch(context.Background(), req)
	require.NoError(t, err)
	_, err = NewCricketFeed(next, store, "host", "key-b", 0).Fetch(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int32(2), next.calls.Load())
	assert.Equal(t, 2, store.Len())
}
