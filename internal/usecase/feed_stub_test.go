package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

type stubResponse struct {
	raw string
	err error
}

// stubFeed answers by cache key; unknown keys fail with a 404 status.
type stubFeed struct {
	t         *testing.T
	mu        sync.Mutex
	responses map[string]stubResponse
	calls     []string
}

func newStubFeed(t *testing.T, responses map[string]stubResponse) *stubFeed {
	t.Helper()
	return &stubFeed{t: t, responses: responses}
}

func (f *stubFeed) Fetch(_ context.Context, req FeedRequest) (jsontree.Node, error) {
	key := req.CacheKey()

	f.mu.Lock()
	f.calls = append(f.calls, key)
	resp, ok := f.responses[key]
	f.mu.Unlock()

	if !ok {
		return jsontree.Node{}, &FeedStatusError{StatusCode: 404, Body: "not found"}
	}
	if resp.err != nil {
		return jsontree.Node{}, resp.err
	}
	doc, err := jsontree.Parse([]byte(resp.raw))
	if err != nil {
		f.t.Fatalf("invalid stub payload for %s: %v", key, err)
	}
	return doc, nil
}

func (f *stubFeed) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
