package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/jsontree"
)

const statusPreviewLen = 160

var (
	// ErrFeedTransport marks failures before an HTTP status was received.
	ErrFeedTransport = errors.New("network error")
	// ErrFeedMalformed marks a 200 response whose body is not JSON.
	ErrFeedMalformed = errors.New("server did not return valid JSON")
)

// FeedRequest addresses one Cricbuzz endpoint relative to the API host.
type FeedRequest struct {
	Path  string
	Query map[string]string
}

// CacheKey is the path plus the query in sorted order.
func (r FeedRequest) CacheKey() string {
	values := url.Values{}
	for key, value := range r.Query {
		values.Set(key, value)
	}
	encoded := values.Encode()
	if encoded == "" {
		return r.Path
	}
	return r.Path + "?" + encoded
}

// CricketFeed fetches decoded documents from the Cricbuzz API.
type CricketFeed interface {
	Fetch(ctx context.Context, req FeedRequest) (jsontree.Node, error)
}

// FeedStatusError is a non-200 response. Body holds the raw response text.
type FeedStatusError struct {
	StatusCode int
	Body       string
}

func (e *FeedStatusError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, Preview(e.Body, statusPreviewLen))
}

// Preview cuts text to at most n runes.
func Preview(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n])
}

// AsFeedStatus unwraps a FeedStatusError.
func AsFeedStatus(err error) (*FeedStatusError, bool) {
	var statusErr *FeedStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// feedMessage turns a feed failure into the message shown in a view.
func feedMessage(err error) string {
	if err == nil {
		return ""
	}
	if statusErr, ok := AsFeedStatus(err); ok {
		return statusErr.Error()
	}
	switch {
	case errors.Is(err, ErrFeedMalformed):
		return "Server did not return valid JSON."
	case errors.Is(err, ErrFeedTransport):
		return "Network error: " + strings.TrimPrefix(err.Error(), ErrFeedTransport.Error()+": ")
	case errors.Is(err, ErrDependencyUnavailable):
		return "Cricbuzz API is temporarily unavailable."
	case errors.Is(err, context.DeadlineExceeded):
		return "Network error: request timed out"
	default:
		return upperFirst(err.Error())
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
