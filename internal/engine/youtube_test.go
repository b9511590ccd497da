package engine

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RoundTripFunc lets a test stand in for the search API transport.
type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func initTestEngine(fn RoundTripFunc) {
	Init(Config{
		YouTubeAPIKey: "test-key",
		HTTPClient:    &http.Client{Transport: fn},
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestSearchTracks(t *testing.T) {
	var gotQuery map[string]string
	initTestEngine(func(req *http.Request) *http.Response {
		q := req.URL.Query()
		gotQuery = map[string]string{
			"part":       q.Get("part"),
			"type":       q.Get("type"),
			"maxResults": q.Get("maxResults"),
			"q":          q.Get("q"),
			"key":        q.Get("key"),
		}
		return jsonResponse(200, `{
			"items": [
				{"id": {"videoId": "fJ9rUzIMcZQ"}, "snippet": {"title": "Bohemian Rhapsody"}},
				{"id": {"videoId": "vid2"}, "snippet": {"title": "Bohemian Rhapsody (Live)"}}
			]
		}`)
	})

	candidates, err := SearchTracks(context.Background(), "Bohemian Rhapsody", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "fJ9rUzIMcZQ", candidates[0].VideoID)
	assert.Equal(t, "Bohemian Rhapsody", candidates[0].Title)

	assert.Equal(t, "snippet", gotQuery["part"])
	assert.Equal(t, "video", gotQuery["type"])
	assert.Equal(t, "5", gotQuery["maxResults"])
	assert.Equal(t, "Bohemian Rhapsody", gotQuery["q"])
	assert.Equal(t, "test-key", gotQuery["key"])
}

func TestSearchTracksEmptyResult(t *testing.T) {
	initTestEngine(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"items": []}`)
	})

	candidates, err := SearchTracks(context.Background(), "zxqy no such track", 5)
	require.NoError(t, err, "zero matches is a valid empty outcome, not an error")
	assert.Empty(t, candidates)
}

func TestSearchTracksUpstreamError(t *testing.T) {
	initTestEngine(func(req *http.Request) *http.Response {
		return jsonResponse(403, `{"error": {"message": "quota exceeded"}}`)
	})

	_, err := SearchTracks(context.Background(), "anything", 5)
	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Contains(t, searchErr.Error(), "403")
}

func TestSearchTracksDisabledResolver(t *testing.T) {
	Init(Config{})
	_, err := SearchTracks(context.Background(), "anything", 5)
	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
}

func TestSearchTracksDefaultsMissingTitle(t *testing.T) {
	initTestEngine(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"items": [{"id": {"videoId": "vid1"}, "snippet": {}}]}`)
	})

	candidates, err := SearchTracks(context.Background(), "mystery", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, UnknownTitle, candidates[0].Title)
}

func TestSearchTracksLimitClamped(t *testing.T) {
	var gotMax string
	initTestEngine(func(req *http.Request) *http.Response {
		gotMax = req.URL.Query().Get("maxResults")
		return jsonResponse(200, `{"items": []}`)
	})

	_, err := SearchTracks(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Equal(t, "5", gotMax, "zero limit falls back to the default")

	_, err = SearchTracks(context.Background(), "q", 99)
	require.NoError(t, err)
	assert.Equal(t, "5", gotMax, "out-of-range limit falls back to the default")
}

func TestBestCandidate(t *testing.T) {
	t.Run("first wins", func(t *testing.T) {
		best, ok, err := BestCandidate([]Candidate{
			{VideoID: "a", Title: "first"},
			{VideoID: "b", Title: "second"},
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "a", best.VideoID)
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		_, ok, err := BestCandidate(nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing video id is a resolution error", func(t *testing.T) {
		_, _, err := BestCandidate([]Candidate{{Title: "broken item"}})
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
	})
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("fJ9rUzIMcZQ")
	if got != "https://music.youtube.com/watch?v=fJ9rUzIMcZQ" {
		t.Errorf("WatchURL = %q", got)
	}
}

func TestSearchErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &SearchError{Err: cause}
	assert.ErrorIs(t, err, cause)
}
