package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// YouTube Data API v3 search — the query resolver. Turns free text into an
// ordered candidate list; upstream ordering is preserved and no re-ranking is
// done, the upstream relevance is trusted as-is.

const (
	ytSearchURL  = "https://www.googleapis.com/youtube/v3/search"
	ytWatchBase  = "https://music.youtube.com/watch?v="
	maxCandidate = 10
	defCandidate = 5
)

type ytSearchResp struct {
	Items []ytItem `json:"items"`
}

type ytItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title string `json:"title"`
	} `json:"snippet"`
}

// WatchURL builds the playback URL for a resolved video identifier.
func WatchURL(videoID string) string {
	return ytWatchBase + videoID
}

// SearchTracks queries the search API and returns candidates in upstream
// order. Zero matches is an empty slice with a nil error, not a failure.
// Items without a video identifier are kept so that selection can report
// them as malformed rather than silently dropping them.
func SearchTracks(ctx context.Context, query string, limit int) ([]Candidate, error) {
	IncrSearch()
	if cfg.YouTubeAPIKey == "" {
		return nil, &SearchError{Err: fmt.Errorf("resolver disabled: no API key configured")}
	}
	if limit <= 0 || limit > maxCandidate {
		limit = defCandidate
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", limit))
	params.Set("q", query)
	params.Set("key", cfg.YouTubeAPIKey)

	apiURL := cfg.SearchURL + "?" + params.Encode()
	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
		if err != nil {
			return nil, err
		}
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, &SearchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &SearchError{Err: fmt.Errorf("search API %d: %s", resp.StatusCode, string(body))}
	}

	var result ytSearchResp
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &SearchError{Err: fmt.Errorf("decode search response: %w", err)}
	}

	candidates := make([]Candidate, 0, len(result.Items))
	for _, item := range result.Items {
		title := item.Snippet.Title
		if title == "" {
			title = UnknownTitle
		}
		candidates = append(candidates, Candidate{
			VideoID: item.ID.VideoID,
			Title:   title,
		})
	}
	return candidates, nil
}

// BestCandidate selects the first candidate. ok is false when the list is
// empty (a valid no-results outcome). A top candidate without a video
// identifier is a malformed upstream item and yields a *ResolutionError.
func BestCandidate(candidates []Candidate) (Candidate, bool, error) {
	if len(candidates) == 0 {
		return Candidate{}, false, nil
	}
	best := candidates[0]
	if best.VideoID == "" {
		return Candidate{}, false, &ResolutionError{
			Reason: fmt.Sprintf("search result %q has no video id", best.Title),
		}
	}
	return best, true, nil
}
