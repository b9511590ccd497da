package engine

// --- Core resolution types ---

// UnknownTitle is substituted when the upstream snippet carries no title.
const UnknownTitle = "Unknown Title"

// Candidate is one search result naming a playable piece of media.
// VideoID is the opaque upstream key; Title is display-only.
type Candidate struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
}

// --- Tool inputs (JSON schemas derived from tags) ---

type TrackInput struct {
	Name string `json:"name" jsonschema:"Track name to search for, free text"`
}

// --- Tool outputs (JSON responses) ---

type TrackResult struct {
	Index   int    `json:"index"`
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

type SearchTrackOutput struct {
	Query   string        `json:"query"`
	Total   int           `json:"total"`
	Results []TrackResult `json:"results"`
}

type PlayTrackOutput struct {
	Title string `json:"title"`
	Mode  string `json:"mode"`           // browser or download
	URL   string `json:"url,omitempty"`  // set in browser mode
	Path  string `json:"path,omitempty"` // set in download mode
}

type DownloadTrackOutput struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}
