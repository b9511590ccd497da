package engine

import (
	"net/http"
	"time"
)

// PlayMode selects what music_play does with the best candidate.
const (
	PlayModeBrowser  = "browser"  // open the watch URL in the local browser
	PlayModeDownload = "download" // fetch the audio file instead
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey string // empty = resolver disabled, tools not registered
	SearchURL     string // YouTube Data API search endpoint, overrideable for tests

	PlayMode        string        // PlayModeBrowser or PlayModeDownload
	DownloadDir     string        // empty = unique per-request temp dir
	DownloaderBin   string        // yt-dlp binary name or path
	DownloadTimeout time.Duration // hard cap on one downloader run

	CacheTTL        time.Duration
	CacheMaxEntries int

	HTTPClient *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for the musicserver package.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.SearchURL == "" {
		c.SearchURL = ytSearchURL
	}
	if c.DownloaderBin == "" {
		c.DownloaderBin = "yt-dlp"
	}
	if c.PlayMode == "" {
		c.PlayMode = PlayModeBrowser
	}
	if c.DownloadTimeout <= 0 {
		c.DownloadTimeout = 10 * time.Minute
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	cfg = c
	Cfg = &cfg
}

// Enabled reports whether the resolver has an API key and the music tools
// should be registered at all.
func Enabled() bool {
	return cfg.YouTubeAPIKey != ""
}
