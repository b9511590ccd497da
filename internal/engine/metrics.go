package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests   atomic.Int64
	PlayRequests     atomic.Int64
	DownloadRequests atomic.Int64
	Launches         atomic.Int64
	DownloaderRuns   atomic.Int64
}

// GetMetrics returns a snapshot of all counters including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":   metrics.SearchRequests.Load(),
		"play_requests":     metrics.PlayRequests.Load(),
		"download_requests": metrics.DownloadRequests.Load(),
		"launches":          metrics.Launches.Load(),
		"downloader_runs":   metrics.DownloaderRuns.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as simple text for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"search_requests", "play_requests", "download_requests",
		"launches", "downloader_runs",
		"cache_hits", "cache_misses",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the musicserver package and engine internals.
func IncrSearch() { metrics.SearchRequests.Add(1) }

func IncrPlay() { metrics.PlayRequests.Add(1) }

func IncrDownload() { metrics.DownloadRequests.Add(1) }

func IncrLaunch() { metrics.Launches.Add(1) }

func IncrDownloaderRun() { metrics.DownloaderRuns.Add(1) }
