package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Audio acquisition — runs the external downloader and resolves the produced
// file's path. The downloader's textual output is not guaranteed to be
// parseable, so resolution is a two-stage strategy: parse the destination
// marker from stdout, then fall back to scanning the output directory.

const (
	audioFormat = "mp3"
	audioExt    = ".mp3"

	// extractMarker precedes the final path in the downloader's stdout when
	// audio extraction runs. Expected but not guaranteed.
	extractMarker = "[ExtractAudio] Destination:"
)

// artifactResolver is one strategy for locating the downloaded file.
// Implementations return "" when they cannot resolve a path; only the scan
// stage can fail outright.
type artifactResolver interface {
	resolve(stdout, dir string) (string, error)
}

// markerResolver finds the extraction-destination marker line in the
// downloader's stdout. Authoritative when present.
type markerResolver struct{}

func (markerResolver) resolve(stdout, _ string) (string, error) {
	for _, line := range strings.Split(stdout, "\n") {
		if idx := strings.Index(line, extractMarker); idx >= 0 {
			if path := strings.TrimSpace(line[idx+len(extractMarker):]); path != "" {
				return path, nil
			}
		}
	}
	return "", nil
}

// scanResolver picks the most recently modified audio file in the output
// directory. Ties are broken arbitrarily; acceptable inside the narrow time
// window of a single download, but unsafe when concurrent downloads share the
// directory. Callers avoid that by defaulting to a per-request directory.
type scanResolver struct{}

func (scanResolver) resolve(_, dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), audioExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = filepath.Join(dir, entry.Name())
			newestMod = mod
		}
	}
	return newest, nil
}

// acquireResolvers are tried in order; the first non-empty path wins.
var acquireResolvers = []artifactResolver{markerResolver{}, scanResolver{}}

// AcquireAudio downloads the audio track for videoID and returns the absolute
// path of the produced file. An empty outputDir selects a unique per-request
// directory under the system temp location, which keeps the fallback scan safe
// under concurrent calls. Download failures yield an *AcquisitionError; a
// completed download whose artifact cannot be located yields a
// *ResolutionError so the two are distinguishable.
func AcquireAudio(ctx context.Context, videoID, outputDir string) (string, error) {
	IncrDownloaderRun()
	if outputDir == "" {
		outputDir = filepath.Join(os.TempDir(), "go_music", uuid.NewString())
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", &AcquisitionError{Err: fmt.Errorf("create output dir: %w", err)}
	}

	if cfg.DownloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DownloadTimeout)
		defer cancel()
	}

	template := filepath.Join(outputDir, "%(title)s.%(ext)s")
	res, err := RunCommand(ctx, cfg.DownloaderBin,
		"-x",
		"--audio-format", audioFormat,
		"-o", template,
		WatchURL(videoID),
	)
	if err != nil {
		return "", &AcquisitionError{Err: err}
	}

	for _, r := range acquireResolvers {
		path, err := r.resolve(res.Stdout, outputDir)
		if err != nil {
			return "", &ResolutionError{Reason: fmt.Sprintf("scan output dir: %v", err)}
		}
		if path != "" {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
			return path, nil
		}
	}
	return "", &ResolutionError{Reason: "could not determine downloaded file path"}
}
