// Package musicserver registers the music MCP tools: music_search,
// music_play, music_download. Each tool takes a free-text track name; the
// engine package does the actual resolution and acquisition work.
package musicserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_music/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all music tools on the given MCP server. When no
// search API key is configured nothing is registered: the server comes up
// with an empty tool list instead of failing on first call.
func RegisterTools(server *mcp.Server) int {
	if !engine.Enabled() {
		slog.Warn("music tools disabled: YOUTUBE_API_KEY not set")
		return 0
	}
	registerSearchTrack(server)
	registerPlayTrack(server)
	registerDownloadTrack(server)
	return 3
}

// softError shapes an internal failure into a tool response the caller can
// always consume: readable message plus the error flag. Used for search,
// process and launch failures; malformed-result resolution errors are
// returned as hard errors instead.
func softError(msg string, err error) *mcp.CallToolResult {
	slog.Warn("tool error", slog.String("message", msg), slog.Any("error", err))
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("%s: %v", msg, err)}},
		IsError: true,
	}
}

// textResult wraps a plain text message in a successful tool response.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// resolveCandidates returns the candidate list for a track name, cache-first.
func resolveCandidates(ctx context.Context, name string) ([]engine.Candidate, error) {
	key := engine.CacheKey("candidates", name)
	if candidates, ok := engine.CacheGet(ctx, key); ok {
		return candidates, nil
	}
	candidates, err := engine.SearchTracks(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	engine.CacheSet(ctx, key, candidates)
	return candidates, nil
}

// resolveBest resolves a track name to its best (first) candidate.
// ok is false on the valid zero-results outcome. A top candidate without a
// video identifier propagates as a *engine.ResolutionError.
func resolveBest(ctx context.Context, name string) (engine.Candidate, bool, error) {
	candidates, err := resolveCandidates(ctx, name)
	if err != nil {
		return engine.Candidate{}, false, err
	}
	return engine.BestCandidate(candidates)
}
