package musicserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_music/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSearchTrack(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "music_search",
		Description: "Search for a music track by name. Returns a ranked list of video candidates (title, video ID, URL) in upstream relevance order.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TrackInput) (*mcp.CallToolResult, engine.SearchTrackOutput, error) {
		if input.Name == "" {
			return nil, engine.SearchTrackOutput{}, fmt.Errorf("name is required")
		}

		candidates, err := resolveCandidates(ctx, input.Name)
		if err != nil {
			return softError("search failed", err), engine.SearchTrackOutput{}, nil
		}

		out := engine.SearchTrackOutput{Query: input.Name, Total: len(candidates)}
		if len(candidates) == 0 {
			return textResult(fmt.Sprintf("No results found for %q.", input.Name)), out, nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Results for %q:\n", input.Name)
		for i, c := range candidates {
			url := ""
			if c.VideoID != "" {
				url = engine.WatchURL(c.VideoID)
			}
			out.Results = append(out.Results, engine.TrackResult{
				Index:   i + 1,
				VideoID: c.VideoID,
				Title:   c.Title,
				URL:     url,
			})
			fmt.Fprintf(&sb, "%d. %s — %s\n", i+1, engine.TruncateTitle(c.Title), url)
		}
		return textResult(sb.String()), out, nil
	})
}
