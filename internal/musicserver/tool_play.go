package musicserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_music/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerPlayTrack(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "music_play",
		Description: "Play a music track by name. Resolves the best matching video and either opens it in the local browser or downloads the audio file, depending on server configuration.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TrackInput) (*mcp.CallToolResult, engine.PlayTrackOutput, error) {
		if input.Name == "" {
			return nil, engine.PlayTrackOutput{}, fmt.Errorf("name is required")
		}
		engine.IncrPlay()

		best, ok, err := resolveBest(ctx, input.Name)
		if err != nil {
			var resErr *engine.ResolutionError
			if errors.As(err, &resErr) {
				// Malformed upstream result, not an ordinary miss. Re-raise.
				return nil, engine.PlayTrackOutput{}, err
			}
			return softError("search failed", err), engine.PlayTrackOutput{}, nil
		}
		if !ok {
			return textResult(fmt.Sprintf("No results found for %q.", input.Name)), engine.PlayTrackOutput{}, nil
		}

		if engine.Cfg.PlayMode == engine.PlayModeDownload {
			path, err := engine.AcquireAudio(ctx, best.VideoID, engine.Cfg.DownloadDir)
			if err != nil {
				return softError(fmt.Sprintf("could not play %q", best.Title), err), engine.PlayTrackOutput{}, nil
			}
			out := engine.PlayTrackOutput{Title: best.Title, Mode: engine.PlayModeDownload, Path: path}
			return textResult(fmt.Sprintf("Downloaded %q to %s", engine.TruncateTitle(best.Title), path)), out, nil
		}

		url := engine.WatchURL(best.VideoID)
		if err := engine.OpenURL(ctx, url); err != nil {
			return softError(fmt.Sprintf("could not open %q", best.Title), err), engine.PlayTrackOutput{}, nil
		}
		out := engine.PlayTrackOutput{Title: best.Title, Mode: engine.PlayModeBrowser, URL: url}
		return textResult(fmt.Sprintf("Now playing %q — %s", engine.TruncateTitle(best.Title), url)), out, nil
	})
}
