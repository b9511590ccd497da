package musicserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_music/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerDownloadTrack(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "music_download",
		Description: "Download a music track by name as an audio file. Resolves the best matching video, extracts its audio via the external downloader, and returns the file path.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.TrackInput) (*mcp.CallToolResult, engine.DownloadTrackOutput, error) {
		if input.Name == "" {
			return nil, engine.DownloadTrackOutput{}, fmt.Errorf("name is required")
		}
		engine.IncrDownload()

		best, ok, err := resolveBest(ctx, input.Name)
		if err != nil {
			var resErr *engine.ResolutionError
			if errors.As(err, &resErr) {
				return nil, engine.DownloadTrackOutput{}, err
			}
			return softError("search failed", err), engine.DownloadTrackOutput{}, nil
		}
		if !ok {
			return textResult(fmt.Sprintf("No results found for %q.", input.Name)), engine.DownloadTrackOutput{}, nil
		}

		path, err := engine.AcquireAudio(ctx, best.VideoID, engine.Cfg.DownloadDir)
		if err != nil {
			return softError(fmt.Sprintf("could not download %q", best.Title), err), engine.DownloadTrackOutput{}, nil
		}

		out := engine.DownloadTrackOutput{Title: best.Title, Path: path}
		return textResult(fmt.Sprintf("Downloaded %q to %s", engine.TruncateTitle(best.Title), path)), out, nil
	})
}
