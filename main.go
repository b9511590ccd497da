// go_music — music search, play & download MCP server.
//
// Exposes three MCP tools: music_search, music_play, music_download.
// Resolution goes through the YouTube Data API; audio acquisition shells out
// to yt-dlp. Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_music/internal/engine"
	"github.com/anatolykoptev/go_music/internal/musicserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_music",
		slog.String("port", mcpPort),
		slog.String("play_mode", engine.Cfg.PlayMode),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_music",
		Version: version,
	}, nil)

	count := musicserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", count))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_music",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 900 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		YouTubeAPIKey:   env.Str("YOUTUBE_API_KEY", ""),
		PlayMode:        env.Str("PLAY_MODE", engine.PlayModeBrowser),
		DownloadDir:     env.Str("DOWNLOAD_DIR", ""),
		DownloaderBin:   env.Str("DOWNLOADER_BIN", "yt-dlp"),
		DownloadTimeout: env.Duration("DOWNLOAD_TIMEOUT", 10*time.Minute),
		CacheTTL:        env.Duration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries: env.Int("CACHE_MAX_ENTRIES", 1000),
	}
	engine.Init(c)
	engine.InitCache(env.Str("REDIS_URL", ""), c.CacheTTL, c.CacheMaxEntries)
}
