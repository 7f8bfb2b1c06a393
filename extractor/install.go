package extractor

import (
	"context"
	"fmt"

	"github.com/lrstanley/go-ytdlp"
	"github.com/vidl-cli/vidl/log"
)

// EnsureYtDLP makes a yt-dlp binary available, preferring one already installed on the
// system and downloading into the library's cache otherwise.
func EnsureYtDLP(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	log.Info("yt-dlp available")
	return nil
}

// InstallFFmpeg downloads ffmpeg and ffprobe builds for platforms the library supports.
func InstallFFmpeg(ctx context.Context) error {
	if _, err := ytdlp.InstallFFmpeg(ctx, nil); err != nil {
		return fmt.Errorf("install ffmpeg: %w", err)
	}
	if _, err := ytdlp.InstallFFprobe(ctx, nil); err != nil {
		return fmt.Errorf("install ffprobe: %w", err)
	}
	log.Info("ffmpeg and ffprobe installed")
	return nil
}
