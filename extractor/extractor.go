// Package extractor is the boundary to the extraction library. Everything that talks to
// yt-dlp lives here; callers see Metadata, Event and DownloadError only.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vidl-cli/vidl/request"
)

// Extractor resolves a URL into metadata and downloads it.
type Extractor interface {
	// Extract fetches metadata without downloading anything.
	Extract(ctx context.Context, url string, opts request.Options) (Metadata, error)

	// Download fetches the media, calling onProgress for every progress update.
	Download(ctx context.Context, url string, opts request.Options, onProgress func(Event)) error
}

// Status is the phase reported with a progress event.
type Status string

const (
	StatusStarting       Status = "starting"
	StatusDownloading    Status = "downloading"
	StatusPostProcessing Status = "post_processing"
	StatusFinished       Status = "finished"
	StatusError          Status = "error"
)

// Event is a single progress update. It is rendered immediately and never stored.
type Event struct {
	Status             Status
	Percent            float64
	DownloadedBytes    int64
	TotalBytesEstimate int64
	// Speed in bytes per second, 0 when unknown.
	Speed    float64
	ETA      time.Duration
	Filename string
}

// NewEvent derives percent and speed from raw byte counters.
func NewEvent(status string, downloaded, total int64, elapsed time.Duration) Event {
	ev := Event{
		Status:             Status(status),
		DownloadedBytes:    downloaded,
		TotalBytesEstimate: total,
	}

	if total > 0 {
		ev.Percent = float64(downloaded) / float64(total) * 100
		if ev.Percent > 100 {
			ev.Percent = 100
		}
	}

	if elapsed > 0 {
		ev.Speed = float64(downloaded) / elapsed.Seconds()
	}

	return ev
}

// Metadata is the subset of the extraction library's info document shown to the user.
type Metadata struct {
	ID         string   `json:"id" jsonschema:"description=Site specific video identifier"`
	Title      string   `json:"title"`
	Duration   *float64 `json:"duration,omitempty" jsonschema:"description=Length in seconds"`
	ViewCount  *int64   `json:"view_count,omitempty"`
	Uploader   string   `json:"uploader,omitempty"`
	WebpageURL string   `json:"webpage_url,omitempty"`
	Extractor  string   `json:"extractor,omitempty" jsonschema:"description=Name of the site extractor that handled the URL"`
}

// ParseMetadata decodes a yt-dlp info document.
func ParseMetadata(data []byte) (Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata: %w", err)
	}
	return meta, nil
}

// DisplayTitle returns the title or a placeholder.
func (m Metadata) DisplayTitle() string {
	if m.Title == "" {
		return "Unknown Title"
	}
	return m.Title
}

// DisplayDuration returns whole seconds or "Unknown".
func (m Metadata) DisplayDuration() string {
	if m.Duration == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%.0f", *m.Duration)
}

// DisplayViews returns the view count or "Unknown".
func (m Metadata) DisplayViews() string {
	if m.ViewCount == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%d", *m.ViewCount)
}
