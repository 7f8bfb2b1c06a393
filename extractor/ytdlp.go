package extractor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/vidl-cli/vidl/log"
	"github.com/vidl-cli/vidl/request"
)

// ErrEmptyMetadata means yt-dlp succeeded but printed no info document.
var ErrEmptyMetadata = errors.New("yt-dlp returned no metadata")

// YtDLP implements Extractor on top of github.com/lrstanley/go-ytdlp.
type YtDLP struct {
	executable string
	interval   time.Duration
}

// YtDLPOption customises YtDLP.
type YtDLPOption func(*YtDLP)

// WithExecutable pins the yt-dlp binary instead of letting the library resolve it.
func WithExecutable(path string) YtDLPOption {
	return func(y *YtDLP) { y.executable = path }
}

// WithProgressInterval sets the minimum time between progress callbacks.
func WithProgressInterval(d time.Duration) YtDLPOption {
	return func(y *YtDLP) {
		if d > 0 {
			y.interval = d
		}
	}
}

// NewYtDLP returns an Extractor driving yt-dlp.
func NewYtDLP(opts ...YtDLPOption) *YtDLP {
	y := &YtDLP{interval: 250 * time.Millisecond}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

func (y *YtDLP) command(opts request.Options) *ytdlp.Command {
	cmd := ytdlp.New().
		Format(opts.Format).
		MergeOutputFormat(opts.MergeOutputFormat).
		Output(opts.OutputTemplate)

	if y.executable != "" {
		cmd.SetExecutable(y.executable)
	}

	if opts.ExtractAudio {
		cmd.ExtractAudio().
			AudioFormat(opts.AudioCodec).
			AudioQuality(opts.AudioQuality)
	}

	if location, ok := opts.FFmpegLocation.Get(); ok {
		cmd.FFmpegLocation(location)
	}

	return cmd
}

// Extract implements Extractor.
func (y *YtDLP) Extract(ctx context.Context, url string, opts request.Options) (Metadata, error) {
	log.Infof("extracting metadata for %s", url)

	res, err := y.command(opts).
		SkipDownload().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return Metadata{}, classify(ctx, "extract", res, err)
	}

	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		return Metadata{}, ErrEmptyMetadata
	}

	return ParseMetadata([]byte(out))
}

// Download implements Extractor.
func (y *YtDLP) Download(ctx context.Context, url string, opts request.Options, onProgress func(Event)) error {
	log.WithFields(log.Fields{"url": url, "args": opts.Args()}).Info("starting download")

	cmd := y.command(opts)
	if onProgress != nil {
		var meter speedometer
		cmd.ProgressFunc(y.interval, func(update ytdlp.ProgressUpdate) {
			ev := eventFrom(update)
			ev.Speed = meter.observe(ev, time.Now())
			onProgress(ev)
		})
	}

	res, err := cmd.Run(ctx, url)
	if err != nil {
		err = classify(ctx, "download", res, err)
		log.Errorf("download of %s failed: %s", url, err)
		return err
	}

	log.Infof("download of %s finished", url)
	return nil
}

func eventFrom(update ytdlp.ProgressUpdate) Event {
	ev := NewEvent(
		string(update.Status),
		int64(update.DownloadedBytes),
		int64(update.TotalBytes),
		update.Duration(),
	)

	if ev.Percent == 0 {
		ev.Percent = update.Percent()
	}
	ev.ETA = update.ETA()
	ev.Filename = update.Filename

	return ev
}

// speedometer turns successive byte counters into the current transfer rate. Until a second
// sample of the same file arrives it reports the average carried by the event.
type speedometer struct {
	filename string
	bytes    int64
	at       time.Time
	speed    float64
}

func (s *speedometer) observe(ev Event, now time.Time) float64 {
	if ev.Filename != s.filename || s.at.IsZero() || ev.DownloadedBytes < s.bytes {
		s.filename, s.bytes, s.at, s.speed = ev.Filename, ev.DownloadedBytes, now, ev.Speed
		return s.speed
	}

	if elapsed := now.Sub(s.at); elapsed > 0 {
		s.speed = float64(ev.DownloadedBytes-s.bytes) / elapsed.Seconds()
		s.bytes, s.at = ev.DownloadedBytes, now
	}
	return s.speed
}
