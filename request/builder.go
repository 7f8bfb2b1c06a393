package request

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/mo"
	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/filesystem"
	"github.com/vidl-cli/vidl/log"
	"github.com/vidl-cli/vidl/probe"
)

// Options is the built option set handed to the extractor.
type Options struct {
	// Format is the format-selection expression.
	Format            string
	MergeOutputFormat string
	OutputTemplate    string

	ExtractAudio bool
	AudioCodec   string
	AudioQuality string

	FFmpegLocation mo.Option[string]
}

// Args renders the equivalent yt-dlp command line arguments.
func (o Options) Args() []string {
	args := []string{
		"--format", o.Format,
		"--merge-output-format", o.MergeOutputFormat,
		"--output", o.OutputTemplate,
	}

	if o.ExtractAudio {
		args = append(args,
			"--extract-audio",
			"--audio-format", o.AudioCodec,
			"--audio-quality", o.AudioQuality,
		)
	}

	if location, ok := o.FFmpegLocation.Get(); ok {
		args = append(args, "--ffmpeg-location", location)
	}

	return args
}

// Builder maps requests to Options. AudioCodec and AudioQuality drive the audio-only
// post-processing step.
type Builder struct {
	AudioCodec   string
	AudioQuality string
}

// NewBuilder returns a Builder with mp3 at 192K.
func NewBuilder() Builder {
	return Builder{
		AudioCodec:   constant.DefaultAudioCodec,
		AudioQuality: constant.DefaultAudioQuality,
	}
}

// Build is shorthand for NewBuilder().Build.
func Build(req Request, tool probe.Location) (Options, error) {
	return NewBuilder().Build(req, tool)
}

// Build validates req, creates the output directory if absent and returns the option set.
func (b Builder) Build(req Request, tool probe.Location) (Options, error) {
	opts, err := b.Options(req, tool)
	if err != nil {
		return Options{}, err
	}

	if err := filesystem.EnsureDir(outputDir(req)); err != nil {
		return Options{}, fmt.Errorf("prepare output directory: %w", err)
	}

	return opts, nil
}

// Options validates req and returns the option set without touching the filesystem.
func (b Builder) Options(req Request, tool probe.Location) (Options, error) {
	if err := req.Validate(); err != nil {
		return Options{}, err
	}

	opts := Options{
		Format:            FormatExpression(req.Quality, req.Format, req.AudioOnly),
		MergeOutputFormat: req.Format,
		OutputTemplate:    OutputTemplate(outputDir(req)),
		FFmpegLocation:    tool.Path,
	}

	if req.AudioOnly {
		opts.ExtractAudio = true
		opts.AudioCodec = b.AudioCodec
		opts.AudioQuality = b.AudioQuality
	}

	log.WithFields(log.Fields{
		"url":    req.URL,
		"format": opts.Format,
		"output": opts.OutputTemplate,
		"audio":  opts.ExtractAudio,
	}).Debug("built download options")

	return opts, nil
}

func outputDir(req Request) string {
	if req.OutputDir == "" {
		return constant.DefaultOutputDir
	}
	return req.OutputDir
}

// FormatExpression returns the yt-dlp format selector for the requested quality.
func FormatExpression(quality Quality, format string, audioOnly bool) string {
	switch {
	case audioOnly:
		return "bestaudio/best"
	case quality.IsBest():
		return fmt.Sprintf("bestvideo[ext=%s]+bestaudio/best", format)
	case quality.IsWorst():
		return "worst"
	default:
		return fmt.Sprintf("bestvideo[height<=%s]+bestaudio/best", quality)
	}
}

// OutputTemplate places the title template under dir, keeping the caller's spelling of dir.
func OutputTemplate(dir string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + constant.OutputTemplate
	}
	return dir + string(filepath.Separator) + constant.OutputTemplate
}
