package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/download"
	"github.com/vidl-cli/vidl/extractor"
	"github.com/vidl-cli/vidl/key"
	"github.com/vidl-cli/vidl/log"
	"github.com/vidl-cli/vidl/probe"
	"github.com/vidl-cli/vidl/progress"
	"github.com/vidl-cli/vidl/request"
	"github.com/vidl-cli/vidl/util"
)

func newRequest(url string) request.Request {
	return request.Request{
		URL:           url,
		OutputDir:     viper.GetString(key.DownloadOutput),
		Quality:       request.ParseQuality(viper.GetString(key.DownloadQuality)),
		Format:        viper.GetString(key.DownloadFormat),
		AudioOnly:     viper.GetBool(key.DownloadAudioOnly),
		MediaToolPath: mo.EmptyableToOption(viper.GetString(key.FFmpegPath)),
	}
}

func newBuilder() request.Builder {
	return request.Builder{
		AudioCodec:   viper.GetString(key.AudioCodec),
		AudioQuality: viper.GetString(key.AudioQuality),
	}
}

func newExtractor() *extractor.YtDLP {
	opts := []extractor.YtDLPOption{
		extractor.WithProgressInterval(time.Duration(viper.GetInt(key.ProgressInterval)) * time.Millisecond),
	}

	if path := viper.GetString(key.YtDLPPath); path != "" {
		opts = append(opts, extractor.WithExecutable(path))
	}

	return extractor.NewYtDLP(opts...)
}

func newConsole(w io.Writer) *progress.Console {
	opts := []progress.ConsoleOption{progress.WithWidth(util.TerminalWidth)}
	if viper.GetBool(key.ProgressBar) {
		opts = append(opts, progress.WithBar())
	}
	return progress.NewConsole(w, opts...)
}

// ensureBackend installs yt-dlp when no executable is pinned and installs are allowed.
func ensureBackend(ctx context.Context) error {
	if viper.GetString(key.YtDLPPath) != "" || !viper.GetBool(key.YtDLPAutoInstall) {
		return nil
	}
	return extractor.EnsureYtDLP(ctx)
}

// runDownload probes ffmpeg, builds the options and drives one download through ex, printing
// to out.
// The returned error is reserved for failures before the download could start.
func runDownload(ctx context.Context, out io.Writer, ex extractor.Extractor, url string, dryRun bool) (download.Outcome, error) {
	req := newRequest(url)
	toolPath := req.MediaToolPath.OrEmpty()

	if !dryRun {
		fmt.Fprintln(out, "Starting download...")
	}

	loc := probe.New().Locate(ctx, toolPath)
	probe.Report(out, loc, toolPath)

	if dryRun {
		opts, err := newBuilder().Options(req, loc)
		if err != nil {
			return download.Outcome{}, err
		}

		fmt.Fprintln(out, shellquote.Join(append(opts.Args(), url)...))
		return download.Outcome{Kind: download.Success}, nil
	}

	opts, err := newBuilder().Build(req, loc)
	if err != nil {
		return download.Outcome{}, err
	}

	if err = ensureBackend(ctx); err != nil {
		return download.Outcome{}, err
	}

	log.WithFields(log.Fields{"url": url, "ffmpeg": loc.Origin.String()}).Info("starting download")

	outcome := download.New(ex, newConsole(out)).Run(ctx, url, opts)
	download.Report(out, outcome, toolPath)

	return outcome, nil
}
