package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lrstanley/go-ytdlp"
)

// DownloadError is a structured failure reported by the extraction library, i.e. yt-dlp
// ran and exited non-zero.
type DownloadError struct {
	Op       string
	ExitCode int
	Stderr   string
	// ToolRelated is set when the failure involves the media-processing tool.
	ToolRelated bool
	Err         error
}

func (e *DownloadError) Error() string {
	if msg := lastErrorLine(e.Stderr); msg != "" {
		return msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: yt-dlp exited with status %d", e.Op, e.ExitCode)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// IsToolRelated reports whether err is a DownloadError involving the media tool.
func IsToolRelated(err error) bool {
	var de *DownloadError
	return errors.As(err, &de) && de.ToolRelated
}

var toolHints = []string{"ffmpeg", "ffprobe"}

func mentionsTool(s string) bool {
	s = strings.ToLower(s)
	for _, hint := range toolHints {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}

// lastErrorLine picks the most specific line yt-dlp wrote to stderr.
func lastErrorLine(stderr string) string {
	var last, lastError string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		last = line
		if strings.HasPrefix(line, "ERROR:") {
			lastError = line
		}
	}

	if lastError != "" {
		return lastError
	}
	return last
}

// classify turns a Run failure into a DownloadError when yt-dlp itself reported it.
// Cancellation and failures to start yt-dlp are returned as plain wrapped errors. yt-dlp
// flattens the exec error, so cancellation is read from ctx rather than from err.
func classify(ctx context.Context, op string, res *ytdlp.Result, err error) error {
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}

	if res == nil || res.ExitCode == 0 {
		return fmt.Errorf("%s: %w", op, err)
	}

	return &DownloadError{
		Op:       op,
		ExitCode: res.ExitCode,
		Stderr:   res.Stderr,
		// Only the reported error counts; warnings about a missing ffmpeg precede unrelated failures.
		ToolRelated: mentionsTool(lastErrorLine(res.Stderr)),
		Err:         err,
	}
}
