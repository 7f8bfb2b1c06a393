package probe

import (
	"fmt"
	"io"

	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/icon"
	"github.com/vidl-cli/vidl/style"
)

// Report writes a human-readable status line for loc. explicit is the path the user asked
// for, if any, and is used to explain a rejection.
func Report(w io.Writer, loc Location, explicit string) {
	if path, ok := loc.Path.Get(); ok {
		fmt.Fprintf(w, "\n%s Using FFmpeg at: %s\n", icon.Get(icon.Tool), path)
		return
	}

	warn := style.Fg(style.WarningColor)
	fmt.Fprintf(w, "\n%s %s\n", icon.Get(icon.Warn), warn("WARNING: FFmpeg not found. Some videos may not process correctly."))
	if explicit != "" && loc.Reason != nil {
		fmt.Fprintf(w, "The given FFmpeg path could not be used: %s\n", loc.Reason)
	}
	fmt.Fprintln(w, "For best results, install FFmpeg and add it to your PATH or specify its location with --ffmpeg-path")
	fmt.Fprintf(w, "Download from: %s\n\n", constant.FFmpegDownloadURL)
}
