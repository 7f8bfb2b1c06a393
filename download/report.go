package download

import (
	"fmt"
	"io"

	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/extractor"
)

// Report prints the final message for an outcome. toolPath is the media tool path the
// user supplied, empty when none was.
func Report(w io.Writer, out Outcome, toolPath string) {
	switch out.Kind {
	case Success:
		fmt.Fprintln(w, "\nDownload completed successfully!")
	case ExtractionDownloadError:
		fmt.Fprintf(w, "\nDownload error: %s\n", out.Err)
		if extractor.IsToolRelated(out.Err) {
			fmt.Fprintln(w, "FFmpeg is required for proper processing of this video.")
			if toolPath != "" {
				fmt.Fprintf(w, "The specified FFmpeg path (%s) may be incorrect.\n", toolPath)
			}
			fmt.Fprintf(w, "Please verify your FFmpeg installation at %s\n", constant.FFmpegDownloadURL)
		}
	default:
		fmt.Fprintf(w, "\nAn unexpected error occurred: %s\n", out.Err)
	}
}
