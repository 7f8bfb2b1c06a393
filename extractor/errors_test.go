package extractor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lrstanley/go-ytdlp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("classify", t, func() {
		ctx := context.Background()
		runErr := errors.New("exit status 1")

		Convey("nil stays nil", func() {
			So(classify(ctx, "download", nil, nil), ShouldBeNil)
		})

		Convey("A non-zero yt-dlp exit becomes a DownloadError", func() {
			res := &ytdlp.Result{ExitCode: 1, Stderr: "[youtube] abc: Downloading webpage\nERROR: [youtube] abc: Video unavailable\n"}
			err := classify(ctx, "download", res, runErr)

			var de *DownloadError
			So(errors.As(err, &de), ShouldBeTrue)
			So(de.ExitCode, ShouldEqual, 1)
			So(de.ToolRelated, ShouldBeFalse)
			So(err.Error(), ShouldEqual, "ERROR: [youtube] abc: Video unavailable")
			So(errors.Is(err, runErr), ShouldBeTrue)
		})

		Convey("Media tool failures are flagged", func() {
			res := &ytdlp.Result{ExitCode: 1, Stderr: "ERROR: Postprocessing: ffprobe and ffmpeg not found. Please install or provide the path using --ffmpeg-location"}
			err := classify(ctx, "download", res, runErr)
			So(IsToolRelated(err), ShouldBeTrue)
		})

		Convey("A failure to run yt-dlp at all is not a DownloadError", func() {
			err := classify(ctx, "download", nil, errors.New(`exec: "yt-dlp": executable file not found in $PATH`))
			var de *DownloadError
			So(errors.As(err, &de), ShouldBeFalse)
			So(err.Error(), ShouldStartWith, "download: ")
		})

		Convey("A warning about ffmpeg does not flag an unrelated error", func() {
			res := &ytdlp.Result{ExitCode: 1, Stderr: "WARNING: You have requested merging of multiple formats but ffmpeg is not installed. The formats won't be merged\n" +
				"ERROR: unable to download video data: HTTP Error 403: Forbidden\n"}
			err := classify(ctx, "download", res, fmt.Errorf("exit status 1\n\n%s", res.Stderr))

			var de *DownloadError
			So(errors.As(err, &de), ShouldBeTrue)
			So(de.ToolRelated, ShouldBeFalse)
			So(IsToolRelated(err), ShouldBeFalse)
		})

		Convey("An interrupted run is reported as cancellation", func() {
			cancelled, cancel := context.WithCancel(context.Background())
			cancel()

			res := &ytdlp.Result{ExitCode: -1, Stderr: "[download]  12.3% of ~10.00MiB\n"}
			err := classify(cancelled, "download", res, errors.New("signal: interrupt\n\n[download]  12.3% of ~10.00MiB"))

			var de *DownloadError
			So(errors.As(err, &de), ShouldBeFalse)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(IsToolRelated(err), ShouldBeFalse)
		})
	})
}

func TestDownloadErrorMessage(t *testing.T) {
	Convey("DownloadError.Error", t, func() {
		Convey("Falls back to the last stderr line", func() {
			err := &DownloadError{Op: "download", ExitCode: 2, Stderr: "usage: yt-dlp\nyt-dlp: error: no such option\n"}
			So(err.Error(), ShouldEqual, "yt-dlp: error: no such option")
		})

		Convey("Falls back to the wrapped error, then the exit status", func() {
			So((&DownloadError{Op: "extract", Err: errors.New("boom")}).Error(), ShouldEqual, "boom")
			So((&DownloadError{Op: "extract", ExitCode: 3}).Error(), ShouldEqual, "extract: yt-dlp exited with status 3")
		})
	})
}
