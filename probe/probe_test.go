package probe

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/vidl-cli/vidl/constant"
)

type fakeRunner struct {
	calls []string
	fail  map[string]bool
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, name)
	if f.fail[name] {
		return errors.New("exit status 1")
	}
	return nil
}

func noPath(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

func TestLocate(t *testing.T) {
	Convey("Given an in-memory filesystem and a fake runner", t, func() {
		ctx := context.Background()
		fs := afero.Afero{Fs: afero.NewMemMapFs()}
		runner := &fakeRunner{fail: map[string]bool{}}

		dir := filepath.Join(string(filepath.Separator), "opt", "ffmpeg", "bin")
		So(fs.MkdirAll(dir, 0o755), ShouldBeNil)
		exe := filepath.Join(dir, "ffmpeg")
		So(fs.WriteFile(exe, []byte("bin"), 0o755), ShouldBeNil)

		p := New(WithFs(fs), WithRunner(runner.run), WithLookPath(noPath), WithGOOS(constant.Linux))

		Convey("A file path is used directly", func() {
			loc := p.Locate(ctx, exe)
			So(loc.Found(), ShouldBeTrue)
			So(loc.Path.MustGet(), ShouldEqual, exe)
			So(loc.Origin, ShouldEqual, OriginFile)
			So(runner.calls, ShouldResemble, []string{exe})
		})

		Convey("A directory gets the conventional executable name appended", func() {
			loc := p.Locate(ctx, dir)
			So(loc.Found(), ShouldBeTrue)
			So(loc.Path.MustGet(), ShouldEqual, exe)
			So(loc.Origin, ShouldEqual, OriginDirectory)
		})

		Convey("On windows the directory lookup appends ffmpeg.exe", func() {
			win := New(WithFs(fs), WithRunner(runner.run), WithLookPath(noPath), WithGOOS(constant.Windows))
			loc := win.Locate(ctx, dir)
			So(loc.Found(), ShouldBeTrue)
			So(loc.Path.MustGet(), ShouldEqual, filepath.Join(dir, "ffmpeg.exe"))
		})

		Convey("A path that does not exist is not found", func() {
			loc := p.Locate(ctx, filepath.Join(dir, "missing"))
			So(loc.Found(), ShouldBeFalse)
			So(errors.Is(loc.Reason, ErrPathMissing), ShouldBeTrue)
			So(runner.calls, ShouldBeEmpty)
		})

		Convey("A candidate failing the version query is not found", func() {
			runner.fail[exe] = true
			loc := p.Locate(ctx, exe)
			So(loc.Found(), ShouldBeFalse)
			So(errors.Is(loc.Reason, ErrNotRunnable), ShouldBeTrue)
		})

		Convey("Without a path and without a system install the tool is not found", func() {
			loc := p.Locate(ctx, "")
			So(loc.Found(), ShouldBeFalse)
			So(loc.Origin, ShouldEqual, OriginSystem)
			So(errors.Is(loc.Reason, ErrNotInPath), ShouldBeTrue)
		})

		Convey("Without a path the system lookup result is verified", func() {
			sys := New(WithFs(fs), WithRunner(runner.run), WithGOOS(constant.Linux), WithLookPath(func(name string) (string, error) {
				return filepath.Join("/usr/bin", name), nil
			}))
			loc := sys.Locate(ctx, "")
			So(loc.Found(), ShouldBeTrue)
			So(loc.Path.MustGet(), ShouldEqual, filepath.Join("/usr/bin", "ffmpeg"))
			So(loc.Origin, ShouldEqual, OriginSystem)
		})
	})
}

func TestLocateNonExecutable(t *testing.T) {
	Convey("Given a real file without the executable bit", t, func() {
		path := filepath.Join(t.TempDir(), "ffmpeg")
		So(os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644), ShouldBeNil)

		p := New(WithFs(afero.Afero{Fs: afero.NewOsFs()}))
		loc := p.Locate(context.Background(), path)

		Convey("The probe reports not found instead of failing", func() {
			So(loc.Found(), ShouldBeFalse)
			So(errors.Is(loc.Reason, ErrNotRunnable), ShouldBeTrue)
		})
	})
}

func TestReport(t *testing.T) {
	Convey("Report", t, func() {
		var buf bytes.Buffer

		Convey("Names the resolved path", func() {
			Report(&buf, Location{Path: mo.Some("/usr/bin/ffmpeg"), Origin: OriginSystem}, "")
			So(buf.String(), ShouldContainSubstring, "Using FFmpeg at: /usr/bin/ffmpeg")
		})

		Convey("Warns and explains a rejected explicit path", func() {
			loc := notFound(OriginNone, ErrPathMissing)
			Report(&buf, loc, "/bad/path")
			So(buf.String(), ShouldContainSubstring, "FFmpeg not found")
			So(buf.String(), ShouldContainSubstring, "--ffmpeg-path")
			So(buf.String(), ShouldContainSubstring, ErrPathMissing.Error())
			So(buf.String(), ShouldContainSubstring, constant.FFmpegDownloadURL)
		})
	})
}

func TestVersionFlag(t *testing.T) {
	Convey("ffmpeg style tools take a single dash", t, func() {
		So(versionFlag(constant.FFmpeg), ShouldEqual, "-version")
		So(versionFlag(constant.FFprobe), ShouldEqual, "-version")
		So(versionFlag(constant.YtDLP), ShouldEqual, "--version")
	})
}

func TestPinned(t *testing.T) {
	Convey("Pinned resolves other tools inside a directory", t, func() {
		fs := afero.Afero{Fs: afero.NewMemMapFs()}
		dir := filepath.Join(string(filepath.Separator), "tools")
		So(fs.MkdirAll(dir, 0o755), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(dir, "yt-dlp"), []byte("bin"), 0o755), ShouldBeNil)

		var flags []string
		run := func(_ context.Context, _ string, args ...string) error {
			flags = append(flags, args...)
			return nil
		}

		p := New(WithFs(fs), WithRunner(run), WithLookPath(noPath), WithGOOS(constant.Linux))
		loc := p.Pinned(context.Background(), dir, constant.YtDLP)
		So(loc.Found(), ShouldBeTrue)
		So(loc.Path.MustGet(), ShouldEqual, filepath.Join(dir, "yt-dlp"))
		So(flags, ShouldResemble, []string{"--version"})
	})
}
