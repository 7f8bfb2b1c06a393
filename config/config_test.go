package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/filesystem"
	"github.com/vidl-cli/vidl/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every registered field has a default", func() {
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Download defaults match the CLI contract", func() {
			So(viper.GetString(key.DownloadOutput), ShouldEqual, "./downloads")
			So(viper.GetString(key.DownloadQuality), ShouldEqual, "best")
			So(viper.GetString(key.DownloadFormat), ShouldEqual, "mp4")
			So(viper.GetBool(key.DownloadAudioOnly), ShouldBeFalse)
			So(viper.GetString(key.FFmpegPath), ShouldBeEmpty)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("VIDL_DOWNLOAD_FORMAT", "mkv")
			So(viper.GetString(key.DownloadFormat), ShouldEqual, "mkv")
		})

		Convey("EnvKeyReplacer converts dots to underscores", func() {
			So(EnvKeyReplacer.Replace("download.audio_only"), ShouldEqual, "download_audio_only")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given registered fields", t, func() {
		Convey("Env is prefixed with the app name", func() {
			f := Default[key.FFmpegPath]
			So(f.Env(), ShouldEqual, "VIDL_FFMPEG_PATH")
		})

		Convey("Parse respects the default's type", func() {
			audioOnly := Default[key.DownloadAudioOnly]
			v, err := audioOnly.Parse([]string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = audioOnly.Parse([]string{"maybe"})
			So(err, ShouldNotBeNil)

			interval := Default[key.ProgressInterval]
			v, err = interval.Parse([]string{"500"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 500)

			format := Default[key.DownloadFormat]
			v, err = format.Parse([]string{constant.DefaultFormat})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "mp4")

			_, err = format.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}
