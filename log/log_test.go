package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/filesystem"
	"github.com/vidl-cli/vidl/key"
	"github.com/vidl-cli/vidl/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Convey("Disabled logging creates no file", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)

			Info("dropped")
			WithFields(Fields{"k": "v"}).Info("dropped")
			So(WithFields(Fields{"a": 1}), ShouldPointTo, WithFields(Fields{"b": 2}))
		})

		Convey("Enabled logging writes entries tagged with the run id", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, true)
			So(Setup(), ShouldBeNil)

			Infof("probing %s", "ffmpeg")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "probing ffmpeg")
			So(string(data), ShouldContainSubstring, RunID)

			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
		})

		Convey("The run id is a uuid", func() {
			_, err := uuid.Parse(RunID)
			So(err, ShouldBeNil)
		})
	})
}
