package filesystem

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestEnsureDir(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		dir := filepath.Join("downloads", "nested")

		Convey("A missing directory is created with its parents", func() {
			So(EnsureDir(dir), ShouldBeNil)

			isDir, err := API().IsDir(dir)
			So(err, ShouldBeNil)
			So(isDir, ShouldBeTrue)
		})

		Convey("Creating an existing directory again is not an error", func() {
			So(EnsureDir(dir), ShouldBeNil)
			So(EnsureDir(dir), ShouldBeNil)
		})

		Convey("A regular file in the way is reported", func() {
			So(API().WriteFile("occupied", []byte("x"), 0o644), ShouldBeNil)
			So(EnsureDir("occupied"), ShouldNotBeNil)
		})
	})
}
