package request

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseQuality(t *testing.T) {
	Convey("ParseQuality", t, func() {
		So(ParseQuality("best"), ShouldEqual, Quality("best"))
		So(ParseQuality("BEST"), ShouldEqual, Quality("best"))
		So(ParseQuality(""), ShouldEqual, Quality("best"))
		So(ParseQuality("worst"), ShouldEqual, Quality("worst"))
		So(ParseQuality("720"), ShouldEqual, Quality("720"))
		So(ParseQuality(" 1080p "), ShouldEqual, Quality("1080"))

		Convey("Unrecognised values are passed through", func() {
			So(ParseQuality("hd"), ShouldEqual, Quality("hd"))
			So(ParseQuality("4k"), ShouldEqual, Quality("4k"))
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		So(Request{URL: "https://example.com/v1", Format: "mp4"}.Validate(), ShouldBeNil)
		So(Request{Format: "mp4"}.Validate(), ShouldEqual, ErrMissingURL)
		So(Request{URL: "https://example.com/v1"}.Validate(), ShouldEqual, ErrMissingFormat)
	})
}
