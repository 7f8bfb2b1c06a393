package extractor

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewEvent(t *testing.T) {
	Convey("NewEvent", t, func() {
		Convey("Derives percent and speed from counters", func() {
			ev := NewEvent("downloading", 50, 200, 2*time.Second)
			So(ev.Status, ShouldEqual, StatusDownloading)
			So(ev.Percent, ShouldAlmostEqual, 25.0)
			So(ev.Speed, ShouldAlmostEqual, 25.0)
			So(ev.TotalBytesEstimate, ShouldEqual, 200)
		})

		Convey("Leaves percent and speed at zero when unknown", func() {
			ev := NewEvent("downloading", 50, 0, 0)
			So(ev.Percent, ShouldEqual, 0)
			So(ev.Speed, ShouldEqual, 0)
		})

		Convey("Caps percent at 100 when the estimate was too low", func() {
			ev := NewEvent("finished", 300, 200, time.Second)
			So(ev.Status, ShouldEqual, StatusFinished)
			So(ev.Percent, ShouldEqual, 100)
		})
	})
}

func TestParseMetadata(t *testing.T) {
	Convey("ParseMetadata", t, func() {
		Convey("Reads the displayed fields", func() {
			meta, err := ParseMetadata([]byte(`{"id":"v1","title":"Clip","duration":212.4,"view_count":1337,"extractor":"generic","formats":[{"format_id":"18"}]}`))
			So(err, ShouldBeNil)
			So(meta.ID, ShouldEqual, "v1")
			So(meta.DisplayTitle(), ShouldEqual, "Clip")
			So(meta.DisplayDuration(), ShouldEqual, "212")
			So(meta.DisplayViews(), ShouldEqual, "1337")
			So(meta.Extractor, ShouldEqual, "generic")
		})

		Convey("Missing fields render as unknown", func() {
			meta, err := ParseMetadata([]byte(`{"id":"v1","view_count":null}`))
			So(err, ShouldBeNil)
			So(meta.DisplayTitle(), ShouldEqual, "Unknown Title")
			So(meta.DisplayDuration(), ShouldEqual, "Unknown")
			So(meta.DisplayViews(), ShouldEqual, "Unknown")
		})

		Convey("Garbage is an error", func() {
			_, err := ParseMetadata([]byte("WARNING: not json"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSpeedometer(t *testing.T) {
	Convey("Given a speedometer", t, func() {
		var meter speedometer
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		Convey("The first sample reports the average speed", func() {
			So(meter.observe(Event{Filename: "a.mp4", DownloadedBytes: 1000, Speed: 10}, start), ShouldEqual, 10)
		})

		Convey("Later samples report the rate since the previous one", func() {
			meter.observe(Event{Filename: "a.mp4", DownloadedBytes: 1000, Speed: 10}, start)
			So(meter.observe(Event{Filename: "a.mp4", DownloadedBytes: 5000}, start.Add(2*time.Second)), ShouldEqual, 2000)
			So(meter.observe(Event{Filename: "a.mp4", DownloadedBytes: 5500}, start.Add(3*time.Second)), ShouldEqual, 500)
		})

		Convey("Samples at the same instant keep the last rate", func() {
			meter.observe(Event{Filename: "a.mp4", DownloadedBytes: 1000}, start)
			meter.observe(Event{Filename: "a.mp4", DownloadedBytes: 3000}, start.Add(time.Second))
			So(meter.observe(Event{Filename: "a.mp4", DownloadedBytes: 3100}, start.Add(time.Second)), ShouldEqual, 2000)
		})

		Convey("A new file starts over", func() {
			meter.observe(Event{Filename: "a.f137.mp4", DownloadedBytes: 9000}, start)
			So(meter.observe(Event{Filename: "a.f140.m4a", DownloadedBytes: 100, Speed: 50}, start.Add(time.Second)), ShouldEqual, 50)
		})
	})
}
