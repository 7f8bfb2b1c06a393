package constant

// Media tool and extraction defaults.
const (
	// FFmpeg is the conventional executable name of the media-processing tool.
	FFmpeg = "ffmpeg"

	// FFprobe ships alongside ffmpeg and is used by yt-dlp for stream inspection.
	FFprobe = "ffprobe"

	// YtDLP is the executable name of the extraction library backend.
	YtDLP = "yt-dlp"

	// FFmpegDownloadURL is shown whenever ffmpeg is missing or misconfigured.
	FFmpegDownloadURL = "https://ffmpeg.org/download.html"

	// OutputTemplate is the yt-dlp filename template placed under the output directory.
	OutputTemplate = "%(title)s.%(ext)s"

	// DefaultOutputDir is used when no output directory is configured.
	DefaultOutputDir = "./downloads"

	// DefaultFormat is the default container extension.
	DefaultFormat = "mp4"

	// DefaultAudioCodec and DefaultAudioQuality drive audio-only extraction.
	DefaultAudioCodec   = "mp3"
	DefaultAudioQuality = "192K"
)

// Quality shapes recognised by the request builder.
const (
	QualityBest  = "best"
	QualityWorst = "worst"
)
