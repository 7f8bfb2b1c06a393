// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Defaults - these keys back the root command flags and may be preset in the config file or environment.
const (
	DownloadOutput    = "download.output"
	DownloadQuality   = "download.quality"
	DownloadFormat    = "download.format"
	DownloadAudioOnly = "download.audio_only"
)

// Audio Extraction - these keys tune the post-processing step used for audio-only downloads.
const (
	AudioCodec   = "audio.codec"
	AudioQuality = "audio.quality"
)

// Media Tool - these keys locate the external media-processing executable.
const (
	FFmpegPath = "ffmpeg.path"
)

// Extraction Backend - these keys configure the yt-dlp executable driven by the extraction library.
const (
	YtDLPPath        = "ytdlp.path"
	YtDLPAutoInstall = "ytdlp.auto_install"
)

// Progress Rendering - these keys shape the single-line console progress display.
const (
	ProgressBar      = "progress.bar"
	ProgressInterval = "progress.interval"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern process-level behavior.
const (
	CliColored  = "cli.colored"
	CliZeroExit = "cli.zero_exit"
)
