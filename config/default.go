package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/key"
	"github.com/vidl-cli/vidl/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored, multi-line description of the field.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Parse converts raw CLI input into the field's value type.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", f.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", f.Key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type for %s", f.Key)
	}
}

// MarshalJSON includes both the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        reflect.TypeOf(f.Value).String(),
		Env:         f.Env(),
	})
}

// Default holds every registered configuration field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DownloadOutput, constant.DefaultOutputDir, "Directory downloads are written to.\nCreated on demand")
	register(key.DownloadQuality, constant.QualityBest, "Video quality.\nAvailable options are: best, worst, or a pixel height such as 720 or 1080p")
	register(key.DownloadFormat, constant.DefaultFormat, "Output container extension (mp4, mkv, webm, ...)")
	register(key.DownloadAudioOnly, false, "Download audio only and convert it with the media tool")
	register(key.AudioCodec, constant.DefaultAudioCodec, "Codec used when extracting audio (mp3, m4a, opus, ...)")
	register(key.AudioQuality, constant.DefaultAudioQuality, "Target audio bitrate such as 192K, or a VBR level from 0 (best) to 10")
	register(key.FFmpegPath, "", "Path to the ffmpeg executable or the directory containing it.\nSearched in PATH if empty")
	register(key.YtDLPPath, "", "Path to the yt-dlp executable.\nResolved by the extraction library if empty")
	register(key.YtDLPAutoInstall, true, "Install yt-dlp automatically when it can not be found")
	register(key.ProgressBar, true, "Draw a progress bar in front of the progress line")
	register(key.ProgressInterval, 250, "Minimum milliseconds between progress updates")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliZeroExit, false, "Exit with status 0 even when the download fails")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(style.Mauve),
	"blue":     style.Fg(style.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(style.Green)(b)
			}
			return style.Fg(style.Red)(b)
		case string:
			return style.Fg(style.Yellow)(strconv.Quote(value))
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
