package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/icon"
	"github.com/vidl-cli/vidl/key"
	"github.com/vidl-cli/vidl/probe"
	"github.com/vidl-cli/vidl/style"
	"github.com/vidl-cli/vidl/util"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

type dependency struct {
	name     string
	required bool
	location probe.Location
}

// checkDependencies probes every external executable vidl may run.
func checkDependencies(ctx context.Context, p *probe.Prober) []dependency {
	ytdlp := p.Executable(ctx, constant.YtDLP)
	if path := viper.GetString(key.YtDLPPath); path != "" {
		ytdlp = p.Pinned(ctx, path, constant.YtDLP)
	}

	return []dependency{
		{name: constant.YtDLP, required: !viper.GetBool(key.YtDLPAutoInstall), location: ytdlp},
		{name: constant.FFmpeg, location: p.Locate(ctx, viper.GetString(key.FFmpegPath))},
		{name: constant.FFprobe, location: p.Executable(ctx, constant.FFprobe)},
	}
}

// checkCmd reports which external executables are available.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that yt-dlp, ffmpeg and ffprobe can be found and run",
	Run: func(cmd *cobra.Command, args []string) {
		deps := checkDependencies(cmd.Context(), probe.New())

		lines := lo.Map(deps, func(d dependency, _ int) string {
			if path, ok := d.location.Path.Get(); ok {
				return fmt.Sprintf("%s %s %s",
					style.Fg(style.SuccessColor)(icon.Get(icon.Success)),
					style.Bold(d.name),
					style.Faint(path),
				)
			}

			mark := style.Fg(style.WarningColor)(icon.Get(icon.Warn))
			if d.required {
				mark = style.Fg(style.ErrorColor)(icon.Get(icon.Fail))
			}
			return fmt.Sprintf("%s %s %s", mark, style.Bold(d.name), style.Faint(d.location.Reason.Error()))
		})

		missing := lo.CountBy(deps, func(d dependency) bool { return !d.location.Found() })
		border := style.SuccessColor
		summary := "All dependencies found"
		if missing > 0 {
			border = style.WarningColor
			summary = fmt.Sprintf("%s missing. ffmpeg can be downloaded from %s", util.Quantify(missing, "dependency", "dependencies"), constant.FFmpegDownloadURL)
		}

		cmd.Println(style.Box(border, lipgloss.JoinVertical(lipgloss.Left,
			style.New().Bold(true).Foreground(border).Render(fmt.Sprintf("%s Dependencies", icon.Get(icon.Tool))),
			"",
			lipgloss.JoinVertical(lipgloss.Left, lines...),
			"",
			style.Fg(style.Text)(summary),
		)))

		if lo.ContainsBy(deps, func(d dependency) bool { return d.required && !d.location.Found() }) {
			os.Exit(1)
		}
	},
}
