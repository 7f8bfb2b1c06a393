// Package cmd implements the command-line interface for vidl.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/constant"
	"github.com/vidl-cli/vidl/icon"
	"github.com/vidl-cli/vidl/key"
	"github.com/vidl-cli/vidl/log"
	"github.com/vidl-cli/vidl/style"
	"golang.org/x/term"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("output", "o", constant.DefaultOutputDir, "Directory the download is written to")
	lo.Must0(viper.BindPFlag(key.DownloadOutput, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().StringP("quality", "q", constant.QualityBest, "Video quality: best, worst or a height such as 720")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constant.QualityBest, constant.QualityWorst, "2160", "1440", "1080", "720", "480", "360"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DownloadQuality, rootCmd.Flags().Lookup("quality")))

	rootCmd.Flags().StringP("format", "f", constant.DefaultFormat, "Output container format (mp4, mkv, webm, ...)")
	lo.Must0(viper.BindPFlag(key.DownloadFormat, rootCmd.Flags().Lookup("format")))

	rootCmd.Flags().BoolP("audio-only", "a", false, "Download audio only")
	lo.Must0(viper.BindPFlag(key.DownloadAudioOnly, rootCmd.Flags().Lookup("audio-only")))

	rootCmd.PersistentFlags().String("ffmpeg-path", "", "Path to the ffmpeg executable or its directory")
	lo.Must0(viper.BindPFlag(key.FFmpegPath, rootCmd.PersistentFlags().Lookup("ffmpeg-path")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (emoji, nerd, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().Bool("dry-run", false, "Print the yt-dlp arguments that would be used and exit")
}

// rootCmd downloads the video at the given URL.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Download videos with yt-dlp and ffmpeg",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.AccentColor).Render("    - Download videos with yt-dlp and ffmpeg"),
	Example: "  vidl https://www.youtube.com/watch?v=dQw4w9WgXcQ -q 720\n" +
		"  vidl -a https://www.youtube.com/watch?v=dQw4w9WgXcQ --ffmpeg-path /opt/ffmpeg/bin",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		url, err := urlArg(args)
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		outcome, err := runDownload(ctx, cmd.OutOrStdout(), newExtractor(), url, lo.Must(cmd.Flags().GetBool("dry-run")))
		handleErr(err)

		if !outcome.Succeeded() && !viper.GetBool(key.CliZeroExit) {
			stop()
			os.Exit(1)
		}
	},
}

// urlArg returns the positional URL, asking for it when running interactively.
func urlArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("a video url is required")
	}

	var url string
	err := survey.AskOne(&survey.Input{Message: "Video URL"}, &url, survey.WithValidator(survey.Required))
	return strings.TrimSpace(url), err
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
