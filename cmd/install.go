package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidl-cli/vidl/extractor"
	"github.com/vidl-cli/vidl/icon"
	"github.com/vidl-cli/vidl/style"
)

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().Bool("ffmpeg", false, "Also install ffmpeg and ffprobe")
	installCmd.SetOut(os.Stdout)
}

// installCmd downloads the executables vidl depends on into the extraction library's cache.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install yt-dlp, and optionally ffmpeg, for the current platform",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		success := style.Fg(style.SuccessColor)(icon.Get(icon.Success))

		handleErr(extractor.EnsureYtDLP(ctx))
		cmd.Printf("%s yt-dlp installed\n", success)

		if lo.Must(cmd.Flags().GetBool("ffmpeg")) {
			handleErr(extractor.InstallFFmpeg(ctx))
			cmd.Printf("%s ffmpeg and ffprobe installed\n", success)
		}
	},
}
