package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/key"
	"github.com/vidl-cli/vidl/open"
	"github.com/vidl-cli/vidl/style"
	"github.com/vidl-cli/vidl/where"
)

// whereTarget pairs a resolvable path with its CLI flag.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
	{"Downloads", func() string { return viper.GetString(key.DownloadOutput) }, "downloads", mo.Some("d")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.Flags().Bool("open", false, "Open the selected path in the file manager")

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays the filesystem paths vidl uses.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths used for configuration, logs and downloads",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(style.Mauve).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				path := n.where()
				cmd.Println(path)

				if lo.Must(cmd.Flags().GetBool("open")) {
					handleErr(open.Start(path))
				}
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(style.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
