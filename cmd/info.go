package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidl-cli/vidl/extractor"
	"github.com/vidl-cli/vidl/progress"
	"github.com/vidl-cli/vidl/request"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	infoCmd.SetOut(os.Stdout)

	infoCmd.AddCommand(infoSchemaCmd)
	infoSchemaCmd.SetOut(os.Stdout)
}

// infoCmd prints metadata for a URL without downloading it.
var infoCmd = &cobra.Command{
	Use:   "info <url>",
	Short: "Show video metadata without downloading",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(ensureBackend(ctx))

		req := newRequest(args[0])
		opts := request.Options{
			Format:            request.FormatExpression(req.Quality, req.Format, req.AudioOnly),
			MergeOutputFormat: req.Format,
		}

		meta, err := newExtractor().Extract(ctx, req.URL, opts)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(meta))
			return
		}

		progress.NewConsole(cmd.OutOrStdout()).Metadata(meta)
	},
}

// infoSchemaCmd prints the JSON schema of the metadata document.
var infoSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the metadata printed by info --json",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schema := (&jsonschema.Reflector{ExpandedStruct: true}).Reflect(&extractor.Metadata{})

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
