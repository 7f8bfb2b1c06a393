package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/config"
	"github.com/vidl-cli/vidl/filesystem"
	"github.com/vidl-cli/vidl/icon"
	"github.com/vidl-cli/vidl/style"
	"github.com/vidl-cli/vidl/where"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(style.Red)(key),
		style.Fg(style.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// keyArg picks the key from the first argument or the --key flag.
func keyArg(cmd *cobra.Command, args []string) string {
	if len(args) >= 1 {
		return args[0]
	}

	if flagKey, _ := cmd.Flags().GetString("key"); flagKey != "" {
		return flagKey
	}

	handleErr(errors.New("key is required as an argument or --key flag"))
	return ""
}

func mustField(key string) config.Field {
	field, ok := config.Default[key]
	if !ok {
		handleErr(errUnknownKey(key))
	}
	return field
}

var successMark = func() string { return style.Fg(style.Green)(icon.Get(icon.Success)) }

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd serves as the parent command for managing application configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Specify the configuration keys to retrieve information for")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd displays metadata and descriptions for configuration fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information and descriptions for configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field { return mustField(k) })
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			ptrs := lo.Map(fields, func(_ config.Field, i int) *config.Field { return &fields[i] })
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(ptrs))
			return
		}

		for i := range fields {
			cmd.Print(fields[i].Pretty())

			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The configuration key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value to assign to the configuration key")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configSetCmd updates the value of a specific configuration key.
var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Update the value of a specified configuration key",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := keyArg(cmd, args)
		field := mustField(key)

		value := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) >= 2 {
			value = args[1:]
		}
		if len(value) == 0 {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		v, err := field.Parse(value)
		handleErr(err)

		viper.Set(key, v)
		handleErr(config.Persist())

		fmt.Printf(
			"%s set %s to %s\n",
			successMark(),
			style.Fg(style.Mauve)(key),
			style.Fg(style.Yellow)(fmt.Sprintf("%v", v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The specific configuration key to retrieve")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configGetCmd.SetOut(os.Stdout)
}

// configGetCmd retrieves the current value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Retrieve the current value of a specified configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := keyArg(cmd, args)
		mustField(key)
		cmd.Println(viper.Get(key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Forcefully overwrite the existing configuration file")
}

// configWriteCmd serializes the current in-memory configuration to disk.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Persist the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := where.ConfigFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if exists := lo.Must(filesystem.API().Exists(path)); exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf("%s wrote config to %s\n", successMark(), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
	configDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// configDeleteCmd removes the configuration file.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Permanently remove the configuration file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		path := where.ConfigFile()

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			confirm := false
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Delete %s?", path),
			}, &confirm))

			if !confirm {
				return
			}
		}

		handleErr(filesystem.API().Remove(path))
		fmt.Printf("%s deleted config\n", successMark())
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The configuration key to restore to its default value")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore all configuration settings to their defaults")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configResetCmd restores configuration keys to their default values.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore a specified configuration key to its default value",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(fmt.Errorf("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			key = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
		)

		if all {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
		} else {
			viper.Set(key, mustField(key).Value)
		}

		handleErr(config.Persist())

		if all {
			fmt.Printf("%s reset all config values\n", successMark())
			return
		}

		fmt.Printf(
			"%s reset %s to default value %s\n",
			successMark(),
			style.Fg(style.Mauve)(key),
			style.Fg(style.Yellow)(fmt.Sprintf("%v", config.Default[key].Value)),
		)
	},
}
