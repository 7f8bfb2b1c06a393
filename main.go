// Package main is the entry point for the vidl application.
package main

import (
	"github.com/samber/lo"
	"github.com/vidl-cli/vidl/cmd"
	"github.com/vidl-cli/vidl/config"
	"github.com/vidl-cli/vidl/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
