package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyhop-dev/skyhop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration for a game. Save it to
~/.skyhop/configs/<game>.yaml or pass it with --config to override values.

Examples:
  skyhop config > ~/.skyhop/configs/skyhop.yaml
  skyhop config --config ./mine.yaml   # validate a custom file`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := gameArg(args)

	if flagConfig != "" {
		if _, err := config.LoadSkyhop(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s is valid.\n", flagConfig)
		return
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no configuration for %q\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck
}
