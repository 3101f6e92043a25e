// skyhop-window plays Sky Hop in a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyhop-dev/skyhop/internal/config"
	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/games/skyhop"
	"github.com/skyhop-dev/skyhop/internal/platform/gui"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagNoScores   bool
)

var rootCmd = &cobra.Command{
	Use:   "skyhop-window",
	Short: "Play Sky Hop in a window",
	Long: `Play Sky Hop in a 400x400 window.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump, twice in the air
  P                - Pause
  R/Enter          - Retry after game over
  Esc/Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().BoolVar(&flagNoScores, "no-scores", false, "Do not record runs")
}

func run(_ *cobra.Command, _ []string) error {
	if err := skyhop.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := config.LoadSkyhop(flagConfig); err != nil {
		return err
	}
	skyhop.SetConfigPath(flagConfig)

	var store *storage.Store
	if !flagNoScores {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	return gui.Run(store, core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
