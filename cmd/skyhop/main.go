// skyhop is an endless side-scrolling platformer for the terminal.
//
// Usage:
//
//	skyhop list              - List available games
//	skyhop play [game]       - Play a game (default: skyhop)
//	skyhop menu              - Start menu with difficulty picker and scoreboard
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores [game]     - Show high scores and recent runs
//	skyhop web               - Serve the leaderboard as a JSON API
//	skyhop config            - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.skyhop/scores.db)
//	--config <path>  - Load game settings from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/skyhop-dev/skyhop/internal/games/skyhop"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

const defaultGame = "skyhop"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Sky Hop - an endless platformer in your terminal",
	Long: `Sky Hop is an endless side-scrolling platformer. Run right, double
jump across the gaps, stomp enemies while powered up and see how far you get.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive menu with difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  web      - Serve the leaderboard over HTTP
  config   - Print the default configuration

Examples:
  skyhop play
  skyhop play --difficulty hard
  skyhop menu
  skyhop serve --ssh :2222
  skyhop web --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
