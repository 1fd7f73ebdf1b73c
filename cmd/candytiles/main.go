// candytiles is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	candytiles list              - List available game modes
//	candytiles play              - Play the campaign (or --endless)
//	candytiles menu              - Start menu to pick a mode interactively
//	candytiles levels            - Show campaign levels and progress
//	candytiles scores <game>     - Show high scores for a game mode
//	candytiles serve             - Start SSH server for remote play
//	candytiles simulate          - Play random moves headlessly and log each cascade
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.candytiles/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/dev0926/candy-tiles/internal/games/candy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "candytiles",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "candytiles",
	Short: "Candy Tiles - a match-3 puzzle in your terminal",
	Long: `Candy Tiles is a terminal match-3 game on a 9x9 board.

Swap two neighbouring candies to line up three or more of a colour. Runs of four
fuse into a super candy, bigger shapes into chocolate. Cleared cells fill from
above and new candies drop in, which can set off further matches.

Available commands:
  list      - Show the game modes
  play      - Play the campaign or endless mode
  menu      - Interactive menu
  levels    - Show campaign levels and your progress
  scores    - View high scores
  serve     - Start SSH server for remote play
  simulate  - Play random moves without a terminal UI

Examples:
  candytiles play
  candytiles play --level 3
  candytiles play --endless --seed 42
  candytiles serve --ssh :2222
  candytiles simulate --moves 20 --log-level debug`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.candytiles/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
