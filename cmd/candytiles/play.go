package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dev0926/candy-tiles/internal/config"
	"github.com/dev0926/candy-tiles/internal/core"
	"github.com/dev0926/candy-tiles/internal/games/candy"
	"github.com/dev0926/candy-tiles/internal/levels"
	"github.com/dev0926/candy-tiles/internal/platform/tui"
	"github.com/dev0926/candy-tiles/internal/registry"
	"github.com/dev0926/candy-tiles/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLevel      int
	flagEndless    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign or endless mode",
	Long: `Start playing Candy Tiles.

Without --level a level picker opens first. Levels unlock one by one as you
complete them; --level skips the picker and the lock.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select a candy, or swap it with the selected neighbour
  Arrow        - With a candy selected, swap it in that direction
  H            - Show a hint
  P            - Pause
  B/Esc        - Give up (back to menu when the game is over)
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 extra moves per level
  normal - moves as designed
  hard   - 3 fewer moves per level, endless mode limited to 40 moves

Examples:
  candytiles play
  candytiles play --level 4
  candytiles play --endless
  candytiles play --difficulty hard
  candytiles play --levels ./my-levels --config ./my-candy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to play (skips the level picker)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of campaign level files (default: built-in levels)")
}

// applyGameFlags validates the shared flags and hands them to the game package.
func applyGameFlags() {
	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal or hard)\n", flagDifficulty)
		os.Exit(1)
	}
	candy.SetConfigPath(flagConfig)
	candy.SetDifficultyPreset(flagDifficulty)
	candy.SetLevelsDir(flagLevelsDir)
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	applyGameFlags()
	cfg := terminalConfig()
	store := openStore()

	err := playGame(store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame picks the level (unless given) and runs one game.
func playGame(store *storage.Store, cfg core.RuntimeConfig) error {
	gameID := candy.IDCampaign
	if flagEndless {
		gameID = candy.IDEndless
	}

	level := flagLevel
	if !flagEndless && level == 0 {
		list, err := levels.Campaign(flagLevelsDir)
		if err != nil {
			return fmt.Errorf("loading levels: %w", err)
		}

		level, err = tui.RunLevelSelector(list, store, cfg)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if level == 0 {
			return nil
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if lv, ok := game.(registry.Leveled); ok && level > 0 {
		lv.StartAt(level)
	}

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
