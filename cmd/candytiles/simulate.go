package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dev0926/candy-tiles/internal/config"
	"github.com/dev0926/candy-tiles/internal/games/candy"
	"github.com/dev0926/candy-tiles/internal/levels"
)

var (
	flagSimLevel   int
	flagSimMoves   int
	flagSimEndless bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random legal moves without a terminal UI",
	Long: `Run a level headlessly by picking random legal moves until the level is
complete or its moves run out. The same --seed always produces the same run.

Use --log-level debug to see every cascade round.

Examples:
  candytiles simulate --seed 7
  candytiles simulate --level 3 --difficulty hard
  candytiles simulate --endless --moves 200 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Campaign level to simulate")
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Maximum number of moves")
	simulateCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Simulate endless mode")
}

func runSimulate(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal or hard)\n", flagDifficulty)
		os.Exit(1)
	}
	cfg, err := config.LoadCandy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyCandyPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	lvl := levels.Endless()
	if !flagSimEndless {
		list, err := levels.Campaign(flagLevelsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
		if lvl, err = levels.Find(list, flagSimLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulating", "level", lvl.ID, "name", lvl.Name, "seed", seed)

	res := candy.Simulate(lvl, cfg, seed, flagSimMoves, func(m candy.MoveReport) {
		for n, r := range m.Rounds {
			logger.Debug("round", "move", m.Move, "round", n+1,
				"matched", r.Matched, "fusions", r.Fusions, "spawned", r.Spawned, "points", r.Points)
		}
		if m.Shuffled {
			logger.Info("board shuffled", "move", m.Move)
		}
		if m.Capped {
			logger.Warn("cascade stopped at round limit", "move", m.Move, "rounds", len(m.Rounds))
		}
		logger.Info("move", "n", m.Move, "from", m.Swap.From, "to", m.Swap.To, "rounds", len(m.Rounds), "score", m.Score)
	})

	fmt.Println(res.Board)
	fmt.Println()
	fmt.Printf("Moves:  %d\n", res.Moves)
	fmt.Printf("Score:  %d", res.Score)
	if lvl.TargetScore > 0 {
		fmt.Printf(" / %d", lvl.TargetScore)
	}
	fmt.Println()
	if len(lvl.Tasks) > 0 {
		fmt.Printf("Tasks:  %v\n", res.TasksDone)
	}
	if res.Completed {
		fmt.Printf("Result: complete, %d star(s)\n", res.Stars)
	} else if lvl.ID > 0 {
		fmt.Println("Result: failed")
	}
}
