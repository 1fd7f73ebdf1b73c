package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dev0926/candy-tiles/internal/levels"
	"github.com/dev0926/candy-tiles/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show campaign levels and progress",
	Long: `List the campaign levels with their move budget, target score, tasks and
your best result.

Examples:
  candytiles levels
  candytiles levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of campaign level files (default: built-in levels)")
}

func runLevels(_ *cobra.Command, _ []string) {
	list, err := levels.Campaign(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	progress := map[int]storage.LevelProgress{}
	if store := openStore(); store != nil {
		if p, err := store.CompletedLevels(); err == nil {
			progress = p
		} else {
			logger.Warn("could not read level progress", "error", err)
		}
		store.Close()
	}

	if len(list) == 0 {
		fmt.Println("No levels found.")
		return
	}

	// Print header
	fmt.Printf("  %-3s  %-16s  %5s  %6s  %-8s  %s\n", "ID", "Name", "Moves", "Target", "Result", "Tasks")
	fmt.Printf("  %-3s  %-16s  %5s  %6s  %-8s  %s\n", "--", "----", "-----", "------", "------", "-----")

	for _, lvl := range list {
		result := "locked"
		if p, ok := progress[lvl.ID]; ok {
			result = strings.Repeat("*", p.Stars) + strings.Repeat(".", 3-p.Stars)
		} else if lvl.ID == list[0].ID || storage.Unlocked(progress, lvl.ID) {
			result = "open"
		}

		tasks := make([]string, 0, len(lvl.Tasks))
		for _, t := range lvl.Tasks {
			tasks = append(tasks, t.String())
		}

		fmt.Printf("  %-3d  %-16s  %5d  %6d  %-8s  %s\n",
			lvl.ID, lvl.Name, lvl.Moves, lvl.TargetScore, result, strings.Join(tasks, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'candytiles play --level <id>' to play a level.")
}
