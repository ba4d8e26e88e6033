package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axesporen/internal/registry"
	"github.com/vovakirdan/axesporen/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [generator]",
	Short: "Show the best runs",
	Long: `Display the runs that explored the most worlds, for one generator
or across all of them.

Examples:
  axesporen scores
  axesporen scores noise --limit 20
  axesporen scores biome --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the listed history instead of showing it")
}

func runScores(_ *cobra.Command, args []string) error {
	generator, title := "", "All worlds"
	if len(args) == 1 {
		generator = args[0]
		if !registry.Exists(generator) {
			return fmt.Errorf("unknown generator %q; run 'axesporen generators' to list them", generator)
		}
		for _, g := range registry.List() {
			if g.ID == generator {
				title = g.Title
			}
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(generator); err != nil {
			return err
		}
		fmt.Printf("Cleared runs - %s\n", title)
		return nil
	}

	runs, err := store.TopRuns(generator, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'axesporen play' to make history!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %-10s  %s\n", "Rank", "Worlds", "Generator", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %-10s  %s\n", "----", "------", "---------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-10s  %-10s  %s\n",
			i+1, r.WorldsExplored, r.Generator, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestRun(generator); err == nil {
		fmt.Printf("Best: %d worlds\n", best)
	}
	return nil
}
