// axesporen is a top-down exploration game for the terminal: walk from world
// to world through the door on each map while the crocodiles close in.
//
// Usage:
//
//	axesporen play [generator]    - Explore worlds from a given generator
//	axesporen menu                - Pick a generator interactively
//	axesporen generators          - List world generators
//	axesporen preview [generator] - Print a generated world as text
//	axesporen scores [generator]  - Show the best runs
//	axesporen serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible worlds
//	--db <path>           - Set database path (default: ~/.axesporen/runs.db)
//	--config <path>       - Load a game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axesporen/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "axesporen",
	Short: "Axesporen - explore procedurally generated worlds in your terminal",
	Long: `Axesporen is a top-down exploration game. Each world is a generated map
with a door somewhere far from where you start. Reach it to travel to the
next world; every world brings more crocodiles chasing you.

Available commands:
  play        - Start exploring
  menu        - Pick a world generator interactively
  generators  - List world generators
  preview     - Print a generated world as text
  scores      - View the best runs
  serve       - Start SSH server for remote play

Examples:
  axesporen play
  axesporen play noise --difficulty hard
  axesporen preview biome --seed 42
  axesporen serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generatorsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
