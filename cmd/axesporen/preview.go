package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axesporen/internal/platform/tui"
	"github.com/vovakirdan/axesporen/internal/scene"
)

var (
	flagPreviewLevel int
	flagPreviewPlain bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [generator]",
	Short: "Print a generated world as text",
	Long: `Generate a world without playing it and print it one character per
tile. The same --seed always prints the same world.

Examples:
  axesporen preview
  axesporen preview noise --seed 7
  axesporen preview --level 5 --plain > world.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagPreviewLevel, "level", 1, "World number (sets the enemy count)")
	previewCmd.Flags().BoolVar(&flagPreviewPlain, "plain", false, "Print without colors")
}

func runPreview(_ *cobra.Command, args []string) error {
	generator := ""
	if len(args) == 1 {
		generator = args[0]
	}
	cfg, err := loadGameConfig(generator)
	if err != nil {
		return err
	}
	if flagPreviewLevel < 1 {
		return fmt.Errorf("level must be at least 1, got %d", flagPreviewLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	lvl, err := scene.BuildLevel(cfg, flagPreviewLevel, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	screen := tui.PreviewScreen(lvl)
	if flagPreviewPlain {
		fmt.Println(screen.String())
		return nil
	}

	fmt.Println(tui.RenderScreen(screen))
	fmt.Printf("\n%s\n", tui.PreviewLegend())
	fmt.Printf("generator %s, world %d, %d enemies, seed %d\n", lvl.Generator, lvl.Number, len(lvl.Enemies), seed)
	return nil
}
