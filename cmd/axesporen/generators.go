package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axesporen/internal/registry"
)

var generatorsCmd = &cobra.Command{
	Use:     "generators",
	Aliases: []string{"list"},
	Short:   "List world generators",
	Long:    `Shows every generator that can build worlds.`,
	Args:    cobra.NoArgs,
	Run:     runGenerators,
}

func runGenerators(_ *cobra.Command, _ []string) {
	gens := registry.List()

	if len(gens) == 0 {
		fmt.Println("No generators available.")
		return
	}

	fmt.Println("World generators:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range gens {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range gens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'axesporen play <id>' to explore its worlds.")
}
