package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leap-of-faith/internal/registry"
)

var heroesCmd = &cobra.Command{
	Use:   "heroes",
	Short: "List the hero roster",
	Long:  `Shows every hero and the key that picks it on the hero select screen.`,
	Args:  cobra.NoArgs,
	Run:   runHeroes,
}

func runHeroes(_ *cobra.Command, _ []string) {
	heroes := registry.List()
	if len(heroes) == 0 {
		fmt.Println("No heroes available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, h := range heroes {
		maxIDLen = max(maxIDLen, len(h.ID))
	}

	fmt.Println("Heroes:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %s\n", "Key", maxIDLen, "ID", "Name")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxIDLen, "--", "----")
	for _, h := range heroes {
		fmt.Printf("  %-3s  %-*s  %s\n", h.Key(), maxIDLen, h.ID, h.Title)
	}

	fmt.Println()
	fmt.Println("Run 'leap play' and press a key to pick your hero.")
}
