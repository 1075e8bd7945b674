package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered variant with the systems it enables.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	maxIDLen := 2
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "ID", "Title", "Features")
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "--", "-----", "--------")
	for _, v := range variants {
		fmt.Printf("  %-*s  %-18s  %s (level: %s)\n", maxIDLen, v.ID, v.Title, v.Features, v.Features.Level)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <id>' to play a variant.")
}
