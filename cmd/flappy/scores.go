package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the run history",
	Long: `Display the best runs of a variant. Without a variant, and on an
interactive terminal, the scoreboard opens for browsing all variants.

Examples:
  flappy scores
  flappy scores classic --limit 20
  flappy scores boss-rush --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 0 && !flagClear && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		_, err := showScoreboard(width, height)
		return err
	}

	variantID := ""
	title := "all variants"
	if len(args) == 1 {
		v, err := registry.Lookup(args[0])
		if err != nil {
			return err
		}
		variantID, title = v.ID, v.Title
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(variantID); err != nil {
			return err
		}
		fmt.Printf("Cleared run history of %s.\n", title)
		return nil
	}

	runs, err := store.TopRuns(variantID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-10s  %-10s  %s\n", "Rank", "Score", "Level", "Coins", "Variant", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-10s  %-10s  %s\n", "----", "-----", "-----", "-----", "-------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-5d  %-10s  %-10s  %s\n",
			i+1, r.Score, r.Level, r.CoinsEarned, r.Variant, r.Profile, r.EndedAt.Local().Format("2006-01-02 15:04"))
	}

	if variantID != "" {
		if best, err := store.HighScore(variantID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
	return nil
}
