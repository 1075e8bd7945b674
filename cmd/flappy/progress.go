package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/save"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagRaw bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print the saved progress",
	Long: `Print the high score, coins, achievements and daily challenge stored in
the progress file, plus the run count and wardrobe of the profile.

Examples:
  flappy progress
  flappy progress --raw
  flappy progress --save ./other.txt`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the file as stored")
	progressCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Profile whose runs and wardrobe to show")
}

func runProgress(_ *cobra.Command, _ []string) error {
	logger, _, err := newLogger(false)
	if err != nil {
		return err
	}
	store := save.NewStore(flagSavePath, logger)

	rec, err := store.Read(flappy.AchievementNames())
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Printf("No progress saved yet at %s.\n", store.Path())
		return nil
	case errors.Is(err, save.ErrCorrupt):
		fmt.Printf("Progress file %s is corrupt; defaults will be used.\n", store.Path())
	case err != nil:
		return err
	}

	if flagRaw {
		os.Stdout.Write(save.Marshal(rec))
		return nil
	}

	fmt.Printf("Progress - %s\n\n", store.Path())
	fmt.Printf("  High score  %d\n", rec.HighScore)
	fmt.Printf("  Coins       %d\n", rec.Coins)
	fmt.Println()
	fmt.Println("  Achievements:")
	for _, f := range rec.Achievements {
		mark := " "
		if f.Achieved {
			mark = "x"
		}
		fmt.Printf("    [%s] %s\n", mark, f.Name)
	}

	fmt.Println()
	if rec.DailyDate.IsZero() {
		fmt.Println("  Daily challenge: none assigned")
	} else {
		status := "open"
		if rec.DailyCompleted {
			status = "completed"
		}
		fmt.Printf("  Daily challenge: %s (%s)\n", rec.DailyDate.Format(save.DateLayout), status)
	}

	runs, err := storage.Open(flagDBPath)
	if err != nil {
		return nil
	}
	defer runs.Close()

	if n, err := runs.RunCount(flagProfile); err == nil {
		fmt.Printf("  Runs played (%s): %d\n", flagProfile, n)
	}
	if w, err := runs.LoadWardrobe(flagProfile); err == nil && len(w.Owned) > 0 {
		fmt.Printf("  Wardrobe: %v, equipped %d\n", w.Owned, w.Equipped)
	}
	return nil
}
