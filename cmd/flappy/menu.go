package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// runMenu loops between the variant picker, the scoreboard and the game
// until the player quits from the picker.
func runMenu(_ *cobra.Command, _ []string) error {
	for {
		width, height := terminalSize()
		result, err := tui.RunVariantPicker(width, height)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			goBack, err := showScoreboard(width, height)
			if err != nil || !goBack {
				return err
			}
		default:
			if err := playVariant(result.VariantID); err != nil {
				return err
			}
		}
	}
}

// showScoreboard browses the run history. A missing database shows an
// empty board.
func showScoreboard(width, height int) (goBack bool, err error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	}
	if store != nil {
		defer store.Close()
	}
	return tui.RunScoreboard(store, width, height)
}
