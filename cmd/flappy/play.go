package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagVariant    string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagProfile    string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: deluxe).

Controls:
  Space/W/Up  - Flap, start a run, retry after game over
  S           - Shop (menu)
  A           - Achievements (menu)
  Up/Down     - Move the shop cursor
  Enter/Click - Buy the selected item
  B/Esc       - Back to the menu
  X           - Toggle sound
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower pipes and a wider gap
  normal - Default speed curve
  hard   - Faster pipes and a narrower gap
  fixed  - Pipes keep the base speed at every level

Examples:
  flappy play
  flappy play classic
  flappy play --variant boss-rush --difficulty hard
  flappy play --config ./my-flappy.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", "deluxe", "Variant to play (see 'flappy list')")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Profile name for run history and wardrobe")
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := flagVariant
	if len(args) == 1 {
		variantID = args[0]
	}
	return playVariant(variantID)
}

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyFlappyPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func playVariant(variantID string) error {
	variant, err := registry.Lookup(variantID)
	if err != nil {
		return fmt.Errorf("%w (run 'flappy list' to see variants)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	runs, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		runs = nil
	}
	if runs != nil {
		defer runs.Close()
	}

	sound := audio.NewPlayer(flagVolume, flagMute, logger)
	if err := sound.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		sound.SetMuted(true)
	}
	defer sound.Close()

	machine := tui.NewMachine(tui.SessionConfig{
		Config:   cfg,
		Variant:  variant,
		SavePath: flagSavePath,
		Runs:     runs,
		Profile:  flagProfile,
		Seed:     flagSeed,
		Logger:   logger,
	})

	width, height := terminalSize()
	return tui.Run(tui.Options{
		Machine:  machine,
		Runs:     runs,
		Sound:    sound,
		Profile:  flagProfile,
		Logger:   logger,
		TickRate: flagFPS,
		Width:    width,
		Height:   height,
	})
}
