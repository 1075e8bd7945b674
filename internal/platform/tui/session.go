package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/save"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// SessionConfig describes one player's game.
type SessionConfig struct {
	Config   config.FlappyConfig
	Variant  registry.Variant
	SavePath string         // progress file; empty disables it
	Runs     *storage.Store // run history and wardrobe; nil disables them
	Profile  string
	Seed     int64
	Logger   *log.Logger
}

// NewMachine builds a simulation for a session, restoring the profile's
// wardrobe from the run database when there is one.
func NewMachine(sc SessionConfig) *flappy.Machine {
	logger := sc.Logger
	if logger == nil {
		logger = log.Default()
	}

	opts := flappy.Options{
		Config:  sc.Config,
		Variant: sc.Variant,
		Seed:    sc.Seed,
		Logger:  logger,
	}
	if sc.SavePath != "" {
		opts.Store = save.NewStore(sc.SavePath, logger)
	}
	if sc.Runs != nil {
		w, err := sc.Runs.LoadWardrobe(profileOrDefault(sc.Profile))
		if err != nil {
			logger.Warn("could not load wardrobe", "profile", sc.Profile, "error", err)
		} else {
			opts.Owned = w.Owned
			opts.Equipped = w.Equipped
		}
	}
	return flappy.New(opts)
}

func profileOrDefault(p string) string {
	if p == "" {
		return storage.DefaultProfile
	}
	return p
}
