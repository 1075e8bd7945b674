// flappy is a terminal flappy-bird game with a shop, achievements, a boss
// and a daily challenge.
//
// Usage:
//
//	flappy                   - Pick a variant interactively
//	flappy play [variant]    - Play a variant directly
//	flappy list              - List available variants
//	flappy scores [variant]  - Show the run history
//	flappy progress          - Print the saved progress
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Run history database (default: ~/.flappy/runs.db)
//	--save <path>        - Progress file (default: ~/.flappy/game_data.txt)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy" // registers the variants
	"github.com/vovakirdan/tui-flappy/internal/save"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSavePath string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through pipes in your terminal",
	Long: `Flappy is a terminal flappy-bird game. Coins earned in runs buy new
bird colors and power-ups; achievements, a boss and a daily challenge
are unlocked depending on the variant.

Available commands:
  play      - Play a variant directly
  list      - Show all variants
  scores    - View the run history
  progress  - Print the saved progress
  serve     - Start SSH server for remote play

Examples:
  flappy
  flappy play classic
  flappy play --variant boss-rush --difficulty hard
  flappy scores deluxe
  flappy serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = configured rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "~/.flappy/"+save.DefaultFileName, "Path to progress file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. While Bubble Tea owns the terminal
// logs go to ~/.flappy/flappy.log; the returned func closes that file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := os.Stderr, func() {}
	if toFile {
		dir := config.AppDir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
		}
		f, err := os.OpenFile(filepath.Join(dir, "flappy.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}
