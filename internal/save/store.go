package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultFileName is the progress file name inside the app directory.
const DefaultFileName = "game_data.txt"

// Store persists a Record to a single file.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a store for path. A leading ~ expands to the home
// directory. A nil logger means log.Default().
func NewStore(path string, logger *log.Logger) *Store {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the resolved file path.
func (s *Store) Path() string {
	return s.path
}

// Read loads the record, reporting why it could not. A missing file is
// reported as an error wrapping fs.ErrNotExist.
func (s *Store) Read(names []string) (Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewRecord(names), fmt.Errorf("save: read %s: %w", s.path, err)
	}
	return Decode(data, names)
}

// Load returns the persisted record, or the default record when the file
// is missing or corrupt. It never fails.
func (s *Store) Load(names []string) Record {
	rec, err := s.Read(names)
	switch {
	case err == nil:
		s.logger.Debug("progress loaded", "path", s.path, "high_score", rec.HighScore, "coins", rec.Coins)
		return rec
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("no save file found, starting with default values", "path", s.path)
	case errors.Is(err, ErrCorrupt):
		s.logger.Warn("save file is corrupt, starting with default values", "path", s.path, "err", err)
	default:
		s.logger.Warn("cannot read save file, starting with default values", "path", s.path, "err", err)
	}
	return NewRecord(names)
}

// Save writes the record atomically: a temporary file in the same
// directory is renamed over the previous one.
func (s *Store) Save(r Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*")
	if err != nil {
		return fmt.Errorf("save: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := Encode(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save: replace %s: %w", s.path, err)
	}
	return nil
}
