package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.flappy/host_key.
	HostKeyPath string

	// DBPath is the path to the shared run database.
	DBPath string

	// SaveDir holds one progress file per SSH user.
	SaveDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Config is the simulation config every session plays with.
	Config config.FlappyConfig

	// Logger receives server and session logs. Nil means stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.flappy/runs.db",
		SaveDir:     "~/.flappy/players",
		IdleTimeout: 30 * time.Minute,
		Config:      config.DefaultFlappyConfig(),
	}
}

// SSHServer wraps a Wish SSH server. Every session runs its own machine.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy-ssh",
		})
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	cfg.SaveDir = expandHome(cfg.SaveDir, home)
	if cfg.SaveDir == "" {
		cfg.SaveDir = filepath.Join(home, config.AppDirName, "players")
	}
	if err := os.MkdirAll(cfg.SaveDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create save directory: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = filepath.Join(home, config.AppDirName, "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~") {
		return filepath.Join(home, path[1:])
	}
	return path
}

// teaHandler creates a session model for each SSH connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	user := sess.User()
	model := NewSessionModel(SessionModelConfig{
		Config:   s.config.Config,
		SavePath: filepath.Join(s.config.SaveDir, saveFileName(user)),
		Runs:     s.store,
		Profile:  user,
		Logger:   s.logger.With("user", user),
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// saveFileName maps an SSH user name to a safe file name.
func saveFileName(user string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, user)
	clean = strings.Trim(clean, ".")
	if clean == "" {
		clean = "anonymous"
	}
	return clean + ".txt"
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModelConfig configures one SSH session.
type SessionModelConfig struct {
	Config   config.FlappyConfig
	SavePath string
	Runs     *storage.Store
	Profile  string
	Logger   *log.Logger
	Width    int
	Height   int
}

// SessionModel runs the session flow: variant picker -> game -> picker.
type SessionModel struct {
	cfg      SessionModelConfig
	picker   PickerModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionModelConfig) SessionModel {
	return SessionModel{
		cfg:    cfg,
		picker: NewPickerModel(cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = wsm.Width
		m.cfg.Height = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if p, ok := next.(PickerModel); ok {
		m.picker = p
	}

	if m.picker.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	// The scoreboard is a local-only screen; over SSH Tab is ignored.
	if m.picker.openScoreboard {
		m.picker.openScoreboard = false
		return m, nil
	}
	if m.picker.selected == nil {
		return m, cmd
	}

	variant, err := registry.Lookup(m.picker.selected.ID)
	m.picker.selected = nil
	if err != nil {
		return m, nil
	}

	machine := NewMachine(SessionConfig{
		Config:   m.cfg.Config,
		Variant:  variant,
		SavePath: m.cfg.SavePath,
		Runs:     m.cfg.Runs,
		Profile:  m.cfg.Profile,
		Logger:   m.cfg.Logger,
	})
	game := NewModel(Options{
		Machine:  machine,
		Runs:     m.cfg.Runs,
		Profile:  m.cfg.Profile,
		Logger:   m.cfg.Logger,
		Width:    m.cfg.Width,
		Height:   m.cfg.Height,
		Embedded: true,
	})
	m.game = &game
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if g, ok := next.(Model); ok {
		m.game = &g
	}

	if m.game.Done() {
		m.game = nil
		m.picker = NewPickerModel(m.cfg.Width, m.cfg.Height)
		return m, m.picker.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.picker.View()
}
