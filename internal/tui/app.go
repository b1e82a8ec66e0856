// Package tui provides the terminal user interface.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/config"
	"github.com/hy4ri/termfolio/internal/host"
	"github.com/hy4ri/termfolio/internal/tui/components"
	"github.com/hy4ri/termfolio/internal/tui/logic"
	"github.com/hy4ri/termfolio/internal/tui/state"
	"github.com/hy4ri/termfolio/internal/tui/ui"
)

// Host performs the side effects the terminal requests.
type Host interface {
	Open(target string) host.Result
	OpenMail(address string) host.Result
	Bell() error
}

// Options configures an App.
type Options struct {
	Config     *config.Config
	ConfigPath string // where theme changes are saved; empty disables saving

	// Theme overrides the configured theme for this run only
	Theme    string
	SkipBoot bool

	Identity *state.Identity // nil generates a random one
	Host     Host            // nil uses the platform host
	Logger   *slog.Logger
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	cfg        *config.Config
	configPath string
	host       Host
	logger     *slog.Logger

	// Core
	session    *state.Session
	dispatcher *logic.Dispatcher
	editor     *logic.Editor
	keymap     state.Keymap

	// Components
	boot     *components.Boot
	renderer *ui.Renderer
	viewport viewport.Model

	// UI state
	width         int
	height        int
	viewportReady bool
	skipBoot      bool
}

// NewApp creates the application model.
func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := opts.Host
	if h == nil {
		h = host.New(logger)
	}

	identity := state.NewIdentity(cfg.Profile.Domain, nil)
	if opts.Identity != nil {
		identity = *opts.Identity
	}

	stored := cfg.UI.Theme
	if opts.Theme != "" {
		stored = opts.Theme
	}
	theme := state.NewThemePreference(stored)

	session := state.NewSession(identity, theme)
	keymap := state.DefaultKeymap()
	dispatcher := logic.NewDispatcher(session, logic.DefaultCommands(), linksFromConfig(cfg), profileFromConfig(cfg), logger)

	logger.Info("session started", "user", identity.Username, "theme", theme.Name())

	return &App{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		host:       h,
		logger:     logger,
		session:    session,
		dispatcher: dispatcher,
		editor:     logic.NewEditor(session, dispatcher, keymap),
		keymap:     keymap,
		boot:       components.NewBoot(session, nil),
		renderer:   ui.NewRenderer(session, keymap),
		skipBoot:   opts.SkipBoot || cfg.UI.SkipBoot,
	}
}

// Init starts the boot sequence.
func (a *App) Init() tea.Cmd {
	return a.startBoot()
}

// Session exposes the session for the CLI and tests.
func (a *App) Session() *state.Session {
	return a.session
}

func (a *App) startBoot() tea.Cmd {
	if a.skipBoot {
		a.boot.Skip()
		a.refresh(true)
		return nil
	}
	cmd := a.boot.Start()
	a.refresh(true)
	return cmd
}

// reboot clears the screen and the prompt line and plays the boot again.
// The identity is kept.
func (a *App) reboot() tea.Cmd {
	a.logger.Info("reboot")
	a.editor.Reset()
	return a.startBoot()
}

func linksFromConfig(cfg *config.Config) *logic.LinkRegistry {
	if len(cfg.Profile.Socials) == 0 {
		return logic.DefaultLinks()
	}
	links := make([]logic.Link, len(cfg.Profile.Socials))
	for i, s := range cfg.Profile.Socials {
		links[i] = logic.Link{Name: s.Name, URL: s.URL}
	}
	return logic.NewLinkRegistry(links)
}

func profileFromConfig(cfg *config.Config) logic.Profile {
	p := logic.DefaultProfile()
	if cfg.Profile.Email != "" {
		p.Email = cfg.Profile.Email
	}
	return p
}
