package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/config"
	"github.com/hy4ri/termfolio/internal/host"
	"github.com/hy4ri/termfolio/internal/tui/components"
	"github.com/hy4ri/termfolio/internal/tui/logic"
	"github.com/hy4ri/termfolio/internal/tui/state"
)

// hostResultMsg reports the outcome of an open request.
type hostResultMsg struct {
	result host.Result
}

// themeSavedMsg reports the outcome of saving the theme.
type themeSavedMsg struct {
	theme state.ThemeName
	err   error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Reserve one line for the status bar
		vpHeight := max(msg.Height-1, 1)
		if !a.viewportReady {
			a.viewport = viewport.New(msg.Width, vpHeight)
			a.viewport.MouseWheelEnabled = true
			a.viewportReady = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = vpHeight
		}
		a.renderer.SetSize(msg.Width, vpHeight)
		a.refresh(true)
		return a, nil

	case logic.CaretSyncMsg:
		a.editor.SyncCaret()
		a.refresh(false)
		return a, nil

	case components.BootLineMsg:
		a.boot.Update(msg)
		a.refresh(true)
		return a, nil

	case hostResultMsg:
		a.handleHostResult(msg.result)
		a.refresh(true)
		return a, nil

	case themeSavedMsg:
		if msg.err != nil {
			a.logger.Error("failed to save theme", "theme", msg.theme, "error", msg.err)
			a.session.Scrollback.AddText(fmt.Sprintf("could not save theme: %v", msg.err), state.StyleSystem)
			a.refresh(true)
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Shell convention: ctrl+d only quits on an empty line
	if a.keymap.Quit.Matches(msg) && a.session.Input.Buffer() == "" {
		a.logger.Info("quit")
		return a, tea.Quit
	}

	if a.keymap.PageUp.Matches(msg) || a.keymap.PageDown.Matches(msg) {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	// The prompt is hidden while booting
	if a.boot.Running() {
		return a, nil
	}

	out := a.editor.HandleKey(msg)
	cmd := a.runIntents(out.Intents)
	a.refresh(true)
	return a, tea.Batch(out.Cmd, cmd)
}

// runIntents turns side-effect requests into commands.
func (a *App) runIntents(intents []logic.Intent) tea.Cmd {
	var cmds []tea.Cmd
	for _, intent := range intents {
		switch intent := intent.(type) {
		case logic.OpenMailClient:
			cmds = append(cmds, a.openCmd(func() host.Result { return a.host.OpenMail(intent.Address) }))
		case logic.OpenExternalLink:
			cmds = append(cmds, a.openCmd(func() host.Result { return a.host.Open(intent.URL) }))
		case logic.RequestReboot:
			cmds = append(cmds, a.reboot())
		case logic.PersistTheme:
			cmds = append(cmds, a.saveThemeCmd(intent.Name))
		case logic.Bell:
			if a.cfg.UI.Bell {
				cmds = append(cmds, a.bellCmd())
			}
		default:
			a.logger.Warn("unhandled intent", "intent", fmt.Sprintf("%T", intent))
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) openCmd(open func() host.Result) tea.Cmd {
	return func() tea.Msg {
		return hostResultMsg{result: open()}
	}
}

func (a *App) saveThemeCmd(theme state.ThemeName) tea.Cmd {
	if a.configPath == "" {
		return nil
	}
	path := a.configPath
	return func() tea.Msg {
		return themeSavedMsg{theme: theme, err: config.SaveTheme(path, string(theme))}
	}
}

func (a *App) bellCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.host.Bell(); err != nil {
			a.logger.Debug("bell failed", "error", err)
		}
		return nil
	}
}

func (a *App) handleHostResult(res host.Result) {
	switch {
	case res.Err != nil:
		a.logger.Error("failed to open", "target", res.Target, "error", res.Err)
		a.session.Scrollback.AddText(fmt.Sprintf("could not open %s", res.Target), state.StyleSystem)
	case res.Copied:
		a.session.Scrollback.AddText(fmt.Sprintf("no browser available, copied %s to clipboard", res.Target), state.StyleSystem)
	}
}

// refresh re-renders the scrollback into the viewport. With follow set the
// view snaps to the newest output.
func (a *App) refresh(follow bool) {
	if !a.viewportReady {
		return
	}
	a.viewport.Style = a.renderer.Theme().App
	a.viewport.SetContent(a.renderer.Content(a.boot.Running()))
	if follow {
		a.viewport.GotoBottom()
	}
}
