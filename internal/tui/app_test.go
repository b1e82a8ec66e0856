package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/config"
	"github.com/hy4ri/termfolio/internal/host"
	"github.com/hy4ri/termfolio/internal/tui/components"
	"github.com/hy4ri/termfolio/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	opened []string
	mailed []string
	bells  int
	copy   bool
}

func (h *fakeHost) Open(target string) host.Result {
	h.opened = append(h.opened, target)
	return host.Result{Target: target, Copied: h.copy}
}

func (h *fakeHost) OpenMail(address string) host.Result {
	h.mailed = append(h.mailed, address)
	return host.Result{Target: "mailto:" + address}
}

func (h *fakeHost) Bell() error {
	h.bells++
	return nil
}

func newTestApp(t *testing.T, opts Options) (*App, *fakeHost) {
	t.Helper()
	h := &fakeHost{}
	opts.Host = h
	opts.SkipBoot = true
	if opts.Identity == nil {
		opts.Identity = &state.Identity{Username: "relaxed-haibt", Domain: state.DefaultDomain}
	}
	a := NewApp(opts)
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a, h
}

// drain runs cmd and feeds every resulting message back into the app.
func drain(a *App, cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var seen []tea.Msg
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			seen = append(seen, drain(a, c)...)
		}
	default:
		seen = append(seen, msg)
		_, next := a.Update(msg)
		seen = append(seen, drain(a, next)...)
	}
	return seen
}

func typeLine(a *App, text string) {
	for _, r := range text {
		_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		drain(a, cmd)
	}
}

func enter(a *App, text string) []tea.Msg {
	typeLine(a, text)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return drain(a, cmd)
}

func TestApp_SkipBootShowsWelcome(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	view := a.View()

	assert.Contains(t, view, "WELCOME TO FSOCIETY NODE")
	assert.Contains(t, view, "For a list of available commands, type `help`.")
	assert.False(t, a.boot.Running())
}

func TestApp_LoadingBeforeSize(t *testing.T) {
	a := NewApp(Options{Host: &fakeHost{}, SkipBoot: true})
	assert.Equal(t, "Loading...", a.View())
}

func TestApp_RunsCommands(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	enter(a, "whoami")

	assert.Contains(t, a.View(), "relaxed-haibt@"+state.DefaultDomain+":~$ whoami")
	assert.Equal(t, []string{"whoami"}, a.session.Commands.Entries())
}

func TestApp_EmailIntent(t *testing.T) {
	a, h := newTestApp(t, Options{Config: &config.Config{Profile: config.ProfileConfig{Email: "me@example.dev"}}})

	enter(a, "email")

	assert.Equal(t, []string{"me@example.dev"}, h.mailed)
}

func TestApp_SocialFallbackLine(t *testing.T) {
	a, h := newTestApp(t, Options{})
	h.copy = true

	enter(a, "socials go github")

	require.Equal(t, []string{"https://github.com/lindstorm76"}, h.opened)
	lines := a.session.Scrollback.Lines()
	last := lines[len(lines)-1]
	assert.Equal(t, state.StyleSystem, last.Parts[0].Style)
	assert.Contains(t, last.Parts[0].Text, "copied https://github.com/lindstorm76")
}

func TestApp_SocialsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.Socials = []config.Social{{Name: "Blog", URL: "https://example.dev"}}
	a, h := newTestApp(t, Options{Config: cfg})

	enter(a, "socials go blog")
	enter(a, "socials go github")

	assert.Equal(t, []string{"https://example.dev"}, h.opened)
}

func TestApp_BellOnDeadTab(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		a, h := newTestApp(t, Options{})
		typeLine(a, "zz")

		_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyTab})
		drain(a, cmd)

		assert.Equal(t, 1, h.bells)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.UI.Bell = false
		a, h := newTestApp(t, Options{Config: cfg})
		typeLine(a, "zz")

		_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyTab})
		drain(a, cmd)

		assert.Equal(t, 0, h.bells)
	})
}

func TestApp_ThemeSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	a, _ := newTestApp(t, Options{ConfigPath: path})

	enter(a, "themes set latte")

	assert.Equal(t, state.ThemeLatte, a.session.Theme.Name())
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "latte", cfg.UI.Theme)
}

func TestApp_ThemeSaveFailureIsReported(t *testing.T) {
	a, _ := newTestApp(t, Options{ConfigPath: "/dev/null/config.yaml"})

	enter(a, "themes set mocha")

	assert.Equal(t, state.ThemeMocha, a.session.Theme.Name())
	assert.Contains(t, a.View(), "could not save theme")
}

func TestApp_ThemeOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Theme = "latte"

	a, _ := newTestApp(t, Options{Config: cfg, Theme: "frappe"})
	assert.Equal(t, state.ThemeFrappe, a.session.Theme.Name())

	a, _ = newTestApp(t, Options{Config: cfg})
	assert.Equal(t, state.ThemeLatte, a.session.Theme.Name())
}

func TestApp_RebootKeepsIdentity(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	enter(a, "about")
	typeLine(a, "draft")
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	drain(a, cmd)

	enter(a, "reboot")

	assert.Equal(t, "relaxed-haibt", a.session.Identity.Username)
	assert.Equal(t, 0, a.session.Commands.Len())
	assert.Equal(t, "", a.session.Input.Buffer())
	assert.Equal(t, len(components.BootSequence)+2, a.session.Scrollback.Len())
	assert.NotContains(t, a.View(), "terminal-style portfolio")
}

// playBoot delivers every boot tick of the current run, last line first.
func playBoot(a *App) {
	gen := a.boot.Generation()
	for i := len(components.BootSequence) - 1; i >= 0; i-- {
		a.Update(components.BootLineMsg{Generation: gen, Index: i})
	}
}

func TestApp_AnimatedReboot(t *testing.T) {
	a := NewApp(Options{Host: &fakeHost{}, Identity: &state.Identity{Username: "u", Domain: "d"}})
	require.NotNil(t, a.Init())
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	playBoot(a)
	require.False(t, a.boot.Running())
	first := a.boot.Generation()

	typeLine(a, "reboot")
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.True(t, a.boot.Running())
	assert.Greater(t, a.boot.Generation(), first)
	assert.Equal(t, 0, a.session.Scrollback.Len())
	assert.Equal(t, 0, a.session.Commands.Len())

	// Ticks left over from the first boot change nothing
	a.Update(components.BootLineMsg{Generation: first, Index: 0})
	assert.Equal(t, 0, a.session.Scrollback.Len())

	playBoot(a)

	assert.False(t, a.boot.Running())
	assert.Equal(t, "u", a.session.Identity.Username)
	require.Equal(t, len(components.BootSequence)+2, a.session.Scrollback.Len())
	view := a.View()
	assert.Contains(t, view, "WELCOME TO FSOCIETY NODE")
	assert.Contains(t, view, "For a list of available commands, type `help`.")
	assert.Contains(t, view, "u@d:~$")
}

func TestApp_KeysIgnoredWhileBooting(t *testing.T) {
	a := NewApp(Options{Host: &fakeHost{}, Identity: &state.Identity{Username: "u", Domain: "d"}})
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	require.True(t, a.boot.Running())

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "", a.session.Input.Buffer())
	assert.Equal(t, 0, a.session.Commands.Len())
	assert.NotContains(t, a.View(), ":~$")

	playBoot(a)
	assert.False(t, a.boot.Running())
	assert.Contains(t, a.View(), "u@d:~$")
}

func TestApp_QuitOnlyOnEmptyLine(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	typeLine(a, "ab")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	msgs := drain(a, cmd)
	for _, m := range msgs {
		_, isQuit := m.(tea.QuitMsg)
		assert.False(t, isQuit)
	}

	a.session.Input.Reset()
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ClearEmptiesView(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	enter(a, "help")

	enter(a, "clear")

	assert.Equal(t, 0, a.session.Scrollback.Len())
	assert.False(t, strings.Contains(a.View(), "WELCOME"))
}

func TestApp_HostErrorLine(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	a.Update(hostResultMsg{result: host.Result{Target: "mailto:x", Err: errors.New("boom")}})

	assert.Contains(t, a.View(), "could not open mailto:x")
}
