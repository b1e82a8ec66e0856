package logic

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hy4ri/termfolio/internal/tui/state"
	"github.com/mattn/go-runewidth"
)

const (
	themesSetPrefix = "themes set "
	socialsGoPrefix = "socials go "

	// columnGap is the spacing between the longest name and its description.
	columnGap = 4
)

// Dispatcher interprets submitted commands against the session.
type Dispatcher struct {
	session  *state.Session
	commands *CommandRegistry
	links    *LinkRegistry
	profile  Profile
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil logger discards output.
func NewDispatcher(s *state.Session, commands *CommandRegistry, links *LinkRegistry, profile Profile, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		session:  s,
		commands: commands,
		links:    links,
		profile:  profile,
		logger:   logger,
	}
}

// Commands returns the registry used for help and completion.
func (d *Dispatcher) Commands() *CommandRegistry {
	return d.commands
}

// Execute records command in the command log and runs it, returning the
// side effects the host should perform.
func (d *Dispatcher) Execute(command string) []Intent {
	d.session.Commands.Add(command)

	normalized := strings.ToLower(strings.TrimSpace(command))
	d.logger.Debug("dispatch", "command", normalized)

	switch {
	case strings.HasPrefix(normalized, themesSetPrefix):
		return d.setTheme(strings.TrimSpace(strings.TrimPrefix(normalized, themesSetPrefix)))
	case strings.HasPrefix(normalized, socialsGoPrefix):
		return d.openSocial(strings.TrimSpace(strings.TrimPrefix(normalized, socialsGoPrefix)))
	}

	def, ok := d.commands.Lookup(normalized)
	if !ok {
		d.session.Scrollback.AddText("command not found: "+strings.ToLower(command), state.StyleDefault)
		return nil
	}
	return d.run(def.ID)
}

func (d *Dispatcher) run(id CommandID) []Intent {
	out := d.session.Scrollback

	switch id {
	case CmdAbout:
		d.addLines(d.profile.About)
	case CmdClear:
		out.Clear()
		d.session.Commands.Clear()
	case CmdEducation:
		d.addLines(d.profile.Education)
	case CmdEmail:
		out.AddText("opening mail client...", state.StyleDefault)
		return []Intent{OpenMailClient{Address: d.profile.Email}}
	case CmdHelp:
		d.help()
	case CmdHistory:
		entries := d.session.Commands.Entries()
		parts := make([]state.LinePart, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, state.Block(e))
		}
		out.AddLine(parts...)
	case CmdReboot:
		d.session.Commands.Clear()
		return []Intent{RequestReboot{}}
	case CmdSocials:
		d.socials()
	case CmdThemes:
		d.themes()
	case CmdWhoami:
		out.AddText(d.session.Identity.Username, state.StyleDefault)
	default:
		out.AddText(fmt.Sprintf("command not implemented: %d", id), state.StyleSystem)
		d.logger.Warn("registered command has no handler", "id", id)
	}
	return nil
}

func (d *Dispatcher) setTheme(name string) []Intent {
	theme, err := d.session.Theme.Set(name)
	if err != nil {
		d.session.Scrollback.AddText("theme not found: "+name, state.StyleDefault)
		return nil
	}
	d.session.Scrollback.AddLine(
		state.Text("theme set to "),
		state.Styled(string(theme), state.StylePrimary),
	)
	return []Intent{PersistTheme{Name: theme}}
}

func (d *Dispatcher) openSocial(name string) []Intent {
	link, ok := d.links.Lookup(name)
	if !ok {
		d.session.Scrollback.AddText("social not found: "+name, state.StyleDefault)
		return nil
	}
	d.session.Scrollback.AddText(fmt.Sprintf("opening %s...", link.URL), state.StyleDefault)
	return []Intent{OpenExternalLink{URL: link.URL}}
}

func (d *Dispatcher) help() {
	defs := d.commands.All()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	width := columnWidth(names)

	for _, def := range defs {
		d.session.Scrollback.AddLine(
			state.Styled(runewidth.FillRight(def.Name, width), state.StylePrimary),
			state.Text(def.Description),
		)
	}
}

func (d *Dispatcher) socials() {
	links := d.links.All()
	names := make([]string, len(links))
	for i, l := range links {
		names[i] = l.Name
	}
	width := columnWidth(names)

	for _, l := range links {
		d.session.Scrollback.AddLine(
			state.Styled(runewidth.FillRight(l.Name, width), state.StylePrimary),
			state.Text(l.URL),
		)
	}
	d.session.Scrollback.AddLine(
		state.Text("use `"),
		state.Styled("socials go <name>", state.StylePrimary),
		state.Text("` to open a link"),
	)
}

func (d *Dispatcher) themes() {
	active := d.session.Theme.Name()
	for _, t := range state.ThemeNames() {
		if t == active {
			d.session.Scrollback.AddLine(
				state.Text("* "),
				state.Styled(string(t), state.StylePrimary),
				state.Styled(" (current)", state.StyleSystem),
			)
			continue
		}
		d.session.Scrollback.AddLine(state.Text("  "), state.Text(string(t)))
	}
	d.session.Scrollback.AddLine(
		state.Text("use `"),
		state.Styled("themes set <name>", state.StylePrimary),
		state.Text("` to change theme"),
	)
}

func (d *Dispatcher) addLines(lines [][]state.LinePart) {
	for _, parts := range lines {
		d.session.Scrollback.AddLine(parts...)
	}
}

// columnWidth returns the padded width for a name column: the widest name
// plus columnGap.
func columnWidth(names []string) int {
	longest := 0
	for _, n := range names {
		if w := runewidth.StringWidth(n); w > longest {
			longest = w
		}
	}
	return longest + columnGap
}
