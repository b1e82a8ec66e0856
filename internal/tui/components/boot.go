package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/tui/state"
)

// BootLine is one line of the boot sequence, shown At after the start.
type BootLine struct {
	At        time.Duration
	Text      string
	Timestamp bool
}

// BootSequence is the default boot animation.
var BootSequence = []BootLine{
	{At: 0, Text: "Initializing system kernel...", Timestamp: true},
	{At: 13 * time.Millisecond, Text: "Loading modules: crypt0, rootkit, shadow", Timestamp: true},
	{At: 66 * time.Millisecond, Text: "Mounting /dev/anonymous", Timestamp: true},
	{At: 101 * time.Millisecond, Text: "Injecting entropy into pool...", Timestamp: true},
	{At: 404 * time.Millisecond, Text: "Establishing secure tunnel...", Timestamp: true},
	{At: 733 * time.Millisecond, Text: "Bypassing firewall...", Timestamp: true},
	{At: 1337 * time.Millisecond, Text: "Access granted.", Timestamp: true},
	{At: 2200 * time.Millisecond, Text: "\u00a0"},
	{At: 2300 * time.Millisecond, Text: "-----------------------------------------"},
	{At: 2400 * time.Millisecond, Text: "        WELCOME TO FSOCIETY NODE"},
	{At: 2500 * time.Millisecond, Text: "-----------------------------------------"},
}

// BootLineMsg reports that the boot line at Index is due.
type BootLineMsg struct {
	Generation int
	Index      int
}

// Boot plays the boot sequence into a session's scrollback. Each Start
// begins a new generation; messages from older generations are dropped.
// Lines are shown in sequence order whatever order their ticks arrive in,
// and the boot finishes once the last line is shown.
type Boot struct {
	session    *state.Session
	lines      []BootLine
	generation int
	running    bool

	due  []bool // lines whose tick has arrived
	next int    // first line not yet shown
}

// NewBoot creates a boot player. A nil sequence uses BootSequence.
func NewBoot(s *state.Session, lines []BootLine) *Boot {
	if lines == nil {
		lines = BootSequence
	}
	return &Boot{session: s, lines: lines}
}

// Running reports whether the sequence is still playing.
func (b *Boot) Running() bool {
	return b.running
}

// Generation returns the current boot generation.
func (b *Boot) Generation() int {
	return b.generation
}

// Start clears the scrollback and schedules every boot line.
func (b *Boot) Start() tea.Cmd {
	b.generation++
	b.session.Scrollback.Clear()
	b.due = make([]bool, len(b.lines))
	b.next = 0

	if len(b.lines) == 0 {
		b.finish()
		return nil
	}
	b.running = true

	gen := b.generation
	cmds := make([]tea.Cmd, 0, len(b.lines))
	for i, line := range b.lines {
		index := i
		cmds = append(cmds, tea.Tick(line.At, func(time.Time) tea.Msg {
			return BootLineMsg{Generation: gen, Index: index}
		}))
	}
	return tea.Batch(cmds...)
}

// Skip renders the whole sequence at once and finishes the boot.
func (b *Boot) Skip() {
	b.generation++
	b.session.Scrollback.Clear()
	for _, line := range b.lines {
		b.session.Scrollback.AddLine(bootParts(line)...)
	}
	b.next = len(b.lines)
	b.finish()
}

// Update applies a boot message. It reports whether msg belonged to the
// boot sequence, including stale messages that were dropped.
func (b *Boot) Update(msg tea.Msg) bool {
	line, ok := msg.(BootLineMsg)
	if !ok {
		return false
	}
	if line.Generation != b.generation || !b.running || line.Index < 0 || line.Index >= len(b.lines) {
		return true
	}

	b.due[line.Index] = true
	for b.next < len(b.lines) && b.due[b.next] {
		b.session.Scrollback.AddLine(bootParts(b.lines[b.next])...)
		b.next++
	}
	if b.next == len(b.lines) {
		b.finish()
	}
	return true
}

func (b *Boot) finish() {
	b.running = false
	b.session.Scrollback.AddLine(
		state.Text("For a list of available commands, type `"),
		state.Styled("help", state.StylePrimary),
		state.Text("`."),
	)
	b.session.Scrollback.AddLine(b.session.PromptParts()...)
}

func bootParts(line BootLine) []state.LinePart {
	var parts []state.LinePart
	if line.Timestamp {
		parts = append(parts, state.Styled(FormatTimestamp(line.At)+" ", state.StyleSystem))
	}
	return append(parts, state.Text(line.Text))
}

// FormatTimestamp formats a boot offset as a kernel log stamp, e.g.
// "[ 1.3370]".
func FormatTimestamp(d time.Duration) string {
	return fmt.Sprintf("[%7.4f]", d.Seconds())
}
