package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/tui/state"
	"github.com/hy4ri/termfolio/internal/tui/styles"
)

// suggestionGap separates suggestions under the prompt.
const suggestionGap = "  "

// Renderer paints session snapshots. It never mutates the session.
type Renderer struct {
	session *state.Session
	keymap  state.Keymap

	Width  int
	Height int
}

// NewRenderer creates a renderer for a session.
func NewRenderer(s *state.Session, keymap state.Keymap) *Renderer {
	return &Renderer{session: s, keymap: keymap}
}

// SetSize updates the drawable area.
func (r *Renderer) SetSize(width, height int) {
	r.Width = width
	r.Height = height
}

// Theme returns the styles of the active theme.
func (r *Renderer) Theme() styles.Theme {
	return styles.New(r.session.Theme.Name())
}

// Content renders the scrollback and, once booted, the live prompt. It is
// the viewport content.
func (r *Renderer) Content(booting bool) string {
	t := r.Theme()

	var rows []string
	for _, line := range r.session.Scrollback.Lines() {
		rows = append(rows, r.renderLine(t, line)...)
	}
	if !booting {
		rows = append(rows, r.renderPrompt(t)...)
	}
	return strings.Join(rows, "\n")
}

// renderLine lays out one scrollback line. Inline parts share a row; each
// block part gets its own row.
func (r *Renderer) renderLine(t styles.Theme, line state.Line) []string {
	var rows []string
	var current strings.Builder
	pending := false

	flush := func() {
		rows = append(rows, r.fill(t, current.String())...)
		current.Reset()
		pending = false
	}

	for _, part := range line.Parts {
		rendered := t.Line(part.Style).Render(part.Text)
		if part.Display == state.DisplayBlock {
			if pending {
				flush()
			}
			rows = append(rows, r.fill(t, rendered)...)
			continue
		}
		current.WriteString(rendered)
		pending = true
	}

	if pending || len(rows) == 0 {
		flush()
	}
	return rows
}

// renderPrompt draws the prompt, the buffer with an inverted caret cell and
// any active suggestions.
func (r *Renderer) renderPrompt(t styles.Theme) []string {
	in := r.session.Input

	var b strings.Builder
	for _, part := range r.session.PromptParts() {
		b.WriteString(t.Line(part.Style).Render(part.Text))
	}

	before, at, after := splitAtCaret(in.Buffer(), in.Cursor)
	b.WriteString(t.Default.Render(before))
	b.WriteString(t.Caret.Render(at))
	b.WriteString(t.Default.Render(after))

	rows := r.fill(t, b.String())

	if in.HasSuggestions() {
		items := make([]string, len(in.Suggestions))
		for i, s := range in.Suggestions {
			if i == in.SuggestionIndex {
				items[i] = t.SuggestionSelected.Render(s)
			} else {
				items[i] = t.Suggestion.Render(s)
			}
		}
		rows = append(rows, r.fill(t, strings.Join(items, t.Default.Render(suggestionGap)))...)
	}
	return rows
}

// fill wraps a row to the window and pads it with the base color.
func (r *Renderer) fill(t styles.Theme, row string) []string {
	if r.Width <= 0 {
		return []string{row}
	}
	wrapped := wrapRow(row, r.Width)
	for i, w := range wrapped {
		if pad := r.Width - lipgloss.Width(w); pad > 0 {
			wrapped[i] = w + t.App.Render(strings.Repeat(" ", pad))
		}
	}
	return wrapped
}

// StatusBar renders the bottom bar: identity and theme on the left, key
// hints on the right.
func (r *Renderer) StatusBar(booting bool) string {
	t := r.Theme()

	left := r.session.Identity.Username + "@" + r.session.Identity.Domain + " · " + string(t.Name)
	if booting {
		left = "booting..."
	}

	var hints []string
	for _, k := range r.keymap.HelpItems() {
		hints = append(hints, t.StatusBarKey.Render(k.Key)+t.StatusBarText.Render(":"+k.Help))
	}
	right := strings.Join(hints, t.StatusBarText.Render(" "))

	padding := t.StatusBar.GetHorizontalFrameSize()
	rightWidth := lipgloss.Width(right)

	// Drop the hints before the identity when space runs out
	if lipgloss.Width(left)+rightWidth+padding+1 > r.Width {
		right = ""
		rightWidth = 0
		left = truncateString(left, r.Width-padding)
	}
	left = t.StatusBarText.Render(left)
	leftWidth := lipgloss.Width(left)

	gap := r.Width - leftWidth - rightWidth - padding
	if gap < 0 {
		gap = 0
	}
	spacer := t.StatusBarText.Render(strings.Repeat(" ", gap))
	return t.StatusBar.Width(r.Width).Render(left + spacer + right)
}
