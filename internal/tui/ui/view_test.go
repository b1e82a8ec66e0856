package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() (*Renderer, *state.Session) {
	s := state.NewSession(state.Identity{Username: "relaxed-haibt", Domain: "example.dev"}, nil)
	return NewRenderer(s, state.DefaultKeymap()), s
}

func TestRenderLine_BlockParts(t *testing.T) {
	r, s := newTestRenderer()
	s.Scrollback.AddLine(state.Block("whoami"), state.Block("about"))

	rows := strings.Split(r.Content(true), "\n")

	assert.Equal(t, []string{"whoami", "about"}, rows)
}

func TestRenderLine_InlineThenBlock(t *testing.T) {
	r, s := newTestRenderer()
	s.Scrollback.AddLine(state.Text("a"), state.Text("b"), state.Block("c"), state.Text("d"))

	rows := strings.Split(r.Content(true), "\n")

	assert.Equal(t, []string{"ab", "c", "d"}, rows)
}

func TestRenderLine_EmptyLineKeepsRow(t *testing.T) {
	r, s := newTestRenderer()
	s.Scrollback.AddText("one", state.StyleDefault)
	s.Scrollback.AddLine()
	s.Scrollback.AddText("two", state.StyleDefault)

	rows := strings.Split(r.Content(true), "\n")

	assert.Equal(t, []string{"one", "", "two"}, rows)
}

func TestRenderPrompt_Caret(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		cursor int
	}{
		{"end of line", "help", 4},
		{"middle", "help", 1},
		{"empty", "", 0},
		{"stale cursor", "he", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRenderer()
			s.Input.SetBuffer(tt.buffer)
			s.Input.Cursor = tt.cursor

			content := r.Content(false)

			want := "relaxed-haibt@example.dev:~$ " + tt.buffer
			if tt.cursor >= len(tt.buffer) {
				want += " "
			}
			assert.Equal(t, want, content)
		})
	}
}

func TestRenderPrompt_HiddenWhileBooting(t *testing.T) {
	r, s := newTestRenderer()
	s.Scrollback.AddText("Access granted.", state.StyleDefault)

	assert.NotContains(t, r.Content(true), ":~$")
	assert.Contains(t, r.Content(false), ":~$")
}

func TestRenderPrompt_Suggestions(t *testing.T) {
	r, s := newTestRenderer()
	s.Input.SetBuffer("e")
	s.Input.Suggestions = []string{"education", "email"}

	rows := strings.Split(r.Content(false), "\n")

	require.Len(t, rows, 2)
	assert.Equal(t, "education  email", rows[1])
}

func TestFill_WrapsAndPads(t *testing.T) {
	r, s := newTestRenderer()
	r.SetSize(10, 5)
	s.Scrollback.AddText("one two three four", state.StyleDefault)

	rows := strings.Split(r.Content(true), "\n")

	require.Greater(t, len(rows), 1)
	for _, row := range rows {
		assert.Equal(t, 10, lipgloss.Width(row), "row %q", row)
	}
	assert.Equal(t, "one two", strings.TrimRight(rows[0], " "))
}

func TestStatusBar(t *testing.T) {
	r, _ := newTestRenderer()
	r.SetSize(200, 20)

	bar := r.StatusBar(false)
	assert.Contains(t, bar, "relaxed-haibt@example.dev")
	assert.Contains(t, bar, "macchiato")
	assert.Contains(t, bar, "tab:complete")
	assert.Equal(t, 200, lipgloss.Width(bar))

	assert.Contains(t, r.StatusBar(true), "booting...")

	r.SetSize(20, 20)
	narrow := r.StatusBar(false)
	assert.NotContains(t, narrow, "tab:complete")
	assert.LessOrEqual(t, lipgloss.Width(narrow), 20)
}

func TestSplitAtCaret(t *testing.T) {
	before, at, after := splitAtCaret("héllo", 1)
	assert.Equal(t, "h", before)
	assert.Equal(t, "é", at)
	assert.Equal(t, "llo", after)

	before, at, after = splitAtCaret("ab", 2)
	assert.Equal(t, "ab", before)
	assert.Equal(t, " ", at)
	assert.Equal(t, "", after)
}
