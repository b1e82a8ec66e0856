package state

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
)

// InputState holds the in-progress prompt line.
//
// Input is the native text field and owns the authoritative buffer. Cursor
// and SelectionEnd are the caret as last synchronized from the field; they
// may lag one frame behind a native edit and are only used for display.
type InputState struct {
	Input           textinput.Model
	Cursor          int
	SelectionEnd    int
	RecallIndex     int // -1 when not navigating the command log
	Draft           string
	Suggestions     []string
	SuggestionIndex int // -1 when no suggestion is selected yet
}

// NewInputState initializes an empty, focused prompt line.
func NewInputState() *InputState {
	input := textinput.New()
	input.Prompt = "" // Prompt is rendered externally
	input.Placeholder = ""
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorHide) // the renderer draws its own caret
	input.Focus()

	return &InputState{
		Input:           input,
		RecallIndex:     -1,
		SuggestionIndex: -1,
	}
}

// Buffer returns the current line.
func (s *InputState) Buffer() string {
	return s.Input.Value()
}

// SetBuffer replaces the line and moves the caret to its end.
func (s *InputState) SetBuffer(value string) {
	s.Input.SetValue(value)
	s.Input.CursorEnd()
	s.Cursor = len([]rune(value))
	s.SelectionEnd = s.Cursor
}

// HasSuggestions reports whether a suggestion session is active.
func (s *InputState) HasSuggestions() bool {
	return len(s.Suggestions) > 0
}

// ClearSuggestions ends any suggestion session.
func (s *InputState) ClearSuggestions() {
	s.Suggestions = nil
	s.SuggestionIndex = -1
}

// Reset returns the line to its initial empty state.
func (s *InputState) Reset() {
	s.Input.Reset()
	s.Cursor = 0
	s.SelectionEnd = 0
	s.RecallIndex = -1
	s.Draft = ""
	s.ClearSuggestions()
}
