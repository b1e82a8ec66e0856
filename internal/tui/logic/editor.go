package logic

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/tui/state"
)

// caretFrame is how long a caret resync waits after a native edit.
const caretFrame = time.Second / 60

// CaretSyncMsg tells the editor to read the caret back from the field.
type CaretSyncMsg struct{}

// Outcome is the result of handling one key.
type Outcome struct {
	Intents []Intent
	Cmd     tea.Cmd
}

// Editor turns key presses into prompt line transitions and hands submitted
// lines to the dispatcher.
type Editor struct {
	session    *state.Session
	dispatcher *Dispatcher
	keymap     state.Keymap
}

// NewEditor creates an editor over the session's prompt line.
func NewEditor(s *state.Session, d *Dispatcher, keymap state.Keymap) *Editor {
	return &Editor{
		session:    s,
		dispatcher: d,
		keymap:     keymap,
	}
}

// HandleKey applies one key press.
func (e *Editor) HandleKey(msg tea.KeyMsg) Outcome {
	switch {
	case e.keymap.Submit.Matches(msg):
		return e.submit()
	case e.keymap.Interrupt.Matches(msg):
		e.interrupt()
		return Outcome{}
	case e.keymap.RecallUp.Matches(msg):
		e.recallUp()
		return Outcome{}
	case e.keymap.RecallDown.Matches(msg):
		e.recallDown()
		return Outcome{}
	case e.keymap.Complete.Matches(msg):
		return e.complete()
	}
	return e.edit(msg)
}

// SyncCaret copies the field's caret into the input state. It is the second
// phase of a native edit and only affects display.
func (e *Editor) SyncCaret() {
	in := e.session.Input
	pos := in.Input.Position()
	if n := len([]rune(in.Buffer())); pos > n {
		pos = n
	}
	if pos < 0 {
		pos = 0
	}
	in.Cursor = pos
	in.SelectionEnd = pos
}

// Reset clears the prompt line.
func (e *Editor) Reset() {
	e.session.Input.Reset()
}

// edit delegates to the native field. A changed buffer ends any suggestion
// session; recall state is left alone.
func (e *Editor) edit(msg tea.KeyMsg) Outcome {
	in := e.session.Input
	before := in.Buffer()

	var cmd tea.Cmd
	in.Input, cmd = in.Input.Update(msg)

	if in.Buffer() != before {
		in.ClearSuggestions()
	}
	return Outcome{Cmd: tea.Batch(cmd, scheduleCaretSync())}
}

func (e *Editor) submit() Outcome {
	in := e.session.Input
	buffer := in.Buffer()

	e.session.EchoLine(buffer)

	var intents []Intent
	if strings.TrimSpace(buffer) != "" {
		intents = e.dispatcher.Execute(buffer)
	}

	in.Reset()
	return Outcome{Intents: intents}
}

func (e *Editor) interrupt() {
	e.session.EchoLine(e.session.Input.Buffer())
	e.session.Input.Reset()
}

func (e *Editor) recallUp() {
	in := e.session.Input
	log := e.session.Commands
	if log.Len() == 0 {
		return
	}

	switch {
	case in.RecallIndex == -1 || in.RecallIndex >= log.Len():
		in.Draft = in.Buffer()
		in.RecallIndex = log.Len() - 1
	case in.RecallIndex > 0:
		in.RecallIndex--
	default:
		return
	}

	in.ClearSuggestions()
	in.SetBuffer(log.At(in.RecallIndex))
}

func (e *Editor) recallDown() {
	in := e.session.Input
	log := e.session.Commands
	if in.RecallIndex == -1 {
		return
	}

	in.ClearSuggestions()
	if in.RecallIndex < log.Len()-1 {
		in.RecallIndex++
		in.SetBuffer(log.At(in.RecallIndex))
		return
	}

	in.RecallIndex = -1
	in.SetBuffer(in.Draft)
}

func (e *Editor) complete() Outcome {
	in := e.session.Input

	if in.HasSuggestions() {
		in.SuggestionIndex = (in.SuggestionIndex + 1) % len(in.Suggestions)
		in.SetBuffer(in.Suggestions[in.SuggestionIndex])
		return Outcome{}
	}

	buffer := in.Buffer()
	if buffer == "" {
		return Outcome{}
	}

	matches := e.dispatcher.Commands().Complete(buffer)
	switch len(matches) {
	case 0:
		return Outcome{Intents: []Intent{Bell{}}}
	case 1:
		in.SetBuffer(matches[0])
	default:
		in.Suggestions = matches
		in.SuggestionIndex = -1
	}
	return Outcome{}
}

func scheduleCaretSync() tea.Cmd {
	return tea.Tick(caretFrame, func(time.Time) tea.Msg {
		return CaretSyncMsg{}
	})
}
