package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Matches reports whether msg is this binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	return msg.String() == k.Key
}

// Keymap contains all key bindings for the terminal.
type Keymap struct {
	// Prompt line
	Submit     Key
	Interrupt  Key
	RecallUp   Key
	RecallDown Key
	Complete   Key

	// Viewport
	PageUp   Key
	PageDown Key

	// Program
	Quit Key
}

// DefaultKeymap returns the shell-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Submit:     Key{Key: "enter", Help: "run"},
		Interrupt:  Key{Key: "ctrl+c", Help: "cancel line"},
		RecallUp:   Key{Key: "up", Help: "previous command"},
		RecallDown: Key{Key: "down", Help: "next command"},
		Complete:   Key{Key: "tab", Help: "complete"},

		PageUp:   Key{Key: "pgup", Help: "scroll up"},
		PageDown: Key{Key: "pgdown", Help: "scroll down"},

		Quit: Key{Key: "ctrl+d", Help: "quit (empty line)"},
	}
}

// HelpItems returns the bindings shown in the status bar, in order.
func (k Keymap) HelpItems() []Key {
	return []Key{k.Complete, k.RecallUp, k.Interrupt, k.PageUp, k.Quit}
}
