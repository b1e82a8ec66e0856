// Package state holds the session data the terminal reads and mutates:
// scrollback, command log, identity, theme preference and the prompt line.
package state

// Session bundles the per-session stores. It is passed explicitly to the
// editor, the dispatcher and the renderer instead of living in globals.
type Session struct {
	Identity   Identity
	Scrollback *Scrollback
	Commands   *CommandLog
	Theme      *ThemePreference
	Input      *InputState
}

// NewSession creates a session with empty stores.
func NewSession(identity Identity, theme *ThemePreference) *Session {
	if theme == nil {
		theme = NewThemePreference("")
	}
	return &Session{
		Identity:   identity,
		Scrollback: NewScrollback(),
		Commands:   NewCommandLog(),
		Theme:      theme,
		Input:      NewInputState(),
	}
}

// PromptParts returns the styled "user@domain:~$ " prefix.
func (s *Session) PromptParts() []LinePart {
	return []LinePart{
		Styled(s.Identity.Username, StyleSecondary),
		Text("@"),
		Styled(s.Identity.Domain, StylePrimary),
		Text(":~$ "),
	}
}

// EchoLine appends the prompt followed by input, as a shell does when a line
// is entered or interrupted.
func (s *Session) EchoLine(input string) Line {
	parts := append(s.PromptParts(), Text(input))
	return s.Scrollback.AddLine(parts...)
}
