package state

import "fmt"

// LineStyle selects the color/weight treatment of a line part.
type LineStyle int

const (
	StyleDefault LineStyle = iota
	StylePrimary
	StyleSecondary
	StyleSystem
	StyleBold
)

// String returns the style name used in logs and tests.
func (s LineStyle) String() string {
	switch s {
	case StylePrimary:
		return "primary"
	case StyleSecondary:
		return "secondary"
	case StyleSystem:
		return "system"
	case StyleBold:
		return "bold"
	default:
		return "default"
	}
}

// Display controls whether a part flows inline or takes its own row.
type Display int

const (
	DisplayInline Display = iota
	DisplayBlock
)

// LinePart is one styled text segment of a scrollback line.
type LinePart struct {
	Text    string
	Style   LineStyle
	Display Display
}

// Line is a rendered output line. Lines are immutable once appended.
type Line struct {
	ID    string
	Parts []LinePart
}

// Text creates an unstyled inline part.
func Text(text string) LinePart {
	return LinePart{Text: text}
}

// Styled creates an inline part with the given style.
func Styled(text string, style LineStyle) LinePart {
	return LinePart{Text: text, Style: style}
}

// Block creates an unstyled part that renders on its own row.
func Block(text string) LinePart {
	return LinePart{Text: text, Display: DisplayBlock}
}

// Scrollback is the ordered log of output lines shown above the prompt.
// Each Scrollback owns its own id counter so independent sessions never
// share line identities.
type Scrollback struct {
	lines   []Line
	counter int
}

// NewScrollback creates an empty scrollback.
func NewScrollback() *Scrollback {
	return &Scrollback{}
}

// AddLine appends a line made of the given parts. A line with no parts is
// valid and renders as an empty row.
func (s *Scrollback) AddLine(parts ...LinePart) Line {
	s.counter++
	copied := make([]LinePart, len(parts))
	copy(copied, parts)

	line := Line{
		ID:    fmt.Sprintf("line-%d", s.counter),
		Parts: copied,
	}
	s.lines = append(s.lines, line)
	return line
}

// AddText appends a single-part line.
func (s *Scrollback) AddText(text string, style LineStyle) Line {
	return s.AddLine(LinePart{Text: text, Style: style})
}

// Clear removes every line. The id counter keeps counting.
func (s *Scrollback) Clear() {
	s.lines = nil
}

// Lines returns a snapshot of the scrollback.
func (s *Scrollback) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines.
func (s *Scrollback) Len() int {
	return len(s.lines)
}
