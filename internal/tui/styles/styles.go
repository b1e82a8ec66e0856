// Package styles provides Lip Gloss styles for the terminal.
package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/termfolio/internal/tui/state"
)

// Palette is the set of colors a theme paints with.
type Palette struct {
	Base      lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Subtle    lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Link      lipgloss.Color
	Error     lipgloss.Color
}

// flavor maps a theme to its Catppuccin flavour.
func flavor(name state.ThemeName) catppuccin.Flavor {
	switch name {
	case state.ThemeLatte:
		return catppuccin.Latte
	case state.ThemeFrappe:
		return catppuccin.Frappe
	case state.ThemeMocha:
		return catppuccin.Mocha
	default:
		return catppuccin.Macchiato
	}
}

// PaletteFor returns the palette of a theme. Unknown names get the
// default flavour.
func PaletteFor(name state.ThemeName) Palette {
	f := flavor(name)
	return Palette{
		Base:      lipgloss.Color(f.Base().Hex),
		Surface:   lipgloss.Color(f.Surface0().Hex),
		Text:      lipgloss.Color(f.Text().Hex),
		Subtle:    lipgloss.Color(f.Overlay1().Hex),
		Primary:   lipgloss.Color(f.Mauve().Hex),
		Secondary: lipgloss.Color(f.Sapphire().Hex),
		Accent:    lipgloss.Color(f.Teal().Hex),
		Link:      lipgloss.Color(f.Blue().Hex),
		Error:     lipgloss.Color(f.Red().Hex),
	}
}

// Theme holds every style the renderer uses for one palette.
type Theme struct {
	Name    state.ThemeName
	Palette Palette

	// App fills the screen with the base color
	App lipgloss.Style

	// Line part styles
	Default   lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	System    lipgloss.Style
	Bold      lipgloss.Style

	// Prompt styles
	// NOTE: Caret inverts text and base, like a block cursor
	Caret lipgloss.Style

	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style

	StatusBar     lipgloss.Style
	StatusBarKey  lipgloss.Style
	StatusBarText lipgloss.Style
}

// New builds the styles for a theme.
func New(name state.ThemeName) Theme {
	p := PaletteFor(name)
	base := lipgloss.NewStyle().
		Background(p.Base).
		Foreground(p.Text)

	return Theme{
		Name:    name,
		Palette: p,

		App: base,

		Default: base,
		Primary: base.
			Foreground(p.Primary),
		Secondary: base.
			Foreground(p.Secondary).
			Bold(true),
		System: base.
			Foreground(p.Subtle),
		Bold: base.
			Bold(true),

		Caret: lipgloss.NewStyle().
			Background(p.Text).
			Foreground(p.Base),

		Suggestion: base.
			Foreground(p.Subtle),
		SuggestionSelected: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),
		StatusBarKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Background(p.Surface),
		StatusBarText: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Background(p.Surface),
	}
}

// Line returns the style for a line part.
func (t Theme) Line(style state.LineStyle) lipgloss.Style {
	switch style {
	case state.StylePrimary:
		return t.Primary
	case state.StyleSecondary:
		return t.Secondary
	case state.StyleSystem:
		return t.System
	case state.StyleBold:
		return t.Bold
	default:
		return t.Default
	}
}
