package state

import (
	"errors"
	"fmt"
)

// ThemeName identifies one of the built-in color themes.
type ThemeName string

const (
	ThemeLatte     ThemeName = "latte"
	ThemeFrappe    ThemeName = "frappe"
	ThemeMacchiato ThemeName = "macchiato"
	ThemeMocha     ThemeName = "mocha"
)

// DefaultTheme is used when nothing valid was persisted.
const DefaultTheme = ThemeMacchiato

// ErrUnknownTheme is returned for names outside the built-in set.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeNames lists the built-in themes in display order.
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeLatte, ThemeFrappe, ThemeMacchiato, ThemeMocha}
}

// ParseThemeName validates a theme name. Matching is exact.
func ParseThemeName(name string) (ThemeName, error) {
	for _, t := range ThemeNames() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// ThemePreference holds the active theme for a session.
type ThemePreference struct {
	name ThemeName
}

// NewThemePreference starts from a persisted value, falling back to
// DefaultTheme when it is empty or not a known theme.
func NewThemePreference(stored string) *ThemePreference {
	name, err := ParseThemeName(stored)
	if err != nil {
		name = DefaultTheme
	}
	return &ThemePreference{name: name}
}

// Name returns the active theme.
func (p *ThemePreference) Name() ThemeName {
	return p.name
}

// Set switches the active theme. The preference is unchanged on error.
// Persisting the choice is the caller's job.
func (p *ThemePreference) Set(name string) (ThemeName, error) {
	t, err := ParseThemeName(name)
	if err != nil {
		return "", err
	}
	p.name = t
	return t, nil
}
