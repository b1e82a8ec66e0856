package logic

import "github.com/hy4ri/termfolio/internal/tui/state"

// Intent is a side effect requested by the editor or dispatcher. The core
// never performs these itself; the program executes them.
type Intent interface {
	intent()
}

// OpenMailClient asks the host to compose a mail to Address.
type OpenMailClient struct {
	Address string
}

// OpenExternalLink asks the host to open URL in a browser.
type OpenExternalLink struct {
	URL string
}

// RequestReboot asks the host to restart the session.
type RequestReboot struct{}

// PersistTheme asks the host to save the theme preference.
type PersistTheme struct {
	Name state.ThemeName
}

// Bell asks the host to ring the terminal bell.
type Bell struct{}

func (OpenMailClient) intent()   {}
func (OpenExternalLink) intent() {}
func (RequestReboot) intent()    {}
func (PersistTheme) intent()     {}
func (Bell) intent()             {}
