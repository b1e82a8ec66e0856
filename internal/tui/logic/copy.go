package logic

import "github.com/hy4ri/termfolio/internal/tui/state"

// Profile is the static product copy behind the informational commands.
type Profile struct {
	Email     string
	About     [][]state.LinePart
	Education [][]state.LinePart
}

// DefaultProfile returns the built-in copy.
func DefaultProfile() Profile {
	return Profile{
		Email: "thanapong.angkha@gmail.com",
		About: [][]state.LinePart{
			{state.Text("Hello, "), state.Styled("friend", state.StylePrimary), state.Text(".")},
			{state.Text("This is a terminal-style portfolio. Type a command to look around.")},
			{state.Text("Everything here is static text served from this machine.")},
			{},
			{
				state.Text("The best way to reach me is "),
				state.Styled("email", state.StylePrimary),
				state.Text(" or one of my "),
				state.Styled("socials", state.StylePrimary),
				state.Text("."),
			},
		},
		Education: [][]state.LinePart{
			{state.Styled("Degree", state.StyleBold)},
			{state.Styled("Institution", state.StyleSecondary)},
		},
	}
}
