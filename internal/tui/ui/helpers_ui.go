package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// truncateString truncates a string to the given width, appending "…" if truncated.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// wrapRow wraps a styled row to width. Words are kept whole where possible
// and anything still too long is hard-wrapped.
func wrapRow(row string, width int) []string {
	if width <= 0 {
		return []string{row}
	}
	wrapped := wrap.String(wordwrap.String(row, width), width)
	return strings.Split(wrapped, "\n")
}

// splitAtCaret splits s around the rune at pos. The caret cell is a space
// when pos is at or past the end.
func splitAtCaret(s string, pos int) (before, at, after string) {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos >= len(runes) {
		return s, " ", ""
	}
	return string(runes[:pos]), string(runes[pos]), string(runes[pos+1:])
}
