package state

// CommandLog is the ordered list of submitted raw command strings. It feeds
// recall navigation and the history command.
type CommandLog struct {
	entries []string
}

// NewCommandLog creates an empty command log.
func NewCommandLog() *CommandLog {
	return &CommandLog{}
}

// Add appends a command exactly as submitted.
func (c *CommandLog) Add(command string) {
	c.entries = append(c.entries, command)
}

// Clear removes all entries.
func (c *CommandLog) Clear() {
	c.entries = nil
}

// Len returns the number of entries.
func (c *CommandLog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i. Callers must stay within [0, Len()).
func (c *CommandLog) At(i int) string {
	return c.entries[i]
}

// Entries returns a copy of all entries, oldest first.
func (c *CommandLog) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}
