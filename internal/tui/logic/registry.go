package logic

import "strings"

// CommandID identifies one of the static commands. The set is closed:
// every ID has an entry in the registry and an arm in the dispatcher.
type CommandID int

const (
	CmdAbout CommandID = iota
	CmdClear
	CmdEducation
	CmdEmail
	CmdHelp
	CmdHistory
	CmdReboot
	CmdSocials
	CmdThemes
	CmdWhoami
)

// CommandDef defines a command.
type CommandDef struct {
	ID          CommandID
	Name        string
	Description string
}

// CommandRegistry is the ordered list of commands. Declaration order drives
// help output and completion order.
type CommandRegistry struct {
	defs   []CommandDef
	byName map[string]CommandDef
}

// DefaultCommands returns the built-in command table.
func DefaultCommands() *CommandRegistry {
	return NewCommandRegistry([]CommandDef{
		{ID: CmdAbout, Name: "about", Description: "learn more about me"},
		{ID: CmdClear, Name: "clear", Description: "clear the terminal"},
		{ID: CmdEducation, Name: "education", Description: "my educational background"},
		{ID: CmdEmail, Name: "email", Description: "send me an email"},
		{ID: CmdHelp, Name: "help", Description: "list available commands"},
		{ID: CmdHistory, Name: "history", Description: "show command history"},
		{ID: CmdReboot, Name: "reboot", Description: "restart the terminal"},
		{ID: CmdSocials, Name: "socials", Description: "find me online"},
		{ID: CmdThemes, Name: "themes", Description: "list and change themes"},
		{ID: CmdWhoami, Name: "whoami", Description: "display current user"},
	})
}

// NewCommandRegistry builds a registry. Later duplicates of a name are
// ignored.
func NewCommandRegistry(defs []CommandDef) *CommandRegistry {
	r := &CommandRegistry{byName: make(map[string]CommandDef, len(defs))}
	for _, def := range defs {
		if _, dup := r.byName[def.Name]; dup {
			continue
		}
		r.defs = append(r.defs, def)
		r.byName[def.Name] = def
	}
	return r
}

// All returns the commands in declaration order.
func (r *CommandRegistry) All() []CommandDef {
	out := make([]CommandDef, len(r.defs))
	copy(out, r.defs)
	return out
}

// Lookup finds a command by exact name.
func (r *CommandRegistry) Lookup(name string) (CommandDef, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Complete returns every command name starting with prefix, case-sensitive,
// in declaration order.
func (r *CommandRegistry) Complete(prefix string) []string {
	var matches []string
	for _, def := range r.defs {
		if strings.HasPrefix(def.Name, prefix) {
			matches = append(matches, def.Name)
		}
	}
	return matches
}

// Link is a named external profile.
type Link struct {
	Name string
	URL  string
}

// LinkRegistry is the ordered table used by "socials".
type LinkRegistry struct {
	links []Link
}

// DefaultLinks returns the built-in social links.
func DefaultLinks() *LinkRegistry {
	return NewLinkRegistry([]Link{
		{Name: "github", URL: "https://github.com/lindstorm76"},
		{Name: "leetcode", URL: "https://leetcode.com/u/lindstorm76"},
		{Name: "hackerrank", URL: "https://www.hackerrank.com/profile/lindstorm76"},
	})
}

// NewLinkRegistry builds a link table. Names are stored lower-cased because
// lookups come from normalized input.
func NewLinkRegistry(links []Link) *LinkRegistry {
	r := &LinkRegistry{}
	for _, l := range links {
		name := strings.ToLower(strings.TrimSpace(l.Name))
		if name == "" || l.URL == "" {
			continue
		}
		if _, dup := r.Lookup(name); dup {
			continue
		}
		r.links = append(r.links, Link{Name: name, URL: l.URL})
	}
	return r
}

// All returns the links in declaration order.
func (r *LinkRegistry) All() []Link {
	out := make([]Link, len(r.links))
	copy(out, r.links)
	return out
}

// Lookup finds a link by name.
func (r *LinkRegistry) Lookup(name string) (Link, bool) {
	for _, l := range r.links {
		if l.Name == name {
			return l, true
		}
	}
	return Link{}, false
}
