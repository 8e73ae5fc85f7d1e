package argapi

// Matches is the result of a successful parse: which command (and nested
// subcommand chain) was selected, the flag values seen along the way, and
// any positional arguments.
//
// One Matches value describes one command level; nested subcommand selections
// hang off it.  Values are written by the parser during one parse call and
// are read-only afterward.
type Matches struct {
	cmd   *Command
	path  []string
	flags map[string]interface{}
	args  []string
	sub   *Matches
}

// NewMatches starts an empty result for one command level.
// This is for the parser's use; library consumers only read Matches.
func NewMatches(cmd *Command, path []string) *Matches {
	return &Matches{
		cmd:   cmd,
		path:  append([]string(nil), path...),
		flags: map[string]interface{}{},
	}
}

func (m *Matches) SetFlag(name string, v interface{}) { m.flags[name] = v }

// AppendFlag accumulates a value for a repeatable (slice) flag.
func (m *Matches) AppendFlag(name string, v string) {
	prev, _ := m.flags[name].([]string)
	m.flags[name] = append(prev, v)
}

func (m *Matches) AddArg(s string)          { m.args = append(m.args, s) }
func (m *Matches) SetSubcommand(s *Matches) { m.sub = s }

// Command returns the definition this level of the result describes.
func (m *Matches) Command() *Command { return m.cmd }

// Path returns the full invocation path of this command level,
// starting at the root command's name.
func (m *Matches) Path() []string { return append([]string(nil), m.path...) }

// Args returns the positional arguments collected at this level.
func (m *Matches) Args() []string { return append([]string(nil), m.args...) }

// Subcommand reports the nested selection, if any.
func (m *Matches) Subcommand() (name string, sub *Matches, ok bool) {
	if m.sub == nil {
		return "", nil, false
	}
	return m.sub.cmd.Name, m.sub, true
}

// Terminal returns the deepest command level of this result.
func (m *Matches) Terminal() *Matches {
	t := m
	for t.sub != nil {
		t = t.sub
	}
	return t
}

// IsSet reports whether the named flag was supplied (on the command line or
// via an env var), as opposed to merely having a default.
func (m *Matches) IsSet(name string) bool {
	_, ok := m.flags[m.canonical(name)]
	return ok
}

// Bool returns the named flag's value, or its default when unset.
func (m *Matches) Bool(name string) bool {
	if v, ok := m.lookup(name).(bool); ok {
		return v
	}
	return false
}

// String returns the named flag's value, or its default when unset.
func (m *Matches) String(name string) string {
	if v, ok := m.lookup(name).(string); ok {
		return v
	}
	return ""
}

// Int returns the named flag's value, or its default when unset.
func (m *Matches) Int(name string) int {
	if v, ok := m.lookup(name).(int); ok {
		return v
	}
	return 0
}

// StringSlice returns all accumulated values of a repeatable flag.
func (m *Matches) StringSlice(name string) []string {
	if v, ok := m.lookup(name).([]string); ok {
		return append([]string(nil), v...)
	}
	return nil
}

func (m *Matches) lookup(name string) interface{} {
	canon := m.canonical(name)
	if v, ok := m.flags[canon]; ok {
		return v
	}
	if f := m.cmd.LookupFlag(canon); f != nil {
		return f.DefaultValue()
	}
	return nil
}

// canonical resolves an alias to the flag's primary name, so values are
// stored and found under one key no matter which spelling was used.
func (m *Matches) canonical(name string) string {
	if f := m.cmd.LookupFlag(name); f != nil {
		return f.Names()[0]
	}
	return name
}
