package argapi

import (
	"context"
	"fmt"
	"regexp"

	"github.com/facette/natsort"
	"github.com/serum-errors/go-serum"
)

// Command is one node of a declarative command tree.
//
// A tree is built once (struct literals, possibly chained through the
// builder-style setters), optionally checked with Validate, and is then
// read-only for its whole life: every parse call only reads it, so one tree
// can serve concurrent parses without locking.
//
// A guide to the doc strings, matching how our help pages use them:
//
//   - Usage -- one-liner, used when a parent command lists its children.
//   - UsageText -- synopsis; may be multi-line.  Defaults to an autogenerated one.
//   - Description -- freetext prose; only shown on the long-form help page.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	UsageText   string
	Description string
	Version     string // Only meaningful on the root of a tree; enables the --version flag.
	Hidden      bool   // Omitted from help listings; still matchable.

	Flags       []Flag
	Subcommands []*Command

	// Action controls what the parser does when this command is matched
	// as a subcommand.  The zero value is ActionUser.
	Action CommandAction

	// Run is an optional handler, invoked by the run package after a
	// successful parse lands on this command.  The parser itself never
	// calls it.
	Run RunFunc
}

// RunFunc is the handler signature used by the run package driver.
type RunFunc func(ctx context.Context, m *Matches) error

// WithAction sets the command's action and returns the command,
// for use in tree-building chains.  This is the only action mutator;
// do not reassign the field after the tree is in use.
func (c *Command) WithAction(action CommandAction) *Command {
	c.Action = action
	return c
}

// HasName reports whether name is the command's name or one of its aliases.
func (c *Command) HasName(name string) bool {
	if c.Name == name {
		return true
	}
	for _, a := range c.Aliases {
		if a == name {
			return true
		}
	}
	return false
}

// Subcommand returns the direct child matching name (by name or alias),
// or nil if there is none.
func (c *Command) Subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.HasName(name) {
			return sub
		}
	}
	return nil
}

// VisibleSubcommands returns the non-hidden children in natural sort order,
// which is the order help pages list them in.
func (c *Command) VisibleSubcommands() []*Command {
	names := make([]string, 0, len(c.Subcommands))
	byName := make(map[string]*Command, len(c.Subcommands))
	for _, sub := range c.Subcommands {
		if sub.Hidden {
			continue
		}
		names = append(names, sub.Name)
		byName[sub.Name] = sub
	}
	natsort.Sort(names)
	result := make([]*Command, 0, len(names))
	for _, n := range names {
		result = append(result, byName[n])
	}
	return result
}

// LookupFlag returns the flag matching name (by name or alias), or nil.
func (c *Command) LookupFlag(name string) Flag {
	for _, f := range c.Flags {
		for _, n := range f.Names() {
			if n == name {
				return f
			}
		}
	}
	return nil
}

// Command names must start alphanumeric and stay in the usual CLI-safe set.
var reCommandName = regexp.MustCompile(`^[a-zA-Z0-9][-a-zA-Z0-9_.]*$`)

// Validate checks the whole tree for definition mistakes:
// empty or malformed names, duplicate sibling names or aliases,
// and duplicate flag names within one command.
//
// The parser runs this at the top of every parse call, so a malformed tree
// surfaces as an error result rather than as quiet misparsing.
//
// Errors:
//
//   - argot-error-tree-invalid -- when any command or flag definition is malformed
func (c *Command) Validate() error {
	return c.validate(c.Name)
}

func (c *Command) validate(path string) error {
	if c.Name == "" {
		return serum.Error(ECodeTreeInvalid,
			serum.WithMessageTemplate("command under {{path|q}} has an empty name"),
			serum.WithDetail("path", path),
		)
	}
	if !reCommandName.MatchString(c.Name) {
		return serum.Error(ECodeTreeInvalid,
			serum.WithMessageTemplate("command name {{name|q}} must start with an alphanumeric character and contain only alphanumerics, '-', '_', or '.'"),
			serum.WithDetail("name", c.Name),
			serum.WithDetail("path", path),
		)
	}
	seenFlags := map[string]struct{}{}
	for _, f := range c.Flags {
		for _, n := range f.Names() {
			if n == "" {
				return serum.Error(ECodeTreeInvalid,
					serum.WithMessageTemplate("command {{path|q}} has a flag with an empty name"),
					serum.WithDetail("path", path),
				)
			}
			if _, exists := seenFlags[n]; exists {
				return serum.Error(ECodeTreeInvalid,
					serum.WithMessageTemplate("command {{path|q}} defines flag name {{flag|q}} more than once"),
					serum.WithDetail("path", path),
					serum.WithDetail("flag", n),
				)
			}
			seenFlags[n] = struct{}{}
		}
	}
	seenNames := map[string]struct{}{}
	for _, sub := range c.Subcommands {
		for _, n := range append([]string{sub.Name}, sub.Aliases...) {
			if _, exists := seenNames[n]; exists {
				return serum.Error(ECodeTreeInvalid,
					serum.WithMessageTemplate("command {{path|q}} has more than one subcommand answering to {{name|q}}"),
					serum.WithDetail("path", path),
					serum.WithDetail("name", n),
				)
			}
			seenNames[n] = struct{}{}
		}
		if err := sub.validate(fmt.Sprintf("%s %s", path, sub.Name)); err != nil {
			return err
		}
	}
	return nil
}
