// Package parse turns an argv slice into a Matches result against a
// declarative command tree.
//
// Parsing is a pure, synchronous computation: no I/O, no blocking, and the
// command tree is only read, so one tree can serve concurrent Parse calls.
// (Env var fallback for flags is the one deliberate exception to "no I/O";
// it reads the process environment and nothing else.)
//
// All the ways an invocation can end in a help page -- the -h and --help
// flags, the built-in help subcommand, and subcommands configured with
// argapi.ActionHelp -- converge on the argot-help outcome, so callers have
// exactly one branch to write for "show help".
package parse

import (
	"os"
	"strings"

	"github.com/warptools/argot/argapi"
)

// Parse matches argv against the command tree rooted at root.
//
// argv is the full invocation, program name first (as in os.Args).
//
// Errors:
//
//   - argot-help -- help was requested; not a failure (see argapi.HelpRequest)
//   - argot-version -- version display was requested; not a failure
//   - argot-error-usage -- unknown flag, missing flag value, or bad help topic
//   - argot-error-flag-value -- a flag value could not be parsed
//   - argot-error-missing -- a required flag was never supplied
//   - argot-error-tree-invalid -- the command tree definition itself is malformed
func Parse(root *argapi.Command, argv []string) (*argapi.Matches, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, argapi.ErrorUsage("empty argument vector")
	}
	p := &parser{root: root}
	return p.parseCommand(root, []string{root.Name}, argv[1:])
}

type parser struct {
	root *argapi.Command

	// Ambient help context.  Set when a help flag is seen; from then on the
	// parser only scans ahead for a subcommand token to refine the help
	// target, and the parse ends in the argot-help outcome regardless.
	helpRequested bool
	helpLong      bool
}

func (p *parser) parseCommand(cmd *argapi.Command, path []string, rest []string) (*argapi.Matches, error) {
	m := argapi.NewMatches(cmd, path)
	argsOnly := false // set by the "--" terminator

	i := 0
	for i < len(rest) {
		tok := rest[i]
		switch {
		case !argsOnly && tok == "--":
			argsOnly = true
			i++

		case !argsOnly && strings.HasPrefix(tok, "-") && tok != "-":
			consumed, err := p.parseFlagToken(cmd, path, m, rest, i)
			if err != nil {
				return nil, err
			}
			i += consumed

		default:
			// The first bare token may select a subcommand; everything else
			// is a positional argument.
			if !argsOnly && len(m.Args()) == 0 {
				if tok == "help" && len(cmd.Subcommands) > 0 && cmd.Subcommand("help") == nil {
					return nil, p.builtinHelp(cmd, path, rest[i+1:])
				}
				if sub := cmd.Subcommand(tok); sub != nil {
					subPath := appendPath(path, sub.Name)
					// Resolution happens at the moment of the match, before
					// any token of the subtree is examined.
					if err := resolveAction(sub, subPath, p.helpContext()); err != nil {
						return nil, err
					}
					if err := p.finishFlags(cmd, path, m); err != nil {
						return nil, err
					}
					subM, err := p.parseCommand(sub, subPath, rest[i+1:])
					if err != nil {
						return nil, err
					}
					m.SetSubcommand(subM)
					return m, nil
				}
			}
			m.AddArg(tok)
			i++
		}
	}

	if p.helpRequested {
		return nil, argapi.ErrorHelp(path, p.helpLong)
	}
	if err := p.finishFlags(cmd, path, m); err != nil {
		return nil, err
	}
	return m, nil
}

// parseFlagToken handles one flag-shaped token (and possibly the value token
// after it).  Returns how many tokens were consumed.
func (p *parser) parseFlagToken(cmd *argapi.Command, path []string, m *argapi.Matches, rest []string, i int) (int, error) {
	tok := rest[i]

	// Built-in flags come first; they exist on every command.
	switch tok {
	case "-h":
		p.helpRequested = true
		return 1, nil
	case "--help":
		p.helpRequested = true
		p.helpLong = true
		return 1, nil
	case "--version":
		if cmd == p.root && cmd.Version != "" && !p.helpRequested {
			return 0, argapi.ErrorVersion(cmd.Name, cmd.Version)
		}
	}

	// Once help is pending, remaining flags are moot: the parse is going to
	// end in the help outcome, so we only skip over them.
	if p.helpRequested {
		return 1, nil
	}

	name := strings.TrimLeft(tok, "-")
	valGiven := false
	val := ""
	if idx := strings.Index(name, "="); idx >= 0 {
		valGiven = true
		val = name[idx+1:]
		name = name[:idx]
	}
	f := cmd.LookupFlag(name)
	if f == nil {
		return 0, argapi.ErrorUnknownFlag(path, tok)
	}
	primary := f.Names()[0]

	if !f.TakesValue() {
		// Presence means true; "--flag=false" is still honored.
		if valGiven {
			v, err := f.ParseValue(val)
			if err != nil {
				return 0, err
			}
			m.SetFlag(primary, v)
		} else {
			m.SetFlag(primary, true)
		}
		return 1, nil
	}

	consumed := 1
	if !valGiven {
		if i+1 >= len(rest) {
			return 0, argapi.ErrorMissingFlagValue(path, primary)
		}
		val = rest[i+1]
		consumed = 2
	}
	if _, isSlice := f.(*argapi.StringSliceFlag); isSlice {
		m.AppendFlag(primary, val)
		return consumed, nil
	}
	v, err := f.ParseValue(val)
	if err != nil {
		return 0, err
	}
	m.SetFlag(primary, v)
	return consumed, nil
}

// builtinHelp implements the help subcommand: walk the remaining tokens down
// the tree to find the target, then produce the same outcome every other help
// pathway produces.
func (p *parser) builtinHelp(cmd *argapi.Command, path []string, topics []string) error {
	target, tpath := cmd, path
	for _, tok := range topics {
		if strings.HasPrefix(tok, "-") {
			break // trailing flags on the help command carry no meaning; stop refining.
		}
		sub := target.Subcommand(tok)
		if sub == nil {
			return argapi.ErrorUnknownHelpTopic(tpath, tok)
		}
		target, tpath = sub, appendPath(tpath, sub.Name)
	}
	return argapi.ErrorHelp(tpath, p.helpLong)
}

// finishFlags applies env var fallbacks and then enforces required flags.
// Called for a command level once no more of its own tokens will appear:
// either at descent into a subcommand, or at the end of input.
func (p *parser) finishFlags(cmd *argapi.Command, path []string, m *argapi.Matches) error {
	for _, f := range cmd.Flags {
		primary := f.Names()[0]
		if m.IsSet(primary) {
			continue
		}
		applied := false
		for _, env := range f.GetEnvVars() {
			raw, ok := os.LookupEnv(env)
			if !ok {
				continue
			}
			if sf, isSlice := f.(*argapi.StringSliceFlag); isSlice {
				for _, v := range sf.ParseEnvValue(raw) {
					m.AppendFlag(primary, v)
				}
			} else {
				v, err := f.ParseValue(raw)
				if err != nil {
					return err
				}
				m.SetFlag(primary, v)
			}
			applied = true
			break
		}
		if !applied && f.IsRequired() {
			return argapi.ErrorRequiredFlag(path, primary)
		}
	}
	return nil
}

func appendPath(path []string, name string) []string {
	return append(append([]string(nil), path...), name)
}
