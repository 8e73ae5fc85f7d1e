// Package help generates help pages, in markdown, for commands in an
// argapi command tree.
//
// The parser never calls into this package: it only classifies outcomes.
// Whoever receives the argot-help outcome (usually the run package) asks
// this package for the page and the render package for terminal styling.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/warptools/argot/argapi"
)

type docData struct {
	HelpName    string
	Usage       string
	Synopsis    string
	Version     string
	Description string
	Commands    []cmdDoc
	Flags       []string
}

type cmdDoc struct {
	Names string
	Usage string
}

// Generate writes the help page for target to out.
//
// path is the invocation path as carried by the argot-help outcome (root
// name first).  The long form adds VERSION, DESCRIPTION, and per-flag
// default and env var hints; the short form is what -h shows.
func Generate(target *argapi.Command, path []string, long bool, out io.Writer) {
	helpName := strings.Join(path, " ")
	data := docData{
		HelpName:    helpName,
		Usage:       target.Usage,
		Synopsis:    synopsis(target, helpName),
		Version:     target.Version,
		Description: target.Description,
	}
	for _, sub := range target.VisibleSubcommands() {
		data.Commands = append(data.Commands, cmdDoc{
			Names: strings.Join(append([]string{sub.Name}, sub.Aliases...), ", "),
			Usage: sub.Usage,
		})
	}
	for _, f := range target.Flags {
		if f.IsHidden() {
			continue
		}
		data.Flags = append(data.Flags, flagDoc(f, long))
	}
	data.Flags = append(data.Flags, builtinHelpFlagDoc)
	if target.Version != "" {
		data.Flags = append(data.Flags, builtinVersionFlagDoc)
	}

	first := true
	section := func(tmpl string) {
		if !first {
			io.WriteString(out, "\n\n")
		}
		first = false
		renderSection(out, tmpl, data)
	}

	section(nameTemplate)
	section(usageTemplate)
	if long && target.Version != "" {
		section(versionTemplate)
	}
	if long && target.Description != "" {
		section(descriptionTemplate)
	}
	if len(data.Commands) > 0 {
		section(commandsTemplate)
	}
	section(optionsTemplate)
	io.WriteString(out, "\n")
}

// Lookup walks a command path (as recovered by argapi.HelpRequest) back down
// the tree to the command it names.
//
// Errors:
//
//   - argot-error-usage -- when the path does not name a command in this tree
func Lookup(root *argapi.Command, path []string) (*argapi.Command, error) {
	if len(path) == 0 || !root.HasName(path[0]) {
		return nil, argapi.ErrorUsage(fmt.Sprintf("no command found at path %q", strings.Join(path, " ")))
	}
	target := root
	for _, name := range path[1:] {
		sub := target.Subcommand(name)
		if sub == nil {
			return nil, argapi.ErrorUsage(fmt.Sprintf("no command found at path %q", strings.Join(path, " ")))
		}
		target = sub
	}
	return target, nil
}

// synopsis returns the command's UsageText, or an autogenerated one-line shape
// of the invocation when none was written.
func synopsis(c *argapi.Command, helpName string) string {
	if c.UsageText != "" {
		return strings.TrimSpace(c.UsageText)
	}
	s := helpName
	if len(c.Subcommands) > 0 {
		s += " [command]"
	}
	return s + " [options] [arguments...]"
}

const builtinHelpFlagDoc = "#### -h, --help\n\nShow help for the command; --help gives the long form"
const builtinVersionFlagDoc = "#### --version\n\nPrint the version"

// flagDoc renders one flag as a #### heading plus its usage prose.
func flagDoc(f argapi.Flag, long bool) string {
	placeholder, usage := unquoteUsage(f.GetUsage())
	if f.TakesValue() && placeholder == "" {
		placeholder = "VALUE"
	}
	s := "#### " + prefixedNames(f.Names(), placeholder) + "\n\n" + strings.TrimSpace(usage)
	if long {
		if dft := f.GetDefaultText(); dft != "" {
			s += fmt.Sprintf("\n\n(default: **%s**)", dft)
		}
		if envs := f.GetEnvVars(); len(envs) > 0 {
			s += fmt.Sprintf("\n\n(env var: $%s)", strings.Join(envs, ", $"))
		}
	}
	return s
}

// unquoteUsage returns the backtick-quoted placeholder, if any, and the usage
// string with the quotes removed.
func unquoteUsage(usage string) (string, string) {
	for i := 0; i < len(usage); i++ {
		if usage[i] == '`' {
			for j := i + 1; j < len(usage); j++ {
				if usage[j] == '`' {
					name := usage[i+1 : j]
					usage = usage[:i] + name + usage[j+1:]
					return name, usage
				}
			}
			break
		}
	}
	return "", usage
}

func prefixedNames(names []string, placeholder string) string {
	var prefixed string
	for i, name := range names {
		if name == "" {
			continue
		}
		prefixed += prefixFor(name) + name
		if placeholder != "" {
			prefixed += "=<" + placeholder + ">"
		}
		if i < len(names)-1 {
			prefixed += ", "
		}
	}
	return prefixed
}

func prefixFor(name string) string {
	if len(name) == 1 {
		return "-"
	}
	return "--"
}
