package argapi

import (
	"strings"

	"github.com/serum-errors/go-serum"
)

// Outcome and error codes for the whole parser.
//
// The two Code* values are not failures: they are the parser's way of saying
// "stop and show something" (help or version).  Callers that branch on
// "was this a help request" should use IsHelp rather than comparing codes.
const (
	CodeHelp    = "argot-help"
	CodeVersion = "argot-version"

	ECodeUsage       = "argot-error-usage"
	ECodeFlagValue   = "argot-error-flag-value"
	ECodeMissing     = "argot-error-missing"
	ECodeTreeInvalid = "argot-error-tree-invalid"
)

const (
	helpFormLong  = "long"
	helpFormShort = "short"
)

// ErrorHelp constructs the display-help outcome for the command at the given
// invocation path.
//
// Every pathway that ends in showing help -- the -h and --help flags, the
// built-in help subcommand, and ActionHelp resolution -- funnels through this
// one constructor, which is what makes those pathways indistinguishable to
// callers.
//
// Errors:
//
//   - argot-help --
func ErrorHelp(path []string, long bool) error {
	form := helpFormShort
	if long {
		form = helpFormLong
	}
	return serum.Error(CodeHelp,
		serum.WithMessageTemplate("help requested for command {{command|q}}"),
		serum.WithDetail("command", strings.Join(path, " ")),
		serum.WithDetail("form", form),
	)
}

// IsHelp reports whether err is the display-help outcome.
func IsHelp(err error) bool {
	return serum.Code(err) == CodeHelp
}

// HelpRequest recovers the target command path and requested verbosity from a
// display-help outcome.  ok is false if err is not one.
func HelpRequest(err error) (path []string, long bool, ok bool) {
	if !IsHelp(err) {
		return nil, false, false
	}
	sv, isSerum := err.(*serum.ErrorValue)
	if !isSerum {
		return nil, false, false
	}
	var command, form string
	for _, d := range sv.Data.Details {
		switch d[0] {
		case "command":
			command = d[1]
		case "form":
			form = d[1]
		}
	}
	return strings.Fields(command), form == helpFormLong, true
}

// ErrorVersion constructs the version-display outcome.
//
// Errors:
//
//   - argot-version --
func ErrorVersion(name, version string) error {
	return serum.Error(CodeVersion,
		serum.WithMessageTemplate("{{name}} {{version}}"),
		serum.WithDetail("name", name),
		serum.WithDetail("version", version),
	)
}

// IsVersion reports whether err is the version-display outcome.
func IsVersion(err error) bool {
	return serum.Code(err) == CodeVersion
}

// ErrorUnknownFlag is returned when a flag token matches nothing on the
// command being parsed.
//
// Errors:
//
//   - argot-error-usage --
func ErrorUnknownFlag(path []string, token string) error {
	return serum.Error(ECodeUsage,
		serum.WithMessageTemplate("unknown flag {{flag|q}} for command {{command|q}}"),
		serum.WithDetail("flag", token),
		serum.WithDetail("command", strings.Join(path, " ")),
	)
}

// ErrorUnknownHelpTopic is returned when the built-in help subcommand is
// pointed at a name that is not a subcommand.
//
// Errors:
//
//   - argot-error-usage --
func ErrorUnknownHelpTopic(path []string, topic string) error {
	return serum.Error(ECodeUsage,
		serum.WithMessageTemplate("unknown help topic {{topic|q}}: command {{command|q}} has no such subcommand"),
		serum.WithDetail("topic", topic),
		serum.WithDetail("command", strings.Join(path, " ")),
	)
}

// ErrorMissingFlagValue is returned when a value-taking flag is the last
// token of the input.
//
// Errors:
//
//   - argot-error-usage --
func ErrorMissingFlagValue(path []string, flagName string) error {
	return serum.Error(ECodeUsage,
		serum.WithMessageTemplate("flag {{flag|q}} needs a value"),
		serum.WithDetail("flag", flagName),
		serum.WithDetail("command", strings.Join(path, " ")),
	)
}

// ErrorRequiredFlag is returned when a required flag was never supplied.
//
// Errors:
//
//   - argot-error-missing --
func ErrorRequiredFlag(path []string, flagName string) error {
	return serum.Error(ECodeMissing,
		serum.WithMessageTemplate("required flag {{flag|q}} not set for command {{command|q}}"),
		serum.WithDetail("flag", flagName),
		serum.WithDetail("command", strings.Join(path, " ")),
	)
}

// ErrorUsage is for miscellaneous invocation mistakes.
// Prefer the more specific constructors where one fits.
//
// Errors:
//
//   - argot-error-usage --
func ErrorUsage(message string, deets ...[2]string) error {
	opts := make([]serum.WithConstruction, 0, len(deets)+1)
	for _, d := range deets {
		opts = append(opts, serum.WithDetail(d[0], d[1]))
	}
	opts = append(opts, serum.WithMessageLiteral(message))
	return serum.Error(ECodeUsage, opts...)
}
