package argapi

// CommandAction describes what the parser does at the moment it matches a
// subcommand on the command line.
//
// The zero value is ActionUser, which means the match is simply reported to
// the caller in the Matches result.  ActionHelp makes matching the subcommand
// behave exactly as if the user had asked for that subcommand's help page:
// parsing stops before descending into the subtree, and the parser returns
// the argot-help outcome.
//
// CommandAction is a closed set today but is expected to grow variants.
// Consumers must not compare values directly; go through Kind, which folds
// any variant this version does not recognize into ActionKind_User.
type CommandAction struct {
	kind string
	// Future variants may carry payload (e.g. a custom message).
	// Keeping this a struct rather than a bare enum leaves room for that
	// without a breaking change.
}

var (
	// ActionUser reports the match to the caller as a normal parse result.
	ActionUser = CommandAction{}
	// ActionHelp turns the match into a display-help outcome.
	ActionHelp = CommandAction{kind: "help"}
)

// ActionKind enumerates the resolution outcomes known to this version.
type ActionKind uint8

const (
	ActionKind_User ActionKind = iota
	ActionKind_Help
)

// Kind reports which known behavior this action selects.
// Unrecognized variants (from newer command-tree producers) resolve to
// ActionKind_User, so existing callers degrade to pass-through rather than
// misbehaving.
func (a CommandAction) Kind() ActionKind {
	switch a.kind {
	case "help":
		return ActionKind_Help
	default:
		return ActionKind_User
	}
}

func (a CommandAction) String() string {
	if a.kind == "" {
		return "user"
	}
	return a.kind
}
