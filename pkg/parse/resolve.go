package parse

import (
	"github.com/warptools/argot/argapi"
)

// helpContext is the ambient help state of one parse call at the moment a
// subcommand is matched: whether a help flag already appeared earlier in the
// token stream, and whether it asked for the long form.
type helpContext struct {
	requested bool
	long      bool
}

func (p *parser) helpContext() helpContext {
	return helpContext{requested: p.helpRequested, long: p.helpLong}
}

// resolveAction decides the outcome of a subcommand match.
//
// It is consulted exactly once per match, before any token of the matched
// command's subtree is parsed, and reads nothing but the matched command's
// action and the ambient help context.  It cannot itself fail: the return is
// either nil ("continue normal parsing") or the display-help outcome -- the
// very same value the explicit help pathways construct, so the two are
// indistinguishable to the caller.
//
// Future action variants resolve through CommandAction.Kind, which folds
// anything unrecognized into pass-through.
//
// Errors:
//
//   - argot-help -- when the matched command's action is ActionHelp,
//     or a help flag earlier in the invocation already requested help
func resolveAction(matched *argapi.Command, path []string, hctx helpContext) error {
	switch matched.Action.Kind() {
	case argapi.ActionKind_Help:
		return argapi.ErrorHelp(path, hctx.long)
	default:
		// ActionKind_User, and any variant newer than this parser.
		if hctx.requested {
			// A pending -h/--help refines onto the command just matched.
			return argapi.ErrorHelp(path, hctx.long)
		}
		return nil
	}
}
