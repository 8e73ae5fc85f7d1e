// Package run is the batteries-included driver around the parser: it turns
// parse outcomes into process behavior (rendered help pages, version lines,
// formatted errors, exit codes) and invokes command handlers.
//
// Library consumers that want different behavior can skip this package
// entirely and branch on parse.Parse's outcome codes themselves.
package run

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/warptools/argot/argapi"
	"github.com/warptools/argot/pkg/help"
	"github.com/warptools/argot/pkg/parse"
	"github.com/warptools/argot/pkg/render"
)

type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// RenderMode controls how help pages are drawn.
	RenderMode render.Mode

	// JSONErrors emits failures as serum JSON on stderr instead of prose,
	// for scripts sitting on the other end of the pipe.
	JSONErrors bool
}

// Defaults returns a Config wired to the real process streams,
// with ANSI help rendering.
func Defaults() Config {
	return Config{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		RenderMode: render.Mode_ANSI,
	}
}

// Run parses argv against root and fully handles the outcome.
//
// Help and version outcomes render to stdout and exit 0 -- asking for help
// is not an error, no matter whether it came from a flag, the help
// subcommand, or an ActionHelp subcommand.  Failures (including a handler
// returning an error) print to stderr and exit 1.  A successful parse runs
// the deepest matched command's handler, if it has one.
func (cfg Config) Run(ctx context.Context, root *argapi.Command, argv []string) int {
	m, err := parse.Parse(root, argv)
	switch {
	case err == nil:
		// continue below

	case argapi.IsHelp(err):
		path, long, _ := argapi.HelpRequest(err)
		target, lerr := help.Lookup(root, path)
		if lerr != nil {
			cfg.printError(lerr)
			return 1
		}
		var buf bytes.Buffer
		help.Generate(target, path, long, &buf)
		render.Render(buf.Bytes(), cfg.Stdout, cfg.RenderMode)
		return 0

	case argapi.IsVersion(err):
		fmt.Fprintf(cfg.Stdout, "%s %s\n", root.Name, root.Version)
		return 0

	default:
		cfg.printError(err)
		return 1
	}

	term := m.Terminal()
	if term.Command().Run == nil {
		return 0
	}
	fn := ChainMiddleware(term.Command().Run,
		MiddlewareLogging(cfg, m),
	)
	if err := fn(ctx, term); err != nil {
		cfg.printError(err)
		return 1
	}
	return 0
}

func (cfg Config) printError(err error) {
	if cfg.JSONErrors {
		bytes, merr := json.Marshal(err)
		if merr != nil {
			panic("error marshaling json")
		}
		fmt.Fprintf(cfg.Stderr, "%s\n", string(bytes))
		return
	}
	fmt.Fprintf(cfg.Stderr, "error: %s\n", err)
}
