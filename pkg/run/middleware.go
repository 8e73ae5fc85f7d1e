package run

import (
	"context"

	"github.com/warptools/argot/argapi"
	"github.com/warptools/argot/pkg/logging"
)

// Middleware wraps a command handler with behavior that runs around it.
type Middleware func(argapi.RunFunc) argapi.RunFunc

// ChainMiddleware wraps fn so the first middleware listed is the outermost.
func ChainMiddleware(fn argapi.RunFunc, middleware ...Middleware) argapi.RunFunc {
	for i := len(middleware) - 1; i >= 0; i-- {
		fn = middleware[i](fn)
	}
	return fn
}

// MiddlewareLogging puts a logger in the handler's context, configured from
// the root-level --verbose and --quiet flags when the tree defines them.
func MiddlewareLogging(cfg Config, rootMatches *argapi.Matches) Middleware {
	return func(fn argapi.RunFunc) argapi.RunFunc {
		return func(ctx context.Context, m *argapi.Matches) error {
			verbose := rootMatches.Bool("verbose")
			if rootMatches.Bool("quiet") {
				verbose = false
			}
			logger := logging.NewLogger(cfg.Stdout, cfg.Stderr, verbose)
			ctx = logging.WithLogger(ctx, logger)
			return fn(ctx, m)
		}
	}
}
