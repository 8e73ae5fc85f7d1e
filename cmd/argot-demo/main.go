// argot-demo is a tiny CLI built on the argot parser, mostly useful for
// eyeballing help rendering.  Try:
//
//	argot-demo greet --name you
//	argot-demo manual        (a subcommand with the help action)
//	argot-demo help greet
package main

import (
	"context"
	"os"

	"github.com/warptools/argot/argapi"
	"github.com/warptools/argot/pkg/logging"
	"github.com/warptools/argot/pkg/run"
)

const VERSION = "v0.1.0"

func makeTree() *argapi.Command {
	return &argapi.Command{
		Name:    "argot-demo",
		Version: VERSION,
		Usage:   "declarative argument parsing, demonstrated",
		Flags: []argapi.Flag{
			&argapi.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose output",
				EnvVars: []string{"ARGOT_DEBUG"},
			},
			&argapi.BoolFlag{
				Name:  "quiet",
				Usage: "Suppress operator chatter",
			},
		},
		Subcommands: []*argapi.Command{
			{
				Name:  "greet",
				Usage: "Print a greeting",
				Flags: []argapi.Flag{
					&argapi.StringFlag{
						Name:  "name",
						Usage: "Who to greet (`WHO`)",
						Value: "world",
					},
					&argapi.IntFlag{
						Name:  "repeat",
						Usage: "How many times to say it",
						Value: 1,
					},
				},
				Run: cmdGreet,
			},
			(&argapi.Command{
				Name:  "manual",
				Usage: "Show this manual",
			}).WithAction(argapi.ActionHelp),
		},
	}
}

func cmdGreet(ctx context.Context, m *argapi.Matches) error {
	log := logging.Ctx(ctx)
	log.Debug("greet", "repeat=%d", m.Int("repeat"))
	for i := 0; i < m.Int("repeat"); i++ {
		log.Out("Hello, %s!", m.String("name"))
	}
	return nil
}

func main() {
	os.Exit(run.Defaults().Run(context.Background(), makeTree(), os.Args))
}
