package parse

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/warptools/argot/argapi"
)

func flagTestTree() *argapi.Command {
	return &argapi.Command{
		Name:    "tool",
		Version: "v9.9.9",
		Flags: []argapi.Flag{
			&argapi.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
			&argapi.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-"},
			&argapi.IntFlag{Name: "jobs", Value: 1},
			&argapi.StringSliceFlag{Name: "tag"},
			&argapi.StringFlag{Name: "from-env", EnvVars: []string{"TOOL_FROM_ENV"}},
		},
		Subcommands: []*argapi.Command{
			{
				Name: "build",
				Flags: []argapi.Flag{
					&argapi.StringFlag{Name: "target", Required: true},
				},
			},
		},
	}
}

func TestFlagForms(t *testing.T) {
	for _, tt := range []struct {
		name string
		argv []string
		want func(t *testing.T, m *argapi.Matches)
	}{
		{name: "long flag with equals",
			argv: []string{"tool", "--output=out.bin"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.String("output"), qt.Equals, "out.bin")
			},
		},
		{name: "long flag with separate value",
			argv: []string{"tool", "--output", "out.bin"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.String("output"), qt.Equals, "out.bin")
			},
		},
		{name: "short alias",
			argv: []string{"tool", "-o", "out.bin", "-v"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.String("output"), qt.Equals, "out.bin")
				qt.Assert(t, m.Bool("verbose"), qt.IsTrue)
			},
		},
		{name: "bool flag with explicit false",
			argv: []string{"tool", "--verbose=false"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.Bool("verbose"), qt.IsFalse)
				qt.Assert(t, m.IsSet("verbose"), qt.IsTrue)
			},
		},
		{name: "int flag",
			argv: []string{"tool", "--jobs", "4"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.Int("jobs"), qt.Equals, 4)
			},
		},
		{name: "slice flag accumulates",
			argv: []string{"tool", "--tag", "a", "--tag=b"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.StringSlice("tag"), qt.DeepEquals, []string{"a", "b"})
			},
		},
		{name: "defaults apply when flags absent",
			argv: []string{"tool"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.String("output"), qt.Equals, "-")
				qt.Assert(t, m.Int("jobs"), qt.Equals, 1)
				qt.Assert(t, m.Bool("verbose"), qt.IsFalse)
			},
		},
		{name: "double dash ends flag parsing",
			argv: []string{"tool", "--", "--output", "x"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.Args(), qt.DeepEquals, []string{"--output", "x"})
				qt.Assert(t, m.String("output"), qt.Equals, "-")
			},
		},
		{name: "bare dash is a positional",
			argv: []string{"tool", "-"},
			want: func(t *testing.T, m *argapi.Matches) {
				qt.Assert(t, m.Args(), qt.DeepEquals, []string{"-"})
			},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(flagTestTree(), tt.argv)
			qt.Assert(t, err, qt.IsNil)
			tt.want(t, m)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		name     string
		argv     []string
		wantCode string
	}{
		{name: "unknown flag",
			argv: []string{"tool", "--frobnicate"}, wantCode: argapi.ECodeUsage},
		{name: "missing flag value",
			argv: []string{"tool", "--output"}, wantCode: argapi.ECodeUsage},
		{name: "bad int value",
			argv: []string{"tool", "--jobs", "lots"}, wantCode: argapi.ECodeFlagValue},
		{name: "bad bool value",
			argv: []string{"tool", "--verbose=perhaps"}, wantCode: argapi.ECodeFlagValue},
		{name: "required flag missing",
			argv: []string{"tool", "build"}, wantCode: argapi.ECodeMissing},
		{name: "unknown help topic",
			argv: []string{"tool", "help", "nonesuch"}, wantCode: argapi.ECodeUsage},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(flagTestTree(), tt.argv)
			qt.Assert(t, err, qt.IsNotNil)
			qt.Assert(t, serum.Code(err), qt.Equals, tt.wantCode)
		})
	}
}

func TestEmptyArgv(t *testing.T) {
	_, err := Parse(flagTestTree(), nil)
	qt.Assert(t, serum.Code(err), qt.Equals, argapi.ECodeUsage)
}

func TestMalformedTreeIsReported(t *testing.T) {
	tree := &argapi.Command{Name: "tool", Subcommands: []*argapi.Command{{Name: "a"}, {Name: "a"}}}
	_, err := Parse(tree, []string{"tool"})
	qt.Assert(t, serum.Code(err), qt.Equals, argapi.ECodeTreeInvalid)
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("TOOL_FROM_ENV", "from-the-env")
	m, err := Parse(flagTestTree(), []string{"tool"})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, m.String("from-env"), qt.Equals, "from-the-env")
	qt.Assert(t, m.IsSet("from-env"), qt.IsTrue)
}

func TestEnvLosesToCommandLine(t *testing.T) {
	t.Setenv("TOOL_FROM_ENV", "from-the-env")
	m, err := Parse(flagTestTree(), []string{"tool", "--from-env", "explicit"})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, m.String("from-env"), qt.Equals, "explicit")
}

func TestRequiredFlagSatisfied(t *testing.T) {
	m, err := Parse(flagTestTree(), []string{"tool", "build", "--target", "all"})
	qt.Assert(t, err, qt.IsNil)
	_, sub, ok := m.Subcommand()
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, sub.String("target"), qt.Equals, "all")
}

func TestVersionFlag(t *testing.T) {
	_, err := Parse(flagTestTree(), []string{"tool", "--version"})
	qt.Assert(t, serum.Code(err), qt.Equals, argapi.CodeVersion)
	qt.Assert(t, argapi.IsVersion(err), qt.IsTrue)
}

func TestHelpFlagAtEndOfInput(t *testing.T) {
	_, err := Parse(flagTestTree(), []string{"tool", "-h"})
	path, long, ok := argapi.HelpRequest(err)
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, path, qt.DeepEquals, []string{"tool"})
	qt.Assert(t, long, qt.IsFalse)

	_, err = Parse(flagTestTree(), []string{"tool", "build", "--help"})
	path, long, ok = argapi.HelpRequest(err)
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, path, qt.DeepEquals, []string{"tool", "build"})
	qt.Assert(t, long, qt.IsTrue)
}

// Help wins over other complaints: the required flag on build never gets a
// chance to object.
func TestHelpBeatsRequiredFlagCheck(t *testing.T) {
	_, err := Parse(flagTestTree(), []string{"tool", "build", "-h"})
	qt.Assert(t, serum.Code(err), qt.Equals, argapi.CodeHelp)
}

// A user-defined help subcommand shadows the built-in one.
func TestUserDefinedHelpCommandWins(t *testing.T) {
	tree := &argapi.Command{
		Name: "tool",
		Subcommands: []*argapi.Command{
			{Name: "help"},
			{Name: "other"},
		},
	}
	m, err := Parse(tree, []string{"tool", "help"})
	qt.Assert(t, err, qt.IsNil)
	name, _, ok := m.Subcommand()
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, name, qt.Equals, "help")
}

func TestPositionalsAfterSubcommand(t *testing.T) {
	m, err := Parse(flagTestTree(), []string{"tool", "build", "--target", "all", "src/a", "src/b"})
	qt.Assert(t, err, qt.IsNil)
	_, sub, _ := m.Subcommand()
	qt.Assert(t, sub.Args(), qt.DeepEquals, []string{"src/a", "src/b"})
}

// Once a positional has been seen, later tokens never match subcommands.
func TestNoSubcommandAfterPositional(t *testing.T) {
	m, err := Parse(flagTestTree(), []string{"tool", "stray", "build"})
	qt.Assert(t, err, qt.IsNil)
	_, _, ok := m.Subcommand()
	qt.Assert(t, ok, qt.IsFalse)
	qt.Assert(t, m.Args(), qt.DeepEquals, []string{"stray", "build"})
}
