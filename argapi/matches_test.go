package argapi

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func testMatchCmd() *Command {
	return &Command{
		Name: "root",
		Flags: []Flag{
			&BoolFlag{Name: "verbose", Aliases: []string{"v"}},
			&StringFlag{Name: "name", Value: "world"},
			&IntFlag{Name: "repeat", Value: 1},
			&StringSliceFlag{Name: "tag"},
		},
	}
}

func TestMatchesDefaults(t *testing.T) {
	m := NewMatches(testMatchCmd(), []string{"root"})
	qt.Assert(t, m.Bool("verbose"), qt.IsFalse)
	qt.Assert(t, m.String("name"), qt.Equals, "world")
	qt.Assert(t, m.Int("repeat"), qt.Equals, 1)
	qt.Assert(t, m.StringSlice("tag"), qt.IsNil)
	qt.Assert(t, m.IsSet("name"), qt.IsFalse)
}

func TestMatchesAliasCanonicalization(t *testing.T) {
	m := NewMatches(testMatchCmd(), []string{"root"})
	m.SetFlag("verbose", true)
	// Reading through the alias finds the same value.
	qt.Assert(t, m.Bool("v"), qt.IsTrue)
	qt.Assert(t, m.IsSet("v"), qt.IsTrue)
}

func TestMatchesSliceAccumulation(t *testing.T) {
	m := NewMatches(testMatchCmd(), []string{"root"})
	m.AppendFlag("tag", "a")
	m.AppendFlag("tag", "b")
	qt.Assert(t, m.StringSlice("tag"), qt.DeepEquals, []string{"a", "b"})
}

func TestMatchesNesting(t *testing.T) {
	root := testMatchCmd()
	subCmd := &Command{Name: "sub"}
	m := NewMatches(root, []string{"root"})
	sub := NewMatches(subCmd, []string{"root", "sub"})
	sub.AddArg("x")
	m.SetSubcommand(sub)

	name, got, ok := m.Subcommand()
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, name, qt.Equals, "sub")
	qt.Assert(t, got, qt.Equals, sub)
	qt.Assert(t, m.Terminal(), qt.Equals, sub)
	qt.Assert(t, sub.Args(), qt.DeepEquals, []string{"x"})
	qt.Assert(t, sub.Path(), qt.DeepEquals, []string{"root", "sub"})

	_, _, ok = sub.Subcommand()
	qt.Assert(t, ok, qt.IsFalse)
	qt.Assert(t, sub.Terminal(), qt.Equals, sub)
}
