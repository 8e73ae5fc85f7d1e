package logging

import (
	"bytes"
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestOutGoesToStdout(t *testing.T) {
	var out, err bytes.Buffer
	l := NewLogger(&out, &err, false)
	l.Out("hello %s", "there")
	qt.Assert(t, out.String(), qt.Equals, "hello there\n")
	qt.Assert(t, err.String(), qt.Equals, "")
}

func TestDebugNeedsVerbose(t *testing.T) {
	var out, err bytes.Buffer
	l := NewLogger(&out, &err, false)
	l.Debug("tag", "quiet")
	qt.Assert(t, err.String(), qt.Equals, "")

	l = NewLogger(&out, &err, true)
	l.Debug("tag", "loud")
	qt.Assert(t, err.String(), qt.Contains, "loud")
	qt.Assert(t, err.String(), qt.Contains, "tag")
	qt.Assert(t, out.String(), qt.Equals, "")
}

func TestInfoAlwaysPrints(t *testing.T) {
	var out, err bytes.Buffer
	l := NewLogger(&out, &err, false)
	l.Info("tag", "notable")
	qt.Assert(t, err.String(), qt.Contains, "notable")
}

func TestContextRoundTrip(t *testing.T) {
	var out, err bytes.Buffer
	l := NewLogger(&out, &err, true)
	ctx := WithLogger(context.Background(), l)
	got := Ctx(ctx)
	got.Out("via context")
	qt.Assert(t, out.String(), qt.Equals, "via context\n")
}

func TestCtxFallsBackToDefault(t *testing.T) {
	l := Ctx(context.Background())
	qt.Assert(t, l.verbose, qt.IsFalse)
}
