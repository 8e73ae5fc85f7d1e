// Package logging is the small tagged-line logger the run package threads
// through context for command handlers.
//
// Normal program output goes to Out (stdout); Info and Debug are operator
// chatter and go to Err (stderr), colored by tag.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Logger struct {
	out     io.Writer
	err     io.Writer
	verbose bool
}

func DefaultLogger() Logger {
	return Logger{
		out:     os.Stdout,
		err:     os.Stderr,
		verbose: false,
	}
}

func NewLogger(out, err io.Writer, verbose bool) Logger {
	return Logger{
		out:     out,
		err:     err,
		verbose: verbose,
	}
}

type ctxKey struct{}

// WithLogger stores a logger in the context for Ctx to find.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Ctx returns the logger carried by the context, or the default logger.
func Ctx(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return DefaultLogger()
}

// Out is for the program's actual output.
func (l Logger) Out(f string, args ...interface{}) {
	fmt.Fprintf(l.out, f+"\n", args...)
}

func (l Logger) OutRaw(s string) {
	fmt.Fprintf(l.out, "%s", s)
}

func (l Logger) Info(tag string, f string, args ...interface{}) {
	printTagged(l.err, color.New(color.FgHiGreen), tag, f, args...)
}

func (l Logger) Debug(tag string, f string, args ...interface{}) {
	if l.verbose {
		printTagged(l.err, color.New(color.FgGreen), tag, f, args...)
	}
}

func printTagged(w io.Writer, tagColor *color.Color, tag, f string, args ...interface{}) {
	str := fmt.Sprintf(f, args...)
	for _, line := range strings.Split(str, "\n") {
		fmt.Fprintf(w, "%s  %s\n",
			tagColor.Sprint(tag),
			color.WhiteString(line))
	}
}
