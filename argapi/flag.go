package argapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/serum-errors/go-serum"
)

// Flag is the interface all flag definitions meet.
//
// The parser drives flags entirely through this interface (plus a type
// assertion for slice accumulation); the help generator uses the Get*
// methods for doc generation.
type Flag interface {
	// Names returns the primary name first, then any aliases.
	// Single-character names are matched as short flags ("-x"),
	// longer ones as long flags ("--xyz").
	Names() []string

	// TakesValue reports whether the flag consumes a value token.
	// Flags that don't (bools) may still be given one with "--flag=value".
	TakesValue() bool

	// ParseValue converts a raw command line token into this flag's value.
	//
	// Errors:
	//
	//   - argot-error-flag-value -- when the token cannot be parsed
	ParseValue(raw string) (interface{}, error)

	// DefaultValue is what a Matches accessor reports when the flag
	// never appeared (and no env var supplied it).
	DefaultValue() interface{}

	GetUsage() string
	GetEnvVars() []string
	GetDefaultText() string
	IsRequired() bool
	IsHidden() bool
}

// BoolFlag is a flag with no value token; presence means true.
type BoolFlag struct {
	Name     string
	Aliases  []string
	Usage    string
	EnvVars  []string
	Value    bool // default
	Required bool
	Hidden   bool
}

func (f *BoolFlag) Names() []string    { return append([]string{f.Name}, f.Aliases...) }
func (f *BoolFlag) TakesValue() bool   { return false }
func (f *BoolFlag) GetUsage() string   { return f.Usage }
func (f *BoolFlag) GetEnvVars() []string { return f.EnvVars }
func (f *BoolFlag) IsRequired() bool   { return f.Required }
func (f *BoolFlag) IsHidden() bool     { return f.Hidden }
func (f *BoolFlag) DefaultValue() interface{} { return f.Value }
func (f *BoolFlag) GetDefaultText() string {
	if f.Value {
		return "true"
	}
	return "" // a false default on a bool is not worth a hint.
}
func (f *BoolFlag) ParseValue(raw string) (interface{}, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errFlagValue(f.Name, raw, "expected a boolean")
	}
	return v, nil
}

// StringFlag is a flag carrying one string value.
type StringFlag struct {
	Name     string
	Aliases  []string
	Usage    string
	EnvVars  []string
	Value    string // default
	Required bool
	Hidden   bool
}

func (f *StringFlag) Names() []string    { return append([]string{f.Name}, f.Aliases...) }
func (f *StringFlag) TakesValue() bool   { return true }
func (f *StringFlag) GetUsage() string   { return f.Usage }
func (f *StringFlag) GetEnvVars() []string { return f.EnvVars }
func (f *StringFlag) IsRequired() bool   { return f.Required }
func (f *StringFlag) IsHidden() bool     { return f.Hidden }
func (f *StringFlag) DefaultValue() interface{} { return f.Value }
func (f *StringFlag) GetDefaultText() string { return f.Value }
func (f *StringFlag) ParseValue(raw string) (interface{}, error) {
	return raw, nil
}

// IntFlag is a flag carrying one integer value.
type IntFlag struct {
	Name     string
	Aliases  []string
	Usage    string
	EnvVars  []string
	Value    int // default
	Required bool
	Hidden   bool
}

func (f *IntFlag) Names() []string    { return append([]string{f.Name}, f.Aliases...) }
func (f *IntFlag) TakesValue() bool   { return true }
func (f *IntFlag) GetUsage() string   { return f.Usage }
func (f *IntFlag) GetEnvVars() []string { return f.EnvVars }
func (f *IntFlag) IsRequired() bool   { return f.Required }
func (f *IntFlag) IsHidden() bool     { return f.Hidden }
func (f *IntFlag) DefaultValue() interface{} { return f.Value }
func (f *IntFlag) GetDefaultText() string {
	if f.Value == 0 {
		return ""
	}
	return strconv.Itoa(f.Value)
}
func (f *IntFlag) ParseValue(raw string) (interface{}, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errFlagValue(f.Name, raw, "expected an integer")
	}
	return v, nil
}

// StringSliceFlag accumulates one string per occurrence.
type StringSliceFlag struct {
	Name     string
	Aliases  []string
	Usage    string
	EnvVars  []string
	Required bool
	Hidden   bool
}

func (f *StringSliceFlag) Names() []string    { return append([]string{f.Name}, f.Aliases...) }
func (f *StringSliceFlag) TakesValue() bool   { return true }
func (f *StringSliceFlag) GetUsage() string   { return f.Usage }
func (f *StringSliceFlag) GetEnvVars() []string { return f.EnvVars }
func (f *StringSliceFlag) IsRequired() bool   { return f.Required }
func (f *StringSliceFlag) IsHidden() bool     { return f.Hidden }
func (f *StringSliceFlag) DefaultValue() interface{} { return []string(nil) }
func (f *StringSliceFlag) GetDefaultText() string { return "" }
func (f *StringSliceFlag) ParseValue(raw string) (interface{}, error) {
	return raw, nil
}

// ParseEnvValue splits an env-var-supplied value for slice flags.
// Commas are the separator, matching what our env hints document.
func (f *StringSliceFlag) ParseEnvValue(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func errFlagValue(flagName, raw, expectation string) error {
	return serum.Error(ECodeFlagValue,
		serum.WithMessageLiteral(fmt.Sprintf("invalid value %q for flag --%s: %s", raw, flagName, expectation)),
		serum.WithDetail("flag", flagName),
		serum.WithDetail("value", raw),
	)
}
