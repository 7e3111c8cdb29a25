// Package argparse matches raw command-line tokens against registered switches, named options and
// positional arguments. It is a thin layer over [flag.FlagSet] that adds short and long aliases,
// required options, positional arguments and generated usage text.
//
// Values are untyped at this level: every destination is a [flag.Value] fed the raw token text.
// A Parser is single-use; build a new one for every command line.
//
//	p := argparse.New("csvconv")
//	_ = p.Switch(&header, []string{"-H", "--HasHeadLine"}, "first row is a headline")
//	_ = p.Option(&limit, "1..65535", []string{"-l", "--LineLimit"}, "row limit", true)
//	_ = p.Positional(&input, "inputfile", "csv file to read", true)
//	if err := p.Parse(os.Args[1:]); err != nil {
//	    ...
//	}
package argparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mfridman/xflag"
)

var (
	// ErrUnknownFlag is returned when a token looks like a flag but no switch or option with that
	// name was registered.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrInvalidValue is returned when a token cannot be converted by its destination, or when an
	// option is missing its value.
	ErrInvalidValue = errors.New("invalid value")
	// ErrMissing is returned when a required option or positional argument is absent.
	ErrMissing = errors.New("missing required input")
	// ErrUnexpectedArg is returned when there are more positional tokens than registered
	// positional arguments.
	ErrUnexpectedArg = errors.New("unexpected argument")
)

type kind int

const (
	kindSwitch kind = iota
	kindOption
	kindPositional
)

type item struct {
	kind     kind
	names    []string // without leading dashes
	hint     string
	usage    string
	required bool
	value    flag.Value
	set      bool
}

// display returns the user-facing name of the item, e.g. "-T, --TableName" or "<inputfile>".
func (it *item) display() string {
	if it.kind == kindPositional {
		return "<" + it.hint + ">"
	}
	dashed := make([]string, 0, len(it.names))
	for _, n := range it.names {
		dashed = append(dashed, formatFlagName(n))
	}
	return strings.Join(dashed, ", ")
}

// Parser is a composed description of every switch, option and positional argument a command line
// accepts.
type Parser struct {
	name   string
	fs     *flag.FlagSet
	flags  []*item
	args   []*item
	byName map[string]*item
	parsed bool
}

// New returns an empty Parser. The name is the program name shown in usage text.
func New(name string) *Parser {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { /* suppress default usage */ }
	return &Parser{
		name:   name,
		fs:     fs,
		byName: make(map[string]*item),
	}
}

// Name returns the program name the parser was created with.
func (p *Parser) Name() string {
	return p.name
}

// Switch registers a boolean switch under every name in names. Names may be given with or without
// leading dashes; empty names are ignored. The switch sets *dst to true when present.
func (p *Parser) Switch(dst *bool, names []string, usage string) error {
	if dst == nil {
		return errors.New("switch destination is nil")
	}
	it := &item{kind: kindSwitch, usage: usage}
	if err := p.addNames(it, names); err != nil {
		return err
	}
	for _, n := range it.names {
		p.fs.BoolVar(dst, n, *dst, usage)
	}
	p.flags = append(p.flags, it)
	return nil
}

// Option registers a named option under every name in names. The token following the option (or
// the text after "=") is passed to dst.Set. A required option that is absent fails Parse with
// [ErrMissing].
func (p *Parser) Option(dst flag.Value, hint string, names []string, usage string, required bool) error {
	if dst == nil {
		return errors.New("option destination is nil")
	}
	it := &item{
		kind:     kindOption,
		hint:     hint,
		usage:    usage,
		required: required,
		value:    dst,
	}
	if err := p.addNames(it, names); err != nil {
		return err
	}
	for _, n := range it.names {
		p.fs.Var(dst, n, usage)
	}
	p.flags = append(p.flags, it)
	return nil
}

// Positional registers a positional argument. Positional arguments are matched in registration
// order against the tokens left after all switches and options have been consumed.
func (p *Parser) Positional(dst flag.Value, hint, usage string, required bool) error {
	if dst == nil {
		return errors.New("positional destination is nil")
	}
	if hint == "" {
		hint = fmt.Sprintf("arg%d", len(p.args)+1)
	}
	p.args = append(p.args, &item{
		kind:     kindPositional,
		hint:     hint,
		usage:    usage,
		required: required,
		value:    dst,
	})
	return nil
}

// Parse matches args against every registered item and populates the bound destinations in
// place. args must not include the program name.
func (p *Parser) Parse(args []string) error {
	if p.parsed {
		return errors.New("parser already used")
	}
	p.parsed = true

	end, err := p.walk(args, func(arg, name string) error {
		if p.fs.Lookup(name) == nil {
			return p.unknownFlagError(arg)
		}
		return nil
	})
	if err != nil {
		return err
	}
	// Everything after the "--" terminator is positional.
	var rest []string
	if end < len(args) {
		rest = args[end+1:]
	}
	// Let ParseToEnd handle flags interleaved with positional arguments.
	if err := xflag.ParseToEnd(p.fs, args[:end]); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	p.fs.Visit(func(f *flag.Flag) {
		if it, ok := p.byName[f.Name]; ok {
			it.set = true
		}
	})

	var missing []string
	for _, it := range p.flags {
		if it.required && !it.set {
			missing = append(missing, it.display())
		}
	}
	if len(missing) > 0 {
		msg := "flag"
		if len(missing) > 1 {
			msg += "s"
		}
		return fmt.Errorf("%w: %s %s", ErrMissing, msg, strings.Join(missing, "; "))
	}

	positionals := append(slices.Clone(p.fs.Args()), rest...)
	if len(positionals) > len(p.args) {
		return fmt.Errorf("%w %q", ErrUnexpectedArg, positionals[len(p.args)])
	}
	for i, it := range p.args {
		if i >= len(positionals) {
			if it.required {
				return fmt.Errorf("%w: argument %s", ErrMissing, it.display())
			}
			continue
		}
		if err := it.value.Set(positionals[i]); err != nil {
			return fmt.Errorf("%w %q for argument %s: %v", ErrInvalidValue, positionals[i], it.display(), err)
		}
		it.set = true
	}
	return nil
}

// walk visits the tokens the same way the flag package will, calling fn with every token that
// names a flag and its bare name. Values of non-boolean options are skipped. It returns the index of
// the "--" terminator, or len(args) when there is none.
func (p *Parser) walk(args []string, fn func(arg, name string) error) (int, error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return i, nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		name, hasValue := trimFlag(arg)
		if err := fn(arg, name); err != nil {
			return i, err
		}
		if hasValue {
			continue
		}
		if f := p.fs.Lookup(name); f != nil {
			if _, isBool := f.Value.(interface{ IsBoolFlag() bool }); !isBool {
				i++
			}
		}
	}
	return len(args), nil
}

var validNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func (p *Parser) addNames(it *item, names []string) error {
	for _, raw := range names {
		if raw == "" {
			continue
		}
		name := strings.TrimLeft(raw, "-")
		if !validNameRegex.MatchString(name) {
			return fmt.Errorf("flag %q: name must start with a letter and contain only letters, numbers, dashes (-) or underscores (_)", raw)
		}
		if _, ok := p.byName[name]; ok || slices.Contains(it.names, name) {
			return fmt.Errorf("flag %q: already registered", formatFlagName(name))
		}
		it.names = append(it.names, name)
	}
	if len(it.names) == 0 {
		return errors.New("flag has no name")
	}
	for _, n := range it.names {
		p.byName[n] = it
	}
	return nil
}

// HasFlag reports whether any token before the "--" terminator names one of the given flags. Names
// are given without leading dashes. A token consumed as the value of an option does not count, so
// in "-T -h" only T is named.
func (p *Parser) HasFlag(args []string, names ...string) bool {
	found := false
	_, _ = p.walk(args, func(_, name string) error {
		if slices.Contains(names, name) {
			found = true
		}
		return nil
	})
	return found
}

func trimFlag(arg string) (name string, hasValue bool) {
	name, _, hasValue = strings.Cut(strings.TrimLeft(arg, "-"), "=")
	return name, hasValue
}

func formatFlagName(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
