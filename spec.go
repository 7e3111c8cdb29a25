package checkedcmd

import (
	"strings"

	"github.com/pressly/checkedcmd/argparse"
)

// Metadata carried by specifications. Each is its own string type so a description can never be
// passed where a name is expected.
type (
	// ShortName is the single-dash name of a switch or option, e.g. "-T".
	ShortName string
	// LongName is the double-dash name of a switch or option, e.g. "--TableName".
	LongName string
	// Description is the human-readable help text of a specification.
	Description string
	// Hint names the expected value in usage text, e.g. "filename".
	Hint string
)

// Spec is one declared command-line input: a [Flag], [Help], [Param], [OptionalParam], [Arg] or
// [OptionalArg]. The set of implementations is closed.
type Spec interface {
	// IsInvalid reports whether the parsed value fails the spec's validator. Flags are never
	// invalid; optional specs are never invalid when absent.
	IsInvalid() bool

	bind(p *argparse.Parser) error
	label() string
	clone() Spec
}

// Flag is a boolean switch. It always has a value: true when present on the command line, false
// otherwise.
type Flag[Tag any] struct {
	short ShortName
	long  LongName
	desc  Description
	val   bool
}

// NewFlag returns a switch named by short and long. Either name may be empty, not both.
func NewFlag[Tag any](short ShortName, long LongName, desc Description) *Flag[Tag] {
	return &Flag[Tag]{short: short, long: long, desc: desc}
}

// Value returns the parsed switch state.
func (f *Flag[Tag]) Value() Value[bool, Tag] {
	return Value[bool, Tag]{v: f.val}
}

func (f *Flag[Tag]) ShortName() ShortName     { return f.short }
func (f *Flag[Tag]) LongName() LongName       { return f.long }
func (f *Flag[Tag]) Description() Description { return f.desc }
func (f *Flag[Tag]) IsInvalid() bool          { return false }
func (f *Flag[Tag]) label() string            { return flagLabel(f.short, f.long) }
func (f *Flag[Tag]) clone() Spec              { c := *f; c.val = false; return &c }
func (f *Flag[Tag]) bind(p *argparse.Parser) error {
	return p.Switch(&f.val, names(f.short, f.long), string(f.desc))
}

const (
	helpShort ShortName = "-h"
	helpLong  LongName  = "--help"
	helpUsage           = "display this help"
)

type helpFlag struct{}

// HelpRequested is the value type of the [Help] switch.
type HelpRequested = Value[bool, helpFlag]

// Help is the reserved -h/--help switch. When it is supplied and parsing succeeds, the generated
// usage text is stored as its description.
type Help struct {
	desc Description
	val  bool
}

// NewHelp returns the reserved help switch.
func NewHelp() *Help {
	return &Help{}
}

// Value reports whether -h or --help was supplied.
func (h *Help) Value() Value[bool, helpFlag] {
	return Value[bool, helpFlag]{v: h.val}
}

func (h *Help) ShortName() ShortName { return helpShort }
func (h *Help) LongName() LongName   { return helpLong }

// Description returns the captured usage text, or the empty string before capture.
func (h *Help) Description() Description {
	return h.desc
}

// SetDescription replaces the stored description.
func (h *Help) SetDescription(desc Description) {
	h.desc = desc
}

func (h *Help) IsInvalid() bool { return false }
func (h *Help) label() string   { return flagLabel(helpShort, helpLong) }

// clone keeps a caller-set description but drops usage text captured by an earlier parse.
func (h *Help) clone() Spec {
	if h.val {
		return &Help{}
	}
	return &Help{desc: h.desc}
}

func (h *Help) bind(p *argparse.Parser) error {
	usage := string(h.desc)
	if usage == "" {
		usage = helpUsage
	}
	return p.Switch(&h.val, names(helpShort, helpLong), usage)
}

func names(short ShortName, long LongName) []string {
	return []string{string(short), string(long)}
}

func flagLabel(short ShortName, long LongName) string {
	var parts []string
	for _, n := range names(short, long) {
		if n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "/")
}
