package checkedcmd

import (
	"github.com/pressly/checkedcmd/argparse"
)

// Arg is a required positional argument. Positional arguments are matched in the order they
// appear in the [Set].
type Arg[T Scalar, Tag any] struct {
	hint  Hint
	desc  Description
	check func(Value[T, Tag]) bool
	slot  slot[T, Tag]
}

// NewArg returns a required positional argument. A nil check accepts every value.
func NewArg[T Scalar, Tag any](hint Hint, desc Description, check func(Value[T, Tag]) bool) *Arg[T, Tag] {
	return &Arg[T, Tag]{hint: hint, desc: desc, check: check}
}

// Value returns the parsed value.
func (a *Arg[T, Tag]) Value() Value[T, Tag] {
	return a.slot.val
}

func (a *Arg[T, Tag]) Hint() Hint               { return a.hint }
func (a *Arg[T, Tag]) Description() Description { return a.desc }
func (a *Arg[T, Tag]) IsInvalid() bool          { return a.slot.invalid(a.check, true) }
func (a *Arg[T, Tag]) label() string            { return argLabel(a.hint) }
func (a *Arg[T, Tag]) clone() Spec              { c := *a; c.slot = slot[T, Tag]{}; return &c }
func (a *Arg[T, Tag]) bind(p *argparse.Parser) error {
	return p.Positional(&a.slot, string(a.hint), string(a.desc), true)
}

// OptionalArg is a positional argument that may be omitted.
type OptionalArg[T Scalar, Tag any] struct {
	hint  Hint
	desc  Description
	check func(Value[T, Tag]) bool
	slot  slot[T, Tag]
}

// NewOptionalArg returns an optional positional argument. A nil check accepts every value.
func NewOptionalArg[T Scalar, Tag any](hint Hint, desc Description, check func(Value[T, Tag]) bool) *OptionalArg[T, Tag] {
	return &OptionalArg[T, Tag]{hint: hint, desc: desc, check: check}
}

// ValueOr returns the parsed value, or fallback when the argument was not supplied.
func (a *OptionalArg[T, Tag]) ValueOr(fallback Value[T, Tag]) Value[T, Tag] {
	if v, ok := a.Lookup(); ok {
		return v
	}
	return fallback
}

// Lookup returns the parsed value and whether a well-formed value was supplied.
func (a *OptionalArg[T, Tag]) Lookup() (Value[T, Tag], bool) {
	if !a.slot.ok() {
		return Value[T, Tag]{}, false
	}
	return a.slot.val, true
}

func (a *OptionalArg[T, Tag]) Hint() Hint               { return a.hint }
func (a *OptionalArg[T, Tag]) Description() Description { return a.desc }
func (a *OptionalArg[T, Tag]) IsInvalid() bool          { return a.slot.invalid(a.check, false) }
func (a *OptionalArg[T, Tag]) label() string            { return argLabel(a.hint) }
func (a *OptionalArg[T, Tag]) clone() Spec              { c := *a; c.slot = slot[T, Tag]{}; return &c }
func (a *OptionalArg[T, Tag]) bind(p *argparse.Parser) error {
	return p.Positional(&a.slot, string(a.hint), string(a.desc), false)
}

func argLabel(hint Hint) string {
	if hint == "" {
		return "<arg>"
	}
	return "<" + string(hint) + ">"
}
