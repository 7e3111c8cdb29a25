package checkedcmd

import (
	"github.com/pressly/checkedcmd/argparse"
)

// named is the metadata shared by named options.
type named struct {
	hint  Hint
	short ShortName
	long  LongName
	desc  Description
}

func (n named) Hint() Hint               { return n.hint }
func (n named) ShortName() ShortName     { return n.short }
func (n named) LongName() LongName       { return n.long }
func (n named) Description() Description { return n.desc }

// Param is a required named option. Parsing fails structurally when it is absent, and the
// validation pass fails when check rejects the parsed value. A nil check accepts every value.
type Param[T Scalar, Tag any] struct {
	named
	check func(Value[T, Tag]) bool
	slot  slot[T, Tag]
}

// NewParam returns a required named option. T and Tag are inferred from check when it is a
// declared function:
//
//	func tableNameOK(n TableName) bool { return len(n.Get()) < 5 }
//	p := checkedcmd.NewParam("name", "-T", "--TableName", "target table", tableNameOK)
func NewParam[T Scalar, Tag any](hint Hint, short ShortName, long LongName, desc Description, check func(Value[T, Tag]) bool) *Param[T, Tag] {
	return &Param[T, Tag]{
		named: named{hint: hint, short: short, long: long, desc: desc},
		check: check,
	}
}

// Value returns the parsed value. Single-character payloads are returned resolved, without their
// quotes.
func (p *Param[T, Tag]) Value() Value[T, Tag] {
	return p.slot.val
}

func (p *Param[T, Tag]) IsInvalid() bool {
	return p.slot.invalid(p.check, true)
}

func (p *Param[T, Tag]) label() string { return flagLabel(p.short, p.long) }
func (p *Param[T, Tag]) clone() Spec   { c := *p; c.slot = slot[T, Tag]{}; return &c }
func (p *Param[T, Tag]) bind(ap *argparse.Parser) error {
	return ap.Option(&p.slot, string(p.hint), names(p.short, p.long), string(p.desc), true)
}

// OptionalParam is a named option that may be omitted. Absence is always valid; a supplied value
// is valid when check accepts it.
type OptionalParam[T Scalar, Tag any] struct {
	named
	check func(Value[T, Tag]) bool
	slot  slot[T, Tag]
}

// NewOptionalParam returns an optional named option. See [NewParam].
func NewOptionalParam[T Scalar, Tag any](hint Hint, short ShortName, long LongName, desc Description, check func(Value[T, Tag]) bool) *OptionalParam[T, Tag] {
	return &OptionalParam[T, Tag]{
		named: named{hint: hint, short: short, long: long, desc: desc},
		check: check,
	}
}

// ValueOr returns the parsed value, or fallback when the option was not supplied.
func (p *OptionalParam[T, Tag]) ValueOr(fallback Value[T, Tag]) Value[T, Tag] {
	if v, ok := p.Lookup(); ok {
		return v
	}
	return fallback
}

// Lookup returns the parsed value and whether a well-formed value was supplied.
func (p *OptionalParam[T, Tag]) Lookup() (Value[T, Tag], bool) {
	if !p.slot.ok() {
		return Value[T, Tag]{}, false
	}
	return p.slot.val, true
}

func (p *OptionalParam[T, Tag]) IsInvalid() bool {
	return p.slot.invalid(p.check, false)
}

func (p *OptionalParam[T, Tag]) label() string { return flagLabel(p.short, p.long) }
func (p *OptionalParam[T, Tag]) clone() Spec   { c := *p; c.slot = slot[T, Tag]{}; return &c }
func (p *OptionalParam[T, Tag]) bind(ap *argparse.Parser) error {
	return ap.Option(&p.slot, string(p.hint), names(p.short, p.long), string(p.desc), false)
}
