package checkedcmd

import (
	"fmt"
	"reflect"
	"slices"
)

// Set is an ordered collection of specs keyed by type. Each spec type appears at most once, which
// is what makes retrieval by type with [Get] and [Lookup] unambiguous.
//
// The order of the set is the declaration order: it decides how positional arguments are matched
// and nothing else.
type Set struct {
	specs []Spec
}

// NewSet returns a set holding specs in the given order. It fails with [ErrConfig] when a spec is
// nil or when two specs have the same type.
func NewSet(specs ...Spec) (*Set, error) {
	seen := make(map[reflect.Type]int, len(specs))
	for i, sp := range specs {
		if sp == nil || reflect.ValueOf(sp).IsNil() {
			return nil, fmt.Errorf("%w: spec %d is nil", ErrConfig, i)
		}
		t := reflect.TypeOf(sp)
		if j, ok := seen[t]; ok {
			return nil, fmt.Errorf("%w: specs %d and %d have the same type %s", ErrConfig, j, i, t)
		}
		seen[t] = i
	}
	return &Set{specs: slices.Clone(specs)}, nil
}

// MustSet is like [NewSet] but panics on error. It is intended for package-level declarations.
func MustSet(specs ...Spec) *Set {
	set, err := NewSet(specs...)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of specs in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.specs)
}

// Specs returns the specs in declaration order.
func (s *Set) Specs() []Spec {
	if s == nil {
		return nil
	}
	return slices.Clone(s.specs)
}

// clone returns a set holding copies of every spec, so parsing never writes to the caller's
// specs.
func (s *Set) clone() *Set {
	out := &Set{specs: make([]Spec, len(s.specs))}
	for i, sp := range s.specs {
		out.specs[i] = sp.clone()
	}
	return out
}

// Lookup returns the spec of type S held by set.
//
//	table, ok := checkedcmd.Lookup[*CmdTableName](set)
func Lookup[S Spec](set *Set) (S, bool) {
	var zero S
	if set == nil {
		return zero, false
	}
	for _, sp := range set.specs {
		if s, ok := sp.(S); ok {
			return s, true
		}
	}
	return zero, false
}

// Get is like [Lookup] but panics when set holds no spec of type S. Asking for a type that was
// never declared is a programming error.
func Get[S Spec](set *Set) S {
	s, ok := Lookup[S](set)
	if !ok {
		panic(&internalError{err: fmt.Errorf("spec %s not in set", reflect.TypeOf(&s).Elem())})
	}
	return s
}
