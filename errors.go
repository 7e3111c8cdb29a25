package checkedcmd

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

var (
	// ErrStructural reports a command line that could not be matched: a required option or
	// argument is missing, a token is unknown, or a value could not be converted.
	ErrStructural = errors.New("structural parse failure")
	// ErrValidation reports a command line that was matched but rejected by a validator.
	ErrValidation = errors.New("validation failure")
	// ErrConfig reports a malformed argument set, such as two specs of the same type or two
	// options sharing a name. It is a programming error, not a user error.
	ErrConfig = errors.New("invalid argument set")
	// ErrHelp matches any [ParseError] for a command line that supplied -h or --help. It is
	// [flag.ErrHelp], so callers already checking for that keep working.
	ErrHelp = flag.ErrHelp
)

// ParseError describes why a command line was rejected. Use [errors.Is] with [ErrStructural],
// [ErrValidation], [ErrConfig] or [ErrHelp] to classify it.
type ParseError struct {
	// Kind is one of ErrStructural, ErrValidation or ErrConfig.
	Kind error
	// Specs lists the specs that failed validation, e.g. "-T/--TableName" or "<inputfile>".
	Specs []string
	// HelpRequested is true when -h or --help was supplied and the set contains a [Help] spec.
	HelpRequested bool
	// Usage is the generated usage text. It is set when HelpRequested is true.
	Usage string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if len(e.Specs) > 0 {
		fmt.Fprintf(&b, ": rejected %s", strings.Join(e.Specs, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.HelpRequested {
		errs = append(errs, ErrHelp)
	}
	return errs
}

// internalError marks panics raised for programming mistakes, such as retrieving a spec type that
// is not part of the set. [Run] returns these unchanged instead of decorating them as panics.
type internalError struct {
	err error
}

func (e *internalError) Error() string {
	return "checkedcmd: " + e.err.Error()
}

func (e *internalError) Unwrap() error {
	return e.err
}
