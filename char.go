package checkedcmd

import (
	"errors"
	"fmt"
)

// ErrMalformedChar is returned by [ParseChar] for text that is not one of the accepted
// single-character forms.
var ErrMalformedChar = errors.New("malformed character")

// ParseChar resolves the textual forms of a single character. The first matching rule wins:
//
//	c    a bare character
//	'c'  a character in single quotes
//	"c"  a character in double quotes
//
// Any other text, including the empty string, '' and "ab", fails with [ErrMalformedChar]. A
// newline never counts as a character.
func ParseChar(s string) (Char, error) {
	r := []rune(s)
	switch {
	case len(r) == 1 && r[0] != '\n':
		return Char(r[0]), nil
	case len(r) == 3 && r[0] == '\'' && r[2] == '\'' && r[1] != '\n':
		return Char(r[1]), nil
	case len(r) == 3 && r[0] == '"' && r[2] == '"' && r[1] != '\n':
		return Char(r[1]), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrMalformedChar, s)
}
