package checkedcmd

import (
	"fmt"

	"github.com/pressly/checkedcmd/argparse"
)

// bind composes one parser from the set by attaching every spec in order, first to last.
func bind(name string, set *Set) (*argparse.Parser, error) {
	p := argparse.New(name)
	for _, sp := range set.specs {
		if err := sp.bind(p); err != nil {
			return nil, fmt.Errorf("%s: %w", sp.label(), err)
		}
	}
	return p, nil
}

// validate runs every spec's validator and returns the labels of the ones that reject their
// value.
func validate(set *Set) []string {
	var invalid []string
	for _, sp := range set.specs {
		if sp.IsInvalid() {
			invalid = append(invalid, sp.label())
		}
	}
	return invalid
}
