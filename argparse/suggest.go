package argparse

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/agext/levenshtein"
)

func (p *Parser) unknownFlagError(token string) error {
	name, _ := trimFlag(token)
	var known []string
	for _, it := range p.flags {
		known = append(known, it.names...)
	}
	suggestions := findSimilar(name, known, 3)
	if len(suggestions) > 0 {
		for i, s := range suggestions {
			suggestions[i] = formatFlagName(s)
		}
		return fmt.Errorf("%w %q. Did you mean one of these?\n\t%s",
			ErrUnknownFlag,
			token,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("%w %q", ErrUnknownFlag, token)
}

// findSimilar returns up to limit candidates that are a case-insensitive prefix match for target or
// within a small edit distance of it, closest first.
func findSimilar(target string, candidates []string, limit int) []string {
	if target == "" || limit <= 0 {
		return nil
	}
	type match struct {
		name string
		dist int
	}
	lower := strings.ToLower(target)
	var matches []match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		dist := levenshtein.Distance(lower, lc, nil)
		// Short names only match on case; longer names allow roughly one typo per three
		// characters, never fewer than two.
		threshold := 0
		if len(lc) > 2 {
			threshold = max(2, len(lc)/3)
		}
		if dist <= threshold || (len(lower) > 1 && strings.HasPrefix(lc, lower)) {
			matches = append(matches, match{name: c, dist: dist})
		}
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	var out []string
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.name)
	}
	return out
}
