package argparse

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Usage returns the usage text for every registered item: a usage line followed by the Arguments
// and Flags sections. Flags are sorted by name; arguments keep their registration order.
func (p *Parser) Usage() string {
	var b strings.Builder

	b.WriteString("Usage:\n")
	usage := p.name
	if len(p.flags) > 0 {
		usage += " [flags]"
	}
	for _, it := range p.args {
		if it.required {
			usage += " " + it.display()
		} else {
			usage += " [" + it.display() + "]"
		}
	}
	b.WriteString("  " + usage + "\n")

	if len(p.args) > 0 {
		b.WriteString("\nArguments:\n")
		rows := make([]usageRow, 0, len(p.args))
		for _, it := range p.args {
			rows = append(rows, usageRow{name: it.display(), usage: describe(it)})
		}
		writeRows(&b, rows)
	}

	if len(p.flags) > 0 {
		sorted := slices.Clone(p.flags)
		slices.SortFunc(sorted, func(a, b *item) int {
			return cmp.Compare(strings.ToLower(a.names[0]), strings.ToLower(b.names[0]))
		})
		rows := make([]usageRow, 0, len(sorted))
		for _, it := range sorted {
			name := it.display()
			if it.kind == kindOption && it.hint != "" {
				name += " <" + it.hint + ">"
			}
			rows = append(rows, usageRow{name: name, usage: describe(it)})
		}
		b.WriteString("\nFlags:\n")
		writeRows(&b, rows)
	}
	return strings.TrimRight(b.String(), "\n")
}

type usageRow struct {
	name  string
	usage string
}

func describe(it *item) string {
	if !it.required {
		return it.usage
	}
	if it.usage == "" {
		return "(required)"
	}
	return it.usage + " (required)"
}

// writeRows writes two aligned columns, wrapping descriptions so lines stay within 80 columns.
func writeRows(b *strings.Builder, rows []usageRow) {
	maxLen := 0
	for _, r := range rows {
		maxLen = max(maxLen, len(r.name))
	}
	nameWidth := maxLen + 4
	wrapWidth := 80 - nameWidth - 2

	for _, r := range rows {
		if r.usage == "" {
			fmt.Fprintf(b, "  %s\n", r.name)
			continue
		}
		lines := wrap(r.usage, wrapWidth)
		padding := strings.Repeat(" ", maxLen-len(r.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", r.name, padding, lines[0])
		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

func wrap(s string, width int) []string {
	width = max(width, 20)
	return strings.Split(wordwrap.WrapString(strings.TrimSpace(s), uint(width)), "\n")
}
