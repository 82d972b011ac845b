package casing

import (
	"strings"

	"github.com/erraggy/caseswap/internal/naming"
)

const emptyPartsPanic = "casing: produce called with empty word parts"

// mustHaveParts panics when parts is empty. Word parts come from a splitter
// and are never empty, so an empty slice is a caller bug.
func mustHaveParts(parts []string) {
	if len(parts) == 0 {
		panic(emptyPartsPanic)
	}
}

// produceJoined returns a producer that maps every part through fn and
// joins the results with sep.
func produceJoined(sep string, fn func(string) string) func([]string) string {
	return func(parts []string) string {
		mustHaveParts(parts)
		rendered := make([]string, len(parts))
		for i, part := range parts {
			rendered[i] = fn(part)
		}
		return strings.Join(rendered, sep)
	}
}

// produceCamel leaves the first part as is and capitalizes the rest.
func produceCamel(parts []string) string {
	mustHaveParts(parts)
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		b.WriteString(naming.CapitalizeFirst(part))
	}
	return b.String()
}

func unchanged(s string) string { return s }
