package casing

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect selects the regex syntax Pattern renders.
type Dialect int

const (
	// DialectVim renders \v\C(...) with the variants verbatim: very magic,
	// case sensitive.
	DialectVim Dialect = iota
	// DialectRE2 renders (?:...) with every variant quoted for Go's regexp
	// package, which is case sensitive by default.
	DialectRE2
)

// vimPrefix marks a Vim pattern as very magic (\v) and case sensitive (\C).
const vimPrefix = `\v\C`

// String returns the dialect name accepted by ParseDialect.
func (d Dialect) String() string {
	switch d {
	case DialectVim:
		return "vim"
	case DialectRE2:
		return "re2"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// ParseDialect returns the dialect named name ("vim" or "re2"). An empty
// name selects DialectVim.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "vim":
		return DialectVim, nil
	case "re2", "go":
		return DialectRE2, nil
	default:
		return DialectVim, fmt.Errorf("casing: unknown pattern dialect %q; valid dialects: vim, re2", name)
	}
}

// Pattern joins the permutations of parts into a single alternation in the
// given dialect. It panics if parts is empty.
func (r *Registry) Pattern(parts []string, dialect Dialect) string {
	perms := r.Permutations(parts)
	if dialect == DialectRE2 {
		for i, p := range perms {
			perms[i] = regexp.QuoteMeta(p)
		}
		return "(?:" + strings.Join(perms, "|") + ")"
	}
	return vimPrefix + "(" + strings.Join(perms, "|") + ")"
}
