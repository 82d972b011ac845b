package casing

import (
	"strings"

	"github.com/erraggy/caseswap/internal/naming"
)

// Permutations renders parts in every style except Space, in priority
// order. Space is left out because identifier searches rarely want raw
// spaces.
func (r *Registry) Permutations(parts []string) []string {
	perms := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.Style == Space {
			continue
		}
		perms = append(perms, rule.Produce(parts))
	}
	return perms
}

// FindRegex returns a Vim pattern matching identifier in every style but
// Space. An identifier that does not classify is returned unchanged.
func (r *Registry) FindRegex(identifier string) string {
	id, err := r.Parse(identifier)
	if err != nil {
		return identifier
	}
	return r.Pattern(id.Parts, DialectVim)
}

// Replace re-renders replacement in the style of from.
//
// The word parts of replacement come from classifying and splitting it, or,
// when it does not classify, from the lowercase phrase fallback. If from
// does not classify, or replacement yields no parts, replacement is returned
// unchanged.
func (r *Registry) Replace(from, replacement string) string {
	style, err := r.Classify(from)
	if err != nil {
		return replacement
	}
	parts, ok := r.ReplacementParts(replacement)
	if !ok {
		return replacement
	}
	return r.Produce(parts, style)
}

// ReplacementParts returns the word parts Replace would render for
// replacement. ok is false when replacement neither classifies nor
// qualifies for the lowercase phrase fallback.
func (r *Registry) ReplacementParts(replacement string) (parts []string, ok bool) {
	if id, err := r.Parse(replacement); err == nil {
		return id.Parts, true
	}
	return lowercasePhraseParts(replacement)
}

// lowercasePhraseParts treats a string of lowercase letters and spaces as
// space-separated words. It is a heuristic for plain text typed as a
// replacement ("another", "two  words") and is kept apart from real
// classification.
func lowercasePhraseParts(s string) ([]string, bool) {
	if !naming.IsLowerPhrase(s) {
		return nil, false
	}
	return strings.Fields(s), true
}
