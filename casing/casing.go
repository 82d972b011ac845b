package casing

// Classify classifies s with the Default registry.
func Classify(s string) (Style, error) {
	return Default().Classify(s)
}

// Parse classifies and splits s with the Default registry.
func Parse(s string) (Identifier, error) {
	return Default().Parse(s)
}

// Split splits s, which must conform to style, with the Default registry.
func Split(s string, style Style) []string {
	return Default().Split(s, style)
}

// Produce renders parts in style with the Default registry.
// It panics if parts is empty.
func Produce(parts []string, style Style) string {
	return Default().Produce(parts, style)
}

// Permutations renders parts in every style but Space with the Default
// registry.
func Permutations(parts []string) []string {
	return Default().Permutations(parts)
}

// Pattern renders the find-all-styles pattern for parts with the Default
// registry.
func Pattern(parts []string, dialect Dialect) string {
	return Default().Pattern(parts, dialect)
}

// FindRegex returns the Vim find-all-styles pattern for identifier, or
// identifier itself when it does not classify.
func FindRegex(identifier string) string {
	return Default().FindRegex(identifier)
}

// Replace re-renders replacement in the style of from, falling back to
// replacement unchanged.
func Replace(from, replacement string) string {
	return Default().Replace(from, replacement)
}
