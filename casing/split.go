package casing

import (
	"strings"

	"github.com/erraggy/caseswap/internal/naming"
)

// splitOn returns a splitter that cuts on sep and leaves case alone.
func splitOn(sep string) func(string) []string {
	return func(s string) []string {
		return strings.Split(s, sep)
	}
}

// splitLowerOn returns a splitter that cuts on sep and lowercases every part.
func splitLowerOn(sep string) func(string) []string {
	return func(s string) []string {
		return strings.Split(naming.ToLower(s), sep)
	}
}

// splitHumps starts a new part before every uppercase letter past the first
// byte and lowercases each part.
// Example: "someCamelCase" -> ["some", "camel", "case"]
func splitHumps(s string) []string {
	parts := make([]string, 0, naming.CountUpper(s)+1)
	start := 0
	for i := 1; i < len(s); i++ {
		if naming.IsUpper(s[i]) {
			parts = append(parts, naming.ToLower(s[start:i]))
			start = i
		}
	}
	return append(parts, naming.ToLower(s[start:]))
}

// splitPascal keeps a word with a single capital whole.
// Example: "Pascal" -> ["pascal"]
func splitPascal(s string) []string {
	if naming.CountUpper(s) == 1 {
		return []string{naming.ToLower(s)}
	}
	return splitHumps(s)
}
