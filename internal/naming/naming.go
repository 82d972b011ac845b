// Package naming provides shared ASCII case helpers.
package naming

import "strings"

// IsUpper reports whether b is an ASCII uppercase letter.
func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsLower reports whether b is an ASCII lowercase letter.
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// ToUpper converts every ASCII lowercase letter in s to uppercase.
// Example: "some" -> "SOME"
func ToUpper(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if IsLower(c) {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// ToLower converts every ASCII uppercase letter in s to lowercase.
// Example: "SomeWord" -> "someword"
func ToLower(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if IsUpper(c) {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// CapitalizeFirst uppercases the first byte of s when it is an ASCII
// lowercase letter. The rest of s is left as is.
// Example: "word" -> "Word"
func CapitalizeFirst(s string) string {
	if s == "" || !IsLower(s[0]) {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}

// CountUpper returns the number of ASCII uppercase letters in s.
func CountUpper(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if IsUpper(s[i]) {
			n++
		}
	}
	return n
}

// IsLowerPhrase reports whether s consists only of ASCII lowercase letters
// and spaces, with at least one letter.
// Example: "this will do" -> true, "Not this" -> false
func IsLowerPhrase(s string) bool {
	hasLetter := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case IsLower(c):
			hasLetter = true
		case c == ' ':
		default:
			return false
		}
	}
	return hasLetter
}
