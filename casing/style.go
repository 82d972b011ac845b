package casing

import (
	"fmt"
	"strings"
)

// Style identifies one identifier naming convention.
type Style int

// Style constants in registry priority order.
const (
	// Unknown is the zero Style. It is returned alongside classification
	// errors and never bound to a rule.
	Unknown Style = iota
	// Ada is Some_Ada_Case.
	Ada
	// Camel is someCamelCase.
	Camel
	// Dot is some.dot.case.
	Dot
	// Kebab is some-kebab-case.
	Kebab
	// Pascal is SomePascalCase.
	Pascal
	// Path is some/path/case.
	Path
	// ScreamingSnake is SOME_SCREAMING_SNAKE.
	ScreamingSnake
	// Snake is some_snake_case.
	Snake
	// Space is "some space case".
	Space
	// TitleDash is Some-Title-Dash.
	TitleDash
)

var styleTags = [...]string{
	Unknown:        "unknown",
	Ada:            "ada",
	Camel:          "camel",
	Dot:            "dot",
	Kebab:          "kebab",
	Pascal:         "pascal",
	Path:           "path",
	ScreamingSnake: "screaming_snake",
	Snake:          "snake",
	Space:          "space",
	TitleDash:      "title_dash",
}

// Styles returns every recognized style in registry priority order.
func Styles() []Style {
	return []Style{Ada, Camel, Dot, Kebab, Pascal, Path, ScreamingSnake, Snake, Space, TitleDash}
}

// IsValid reports whether s is one of the recognized styles.
func (s Style) IsValid() bool {
	return s > Unknown && s <= TitleDash
}

// String returns the style's tag, such as "screaming_snake".
func (s Style) String() string {
	if s < Unknown || s > TitleDash {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleTags[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	if string(text) == styleTags[Unknown] {
		*s = Unknown
		return nil
	}
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStyle returns the style for tag. Matching ignores case and treats
// hyphens as underscores, so "Screaming-Snake" parses as ScreamingSnake.
func ParseStyle(tag string) (Style, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "-", "_")
	for _, s := range Styles() {
		if styleTags[s] == normalized {
			return s, nil
		}
	}
	return Unknown, fmt.Errorf("casing: unknown style %q; valid styles: %s", tag, strings.Join(StyleTags(), ", "))
}

// StyleTags returns the tags of every recognized style in priority order.
func StyleTags() []string {
	styles := Styles()
	tags := make([]string, len(styles))
	for i, s := range styles {
		tags[i] = s.String()
	}
	return tags
}
