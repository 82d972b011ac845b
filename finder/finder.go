package finder

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/erraggy/caseswap/casing"
	"github.com/samber/lo"
)

// Occurrence boundaries. A rendering may not touch a word character, and may
// not be joined to another word by one of the separators the styles use.
const (
	leadingBoundary  = `(?<![A-Za-z0-9_]|[A-Za-z0-9][./-])`
	trailingBoundary = `(?![A-Za-z0-9_]|[./-][A-Za-z0-9])`
)

// ErrInvalidUTF8 is returned when the scanned text is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("finder: text is not valid UTF-8")

// Match is one occurrence of the identifier in a scanned text.
type Match struct {
	// Text is the occurrence as it appears in the text
	Text string `json:"text" yaml:"text"`
	// Style is the occurrence's own style, or casing.Unknown when the
	// occurrence does not classify on its own (a lone lowercase word)
	Style casing.Style `json:"style" yaml:"style"`
	// Offset is the byte offset of the occurrence in the text
	Offset int `json:"offset" yaml:"offset"`
	// Line is the 1-based line number
	Line int `json:"line" yaml:"line"`
	// Column is the 1-based byte column within the line
	Column int `json:"column" yaml:"column"`
}

// Finder matches every spelling of one identifier. A Finder is immutable and
// safe for concurrent use.
type Finder struct {
	identifier casing.Identifier
	variants   []string
	registry   *casing.Registry
	re         *regexp2.Regexp
	logger     *slog.Logger
}

// New builds a Finder for identifier. It returns an error matching
// casing.ErrUnclassifiable when identifier is not in a recognized style.
func New(identifier string, opts ...Option) (*Finder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("finder: invalid options: %w", err)
		}
	}

	id, err := cfg.registry.Parse(identifier)
	if err != nil {
		return nil, fmt.Errorf("finder: %w", err)
	}

	// A single word renders identically in several styles.
	variants := lo.Uniq(cfg.registry.Permutations(id.Parts))
	escaped := lo.Map(variants, func(v string, _ int) string {
		return regexp2.Escape(v)
	})

	pattern := leadingBoundary + "(?:" + strings.Join(escaped, "|") + ")" + trailingBoundary
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("finder: compiling pattern for %q: %w", identifier, err)
	}
	re.MatchTimeout = cfg.matchTimeout

	return &Finder{
		identifier: id,
		variants:   variants,
		registry:   cfg.registry,
		re:         re,
		logger:     cfg.logger.With("identifier", identifier),
	}, nil
}

// Identifier returns the classified identifier the Finder was built from.
func (f *Finder) Identifier() casing.Identifier {
	return f.identifier
}

// Variants returns the distinct renderings the Finder matches, in registry
// priority order.
func (f *Finder) Variants() []string {
	return append([]string(nil), f.variants...)
}

// Pattern returns the regexp2 pattern the Finder matches with.
func (f *Finder) Pattern() string {
	return f.re.String()
}

// FindAll returns every non-overlapping occurrence in text, left to right.
func (f *Finder) FindAll(text string) ([]Match, error) {
	var matches []Match
	err := f.scan(text, func(m Match) {
		matches = append(matches, m)
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ReplaceAll replaces every occurrence in text with replacement rendered in
// the occurrence's style, as casing.Registry.Replace does for a single
// identifier. It returns the rewritten text and the number of occurrences
// replaced. On error the original text is returned.
func (f *Finder) ReplaceAll(text, replacement string) (string, int, error) {
	var b strings.Builder
	b.Grow(len(text))

	last, count := 0, 0
	err := f.scan(text, func(m Match) {
		rendered := f.registry.Replace(m.Text, replacement)
		b.WriteString(text[last:m.Offset])
		b.WriteString(rendered)
		last = m.Offset + len(m.Text)
		count++
		f.logger.Debug("replaced occurrence",
			"line", m.Line, "column", m.Column, "from", m.Text, "to", rendered, "style", m.Style)
	})
	if err != nil {
		return text, 0, err
	}
	b.WriteString(text[last:])
	return b.String(), count, nil
}

// scan calls fn for each occurrence in order. regexp2 reports positions in
// runes, so scan walks the text alongside the matches to recover byte
// offsets and line/column positions.
func (f *Finder) scan(text string, fn func(Match)) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}

	runes := []rune(text)
	m, err := f.re.FindRunesMatch(runes)

	pos := position{line: 1, column: 1}
	for err == nil && m != nil {
		pos.advance(runes, m.Index)

		style, classifyErr := f.registry.Classify(m.String())
		if classifyErr != nil {
			style = casing.Unknown
		}
		fn(Match{
			Text:   m.String(),
			Style:  style,
			Offset: pos.offset,
			Line:   pos.line,
			Column: pos.column,
		})

		m, err = f.re.FindNextMatch(m)
	}
	if err != nil {
		return fmt.Errorf("finder: matching %q: %w", f.identifier.Text, err)
	}
	return nil
}

// position tracks a byte offset and a line/column pair while walking runes.
type position struct {
	rune   int
	offset int
	line   int
	column int
}

func (p *position) advance(runes []rune, to int) {
	for ; p.rune < to; p.rune++ {
		r := runes[p.rune]
		size := utf8.RuneLen(r)
		p.offset += size
		if r == '\n' {
			p.line++
			p.column = 1
		} else {
			p.column += size
		}
	}
}
