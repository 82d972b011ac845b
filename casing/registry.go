package casing

import (
	"fmt"
	"slices"
	"sync"

	"github.com/erraggy/caseswap/internal/naming"
)

// Rule binds a style to the functions that recognize, split, and render it.
type Rule struct {
	// Style is the style this rule handles
	Style Style
	// Match reports whether a string conforms to Style
	Match func(s string) bool
	// Split decomposes a conforming string into lowercase word parts
	Split func(s string) []string
	// Produce renders word parts in Style. It panics on empty parts.
	Produce func(parts []string) string
}

// Identifier is a classified string together with its word parts.
type Identifier struct {
	Text  string   `json:"text"  yaml:"text"`
	Style Style    `json:"style" yaml:"style"`
	Parts []string `json:"parts" yaml:"parts"`
}

// Option configures a Registry built by NewRegistry.
type Option func(*registryConfig)

type registryConfig struct {
	strictScreamingSnake bool
}

// WithStrictScreamingSnake requires ScreamingSnake identifiers to have at
// least two underscore-joined groups. By default a single all-caps word such
// as "SOME" classifies as ScreamingSnake.
func WithStrictScreamingSnake(strict bool) Option {
	return func(cfg *registryConfig) {
		cfg.strictScreamingSnake = strict
	}
}

// Registry holds the rules for every style in fixed priority order.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	rules  []Rule
	strict bool
}

// NewRegistry builds a registry with rules in priority order: Ada, Camel,
// Dot, Kebab, Pascal, Path, ScreamingSnake, Snake, Space, TitleDash.
func NewRegistry(opts ...Option) *Registry {
	cfg := &registryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	screaming := isScreamingSnake
	if cfg.strictScreamingSnake {
		screaming = isStrictScreamingSnake
	}

	return &Registry{
		strict: cfg.strictScreamingSnake,
		rules: []Rule{
			{Style: Ada, Match: isAda, Split: splitLowerOn("_"), Produce: produceJoined("_", naming.CapitalizeFirst)},
			{Style: Camel, Match: isCamel, Split: splitHumps, Produce: produceCamel},
			{Style: Dot, Match: isDot, Split: splitOn("."), Produce: produceJoined(".", unchanged)},
			{Style: Kebab, Match: isKebab, Split: splitOn("-"), Produce: produceJoined("-", unchanged)},
			{Style: Pascal, Match: isPascal, Split: splitPascal, Produce: produceJoined("", naming.CapitalizeFirst)},
			{Style: Path, Match: isPath, Split: splitLowerOn("/"), Produce: produceJoined("/", unchanged)},
			{Style: ScreamingSnake, Match: screaming, Split: splitLowerOn("_"), Produce: produceJoined("_", naming.ToUpper)},
			{Style: Snake, Match: isSnake, Split: splitOn("_"), Produce: produceJoined("_", unchanged)},
			{Style: Space, Match: isSpace, Split: splitOn(" "), Produce: produceJoined(" ", naming.ToLower)},
			{Style: TitleDash, Match: isTitleDash, Split: splitLowerOn("-"), Produce: produceJoined("-", naming.CapitalizeFirst)},
		},
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry { return NewRegistry() })

// Default returns the process-wide registry. It is built on first use and
// never modified afterward.
func Default() *Registry {
	return defaultRegistry()
}

// StrictScreamingSnake reports whether the registry was built with
// WithStrictScreamingSnake(true).
func (r *Registry) StrictScreamingSnake() bool {
	return r.strict
}

// Rules returns a copy of the registry's rules in priority order.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Rule returns the rule bound to style.
func (r *Registry) Rule(style Style) (Rule, bool) {
	for _, rule := range r.rules {
		if rule.Style == style {
			return rule, true
		}
	}
	return Rule{}, false
}

// mustRule panics when style has no rule; passing Unknown or an
// out-of-range Style to Split or Produce is a caller bug.
func (r *Registry) mustRule(style Style) Rule {
	rule, ok := r.Rule(style)
	if !ok {
		panic(fmt.Sprintf("casing: no rule for style %s", style))
	}
	return rule
}

// Classify returns the first style, in priority order, whose predicate
// accepts s. When none does it returns Unknown and an *UnclassifiableError.
func (r *Registry) Classify(s string) (Style, error) {
	for _, rule := range r.rules {
		if rule.Match(s) {
			return rule.Style, nil
		}
	}
	return Unknown, &UnclassifiableError{Input: s}
}

// Split decomposes s, which must already conform to style, into word parts.
func (r *Registry) Split(s string, style Style) []string {
	return r.mustRule(style).Split(s)
}

// Produce renders parts in style. It panics if parts is empty.
func (r *Registry) Produce(parts []string, style Style) string {
	return r.mustRule(style).Produce(parts)
}

// Parse classifies s and splits it in one step.
func (r *Registry) Parse(s string) (Identifier, error) {
	style, err := r.Classify(s)
	if err != nil {
		return Identifier{Text: s}, err
	}
	return Identifier{Text: s, Style: style, Parts: r.Split(s, style)}, nil
}
