// Package casing recognizes the case style of identifier-like strings and
// re-renders their word parts in any other supported style.
//
// Import path: github.com/erraggy/caseswap/casing
//
// # Styles
//
// The style taxonomy is closed. Each [Style] is bound to a predicate, a
// splitter, and a producer in a [Registry]:
//
//   - [Ada]: Some_Ada_Case
//   - [Camel]: someCamelCase
//   - [Dot]: some.dot.case
//   - [Kebab]: some-kebab-case
//   - [Pascal]: SomePascalCase
//   - [Path]: some/path/case
//   - [ScreamingSnake]: SOME_SCREAMING_SNAKE
//   - [Snake]: some_snake_case
//   - [Space]: some space case
//   - [TitleDash]: Some-Title-Dash
//
// Classification tries the predicates in exactly this order and returns the
// first match. Only ASCII letters take part in classification.
//
// # Word parts
//
// Splitting a classified identifier yields its word parts: an ordered,
// non-empty slice of lowercase words with every separator and case marker
// removed. Producing renders word parts back into a style:
//
//	id, err := casing.Parse("someCamelCase")
//	if err != nil {
//		// not a recognized style
//	}
//	fmt.Println(casing.Produce(id.Parts, casing.ScreamingSnake)) // SOME_CAMEL_CASE
//
// # Finding every spelling
//
// [FindRegex] renders an identifier in every style except [Space] and joins
// the renderings into one case-sensitive Vim "very magic" alternation:
//
//	casing.FindRegex("some_word")
//	// \v\C(Some_Word|someWord|some.word|some-word|SomeWord|some/word|SOME_WORD|some_word|Some-Word)
//
// [Pattern] with [DialectRE2] renders an escaped pattern for Go's regexp
// package instead.
//
// # Style-preserving replacement
//
// [Replace] rewrites a replacement so it matches the style of another
// identifier:
//
//	casing.Replace("SomePascalCaseWord", "this will still be pascal case")
//	// ThisWillStillBePascalCase
//
// Neither [FindRegex] nor [Replace] fails: an input that does not classify
// falls back to returning the original text. Lower-level calls such as
// [Classify] report it with an error matching [ErrUnclassifiable].
//
// # Registries
//
// Package-level functions use [Default], a registry built once on first use
// and never modified. [NewRegistry] builds an independent registry; the only
// option today is [WithStrictScreamingSnake], which stops single all-caps
// words such as "SOME" from classifying as [ScreamingSnake].
package casing
