// Package caseswap recognizes identifier case styles and converts between them.
//
// An identifier such as "maxSize" is one logical name that may be spelled in
// many naming conventions across a codebase: max_size, MAX_SIZE, max-size,
// MaxSize and so on. caseswap classifies a string into one of ten styles,
// splits it into lowercase word parts, and renders those parts back out in
// any style.
//
// # Overview
//
// The module consists of two library packages and two front ends:
//
//   - casing: styles, the rule registry, classification, splitting,
//     producing, permutations, find patterns and style-preserving replace
//   - finder: locate and rename every spelling of one identifier in text
//   - cmd/caseswap: command-line interface
//   - internal/mcpserver: MCP server exposing the operations as tools
//
// Recognized styles, in registry priority order:
//
//	Some_Ada_Case         ada
//	someCamelCase         camel
//	some.dot.case         dot
//	some-kebab-case       kebab
//	SomePascalCase        pascal
//	some/path/case        path
//	SOME_SCREAMING_SNAKE  screaming_snake
//	some_snake_case       snake
//	some space case       space
//	Some-Title-Dash       title_dash
//
// Character classes are ASCII only; digits and non-ASCII letters never
// classify.
//
// # Installation
//
//	go install github.com/erraggy/caseswap/cmd/caseswap@latest
//
// # Quick Start
//
// Re-render a replacement in the style of an existing identifier:
//
//	import "github.com/erraggy/caseswap/casing"
//
//	casing.Replace("SomePascalCaseWord", "this will still be pascal case")
//	// ThisWillStillBePascalCase
//
// Build a Vim search pattern that matches every spelling:
//
//	casing.FindRegex("some word")
//	// \v\C(Some_Word|someWord|some.word|some-word|SomeWord|some/word|SOME_WORD|some_word|Some-Word)
//
// Rename every spelling of an identifier in a document:
//
//	import "github.com/erraggy/caseswap/finder"
//
//	f, err := finder.New("maxSize")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, n, err := f.ReplaceAll(src, "buffer limit")
//	// max_size -> buffer_limit, MAX_SIZE -> BUFFER_LIMIT, maxSize -> bufferLimit
//
// # Command-Line Interface
//
//	caseswap detect someCamelCase
//	caseswap permutations some_word
//	caseswap find-regex -dialect re2 SomeWord
//	caseswap replace MAX_SIZE "buffer limit"
//	caseswap rewrite -from maxSize -to "buffer limit" main.go
//	caseswap mcp
//
// # MCP Server
//
// caseswap mcp serves the find_regex, replace, classify, permutations and
// rewrite_text tools over stdio. Defaults are configurable with CASESWAP_*
// environment variables, optionally loaded from a dotenv file given with
// -env-file.
package caseswap
