// Package finder locates every spelling of an identifier in a text and
// rewrites each occurrence in that occurrence's own case style.
//
// A Finder is built from one identifier. It renders the identifier in every
// style the casing package knows except Space and compiles a single
// case-sensitive pattern over those renderings:
//
//	f, err := finder.New("max_size")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, n, err := f.ReplaceAll(src, "buffer limit")
//	// maxSize -> bufferLimit, MAX_SIZE -> BUFFER_LIMIT, max-size -> buffer-limit
//
// Occurrences only match as whole identifiers: a rendering is not matched
// when it is glued to a letter, digit, or underscore, or continues through a
// dot, hyphen, or slash into another word. "max-size-hint" and "a.max.size"
// therefore contain no occurrence of max_size.
//
// Matching uses github.com/dlclark/regexp2 because the boundaries above need
// lookbehind and lookahead. Each scan is bounded by a match timeout (see
// WithMatchTimeout); exceeding it returns an error.
package finder
