package casing

import (
	"errors"
	"fmt"
)

// ErrUnclassifiable matches any *UnclassifiableError via errors.Is.
var ErrUnclassifiable = errors.New("unclassifiable identifier")

// UnclassifiableError reports a string that conforms to none of the
// recognized styles. It is an ordinary negative result: callers are
// expected to fall back to their own default.
type UnclassifiableError struct {
	// Input is the string that failed to classify
	Input string
}

// Error returns a human-readable error message.
func (e *UnclassifiableError) Error() string {
	if e.Input == "" {
		return "unclassifiable identifier: empty input"
	}
	return fmt.Sprintf("unclassifiable identifier %q", e.Input)
}

// Is reports whether target matches this error type.
func (e *UnclassifiableError) Is(target error) bool {
	return target == ErrUnclassifiable
}
