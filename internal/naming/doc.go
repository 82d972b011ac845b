// Package naming provides the ASCII letter helpers shared by the casing
// splitters and producers.
//
// Case styles are defined over ASCII letters only, so these helpers never
// consult Unicode tables: bytes outside A-Z and a-z pass through unchanged.
// Functions include CapitalizeFirst, ToUpper, ToLower, CountUpper,
// IsLowerPhrase, and the IsUpper/IsLower byte tests.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
