package casing

import "regexp"

// Predicate patterns. Character classes are ASCII only.
var (
	adaPattern                  = regexp.MustCompile(`^(?:[A-Z][a-z]+_)+[A-Z][a-z]+$`)
	camelPattern                = regexp.MustCompile(`^[a-z]+(?:[A-Z][a-z]+)+$`)
	dotPattern                  = regexp.MustCompile(`^(?:[a-z]+\.)+[a-z]+$`)
	kebabPattern                = regexp.MustCompile(`^(?:[a-z]+-)+[a-z]+$`)
	pascalPattern               = regexp.MustCompile(`^(?:[A-Z][a-z]+)+$`)
	pathPattern                 = regexp.MustCompile(`^(?:[A-Za-z]+/)+[A-Za-z]+$`)
	screamingSnakePattern       = regexp.MustCompile(`^[A-Z]+(?:_[A-Z]+)*$`)
	strictScreamingSnakePattern = regexp.MustCompile(`^[A-Z]+(?:_[A-Z]+)+$`)
	snakePattern                = regexp.MustCompile(`^(?:[a-z]+_)+[a-z]+$`)
	spacePattern                = regexp.MustCompile(`^(?:[a-z]+ )+[a-z]+$`)
	titleDashPattern            = regexp.MustCompile(`^(?:[A-Z][a-z]+-)+[A-Z][a-z]+$`)
)

func isAda(s string) bool       { return adaPattern.MatchString(s) }
func isCamel(s string) bool     { return camelPattern.MatchString(s) }
func isDot(s string) bool       { return dotPattern.MatchString(s) }
func isKebab(s string) bool     { return kebabPattern.MatchString(s) }
func isPascal(s string) bool    { return pascalPattern.MatchString(s) }
func isPath(s string) bool      { return pathPattern.MatchString(s) }
func isSnake(s string) bool     { return snakePattern.MatchString(s) }
func isSpace(s string) bool     { return spacePattern.MatchString(s) }
func isTitleDash(s string) bool { return titleDashPattern.MatchString(s) }

// isScreamingSnake accepts a single all-caps group such as "SOME".
func isScreamingSnake(s string) bool { return screamingSnakePattern.MatchString(s) }

// isStrictScreamingSnake requires at least two underscore-joined groups.
func isStrictScreamingSnake(s string) bool { return strictScreamingSnakePattern.MatchString(s) }
