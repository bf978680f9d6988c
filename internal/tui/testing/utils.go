package testing

import (
	"regexp"
	"strings"
)

var (
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses whitespace runs to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// ContainsInOrder checks if the output contains all strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	last := 0
	for _, exp := range expected {
		i := strings.Index(output[last:], exp)
		if i == -1 {
			return false
		}
		last += i + len(exp)
	}
	return true
}
