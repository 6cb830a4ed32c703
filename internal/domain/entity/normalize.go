package entity

import "strings"

// Normalize applies the canonical form used for logins, names and word terms:
// surrounding whitespace is trimmed and the result is lower-cased. Comparison
// and storage always operate on normalized values.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
