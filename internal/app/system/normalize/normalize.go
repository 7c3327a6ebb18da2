// Package normalize provides input normalization for user-supplied
// fields before validation and persistence.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are stored and
// compared in this normalized form (the interns collection has a unique
// index on the normalized value).
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
