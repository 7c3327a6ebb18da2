// Package htmlsanitize strips dangerous HTML from user-supplied text.
//
// Free-text fields (project descriptions, fun facts) are round-tripped
// to the SPA without escaping, so anything persisted must already be
// safe to render.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize keeps common formatting markup (links, emphasis, lists) and
// removes scripts, event handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// Strip removes all markup, leaving plain text only.
func Strip(s string) string {
	return strict.Sanitize(s)
}
