package markdown

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize strips unsafe HTML from user input. Runs before storage and
// before rendering; applying it twice yields the same output.
func Sanitize(content string) string {
	return policy.Sanitize(content)
}
