package markdown

import "strings"

const DefaultTitle = "meadow"

// ExtractTitle scans a rendered fragment for the first level-1 heading and
// returns its inner text, falling back to DefaultTitle. Best effort only,
// not a full HTML parse.
func ExtractTitle(fragment string) string {
	start := strings.Index(fragment, "<h1>")
	if start == -1 {
		return DefaultTitle
	}
	rest := fragment[start+len("<h1>"):]
	end := strings.Index(rest, "</h1>")
	if end == -1 {
		return DefaultTitle
	}
	title := strings.TrimSpace(rest[:end])
	if title == "" {
		return DefaultTitle
	}
	return title
}
