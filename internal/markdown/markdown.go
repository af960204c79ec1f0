// Package markdown turns sanitized markdown into HTML fragments for both
// the live preview and shared document pages.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var converter = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	),
	// input is sanitized before it gets here, so inline HTML may pass through
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML converts sanitized markdown to an HTML fragment. The result is
// deterministic for a given input.
func ToHTML(content string) string {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return wrapCodeBlocks(buf.String())
}

// wrapCodeBlocks puts every <pre> block inside a container div so code
// blocks can be styled like the rest of the site. Kept as a literal string
// replacement, unbalanced tags and all.
func wrapCodeBlocks(fragment string) string {
	fragment = strings.ReplaceAll(fragment, "<pre>", `<div class="highlighter-rouge"><pre>`)
	return strings.ReplaceAll(fragment, "</pre>", "</pre></div>")
}
