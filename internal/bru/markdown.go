package bru

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// Title returns the text of the first heading in a markdown document, or an empty string when there is none.
func Title(doc string) string {
	source := []byte(doc)
	root := markdown.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		title = headingText(heading, source)
		return ast.WalkStop, nil
	})

	return title
}

// headingText joins the raw lines of a heading, leaving inline markup in place.
func headingText(h *ast.Heading, source []byte) string {
	var buf bytes.Buffer
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return strings.TrimSpace(buf.String())
}
