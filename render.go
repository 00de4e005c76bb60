package main

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

type markdownRenderer struct {
	md goldmark.Markdown
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// renderHTML converts the generated readme to an HTML fragment.
func (r *markdownRenderer) renderHTML(readme string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(readme), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// topLevelHeadings returns the text of every level one heading in readme.
// Fenced code is parsed as code, so comment lines starting with # inside a
// block are not counted.
func (r *markdownRenderer) topLevelHeadings(readme string) ([]string, error) {
	src := []byte(readme)
	root := r.md.Parser().Parse(text.NewReader(src))
	var headings []string
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if h.Level == 1 {
			headings = append(headings, headingText(h, src))
		}
		return gmast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return headings, nil
}

func headingText(h *gmast.Heading, src []byte) string {
	var buf bytes.Buffer
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}
