// Package markdown pulls raw link destinations out of Markdown documents.
// It performs no validation or deduplication; callers receive every
// destination in document order.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// StdinPath is the document path that reads from standard input.
const StdinPath = "-"

var mdParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// ExtractLinks parses source as CommonMark with GitHub extensions and returns
// the destinations of inline, reference, and auto links, plus href attributes
// of anchors embedded as raw HTML.
func ExtractLinks(source []byte) []string {
	doc := mdParser.Parse(text.NewReader(source))

	var links []string
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Link:
			links = append(links, string(n.Destination))
		case *ast.AutoLink:
			links = append(links, string(n.URL(source)))
		case *ast.RawHTML:
			var buf bytes.Buffer
			for i := 0; i < n.Segments.Len(); i++ {
				segment := n.Segments.At(i)
				buf.Write(segment.Value(source))
			}
			links = append(links, anchorHrefs(&buf)...)
		case *ast.HTMLBlock:
			var buf bytes.Buffer
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(source))
			}
			if n.HasClosure() {
				buf.Write(n.ClosureLine.Value(source))
			}
			links = append(links, anchorHrefs(&buf)...)
		}
		return ast.WalkContinue, nil
	})

	return links
}

// Extract reads a whole document from r and extracts its links.
func Extract(r io.Reader) ([]string, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	return ExtractLinks(source), nil
}

// ExtractFile extracts links from the document at path. StdinPath reads os.Stdin.
func ExtractFile(path string) ([]string, error) {
	if path == StdinPath {
		return Extract(os.Stdin)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown file %s: %w", path, err)
	}
	return ExtractLinks(source), nil
}
