// Package goldmark extracts markdown headings with byte offsets by walking
// the goldmark AST. Parsing through the AST rather than line-matching means
// fenced code blocks, indented code, and inline markup inside headings are
// handled the way a markdown renderer would handle them.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docmap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Extractor implements docmap.HeadingExtractor at compile time.
var _ docmap.HeadingExtractor = (*Extractor)(nil)

// Extractor extracts headings from markdown content.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates a new markdown heading extractor.
func NewExtractor() *Extractor {
	return &Extractor{md: goldmark.New()}
}

// Extract returns every ATX and Setext heading in document order, with the
// offset of the heading's line start in the original content.
func (e *Extractor) Extract(content string) []docmap.Heading {
	if content == "" {
		return nil
	}
	src := []byte(content)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var headings []docmap.Heading
	prev := 0 // last heading offset, keeps the sequence monotonic
	scan := 0 // end of the last block line seen
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			if n.Type() == ast.TypeBlock {
				if l := n.Lines(); l.Len() > 0 {
					scan = max(scan, l.At(l.Len()-1).Stop)
				}
			}
			return ast.WalkContinue, nil
		}

		var offset int
		if l := h.Lines(); l.Len() > 0 {
			offset = lineStart(src, l.At(0).Start)
			scan = max(scan, l.At(l.Len()-1).Stop)
		} else {
			// A textless heading has no line segments; its marker line is
			// the next bare ATX line past the content consumed so far.
			offset = bareMarkerOffset(src, scan, h.Level)
			scan = lineEnd(src, offset)
		}
		offset = max(offset, prev)
		prev = offset

		headings = append(headings, docmap.Heading{
			Level:  h.Level,
			Title:  headingText(h, src),
			Offset: offset,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// lineStart walks back from pos to the beginning of its line. The AST
// segments point at the heading text (after the "#" markers), so offsets
// land on the line start.
func lineStart(src []byte, pos int) int {
	for pos > 0 && src[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset just past the newline ending the line at pos.
func lineEnd(src []byte, pos int) int {
	for pos < len(src) && src[pos] != '\n' {
		pos++
	}
	if pos < len(src) {
		pos++
	}
	return pos
}

// bareMarkerOffset finds the start of the first line at or after from that
// is an ATX marker of the given level with no title text. Falls back to
// from when no such line exists.
func bareMarkerOffset(src []byte, from, level int) int {
	for at := from; at < len(src); at = lineEnd(src, at) {
		if isBareMarker(src[at:lineEnd(src, at)], level) {
			return at
		}
	}
	return from
}

func isBareMarker(line []byte, level int) bool {
	i := 0
	for i < len(line) && i < 3 && line[i] == ' ' {
		i++
	}
	hashes := 0
	for i < len(line) && line[i] == '#' {
		i++
		hashes++
	}
	if hashes != level {
		return false
	}
	for ; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' && line[i] != '\r' && line[i] != '\n' {
			return false
		}
	}
	return true
}

// headingText collects the heading's inline text, flattening nested inline
// markup (code spans, emphasis, links) to plain text.
func headingText(h *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		writeText(&buf, c, src)
	}
	return strings.TrimSpace(buf.String())
}

func writeText(buf *bytes.Buffer, n ast.Node, src []byte) {
	switch t := n.(type) {
	case *ast.Text:
		buf.Write(t.Value(src))
		if t.SoftLineBreak() || t.HardLineBreak() {
			buf.WriteByte(' ')
		}
	case *ast.String:
		buf.Write(t.Value)
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeText(buf, c, src)
		}
	}
}
