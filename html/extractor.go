// Package html extracts HTML headings (h1..h6) with byte offsets using the
// x/net/html tokenizer. The tokenizer is used instead of a DOM parse because
// section spans need exact offsets into the original content, which a
// normalized DOM discards. Every input byte appears in exactly one raw
// token, so accumulating raw token lengths tracks offsets precisely even
// through malformed markup.
package html

import (
	"strings"

	"github.com/fwojciec/docmap"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docmap.HeadingExtractor at compile time.
var _ docmap.HeadingExtractor = (*Extractor)(nil)

// Extractor extracts headings from HTML content.
type Extractor struct{}

// NewExtractor creates a new HTML heading extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns every h1..h6 heading in document order. Malformed markup
// never aborts extraction: an unterminated heading closes at the next
// heading or at end of input, and an unmatched closing tag is a no-op.
func (e *Extractor) Extract(content string) []docmap.Heading {
	z := html.NewTokenizer(strings.NewReader(content))

	var headings []docmap.Heading
	var title strings.Builder
	offset := 0
	inHeading := false
	level := 0
	start := 0
	skipText := false // inside script/style nested in a heading

	emit := func() {
		headings = append(headings, docmap.Heading{
			Level:  level,
			Title:  strings.TrimSpace(title.String()),
			Offset: start,
		})
		inHeading = false
		skipText = false
		title.Reset()
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if inHeading {
				emit()
			}
			return headings
		}
		raw := len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if lvl := headingLevel(string(name)); lvl > 0 {
				// A heading opening inside an unterminated heading closes
				// the previous one at this boundary.
				if inHeading {
					emit()
				}
				inHeading = true
				level = lvl
				start = offset
			} else if inHeading && isRawText(string(name)) {
				skipText = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if headingLevel(string(name)) > 0 {
				if inHeading {
					emit()
				}
				// Unmatched closing heading tags are no-ops.
			} else if skipText && isRawText(string(name)) {
				skipText = false
			}
		case html.TextToken:
			if inHeading && !skipText {
				title.Write(z.Text())
			}
		}

		offset += raw
	}
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// isRawText reports tags whose text content is not heading title text.
func isRawText(tag string) bool {
	return tag == "script" || tag == "style"
}
