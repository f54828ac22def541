// Package goquery extracts document metadata from HTML using CSS selectors.
// It runs once at document registration; structure extraction itself goes
// through the tokenizer-based heading extractor, which preserves offsets.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmap"
)

// Title extracts a display title from an HTML page, trying in order:
// the <title> element, the og:title meta property, and the first <h1>.
// Returns an empty string when none is present.
func Title(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docmap.Errorf(docmap.EINVALID, "failed to parse HTML: %v", err)
	}

	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t, nil
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t, nil
		}
	}
	return strings.TrimSpace(doc.Find("h1").First().Text()), nil
}
