package mock

import "github.com/fwojciec/docmap"

var _ docmap.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor is a mock implementation of docmap.HeadingExtractor.
type HeadingExtractor struct {
	ExtractFn func(content string) []docmap.Heading
}

func (e *HeadingExtractor) Extract(content string) []docmap.Heading {
	return e.ExtractFn(content)
}

var _ docmap.Converter = (*Converter)(nil)

// Converter is a mock implementation of docmap.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
