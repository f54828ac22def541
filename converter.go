package docmap

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input is a
	// fragment or a full page; the output is its Markdown representation.
	Convert(html string) (string, error)
}
