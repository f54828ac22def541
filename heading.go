package docmap

// Heading is a single heading event produced by a HeadingExtractor: the raw
// heading level as it appears in the markup, the trimmed title text (which
// may be empty for a textless heading), and the character offset of the
// heading's start within the content.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Offset int    `json:"offset"`
}

// HeadingExtractor scans raw content and yields its headings in document
// order. Offsets are monotonically increasing and within content bounds.
//
// Extraction never fails: malformed markup (unterminated tags, mismatched
// nesting, stray closers) is recovered from rather than reported, since the
// only consumer of malformed input is a best-effort structure view. Content
// with no recognizable headings yields an empty slice, which the tree
// builder turns into the single-root fallback.
type HeadingExtractor interface {
	Extract(content string) []Heading
}

// NopExtractor recognizes no headings. It serves as the generic fallback for
// plain text, which always builds as a single root section.
type NopExtractor struct{}

// Extract returns no headings.
func (NopExtractor) Extract(string) []Heading { return nil }

// ExtractorRegistry selects a heading extractor for a document format.
type ExtractorRegistry interface {
	// Register associates an extractor with a format, replacing any
	// previous registration.
	Register(format Format, x HeadingExtractor)

	// Get returns the extractor for a format, or the fallback when the
	// format has no registration.
	Get(format Format) HeadingExtractor
}

// Ensure Extractors implements ExtractorRegistry.
var _ ExtractorRegistry = (*Extractors)(nil)

// Extractors is a map-based ExtractorRegistry with a fallback slot.
type Extractors struct {
	byFormat map[Format]HeadingExtractor
	fallback HeadingExtractor
}

// NewExtractors creates a registry that answers with fallback for any
// unregistered format.
func NewExtractors(fallback HeadingExtractor) *Extractors {
	return &Extractors{
		byFormat: make(map[Format]HeadingExtractor),
		fallback: fallback,
	}
}

// Register associates an extractor with a format.
func (e *Extractors) Register(format Format, x HeadingExtractor) {
	e.byFormat[format] = x
}

// Get returns the extractor registered for format, or the fallback.
func (e *Extractors) Get(format Format) HeadingExtractor {
	if x, ok := e.byFormat[format]; ok {
		return x
	}
	return e.fallback
}
