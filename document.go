package docmap

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Format identifies how a document's content is marked up. It determines
// which heading extractor runs before the section tree is built. The choice
// is made once, up front; the tree builder itself is format-agnostic.
type Format string

// Supported content formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Valid returns true if f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatHTML, FormatMarkdown, FormatText:
		return true
	}
	return false
}

// FormatFromPath guesses a document format from a file extension.
// Unknown extensions fall back to FormatText.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".md", ".markdown":
		return FormatMarkdown
	}
	return FormatText
}

// Document represents a single piece of content handed in by an upstream
// scraper or read from a local file. Content is an in-memory UTF-8 string;
// fetching and sanitization happen before a Document exists.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Format      Format    `json:"format"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if !d.Format.Valid() {
		return Errorf(EINVALID, "unknown document format %q", d.Format)
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and its section snapshot.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID    *string `json:"id"`
	Title *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SectionService persists section snapshots of built trees so a tree can be
// replayed without reparsing the raw content.
type SectionService interface {
	// SaveSections snapshots every section of a built tree, replacing any
	// previous snapshot for the same document.
	SaveSections(ctx context.Context, tree *Tree) error

	// LoadTree restores a tree from the document's section snapshot.
	// Returns ENOTFOUND if no snapshot exists for the document.
	LoadTree(ctx context.Context, doc *Document) (*Tree, error)

	// DeleteSectionsByDocument removes the section snapshot for a document.
	DeleteSectionsByDocument(ctx context.Context, documentID string) error
}
