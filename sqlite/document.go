package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docmap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docmap.DocumentService = (*DocumentService)(nil)

// DocumentService implements docmap.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// parseCreatedAt parses the stored RFC3339 created_at column.
func parseCreatedAt(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return t, nil
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docmap.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, format, content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Title, string(doc.Format), doc.Content, doc.ContentHash,
		doc.CreatedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docmap.Document, error) {
	var doc docmap.Document
	var format, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, format, content, content_hash, created_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Title, &format, &doc.Content, &doc.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, docmap.Errorf(docmap.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.Format = docmap.Format(format)
	doc.CreatedAt, err = parseCreatedAt(createdAt)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docmap.DocumentFilter) ([]*docmap.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, format, content, content_hash, created_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docmap.Document
	for rows.Next() {
		var doc docmap.Document
		var format, createdAt string
		if err := rows.Scan(&doc.ID, &doc.Title, &format, &doc.Content, &doc.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		doc.Format = docmap.Format(format)
		doc.CreatedAt, err = parseCreatedAt(createdAt)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// DeleteDocument permanently removes a document. The sections foreign key
// cascades, removing the section snapshot with it.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return docmap.Errorf(docmap.ENOTFOUND, "document not found")
	}
	return nil
}
