package sqlite

import (
	"context"

	"github.com/fwojciec/docmap"
)

// Compile-time interface verification.
var _ docmap.SectionService = (*SectionService)(nil)

// SectionService implements docmap.SectionService using SQLite. It
// snapshots built trees section-by-section so a tree can be restored
// without reparsing the document content.
type SectionService struct {
	db *DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *DB) *SectionService {
	return &SectionService{db: db}
}

// SaveSections snapshots every section of the tree, replacing any previous
// snapshot for the same document.
func (s *SectionService) SaveSections(ctx context.Context, tree *docmap.Tree) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE document_id = ?", tree.DocumentID()); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sections (document_id, id, parent_id, path, depth, title, span_start, span_end, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sec := range tree.Sections() {
		if _, err := stmt.ExecContext(ctx, sec.DocumentID, sec.ID, sec.ParentID,
			sec.Path.String(), sec.Depth, sec.Title, sec.Span.Start, sec.Span.End,
			sec.OrderIndex); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadTree restores a tree from the document's section snapshot.
func (s *SectionService) LoadTree(ctx context.Context, doc *docmap.Document) (*docmap.Tree, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, parent_id, path, depth, title, span_start, span_end, order_index
		FROM sections
		WHERE document_id = ?
		ORDER BY order_index ASC
	`, doc.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*docmap.Section
	for rows.Next() {
		sec := &docmap.Section{DocumentID: doc.ID}
		var path string
		if err := rows.Scan(&sec.ID, &sec.ParentID, &path, &sec.Depth, &sec.Title,
			&sec.Span.Start, &sec.Span.End, &sec.OrderIndex); err != nil {
			return nil, err
		}
		sec.Path, err = docmap.ParsePath(path)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, docmap.Errorf(docmap.ENOTFOUND, "no section snapshot for document %q", doc.ID)
	}

	return docmap.RestoreTree(doc.ID, doc.Content, sections)
}

// DeleteSectionsByDocument removes the section snapshot for a document.
func (s *SectionService) DeleteSectionsByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE document_id = ?", documentID)
	return err
}
