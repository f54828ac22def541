package mock

import (
	"context"

	"github.com/fwojciec/docmap"
)

var _ docmap.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of docmap.SectionService.
type SectionService struct {
	SaveSectionsFn             func(ctx context.Context, tree *docmap.Tree) error
	LoadTreeFn                 func(ctx context.Context, doc *docmap.Document) (*docmap.Tree, error)
	DeleteSectionsByDocumentFn func(ctx context.Context, documentID string) error
}

func (s *SectionService) SaveSections(ctx context.Context, tree *docmap.Tree) error {
	return s.SaveSectionsFn(ctx, tree)
}

func (s *SectionService) LoadTree(ctx context.Context, doc *docmap.Document) (*docmap.Tree, error) {
	return s.LoadTreeFn(ctx, doc)
}

func (s *SectionService) DeleteSectionsByDocument(ctx context.Context, documentID string) error {
	return s.DeleteSectionsByDocumentFn(ctx, documentID)
}
