// Package batch builds section trees for many documents in parallel.
// Distinct documents share no mutable state, so builds run concurrently
// with only a bounded worker pool capping concurrency and memory.
package batch

import (
	"context"

	"github.com/fwojciec/docmap"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency caps the worker pool when the caller passes no limit.
const defaultConcurrency = 10

// Build constructs a section tree for every document, at most concurrency
// at a time. Results match the input order. The first error cancels the
// remaining builds; building itself never fails, so errors only arise from
// context cancellation.
func Build(ctx context.Context, docs []*docmap.Document, extractors docmap.ExtractorRegistry, concurrency int) ([]*docmap.Tree, error) {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	trees := make([]*docmap.Tree, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x := extractors.Get(doc.Format)
			trees[i] = docmap.BuildTree(doc.ID, doc.Content, x.Extract(doc.Content))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}
