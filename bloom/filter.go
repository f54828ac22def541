// Package bloom provides a probabilistic section-title index using Bloom
// filters. A negative membership answer is definitive, which lets the
// navigator skip exact-match title scans for absent titles.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/docmap"
)

// Ensure Index implements docmap.TitleIndex at compile time.
var _ docmap.TitleIndex = (*Index)(nil)

// Index wraps a Bloom filter over case-folded section titles.
type Index struct {
	f *bloom.BloomFilter
}

// NewIndex creates a new title index sized for n expected titles with the
// given false positive rate.
func NewIndex(n uint, fpRate float64) *Index {
	return &Index{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a title to the index.
func (i *Index) Add(title string) {
	i.f.AddString(title)
}

// Test returns true if the title might be in the index.
// False positives are possible; false negatives are not.
func (i *Index) Test(title string) bool {
	return i.f.TestString(title)
}

// EstimatedCount returns the approximate number of titles in the index.
func (i *Index) EstimatedCount() uint {
	return uint(i.f.ApproximatedSize())
}
