package docmap

import "sort"

// Chunk is a derived, size-bounded content window over a document. It is a
// view object: chunks are materialized on demand and never persisted.
type Chunk struct {
	// SequenceNumber is 1-based.
	SequenceNumber int `json:"sequenceNumber"`

	// Range is the chunk's half-open character range in the content.
	Range Span `json:"range"`

	// Content is the materialized substring for Range.
	Content string `json:"content"`

	// SectionIDs lists every section whose span intersects the chunk's
	// range, in document order, possibly partially for the first and last.
	// Zero-length sections are attributed to the chunk containing their
	// offset, so no section is ever unreachable from the chunk view.
	SectionIDs []int `json:"sectionIds"`
}

// Chunker produces ordered content windows over a built tree, honoring a
// caller-supplied size budget. Boundaries prefer section edges: a window
// closes when the next whole section would exceed the budget. A single
// section larger than the budget falls back to raw character slicing, with
// no attempt to respect sentence or word boundaries inside it.
//
// Chunk boundaries are precomputed once; Count and lookup answer without
// materializing any chunk. Concatenating every chunk in order reproduces
// the original content exactly, for any budget.
type Chunker struct {
	tree   *Tree
	budget int
	starts []int // ascending chunk start offsets; empty for empty content
}

// NewChunker creates a Chunker for the tree with the given size budget in
// characters. Returns EINVALID if the budget is not positive.
func NewChunker(tree *Tree, budget int) (*Chunker, error) {
	if budget < 1 {
		return nil, Errorf(EINVALID, "chunk size budget must be positive, got %d", budget)
	}
	c := &Chunker{tree: tree, budget: budget}
	c.computeBoundaries()
	return c, nil
}

// computeBoundaries walks the preamble plus every section's own span in
// document order, accumulating spans into a running window. Spans tile the
// content, so emitting each window's start offset yields a partition.
func (c *Chunker) computeBoundaries() {
	var pieces []Span
	if c.tree.Preamble().Len() > 0 {
		pieces = append(pieces, c.tree.Preamble())
	}
	for _, sec := range c.tree.Sections() {
		if sec.Span.Len() > 0 {
			pieces = append(pieces, sec.Span)
		}
	}

	winStart, winLen := 0, 0
	open := false
	for _, p := range pieces {
		if open && winLen+p.Len() > c.budget {
			c.starts = append(c.starts, winStart)
			open = false
		}
		if !open {
			if p.Len() > c.budget {
				// Oversized span: slice at raw character offsets. The
				// short remainder opens the next window so a following
				// small section can still share its chunk.
				off, rem := p.Start, p.Len()
				for rem > c.budget {
					c.starts = append(c.starts, off)
					off += c.budget
					rem -= c.budget
				}
				if rem > 0 {
					winStart, winLen = off, rem
					open = true
				}
				continue
			}
			winStart, winLen = p.Start, p.Len()
			open = true
			continue
		}
		winLen += p.Len()
	}
	if open {
		c.starts = append(c.starts, winStart)
	}
}

// Count returns the number of chunks for this budget. Empty content has
// zero chunks.
func (c *Chunker) Count() int { return len(c.starts) }

// Chunk materializes the 1-based chunk number n.
// Returns ERANGE if n is outside [1, Count].
func (c *Chunker) Chunk(n int) (*Chunk, error) {
	if n < 1 || n > len(c.starts) {
		return nil, Errorf(ERANGE, "chunk %d out of range [1, %d]", n, len(c.starts))
	}
	r := Span{Start: c.starts[n-1], End: len(c.tree.Content())}
	if n < len(c.starts) {
		r.End = c.starts[n]
	}

	var ids []int
	last := n == len(c.starts)
	for _, sec := range c.tree.Sections() {
		switch {
		case sec.Span.Len() > 0 && sec.Span.Intersects(r):
			ids = append(ids, sec.ID)
		case sec.Span.Len() == 0 && r.Start <= sec.Span.Start && (sec.Span.Start < r.End || (last && sec.Span.Start == r.End)):
			ids = append(ids, sec.ID)
		}
	}

	return &Chunk{
		SequenceNumber: n,
		Range:          r,
		Content:        c.tree.Content()[r.Start:r.End],
		SectionIDs:     ids,
	}, nil
}

// ChunkForPath returns the 1-based number of the chunk containing the start
// of the section at the given path, without materializing any chunk.
// Returns EINVALID for malformed paths, ENOTFOUND for absent ones, and
// ERANGE when the document has no chunks at all (empty content).
func (c *Chunker) ChunkForPath(path string) (int, error) {
	sec, err := c.tree.SectionByPath(path)
	if err != nil {
		return 0, err
	}
	if len(c.starts) == 0 {
		return 0, Errorf(ERANGE, "document has no chunks")
	}
	// Last start <= section offset wins; a zero-length section at content
	// end belongs to the final chunk.
	i := sort.Search(len(c.starts), func(i int) bool {
		return c.starts[i] > sec.Span.Start
	})
	if i == 0 {
		i = 1
	}
	return i, nil
}
