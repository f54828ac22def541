package main

import (
	"fmt"

	"github.com/fwojciec/docmap"
)

// Run executes the chunk command.
func (c *ChunkCmd) Run(deps *Dependencies) error {
	tree, _, err := loadTree(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	chunker, err := docmap.NewChunker(tree, c.Budget)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	if c.Count {
		fmt.Fprintf(deps.Stdout, "%d chunks at budget %d.\n", chunker.Count(), c.Budget)
		return nil
	}

	if c.Number < 1 {
		fmt.Fprintf(deps.Stderr, "error: chunk number required (or --count for the total)\n")
		return docmap.Errorf(docmap.EINVALID, "chunk number required")
	}

	chunk, err := chunker.Chunk(c.Number)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Chunk %d/%d [%d-%d), %d sections:\n\n%s\n",
		chunk.SequenceNumber, chunker.Count(), chunk.Range.Start, chunk.Range.End,
		len(chunk.SectionIDs), chunk.Content)
	return nil
}
