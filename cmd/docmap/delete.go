package main

import (
	"fmt"

	"github.com/fwojciec/docmap"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: deleting removes the document and its section snapshot. Re-run with --force to confirm.\n")
		return docmap.Errorf(docmap.EINVALID, "deletion requires --force")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %s.\n", c.ID)
	return nil
}
