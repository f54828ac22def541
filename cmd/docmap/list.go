package main

import (
	"fmt"

	"github.com/fwojciec/docmap"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, docmap.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents registered. Use 'docmap add <file>' to add one.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents (%d total):\n\n", len(docs))
	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "  %s  %s (%s, %d bytes)\n", doc.ID, doc.Title, doc.Format, len(doc.Content))
	}
	return nil
}
