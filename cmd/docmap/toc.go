package main

import (
	"fmt"

	"github.com/fwojciec/docmap"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	tree, doc, err := loadTree(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	nav := docmap.NewNavigator(tree)
	toc, err := nav.TableOfContents(c.Depth)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n", doc.Title)
	if tree.Empty() {
		fmt.Fprintln(deps.Stdout, "(document has no content)")
		return nil
	}
	fmt.Fprint(deps.Stdout, docmap.FormatTOC(toc))
	return nil
}
