package main

import (
	"fmt"

	"github.com/fwojciec/docmap"
	"github.com/fwojciec/docmap/bloom"
)

// Title index sizing for exact-match short-circuiting.
const titleIndexFPRate = 0.01

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	tree, _, err := loadTree(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	idx := bloom.NewIndex(uint(tree.Len()), titleIndexFPRate)
	nav := docmap.NewNavigator(tree, docmap.WithTitleIndex(idx))

	matches, err := nav.FindByTitle(c.Query, docmap.MatchMode(c.Mode))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "No sections matching %q.\n", c.Query)
		return nil
	}
	fmt.Fprintln(deps.Stdout, docmap.FormatSections(matches))
	return nil
}
