package main

import (
	"fmt"

	"github.com/fwojciec/docmap"
)

// Run executes the nav command.
func (c *NavCmd) Run(deps *Dependencies) error {
	tree, _, err := loadTree(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	sec, err := tree.SectionByPath(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	nav := docmap.NewNavigator(tree)
	var related []*docmap.Section
	switch c.Relation {
	case "ancestors":
		related, err = nav.Ancestors(sec.ID)
	case "siblings":
		related, err = nav.Siblings(sec.ID)
	case "children":
		related, err = nav.Children(sec.ID)
	case "subtree":
		related, err = nav.Subtree(sec.ID)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	if len(related) == 0 {
		fmt.Fprintf(deps.Stdout, "No %s for section %s.\n", c.Relation, c.Path)
		return nil
	}
	fmt.Fprintln(deps.Stdout, docmap.FormatSections(related))
	return nil
}
