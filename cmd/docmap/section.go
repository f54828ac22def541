package main

import (
	"fmt"

	"github.com/fwojciec/docmap"
)

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	tree, doc, err := loadTree(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	sec, err := tree.SectionByPath(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	content := tree.Content()[sec.Span.Start:sec.Span.End]
	if c.Subtree {
		nav := docmap.NewNavigator(tree)
		subtree, _ := nav.Subtree(sec.ID)
		last := subtree[len(subtree)-1]
		content = tree.Content()[sec.Span.Start:last.Span.End]
	}

	if c.Markdown && doc.Format == docmap.FormatHTML {
		converted, err := deps.Converter.Convert(content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
			return err
		}
		content = converted
	}

	title := sec.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(deps.Stdout, "%s  %s (depth %d)\n\n%s\n", sec.Path, title, sec.Depth, content)

	children, _ := tree.Children(sec.ID)
	if len(children) > 0 {
		fmt.Fprintf(deps.Stdout, "\nSubsections:\n%s\n", docmap.FormatSections(children))
	}
	return nil
}
