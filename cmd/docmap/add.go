package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docmap"
	"github.com/fwojciec/docmap/goquery"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %q: %s\n", c.File, err)
		return err
	}
	content := string(data)

	format := docmap.Format(c.Format)
	if format == "" {
		format = docmap.FormatFromPath(c.File)
	}

	title := c.Title
	if title == "" && format == docmap.FormatHTML {
		if t, err := goquery.Title(content); err == nil && t != "" {
			title = t
		}
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
	}

	doc := &docmap.Document{
		Title:   title,
		Format:  format,
		Content: content,
	}
	if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	x := deps.Extractors.Get(doc.Format)
	tree := docmap.BuildTree(doc.ID, doc.Content, x.Extract(doc.Content))
	if err := deps.Sections.SaveSections(deps.Ctx, tree); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmap.ErrorMessage(err))
		return err
	}

	if tree.Empty() {
		fmt.Fprintf(deps.Stdout, "Added %q (%s) with no content.\n", title, doc.ID)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Added %q (%s): %d sections.\n", title, doc.ID, tree.Len())
	return nil
}
