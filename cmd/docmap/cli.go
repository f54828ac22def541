package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docmap"
	"github.com/fwojciec/docmap/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	DB         *sqlite.DB
	Documents  docmap.DocumentService
	Sections   docmap.SectionService
	Extractors docmap.ExtractorRegistry
	Converter  docmap.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging to stderr"`

	Add     AddCmd     `cmd:"" help:"Register a document from a file and build its section tree"`
	List    ListCmd    `cmd:"" help:"List registered documents"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a document and its section snapshot"`
	Toc     TocCmd     `cmd:"" help:"Show a document's table of contents"`
	Section SectionCmd `cmd:"" help:"Show a section's content"`
	Find    FindCmd    `cmd:"" help:"Find sections by title"`
	Nav     NavCmd     `cmd:"" help:"List sections related to a section"`
	Chunk   ChunkCmd   `cmd:"" help:"Read a document in size-bounded chunks"`
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	File   string `arg:"" help:"Path to the content file"`
	Title  string `short:"t" help:"Document title (sniffed from HTML metadata or filename if omitted)"`
	Format string `short:"f" enum:",html,markdown,text" default:"" help:"Content format (guessed from extension if omitted)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Depth int    `short:"d" default:"6" help:"Maximum depth to show"`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	ID       string `arg:"" help:"Document ID"`
	Path     string `arg:"" help:"Section path (e.g. 1.2.3)"`
	Subtree  bool   `short:"s" help:"Include descendant sections' content"`
	Markdown bool   `short:"m" help:"Convert HTML content to markdown for display"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Query string `arg:"" help:"Title text to search for"`
	Mode  string `default:"substring" enum:"exact,substring,prefix" help:"Match mode"`
}

// NavCmd is the "nav" subcommand.
type NavCmd struct {
	ID       string `arg:"" help:"Document ID"`
	Path     string `arg:"" help:"Section path"`
	Relation string `arg:"" enum:"ancestors,siblings,children,subtree" help:"Relation to list"`
}

// ChunkCmd is the "chunk" subcommand.
type ChunkCmd struct {
	ID     string `arg:"" help:"Document ID"`
	Number int    `arg:"" optional:"" help:"1-based chunk number"`
	Budget int    `short:"b" required:"" help:"Chunk size budget in characters"`
	Count  bool   `short:"c" help:"Print the chunk count instead of a chunk"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

// loadTree loads a document and its tree, preferring the stored section
// snapshot over a fresh parse.
func loadTree(deps *Dependencies, docID string) (*docmap.Tree, *docmap.Document, error) {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, docID)
	if err != nil {
		return nil, nil, err
	}
	if tree, err := deps.Sections.LoadTree(deps.Ctx, doc); err == nil {
		return tree, doc, nil
	}
	x := deps.Extractors.Get(doc.Format)
	return docmap.BuildTree(doc.ID, doc.Content, x.Extract(doc.Content)), doc, nil
}
