package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docmap"
	"github.com/fwojciec/docmap/goldmark"
	dochtml "github.com/fwojciec/docmap/html"
	"github.com/fwojciec/docmap/htmltomarkdown"
	docslog "github.com/fwojciec/docmap/slog"
	"github.com/fwojciec/docmap/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Documents docmap.DocumentService
	Sections  docmap.SectionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmap"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docmap --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCMAP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Documents = sqlite.NewDocumentService(m.DB)
	m.Sections = sqlite.NewSectionService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.Documents
	deps.Sections = m.Sections
	deps.Extractors = docslog.NewLoggingRegistry(newExtractors(), deps.Logger)
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// newExtractors builds the format-to-extractor registry. Plain text has no
// headings, so the fallback extractor yields the single-root tree.
func newExtractors() docmap.ExtractorRegistry {
	extractors := docmap.NewExtractors(docmap.NopExtractor{})
	extractors.Register(docmap.FormatHTML, dochtml.NewExtractor())
	extractors.Register(docmap.FormatMarkdown, goldmark.NewExtractor())
	return extractors
}

func defaultDBPath() string {
	if path := os.Getenv("DOCMAP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docmap.db"
	}
	dir := filepath.Join(home, ".docmap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docmap.db")
}
