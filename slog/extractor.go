// Package slog provides logging decorators for docmap interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docmap"
)

// Ensure LoggingExtractor implements docmap.HeadingExtractor.
var _ docmap.HeadingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a HeadingExtractor with timing and result logging.
type LoggingExtractor struct {
	next   docmap.HeadingExtractor
	format docmap.Format
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docmap.HeadingExtractor, format docmap.Format, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, format: format, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(content string) []docmap.Heading {
	begin := time.Now()
	headings := e.next.Extract(content)
	e.logger.Info("heading extraction",
		"format", string(e.format),
		"bytes", len(content),
		"headings", len(headings),
		"duration", time.Since(begin),
	)
	return headings
}

// Ensure LoggingRegistry implements docmap.ExtractorRegistry.
var _ docmap.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry so every extractor it hands
// out logs its extractions.
type LoggingRegistry struct {
	next   docmap.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next docmap.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(format docmap.Format, x docmap.HeadingExtractor) {
	r.next.Register(format, x)
}

// Get returns the registered extractor wrapped with logging.
func (r *LoggingRegistry) Get(format docmap.Format) docmap.HeadingExtractor {
	return NewLoggingExtractor(r.next.Get(format), format, r.logger)
}
