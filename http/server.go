// Package http provides the JSON protocol server over docmap services.
// The server owns no parsing logic of its own: it loads documents, restores
// or builds their trees, and exposes navigation and chunking as endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/docmap"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docmap.
type Server struct {
	router     chi.Router
	docs       docmap.DocumentService
	sections   docmap.SectionService
	extractors docmap.ExtractorRegistry
	logger     *slog.Logger
}

// NewServer creates and configures the HTTP server. The section service is
// optional; without it every request builds the tree from raw content.
func NewServer(docs docmap.DocumentService, sections docmap.SectionService, extractors docmap.ExtractorRegistry, logger *slog.Logger) *Server {
	s := &Server{
		docs:       docs,
		sections:   sections,
		extractors: extractors,
		logger:     logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api/documents", func(r chi.Router) {
		r.Get("/", s.handleListDocuments)
		r.Post("/", s.handleCreateDocument)
		r.Route("/{docID}", func(r chi.Router) {
			r.Delete("/", s.handleDeleteDocument)
			r.Get("/toc", s.handleTOC)
			r.Get("/search", s.handleSearch)
			r.Get("/sections/{path}", s.handleSection)
			r.Get("/sections/{path}/{relation}", s.handleNavigate)
			r.Get("/chunks", s.handleChunkInfo)
			r.Get("/chunks/{n}", s.handleChunk)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// treeFor loads the document and its tree, preferring a stored section
// snapshot over a fresh parse.
func (s *Server) treeFor(r *http.Request) (*docmap.Tree, *docmap.Document, error) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "docID"))
	if err != nil {
		return nil, nil, err
	}
	if s.sections != nil {
		if tree, err := s.sections.LoadTree(r.Context(), doc); err == nil {
			return tree, doc, nil
		}
	}
	x := s.extractors.Get(doc.Format)
	return docmap.BuildTree(doc.ID, doc.Content, x.Extract(doc.Content)), doc, nil
}
