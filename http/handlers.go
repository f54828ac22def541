package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/docmap"
	"github.com/go-chi/chi/v5"
)

// defaultTOCDepth applies when the depth query parameter is absent. Six
// levels covers everything a heading extractor can produce.
const defaultTOCDepth = 6

// sectionSummary is the JSON shape for a section without its content.
type sectionSummary struct {
	ID    int    `json:"id"`
	Path  string `json:"path"`
	Title string `json:"title"`
	Depth int    `json:"depth"`
}

func summarize(sec *docmap.Section) sectionSummary {
	return sectionSummary{
		ID:    sec.ID,
		Path:  sec.Path.String(),
		Title: sec.Title,
		Depth: sec.Depth,
	}
}

func summarizeAll(secs []*docmap.Section) []sectionSummary {
	out := make([]sectionSummary, len(secs))
	for i, sec := range secs {
		out[i] = summarize(sec)
	}
	return out
}

// documentSummary is the JSON shape for a document without its content.
type documentSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Format      string `json:"format"`
	ContentHash string `json:"contentHash"`
	CreatedAt   string `json:"createdAt"`
}

func summarizeDoc(doc *docmap.Document) documentSummary {
	return documentSummary{
		ID:          doc.ID,
		Title:       doc.Title,
		Format:      string(doc.Format),
		ContentHash: doc.ContentHash,
		CreatedAt:   doc.CreatedAt.Format(time.RFC3339),
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// errorStatusCode maps application error codes to HTTP status codes.
var errorStatusCode = map[string]int{
	docmap.EINVALID:  http.StatusBadRequest,
	docmap.ENOTFOUND: http.StatusNotFound,
	docmap.ERANGE:    http.StatusNotFound,
	docmap.ECONFLICT: http.StatusConflict,
	docmap.EINTERNAL: http.StatusInternalServerError,
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := docmap.ErrorCode(err)
	status, ok := errorStatusCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("internal error", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	s.respondJSON(w, status, map[string]string{"error": docmap.ErrorMessage(err)})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docs.FindDocuments(r.Context(), docmap.DocumentFilter{})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]documentSummary, len(docs))
	for i, doc := range docs {
		out[i] = summarizeDoc(doc)
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"documents": out})
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title   string `json:"title"`
		Format  string `json:"format"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.respondError(w, r, docmap.Errorf(docmap.EINVALID, "invalid request body: %v", err))
		return
	}

	doc := &docmap.Document{
		Title:   in.Title,
		Format:  docmap.Format(in.Format),
		Content: in.Content,
	}
	if err := s.docs.CreateDocument(r.Context(), doc); err != nil {
		s.respondError(w, r, err)
		return
	}

	x := s.extractors.Get(doc.Format)
	tree := docmap.BuildTree(doc.ID, doc.Content, x.Extract(doc.Content))
	if s.sections != nil {
		if err := s.sections.SaveSections(r.Context(), tree); err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	s.respondJSON(w, http.StatusCreated, map[string]any{
		"document":     summarizeDoc(doc),
		"sectionCount": tree.Len(),
		"empty":        tree.Empty(),
	})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.DeleteDocument(r.Context(), chi.URLParam(r, "docID")); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	tree, _, err := s.treeFor(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	depth := defaultTOCDepth
	if v := r.URL.Query().Get("depth"); v != "" {
		depth, err = strconv.Atoi(v)
		if err != nil {
			s.respondError(w, r, docmap.Errorf(docmap.EINVALID, "invalid depth %q", v))
			return
		}
	}

	nav := docmap.NewNavigator(tree)
	toc, err := nav.TableOfContents(depth)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"toc": toc, "empty": tree.Empty()})
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	tree, _, err := s.treeFor(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	sec, err := tree.SectionByPath(chi.URLParam(r, "path"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	content := tree.Content()[sec.Span.Start:sec.Span.End]
	if r.URL.Query().Get("subtree") == "1" {
		// A subtree's own spans are contiguous in document order, so the
		// concatenation is a single slice from the section's start to the
		// last descendant's end.
		nav := docmap.NewNavigator(tree)
		subtree, _ := nav.Subtree(sec.ID)
		last := subtree[len(subtree)-1]
		content = tree.Content()[sec.Span.Start:last.Span.End]
	}

	children, _ := tree.Children(sec.ID)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"section":  summarize(sec),
		"content":  content,
		"children": summarizeAll(children),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	tree, _, err := s.treeFor(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	mode := docmap.MatchMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = docmap.MatchSubstring
	}

	nav := docmap.NewNavigator(tree)
	matches, err := nav.FindByTitle(r.URL.Query().Get("q"), mode)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"sections": summarizeAll(matches)})
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	tree, _, err := s.treeFor(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	sec, err := tree.SectionByPath(chi.URLParam(r, "path"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	nav := docmap.NewNavigator(tree)
	var related []*docmap.Section
	switch relation := chi.URLParam(r, "relation"); relation {
	case "ancestors":
		related, err = nav.Ancestors(sec.ID)
	case "siblings":
		related, err = nav.Siblings(sec.ID)
	case "children":
		related, err = nav.Children(sec.ID)
	case "subtree":
		related, err = nav.Subtree(sec.ID)
	default:
		err = docmap.Errorf(docmap.EINVALID, "unknown relation %q", relation)
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"sections": summarizeAll(related)})
}

func (s *Server) budget(r *http.Request) (int, error) {
	v := r.URL.Query().Get("budget")
	if v == "" {
		return 0, docmap.Errorf(docmap.EINVALID, "budget query parameter is required")
	}
	budget, err := strconv.Atoi(v)
	if err != nil {
		return 0, docmap.Errorf(docmap.EINVALID, "invalid budget %q", v)
	}
	return budget, nil
}

func (s *Server) handleChunkInfo(w http.ResponseWriter, r *http.Request) {
	tree, _, err := s.treeFor(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	budget, err := s.budget(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	chunker, err := docmap.NewChunker(tree, budget)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"chunkCount": chunker.Count(),
		"budget":     budget,
		"empty":      tree.Empty(),
	})
}

func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	tree, _, err := s.treeFor(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	budget, err := s.budget(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.respondError(w, r, docmap.Errorf(docmap.EINVALID, "invalid chunk number %q", chi.URLParam(r, "n")))
		return
	}

	chunker, err := docmap.NewChunker(tree, budget)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	chunk, err := chunker.Chunk(n)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, chunk)
}
