package docmap

import (
	"sort"
	"strings"
)

// Tree is the section store for one document: an immutable arena of Section
// nodes indexed by id, with path and parent/child references as indices
// rather than pointers so a fully-built tree is trivially shareable across
// concurrent readers. Construction is single-pass and must complete before
// any query; after that no method mutates state.
type Tree struct {
	documentID string
	content    string
	sections   []*Section     // arena; section id == index+1 == OrderIndex+1
	byPath     map[string]int // path string -> section id
	roots      []int
	preamble   Span // content before the first heading, owned by no section
	empty      bool
}

type stackFrame struct {
	level int // raw heading level, 1..6
	id    int
}

// BuildTree consumes a heading event sequence once and constructs the
// complete section forest for a document.
//
// The builder maintains a stack of open ancestry. For each heading it pops
// frames whose raw level is >= the incoming level, attaches the new section
// under the surviving top (or as a new root), and resolves depth from the
// stack size, which collapses raw-level skips: H1 followed directly by H3
// yields depth 2, never 3. The previous section's span closes at the new
// heading's offset, so in document order the sections' own spans tile the
// content after the preamble exactly.
//
// Building never fails. Out-of-order or out-of-bounds offsets are clamped,
// out-of-range levels are clamped to 1..6, and an empty heading sequence
// degrades to a single synthesized root spanning the whole content.
func BuildTree(documentID, content string, headings []Heading) *Tree {
	t := &Tree{
		documentID: documentID,
		content:    content,
		byPath:     make(map[string]int),
		empty:      content == "",
	}

	if len(headings) == 0 {
		root := &Section{
			ID:         1,
			DocumentID: documentID,
			Depth:      1,
			Path:       Path{1},
			Span:       Span{Start: 0, End: len(content)},
		}
		t.sections = []*Section{root}
		t.roots = []int{1}
		t.byPath["1"] = 1
		return t
	}

	var stack []stackFrame
	prevOffset := 0

	for _, h := range headings {
		level := min(max(h.Level, 1), 6)
		offset := min(max(h.Offset, prevOffset), len(content))
		prevOffset = offset

		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}

		sec := &Section{
			ID:         len(t.sections) + 1,
			DocumentID: documentID,
			Title:      strings.TrimSpace(h.Title),
			Depth:      len(stack) + 1,
			Span:       Span{Start: offset, End: len(content)},
			OrderIndex: len(t.sections),
		}
		if len(stack) > 0 {
			parent := t.sections[stack[len(stack)-1].id-1]
			sec.ParentID = parent.ID
			sec.Path = parent.Path.child(len(parent.ChildIDs) + 1)
			parent.ChildIDs = append(parent.ChildIDs, sec.ID)
		} else {
			sec.Path = Path{len(t.roots) + 1}
			t.roots = append(t.roots, sec.ID)
		}

		// Close the previously open section's own span at this heading.
		if len(t.sections) > 0 {
			t.sections[len(t.sections)-1].Span.End = offset
		}

		t.sections = append(t.sections, sec)
		t.byPath[sec.Path.String()] = sec.ID
		stack = append(stack, stackFrame{level: level, id: sec.ID})
	}

	t.preamble = Span{Start: 0, End: t.sections[0].Span.Start}
	return t
}

// RestoreTree reassembles a tree from a persisted section snapshot without
// reparsing the raw content. The snapshot must describe the same content
// string it was taken from; RestoreTree revalidates the structural
// invariants and returns EINVALID if the snapshot cannot partition the
// content losslessly.
func RestoreTree(documentID, content string, sections []*Section) (*Tree, error) {
	if len(sections) == 0 {
		return nil, Errorf(EINVALID, "section snapshot is empty")
	}

	ordered := make([]*Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	t := &Tree{
		documentID: documentID,
		content:    content,
		sections:   ordered,
		byPath:     make(map[string]int, len(ordered)),
		empty:      content == "",
	}

	for i, sec := range ordered {
		if sec.ID != i+1 || sec.OrderIndex != i {
			return nil, Errorf(EINVALID, "section ids are not contiguous in document order")
		}
		if len(sec.Path) == 0 {
			return nil, Errorf(EINVALID, "section %d has no path", sec.ID)
		}
		key := sec.Path.String()
		if _, ok := t.byPath[key]; ok {
			return nil, Errorf(EINVALID, "duplicate section path %q", key)
		}
		t.byPath[key] = sec.ID

		// Own spans tile the content: each section starts where the
		// previous one ends, and the last one ends at content end.
		if i > 0 && sec.Span.Start != ordered[i-1].Span.End {
			return nil, Errorf(EINVALID, "section spans do not partition content")
		}
		if sec.Span.End < sec.Span.Start || sec.Span.End > len(content) {
			return nil, Errorf(EINVALID, "section %d span out of bounds", sec.ID)
		}

		// Rebuild child lists from parent references in document order.
		sec.ChildIDs = nil
		if sec.ParentID == 0 {
			t.roots = append(t.roots, sec.ID)
		} else {
			if sec.ParentID < 1 || sec.ParentID > i {
				return nil, Errorf(EINVALID, "section %d references unknown parent %d", sec.ID, sec.ParentID)
			}
			parent := ordered[sec.ParentID-1]
			if sec.Depth != parent.Depth+1 {
				return nil, Errorf(EINVALID, "section %d depth %d does not follow parent depth %d", sec.ID, sec.Depth, parent.Depth)
			}
			parent.ChildIDs = append(parent.ChildIDs, sec.ID)
		}
	}

	if last := ordered[len(ordered)-1]; last.Span.End != len(content) {
		return nil, Errorf(EINVALID, "section spans do not cover content end")
	}

	t.preamble = Span{Start: 0, End: ordered[0].Span.Start}
	return t, nil
}

// DocumentID returns the owning document's id.
func (t *Tree) DocumentID() string { return t.documentID }

// Content returns the original content string the tree was built from.
func (t *Tree) Content() string { return t.content }

// Empty reports whether the document had zero-length content. Empty content
// still yields one synthesized section, so callers use this flag to
// distinguish "no content" from "one section".
func (t *Tree) Empty() bool { return t.empty }

// Preamble returns the span of content before the first heading. It is
// owned by no section; together with the sections' own spans it covers the
// full document exactly.
func (t *Tree) Preamble() Span { return t.preamble }

// Len returns the number of sections in the tree.
func (t *Tree) Len() int { return len(t.sections) }

// Sections returns every section in document (pre-order) order.
// The returned slice is shared and must not be modified.
func (t *Tree) Sections() []*Section { return t.sections }

// Roots returns the top-level sections in document order.
func (t *Tree) Roots() []*Section {
	roots := make([]*Section, len(t.roots))
	for i, id := range t.roots {
		roots[i] = t.sections[id-1]
	}
	return roots
}

// SectionByID retrieves a section by id.
// Returns ENOTFOUND if no such section exists.
func (t *Tree) SectionByID(id int) (*Section, error) {
	if id < 1 || id > len(t.sections) {
		return nil, Errorf(ENOTFOUND, "section %d not found", id)
	}
	return t.sections[id-1], nil
}

// SectionByPath retrieves a section by its dot-path string (exact match).
// Returns EINVALID for malformed path syntax and ENOTFOUND for a well-formed
// path that is not present.
func (t *Tree) SectionByPath(path string) (*Section, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	id, ok := t.byPath[p.String()]
	if !ok {
		return nil, Errorf(ENOTFOUND, "section %q not found", path)
	}
	return t.sections[id-1], nil
}

// Children returns a section's direct children in document order.
// Leaves return an empty list, not an error.
func (t *Tree) Children(id int) ([]*Section, error) {
	sec, err := t.SectionByID(id)
	if err != nil {
		return nil, err
	}
	children := make([]*Section, len(sec.ChildIDs))
	for i, cid := range sec.ChildIDs {
		children[i] = t.sections[cid-1]
	}
	return children, nil
}

// SectionContent returns the section's own span text, excluding descendant
// sections' text.
func (t *Tree) SectionContent(id int) (string, error) {
	sec, err := t.SectionByID(id)
	if err != nil {
		return "", err
	}
	return t.content[sec.Span.Start:sec.Span.End], nil
}
