package docmap

import (
	"regexp"
	"strconv"
	"strings"
)

// Span is a half-open [Start, End) character-offset range into a document's
// content. A section's span covers the section's own text only, excluding
// descendant sections' spans.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Intersects returns true if the two spans share at least one character.
// Empty spans intersect nothing.
func (s Span) Intersects(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Path identifies a section's position in the tree as a sequence of 1-based
// sibling indices, rendered as dot-joined integers (e.g. "2.1.3"). Paths are
// unique within a document and stable for a given parse of a given content
// snapshot.
type Path []int

// pathRe validates path syntax before lookup. Malformed path strings are an
// EINVALID error, distinct from a well-formed path that is simply absent.
var pathRe = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ParsePath parses a dot-joined path string.
// Returns EINVALID if the string is not of the form "1.2.3".
func ParsePath(s string) (Path, error) {
	if !pathRe.MatchString(s) {
		return nil, Errorf(EINVALID, "invalid section path %q", s)
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid section path %q", s)
		}
		p[i] = n
	}
	return p, nil
}

// String renders the path as dot-joined integers.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare compares two paths segment-wise numerically. The result agrees
// with document order for any two sections of the same tree: a parent sorts
// before its children, earlier siblings before later ones.
func (p Path) Compare(o Path) int {
	for i := 0; i < len(p) && i < len(o); i++ {
		if p[i] != o[i] {
			if p[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(p) < len(o):
		return -1
	case len(p) > len(o):
		return 1
	}
	return 0
}

// child returns a copy of p extended with index n.
func (p Path) child(n int) Path {
	c := make(Path, len(p)+1)
	copy(c, p)
	c[len(p)] = n
	return c
}

// Section is a node in the per-document forest: one heading-delimited region
// of a document. IDs are process-local (a monotonic counter starting at 1),
// not persistent identity; paths are the stable handle.
type Section struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`

	// Depth is the 1-based nesting depth as resolved by the tree builder.
	// It is independent of the raw heading level: a jump from H1 straight
	// to H3 still yields depth 2.
	Depth int  `json:"depth"`
	Path  Path `json:"path"`

	// Span covers this section's own text only.
	Span Span `json:"span"`

	// ParentID is 0 for top-level sections.
	ParentID int   `json:"parentId"`
	ChildIDs []int `json:"childIds"`

	// OrderIndex is the section's pre-order traversal position, used as the
	// stable document-order tie-break independent of path string comparison.
	OrderIndex int `json:"orderIndex"`
}
