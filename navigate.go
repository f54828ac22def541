package docmap

import "strings"

// MatchMode selects how FindByTitle compares titles against the query.
type MatchMode string

// Supported title match modes.
const (
	MatchExact     MatchMode = "exact"
	MatchSubstring MatchMode = "substring"
	MatchPrefix    MatchMode = "prefix"
)

// Valid returns true if m is a known match mode.
func (m MatchMode) Valid() bool {
	switch m {
	case MatchExact, MatchSubstring, MatchPrefix:
		return true
	}
	return false
}

// TOCNode is one entry of a rendered table of contents, pruned to a maximum
// depth and preserving document order at every level.
type TOCNode struct {
	Path     string     `json:"path"`
	Title    string     `json:"title"`
	Depth    int        `json:"depth"`
	Children []*TOCNode `json:"children,omitempty"`
}

// TitleIndex answers probabilistic title membership. A negative answer is
// definitive; a positive answer may be a false positive, so it only gates
// the scan, never replaces it.
type TitleIndex interface {
	Add(title string)
	Test(title string) bool
}

// Navigator is a read-only query layer over a fully-built tree: table of
// contents, title search, and relational traversal. It holds no mutable
// state and is safe for unsynchronized concurrent use.
type Navigator struct {
	tree   *Tree
	titles TitleIndex
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithTitleIndex installs a title membership index (typically a Bloom
// filter) that short-circuits exact-mode searches for absent titles. The
// index is populated with every section title at construction.
func WithTitleIndex(idx TitleIndex) NavigatorOption {
	return func(n *Navigator) { n.titles = idx }
}

// NewNavigator creates a Navigator over a built tree.
func NewNavigator(tree *Tree, opts ...NavigatorOption) *Navigator {
	n := &Navigator{tree: tree}
	for _, opt := range opts {
		opt(n)
	}
	if n.titles != nil {
		for _, sec := range tree.Sections() {
			n.titles.Add(strings.ToLower(sec.Title))
		}
	}
	return n
}

// TableOfContents renders the section forest as a tree of
// {path, title, depth} nodes, pruned to maxDepth levels.
// Returns EINVALID if maxDepth is zero or negative.
func (n *Navigator) TableOfContents(maxDepth int) ([]*TOCNode, error) {
	if maxDepth < 1 {
		return nil, Errorf(EINVALID, "table of contents depth must be positive, got %d", maxDepth)
	}
	return n.tocLevel(n.tree.Roots(), maxDepth), nil
}

func (n *Navigator) tocLevel(secs []*Section, remaining int) []*TOCNode {
	nodes := make([]*TOCNode, len(secs))
	for i, sec := range secs {
		node := &TOCNode{
			Path:  sec.Path.String(),
			Title: sec.Title,
			Depth: sec.Depth,
		}
		if remaining > 1 && len(sec.ChildIDs) > 0 {
			children, _ := n.tree.Children(sec.ID)
			node.Children = n.tocLevel(children, remaining-1)
		}
		nodes[i] = node
	}
	return nodes
}

// FindByTitle returns sections whose title matches the query under the
// given mode, case-insensitively, in document order. No relevance ranking
// is computed; scoring belongs to an external search engine.
func (n *Navigator) FindByTitle(query string, mode MatchMode) ([]*Section, error) {
	if !mode.Valid() {
		return nil, Errorf(EINVALID, "unknown match mode %q", mode)
	}
	q := strings.ToLower(query)

	// Definitive negative from the title index skips the scan entirely.
	if mode == MatchExact && n.titles != nil && !n.titles.Test(q) {
		return nil, nil
	}

	var matches []*Section
	for _, sec := range n.tree.Sections() {
		title := strings.ToLower(sec.Title)
		var ok bool
		switch mode {
		case MatchExact:
			ok = title == q
		case MatchPrefix:
			ok = strings.HasPrefix(title, q)
		case MatchSubstring:
			ok = strings.Contains(title, q)
		}
		if ok {
			matches = append(matches, sec)
		}
	}
	return matches, nil
}

// Ancestors returns a section's ancestry ordered from root to immediate
// parent. Top-level sections return an empty list.
func (n *Navigator) Ancestors(id int) ([]*Section, error) {
	sec, err := n.tree.SectionByID(id)
	if err != nil {
		return nil, err
	}
	var ancestors []*Section
	for sec.ParentID != 0 {
		sec = n.tree.sections[sec.ParentID-1]
		ancestors = append(ancestors, sec)
	}
	// Collected child-to-root; reverse to root-to-parent order.
	for i, j := 0, len(ancestors)-1; i < j; i, j = i+1, j-1 {
		ancestors[i], ancestors[j] = ancestors[j], ancestors[i]
	}
	return ancestors, nil
}

// Siblings returns the sections sharing the given section's parent,
// excluding the section itself, in document order.
func (n *Navigator) Siblings(id int) ([]*Section, error) {
	sec, err := n.tree.SectionByID(id)
	if err != nil {
		return nil, err
	}
	var ids []int
	if sec.ParentID == 0 {
		ids = n.tree.roots
	} else {
		ids = n.tree.sections[sec.ParentID-1].ChildIDs
	}
	siblings := make([]*Section, 0, len(ids)-1)
	for _, sid := range ids {
		if sid != id {
			siblings = append(siblings, n.tree.sections[sid-1])
		}
	}
	return siblings, nil
}

// Children returns a section's direct children in document order.
func (n *Navigator) Children(id int) ([]*Section, error) {
	return n.tree.Children(id)
}

// Subtree returns the section itself plus every descendant, pre-order.
func (n *Navigator) Subtree(id int) ([]*Section, error) {
	sec, err := n.tree.SectionByID(id)
	if err != nil {
		return nil, err
	}
	var out []*Section
	var walk func(*Section)
	walk = func(s *Section) {
		out = append(out, s)
		for _, cid := range s.ChildIDs {
			walk(n.tree.sections[cid-1])
		}
	}
	walk(sec)
	return out, nil
}
