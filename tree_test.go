package docmap_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioContent is a four-section document: H1 "Intro", H2 "Setup",
// H2 "Usage", H3 "Advanced".
const scenarioContent = "# Intro\nintro text\n## Setup\nsetup text\n## Usage\nusage text\n### Advanced\nadvanced text\n"

func scenarioHeadings(t *testing.T) []docmap.Heading {
	t.Helper()
	return []docmap.Heading{
		{Level: 1, Title: "Intro", Offset: 0},
		{Level: 2, Title: "Setup", Offset: strings.Index(scenarioContent, "## Setup")},
		{Level: 2, Title: "Usage", Offset: strings.Index(scenarioContent, "## Usage")},
		{Level: 3, Title: "Advanced", Offset: strings.Index(scenarioContent, "### Advanced")},
	}
}

func scenarioTree(t *testing.T) *docmap.Tree {
	t.Helper()
	return docmap.BuildTree("doc-1", scenarioContent, scenarioHeadings(t))
}

func TestBuildTree(t *testing.T) {
	t.Parallel()

	t.Run("assigns hierarchical paths", func(t *testing.T) {
		t.Parallel()

		tree := scenarioTree(t)

		require.Equal(t, 4, tree.Len())
		secs := tree.Sections()
		assert.Equal(t, "1", secs[0].Path.String())
		assert.Equal(t, "1.1", secs[1].Path.String())
		assert.Equal(t, "1.2", secs[2].Path.String())
		assert.Equal(t, "1.2.1", secs[3].Path.String())

		usage, err := tree.SectionByPath("1.2")
		require.NoError(t, err)
		advanced, err := tree.SectionByPath("1.2.1")
		require.NoError(t, err)
		assert.Equal(t, usage.ID, advanced.ParentID)
	})

	t.Run("compresses raw level skips to depth plus one", func(t *testing.T) {
		t.Parallel()

		content := "# A\ntext\n### B\ntext\n###### C\ntext\n"
		tree := docmap.BuildTree("doc-1", content, []docmap.Heading{
			{Level: 1, Title: "A", Offset: 0},
			{Level: 3, Title: "B", Offset: strings.Index(content, "### B")},
			{Level: 6, Title: "C", Offset: strings.Index(content, "###### C")},
		})

		secs := tree.Sections()
		assert.Equal(t, 1, secs[0].Depth)
		assert.Equal(t, 2, secs[1].Depth)
		assert.Equal(t, 3, secs[2].Depth)
		assert.Equal(t, "1.1.1", secs[2].Path.String())
	})

	t.Run("child depth always follows parent depth", func(t *testing.T) {
		t.Parallel()

		tree := scenarioTree(t)

		for _, sec := range tree.Sections() {
			if sec.ParentID == 0 {
				assert.Equal(t, 1, sec.Depth)
				continue
			}
			parent, err := tree.SectionByID(sec.ParentID)
			require.NoError(t, err)
			assert.Equal(t, parent.Depth+1, sec.Depth)
		}
	})

	t.Run("sibling after deeper section pops the stack", func(t *testing.T) {
		t.Parallel()

		content := "# A\n## B\n### C\n## D\n# E\n"
		tree := docmap.BuildTree("doc-1", content, []docmap.Heading{
			{Level: 1, Title: "A", Offset: 0},
			{Level: 2, Title: "B", Offset: strings.Index(content, "## B")},
			{Level: 3, Title: "C", Offset: strings.Index(content, "### C")},
			{Level: 2, Title: "D", Offset: strings.Index(content, "## D")},
			{Level: 1, Title: "E", Offset: strings.Index(content, "# E")},
		})

		paths := make([]string, 0, tree.Len())
		for _, sec := range tree.Sections() {
			paths = append(paths, sec.Path.String())
		}
		assert.Equal(t, []string{"1", "1.1", "1.1.1", "1.2", "2"}, paths)
	})

	t.Run("synthesizes single root for heading-free content", func(t *testing.T) {
		t.Parallel()

		content := "Just some text\n\nWith paragraphs."
		tree := docmap.BuildTree("doc-1", content, nil)

		require.Equal(t, 1, tree.Len())
		root := tree.Sections()[0]
		assert.Equal(t, "1", root.Path.String())
		assert.Equal(t, 1, root.Depth)
		assert.Equal(t, docmap.Span{Start: 0, End: len(content)}, root.Span)
		assert.False(t, tree.Empty())
	})

	t.Run("flags empty content without erroring", func(t *testing.T) {
		t.Parallel()

		tree := docmap.BuildTree("doc-1", "", nil)

		require.Equal(t, 1, tree.Len())
		assert.True(t, tree.Empty())
		assert.Equal(t, docmap.Span{Start: 0, End: 0}, tree.Sections()[0].Span)
	})

	t.Run("keeps zero-length spans for back-to-back headings", func(t *testing.T) {
		t.Parallel()

		content := "## A\n## B\ntext\n"
		tree := docmap.BuildTree("doc-1", content, []docmap.Heading{
			{Level: 2, Title: "A", Offset: 0},
			{Level: 2, Title: "B", Offset: 0},
		})

		require.Equal(t, 2, tree.Len())
		assert.Equal(t, 0, tree.Sections()[0].Span.Len())
		assert.Equal(t, len(content), tree.Sections()[1].Span.Len())
	})

	t.Run("permits duplicate titles at different paths", func(t *testing.T) {
		t.Parallel()

		content := "# Example\n## Example\n"
		tree := docmap.BuildTree("doc-1", content, []docmap.Heading{
			{Level: 1, Title: "Example", Offset: 0},
			{Level: 2, Title: "Example", Offset: strings.Index(content, "## Example")},
		})

		require.Equal(t, 2, tree.Len())
		assert.Equal(t, "1", tree.Sections()[0].Path.String())
		assert.Equal(t, "1.1", tree.Sections()[1].Path.String())
	})

	t.Run("spans partition content losslessly", func(t *testing.T) {
		t.Parallel()

		content := "preamble\n" + scenarioContent
		headings := scenarioHeadings(t)
		for i := range headings {
			headings[i].Offset += len("preamble\n")
		}
		tree := docmap.BuildTree("doc-1", content, headings)

		var sb strings.Builder
		sb.WriteString(content[tree.Preamble().Start:tree.Preamble().End])
		for _, sec := range tree.Sections() {
			sb.WriteString(content[sec.Span.Start:sec.Span.End])
		}
		assert.Equal(t, content, sb.String())

		// No overlaps: each span starts where the previous ends.
		prevEnd := tree.Preamble().End
		for _, sec := range tree.Sections() {
			assert.Equal(t, prevEnd, sec.Span.Start)
			prevEnd = sec.Span.End
		}
		assert.Equal(t, len(content), prevEnd)
	})

	t.Run("path order agrees with document order", func(t *testing.T) {
		t.Parallel()

		content := "# A\n## B\n### C\n## D\n# E\n## F\n"
		tree := docmap.BuildTree("doc-1", content, []docmap.Heading{
			{Level: 1, Title: "A", Offset: 0},
			{Level: 2, Title: "B", Offset: strings.Index(content, "## B")},
			{Level: 3, Title: "C", Offset: strings.Index(content, "### C")},
			{Level: 2, Title: "D", Offset: strings.Index(content, "## D")},
			{Level: 1, Title: "E", Offset: strings.Index(content, "# E")},
			{Level: 2, Title: "F", Offset: strings.Index(content, "## F")},
		})

		secs := tree.Sections()
		for i := range secs {
			for j := range secs {
				pathCmp := secs[i].Path.Compare(secs[j].Path)
				switch {
				case secs[i].OrderIndex < secs[j].OrderIndex:
					assert.Equal(t, -1, pathCmp)
				case secs[i].OrderIndex > secs[j].OrderIndex:
					assert.Equal(t, 1, pathCmp)
				default:
					assert.Equal(t, 0, pathCmp)
				}
			}
		}
	})

	t.Run("clamps out-of-order offsets instead of failing", func(t *testing.T) {
		t.Parallel()

		content := "0123456789"
		tree := docmap.BuildTree("doc-1", content, []docmap.Heading{
			{Level: 1, Title: "A", Offset: 4},
			{Level: 2, Title: "B", Offset: 2}, // behind the previous heading
			{Level: 2, Title: "C", Offset: 99},
		})

		secs := tree.Sections()
		assert.Equal(t, 4, secs[0].Span.Start)
		assert.Equal(t, 4, secs[1].Span.Start)
		assert.Equal(t, len(content), secs[2].Span.Start)
	})
}

func TestTree_Lookups(t *testing.T) {
	t.Parallel()

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		tree := scenarioTree(t)

		sec, err := tree.SectionByID(2)
		require.NoError(t, err)
		assert.Equal(t, "Setup", sec.Title)

		_, err = tree.SectionByID(99)
		assert.Equal(t, docmap.ENOTFOUND, docmap.ErrorCode(err))
	})

	t.Run("by path distinguishes malformed from missing", func(t *testing.T) {
		t.Parallel()

		tree := scenarioTree(t)

		_, err := tree.SectionByPath("1.2.x")
		assert.Equal(t, docmap.EINVALID, docmap.ErrorCode(err))

		_, err = tree.SectionByPath("")
		assert.Equal(t, docmap.EINVALID, docmap.ErrorCode(err))

		_, err = tree.SectionByPath("9.9")
		assert.Equal(t, docmap.ENOTFOUND, docmap.ErrorCode(err))
	})

	t.Run("children of leaf is empty not error", func(t *testing.T) {
		t.Parallel()

		tree := scenarioTree(t)

		setup, err := tree.SectionByPath("1.1")
		require.NoError(t, err)
		children, err := tree.Children(setup.ID)
		require.NoError(t, err)
		assert.Empty(t, children)
	})

	t.Run("section content excludes descendants", func(t *testing.T) {
		t.Parallel()

		tree := scenarioTree(t)

		usage, err := tree.SectionByPath("1.2")
		require.NoError(t, err)
		content, err := tree.SectionContent(usage.ID)
		require.NoError(t, err)
		assert.Contains(t, content, "usage text")
		assert.NotContains(t, content, "advanced text")
	})
}

func TestRestoreTree(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a built tree", func(t *testing.T) {
		t.Parallel()

		built := scenarioTree(t)

		// Snapshot carries only the persisted fields; child lists are
		// rebuilt from parent references.
		snapshot := make([]*docmap.Section, 0, built.Len())
		for _, sec := range built.Sections() {
			snapshot = append(snapshot, &docmap.Section{
				ID:         sec.ID,
				DocumentID: sec.DocumentID,
				Title:      sec.Title,
				Depth:      sec.Depth,
				Path:       sec.Path,
				Span:       sec.Span,
				ParentID:   sec.ParentID,
				OrderIndex: sec.OrderIndex,
			})
		}

		restored, err := docmap.RestoreTree("doc-1", scenarioContent, snapshot)
		require.NoError(t, err)

		require.Equal(t, built.Len(), restored.Len())
		for i, want := range built.Sections() {
			got := restored.Sections()[i]
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Path.String(), got.Path.String())
			assert.Equal(t, want.Span, got.Span)
			assert.Equal(t, want.ChildIDs, got.ChildIDs)
		}
	})

	t.Run("rejects gapped spans", func(t *testing.T) {
		t.Parallel()

		_, err := docmap.RestoreTree("doc-1", "0123456789", []*docmap.Section{
			{ID: 1, Path: docmap.Path{1}, Depth: 1, Span: docmap.Span{Start: 0, End: 4}, OrderIndex: 0},
			{ID: 2, Path: docmap.Path{2}, Depth: 1, Span: docmap.Span{Start: 6, End: 10}, OrderIndex: 1},
		})
		assert.Equal(t, docmap.EINVALID, docmap.ErrorCode(err))
	})

	t.Run("rejects duplicate paths", func(t *testing.T) {
		t.Parallel()

		_, err := docmap.RestoreTree("doc-1", "0123456789", []*docmap.Section{
			{ID: 1, Path: docmap.Path{1}, Depth: 1, Span: docmap.Span{Start: 0, End: 4}, OrderIndex: 0},
			{ID: 2, Path: docmap.Path{1}, Depth: 1, Span: docmap.Span{Start: 4, End: 10}, OrderIndex: 1},
		})
		assert.Equal(t, docmap.EINVALID, docmap.ErrorCode(err))
	})

	t.Run("rejects empty snapshot", func(t *testing.T) {
		t.Parallel()

		_, err := docmap.RestoreTree("doc-1", "content", nil)
		assert.Equal(t, docmap.EINVALID, docmap.ErrorCode(err))
	})

	t.Run("rejects spans not covering content end", func(t *testing.T) {
		t.Parallel()

		_, err := docmap.RestoreTree("doc-1", "0123456789", []*docmap.Section{
			{ID: 1, Path: docmap.Path{1}, Depth: 1, Span: docmap.Span{Start: 0, End: 6}, OrderIndex: 0},
		})
		assert.Equal(t, docmap.EINVALID, docmap.ErrorCode(err))
	})
}
