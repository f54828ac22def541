package goldmark_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docmap"
	"github.com/fwojciec/docmap/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	x := goldmark.NewExtractor()

	t.Run("atx headings with levels and offsets", func(t *testing.T) {
		t.Parallel()

		content := "# Title\n\nbody\n\n## Section\n\nmore body\n\n### Sub\n"
		headings := x.Extract(content)
		require.Len(t, headings, 3)

		assert.Equal(t, docmap.Heading{Level: 1, Title: "Title", Offset: 0}, headings[0])
		assert.Equal(t, docmap.Heading{Level: 2, Title: "Section", Offset: strings.Index(content, "## Section")}, headings[1])
		assert.Equal(t, docmap.Heading{Level: 3, Title: "Sub", Offset: strings.Index(content, "### Sub")}, headings[2])
	})

	t.Run("ignores hashes inside fenced code blocks", func(t *testing.T) {
		t.Parallel()

		content := "# Real\n\n```\n# not a heading\n```\n\n## Also Real\n"
		headings := x.Extract(content)
		require.Len(t, headings, 2)
		assert.Equal(t, "Real", headings[0].Title)
		assert.Equal(t, "Also Real", headings[1].Title)
	})

	t.Run("setext headings", func(t *testing.T) {
		t.Parallel()

		content := "Title\n=====\n\nSection\n-------\n\nbody\n"
		headings := x.Extract(content)
		require.Len(t, headings, 2)

		assert.Equal(t, docmap.Heading{Level: 1, Title: "Title", Offset: 0}, headings[0])
		assert.Equal(t, 2, headings[1].Level)
		assert.Equal(t, "Section", headings[1].Title)
		assert.Equal(t, strings.Index(content, "Section"), headings[1].Offset)
	})

	t.Run("flattens inline markup in titles", func(t *testing.T) {
		t.Parallel()

		headings := x.Extract("## Using `docmap` with *style*\n")
		require.Len(t, headings, 1)
		assert.Equal(t, "Using docmap with style", headings[0].Title)
	})

	t.Run("textless heading owns its marker line", func(t *testing.T) {
		t.Parallel()

		content := "# A\nbody text\n##\nmore text\n"
		headings := x.Extract(content)
		require.Len(t, headings, 2)

		assert.Equal(t, docmap.Heading{Level: 1, Title: "A", Offset: 0}, headings[0])
		assert.Equal(t, docmap.Heading{Level: 2, Title: "", Offset: strings.Index(content, "##")}, headings[1])

		// The preceding section keeps its body up to the marker line.
		tree := docmap.BuildTree("doc-1", content, headings)
		got, err := tree.SectionContent(1)
		require.NoError(t, err)
		assert.Equal(t, "# A\nbody text\n", got)
	})

	t.Run("textless heading between body blocks", func(t *testing.T) {
		t.Parallel()

		content := "intro\n\n## First\n\nfirst body\n\n##\n\ntail body\n"
		headings := x.Extract(content)
		require.Len(t, headings, 2)

		assert.Equal(t, strings.Index(content, "## First"), headings[0].Offset)
		assert.Equal(t, strings.LastIndex(content, "##"), headings[1].Offset)
		assert.Equal(t, "", headings[1].Title)
	})

	t.Run("textless heading at end of input", func(t *testing.T) {
		t.Parallel()

		content := "# A\nbody\n##"
		headings := x.Extract(content)
		require.Len(t, headings, 2)
		assert.Equal(t, strings.LastIndex(content, "##"), headings[1].Offset)
	})

	t.Run("unicode titles keep byte offsets", func(t *testing.T) {
		t.Parallel()

		content := "préambule\n\n# Début\n\ntexte\n\n## Fin\n"
		headings := x.Extract(content)
		require.Len(t, headings, 2)

		assert.Equal(t, "Début", headings[0].Title)
		assert.Equal(t, strings.Index(content, "# Début"), headings[0].Offset)
		assert.Equal(t, strings.Index(content, "## Fin"), headings[1].Offset)
	})

	t.Run("offsets are monotonic and in bounds", func(t *testing.T) {
		t.Parallel()

		content := "# A\n## B\n# C\n### D\ntail\n"
		headings := x.Extract(content)
		require.Len(t, headings, 4)

		prev := -1
		for _, h := range headings {
			assert.Greater(t, h.Offset, prev)
			assert.Less(t, h.Offset, len(content))
			prev = h.Offset
		}
	})

	t.Run("no headings yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, x.Extract("plain text\nwith lines\n"))
		assert.Empty(t, x.Extract(""))
	})
}
