package docmap_test

import (
	"testing"

	"github.com/fwojciec/docmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	t.Run("parses dot-joined integers", func(t *testing.T) {
		t.Parallel()

		p, err := docmap.ParsePath("2.1.3")
		require.NoError(t, err)
		assert.Equal(t, docmap.Path{2, 1, 3}, p)
		assert.Equal(t, "2.1.3", p.String())
	})

	t.Run("parses single segment", func(t *testing.T) {
		t.Parallel()

		p, err := docmap.ParsePath("1")
		require.NoError(t, err)
		assert.Equal(t, docmap.Path{1}, p)
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"", ".", "1.", ".1", "1..2", "a", "1.b", "1 .2", "-1", "1.2.3."} {
			_, err := docmap.ParsePath(s)
			assert.Equal(t, docmap.EINVALID, docmap.ErrorCode(err), "input %q", s)
		}
	})
}

func TestPath_Compare(t *testing.T) {
	t.Parallel()

	t.Run("numeric not lexicographic segments", func(t *testing.T) {
		t.Parallel()

		a := docmap.Path{2}
		b := docmap.Path{10}
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
	})

	t.Run("parent sorts before child", func(t *testing.T) {
		t.Parallel()

		parent := docmap.Path{1, 2}
		child := docmap.Path{1, 2, 1}
		assert.Equal(t, -1, parent.Compare(child))
		assert.Equal(t, 1, child.Compare(parent))
	})

	t.Run("equal paths compare zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, docmap.Path{1, 2, 3}.Compare(docmap.Path{1, 2, 3}))
	})
}

func TestSpan_Intersects(t *testing.T) {
	t.Parallel()

	a := docmap.Span{Start: 0, End: 10}
	assert.True(t, a.Intersects(docmap.Span{Start: 5, End: 15}))
	assert.True(t, a.Intersects(docmap.Span{Start: 9, End: 10}))
	assert.False(t, a.Intersects(docmap.Span{Start: 10, End: 20}))

	// Empty spans intersect nothing.
	assert.False(t, a.Intersects(docmap.Span{Start: 5, End: 5}))
}
