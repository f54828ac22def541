package goquery_test

import (
	"testing"

	"github.com/fwojciec/docmap/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers the title element", func(t *testing.T) {
		t.Parallel()

		title, err := goquery.Title(`<html><head><title>Page Title</title><meta property="og:title" content="OG Title"></head><body><h1>Heading</h1></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Page Title", title)
	})

	t.Run("falls back to og:title", func(t *testing.T) {
		t.Parallel()

		title, err := goquery.Title(`<html><head><meta property="og:title" content="OG Title"></head><body><h1>Heading</h1></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "OG Title", title)
	})

	t.Run("falls back to first h1", func(t *testing.T) {
		t.Parallel()

		title, err := goquery.Title(`<body><h1>  Heading  </h1><h1>Second</h1></body>`)
		require.NoError(t, err)
		assert.Equal(t, "Heading", title)
	})

	t.Run("empty title element is skipped", func(t *testing.T) {
		t.Parallel()

		title, err := goquery.Title(`<head><title>   </title></head><body><h1>Heading</h1></body>`)
		require.NoError(t, err)
		assert.Equal(t, "Heading", title)
	})

	t.Run("no candidates yields empty string", func(t *testing.T) {
		t.Parallel()

		title, err := goquery.Title(`<p>nothing here</p>`)
		require.NoError(t, err)
		assert.Equal(t, "", title)
	})
}
