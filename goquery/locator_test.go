package goquery_test

import (
	"testing"

	"github.com/ibehnam/webpage-fonts-downloader/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorLocate(t *testing.T) {
	t.Parallel()

	t.Run("finds stylesheet links and inline styles in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<link rel="stylesheet" href="/css/main.css">
	<link rel="preload stylesheet" href="/css/fonts.css">
	<style>@font-face { font-family: A; src: url(a.woff2); }</style>
	<link type="text/css" href="/css/legacy.css">
	<style>body { color: red; }</style>
</head>
</html>`

		sources, err := goquery.NewLocator().Locate(html, "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/css/main.css",
			"https://example.com/css/fonts.css",
			"https://example.com/css/legacy.css",
		}, sources.StylesheetURLs)
		require.Len(t, sources.InlineBlocks, 2)
		assert.Contains(t, sources.InlineBlocks[0], "@font-face")
	})

	t.Run("resolves protocol-relative root-relative and relative hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<link rel="stylesheet" href="//cdn.example.net/lib.css">
	<link rel="stylesheet" href="/root.css">
	<link rel="stylesheet" href="nested/rel.css">
</head></html>`

		sources, err := goquery.NewLocator().Locate(html, "https://example.com/blog/post")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://cdn.example.net/lib.css",
			"https://example.com/root.css",
			"https://example.com/blog/nested/rel.css",
		}, sources.StylesheetURLs)
	})

	t.Run("deduplicates links matched by both selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<link rel="stylesheet" type="text/css" href="/main.css">
</head></html>`

		sources, err := goquery.NewLocator().Locate(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/main.css"}, sources.StylesheetURLs)
	})

	t.Run("skips empty and non-fetchable hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<link rel="stylesheet" href="">
	<link rel="stylesheet" href="data:text/css,body{}">
	<link rel="stylesheet" href="javascript:void(0)">
	<link rel="stylesheet" href="/good.css">
</head></html>`

		sources, err := goquery.NewLocator().Locate(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/good.css"}, sources.StylesheetURLs)
	})

	t.Run("tolerates malformed HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="stylesheet" href="/a.css"<style>p {}</head>`

		sources, err := goquery.NewLocator().Locate(html, "https://example.com")

		require.NoError(t, err)
		assert.NotNil(t, sources)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		t.Parallel()

		sources, err := goquery.NewLocator().Locate("", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, sources.StylesheetURLs)
		assert.Empty(t, sources.InlineBlocks)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLocator().Locate("<html></html>", "://bad")

		require.Error(t, err)
	})
}
