// Package goquery provides a goquery-based implementation of
// webfonts.SourceLocator for finding stylesheet references in HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

// Ensure Locator implements webfonts.SourceLocator at compile time.
var _ webfonts.SourceLocator = (*Locator)(nil)

// Locator finds external stylesheet URLs and inline style blocks in HTML.
// The underlying parser is lenient: malformed HTML yields partial results
// rather than an error.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate parses html and returns its stylesheet references (resolved
// against baseURL, in document order, deduplicated) and the text of its
// <style> elements in document order.
func (l *Locator) Locate(html string, baseURL string) (*webfonts.StyleSources, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, webfonts.Errorf(webfonts.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webfonts.Errorf(webfonts.EINVALID, "failed to parse HTML: %v", err)
	}

	sources := &webfonts.StyleSources{}

	// Track seen URLs so a <link> matched by both selectors appears once.
	seen := make(map[string]struct{})
	collect := func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonFetchable(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		sources.StylesheetURLs = append(sources.StylesheetURLs, resolved)
	}

	doc.Find(`link[rel~="stylesheet"]`).Each(collect)
	doc.Find(`link[type="text/css"]`).Each(collect)

	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		if text := sel.Text(); strings.TrimSpace(text) != "" {
			sources.InlineBlocks = append(sources.InlineBlocks, text)
		}
	})

	return sources, nil
}

// resolveURL resolves a relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonFetchable checks if a href uses a scheme that cannot be fetched.
func isNonFetchable(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "data:")
}
