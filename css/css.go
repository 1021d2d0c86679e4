// Package css extracts @font-face declarations from stylesheet text.
//
// Extraction is a two-stage strategy: a structured token-driven parse
// (github.com/tdewolff/parse/v2/css) with a regex fallback for stylesheets
// too malformed for the structured parser. Imports are followed through a
// fetch collaborator with a cycle guard and a bounded depth.
package css

import (
	"net/url"
	"regexp"
	"strings"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

var (
	urlPattern    = regexp.MustCompile(`url\(\s*['"]?([^'")\s]+)['"]?\s*\)`)
	formatPattern = regexp.MustCompile(`format\(\s*['"]?([^'")\s]+)['"]?\s*\)`)
)

// parseSrc parses a @font-face src property value into resolved sources,
// preserving declared order. Entries without a fetchable URL (data: URIs,
// unparseable references) are skipped.
func parseSrc(value string, base *url.URL) []webfonts.FontSource {
	var sources []webfonts.FontSource
	for _, part := range strings.Split(value, ",") {
		m := urlPattern.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		raw := m[1]
		if isNonFetchable(raw) {
			continue
		}
		ref, err := url.Parse(raw)
		if err != nil {
			continue
		}
		resolved := base.ResolveReference(ref).String()

		format := webfonts.FormatUnknown
		if fm := formatPattern.FindStringSubmatch(part); fm != nil {
			format = webfonts.ParseFormat(fm[1])
		}
		if format == webfonts.FormatUnknown {
			format = webfonts.FormatFromURL(resolved)
		}

		sources = append(sources, webfonts.FontSource{URL: resolved, Format: format})
	}
	return sources
}

// buildFace assembles a FontFace from raw declaration values. The category
// is assigned here, exactly once. Returns false when the declaration has no
// family or no resolvable source; such rules are discarded, not emitted.
func buildFace(family, src, weight, style string, base *url.URL, classifier *webfonts.Classifier) (*webfonts.FontFace, bool) {
	if strings.TrimSpace(family) == "" || strings.TrimSpace(src) == "" {
		return nil, false
	}
	sources := parseSrc(src, base)
	if len(sources) == 0 {
		return nil, false
	}
	name := webfonts.NormalizeFamily(family)
	if weight = strings.TrimSpace(weight); weight == "" {
		weight = "normal"
	}
	if style = strings.TrimSpace(style); style == "" {
		style = "normal"
	}
	return &webfonts.FontFace{
		Family:   name,
		Sources:  sources,
		Weight:   weight,
		Style:    style,
		Category: classifier.Classify(name),
	}, true
}

// isNonFetchable checks if a URL uses a scheme that cannot be fetched.
func isNonFetchable(raw string) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(raw, "data:") ||
		strings.HasPrefix(raw, "about:") ||
		strings.HasPrefix(raw, "javascript:")
}
