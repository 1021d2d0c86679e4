package css

import (
	"context"
	"net/url"
	"strings"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

// DefaultMaxDepth bounds @import recursion.
const DefaultMaxDepth = 5

// Ensure Extractor implements webfonts.FaceExtractor at compile time.
var _ webfonts.FaceExtractor = (*Extractor)(nil)

// Extractor extracts @font-face declarations from CSS text, following
// @import chains through a fetch collaborator.
//
// Each Extract call owns its own visited set, so a single Extractor is safe
// for concurrent use across independent page extractions.
type Extractor struct {
	fetcher    webfonts.Fetcher
	classifier *webfonts.Classifier
	maxDepth   int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxDepth sets the @import recursion bound.
// Defaults to DefaultMaxDepth if not specified.
func WithMaxDepth(depth int) Option {
	return func(e *Extractor) {
		e.maxDepth = depth
	}
}

// WithClassifier sets the classifier used to categorize extracted faces.
// Defaults to a classifier with the built-in rules.
func WithClassifier(c *webfonts.Classifier) Option {
	return func(e *Extractor) {
		e.classifier = c
	}
}

// NewExtractor creates an Extractor that fetches @import targets with the
// given fetcher.
func NewExtractor(fetcher webfonts.Fetcher, opts ...Option) *Extractor {
	e := &Extractor{
		fetcher:  fetcher,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.classifier == nil {
		e.classifier = webfonts.NewClassifier()
	}
	return e
}

// workItem is one stylesheet pending extraction.
type workItem struct {
	css   string
	base  *url.URL
	depth int
}

// Extract returns the font faces declared in cssText and in any stylesheet
// reachable from it via @import, in document order with imported results
// appended breadth-first in import-statement order.
//
// Per-import failures never fail the whole extraction: cyclic targets,
// targets past the depth bound, and targets whose fetch fails are skipped
// and extraction continues with what was gathered.
func (e *Extractor) Extract(ctx context.Context, cssText string, baseURL string) ([]*webfonts.FontFace, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, webfonts.Errorf(webfonts.EINVALID, "invalid base URL: %v", err)
	}

	// The visited set lives for exactly one Extract call. Seeding it with
	// the base URL stops a stylesheet from importing itself.
	visited := map[string]struct{}{base.String(): {}}

	queue := []workItem{{css: cssText, base: base, depth: 0}}
	var faces []*webfonts.FontFace

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if err := ctx.Err(); err != nil {
			return faces, err
		}

		itemFaces, imports := e.parse(item.css, item.base)
		faces = append(faces, itemFaces...)

		for _, imp := range imports {
			ref, err := url.Parse(strings.TrimSpace(imp))
			if err != nil {
				continue
			}
			target := item.base.ResolveReference(ref).String()

			// Cycle guard.
			if _, ok := visited[target]; ok {
				continue
			}
			visited[target] = struct{}{}

			// Depth bound.
			if item.depth+1 > e.maxDepth {
				continue
			}

			data, err := e.fetcher.Fetch(ctx, target)
			if err != nil {
				// A failed import costs only that import's results.
				continue
			}
			targetURL, err := url.Parse(target)
			if err != nil {
				continue
			}
			queue = append(queue, workItem{css: string(data), base: targetURL, depth: item.depth + 1})
		}
	}

	return faces, nil
}

// parse runs the two-stage parse strategy on one stylesheet: structured
// first, regex fallback when the structured parse errors or finds no
// font-face rules even though the raw text plainly contains some.
func (e *Extractor) parse(cssText string, base *url.URL) ([]*webfonts.FontFace, []string) {
	faces, imports, err := parseStructured(cssText, base, e.classifier)
	if err == nil && (len(faces) > 0 || !containsFontFace(cssText)) {
		return faces, imports
	}
	return parseFallback(cssText, base, e.classifier)
}

func containsFontFace(cssText string) bool {
	return strings.Contains(strings.ToLower(cssText), "@font-face")
}
