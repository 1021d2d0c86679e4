package webfonts

// StyleSources holds the CSS sources referenced by one HTML document.
type StyleSources struct {
	// StylesheetURLs are external stylesheet references resolved to
	// absolute form, in document order.
	StylesheetURLs []string

	// InlineBlocks are the raw text contents of <style> elements,
	// in document order.
	InlineBlocks []string
}

// SourceLocator finds the CSS sources referenced by an HTML document.
// Implementations must tolerate malformed HTML and return partial results
// rather than failing.
type SourceLocator interface {
	// Locate parses html and returns its stylesheet references and inline
	// style blocks. Relative references are resolved against baseURL.
	Locate(html string, baseURL string) (*StyleSources, error)
}
