package mock

import (
	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

var _ webfonts.SourceLocator = (*SourceLocator)(nil)

// SourceLocator is a mock implementation of webfonts.SourceLocator.
type SourceLocator struct {
	LocateFn func(html string, baseURL string) (*webfonts.StyleSources, error)
}

func (l *SourceLocator) Locate(html string, baseURL string) (*webfonts.StyleSources, error) {
	return l.LocateFn(html, baseURL)
}
