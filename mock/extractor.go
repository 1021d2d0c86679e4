package mock

import (
	"context"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

var _ webfonts.FaceExtractor = (*FaceExtractor)(nil)

// FaceExtractor is a mock implementation of webfonts.FaceExtractor.
type FaceExtractor struct {
	ExtractFn func(ctx context.Context, cssText string, baseURL string) ([]*webfonts.FontFace, error)
}

func (e *FaceExtractor) Extract(ctx context.Context, cssText string, baseURL string) ([]*webfonts.FontFace, error) {
	return e.ExtractFn(ctx, cssText, baseURL)
}
