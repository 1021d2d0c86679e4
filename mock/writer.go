package mock

import (
	"context"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

var _ webfonts.FontWriter = (*FontWriter)(nil)

// FontWriter is a mock implementation of webfonts.FontWriter.
type FontWriter struct {
	WriteFontFn func(ctx context.Context, font *webfonts.FontFace, data []byte, index int) (string, error)
}

func (w *FontWriter) WriteFont(ctx context.Context, font *webfonts.FontFace, data []byte, index int) (string, error) {
	return w.WriteFontFn(ctx, font, data, index)
}
