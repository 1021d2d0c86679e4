package mock

import (
	"context"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

var _ webfonts.Transcoder = (*Transcoder)(nil)

// Transcoder is a mock implementation of webfonts.Transcoder.
type Transcoder struct {
	TranscodeFn func(ctx context.Context, inputPath string) (string, error)
}

func (t *Transcoder) Transcode(ctx context.Context, inputPath string) (string, error) {
	return t.TranscodeFn(ctx, inputPath)
}
