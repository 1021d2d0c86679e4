package webfonts

import "context"

// Transcoder converts a downloaded WOFF2 font file to TTF.
// The conversion itself is an external codec; implementations wrap it.
type Transcoder interface {
	// Transcode converts the WOFF2 file at inputPath and returns the path
	// of the TTF output. The input file is left in place; removing it on
	// success is the caller's decision.
	Transcode(ctx context.Context, inputPath string) (string, error)
}
