package webfonts

import "context"

// FontWriter persists downloaded font bytes to local storage.
type FontWriter interface {
	// WriteFont writes data for the given font and returns the path of the
	// written file. The index distinguishes files for faces that share a
	// family/weight/style combination.
	WriteFont(ctx context.Context, font *FontFace, data []byte, index int) (string, error)
}
