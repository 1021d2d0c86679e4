package webfonts

import "context"

// FaceExtractor extracts @font-face declarations from CSS text.
// Implementations follow @import chains through a fetch collaborator, guard
// against import cycles, and bound recursion depth. Malformed CSS must
// degrade to a best-effort (possibly empty) result, never an error.
type FaceExtractor interface {
	// Extract returns the font faces declared in cssText, in document
	// order, with faces from imported stylesheets appended after the
	// importing document's own rules in import-statement order. Relative
	// source URLs are resolved against baseURL. The context bounds any
	// fetches performed while following imports.
	Extract(ctx context.Context, cssText string, baseURL string) ([]*FontFace, error)
}
