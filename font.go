package webfonts

import (
	"net/url"
	"path"
	"strings"
)

// Format identifies a font binary format.
type Format string

// Font formats in descending download priority.
const (
	FormatWOFF2   Format = "woff2"
	FormatWOFF    Format = "woff"
	FormatTTF     Format = "ttf"
	FormatOTF     Format = "otf"
	FormatEOT     Format = "eot"
	FormatUnknown Format = ""
)

// formatPriority ranks formats for source selection (lower is better).
var formatPriority = map[Format]int{
	FormatWOFF2:   0,
	FormatWOFF:    1,
	FormatTTF:     2,
	FormatOTF:     3,
	FormatEOT:     4,
	FormatUnknown: 5,
}

// ParseFormat maps a CSS format() hint to a Format.
// Unrecognized hints map to FormatUnknown.
func ParseFormat(hint string) Format {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "woff2", "woff2-variations":
		return FormatWOFF2
	case "woff", "woff-variations":
		return FormatWOFF
	case "truetype", "truetype-variations", "ttf":
		return FormatTTF
	case "opentype", "opentype-variations", "otf":
		return FormatOTF
	case "embedded-opentype", "eot":
		return FormatEOT
	}
	return FormatUnknown
}

// FormatFromURL infers a Format from the file extension of a URL path.
func FormatFromURL(rawURL string) Format {
	u, err := url.Parse(rawURL)
	if err != nil {
		return FormatUnknown
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".woff2":
		return FormatWOFF2
	case ".woff":
		return FormatWOFF
	case ".ttf":
		return FormatTTF
	case ".otf":
		return FormatOTF
	case ".eot":
		return FormatEOT
	}
	return FormatUnknown
}

// Extension returns the file extension for the format, including the dot.
// FormatUnknown returns an empty string.
func (f Format) Extension() string {
	if f == FormatUnknown {
		return ""
	}
	return "." + string(f)
}

// Category classifies a font family by typographic style.
type Category string

// Font categories assigned by the Classifier.
const (
	CategorySerif     Category = "serif"
	CategorySansSerif Category = "sans-serif"
	CategoryMonospace Category = "monospace"
	CategoryUnknown   Category = "unknown"
)

// FontSource is one url()/format() pair from a @font-face src declaration.
// URL is always absolute.
type FontSource struct {
	URL    string `json:"url"`
	Format Format `json:"format"`
}

// FontFace represents one discovered @font-face declaration.
// Values are immutable after construction; Category is assigned exactly
// once, when the face is built by the extractor.
type FontFace struct {
	Family   string       `json:"family"`
	Sources  []FontSource `json:"sources"` // declared order
	Weight   string       `json:"weight"`
	Style    string       `json:"style"`
	Category Category     `json:"category"`
}

// Validate returns an error if the font face contains invalid fields.
func (f *FontFace) Validate() error {
	if f.Family == "" {
		return Errorf(EINVALID, "font family required")
	}
	if len(f.Sources) == 0 {
		return Errorf(EUNRESOLVED, "font face %q has no sources", f.Family)
	}
	return nil
}

// SelectSource returns the best source for download by format priority:
// woff2 > woff > ttf > otf > eot > unknown. Among sources sharing the top
// priority the first in declared order wins. The bool result is false if
// the face has no sources.
func SelectSource(f *FontFace) (FontSource, bool) {
	if len(f.Sources) == 0 {
		return FontSource{}, false
	}
	best := f.Sources[0]
	for _, s := range f.Sources[1:] {
		if formatPriority[s.Format] < formatPriority[best.Format] {
			best = s
		}
	}
	return best, true
}

// Dedupe removes URL-duplicate font faces. The deduplication key is the
// first declared source URL; the first-encountered face wins, even when
// family names differ in casing. Input order is preserved.
func Dedupe(fonts []*FontFace) []*FontFace {
	seen := make(map[string]struct{}, len(fonts))
	unique := make([]*FontFace, 0, len(fonts))
	for _, f := range fonts {
		if len(f.Sources) == 0 {
			continue
		}
		key := f.Sources[0].URL
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, f)
	}
	return unique
}

// Filter narrows fonts to the given categories, preserving input order.
// An empty category list means no filtering: every face is kept, including
// CategoryUnknown. With an explicit list, unknown faces are dropped unless
// CategoryUnknown is listed.
func Filter(fonts []*FontFace, categories ...Category) []*FontFace {
	if len(categories) == 0 {
		return fonts
	}
	want := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		want[c] = struct{}{}
	}
	filtered := make([]*FontFace, 0, len(fonts))
	for _, f := range fonts {
		if _, ok := want[f.Category]; ok {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// DownloadResult holds the outcome of one font download attempt.
// It is created once per attempt and never mutated afterwards.
type DownloadResult struct {
	Font *FontFace
	Path string // local file path, empty unless successful
	Err  error
}

// Success reports whether the download completed.
func (r *DownloadResult) Success() bool {
	return r.Err == nil
}
