package css

import (
	"net/url"
	"regexp"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

// Fallback patterns for stylesheets the structured parser cannot handle.
// The block pattern does not require a closing brace so truncated or
// minified CSS with unbalanced braces still yields its leading properties.
var (
	fontFaceBlockPattern = regexp.MustCompile(`(?is)@font-face\s*\{([^}]*)`)
	familyPattern        = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}]+)`)
	srcPattern           = regexp.MustCompile(`(?is)src\s*:\s*([^;}]+)`)
	weightPattern        = regexp.MustCompile(`(?i)font-weight\s*:\s*([^;}]+)`)
	stylePattern         = regexp.MustCompile(`(?i)font-style\s*:\s*([^;}]+)`)
	importPattern        = regexp.MustCompile(`(?i)@import\s+(?:url\(\s*['"]?([^'")\s]+)['"]?\s*\)|['"]([^'"]+)['"])`)
)

// parseFallback extracts font faces and imports by pattern matching over
// raw stylesheet text. Best effort: whatever does not match is skipped.
// Any input, including binary garbage, yields a (possibly empty) result.
func parseFallback(cssText string, base *url.URL, classifier *webfonts.Classifier) ([]*webfonts.FontFace, []string) {
	var faces []*webfonts.FontFace
	for _, m := range fontFaceBlockPattern.FindAllStringSubmatch(cssText, -1) {
		block := m[1]
		face, ok := buildFace(
			firstGroup(familyPattern, block),
			firstGroup(srcPattern, block),
			firstGroup(weightPattern, block),
			firstGroup(stylePattern, block),
			base, classifier,
		)
		if ok {
			faces = append(faces, face)
		}
	}

	var imports []string
	for _, m := range importPattern.FindAllStringSubmatch(cssText, -1) {
		target := m[1]
		if target == "" {
			target = m[2]
		}
		if target != "" {
			imports = append(imports, target)
		}
	}

	return faces, imports
}

// firstGroup returns the first capture group of the first match, or "".
func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
