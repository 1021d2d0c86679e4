// Package fs provides file-based storage for downloaded fonts.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

// Ensure Writer implements webfonts.FontWriter at compile time.
var _ webfonts.FontWriter = (*Writer)(nil)

// Writer writes font files into a base directory using descriptive,
// collision-free names: <family>-<weight>-<style>-<NN><ext>.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes into baseDir.
// The directory is created on the first write.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteFont writes data to disk and returns the file's path. The write is
// atomic: data goes to a temporary file which is renamed into place. If the
// target already exists with identical content the existing path is
// returned and nothing is written.
func (w *Writer) WriteFont(ctx context.Context, font *webfonts.FontFace, data []byte, index int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := font.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return "", webfonts.Errorf(webfonts.EINTERNAL, "create output dir: %v", err)
	}

	name := fmt.Sprintf("%s-%s-%s-%02d%s",
		slug.Make(font.Family),
		slug.Make(font.Weight),
		slug.Make(font.Style),
		index,
		extensionFor(font, data),
	)
	target := filepath.Join(w.baseDir, name)

	if existing, err := os.ReadFile(target); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return target, nil
		}
	}

	tmp := target + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", webfonts.Errorf(webfonts.EINTERNAL, "write %s: %v", tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", webfonts.Errorf(webfonts.EINTERNAL, "rename %s: %v", target, err)
	}

	return target, nil
}

// extensionFor picks a file extension: the selected source URL's extension
// when it has one, else a sniff of the bytes, else ".woff2".
func extensionFor(font *webfonts.FontFace, data []byte) string {
	if src, ok := webfonts.SelectSource(font); ok {
		if u, err := url.Parse(src.URL); err == nil {
			if ext := strings.ToLower(path.Ext(u.Path)); ext != "" {
				return ext
			}
		}
		if ext := src.Format.Extension(); ext != "" {
			return ext
		}
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		switch kind {
		case matchers.TypeWoff2, matchers.TypeWoff, matchers.TypeTtf, matchers.TypeOtf:
			return "." + kind.Extension
		}
	}
	return ".woff2"
}

// SiteDir derives an output directory name from a page URL's host:
// "https://www.economist.com/world" becomes "economist".
func SiteDir(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "fonts"
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return host
}
