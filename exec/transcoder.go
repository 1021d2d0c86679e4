// Package exec provides a webfonts.Transcoder that wraps the external
// woff2_decompress codec from Google's woff2 toolchain.
package exec

import (
	"context"
	"os"
	osexec "os/exec"
	"strings"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

// DefaultCommand is the codec binary looked up on PATH.
const DefaultCommand = "woff2_decompress"

// Ensure Transcoder implements webfonts.Transcoder at compile time.
var _ webfonts.Transcoder = (*Transcoder)(nil)

// Transcoder converts WOFF2 files to TTF by invoking an external codec.
// The codec writes its output next to the input with a .ttf extension.
type Transcoder struct {
	command string
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithCommand overrides the codec binary. Useful in tests.
func WithCommand(command string) Option {
	return func(t *Transcoder) {
		t.command = command
	}
}

// NewTranscoder creates a Transcoder using DefaultCommand.
func NewTranscoder(opts ...Option) *Transcoder {
	t := &Transcoder{command: DefaultCommand}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transcode converts the WOFF2 file at inputPath and returns the TTF
// output path. The input file is left in place.
func (t *Transcoder) Transcode(ctx context.Context, inputPath string) (string, error) {
	if _, err := osexec.LookPath(t.command); err != nil {
		return "", webfonts.Errorf(webfonts.EUNAVAILABLE, "%s not found on PATH", t.command)
	}

	cmd := osexec.CommandContext(ctx, t.command, inputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", webfonts.Errorf(webfonts.EUNAVAILABLE, "%s failed: %v: %s",
			t.command, err, strings.TrimSpace(string(out)))
	}

	outputPath := strings.TrimSuffix(inputPath, ".woff2") + ".ttf"
	if _, err := os.Stat(outputPath); err != nil {
		return "", webfonts.Errorf(webfonts.EUNAVAILABLE, "%s produced no output for %s", t.command, inputPath)
	}

	return outputPath, nil
}
