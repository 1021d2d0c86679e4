package exec_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
	"github.com/ibehnam/webpage-fonts-downloader/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCodec writes an executable stand-in for woff2_decompress that copies
// its input to the matching .ttf path.
func fakeCodec(t *testing.T) string {
	t.Helper()
	script := filepath.Join(t.TempDir(), "fake_decompress")
	body := "#!/bin/sh\ncp \"$1\" \"${1%.woff2}.ttf\"\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	return script
}

func TestTranscoderTranscode(t *testing.T) {
	t.Parallel()

	t.Run("produces a ttf next to the input", func(t *testing.T) {
		t.Parallel()

		input := filepath.Join(t.TempDir(), "font.woff2")
		require.NoError(t, os.WriteFile(input, []byte("woff2data"), 0o644))

		transcoder := exec.NewTranscoder(exec.WithCommand(fakeCodec(t)))
		output, err := transcoder.Transcode(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(input), "font.ttf"), output)
		assert.FileExists(t, output)
		// Input is left in place; removal is the caller's decision.
		assert.FileExists(t, input)
	})

	t.Run("missing codec binary is unavailable", func(t *testing.T) {
		t.Parallel()

		transcoder := exec.NewTranscoder(exec.WithCommand("definitely-not-installed-codec"))
		_, err := transcoder.Transcode(context.Background(), "font.woff2")

		require.Error(t, err)
		assert.Equal(t, webfonts.EUNAVAILABLE, webfonts.ErrorCode(err))
	})

	t.Run("codec failure is unavailable", func(t *testing.T) {
		t.Parallel()

		script := filepath.Join(t.TempDir(), "broken_codec")
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho corrupt >&2\nexit 1\n"), 0o755))

		input := filepath.Join(t.TempDir(), "font.woff2")
		require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))

		transcoder := exec.NewTranscoder(exec.WithCommand(script))
		_, err := transcoder.Transcode(context.Background(), input)

		require.Error(t, err)
		assert.Equal(t, webfonts.EUNAVAILABLE, webfonts.ErrorCode(err))
		assert.Contains(t, webfonts.ErrorMessage(err), "corrupt")
	})
}
