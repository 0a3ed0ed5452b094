package release

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilenameAllKnownTriples(t *testing.T) {
	triples := AllTriples()
	require.Len(t, triples, 18)

	for _, want := range triples {
		t.Run(want.String(), func(t *testing.T) {
			got, err := ParseFilename(want.Filename())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseFilename(t *testing.T) {
	got, err := ParseFilename("wgpu-windows-i686-debug.zip")
	require.NoError(t, err)
	assert.Equal(t, Triple{System: Windows, Arch: Intel32, Build: BuildDebug}, got)
	assert.Equal(t, "windows-i686-debug", got.String())
}

func TestParseFilenameFailures(t *testing.T) {
	for _, tt := range []struct {
		name     string
		filename string
		cause    error
	}{
		{"empty", "", ErrPatternMismatch},
		{"wrong prefix", "wgpu2-linux-x86_64-release.zip", ErrPatternMismatch},
		{"wrong extension", "wgpu-linux-x86_64-release.tar.gz", ErrPatternMismatch},
		{"unescaped dot", "wgpu-linux-x86_64-releaseXzip", ErrPatternMismatch},
		{"trailing text", "wgpu-linux-x86_64-release.zip.sha256", ErrPatternMismatch},
		{"extra component", "wgpu-windows-x86_64-msvc-release.zip", ErrPatternMismatch},
		{"unknown system", "wgpu-freebsd-x86_64-release.zip", ErrUnknownToken},
		{"unknown arch", "wgpu-macos-aarch64-release.zip", ErrUnknownToken},
		{"unknown build", "wgpu-linux-x86_64-profile.zip", ErrUnknownToken},
		{"upper case", "wgpu-Linux-x86_64-release.zip", ErrPatternMismatch},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilename(tt.filename)
			require.Error(t, err)
			assert.Equal(t, tt.cause, errors.Cause(err))
		})
	}
}
