package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/prompt"
)

func withConfirmer(t *testing.T, answer string) {
	t.Helper()
	old := newConfirmer
	newConfirmer = func() prompt.Confirmer { return prompt.Fixed(answer) }
	t.Cleanup(func() { newConfirmer = old })
}

func TestRunDeclinedExitsCleanly(t *testing.T) {
	withConfirmer(t, "n")

	output := filepath.Join(t.TempDir(), "WebGPU")
	require.NoError(t, os.MkdirAll(filepath.Join(output, "linux"), 0o755))

	err := Run([]string{"wgpuctl", "--output", output, "--config-dir", t.TempDir()}, "test")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(output, "linux"))
	assert.Equal(t, "gfx-rs", cfg.Owner)
}

func TestRunUnknownFlag(t *testing.T) {
	err := Run([]string{"wgpuctl", "--no-such-flag"}, "test")
	require.Error(t, err)
}

func TestNewGitHubClient(t *testing.T) {
	assert.NotNil(t, newGitHubClient(""))
	assert.NotNil(t, newGitHubClient("token"))
}
