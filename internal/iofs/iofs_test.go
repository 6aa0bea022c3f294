package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs verifies all required directories are created.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnkey"),
		filepath.Join(tmpDir, ".cache", "gnkey"),
		filepath.Join(tmpDir, ".local", "share", "gnkey", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
	}
}

// TestEnsureDirsIdempotent verifies multiple calls work.
func TestEnsureDirsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	err := EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	path := filepath.Join(tmpDir, ".config", "gnkey", "config.yaml")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))
	assert.Contains(t, string(content), "database:")
}

// TestEnsureConfigFileKeepsUserConfig verifies existing config is not
// overwritten.
func TestEnsureConfigFileKeepsUserConfig(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	path := filepath.Join(tmpDir, ".config", "gnkey", "config.yaml")
	custom := "rank:\n  limit: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	err := EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}
