package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesOriginal(t *testing.T) {
	cfg := Default()
	require.Equal(t, 2, cfg.MaxSplitDepth)
	require.False(t, cfg.SaveGraphs)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default().MaxSplitDepth, cfg.MaxSplitDepth)
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cyclegg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_split_depth: 4\nsave_graphs: true\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.MaxSplitDepth)
	require.True(t, cfg.SaveGraphs)
}
