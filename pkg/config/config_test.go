package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waltzrobotics/statebank/pkg/space"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Bind)
	assert.Equal(t, "real_vector", cfg.Space.Type)

	sp, err := cfg.Space.Build()
	require.NoError(t, err)
	assert.NotNil(t, sp)
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "statebank.yaml")

	content := `
data_dir: /var/lib/statebank
port: 9200
bind: 0.0.0.0
space:
  type: real_vector
  dimension: 6
  low: -3.5
  high: 3.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/statebank", cfg.DataDir)
	assert.Equal(t, 9200, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Bind)
	assert.Equal(t, 6, cfg.Space.Dimension)
	assert.Equal(t, -3.5, cfg.Space.Low)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [not: valid"), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "statebank.yaml")

	cfg := DefaultConfig()
	cfg.Port = 9999
	cfg.Space.Dimension = 4
	require.NoError(t, cfg.Save(path))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestSpaceConfigBuild(t *testing.T) {
	t.Run("real_vector", func(t *testing.T) {
		sc := SpaceConfig{Type: "real_vector", Dimension: 3, Low: -1, High: 1}
		sp, err := sc.Build()
		require.NoError(t, err)

		rv, ok := sp.(*space.RealVectorSpace)
		require.True(t, ok)
		assert.Equal(t, 3, rv.Dimension())
	})

	t.Run("so2", func(t *testing.T) {
		sc := SpaceConfig{Type: "so2"}
		sp, err := sc.Build()
		require.NoError(t, err)
		assert.Equal(t, "SO2", sp.Name())
	})

	t.Run("unknown type", func(t *testing.T) {
		sc := SpaceConfig{Type: "se3"}
		_, err := sc.Build()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown space type")
	})

	t.Run("bad dimension", func(t *testing.T) {
		sc := SpaceConfig{Type: "real_vector", Dimension: 0, Low: -1, High: 1}
		_, err := sc.Build()
		assert.Error(t, err)
	})

	t.Run("empty bounds", func(t *testing.T) {
		sc := SpaceConfig{Type: "real_vector", Dimension: 2, Low: 1, High: 1}
		_, err := sc.Build()
		assert.Error(t, err)
	})
}
