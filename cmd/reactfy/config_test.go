package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfiguration("")
		require.NoError(t, err)
		assert.Equal(t, "normal", cfg.Logging.Level)
		assert.Equal(t, 2, cfg.Walk.Depth)
		assert.Equal(t, []string{".html", ".htm"}, cfg.Walk.Extensions)
		assert.Equal(t, "react", cfg.Options().Framework)
		assert.Empty(t, cfg.Options().Drop)
	})
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reactfy.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
convert:
  framework: preact/compat
  drop: ["tag == 'noscript'"]
`), 0o644))
		cfg, err := LoadConfiguration(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "preact/compat", cfg.Convert.Framework)
		assert.Equal(t, []string{"tag == 'noscript'"}, cfg.Convert.Drop)
		// untouched values keep defaults
		assert.True(t, cfg.Output.Overwrite)
		assert.Equal(t, 2, cfg.Walk.Depth)
	})
	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reactfy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("convert:\n  frameworks: vue\n"), 0o644))
		_, err := LoadConfiguration(path)
		assert.Error(t, err)
	})
	t.Run("invalid level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reactfy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))
		_, err := LoadConfiguration(path)
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
	t.Run("dump", func(t *testing.T) {
		cfg, err := LoadConfiguration("")
		require.NoError(t, err)
		data, err := Dump(cfg)
		require.NoError(t, err)
		assert.Contains(t, string(data), "framework: react")
	})
}

func TestPrepareLogger(t *testing.T) {
	for _, level := range []string{"none", "normal", "debug"} {
		assert.NotNil(t, PrepareLogger(level), level)
	}
	assert.False(t, PrepareLogger("none").Core().Enabled(0))
}
