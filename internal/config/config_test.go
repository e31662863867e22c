package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
display:
  column_width: 14
  index_width: 6
  hide_index: true
theme:
  cursor: "212"
  error: "#ff0000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Display.ColumnWidth)
	assert.Equal(t, 6, cfg.Display.IndexWidth)
	assert.True(t, cfg.Display.HideIndex)
	assert.False(t, cfg.Display.HideHeader)
	assert.Equal(t, "212", cfg.Theme.Cursor)
	assert.Equal(t, "#ff0000", cfg.Theme.Error)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
