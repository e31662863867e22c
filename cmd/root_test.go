package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tabx/pkg/loader"
)

func TestDelimiterValue(t *testing.T) {
	var d delimiterValue

	require.NoError(t, d.Set(";"))
	assert.Equal(t, ";", d.String())

	require.NoError(t, d.Set("tab"))
	assert.Equal(t, "\t", d.String())
	require.NoError(t, d.Set(`\t`))
	assert.Equal(t, "\t", d.String())

	err := d.Set("ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
	require.Error(t, d.Set(""))
}

func TestResolveSnapshotSizeExplicit(t *testing.T) {
	sz := resolveSnapshotSize(100, 30)
	assert.Equal(t, 100, sz.Width)
	assert.Equal(t, 30, sz.Height)
}

func TestResolveSnapshotSizeFallback(t *testing.T) {
	// No TTY in tests, so detection fails and the defaults apply.
	t.Setenv("COLUMNS", "")
	sz := resolveSnapshotSize(0, 0)
	assert.Equal(t, 80, sz.Width)
	assert.Equal(t, 24, sz.Height)
}

func TestResolveSnapshotSizeColumnsEnv(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	sz := resolveSnapshotSize(0, 5)
	if sz.Width != 132 {
		// A real terminal on any probed fd wins over $COLUMNS.
		t.Skip("running under a TTY")
	}
	assert.Equal(t, 5, sz.Height)
}

func TestCliVersionString(t *testing.T) {
	v := cliVersionString()
	assert.True(t, strings.HasPrefix(v, "tabx "))
	assert.Contains(t, v, "go1")
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,age\nalice,30\nbob,42\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{path, "--snapshot", "--width", "60", "--height", "10", "--no-color"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		renderSnapshot = false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "name")
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "2×2")
}

func TestMissingFileFailsWithLoadError(t *testing.T) {
	rootCmd.SetArgs([]string{"/nonexistent/input.csv", "--snapshot"})
	t.Cleanup(func() { renderSnapshot = false })

	err := rootCmd.Execute()
	require.Error(t, err)
	var loadErr *loader.LoadError
	assert.ErrorAs(t, err, &loadErr)
}
