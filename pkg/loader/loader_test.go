package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "people.csv", "name,age\nalice,30\nbob,41\n")

	fr, err := Load(path, Options{})
	require.NoError(t, err)

	rows, cols := fr.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, "name", fr.ColumnLabel(0))
	assert.Equal(t, "alice", fr.Cell(0, 0))
	assert.Equal(t, int64(41), fr.Value(1, 1))
}

func TestLoadTSV(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\tb\n1\t2\n")

	fr, err := Load(path, Options{})
	require.NoError(t, err)

	rows, cols := fr.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, "2", fr.Cell(0, 1))
}

func TestLoadCustomDelimiter(t *testing.T) {
	path := writeFile(t, "data.csv", "a;b\nx;y\n")

	fr, err := Load(path, Options{Delimiter: ';'})
	require.NoError(t, err)

	_, cols := fr.Shape()
	assert.Equal(t, 2, cols)
	assert.Equal(t, "y", fr.Cell(0, 1))
}

func TestLoadRaggedCSV(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b,c\n1,2\n3,4,5,6\n")

	fr, err := Load(path, Options{})
	require.NoError(t, err)

	rows, cols := fr.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, "", fr.Cell(0, 2))
	assert.Equal(t, "6", fr.Cell(1, 3))
}

func TestLoadHeaderOnlyCSV(t *testing.T) {
	path := writeFile(t, "empty.csv", "a,b\n")

	fr, err := Load(path, Options{})
	require.NoError(t, err)

	rows, cols := fr.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 2, cols)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "nope.csv")
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "zero.csv", "")

	_, err := Load(path, Options{})
	var le *LoadError
	require.ErrorAs(t, err, &le)
}

func TestLoadMalformedExcel(t *testing.T) {
	path := writeFile(t, "fake.xlsx", "this is not a workbook")

	_, err := Load(path, Options{})
	var le *LoadError
	require.ErrorAs(t, err, &le)
}
