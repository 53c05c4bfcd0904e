package codebook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
columns:
  - column: sex
    rules:
      - old: 1
        new: Male
      - old: 2
        new: Female
  - column: enrolled
    rules:
      - old: "Y"
        new: "Yes"
      - old: "N"
        new: "No"
`

	cb, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cb)

	assert.Equal(t, []string{"sex", "enrolled"}, cb.Columns())

	sex, ok := cb.Column("sex")
	require.True(t, ok)
	assert.Equal(t, 2, sex.Len())

	// YAML integers arrive as int; canonical matching makes them
	// interchangeable with int64 cells and numeric strings.
	label, ok := sex.Get(int64(1))
	require.True(t, ok)
	assert.Equal(t, "Male", label)

	label, ok = sex.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Female", label)

	enrolled, ok := cb.Column("enrolled")
	require.True(t, ok)
	label, ok = enrolled.Get("N")
	require.True(t, ok)
	assert.Equal(t, "No", label)
}

func TestParseDuplicateOldKeepsLast(t *testing.T) {
	yaml := `
columns:
  - column: sex
    rules:
      - old: 1
        new: Male
      - old: "1"
        new: M
`

	cb, err := Parse([]byte(yaml))
	require.NoError(t, err)

	sex, ok := cb.Column("sex")
	require.True(t, ok)
	assert.Equal(t, 1, sex.Len())

	label, ok := sex.Get(1)
	require.True(t, ok)
	assert.Equal(t, "M", label)
}

func TestParseRepeatedColumnSectionsMerge(t *testing.T) {
	yaml := `
columns:
  - column: sex
    rules:
      - old: 1
        new: Male
  - column: sex
    rules:
      - old: 2
        new: Female
`

	cb, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, []string{"sex"}, cb.Columns())
	sex, _ := cb.Column("sex")
	assert.Equal(t, 2, sex.Len())
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("columns: [whoops"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cb := New()
	require.NoError(t, cb.Set("sex", 1, "Male"))
	require.NoError(t, cb.Set("sex", 2, "Female"))
	require.NoError(t, cb.Set("enrolled", "Y", "Yes"))

	raw, err := Marshal(cb)
	require.NoError(t, err)

	loaded, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, cb.Columns(), loaded.Columns())

	sex, ok := loaded.Column("sex")
	require.True(t, ok)
	label, ok := sex.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Male", label)
}

func TestWriteFileAndLoadFile(t *testing.T) {
	cb := New()
	require.NoError(t, cb.Set("sex", 1, "Male"))

	path := filepath.Join(t.TempDir(), "codebook.yaml")
	require.NoError(t, WriteFile(cb, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "column: sex")

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	sex, ok := loaded.Column("sex")
	require.True(t, ok)
	label, ok := sex.Get(int64(1))
	require.True(t, ok)
	assert.Equal(t, "Male", label)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
