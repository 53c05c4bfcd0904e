package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anyamemensah/recode-cols/internal/testutil"
)

func TestLoadJSON(t *testing.T) {
	doc := `{
  "name": "survey",
  "columns": [
    {"name": "sex", "values": [1, 2, null]},
    {"name": "enrolled", "values": ["Y", "N", "Y"]}
  ]
}`
	path := filepath.Join(t.TempDir(), "survey.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write temp json: %v", err)
	}

	ds, err := LoadJSON(path)
	testutil.AssertNoError(t, err, "load json")

	if ds.Name != "survey" {
		t.Errorf("Expected dataset name 'survey', got %q", ds.Name)
	}
	testutil.AssertColumnValues(t, ds, "sex", []any{float64(1), float64(2), nil}, "sex column")
	testutil.AssertColumnValues(t, ds, "enrolled", []any{"Y", "N", "Y"}, "enrolled column")
}

func TestLoadJSONNameFallsBackToPath(t *testing.T) {
	doc := `{"columns": [{"name": "x", "values": [1]}]}`
	path := filepath.Join(t.TempDir(), "respondents.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write temp json: %v", err)
	}

	ds, err := LoadJSON(path)
	testutil.AssertNoError(t, err, "load json")

	if ds.Name != "respondents" {
		t.Errorf("Expected dataset name 'respondents', got %q", ds.Name)
	}
}

func TestLoadJSONNullColumnEntryFails(t *testing.T) {
	doc := `{"name": "survey", "columns": [null, {"name": "x", "values": [1]}]}`
	path := filepath.Join(t.TempDir(), "null-col.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write temp json: %v", err)
	}

	_, err := LoadJSON(path)
	testutil.AssertError(t, err, "null column entry")
}

func TestLoadJSONDuplicateColumnFails(t *testing.T) {
	doc := `{"columns": [{"name": "x", "values": []}, {"name": "x", "values": []}]}`
	path := filepath.Join(t.TempDir(), "dup.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write temp json: %v", err)
	}

	_, err := LoadJSON(path)
	testutil.AssertError(t, err, "duplicate column")
}

func TestLoadJSONInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatalf("write temp json: %v", err)
	}

	_, err := LoadJSON(path)
	testutil.AssertError(t, err, "invalid json")
}
