package writer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/anyamemensah/recode-cols/internal/domain/data"
)

// SaveCSV writes the dataset as CSV, header first, cells in canonical
// text form. Missing cells in ragged columns come out empty.
func SaveCSV(ds *data.Dataset, path string) error {
	cols := ds.Columns()
	numRows := ds.NumRows()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(cols))
	for i := 0; i < numRows; i++ {
		for j, col := range cols {
			var v any
			if i < col.Len() {
				v = col.Values[i]
			}
			text, err := data.Format(v)
			if err != nil {
				return fmt.Errorf("format cell %s[%d]: %w", col.Name, i, err)
			}
			record[j] = text
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return err
	}

	slog.Info("csv dataset saved",
		slog.String("path", path),
		slog.String("dataset", ds.Name),
		slog.Int("rows", numRows),
	)

	return nil
}

// SaveJSON writes the dataset as a columnar JSON document, the same form
// LoadJSON reads.
func SaveJSON(ds *data.Dataset, path string) error {
	doc := struct {
		Name    string         `json:"name"`
		Columns []*data.Column `json:"columns"`
	}{
		Name:    ds.Name,
		Columns: ds.Columns(),
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset %s: %w", ds.Name, err)
	}

	if err := writeAtomic(path, raw); err != nil {
		return err
	}

	slog.Info("json dataset saved",
		slog.String("path", path),
		slog.String("dataset", ds.Name),
		slog.Int("rows", ds.NumRows()),
	)

	return nil
}

// writeAtomic writes via a temp file and atomic rename so readers never
// see a half-written dataset.
func writeAtomic(path string, raw []byte) error {
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp → %s: %w", path, err)
	}

	return nil
}
