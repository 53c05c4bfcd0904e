package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/anyamemensah/recode-cols/internal/domain/data"
)

// jsonDataset is the on-disk JSON form of a dataset: ordered columns, each
// carrying its values in row order.
type jsonDataset struct {
	Name    string         `json:"name"`
	Columns []*data.Column `json:"columns"`
}

// LoadJSON reads a columnar JSON document into a dataset. JSON numbers
// arrive as float64; canonical matching makes them interchangeable with
// the integers they stand for.
func LoadJSON(path string) (*data.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read json file %s: %w", path, err)
	}

	var doc jsonDataset
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse json file %s: %w", path, err)
	}

	name := doc.Name
	if name == "" {
		name = datasetName(path)
	}

	ds := data.New(name)
	for _, col := range doc.Columns {
		if col == nil {
			return nil, fmt.Errorf("json %s: null column entry", path)
		}
		if _, err := ds.AddColumn(col.Name, col.Values...); err != nil {
			return nil, fmt.Errorf("json %s: %w", path, err)
		}
	}

	slog.Info("json dataset loaded",
		slog.String("path", path),
		slog.String("dataset", ds.Name),
		slog.Int("columns", ds.NumColumns()),
		slog.Int("rows", ds.NumRows()),
	)

	return ds, nil
}
