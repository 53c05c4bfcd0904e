package storage

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anyamemensah/recode-cols/internal/domain/data"
)

const csvBufferSize = 1 << 20

// LoadCSV reads a CSV file into a dataset. The first record is the header.
// When infer is true each column is converted to the narrowest uniform
// scalar type (int64, float64, bool) and empty cells become nil; otherwise
// every cell stays exactly the text it was read as.
func LoadCSV(path string, infer bool) (*data.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReaderSize(f, csvBufferSize))

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	ds := data.New(datasetName(path))
	cols := make([]*data.Column, len(header))
	for i, h := range header {
		col, err := ds.AddColumn(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("csv %s: %w", path, err)
		}
		cols[i] = col
	}

	rowNum := 1 // header
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		for i, cell := range record {
			cols[i].Values = append(cols[i].Values, cell)
		}
	}

	if infer {
		for _, col := range ds.Columns() {
			inferColumn(col)
		}
	}

	slog.Info("csv dataset loaded",
		slog.String("path", path),
		slog.String("dataset", ds.Name),
		slog.Int("columns", ds.NumColumns()),
		slog.Int("rows", ds.NumRows()),
	)

	return ds, nil
}

// datasetName derives a dataset name from a file path.
func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// inferColumn converts a column of CSV text to the narrowest uniform
// scalar type. Empty cells become nil and do not block inference. Columns
// with mixed content stay text.
func inferColumn(col *data.Column) {
	if vals, ok := tryInts(col.Values); ok {
		col.Values = vals
		return
	}
	if vals, ok := tryFloats(col.Values); ok {
		col.Values = vals
		return
	}
	if vals, ok := tryBools(col.Values); ok {
		col.Values = vals
		return
	}
	for i, v := range col.Values {
		if s, ok := v.(string); ok && s == "" {
			col.Values[i] = nil
		}
	}
}

func tryInts(values []any) ([]any, bool) {
	out := make([]any, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func tryFloats(values []any) ([]any, bool) {
	out := make([]any, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func tryBools(values []any) ([]any, bool) {
	out := make([]any, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		if s == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			out[i] = true
		case "false":
			out[i] = false
		default:
			return nil, false
		}
	}
	return out, true
}
