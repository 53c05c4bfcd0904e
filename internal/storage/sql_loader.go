package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/anyamemensah/recode-cols/internal/domain/data"
)

// LoadSQL runs a query and loads its result set into a dataset. Column
// order follows the result set. []byte cells become strings and time
// values RFC 3339 text, so they take part in canonical matching.
func LoadSQL(db *sql.DB, name, query string) (*data.Dataset, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	colNames, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	ds := data.New(name)
	cols := make([]*data.Column, len(colNames))
	for i, cn := range colNames {
		col, err := ds.AddColumn(cn)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	values := make([]any, len(colNames))
	scanArgs := make([]any, len(colNames))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	rowNum := 0
	for rows.Next() {
		rowNum++
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", rowNum, err)
		}
		for i, v := range values {
			cols[i].Values = append(cols[i].Values, normalizeSQLValue(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	slog.Info("sql dataset loaded",
		slog.String("dataset", name),
		slog.Int("columns", len(colNames)),
		slog.Int("rows", rowNum),
	)

	return ds, nil
}

// normalizeSQLValue maps driver values onto the dataset's scalar domain.
func normalizeSQLValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	}
	return v
}
