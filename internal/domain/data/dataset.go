package data

import "fmt"

// Dataset is a minimal columnar table: named columns in insertion order,
// cells in row order. Columns are independent, so ragged input (columns of
// unequal length) is representable; consumers validate what they need.
type Dataset struct {
	Name    string
	columns []*Column
	byName  map[string]int
}

// New creates an empty dataset.
func New(name string) *Dataset {
	return &Dataset{
		Name:   name,
		byName: make(map[string]int),
	}
}

// AddColumn appends a column and returns it.
// Column names are unique within a dataset.
func (d *Dataset) AddColumn(name string, values ...any) (*Column, error) {
	if _, exists := d.byName[name]; exists {
		return nil, fmt.Errorf("dataset %q: duplicate column %q", d.Name, name)
	}

	col := NewColumn(name, values...)
	d.byName[name] = len(d.columns)
	d.columns = append(d.columns, col)
	return col, nil
}

// Column returns the named column and true, or nil and false.
func (d *Dataset) Column(name string) (*Column, bool) {
	pos, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return d.columns[pos], true
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Columns returns the columns in insertion order.
// The slice is shared; callers must not reorder it.
func (d *Dataset) Columns() []*Column {
	return d.columns
}

// ColumnNames returns the column names in insertion order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// NumRows returns the length of the longest column.
func (d *Dataset) NumRows() int {
	rows := 0
	for _, col := range d.columns {
		if col.Len() > rows {
			rows = col.Len()
		}
	}
	return rows
}

// Copy creates a deep copy of the dataset to prevent mutation
func (d *Dataset) Copy() *Dataset {
	out := New(d.Name)
	for _, col := range d.columns {
		out.byName[col.Name] = len(out.columns)
		out.columns = append(out.columns, col.Copy())
	}
	return out
}
