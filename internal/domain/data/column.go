package data

// Column is a single named dataset column with its cell values in row order.
// Cells are arbitrary scalars; nil marks a missing value.
type Column struct {
	Name   string `json:"name"`
	Values []any  `json:"values"`
}

// NewColumn creates a column over the given values.
func NewColumn(name string, values ...any) *Column {
	return &Column{Name: name, Values: values}
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// Copy creates a deep copy of the column to prevent mutation
func (c *Column) Copy() *Column {
	values := make([]any, len(c.Values))
	copy(values, c.Values)
	return &Column{Name: c.Name, Values: values}
}
