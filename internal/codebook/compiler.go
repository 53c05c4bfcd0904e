package codebook

import (
	"log/slog"

	"github.com/anyamemensah/recode-cols/internal/domain/data"
	"github.com/anyamemensah/recode-cols/internal/domain/errors"
)

// Default field names of a codebook table.
const (
	DefaultColumnField = "column_name"
	DefaultOldField    = "old_values"
	DefaultNewField    = "new_labels"
)

// FieldSpec names the three codebook table fields Compile reads.
// Empty fields fall back to the defaults.
type FieldSpec struct {
	Column string // field holding dataset column names
	Old    string // field holding the values to replace
	New    string // field holding the replacement labels
}

func (f FieldSpec) withDefaults() FieldSpec {
	if f.Column == "" {
		f.Column = DefaultColumnField
	}
	if f.Old == "" {
		f.Old = DefaultOldField
	}
	if f.New == "" {
		f.New = DefaultNewField
	}
	return f
}

// Compile turns a flat codebook table into a Codebook. Rows are grouped by
// the column-name field, groups keep the order in which their column first
// appears, and within a group the i-th old value maps to the i-th new
// label. A duplicate old value inside a group collapses to its last
// occurrence.
//
// Compile fails with *errors.SchemaError when a required field is missing
// from the table, *errors.LengthMismatchError when a group collects
// unequal old/new counts, and *errors.TypeMismatchError when a column name
// is null or not a scalar, or an old value is not a comparable scalar.
func Compile(table *data.Dataset, fields FieldSpec) (*Codebook, error) {
	fields = fields.withDefaults()

	names, ok := table.Column(fields.Column)
	if !ok {
		return nil, errors.NewSchemaError(table.Name, fields.Column)
	}
	olds, ok := table.Column(fields.Old)
	if !ok {
		return nil, errors.NewSchemaError(table.Name, fields.Old)
	}
	news, ok := table.Column(fields.New)
	if !ok {
		return nil, errors.NewSchemaError(table.Name, fields.New)
	}

	// Group row positions by column name, first-seen order. Null names
	// are rejected; they never merge with a real "" name.
	order := make([]string, 0)
	groups := make(map[string][]int)
	for i, cell := range names.Values {
		if cell == nil {
			return nil, errors.NewTypeMismatch(fields.Column, i, cell, "column name is null")
		}
		name, err := data.Format(cell)
		if err != nil {
			return nil, errors.NewTypeMismatch(fields.Column, i, cell, "column name is not a scalar")
		}
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], i)
	}

	cb := New()
	for _, name := range order {
		rows := groups[name]

		groupOld := make([]any, 0, len(rows))
		groupNew := make([]any, 0, len(rows))
		groupRows := make([]int, 0, len(rows))
		for _, i := range rows {
			if i < olds.Len() {
				groupOld = append(groupOld, olds.Values[i])
				groupRows = append(groupRows, i)
			}
			if i < news.Len() {
				groupNew = append(groupNew, news.Values[i])
			}
		}
		if len(groupOld) != len(groupNew) {
			return nil, errors.NewLengthMismatch(name, len(groupOld), len(groupNew))
		}

		col := NewColumnCodebook()
		for j, old := range groupOld {
			overwrote, err := col.Set(old, groupNew[j])
			if err != nil {
				return nil, errors.NewTypeMismatch(name, groupRows[j], old, "old value is not a comparable scalar")
			}
			if overwrote {
				slog.Warn("duplicate old value in codebook group, keeping last occurrence",
					slog.String("column", name),
					slog.Any("old_value", old),
					slog.Int("row", groupRows[j]))
			}
		}

		cb.columns[name] = col
		cb.order = append(cb.order, name)
	}

	slog.Debug("codebook compiled",
		slog.String("table", table.Name),
		slog.Int("columns", cb.Len()))

	return cb, nil
}
