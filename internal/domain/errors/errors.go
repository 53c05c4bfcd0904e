package errors

import (
	"fmt"
	"strings"
)

// SchemaError reports a required field that is missing from an input table.
// Not recoverable locally; carries the missing field name for the caller.
type SchemaError struct {
	Table string // table name (empty if the table is unnamed)
	Field string // missing field name
}

func (e *SchemaError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("required field %q not found", e.Field))

	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("in table %q", e.Table))
	}

	return "schema error: " + strings.Join(parts, " ")
}

func NewSchemaError(table, field string) *SchemaError {
	return &SchemaError{Table: table, Field: field}
}

// LengthMismatchError reports that positional pairing of old and new values
// within one codebook group produced sequences of unequal length.
type LengthMismatchError struct {
	Column   string // dataset column the group belongs to
	OldCount int
	NewCount int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch in column %q: %d old values paired with %d new values",
		e.Column, e.OldCount, e.NewCount)
}

func NewLengthMismatch(column string, oldCount, newCount int) *LengthMismatchError {
	return &LengthMismatchError{Column: column, OldCount: oldCount, NewCount: newCount}
}

// TypeMismatchError reports a value that cannot take part in equality
// matching between a codebook key and a dataset cell.
type TypeMismatchError struct {
	Column   string // column name (empty if unknown)
	RowIndex int    // row number, 0-based (-1 if unknown)
	Value    any    // offending value
	Reason   string // human-readable explanation (optional)
}

func (e *TypeMismatchError) Error() string {
	var parts []string

	parts = append(parts, "type mismatch")

	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("in column %q", e.Column))
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	parts = append(parts, fmt.Sprintf("value=%v (%T)", e.Value, e.Value))

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " ")
}

func NewTypeMismatch(column string, rowIndex int, value any, reason string) *TypeMismatchError {
	return &TypeMismatchError{Column: column, RowIndex: rowIndex, Value: value, Reason: reason}
}
