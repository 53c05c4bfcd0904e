package testutil

import (
	"reflect"
	"testing"

	"github.com/anyamemensah/recode-cols/internal/domain/data"
)

// AssertRowCount checks if the dataset has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if the dataset has the expected number of columns
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks if a column exists in a dataset
func AssertColumnExists(t *testing.T, ds *data.Dataset, column, context string) {
	t.Helper()
	if !ds.HasColumn(column) {
		t.Errorf("%s: expected column '%s' to exist", context, column)
	}
}

// AssertColumnValues checks that a dataset column holds exactly the expected values
func AssertColumnValues(t *testing.T, ds *data.Dataset, column string, expected []any, context string) {
	t.Helper()
	col, ok := ds.Column(column)
	if !ok {
		t.Errorf("%s: expected column '%s' to exist", context, column)
		return
	}
	if len(col.Values) != len(expected) {
		t.Errorf("%s: column '%s': expected %d values, got %d", context, column, len(expected), len(col.Values))
		return
	}
	for i, want := range expected {
		if !reflect.DeepEqual(col.Values[i], want) {
			t.Errorf("%s: column '%s' row %d: expected %v (%T), got %v (%T)",
				context, column, i, want, want, col.Values[i], col.Values[i])
		}
	}
}

// AssertDatasetsEqual checks two datasets for identical columns, order and values
func AssertDatasetsEqual(t *testing.T, actual, expected *data.Dataset, context string) {
	t.Helper()
	actualNames := actual.ColumnNames()
	expectedNames := expected.ColumnNames()
	if !reflect.DeepEqual(actualNames, expectedNames) {
		t.Errorf("%s: expected columns %v, got %v", context, expectedNames, actualNames)
		return
	}
	for _, name := range expectedNames {
		want, _ := expected.Column(name)
		AssertColumnValues(t, actual, name, want.Values, context)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertNullValue checks if a value is nil
func AssertNullValue(t *testing.T, value any, context string) {
	t.Helper()
	if value != nil {
		t.Errorf("%s: expected NULL value, got: %v", context, value)
	}
}
