package data

import (
	"reflect"
	"testing"
)

func TestAddColumnKeepsOrder(t *testing.T) {
	ds := New("survey")

	for _, name := range []string{"id", "sex", "score"} {
		if _, err := ds.AddColumn(name); err != nil {
			t.Fatalf("AddColumn(%q): %v", name, err)
		}
	}

	expected := []string{"id", "sex", "score"}
	if !reflect.DeepEqual(ds.ColumnNames(), expected) {
		t.Errorf("Expected column order %v, got %v", expected, ds.ColumnNames())
	}
	if ds.NumColumns() != 3 {
		t.Errorf("Expected 3 columns, got %d", ds.NumColumns())
	}
}

func TestAddColumnRejectsDuplicates(t *testing.T) {
	ds := New("survey")

	if _, err := ds.AddColumn("sex"); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if _, err := ds.AddColumn("sex"); err == nil {
		t.Error("Expected error for duplicate column, got nil")
	}
}

func TestColumnLookup(t *testing.T) {
	ds := New("survey")
	ds.AddColumn("sex", int64(1), int64(2))

	col, ok := ds.Column("sex")
	if !ok {
		t.Fatal("Expected column 'sex' to exist")
	}
	if col.Len() != 2 {
		t.Errorf("Expected 2 cells, got %d", col.Len())
	}

	if _, ok := ds.Column("ghost"); ok {
		t.Error("Did not expect column 'ghost' to exist")
	}
	if ds.HasColumn("ghost") {
		t.Error("HasColumn: did not expect column 'ghost'")
	}
}

func TestNumRowsUsesLongestColumn(t *testing.T) {
	ds := New("ragged")
	ds.AddColumn("a", 1, 2, 3)
	ds.AddColumn("b", "x")

	if ds.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", ds.NumRows())
	}
}

func TestCopyIsDeep(t *testing.T) {
	ds := New("survey")
	ds.AddColumn("sex", int64(1), int64(2))

	cp := ds.Copy()
	col, _ := cp.Column("sex")
	col.Values[0] = "Male"

	orig, _ := ds.Column("sex")
	if orig.Values[0] != int64(1) {
		t.Errorf("Expected original cell to stay int64(1), got %v", orig.Values[0])
	}

	if !reflect.DeepEqual(cp.ColumnNames(), ds.ColumnNames()) {
		t.Errorf("Expected copied column order %v, got %v", ds.ColumnNames(), cp.ColumnNames())
	}
}

func TestColumnCopy(t *testing.T) {
	col := NewColumn("sex", int64(1), int64(2))
	cp := col.Copy()
	cp.Values[1] = "Female"

	if col.Values[1] != int64(2) {
		t.Errorf("Expected original cell to stay int64(2), got %v", col.Values[1])
	}
}
