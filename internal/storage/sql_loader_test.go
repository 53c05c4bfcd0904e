package storage

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/anyamemensah/recode-cols/internal/testutil"
)

// Minimal read-only driver so LoadSQL can run against canned rows.

type stubRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *stubRows) Columns() []string { return r.columns }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

type stubStmt struct{ rows *stubRows }

func (s *stubStmt) Close() error  { return nil }
func (s *stubStmt) NumInput() int { return 0 }

func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, fmt.Errorf("stub driver is read-only")
}

func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.rows, nil
}

type stubConn struct{ rows *stubRows }

func (c *stubConn) Prepare(query string) (driver.Stmt, error) { return &stubStmt{rows: c.rows}, nil }
func (c *stubConn) Close() error                              { return nil }
func (c *stubConn) Begin() (driver.Tx, error)                 { return nil, fmt.Errorf("stub driver has no transactions") }

type stubDriver struct{ rows *stubRows }

func (d *stubDriver) Open(name string) (driver.Conn, error) { return &stubConn{rows: d.rows}, nil }

func TestLoadSQL(t *testing.T) {
	joined := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sql.Register("stub", &stubDriver{rows: &stubRows{
		columns: []string{"id", "sex", "joined"},
		rows: [][]driver.Value{
			{int64(1), []byte("1"), joined},
			{int64(2), []byte("2"), joined},
		},
	}})

	db, err := sql.Open("stub", "")
	testutil.AssertNoError(t, err, "open stub database")
	defer db.Close()

	ds, err := LoadSQL(db, "respondents", "SELECT id, sex, joined FROM respondents")
	testutil.AssertNoError(t, err, "load sql dataset")

	if ds.Name != "respondents" {
		t.Errorf("Expected dataset name 'respondents', got %q", ds.Name)
	}
	testutil.AssertRowCount(t, ds.NumRows(), 2, "row count")

	testutil.AssertColumnValues(t, ds, "id", []any{int64(1), int64(2)}, "id column")
	testutil.AssertColumnValues(t, ds, "sex", []any{"1", "2"}, "bytes normalized to text")
	testutil.AssertColumnValues(t, ds, "joined",
		[]any{joined.Format(time.RFC3339), joined.Format(time.RFC3339)}, "times normalized to text")
}
