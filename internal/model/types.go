/*
PURPOSE:
  Defines the core data structures used throughout append-results.
  A Table is the in-memory form of a benchmark TSV file.

REQUIREMENTS:
  User-specified:
  - Row 0 is the header, rows 1..N are data rows.
  - Cells are kept exactly as read (no trimming, no type coercion).

  Implementation-discovered:
  - Header membership must be exact equality, never substring.
  - Data row width is not validated against the header.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - AppendColumn returns an error on empty tables or length mismatch.

USAGE:
  t := model.NewTable(rows)
  if !t.HasColumn(name) { t.AppendColumn(name, values) }

SELF-HEALING INSTRUCTIONS:
  - If new record fields are needed, add them to AppendRecord with a json tag.

RELATED FILES:
  - internal/output/tsv.go
  - internal/engine/appender.go

MAINTENANCE:
  - A blank benchmark line is a row with zero cells; keep it counted.
*/

package model

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Table is a benchmark table: a header row followed by data rows.
type Table struct {
	rows [][]string
}

// NewTable wraps parsed rows. The slice is used as-is, not copied.
func NewTable(rows [][]string) *Table {
	return &Table{rows: rows}
}

// Empty reports whether the table has no rows at all (not even a header).
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Rows returns every row, header first.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Header returns the first row, or nil for an empty table.
func (t *Table) Header() []string {
	if t.Empty() {
		return nil
	}
	return t.rows[0]
}

// DataRows returns all rows after the header.
func (t *Table) DataRows() [][]string {
	if t.Empty() {
		return nil
	}
	return t.rows[1:]
}

// NumDataRows is the row count excluding the header.
func (t *Table) NumDataRows() int {
	if t.Empty() {
		return 0
	}
	return len(t.rows) - 1
}

// HasColumn reports whether name is one of the header cells.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Header(), name)
}

// AppendColumn adds name to the header and values[i] to data row i.
func (t *Table) AppendColumn(name string, values []string) error {
	if t.Empty() {
		return errors.New("cannot append a column to an empty table")
	}
	if len(values) != t.NumDataRows() {
		return fmt.Errorf("column %q has %d values for %d data rows", name, len(values), t.NumDataRows())
	}

	t.rows[0] = append(t.rows[0], name)
	for i, v := range values {
		t.rows[i+1] = append(t.rows[i+1], v)
	}
	return nil
}

// AppendRecord summarizes one successful append.
type AppendRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	BenchmarkPath string    `json:"benchmark_path"`
	ResultsPath   string    `json:"results_path"`
	Model         string    `json:"model"`
	DataRows      int       `json:"data_rows"`
	Columns       int       `json:"columns"` // header width after the append
}
