/*
PURPOSE:
  Error taxonomy for appending results to a benchmark file.

REQUIREMENTS:
  User-specified:
  - Four terminal failures: empty benchmark, duplicate column, missing
    results file, result/row count mismatch.
  - Messages must say which precondition failed.

  Implementation-discovered:
  - Callers match either the typed error (errors.As, for the fields) or
    the sentinel (errors.Is).

ARCHITECTURE INTEGRATION:
  - Returned by: internal/engine.AppendResults()
  - Printed by: cmd/append-results/main.go

ERROR HANDLING:
  - None are retried; all are raised before the benchmark file is written.

USAGE:
  if errors.Is(err, engine.ErrDuplicateColumn) { ... }

MAINTENANCE:
  - A new failure mode gets a type, a sentinel and an Is method.
*/

package engine

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is by the typed errors below.
var (
	ErrEmptyBenchmark      = errors.New("benchmark file is empty")
	ErrDuplicateColumn     = errors.New("column already exists")
	ErrResultsFileNotFound = errors.New("results file not found")
	ErrRowCountMismatch    = errors.New("result count does not match data rows")
)

// EmptyBenchmarkError means the benchmark file has no rows, not even a header.
type EmptyBenchmarkError struct {
	Path string
}

func (e *EmptyBenchmarkError) Error() string {
	return "Benchmark TSV file is empty."
}

func (e *EmptyBenchmarkError) Is(target error) bool { return target == ErrEmptyBenchmark }

// DuplicateColumnError means the header already holds a cell equal to Model.
type DuplicateColumnError struct {
	Model string
	Path  string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column for model '%s' already exists in benchmark file.", e.Model)
}

func (e *DuplicateColumnError) Is(target error) bool { return target == ErrDuplicateColumn }

// ResultsFileNotFoundError means the model's results file does not exist.
type ResultsFileNotFoundError struct {
	Path string
}

func (e *ResultsFileNotFoundError) Error() string {
	return fmt.Sprintf("Results file %s not found.", e.Path)
}

func (e *ResultsFileNotFoundError) Is(target error) bool { return target == ErrResultsFileNotFound }

// RowCountMismatchError means the results file and the benchmark disagree on row count.
type RowCountMismatchError struct {
	Results  int
	DataRows int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("Number of results (%d) does not match number of data rows (%d).", e.Results, e.DataRows)
}

func (e *RowCountMismatchError) Is(target error) bool { return target == ErrRowCountMismatch }
