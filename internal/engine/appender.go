/*
PURPOSE:
  Appends one model's results as a new trailing column of a benchmark TSV file.

REQUIREMENTS:
  User-specified:
  - Refuse empty benchmarks and model names already present in the header.
  - Results come from `_{model}_result.txt`, one value per non-blank line.
  - Result count must equal the data row count.
  - Overwrite the benchmark file in place.

  Implementation-discovered:
  - All validation runs before the single write, so failures leave the file untouched.
  - History is written after the table; its failure must not fail the append.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/output, internal/model

ERROR HANDLING:
  - Typed errors from errors.go for the four validation failures.
  - Wrapped I/O errors for everything else.

IMPLEMENTATION RULES:
  - Not safe for concurrent use against the same benchmark path.

USAGE:
  rec, err := engine.AppendResults(cfg, "bench.tsv", "modelX")

SELF-HEALING INSTRUCTIONS:
  - If a failure path ever leaves a modified file, check that every new
    validation step sits above the WriteTable call.

RELATED FILES:
  - internal/engine/errors.go
  - internal/output/tsv.go

MAINTENANCE:
  - Update when adding steps between validation and write.
*/

package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/daryltucker/append-results/internal/config"
	"github.com/daryltucker/append-results/internal/model"
	"github.com/daryltucker/append-results/internal/output"
)

// now is replaced in tests.
var now = time.Now

// AppendResults adds modelName's results as a new column of the benchmark file.
func AppendResults(cfg *config.Config, benchmarkPath, modelName string) (*model.AppendRecord, error) {
	table, err := output.ReadTable(benchmarkPath, cfg.DelimiterRune())
	if err != nil {
		return nil, err
	}
	output.Logger.Debug("Loaded benchmark", "path", benchmarkPath, "rows", len(table.Rows()))

	if table.Empty() {
		return nil, &EmptyBenchmarkError{Path: benchmarkPath}
	}
	if table.HasColumn(modelName) {
		return nil, &DuplicateColumnError{Model: modelName, Path: benchmarkPath}
	}

	resultsPath := ResultsPath(cfg, modelName)
	if _, err := os.Stat(resultsPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResultsFileNotFoundError{Path: resultsPath}
		}
		return nil, fmt.Errorf("failed to stat results file %s: %w", resultsPath, err)
	}

	results, err := ReadResults(resultsPath)
	if err != nil {
		return nil, err
	}
	output.Logger.Debug("Loaded results", "path", resultsPath, "count", len(results))

	if len(results) != table.NumDataRows() {
		return nil, &RowCountMismatchError{Results: len(results), DataRows: table.NumDataRows()}
	}

	if err := table.AppendColumn(modelName, results); err != nil {
		return nil, err
	}

	opts := output.WriteOptions{
		Delimiter: cfg.DelimiterRune(),
		CRLF:      cfg.CRLF,
		Atomic:    cfg.AtomicWrite,
	}
	if err := output.WriteTable(benchmarkPath, table, opts); err != nil {
		return nil, err
	}

	rec := &model.AppendRecord{
		Timestamp:     now(),
		BenchmarkPath: benchmarkPath,
		ResultsPath:   resultsPath,
		Model:         modelName,
		DataRows:      table.NumDataRows(),
		Columns:       len(table.Header()),
	}
	output.Logger.Info("Appended results", "model", modelName, "path", benchmarkPath, "rows", rec.DataRows, "columns", rec.Columns)

	if cfg.HistoryFile != "" {
		if err := writeHistory(cfg.HistoryFile, *rec); err != nil {
			output.Logger.Error("Failed to write history", "path", cfg.HistoryFile, "error", err)
		}
	}

	return rec, nil
}

func writeHistory(path string, rec model.AppendRecord) error {
	w, err := output.NewJSONWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
