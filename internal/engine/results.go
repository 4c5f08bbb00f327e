/*
PURPOSE:
  Locates and parses a model's results file.

REQUIREMENTS:
  User-specified:
  - File name is `_{model}_result.txt`, relative to the working directory.
  - One result per line; blank or whitespace-only lines are ignored;
    kept lines are trimmed; order is preserved.

  Implementation-discovered:
  - Line breaks may be \n, \r\n or a lone \r.
  - The name pattern and directory come from config.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/appender.go
  - Uses: internal/config

ERROR HANDLING:
  - Returns wrapped read errors. Existence is checked by the caller so a
    missing file maps to ResultsFileNotFoundError.

USAGE:
  results, err := engine.ReadResults(engine.ResultsPath(cfg, "gpt-4o"))

RELATED FILES:
  - internal/config/config.go
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/append-results/internal/config"
)

// ResultsPath resolves the results file for modelName.
func ResultsPath(cfg *config.Config, modelName string) string {
	return filepath.Join(cfg.ResultsDir, fmt.Sprintf(cfg.ResultsPattern, modelName))
}

// ReadResults returns the trimmed, non-blank lines of the file at path, in order.
// Lines may end in \n, \r\n or \r.
func ReadResults(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file %s: %w", path, err)
	}
	return ParseResults(string(data)), nil
}

// ParseResults splits s into lines, dropping blank ones and trimming the rest.
func ParseResults(s string) []string {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })

	results := make([]string, 0, len(lines))
	for _, line := range lines {
		if v := strings.TrimSpace(line); v != "" {
			results = append(results, v)
		}
	}
	return results
}
