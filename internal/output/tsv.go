/*
PURPOSE:
  Reads and writes benchmark tables as delimiter-separated text.

REQUIREMENTS:
  User-specified:
  - Tab delimited, one row per line, header first.
  - Cells preserved exactly; no blank lines inserted between rows.

  Implementation-discovered:
  - A blank physical line is a row with no cells. It is counted and written back.
  - Line breaks are universal: \n, \r\n and lone \r all end a row.
  - Quoted cells may contain the delimiter, doubled quotes and line breaks.
    Stray quotes inside an unquoted cell are literal.
  - Only cells containing the delimiter, a quote, \r or \n are quoted on write.
    Leading or trailing spaces are never a reason to quote.
  - encoding/csv drops blank lines and quotes cells with a leading space, so it
    cannot rewrite a table without changing cells nobody touched.
  - CRLF is the line ending for tabular text output.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes/produces: internal/model.Table
  - Dependencies: github.com/google/renameio/v2 for the atomic replace.

ERROR HANDLING:
  - Returns wrapped errors on open, read, write or rename failure.
  - An unterminated quoted cell runs to end of input; it is not an error.
  - Atomic mode cleans up its pending temp file on any failure.

IMPLEMENTATION RULES:
  - Resolve symlinks before replacing, otherwise the rename swaps out the link
    and the real file is never updated.

USAGE:
  t, err := output.ReadTable("bench.tsv", '\t')
  err = output.WriteTable("bench.tsv", t, output.WriteOptions{Delimiter: '\t', CRLF: true, Atomic: true})

SELF-HEALING INSTRUCTIONS:
  - If a rewritten file differs in untouched cells, compare raw bytes in
    output_test.go before touching the decoder states.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Keep decoder and encoder symmetric: anything needsQuotes reports must be
    readable back by the quoted-field states.
*/

package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/daryltucker/append-results/internal/model"
)

const quote = '"'

// WriteOptions controls how a table is serialized.
type WriteOptions struct {
	Delimiter rune
	CRLF      bool
	// Atomic writes to a temp file in the same directory and renames it over the target.
	Atomic bool
}

// ReadTable parses the whole file at path into a Table.
func ReadTable(path string, delim rune) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open benchmark file %s: %w", path, err)
	}
	defer f.Close()

	t, err := DecodeTable(f, delim)
	if err != nil {
		return nil, fmt.Errorf("failed to parse benchmark file %s: %w", path, err)
	}
	return t, nil
}

type decodeState int

const (
	startRecord decodeState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

type decoder struct {
	delim  rune
	state  decodeState
	field  strings.Builder
	record []string
	rows   [][]string
}

func (d *decoder) saveField() {
	d.record = append(d.record, d.field.String())
	d.field.Reset()
}

func (d *decoder) endRecord() {
	d.rows = append(d.rows, d.record)
	d.record = nil
	d.state = startRecord
}

func (d *decoder) step(c rune) {
	switch d.state {
	case startRecord:
		if c == '\n' {
			d.rows = append(d.rows, []string{})
			return
		}
		d.state = startField
		d.step(c)
	case startField:
		switch c {
		case quote:
			d.state = inQuotedField
		case d.delim:
			d.saveField()
		case '\n':
			d.saveField()
			d.endRecord()
		default:
			d.field.WriteRune(c)
			d.state = inField
		}
	case inField:
		switch c {
		case d.delim:
			d.saveField()
			d.state = startField
		case '\n':
			d.saveField()
			d.endRecord()
		default:
			d.field.WriteRune(c)
		}
	case inQuotedField:
		if c == quote {
			d.state = quoteInQuotedField
			return
		}
		d.field.WriteRune(c)
	case quoteInQuotedField:
		switch c {
		case quote:
			d.field.WriteRune(quote)
			d.state = inQuotedField
		case d.delim:
			d.saveField()
			d.state = startField
		case '\n':
			d.saveField()
			d.endRecord()
		default:
			d.field.WriteRune(c)
			d.state = inField
		}
	}
}

// finish closes a last row that has no trailing line break.
func (d *decoder) finish() {
	switch d.state {
	case startRecord:
	case inQuotedField:
		d.saveField()
		d.endRecord()
	default:
		d.step('\n')
	}
}

// DecodeTable parses delimited rows from r.
func DecodeTable(r io.Reader, delim rune) (*model.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	d := &decoder{delim: delim}
	for _, c := range text {
		d.step(c)
	}
	d.finish()

	return model.NewTable(d.rows), nil
}

func needsQuotes(field string, delim rune) bool {
	return strings.ContainsRune(field, delim) || strings.ContainsAny(field, "\"\r\n")
}

// EncodeTable writes every row of t to w.
func EncodeTable(w io.Writer, t *model.Table, opts WriteOptions) error {
	eol := "\n"
	if opts.CRLF {
		eol = "\r\n"
	}

	bw := bufio.NewWriter(w)
	for _, row := range t.Rows() {
		// A lone empty cell is quoted so it does not read back as a blank row.
		if len(row) == 1 && row[0] == "" {
			bw.WriteString(`""`)
		}
		for i, field := range row {
			if i > 0 {
				bw.WriteRune(opts.Delimiter)
			}
			if needsQuotes(field, opts.Delimiter) {
				bw.WriteRune(quote)
				bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
				bw.WriteRune(quote)
				continue
			}
			bw.WriteString(field)
		}
		if _, err := bw.WriteString(eol); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTable overwrites path with t. Symlinks are followed, so the link target
// is what gets replaced.
func WriteTable(path string, t *model.Table, opts WriteOptions) error {
	if !opts.Atomic {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to open %s for writing: %w", path, err)
		}
		if err := EncodeTable(f, t, opts); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return f.Close()
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	pf, err := renameio.NewPendingFile(target,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", target, err)
	}
	defer pf.Cleanup()

	if err := EncodeTable(pf, t, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}
