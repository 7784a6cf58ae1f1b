// Package csvfile reads and rewrites the delimited text files that back the
// hotel catalog and the review/booking logs. Files follow the original data
// layout: a header row, comma-separated cells, utf-8-sig on disk.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// EncodingError: every encoding in the fallback list failed to decode the file.
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("csvfile: %s: not decodable as utf-8-sig, utf-8 or cp1252", e.Path)
}

// FormatError: a non-empty cell in a known numeric column did not parse.
type FormatError struct {
	Path   string
	Column string
	Value  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("csvfile: %s: column %q: cannot parse %q as a number", e.Path, e.Column, e.Value)
}

// MissingColumnError: a required column is absent from the header row.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("csvfile: %s: required column %q is missing", e.Path, e.Column)
}

// Columns that are normalized to numbers on load. Thousands separators are
// stripped first, so "1,200" reads as 1200.
var numericColumns = []string{"price", "stars", "rating", "num_adults", "num_children", "nights"}

// Row is one record keyed by trimmed column name. Every cell is text; numeric
// columns hold the canonical form produced by normalization.
type Row map[string]string

func (r Row) Str(col string) string { return r[col] }

// Float parses a numeric cell. The second return is false for absent or
// empty cells.
func (r Row) Float(col string) (float64, bool) {
	v, ok := r[col]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

type Table struct {
	Path    string
	Columns []string
	Rows    []Row
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Rename changes a column header and rekeys every row. No-op when the source
// column does not exist.
func (t *Table) Rename(from, to string) {
	found := false
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
			found = true
		}
	}
	if !found {
		return
	}
	for _, r := range t.Rows {
		if v, ok := r[from]; ok {
			r[to] = v
			delete(r, from)
		}
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decoders, tried in order. A leg is skipped only when it reports a decode
// failure, mirroring the original's encoding fallback.
var decoders = []struct {
	name string
	fn   func([]byte) (string, error)
}{
	{"utf-8-sig", decodeUTF8SIG},
	{"utf-8", decodeUTF8},
	{"cp1252", decodeCP1252},
}

func decodeUTF8SIG(b []byte) (string, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid utf-8")
	}
	return string(b), nil
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid utf-8")
	}
	return string(b), nil
}

func decodeCP1252(b []byte) (string, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadTable loads a delimited file into memory: decode with the encoding
// fallback list, trim header names, normalize known numeric columns.
func ReadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var text string
	decoded := false
	for _, d := range decoders {
		s, derr := d.fn(raw)
		if derr != nil {
			continue
		}
		text = s
		decoded = true
		break
	}
	if !decoded {
		return nil, &EncodingError{Path: path}
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfile: %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csvfile: %s: missing header row", path)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	t := &Table{Path: path, Columns: header}
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}

	if err := t.normalizeNumeric(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) normalizeNumeric() error {
	for _, col := range numericColumns {
		if !t.HasColumn(col) {
			continue
		}
		for _, r := range t.Rows {
			v := strings.TrimSpace(r[col])
			if v == "" {
				continue
			}
			f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
			if err != nil {
				return &FormatError{Path: t.Path, Column: col, Value: r[col]}
			}
			r[col] = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return nil
}

// writeTable rewrites the whole file: BOM, header row, then every row in
// order. Cells missing from a row are written empty.
func writeTable(path string, columns []string, rows []Row) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	cw := csv.NewWriter(&buf)
	if err := cw.Write(columns); err != nil {
		return err
	}
	rec := make([]string, len(columns))
	for _, r := range rows {
		for i, col := range columns {
			rec[i] = r[col]
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
