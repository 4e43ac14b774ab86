// Package csvutil reads uploaded tabular files into ordered row mappings
// keyed by cleaned column names.
package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned when the file has no header row at all.
var ErrNoHeader = errors.New("csv file has no header row")

// Record maps a cleaned column name to the raw cell value for one data row.
type Record map[string]string

// Get returns the value of the first alias present in the record.
// Aliases are matched against cleaned (lowercased) column names; the
// returned value is trimmed. Missing aliases yield the empty string.
func (r Record) Get(aliases ...string) string {
	for _, alias := range aliases {
		if v, ok := r[CleanHeader(alias)]; ok {
			if v = CleanCell(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// Has reports whether any of the aliases exists as a column in the record,
// regardless of the cell value.
func (r Record) Has(aliases ...string) bool {
	for _, alias := range aliases {
		if _, ok := r[CleanHeader(alias)]; ok {
			return true
		}
	}
	return false
}

// CleanHeader normalizes a column name for lookup: strips a UTF-8 BOM,
// trims whitespace and lowercases.
func CleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanCell trims surrounding whitespace from a cell value.
func CleanCell(s string) string {
	return strings.TrimSpace(s)
}

// ParseRecords reads an entire CSV stream into records, preserving file row
// order. The first row is the header. Fully empty rows are dropped; ragged
// rows are tolerated (missing trailing cells are simply absent from the
// record). The returned slice is empty, not nil, for a header-only file.
func ParseRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = CleanHeader(h)
	}

	records := make([]Record, 0)
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		record := make(Record, len(columns))
		for i, cell := range row {
			if i >= len(columns) {
				break
			}
			record[columns[i]] = cell
		}
		records = append(records, record)
	}

	return records, nil
}
