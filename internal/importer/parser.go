package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Import pipeline errors. All of them are recoverable by re-selecting
// a file; none of them leaves partial state behind.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx, .xls or .csv")
	ErrInsufficientData  = errors.New("file doesn't contain enough data")
	ErrNoValidRecords    = errors.New("no valid records found in the file")
)

// ParseFile reads an import file into raw rows: the header row
// followed by data rows, every cell trimmed, blank lines skipped.
// CSV and spreadsheet inputs produce the identical row shape, so
// everything downstream is format-agnostic.
func ParseFile(path string) ([][]string, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, openErr
		}
		defer f.Close()
		rows, err = ParseCSV(f)
	case ".xlsx", ".xls":
		rows, err = parseSheet(path)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	// A header alone is not an import
	if len(rows) < 2 {
		return nil, ErrInsufficientData
	}
	return rows, nil
}

// ParseCSV reads delimited text into raw rows. Quoted cells may embed
// the delimiter; each cell is trimmed and then stripped of one layer
// of surrounding quotes, so whitespace around a quoted cell is
// tolerated rather than rejected.
func ParseCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	var rows [][]string
	for _, line := range strings.Split(string(data), "\n") {
		cells := splitLine(strings.TrimSuffix(line, "\r"))
		blank := true
		for _, cell := range cells {
			if cell != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// splitLine breaks one line on the delimiter, treating commas inside
// quotes as data.
func splitLine(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ',' && !inQuotes:
			cells = append(cells, cleanCell(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(cells, cleanCell(cur.String()))
}

// cleanCell trims surrounding whitespace, then removes one layer of
// surrounding quotes and collapses doubled quotes inside it.
func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`) {
		cell = strings.ReplaceAll(cell[1:len(cell)-1], `""`, `"`)
	}
	return cell
}

// parseSheet delegates binary spreadsheet decoding to excelize and
// normalizes the first sheet into the same row shape as ParseCSV.
func parseSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrInsufficientData
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	var rows [][]string
	for _, record := range raw {
		cells := make([]string, len(record))
		blank := true
		for i, cell := range record {
			cells[i] = strings.TrimSpace(cell)
			if cells[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
