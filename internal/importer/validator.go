package importer

import (
	"fmt"
	"strings"

	"github.com/Hamidziya/crm-edfront/internal/models"
)

// RequiredColumns is the header set every import file must declare.
var RequiredColumns = []string{"title", "description", "name", "email", "mobile"}

// HeaderMap resolves a normalized column name to its position in a
// raw row. It is built once from the first row and interprets every
// row after it.
type HeaderMap map[string]int

// MissingColumnsError reports which required columns the header row
// lacks. It aborts the whole import; no partial mapping is produced.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf(
		"file must contain 'title', 'description', 'name', 'email', and 'mobile' columns (missing: %s)",
		strings.Join(e.Missing, ", "),
	)
}

// BuildHeaderMap normalizes the header row (lower-cased, trimmed) and
// verifies every required column is present.
func BuildHeaderMap(header []string) (HeaderMap, error) {
	headerMap := make(HeaderMap, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		// First occurrence wins for duplicated column names
		if _, ok := headerMap[name]; !ok {
			headerMap[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := headerMap[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	return headerMap, nil
}

// MapRecords interprets each data row against the header map and
// keeps only fully-populated records. Short rows read as empty cells.
// Incomplete rows are dropped, not reported individually; the dropped
// slice carries their 1-based line numbers for aggregate logging.
func MapRecords(headerMap HeaderMap, dataRows [][]string) (records []models.CandidateRecord, dropped []int) {
	for i, row := range dataRows {
		record := models.CandidateRecord{
			Title:       getField(row, headerMap, "title"),
			Description: getField(row, headerMap, "description"),
			Name:        getField(row, headerMap, "name"),
			Email:       getField(row, headerMap, "email"),
			Mobile:      getField(row, headerMap, "mobile"),
		}
		if !record.Complete() {
			// +2: line numbers are 1-based and the header is line 1
			dropped = append(dropped, i+2)
			continue
		}
		records = append(records, record)
	}
	return records, dropped
}

func getField(record []string, headerMap HeaderMap, field string) string {
	if idx, ok := headerMap[field]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
