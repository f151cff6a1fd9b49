package bulkimport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Column set accepted in upload files. Anything else is ignored.
var (
	requiredColumns = []string{"userName", "firstName", "surName", "email"}
	optionalColumns = []string{"displayName", "secondaryEmail", "externalId", "active"}
	allColumns      = append(append([]string{}, requiredColumns...), optionalColumns...)
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// rawRow is one data line after trimming. Only cells with content survive:
// an all-whitespace cell is "not provided", not an empty string. The active
// flag is normalized to a bool up front.
type rawRow struct {
	number int // 1-based line in the file, header included
	fields map[string]string
	active *bool
}

// parseCSV decodes the upload and returns the surviving rows plus any
// structural error messages. Rows past maxRows are not parsed; a single
// truncation notice is appended and earlier rows are kept.
func parseCSV(content []byte, maxRows int) ([]rawRow, []string) {
	var errs []string

	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, []string{"Unable to decode CSV file. Please ensure it's saved as UTF-8"}
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, []string{"CSV file appears to be empty or malformed"}
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	if missing := missingRequired(columns); len(missing) > 0 {
		return nil, []string{fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", "))}
	}

	known := make(map[string]bool, len(allColumns))
	for _, column := range allColumns {
		known[column] = true
	}

	var rows []rawRow
	lineNumber := 1 // header is line 1; the first data row is 2
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNumber++
		if err != nil {
			errs = append(errs, fmt.Sprintf("CSV parsing error: %v", err))
			break
		}

		if len(rows) >= maxRows {
			errs = append(errs, fmt.Sprintf("Maximum number of users (%d) exceeded", maxRows))
			break
		}

		row := rawRow{number: lineNumber, fields: map[string]string{}}
		for i, cell := range record {
			if i >= len(columns) {
				break
			}
			column := columns[i]
			if !known[column] {
				continue
			}
			value := strings.TrimSpace(cell)
			if value == "" {
				continue
			}
			if column == "active" {
				active := parseActive(value)
				row.active = &active
				continue
			}
			row.fields[column] = value
		}

		// A line that contributed nothing is dropped silently and does
		// not consume a row slot.
		if len(row.fields) == 0 && row.active == nil {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 && len(errs) == 0 {
		errs = append(errs, "No valid user data found in CSV file")
	}

	return rows, errs
}

func missingRequired(columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[column] = true
	}

	var missing []string
	for _, column := range requiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	return missing
}

// parseActive maps the permissive set of truthy/falsy spellings. Anything
// unrecognized counts as active.
func parseActive(value string) bool {
	switch strings.ToLower(value) {
	case "false", "0", "no", "inactive":
		return false
	default:
		return true
	}
}
