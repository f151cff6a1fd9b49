package bulkimport

import (
	"bytes"
	"encoding/csv"
)

// Template returns an example CSV with the accepted header and three
// representative rows, suitable for download. The third row leaves
// displayName blank to show the derivation.
func Template() []byte {
	records := [][]string{
		allColumns,
		{"jdoe", "John", "Doe", "john.doe@company.com", "John Doe", "john.doe.alt@company.com", "EMP001", "true"},
		{"asmith", "Alice", "Smith", "alice.smith@company.com", "Alice Smith", "", "EMP002", "true"},
		{"bjohnson", "Bob", "Johnson", "bob.johnson@company.com", "", "", "", "false"},
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.WriteAll(records) // cannot fail on a bytes.Buffer
	return buf.Bytes()
}
