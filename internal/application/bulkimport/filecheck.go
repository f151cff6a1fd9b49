package bulkimport

import (
	"fmt"
	"strings"
)

// validateFile rejects an upload before any content is read: extension and
// declared size only.
func (s *Service) validateFile(fileName string, size int64) []string {
	var errs []string

	if !strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		errs = append(errs, "File must be a CSV file with .csv extension")
	}
	if size > s.cfg.MaxFileBytes {
		errs = append(errs, fmt.Sprintf("File size %d bytes exceeds maximum allowed size of %d bytes", size, s.cfg.MaxFileBytes))
	}

	return errs
}

// Limits describes the accepted upload shape; served by the info endpoint.
type Limits struct {
	MaxFileBytes    int64    `json:"max_file_size_bytes"`
	MaxRows         int      `json:"max_users_per_import"`
	RequiredColumns []string `json:"required_columns"`
	OptionalColumns []string `json:"optional_columns"`
	Format          string   `json:"format"`
}

func (s *Service) Limits() Limits {
	return Limits{
		MaxFileBytes:    s.cfg.MaxFileBytes,
		MaxRows:         s.cfg.MaxRows,
		RequiredColumns: requiredColumns,
		OptionalColumns: optionalColumns,
		Format:          "text/csv",
	}
}
