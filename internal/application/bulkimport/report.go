package bulkimport

type Status string

const (
	StatusSuccess        Status = "success"
	StatusPartialSuccess Status = "partial_success"
	StatusFailed         Status = "failed"
)

type RowStatus string

const (
	RowSuccess RowStatus = "success"
	RowSkipped RowStatus = "skipped"
	RowError   RowStatus = "error"
)

// Policy carries the caller-chosen failure behaviour for one import call.
type Policy struct {
	DryRun          bool
	SkipDuplicates  bool
	ContinueOnError bool
}

// RowOutcome records how a single data row was classified. RowNumber is the
// 1-based position in the file, header line included.
type RowOutcome struct {
	RowNumber int       `json:"row_number"`
	UserName  string    `json:"userName"`
	Status    RowStatus `json:"status"`
	UserID    string    `json:"user_id,omitempty"`
	Message   string    `json:"message"`
	Errors    []string  `json:"errors,omitempty"`
}

// Report is the complete result of one import call. Errors holds file-level
// failures, CSVValidationErrors structural ones; both are kept apart from
// the per-row Results so callers can tell a broken file from broken records.
type Report struct {
	Status                Status       `json:"status"`
	TotalRows             int          `json:"total_rows"`
	SuccessfulImports     int          `json:"successful_imports"`
	FailedImports         int          `json:"failed_imports"`
	SkippedImports        int          `json:"skipped_imports"`
	ProcessingTimeSeconds float64      `json:"processing_time_seconds"`
	Results               []RowOutcome `json:"results"`
	Errors                []string     `json:"errors,omitempty"`
	CSVValidationErrors   []string     `json:"csv_validation_errors,omitempty"`
}

// aggregateStatus is derived once, after the row loop. A skipped row keeps
// the result at partial_success: the import did not do everything the file
// asked for.
func aggregateStatus(successes, totalRows int, csvErrors []string) Status {
	switch {
	case successes == 0:
		return StatusFailed
	case successes == totalRows && len(csvErrors) == 0:
		return StatusSuccess
	default:
		return StatusPartialSuccess
	}
}
