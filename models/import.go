package models

import "fmt"

// ImportRow is one parsed spreadsheet row: canonical field name -> raw cell.
// RowNumber is 1-based and matches the spreadsheet's visible numbering so
// operators can cross-reference errors against the file.
type ImportRow struct {
	RowNumber int               `json:"row_number"`
	Cells     map[string]string `json:"-"`
}

// Outcome kinds assigned to a row by the matcher.
const (
	OutcomeNew    = "NEW"
	OutcomeUpdate = "UPDATE"
	OutcomeSkip   = "SKIP"
	OutcomeError  = "ERROR"
)

// RowOutcome is the classification of a single row.
type RowOutcome struct {
	RowNumber   int             `json:"row_number"`
	Kind        string          `json:"kind"`
	Fields      CandidateFields `json:"fields"`
	ExistingID  uint            `json:"existing_id,omitempty"`   // UPDATE only
	MatchReason string          `json:"match_reason,omitempty"`  // UPDATE only
	Reason      string          `json:"reason,omitempty"`        // SKIP/ERROR only
}

// ImportReport is produced by the analyze phase. Immutable, never persisted.
type ImportReport struct {
	TotalRows      int          `json:"total_rows"`
	NewRecords     int          `json:"new_records"`
	UpdatedRecords int          `json:"updated_records"`
	SkippedRecords int          `json:"skipped_records"`
	ErrorRecords   int          `json:"error_records"`
	NewRows        []RowOutcome `json:"new_rows"`
	UpdatedRows    []RowOutcome `json:"updated_rows"`
	SkippedRows    []RowOutcome `json:"skipped_rows"`
	ErrorRows      []RowOutcome `json:"error_rows"`
	Summary        string       `json:"summary"`
}

// Add files the outcome into the matching bucket and counters.
func (r *ImportReport) Add(o RowOutcome) {
	r.TotalRows++
	switch o.Kind {
	case OutcomeNew:
		r.NewRecords++
		r.NewRows = append(r.NewRows, o)
	case OutcomeUpdate:
		r.UpdatedRecords++
		r.UpdatedRows = append(r.UpdatedRows, o)
	case OutcomeSkip:
		r.SkippedRecords++
		r.SkippedRows = append(r.SkippedRows, o)
	default:
		r.ErrorRecords++
		r.ErrorRows = append(r.ErrorRows, o)
	}
}

// Summarize fills the human-readable summary line.
func (r *ImportReport) Summarize() {
	r.Summary = fmt.Sprintf("%d rows: %d new, %d to update, %d skipped, %d with errors",
		r.TotalRows, r.NewRecords, r.UpdatedRecords, r.SkippedRecords, r.ErrorRecords)
}

// ExecutionError records a row that classified cleanly but failed to commit.
type ExecutionError struct {
	RowNumber int    `json:"row_number"`
	Message   string `json:"message"`
}

// ImportResult is produced by the execute phase. Counts reflect what was
// actually committed; rows that failed mid-commit land in ExecutionErrors
// instead of the created/updated counters.
type ImportResult struct {
	ImportReport
	ExecutionErrors []ExecutionError `json:"execution_errors"`
}
