package sheetledger

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/source"
)

// ErrNoWorkbooks indicates the input paths held no readable workbook.
var ErrNoWorkbooks = source.ErrNoWorkbooks

// ExtractionError represents a failure isolated to one workbook, sheet or table.
type ExtractionError struct {
	Workbook string
	Sheet    string
	Table    string // logical table name, empty for sheet-level failures
	Row      int    // 1-based row, 0 when not tied to a row
	Err      error
}

func (e *ExtractionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "extraction error in %q", e.Workbook)
	if e.Sheet != "" {
		fmt.Fprintf(&b, " sheet %q", e.Sheet)
	}
	if e.Table != "" {
		fmt.Fprintf(&b, " (%s)", e.Table)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(workbook, sheet, table string, row int, err error) *ExtractionError {
	return &ExtractionError{
		Workbook: workbook,
		Sheet:    sheet,
		Table:    table,
		Row:      row,
		Err:      err,
	}
}
