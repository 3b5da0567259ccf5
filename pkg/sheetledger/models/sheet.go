package models

// SheetSummary describes what was extracted from a single sheet.
type SheetSummary struct {
	// Workbook is the workbook file name (no path).
	Workbook string `json:"workbook"`
	// Sheet is the sheet (tab) title.
	Sheet string `json:"sheet"`
	// Date is the ledger date derived from the title, empty for non-ledger tabs.
	Date string `json:"date,omitempty"`
	// Tables lists the logical tables the sheet was routed to.
	Tables []string `json:"tables,omitempty"`
	// Counts maps logical table name to the number of records extracted.
	Counts map[string]int `json:"counts,omitempty"`
	// Skipped is set when the sheet matched no table or was empty.
	Skipped bool `json:"skipped,omitempty"`
}
