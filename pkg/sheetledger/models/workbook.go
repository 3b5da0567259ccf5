package models

// WorkbookSummary represents workbook-level container with per-sheet summaries.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheet summaries in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}
