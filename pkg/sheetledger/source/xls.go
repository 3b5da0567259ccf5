package source

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/parser"
)

// xlsWorkbook holds a legacy BIFF workbook fully read into memory.
type xlsWorkbook struct {
	name   string
	sheets []string
	grids  map[string]models.Grid
}

// OpenXLS reads a legacy .xls workbook. Every sheet is materialized at open time.
// The BIFF reader panics on some malformed files; that is reported as an error.
func OpenXLS(path string) (wb Workbook, err error) {
	defer func() {
		if p := recover(); p != nil {
			wb, err = nil, fmt.Errorf("error reading XLS file %s: %v", path, p)
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	book, err := xls.OpenReader(file, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error opening XLS file: %w", err)
	}

	w := &xlsWorkbook{name: baseName(path), grids: make(map[string]models.Grid)}
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		w.sheets = append(w.sheets, sheet.Name)
		w.grids[sheet.Name] = readSheet(sheet)
	}
	return w, nil
}

func readSheet(sheet *xls.WorkSheet) models.Grid {
	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, rowCells(row.FirstCol(), row.LastCol(), row.Col))
	}
	return parser.PadGrid(rows)
}

// rowCells lays out the cells in [first, last) at their column index.
// Columns before first read as "".
func rowCells(first, last int, col func(int) string) []string {
	if last <= 0 {
		return nil
	}
	cells := make([]string, last)
	for c := max(first, 0); c < last; c++ {
		cells[c] = xlsText(col(c))
	}
	return cells
}

// BIFF numbers come back as plain decimals ("1500.5") and text may carry
// trailing NULs. The reader does not expose cell types, so a three digit
// fraction stays as written: "1.500" is a thousands group in the ledgers.
var xlsDecimal = regexp.MustCompile(`^-?\d+\.(\d{1,2}|\d{4,})$`)

func xlsText(s string) string {
	s = strings.TrimRight(s, "\x00")
	if xlsDecimal.MatchString(s) {
		if n, ok := parser.LedgerNumber(s); ok {
			return n
		}
	}
	return s
}

func (w *xlsWorkbook) Name() string { return w.name }

func (w *xlsWorkbook) Sheets() []string { return w.sheets }

func (w *xlsWorkbook) Grid(sheet string) (models.Grid, error) {
	g, ok := w.grids[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s does not exist", sheet)
	}
	return g, nil
}

func (w *xlsWorkbook) Close() error { return nil }
