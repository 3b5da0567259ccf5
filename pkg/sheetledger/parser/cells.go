package parser

import (
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the formatted cell text of a sheet as a Grid.
// Rows are padded to the widest row so trailing empty cells read as "".
// Numeric cells that are not dates are rewritten in ledger notation (see
// LedgerNumber) since excelize formats them with a decimal point.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		for j, text := range row {
			if text == "" || i >= len(raw) || j >= len(raw[i]) {
				continue
			}
			if n, ok := numberCell(f, sheetName, j, i, text, raw[i][j]); ok {
				row[j] = n
			}
		}
	}
	return PadGrid(rows), nil
}

func numberCell(f *excelize.File, sheetName string, col, row int, text, raw string) (string, bool) {
	if strings.Contains(text, "%") {
		return "", false
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", false
	}
	typ, err := f.GetCellType(sheetName, cell)
	if err != nil || (typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber) {
		return "", false
	}
	if dateFormatted(f, sheetName, cell) {
		return "", false
	}

	n, ok := LedgerNumber(raw)
	if !ok {
		return "", false
	}
	if strings.Contains(text, "$") {
		if strings.HasPrefix(n, "-") {
			return "-$" + n[1:], true
		}
		return "$" + n, true
	}
	return n, true
}

// Built-in number formats that render dates or times.
func builtinDate(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 27 && id <= 36) ||
		(id >= 45 && id <= 47) || (id >= 50 && id <= 58)
}

func dateFormatted(f *excelize.File, sheetName, cell string) bool {
	idx, err := f.GetCellStyle(sheetName, cell)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return dateLayout(*style.CustomNumFmt)
	}
	return builtinDate(style.NumFmt)
}

// dateLayout reports whether a custom number format has date or time parts.
// Quoted literals and bracketed sections such as [$-409] or [Red] are ignored.
func dateLayout(code string) bool {
	var b strings.Builder
	quoted, bracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymdhs")
}

// PadGrid returns rows as a rectangular Grid. Excel readers drop trailing
// empty cells; the Sheets API values the ledgers were designed around do not.
func PadGrid(rows [][]string) models.Grid {
	g := models.Grid(rows)
	width := g.Width()
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			g[i] = padded
		}
	}
	return g
}
