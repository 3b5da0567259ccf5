package parser

import (
	"fmt"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	"github.com/xuri/excelize/v2"
)

// Bounds is the bounding box of the non-empty cells of a grid (0-based, inclusive).
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	// NonEmpty counts the non-empty cells inside the box.
	NonEmpty int
}

// String renders the box in Excel range notation, e.g. "B2:H40".
func (b Bounds) String() string {
	start, _ := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	end, _ := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	return fmt.Sprintf("%s:%s", start, end)
}

// Density is the share of non-empty cells inside the box.
func (b Bounds) Density() float64 {
	total := (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
	if total <= 0 {
		return 0
	}
	return float64(b.NonEmpty) / float64(total)
}

// DataBounds finds the used range of g. It returns false for a grid whose
// cells are all blank.
func DataBounds(g models.Grid) (Bounds, bool) {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}
	for rowIdx := 0; rowIdx < g.Len(); rowIdx++ {
		row := g.Row(rowIdx)
		for colIdx := range row {
			if row.Cell(colIdx) == "" {
				continue
			}
			b.NonEmpty++
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}
	return b, b.NonEmpty > 0
}
