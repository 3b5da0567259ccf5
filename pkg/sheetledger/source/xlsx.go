package source

import (
	"io"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/parser"
	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	name string
	f    *excelize.File
}

// OpenXLSX opens an Office Open XML workbook.
func OpenXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{name: baseName(path), f: f}, nil
}

// ReadXLSX reads an Office Open XML workbook from r and names it name.
func ReadXLSX(r io.Reader, name string) (Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{name: name, f: f}, nil
}

func (w *xlsxWorkbook) Name() string { return w.name }

func (w *xlsxWorkbook) Sheets() []string { return w.f.GetSheetList() }

func (w *xlsxWorkbook) Grid(sheet string) (models.Grid, error) {
	return parser.ReadGrid(w.f, sheet)
}

func (w *xlsxWorkbook) Close() error { return w.f.Close() }
