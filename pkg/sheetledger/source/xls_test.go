package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

func TestOpenXLS(t *testing.T) {
	wb, err := Open(filepath.Join("testdata", "table.xls"))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, "table", wb.Name())
	require.NotEmpty(t, wb.Sheets())

	for _, name := range wb.Sheets() {
		g, err := wb.Grid(name)
		require.NoError(t, err, name)
		width := g.Width()
		for i := 0; i < g.Len(); i++ {
			assert.Len(t, g.Row(i), width, "%s row %d", name, i+1)
		}
	}

	_, err = wb.Grid("Nope")
	assert.EqualError(t, err, "sheet Nope does not exist")
}

func TestOpenXLSCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xls")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook, just some bytes"), 0644))

	wb, err := Open(path)
	assert.Error(t, err)
	assert.Nil(t, wb)
}

func TestXLSWorkbookGrid(t *testing.T) {
	wb := &xlsWorkbook{
		name:   "ledger",
		sheets: []string{"05/01/2024"},
		grids:  map[string]models.Grid{"05/01/2024": {{"a", "b"}}},
	}

	g, err := wb.Grid("05/01/2024")
	require.NoError(t, err)
	assert.Equal(t, models.Grid{{"a", "b"}}, g)

	_, err = wb.Grid("06/01/2024")
	assert.Error(t, err)
	assert.NoError(t, wb.Close())
}

func TestRowCells(t *testing.T) {
	values := map[int]string{2: "Efectivo\x00\x00", 3: "1500.5", 4: "1.500"}
	col := func(i int) string { return values[i] }

	assert.Equal(t, []string{"", "", "Efectivo", "1500,5", "1.500"}, rowCells(2, 5, col))
	assert.Nil(t, rowCells(0, 0, col))
}

func TestXLSText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1500.5", "1500,5"},
		{"12.25", "12,25"},
		{"-250.75", "-250,75"},
		{"0.3333333333", "0,33"},
		{"1.500", "1.500"},
		{"3000", "3000"},
		{"$1.500,50", "$1.500,50"},
		{"Pago\x00", "Pago"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, xlsText(tt.input))
		})
	}
}
