package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, sheets map[string]map[string]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, cells := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for cell, v := range cells {
			require.NoError(t, f.SetCellValue(name, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestOpenXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cuadre Mayo.xlsx")
	writeWorkbook(t, path, map[string]map[string]any{
		"CUADRE 14-05-24": {"A1": "Planilla", "C3": 1500},
	})

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, "Cuadre Mayo", wb.Name())
	assert.Equal(t, []string{"CUADRE 14-05-24"}, wb.Sheets())

	g, err := wb.Grid("CUADRE 14-05-24")
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	assert.Equal(t, "Planilla", g.Row(0).Cell(0))
	assert.Equal(t, "1500", g.Row(2).Cell(2))
	assert.Len(t, g.Row(0), 3)

	_, err = wb.Grid("missing")
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	writeWorkbook(t, path, map[string]map[string]any{"GASTOS": {"B2": "Arriendo"}})

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	wb, err := ReadXLSX(file, "book")
	require.NoError(t, err)
	defer wb.Close()

	g, err := wb.Grid("GASTOS")
	require.NoError(t, err)
	assert.Equal(t, "Arriendo", g.Row(1).Cell(1))
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open("ledger.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.xlsx"))
	assert.True(t, Supported("A.XLS"))
	assert.True(t, Supported("macro.xlsm"))
	assert.False(t, Supported("~$a.xlsx"))
	assert.False(t, Supported("notes.txt"))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.xlsx"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "~$b.xlsx"))
	touch(t, filepath.Join(root, "CUADRE DIARIO 2024", "enero.xls"))
	touch(t, filepath.Join(root, "CUADRE DIARIO 2024", "deep", "ignored.xlsx"))
	touch(t, filepath.Join(root, "a.xlsx"))

	got, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "CUADRE DIARIO 2024", "enero.xls"),
		filepath.Join(root, "a.xlsx"),
		filepath.Join(root, "b.xlsx"),
	}, got)

	single := filepath.Join(root, "a.xlsx")
	got, err = Discover(single)
	require.NoError(t, err)
	assert.Equal(t, []string{single}, got)
}

func TestDiscoverErrors(t *testing.T) {
	_, err := Discover(t.TempDir())
	assert.ErrorIs(t, err, ErrNoWorkbooks)

	_, err = Discover(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
