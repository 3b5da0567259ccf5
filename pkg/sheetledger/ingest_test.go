package sheetledger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/output"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/parser"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/source"
	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name  string
	cells map[string]any
}

// ledgerSheet is a daily ledger: sales with a two-row header at rows 6-7 and
// a recharges table further down.
var ledgerSheet = testSheet{
	name: "CUADRE 14-05-24",
	cells: map[string]any{
		"C1": "CUADRE DIARIO",
		"C6": "CLIENTES", "D6": "CANT", "E6": "PRECIO", "F6": "TOTAL A",
		"G6": "EFEC", "H6": "TRF", "I6": "TARJ", "J6": "PENDIENTE",
		"F7": "PAGAR",
		"C8": "Juan", "D8": "2", "E8": "$1.500", "F8": "$3.000", "G8": "$3.000",
		"C9": "Ana", "D9": "1", "E9": "$1.500", "F9": "$1.500", "H9": "$1.500",
		"C10": "TOTAL", "F10": "$4.500",
		"C12": "RECARGAS DE 10 LTS",
		"C13": "CLIENTE", "D13": "PRODUCTO", "I13": "CANT", "J13": "PRECIO", "K13": "TOTAL",
		"L13": "EFECTIVO", "M13": "TRANSF", "N13": "TARJETA", "O13": "PENDIENTE",
		"C14": "Rosa", "D14": "Bidón", "I14": "2", "J14": "$1.000", "K14": "$2.000", "L14": "$2.000",
	},
}

var expenseSheet = testSheet{
	name: "GASTOS",
	cells: map[string]any{
		"B2": "COSTOS FIJOS",
		"B3": "Arriendo", "C3": "2024-01-05", "G3": "200", "H3": "$50.000",
	},
}

func writeWorkbook(t *testing.T, path string, sheets ...testSheet) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for cell, v := range s.cells {
			require.NoError(t, f.SetCellValue(s.name, cell, v))
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, f.SaveAs(path))
}

func TestIngestWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Planta 2024.xlsx")
	writeWorkbook(t, path,
		ledgerSheet,
		testSheet{name: "CUADRE sin fecha", cells: map[string]any{"A1": "x"}},
		expenseSheet,
		testSheet{name: "Notas", cells: map[string]any{"A1": "recordar"}},
	)

	wb, err := source.Open(path)
	require.NoError(t, err)
	defer wb.Close()

	ts, report, err := IngestWorkbook(context.Background(), wb, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, ts.Sales, 2)
	assert.Equal(t, models.Sale{
		Date: "2024-05-14", Client: "Juan", Quantity: 2, Price: 1500, Total: 3000,
		Payments: models.Payments{Cash: 3000},
	}, ts.Sales[0])
	assert.Equal(t, 1500.0, ts.Sales[1].Transfer)

	require.Len(t, ts.Recharges, 1)
	assert.Equal(t, "Rosa", ts.Recharges[0].Client)
	assert.Equal(t, "2024-05-14", ts.Recharges[0].Date)
	assert.Empty(t, ts.Pending)

	require.Len(t, ts.Expenses, 1)
	assert.Equal(t, "COSTOS FIJOS", ts.Expenses[0].Category)
	assert.Equal(t, 50000.0, ts.Expenses[0].Amount)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "CUADRE sin fecha", report.Errors[0].Sheet)
	assert.ErrorIs(t, report.Errors[0], parser.ErrSheetDate)

	require.Len(t, report.Workbooks, 1)
	sheets := report.Workbooks[0].Sheets
	require.Len(t, sheets, 4)
	assert.Equal(t, "2024-05-14", sheets[0].Date)
	assert.Equal(t, map[string]int{"sales": 2, "recharges": 1, "pending": 0}, sheets[0].Counts)
	assert.True(t, sheets[1].Skipped)
	assert.Equal(t, []string{"expenses"}, sheets[2].Tables)
	assert.True(t, sheets[3].Skipped)
	assert.Equal(t, 4, report.Sheets())
}

func TestIngestFolder(t *testing.T) {
	root := t.TempDir()
	writeWorkbook(t, filepath.Join(root, "CUADRE DIARIO 2024", "mayo.xlsx"), ledgerSheet)
	writeWorkbook(t, filepath.Join(root, "gastos.xlsx"), expenseSheet)
	require.NoError(t, os.WriteFile(filepath.Join(root, "roto.xlsx"), []byte("garbage"), 0644))

	opts := DefaultOptions()
	opts.SheetDelay = time.Millisecond
	ts, report, err := Ingest(context.Background(), []string{root}, opts)
	require.NoError(t, err)

	assert.Len(t, ts.Sales, 2)
	assert.Len(t, ts.Expenses, 1)
	assert.Len(t, report.Workbooks, 2)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "roto.xlsx", report.Errors[0].Workbook)
}

func TestIngestTablesOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Planta.xlsx")
	writeWorkbook(t, path, ledgerSheet)

	opts := DefaultOptions()
	opts.Tables = []string{"recharges"}
	ts, _, err := Ingest(context.Background(), []string{path}, opts)
	require.NoError(t, err)

	assert.Empty(t, ts.Sales)
	assert.Len(t, ts.Recharges, 1)
}

// stubWorkbook serves in-memory grids. Grid panics for sheets listed in panics.
type stubWorkbook struct {
	name     string
	sheets   []string
	grids    map[string]models.Grid
	panics   map[string]bool
	closeErr error
}

func (w *stubWorkbook) Name() string     { return w.name }
func (w *stubWorkbook) Sheets() []string { return w.sheets }
func (w *stubWorkbook) Close() error     { return w.closeErr }

func (w *stubWorkbook) Grid(sheet string) (models.Grid, error) {
	if w.panics[sheet] {
		panic("index out of range")
	}
	g, ok := w.grids[sheet]
	if !ok {
		return nil, errors.New("no such sheet")
	}
	return g, nil
}

func TestIngestWorkbookRecoversSheetPanic(t *testing.T) {
	wb := &stubWorkbook{
		name:   "Planta",
		sheets: []string{"CUADRE 13-05-24", "CUADRE 14-05-24"},
		grids: map[string]models.Grid{
			"CUADRE 14-05-24": salesGrid([]string{"", "", "Juan", "2", "$1.500", "$3.000", "$3.000", "", "", ""}),
		},
		panics: map[string]bool{"CUADRE 13-05-24": true},
	}

	ts, report, err := IngestWorkbook(context.Background(), wb, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "CUADRE 13-05-24", report.Errors[0].Sheet)
	assert.ErrorContains(t, report.Errors[0], "panic: index out of range")

	require.Len(t, ts.Sales, 1)
	assert.Equal(t, "Juan", ts.Sales[0].Client)
	assert.Equal(t, "2024-05-14", ts.Sales[0].Date)

	sheets := report.Workbooks[0].Sheets
	require.Len(t, sheets, 2)
	assert.True(t, sheets[0].Skipped)
	assert.False(t, sheets[1].Skipped)
}

func TestCloseFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	r := newRun(opts)
	r.close(&stubWorkbook{name: "Planta", closeErr: errors.New("disk gone")})

	out := buf.String()
	assert.Contains(t, out, "closing workbook failed")
	assert.Contains(t, out, "workbook=Planta")
	assert.Contains(t, out, `error="disk gone"`)

	buf.Reset()
	r.close(&stubWorkbook{name: "Planta"})
	assert.NotContains(t, buf.String(), "closing workbook failed")
}

func TestIngestNoWorkbooks(t *testing.T) {
	_, _, err := Ingest(context.Background(), []string{t.TempDir()}, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoWorkbooks)
}

func TestIngestCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Planta.xlsx")
	writeWorkbook(t, path, ledgerSheet, expenseSheet)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ts, _, err := Ingest(ctx, []string{path}, DefaultOptions())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, ts.Len())
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)

	assert.NoError(t, sleep(context.Background(), 0))
}

func salesGrid(data ...[]string) models.Grid {
	rows := [][]string{
		{"", "", "CUADRE DIARIO"},
		{}, {}, {}, {},
		{"", "", "CLIENTES", "CANT", "PRECIO", "TOTAL A", "EFEC", "TRF", "TARJ", "PENDIENTE"},
		{"", "", "", "", "", "PAGAR"},
	}
	return parser.PadGrid(append(rows, data...))
}

func TestExtractSheet(t *testing.T) {
	g := salesGrid(
		[]string{"", "", "Juan", "2", "$1.500", "$3.000", "$3.000", "", "", ""},
		[]string{"", "", "TOTAL VENTAS", "", "", "$3.000", "", "", "", ""},
		[]string{"", "", "Pedro", "1", "$1.500", "$1.500", "$1.500", "", "", ""},
	)

	ts, errs := ExtractSheet(g, "2024-05-14", Kinds{Sales: true, Recharges: true, Pending: true})
	assert.Empty(t, errs)
	require.Len(t, ts.Sales, 1)
	assert.Equal(t, "Juan", ts.Sales[0].Client)
	assert.Empty(t, ts.Recharges)
	assert.Empty(t, ts.Pending)
}

func TestExtractSheetSchemaFailureIsolated(t *testing.T) {
	g := salesGrid([]string{"", "", "Juan", "2", "$1.500", "$3.000", "$3.000", "", "", ""})
	g[5][9] = "OTRO"
	g = append(g,
		[]string{"", "", "PAGOS PENDIENTE", "", "", "", "", "", "", ""},
		[]string{"", "", "CLIENTE", "PRODUCTO", "", "", "", "", "FECHA", ""},
		[]string{"", "", "Ana", "Bidón", "", "", "", "", "1/5/24", ""},
	)

	ts, errs := ExtractSheet(g, "2024-05-14", Kinds{Sales: true, Pending: true})

	require.Len(t, errs, 1)
	assert.Equal(t, "sales", errs[0].Table)
	assert.ErrorIs(t, errs[0], parser.ErrSchemaNotFound)
	assert.Empty(t, ts.Sales)
	// Debt columns beyond the grid read as zero, so the row is dropped.
	assert.Empty(t, ts.Pending)
}

func TestExtractSheetIsIdempotent(t *testing.T) {
	g := salesGrid(
		[]string{"", "", "Juan", "2", "$1.500", "$3.000", "$3.000", "", "", ""},
		[]string{"", "", "Ana", "1", "$1.500", "$1.500", "", "$1.500", "", ""},
	)
	kinds := Kinds{Sales: true, Recharges: true, Pending: true}

	first, _ := ExtractSheet(g, "2024-05-14", kinds)
	second, _ := ExtractSheet(g, "2024-05-14", kinds)

	a, err := output.ToJSON(&first, false)
	require.NoError(t, err)
	b, err := output.ToJSON(&second, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
