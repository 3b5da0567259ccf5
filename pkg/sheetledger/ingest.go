package sheetledger

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/parser"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/source"
)

// Report summarizes an ingestion run.
type Report struct {
	// Workbooks lists what was extracted from each workbook, in processing order.
	Workbooks []models.WorkbookSummary `json:"workbooks"`
	// Errors lists every isolated failure. A failure never stops the run.
	Errors []*ExtractionError `json:"-"`
}

// Sheets returns the number of sheets visited.
func (r *Report) Sheets() int {
	n := 0
	for _, wb := range r.Workbooks {
		n += len(wb.Sheets)
	}
	return n
}

// Ingest extracts every routed sheet of the workbooks found under paths.
// Paths may be workbook files or folders (see source.Discover). Workbooks and
// sheets are processed sequentially; a failing workbook, sheet or table is
// recorded in the Report and skipped. The returned error is non-nil only when
// no workbook could be discovered or ctx is cancelled; partial results are
// returned in both cases where available.
func Ingest(ctx context.Context, paths []string, opts Options) (*models.TableSet, *Report, error) {
	files, err := source.Discover(paths...)
	if err != nil {
		return nil, nil, err
	}

	r := newRun(opts)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return r.tables, r.report, err
		}

		wb, err := source.Open(path)
		if err != nil {
			r.fail(NewExtractionError(filepath.Base(path), "", "", 0, err))
			continue
		}
		err = r.workbook(ctx, wb)
		r.close(wb)
		if err != nil {
			return r.tables, r.report, err
		}
	}
	return r.tables, r.report, nil
}

// IngestWorkbook extracts every routed sheet of an already opened workbook.
// The caller keeps ownership of wb.
func IngestWorkbook(ctx context.Context, wb source.Workbook, opts Options) (*models.TableSet, *Report, error) {
	r := newRun(opts)
	err := r.workbook(ctx, wb)
	return r.tables, r.report, err
}

// ExtractSheet runs the extractors selected by kinds over one sheet grid.
// date is the ledger date stamped on sales, recharges and pending payments.
// Failures are returned with Table and Row set; Workbook and Sheet are left
// for the caller.
func ExtractSheet(g models.Grid, date string, kinds Kinds) (models.TableSet, []*ExtractionError) {
	return extractSheet(g, date, kinds, DefaultOptions().logger())
}

type run struct {
	opts   Options
	log    *slog.Logger
	tables *models.TableSet
	report *Report
	sheets int
}

func newRun(opts Options) *run {
	return &run{
		opts:   opts,
		log:    opts.logger(),
		tables: &models.TableSet{},
		report: &Report{},
	}
}

func (r *run) fail(e *ExtractionError) {
	r.report.Errors = append(r.report.Errors, e)
	r.log.Warn("extraction failed",
		slog.String("workbook", e.Workbook),
		slog.String("sheet", e.Sheet),
		slog.String("table", e.Table),
		slog.Int("row", e.Row),
		slog.Any("error", e.Err))
}

func (r *run) close(wb source.Workbook) {
	if err := wb.Close(); err != nil {
		r.log.Warn("closing workbook failed",
			slog.String("workbook", wb.Name()),
			slog.Any("error", err))
	}
}

func (r *run) workbook(ctx context.Context, wb source.Workbook) error {
	log := r.log.With(slog.String("workbook", wb.Name()))
	log.Info("opening workbook", slog.Int("sheets", len(wb.Sheets())))

	summary := models.WorkbookSummary{BookName: wb.Name()}
	defer func() {
		r.report.Workbooks = append(r.report.Workbooks, summary)
	}()

	for _, title := range wb.Sheets() {
		if r.sheets > 0 {
			if err := sleep(ctx, r.opts.SheetDelay); err != nil {
				return err
			}
		}
		r.sheets++
		summary.Sheets = append(summary.Sheets, r.sheet(wb, title, log))
	}
	return nil
}

// sheet processes one tab. A panic in an extractor is contained to the tab.
func (r *run) sheet(wb source.Workbook, title string, log *slog.Logger) (s models.SheetSummary) {
	s = models.SheetSummary{Workbook: wb.Name(), Sheet: title, Skipped: true}
	log = log.With(slog.String("sheet", title))

	defer func() {
		if p := recover(); p != nil {
			s.Skipped = true
			r.fail(NewExtractionError(wb.Name(), title, "", 0, fmt.Errorf("panic: %v", p)))
		}
	}()

	kinds := Classify(wb.Name(), title, r.opts)
	if !kinds.Any() {
		log.Debug("sheet not routed")
		return s
	}

	if kinds.Ledger() {
		date, err := parser.ParseSheetDate(title)
		if err != nil {
			r.fail(NewExtractionError(wb.Name(), title, "", 0, err))
			kinds.Sales, kinds.Recharges, kinds.Pending = false, false, false
		}
		s.Date = date
	}
	if !kinds.Any() {
		return s
	}

	g, err := wb.Grid(title)
	if err != nil {
		r.fail(NewExtractionError(wb.Name(), title, "", 0, err))
		return s
	}
	bounds, ok := parser.DataBounds(g)
	if !ok {
		log.Info("sheet is empty")
		return s
	}
	log.Debug("processing sheet",
		slog.String("range", bounds.String()),
		slog.Any("tables", kinds.Tables()))

	ts, errs := extractSheet(g, s.Date, kinds, log)
	for _, e := range errs {
		e.Workbook, e.Sheet = wb.Name(), title
		r.fail(e)
	}
	r.tables.Merge(ts)

	s.Skipped = false
	s.Tables = kinds.Tables()
	s.Counts = make(map[string]int, len(s.Tables))
	counts := ts.Counts()
	for _, t := range s.Tables {
		s.Counts[t] = counts[t]
	}
	log.Info("sheet processed", slog.Any("counts", s.Counts))
	return s
}

func extractSheet(g models.Grid, date string, kinds Kinds, log *slog.Logger) (models.TableSet, []*ExtractionError) {
	var (
		ts   models.TableSet
		errs []*ExtractionError
	)
	sc := parser.SheetContext{Date: date}

	if kinds.Sales {
		res, err := parser.ExtractSales(g, sc)
		if err != nil {
			errs = append(errs, NewExtractionError("", "", models.SalesSchema.Key, 0, err))
		} else {
			logResult(log, models.SalesSchema.Key, res)
			ts.Sales = res.Records
		}
	}
	if kinds.Recharges {
		ts.Recharges = table(g, parser.RechargesSpec, sc, log, &errs)
	}
	if kinds.Pending {
		ts.Pending = table(g, parser.PendingSpec, sc, log, &errs)
	}
	if kinds.Addons {
		ts.Addons = table(g, parser.AddonsSpec, sc, log, &errs)
	}
	if kinds.Route {
		ts.Route = table(g, parser.RouteSpec, sc, log, &errs)
	}
	if kinds.Expenses {
		ts.Expenses = parser.ExtractExpenses(g)
		log.Debug("table extracted",
			slog.String("table", models.ExpensesSchema.Key),
			slog.Int("records", len(ts.Expenses)))
	}
	return ts, errs
}

// table extracts one anchored table, recording a failure in errs.
func table[T any](g models.Grid, spec parser.TableSpec[T], sc parser.SheetContext, log *slog.Logger, errs *[]*ExtractionError) []T {
	res, err := parser.Extract(g, spec, sc)
	if err != nil {
		row := 0
		if res.Anchor >= 0 {
			row = res.Anchor + 1
		}
		*errs = append(*errs, NewExtractionError("", "", spec.Name, row, err))
		return nil
	}
	logResult(log, spec.Name, res)
	return res.Records
}

func logResult[T any](log *slog.Logger, name string, res parser.Result[T]) {
	if res.Stop == parser.StopNoAnchor {
		log.Debug("table not found", slog.String("table", name))
		return
	}
	log.Debug("table extracted",
		slog.String("table", name),
		slog.Int("records", len(res.Records)),
		slog.Int("dropped", res.Dropped),
		slog.String("stop", res.Stop.String()),
		slog.Int("row", res.StopRow+1))
	if res.Stop == parser.StopShortRow {
		log.Warn("table ended at a short row",
			slog.String("table", name),
			slog.Int("row", res.StopRow+1))
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
