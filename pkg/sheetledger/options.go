// Package sheetledger ingests daily sales ledger workbooks into normalized tables.
package sheetledger

import (
	"io"
	"log/slog"
	"slices"
	"time"
)

// Routing keywords matched against upper-cased workbook and sheet titles.
const (
	// LedgerKeyword marks a daily ledger ("cuadre") in the workbook name or tab title.
	LedgerKeyword = "CUADRE"
	// ExpenseKeyword marks an expense ledger tab.
	ExpenseKeyword = "GASTO"
)

// AddonKeywords mark a tab holding the add-on sales and delivery route tables.
var AddonKeywords = []string{"ADICIONAL", "RUTA"}

// Options configures an ingestion run.
type Options struct {
	// SheetDelay is the pause between consecutive sheets. Zero disables it.
	SheetDelay time.Duration
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
	// LedgerKeyword overrides the daily ledger keyword when non-empty.
	LedgerKeyword string
	// ExpenseKeyword overrides the expense ledger keyword when non-empty.
	ExpenseKeyword string
	// AddonKeywords overrides the add-on/route keywords when non-nil.
	AddonKeywords []string
	// Tables restricts extraction to the given logical table names.
	// If empty, every table is extracted.
	Tables []string
}

// DefaultOptions returns default ingestion options.
func DefaultOptions() Options {
	return Options{
		LedgerKeyword:  LedgerKeyword,
		ExpenseKeyword: ExpenseKeyword,
		AddonKeywords:  AddonKeywords,
	}
}

// ShouldExtract returns whether the logical table name is enabled.
func (o Options) ShouldExtract(table string) bool {
	return len(o.Tables) == 0 || slices.Contains(o.Tables, table)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) ledgerKeyword() string {
	if o.LedgerKeyword != "" {
		return o.LedgerKeyword
	}
	return LedgerKeyword
}

func (o Options) expenseKeyword() string {
	if o.ExpenseKeyword != "" {
		return o.ExpenseKeyword
	}
	return ExpenseKeyword
}

func (o Options) addonKeywords() []string {
	if o.AddonKeywords != nil {
		return o.AddonKeywords
	}
	return AddonKeywords
}
