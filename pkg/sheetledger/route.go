package sheetledger

import (
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// Kinds is the set of tables a sheet is routed to.
type Kinds struct {
	Sales     bool
	Recharges bool
	Pending   bool
	Addons    bool
	Route     bool
	Expenses  bool
}

// Ledger reports whether the sheet is a daily ledger, which needs a dated title.
func (k Kinds) Ledger() bool {
	return k.Sales || k.Recharges || k.Pending
}

// Any reports whether any table applies.
func (k Kinds) Any() bool {
	return k.Ledger() || k.Addons || k.Route || k.Expenses
}

// Tables returns the logical names of the selected tables in write order.
func (k Kinds) Tables() []string {
	var out []string
	for _, s := range models.Schemas {
		if k.has(s.Key) {
			out = append(out, s.Key)
		}
	}
	return out
}

func (k Kinds) has(table string) bool {
	switch table {
	case models.SalesSchema.Key:
		return k.Sales
	case models.RechargesSchema.Key:
		return k.Recharges
	case models.PendingSchema.Key:
		return k.Pending
	case models.AddonsSchema.Key:
		return k.Addons
	case models.RouteSchema.Key:
		return k.Route
	case models.ExpensesSchema.Key:
		return k.Expenses
	}
	return false
}

// Classify decides which tables to extract from a sheet.
//
// The ledger keyword in the workbook name or sheet title selects sales,
// recharges and pending payments. The expense keyword in the title selects
// expenses. An add-on keyword in the title selects add-ons and route.
// Tables disabled in opts are cleared.
func Classify(workbook, sheet string, opts Options) Kinds {
	book := strings.ToUpper(workbook)
	title := strings.ToUpper(sheet)

	var k Kinds
	if strings.Contains(book+" "+title, strings.ToUpper(opts.ledgerKeyword())) {
		k.Sales, k.Recharges, k.Pending = true, true, true
	}
	if strings.Contains(title, strings.ToUpper(opts.expenseKeyword())) {
		k.Expenses = true
	}
	for _, kw := range opts.addonKeywords() {
		if strings.Contains(title, strings.ToUpper(kw)) {
			k.Addons, k.Route = true, true
			break
		}
	}

	k.Sales = k.Sales && opts.ShouldExtract(models.SalesSchema.Key)
	k.Recharges = k.Recharges && opts.ShouldExtract(models.RechargesSchema.Key)
	k.Pending = k.Pending && opts.ShouldExtract(models.PendingSchema.Key)
	k.Addons = k.Addons && opts.ShouldExtract(models.AddonsSchema.Key)
	k.Route = k.Route && opts.ShouldExtract(models.RouteSchema.Key)
	k.Expenses = k.Expenses && opts.ShouldExtract(models.ExpensesSchema.Key)
	return k
}
