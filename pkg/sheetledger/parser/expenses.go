package parser

import (
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// ExpenseCategories are the section labels of the expense ledger.
var ExpenseCategories = []string{
	"COSTOS FIJOS", "COSTOS VARIABLES", "GASTOS ADMINISTRATIVOS",
	"TRANSPORTE Y ESTACIONAMIENTO", "INSUMOS PARA LOCAL",
	"MATERIALES CONSTRUCCION", "PROFESIONALES", "INVERSIONES", "OTROS GASTOS EXTRAS",
}

// NoCategory tags expenses that appear before any category label.
const NoCategory = "SIN CATEGORIA"

// Fixed expense ledger layout: B description, C date, G observation, H amount.
const (
	expenseDescCol   = 1
	expenseDateCol   = 2
	expenseObsCol    = 6
	expenseAmountCol = 7
	expenseWidth     = 8
)

// ExtractExpenses reads an expense ledger in a single forward pass, tagging each
// expense with the last category label seen above it.
func ExtractExpenses(g models.Grid) []models.Expense {
	var out []models.Expense
	cursor := NoCategory
	for i := 0; i < g.Len(); i++ {
		e, ok, next := expenseRow(g.Row(i), cursor)
		cursor = next
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// expenseRow handles one row given the current category and returns the
// category for the next row. A label row updates the category and is then
// filtered like any other row.
func expenseRow(row models.Row, category string) (models.Expense, bool, string) {
	if len(row) < expenseWidth {
		return models.Expense{}, false, category
	}

	desc := row.Cell(expenseDescCol)
	key := foldKey(desc)
	for _, c := range ExpenseCategories {
		if strings.Contains(key, c) {
			category = c
			break
		}
	}
	if key == "" || strings.Contains(key, totalMarker) {
		return models.Expense{}, false, category
	}

	amount := row.Cell(expenseAmountCol)
	if amount == "" || amount == "0" || !strings.Contains(amount, "$") {
		return models.Expense{}, false, category
	}

	return models.Expense{
		Date:        ParseDate(row.Cell(expenseDateCol)),
		Category:    category,
		Description: desc,
		Observation: row.Cell(expenseObsCol),
		Amount:      ParseCurrency(amount),
	}, true, category
}
