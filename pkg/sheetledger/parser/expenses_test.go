package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

func TestExtractExpenses(t *testing.T) {
	g := models.Grid{
		{"", "COSTOS FIJOS", "", "", "", "", "", ""},
		{"", "Arriendo", "2024-01-05", "", "", "", "200", "$50.000"},
	}

	got := ExtractExpenses(g)

	require.Len(t, got, 1)
	assert.Equal(t, models.Expense{
		Date:        "2024-01-05",
		Category:    "COSTOS FIJOS",
		Description: "Arriendo",
		Observation: "200",
		Amount:      50000,
	}, got[0])
}

func TestExtractExpensesCategoryCarry(t *testing.T) {
	g := models.Grid{
		{"", "Gastos de enero", "", "", "", "", "", ""},
		{"", "Bolsas", "3/1/24", "", "", "", "", "$1.000"},
		{"", "Costos Variables", "", "", "", "", "", ""},
		{"", "Gas", "4 de enero de 2024", "", "", "", "", "$12.000"},
		{"", "Short"},
		{"", "Luz", "", "", "", "", "", "0"},
		{"", "Agua", "", "", "", "", "", "15000"},
		{"", "TOTAL COSTOS VARIABLES", "", "", "", "", "", "$12.000"},
		{"", "", "", "", "", "", "", "$99"},
		{"", "Transporte y estacionamiento", "", "", "", "", "", ""},
		{"", "Peaje", "", "", "", "", "", "$2.500"},
	}

	got := ExtractExpenses(g)

	require.Len(t, got, 3)
	assert.Equal(t, NoCategory, got[0].Category)
	assert.Equal(t, "2024-01-03", got[0].Date)
	assert.Equal(t, "COSTOS VARIABLES", got[1].Category)
	assert.Equal(t, "2024-01-04", got[1].Date)
	assert.Equal(t, 12000.0, got[1].Amount)
	assert.Equal(t, "TRANSPORTE Y ESTACIONAMIENTO", got[2].Category)
	assert.Equal(t, "Peaje", got[2].Description)
	assert.Equal(t, "", got[2].Date)
}

func TestExpenseRowLabelWithAmount(t *testing.T) {
	// A label row carrying an amount is both a category switch and an expense.
	e, ok, next := expenseRow(models.Row{"", "Inversiones varias", "", "", "", "", "", "$5.000"}, NoCategory)

	assert.True(t, ok)
	assert.Equal(t, "INVERSIONES", next)
	assert.Equal(t, "INVERSIONES", e.Category)
	assert.Equal(t, 5000.0, e.Amount)
}
