package parser

import "github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"

// PendingSpec is the pending-payments table: debts from earlier days and how
// they were settled. The debt amount has its own default column so sheets
// without a DEUDA title still read it positionally.
var PendingSpec = TableSpec[models.Pending]{
	Name:    models.PendingSchema.Key,
	Anchors: []string{"PAGOS PENDIENTE"},
	Fields: []Field{
		{Name: FieldClient, Synonyms: []string{"CLIENTE"}, Default: 2},
		{Name: FieldProducts, Synonyms: []string{"PRODUCTO", "DETALLE"}, Default: 3},
		{Name: FieldDebtDate, Synonyms: []string{"FECHA"}, Default: 8},
		{Name: FieldDebtAmount, Synonyms: []string{"DEUDA"}, Default: 10},
		{Name: FieldCash, Synonyms: []string{"EFECTIVO", "EFEC"}, Default: 11},
		{Name: FieldTransfer, Synonyms: []string{"TRANSFERENCIA", "TRF"}, Default: 12},
		{Name: FieldCard, Synonyms: []string{"TARJETA", "DEBITO"}, Default: 13},
		{Name: FieldPending, Synonyms: []string{"PENDIENTE", "SALDO"}, Default: 14},
	},
	Key: FieldClient,
	Build: func(row models.Row, hm HeaderMap, sc SheetContext) models.Pending {
		return models.Pending{
			Date:       sc.Date,
			Client:     hm.Cell(row, FieldClient),
			Products:   hm.Cell(row, FieldProducts),
			DebtDate:   ParseDate(hm.Cell(row, FieldDebtDate)),
			DebtAmount: hm.Amount(row, FieldDebtAmount),
			Payments:   payments(row, hm),
		}
	},
	Keep: func(p models.Pending) bool {
		return p.DebtAmount != 0 || !p.Payments.Zero()
	},
}
