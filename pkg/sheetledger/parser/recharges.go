package parser

import "github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"

// RechargesSpec is the 10-litre refill table of the daily ledger.
// "VIENE" rows carry a balance over from another sheet and end the table.
var RechargesSpec = TableSpec[models.Recharge]{
	Name:    models.RechargesSchema.Key,
	Anchors: []string{"RECARGAS DE 10 LTS"},
	Fields: []Field{
		{Name: FieldClient, Synonyms: []string{"CLIENTE"}, Default: 2},
		{Name: FieldProducts, Synonyms: []string{"PRODUCTO"}, Default: 3},
		{Name: FieldQuantity, Synonyms: []string{"CANT"}, Default: 8},
		{Name: FieldPrice, Synonyms: []string{"PRECIO"}, Default: 9},
		{Name: FieldTotal, Synonyms: []string{"TOTAL"}, Default: 10},
		{Name: FieldCash, Synonyms: []string{"EFEC"}, Default: 11},
		{Name: FieldTransfer, Synonyms: []string{"TRF", "TRANSF"}, Default: 12},
		{Name: FieldCard, Synonyms: []string{"TARJ", "DEBITO"}, Default: 13},
		{Name: FieldPending, Synonyms: []string{"PENDIENTE", "SALDO"}, Default: 14},
	},
	Key:        FieldClient,
	Boundaries: []string{"VIENE"},
	Build: func(row models.Row, hm HeaderMap, sc SheetContext) models.Recharge {
		return models.Recharge{
			Date:     sc.Date,
			Client:   hm.Cell(row, FieldClient),
			Products: hm.Cell(row, FieldProducts),
			Quantity: hm.Amount(row, FieldQuantity),
			Price:    hm.Amount(row, FieldPrice),
			Total:    hm.Amount(row, FieldTotal),
			Payments: payments(row, hm),
		}
	},
	Keep: func(r models.Recharge) bool {
		return r.Total != 0 || r.Quantity != 0
	},
}
