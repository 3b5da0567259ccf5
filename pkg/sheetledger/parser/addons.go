package parser

import "github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"

// AddonsSpec is the add-on product sales table. It usually sits above the
// route table on the same tab, so a RUTA key cell ends it.
var AddonsSpec = TableSpec[models.Addon]{
	Name:    models.AddonsSchema.Key,
	Anchors: []string{"REGISTRO DE PRODUCTO", "ADICIONALES"},
	Fields: []Field{
		{Name: FieldDate, Synonyms: []string{"FECHA"}, Default: 1},
		{Name: FieldClient, Synonyms: []string{"CLIENTE"}, Default: 2},
		{Name: FieldProduct, Synonyms: []string{"PRODUCTO", "DETALLE"}, Default: 3},
		{Name: FieldQuantity, Synonyms: []string{"CANT"}, Default: 4},
		{Name: FieldPrice, Synonyms: []string{"PRECIO"}, Default: 5},
		{Name: FieldAmount, Synonyms: []string{"MONTO", "TOTAL"}, Default: 6},
	},
	Key:        FieldClient,
	Boundaries: []string{"RUTA"},
	Build: func(row models.Row, hm HeaderMap, _ SheetContext) models.Addon {
		return models.Addon{
			Date:     ParseDate(hm.Cell(row, FieldDate)),
			Client:   hm.Cell(row, FieldClient),
			Product:  hm.Cell(row, FieldProduct),
			Quantity: hm.Amount(row, FieldQuantity),
			Price:    hm.Amount(row, FieldPrice),
			Amount:   hm.Amount(row, FieldAmount),
		}
	},
	Keep: func(a models.Addon) bool {
		return a.Amount != 0 || a.Product != ""
	},
}
