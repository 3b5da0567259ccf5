package parser

import "github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"

// RouteSpec is the delivery route table, keyed by address.
var RouteSpec = TableSpec[models.RouteStop]{
	Name:    models.RouteSchema.Key,
	Anchors: []string{"RUTA DE CLIENTE", "RUTA"},
	Fields: []Field{
		{Name: FieldDate, Synonyms: []string{"FECHA"}, Default: 1},
		{Name: FieldDetail, Synonyms: []string{"DETALLE"}, Default: 2},
		{Name: FieldAddress, Synonyms: []string{"DIRECCION"}, Default: 3},
		{Name: FieldCommune, Synonyms: []string{"COMUNA"}, Default: 4},
		{Name: FieldQuantity, Synonyms: []string{"CANTIDAD", "CANT"}, Default: 5},
		{Name: FieldValue, Synonyms: []string{"VALOR"}, Default: 6},
		{Name: FieldRouteTotal, Synonyms: []string{"TOTAL"}, Default: 7},
		{Name: FieldExtra, Synonyms: []string{"EXTRA"}, Default: 8},
	},
	Key:        FieldAddress,
	Boundaries: []string{"RUTA"},
	Build: func(row models.Row, hm HeaderMap, _ SheetContext) models.RouteStop {
		return models.RouteStop{
			Date:     ParseDate(hm.Cell(row, FieldDate)),
			Detail:   hm.Cell(row, FieldDetail),
			Address:  hm.Cell(row, FieldAddress),
			Commune:  hm.Cell(row, FieldCommune),
			Quantity: hm.Amount(row, FieldQuantity),
			Value:    hm.Amount(row, FieldValue),
			Total:    hm.Amount(row, FieldRouteTotal),
			Extra:    hm.Amount(row, FieldExtra),
		}
	},
	Keep: func(r models.RouteStop) bool {
		return r.Total != 0 || r.Address != ""
	},
}
