package parser

import (
	"fmt"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// The daily ledger header spans two rows at fixed positions; data follows.
const (
	salesHeaderTop    = 5
	salesHeaderBottom = 6
	salesFirstRow     = 7
)

var salesFields = []Field{
	{Name: FieldClient, Synonyms: []string{"CLIENTE"}, Default: -1},
	{Name: FieldQuantity, Synonyms: []string{"CANT"}, Default: -1},
	{Name: FieldPrice, Synonyms: []string{"PRECIO"}, Default: -1},
	{Name: FieldTotal, Synonyms: []string{"TOTAL A PAGAR", "TOTAL"}, Default: -1},
	{Name: FieldCash, Synonyms: []string{"EFEC"}, Default: -1},
	{Name: FieldTransfer, Synonyms: []string{"TRF", "TRANSF"}, Default: -1},
	{Name: FieldCard, Synonyms: []string{"TARJ", "DEBITO"}, Default: -1},
	{Name: FieldPending, Synonyms: []string{"PENDIENTE"}, Default: -1},
}

var salesRequired = []string{
	FieldClient, FieldQuantity, FieldPrice, FieldTotal,
	FieldCash, FieldTransfer, FieldCard, FieldPending,
}

// SalesSpec is the daily sales ledger. It has no anchor: its header sits at
// fixed rows and every column is required.
var SalesSpec = TableSpec[models.Sale]{
	Name:   models.SalesSchema.Key,
	Fields: salesFields,
	Key:    FieldClient,
	Build: func(row models.Row, hm HeaderMap, sc SheetContext) models.Sale {
		return models.Sale{
			Date:     sc.Date,
			Client:   hm.Cell(row, FieldClient),
			Quantity: hm.Amount(row, FieldQuantity),
			Price:    hm.Amount(row, FieldPrice),
			Total:    hm.Amount(row, FieldTotal),
			Payments: payments(row, hm),
		}
	},
}

// ExtractSales reads the daily sales ledger of a sheet. It fails with
// ErrSchemaNotFound when the sheet is too short or a column is missing from the
// combined header; the caller drops the sales of that sheet only.
func ExtractSales(g models.Grid, sc SheetContext) (Result[models.Sale], error) {
	if g.Len() <= salesHeaderBottom {
		return Result[models.Sale]{Anchor: -1, Stop: StopNoHeader, StopRow: g.Len()},
			fmt.Errorf("%w: sheet has %d rows, header expected at rows %d-%d",
				ErrSchemaNotFound, g.Len(), salesHeaderTop+1, salesHeaderBottom+1)
	}

	titles := CombineHeaderRows(g.Row(salesHeaderTop), g.Row(salesHeaderBottom))
	hm := ResolveHeader(titles, salesFields)
	if err := requireFields(hm, salesRequired...); err != nil {
		return Result[models.Sale]{Anchor: -1, Header: hm, Stop: StopNoHeader, StopRow: salesHeaderTop}, err
	}
	return ExtractRows(g, salesFirstRow, hm, SalesSpec, sc), nil
}

func payments(row models.Row, hm HeaderMap) models.Payments {
	return models.Payments{
		Cash:     hm.Amount(row, FieldCash),
		Transfer: hm.Amount(row, FieldTransfer),
		Card:     hm.Amount(row, FieldCard),
		Pending:  hm.Amount(row, FieldPending),
	}
}
