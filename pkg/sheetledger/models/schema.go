package models

// ColumnType is the SQL storage class of a column.
type ColumnType string

const (
	// Text columns hold names, descriptions and ISO dates.
	Text ColumnType = "TEXT"
	// Real columns hold amounts and quantities.
	Real ColumnType = "REAL"
)

// Column is one named, typed field of a table.
type Column struct {
	// Name is the field name as written to the store (e.g. "TOTAL-PAGAR").
	Name string
	// Type is the SQL storage class.
	Type ColumnType
}

// Schema describes one output table.
type Schema struct {
	// Key is the logical table name used in reports and JSON output.
	Key string
	// Table is the relational table name read by the reporting dashboard.
	Table string
	// Columns lists the fields in record order.
	Columns []Column
}

// ColumnNames returns the column names in order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

func textCol(name string) Column { return Column{Name: name, Type: Text} }
func number(name string) Column { return Column{Name: name, Type: Real} }

var paymentColumns = []Column{number("EFECTIVO"), number("TRANSFERENCIA"), number("TARJETA"), number("PENDIENTE")}

func withPayments(cols ...Column) []Column {
	return append(cols, paymentColumns...)
}

// Output table schemas.
var (
	SalesSchema = Schema{
		Key:   "sales",
		Table: "ventas_diarias",
		Columns: withPayments(textCol("FECHA"), textCol("CLIENTE"), number("CANTIDAD"),
			number("PRECIO"), number("TOTAL-PAGAR")),
	}
	RechargesSchema = Schema{
		Key:   "recharges",
		Table: "recargas",
		Columns: withPayments(textCol("FECHA"), textCol("CLIENTE"), textCol("PRODUCTOS"),
			number("CANTIDAD"), number("PRECIO"), number("TOTAL-PAGAR")),
	}
	PendingSchema = Schema{
		Key:   "pending",
		Table: "pendientes",
		Columns: withPayments(textCol("FECHA"), textCol("CLIENTE"), textCol("PRODUCTOS"),
			textCol("FECHA-DEUDA"), number("DEUDA-MONTO")),
	}
	AddonsSchema = Schema{
		Key:   "addons",
		Table: "adicionales",
		Columns: []Column{textCol("FECHA"), textCol("CLIENTE"), textCol("PRODUCTO"),
			number("CANTIDAD"), number("PRECIO"), number("MONTO")},
	}
	RouteSchema = Schema{
		Key:   "route",
		Table: "ruta",
		Columns: []Column{textCol("FECHA"), textCol("DETALLE"), textCol("DIRECCION"), textCol("COMUNA"),
			number("CANTIDAD"), number("VALOR"), number("TOTAL"), number("EXTRA")},
	}
	ExpensesSchema = Schema{
		Key:   "expenses",
		Table: "gastos",
		Columns: []Column{textCol("FECHA"), textCol("CATEGORIA"), textCol("DESCRIPCION"),
			textCol("OBSERVACION"), number("MONTO")},
	}
)

// Schemas lists every output table in write order.
var Schemas = []Schema{SalesSchema, RechargesSchema, PendingSchema, AddonsSchema, RouteSchema, ExpensesSchema}
