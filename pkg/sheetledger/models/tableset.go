package models

// TableSet holds the six output collections of an ingestion run.
// Collections are append-only and keep sheet order.
type TableSet struct {
	Sales     []Sale      `json:"sales"`
	Recharges []Recharge  `json:"recharges"`
	Pending   []Pending   `json:"pending"`
	Addons    []Addon     `json:"addons"`
	Route     []RouteStop `json:"route"`
	Expenses  []Expense   `json:"expenses"`
}

// Merge appends every collection of other to ts.
func (ts *TableSet) Merge(other TableSet) {
	ts.Sales = append(ts.Sales, other.Sales...)
	ts.Recharges = append(ts.Recharges, other.Recharges...)
	ts.Pending = append(ts.Pending, other.Pending...)
	ts.Addons = append(ts.Addons, other.Addons...)
	ts.Route = append(ts.Route, other.Route...)
	ts.Expenses = append(ts.Expenses, other.Expenses...)
}

// Len returns the total number of records.
func (ts TableSet) Len() int {
	return len(ts.Sales) + len(ts.Recharges) + len(ts.Pending) +
		len(ts.Addons) + len(ts.Route) + len(ts.Expenses)
}

// Counts returns the number of records per logical table name.
func (ts TableSet) Counts() map[string]int {
	return map[string]int{
		SalesSchema.Key:     len(ts.Sales),
		RechargesSchema.Key: len(ts.Recharges),
		PendingSchema.Key:   len(ts.Pending),
		AddonsSchema.Key:    len(ts.Addons),
		RouteSchema.Key:     len(ts.Route),
		ExpensesSchema.Key:  len(ts.Expenses),
	}
}

// Rows returns the records of the table described by s as value rows in schema order.
func (ts TableSet) Rows(s Schema) [][]any {
	switch s.Key {
	case SalesSchema.Key:
		return valueRows(ts.Sales)
	case RechargesSchema.Key:
		return valueRows(ts.Recharges)
	case PendingSchema.Key:
		return valueRows(ts.Pending)
	case AddonsSchema.Key:
		return valueRows(ts.Addons)
	case RouteSchema.Key:
		return valueRows(ts.Route)
	case ExpensesSchema.Key:
		return valueRows(ts.Expenses)
	}
	return nil
}

type valuer interface {
	Values() []any
}

func valueRows[T valuer](records []T) [][]any {
	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = r.Values()
	}
	return rows
}
