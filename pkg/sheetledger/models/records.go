package models

// Sale is one client row of the daily sales ledger.
type Sale struct {
	// Date is the ledger date (ISO), taken from the sheet title.
	Date string `json:"FECHA"`
	// Client is the client name.
	Client string `json:"CLIENTE"`
	// Quantity is the number of units sold.
	Quantity float64 `json:"CANTIDAD"`
	// Price is the unit price.
	Price float64 `json:"PRECIO"`
	// Total is the amount to pay.
	Total float64 `json:"TOTAL-PAGAR"`
	Payments
}

// Values returns the field values in schema order.
func (s Sale) Values() []any {
	return append([]any{s.Date, s.Client, s.Quantity, s.Price, s.Total}, s.Payments.values()...)
}

// Payments splits an amount by payment method.
type Payments struct {
	// Cash is the amount paid in cash.
	Cash float64 `json:"EFECTIVO"`
	// Transfer is the amount paid by bank transfer.
	Transfer float64 `json:"TRANSFERENCIA"`
	// Card is the amount paid by debit or credit card.
	Card float64 `json:"TARJETA"`
	// Pending is the amount left unpaid.
	Pending float64 `json:"PENDIENTE"`
}

// Zero reports whether every payment amount is zero.
func (p Payments) Zero() bool {
	return p.Cash == 0 && p.Transfer == 0 && p.Card == 0 && p.Pending == 0
}

func (p Payments) values() []any {
	return []any{p.Cash, p.Transfer, p.Card, p.Pending}
}

// Recharge is one row of the 10-litre refill table.
type Recharge struct {
	// Date is the ledger date (ISO), taken from the sheet title.
	Date string `json:"FECHA"`
	// Client is the client name.
	Client string `json:"CLIENTE"`
	// Products is the product description.
	Products string `json:"PRODUCTOS"`
	// Quantity is the number of refills.
	Quantity float64 `json:"CANTIDAD"`
	// Price is the unit price.
	Price float64 `json:"PRECIO"`
	// Total is the amount to pay.
	Total float64 `json:"TOTAL-PAGAR"`
	Payments
}

// Values returns the field values in schema order.
func (r Recharge) Values() []any {
	return append([]any{r.Date, r.Client, r.Products, r.Quantity, r.Price, r.Total}, r.Payments.values()...)
}

// Pending is one row of the pending-payments table: a debt and how it was settled.
type Pending struct {
	// Date is the ledger date (ISO), taken from the sheet title.
	Date string `json:"FECHA"`
	// Client is the client name.
	Client string `json:"CLIENTE"`
	// Products is the product or detail the debt refers to.
	Products string `json:"PRODUCTOS"`
	// DebtDate is the date the debt was incurred (ISO when recognizable).
	DebtDate string `json:"FECHA-DEUDA"`
	// DebtAmount is the original debt.
	DebtAmount float64 `json:"DEUDA-MONTO"`
	Payments
}

// Values returns the field values in schema order.
func (p Pending) Values() []any {
	return append([]any{p.Date, p.Client, p.Products, p.DebtDate, p.DebtAmount}, p.Payments.values()...)
}

// Addon is one row of the add-on product sales table.
type Addon struct {
	// Date is the sale date read from the row (ISO when recognizable).
	Date string `json:"FECHA"`
	// Client is the client name.
	Client string `json:"CLIENTE"`
	// Product is the add-on product sold.
	Product string `json:"PRODUCTO"`
	// Quantity is the number of units sold.
	Quantity float64 `json:"CANTIDAD"`
	// Price is the unit price.
	Price float64 `json:"PRECIO"`
	// Amount is the total charged for the row.
	Amount float64 `json:"MONTO"`
}

// Values returns the field values in schema order.
func (a Addon) Values() []any {
	return []any{a.Date, a.Client, a.Product, a.Quantity, a.Price, a.Amount}
}

// RouteStop is one delivery stop of the route table.
type RouteStop struct {
	// Date is the delivery date read from the row (ISO when recognizable).
	Date string `json:"FECHA"`
	// Detail describes the delivery.
	Detail string `json:"DETALLE"`
	// Address is the delivery address.
	Address string `json:"DIRECCION"`
	// Commune is the commune of the address.
	Commune string `json:"COMUNA"`
	// Quantity is the number of units delivered.
	Quantity float64 `json:"CANTIDAD"`
	// Value is the unit value.
	Value float64 `json:"VALOR"`
	// Total is the amount charged for the stop.
	Total float64 `json:"TOTAL"`
	// Extra is any surcharge on top of Total.
	Extra float64 `json:"EXTRA"`
}

// Values returns the field values in schema order.
func (r RouteStop) Values() []any {
	return []any{r.Date, r.Detail, r.Address, r.Commune, r.Quantity, r.Value, r.Total, r.Extra}
}

// Expense is one row of the expense ledger, tagged with its category.
type Expense struct {
	// Date is the expense date (ISO when recognizable).
	Date string `json:"FECHA"`
	// Category is the last category label above the row.
	Category string `json:"CATEGORIA"`
	// Description is the expense description.
	Description string `json:"DESCRIPCION"`
	// Observation is the free-text note next to the amount.
	Observation string `json:"OBSERVACION"`
	// Amount is the amount spent.
	Amount float64 `json:"MONTO"`
}

// Values returns the field values in schema order.
func (e Expense) Values() []any {
	return []any{e.Date, e.Category, e.Description, e.Observation, e.Amount}
}
