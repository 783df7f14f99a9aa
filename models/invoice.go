package models

// Invoice mirrors one remote invoice row together with its lines. Lines are
// not diffed: every sync of the parent replaces them wholesale.
type Invoice struct {
	ID        int64   `json:"-"`
	GrippID   int64   `json:"id"`
	Number    int64   `json:"number"`
	Company   string  `json:"company"`
	Status    string  `json:"status"`
	TotalExcl float64 `json:"totalexcl"`
	TotalIncl float64 `json:"totalincl"`

	Date      RemoteTime `json:"date"`
	UpdatedOn RemoteTime `json:"updatedon"`

	Lines []InvoiceLine `json:"invoicelines"`
}

// InvoiceLine is a child row of an Invoice, foreign-keyed to its parent by
// the parent's remote identifier.
type InvoiceLine struct {
	ID             int64   `json:"-"`
	GrippID        int64   `json:"id"`
	InvoiceGrippID int64   `json:"-"`
	Product        string  `json:"product"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	SellingPrice   float64 `json:"sellingprice"`
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}

// TableName returns the name of the database table
// associated with the InvoiceLine model.
func (l InvoiceLine) TableName() string {
	return "invoice_lines"
}
