package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest cuerpo de POST /api/invoice. Las fechas llegan como
// texto y se convierten con DateLayouts.
type CreateInvoiceRequest struct {
	CustomerID    int64           `json:"customerId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"`
	DueDate       string          `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
}

// EditInvoiceRequest cuerpo de PUT /api/invoice/:id. Status vacío conserva el actual.
type EditInvoiceRequest struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"`
	DueDate       string          `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

// ImportRow es una fila del archivo de importación (transitoria, no se persiste).
// Orden de columnas: nombre, número de cliente, número de factura,
// fecha de factura, fecha de vencimiento, valor.
type ImportRow struct {
	CustomerName   string
	CustomerNumber string
	InvoiceNumber  string
	InvoiceDate    time.Time
	DueDate        time.Time
	Amount         decimal.Decimal
}

// ImportedInvoice resumen de una factura creada por la importación masiva.
type ImportedInvoice struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
}
