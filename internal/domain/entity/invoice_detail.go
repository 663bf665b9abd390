package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDetail es la proyección de lectura de una factura con los datos del
// cliente y las referencias de sus adjuntos (join, no se persiste).
type InvoiceDetail struct {
	ID             int64           `json:"id"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	CustomerID     int64           `json:"customerId"`
	CustomerName   string          `json:"customerName"`
	CustomerNumber string          `json:"customerNumber"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	DueDate        time.Time       `json:"dueDate"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	Attachments    []AttachmentRef `json:"attachments,omitempty"`
}
