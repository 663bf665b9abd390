package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura en cartera.
const (
	StatusPendingPayment = "PENDING_PAYMENT" // creada o importada, pago pendiente
	StatusPaid           = "PAID"
	StatusOverdue        = "OVERDUE"
)

// ValidStatus indica si s es un estado de factura conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendingPayment, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Invoice representa una factura por cobrar. Pertenece a exactamente un cliente.
type Invoice struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
