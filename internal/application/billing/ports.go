package billing

import (
	"context"
	"io"

	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
	"github.com/jdvergara/cartera-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repos atados a ella.
// Implementado por postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoiceRowReader parsea un archivo de importación y devuelve sus filas.
// Implementado por excel.InvoiceReader.
type InvoiceRowReader interface {
	Read(r io.Reader) ([]dto.ImportRow, error)
}

// InvoicePDFGenerator genera la representación PDF de una factura.
// Implementado por pdf.MarotoPDFGenerator.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, detail *entity.InvoiceDetail) ([]byte, error)
}
