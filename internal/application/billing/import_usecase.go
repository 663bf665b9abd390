package billing

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
	"github.com/jdvergara/cartera-api/internal/domain/repository"
)

// ImportInvoicesUseCase ingesta un libro de Excel con facturas: parsea las
// filas, crea los clientes que no existan (conciliación por número, sin
// distinguir mayúsculas) e inserta una factura por fila, todo en una sola
// transacción. Devuelve solo las facturas creadas en esta corrida.
type ImportInvoicesUseCase struct {
	txRunner TxRunner
	reader   InvoiceRowReader
}

// NewImportInvoicesUseCase construye el caso de uso.
func NewImportInvoicesUseCase(txRunner TxRunner, reader InvoiceRowReader) *ImportInvoicesUseCase {
	return &ImportInvoicesUseCase{txRunner: txRunner, reader: reader}
}

// Import ejecuta la importación masiva. ErrInvalidInput si el archivo está
// vacío o no es .xlsx (en ese caso no se toca la base). Un error de parseo
// de cualquier fila aborta la corrida completa antes de escribir.
func (uc *ImportInvoicesUseCase) Import(ctx context.Context, fileName string, size int64, file io.Reader) ([]dto.ImportedInvoice, error) {
	if file == nil || size <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.reader.Read(file)
	if err != nil {
		return nil, fmt.Errorf("leer archivo de importación: %w", err)
	}
	if len(rows) == 0 {
		return []dto.ImportedInvoice{}, nil
	}

	var out []dto.ImportedInvoice
	err = uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// Acumulador de conciliación: número (en minúsculas) -> id de cliente.
		// Se alimenta de los clientes existentes y de los creados en esta
		// misma corrida, de modo que cada número distinto produce como mucho
		// un cliente nuevo aunque se repita en el archivo.
		existing, err := customerRepo.List()
		if err != nil {
			return err
		}
		resolved := make(map[string]int64, len(existing))
		for _, c := range existing {
			key := strings.ToLower(c.Number)
			if _, ok := resolved[key]; !ok {
				resolved[key] = c.ID
			}
		}

		now := time.Now()
		for _, row := range rows {
			key := strings.ToLower(row.CustomerNumber)
			if _, ok := resolved[key]; ok {
				continue
			}
			customer := &entity.Customer{
				Name:      row.CustomerName,
				Number:    row.CustomerNumber,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := customerRepo.Create(customer); err != nil {
				return fmt.Errorf("crear cliente %q: %w", row.CustomerNumber, err)
			}
			resolved[key] = customer.ID
		}

		// Marca de agua: todo id mayor pertenece a esta corrida.
		highWater, err := invoiceRepo.MaxID()
		if err != nil {
			return err
		}

		for _, row := range rows {
			invoice := &entity.Invoice{
				CustomerID:    resolved[strings.ToLower(row.CustomerNumber)],
				InvoiceNumber: row.InvoiceNumber,
				InvoiceDate:   row.InvoiceDate,
				DueDate:       row.DueDate,
				Amount:        row.Amount,
				Status:        entity.StatusPendingPayment,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := invoiceRepo.Create(invoice); err != nil {
				return fmt.Errorf("crear factura %q: %w", row.InvoiceNumber, err)
			}
		}

		created, err := invoiceRepo.ListSince(highWater)
		if err != nil {
			return err
		}
		out = make([]dto.ImportedInvoice, 0, len(created))
		for _, inv := range created {
			out = append(out, dto.ImportedInvoice{
				ID:            inv.ID,
				InvoiceNumber: inv.InvoiceNumber,
				InvoiceDate:   inv.InvoiceDate,
				DueDate:       inv.DueDate,
				Amount:        inv.Amount,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
