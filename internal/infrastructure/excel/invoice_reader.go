// Package excel adapta libros .xlsx al formato de filas del caso de uso de
// importación. Estructura esperada: primera hoja, fila 1 de encabezados y
// seis columnas en orden fijo — nombre del cliente, número del cliente,
// número de factura, fecha de factura, fecha de vencimiento, valor.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jdvergara/cartera-api/internal/application/billing"
	"github.com/jdvergara/cartera-api/internal/application/dto"
)

var _ billing.InvoiceRowReader = (*InvoiceReader)(nil)

const requiredColumns = 6

// InvoiceReader lee filas de importación desde un libro xlsx.
type InvoiceReader struct{}

// NewInvoiceReader construye el lector.
func NewInvoiceReader() *InvoiceReader {
	return &InvoiceReader{}
}

// Read parsea el libro completo. Cualquier celda requerida ausente o no
// convertible falla la lectura entera; no hay recuperación parcial.
func (p *InvoiceReader) Read(r io.Reader) ([]dto.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}

	var out []dto.ImportRow
	// La fila 1 es el encabezado.
	for i, cells := range rows {
		if i == 0 {
			continue
		}
		if isBlank(cells) {
			continue
		}
		row, err := parseRow(cells)
		if err != nil {
			// Número de fila como lo muestra la hoja de cálculo (base 1).
			return nil, fmt.Errorf("fila %d: %w", i+1, err)
		}
		out = append(out, row)
	}
	return out, nil
}

func parseRow(cells []string) (dto.ImportRow, error) {
	if len(cells) < requiredColumns {
		return dto.ImportRow{}, fmt.Errorf("se esperaban %d columnas, hay %d", requiredColumns, len(cells))
	}
	for c := 0; c < requiredColumns; c++ {
		if strings.TrimSpace(cells[c]) == "" {
			return dto.ImportRow{}, fmt.Errorf("columna %d vacía", c+1)
		}
	}

	invoiceDate, err := dto.ParseDate(strings.TrimSpace(cells[3]))
	if err != nil {
		return dto.ImportRow{}, fmt.Errorf("fecha de factura: %w", err)
	}
	dueDate, err := dto.ParseDate(strings.TrimSpace(cells[4]))
	if err != nil {
		return dto.ImportRow{}, fmt.Errorf("fecha de vencimiento: %w", err)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(cells[5]))
	if err != nil {
		return dto.ImportRow{}, fmt.Errorf("valor: %w", err)
	}

	return dto.ImportRow{
		CustomerName:   strings.TrimSpace(cells[0]),
		CustomerNumber: strings.TrimSpace(cells[1]),
		InvoiceNumber:  strings.TrimSpace(cells[2]),
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Amount:         amount,
	}, nil
}

// isBlank reporta si todas las celdas de la fila están vacías (GetRows
// devuelve filas de cola con celdas vacías cuando la hoja tiene formato).
func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
