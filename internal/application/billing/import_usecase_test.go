package billing_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvergara/cartera-api/internal/application/billing"
	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la importación masiva: conciliación de clientes por número (sin
// distinguir mayúsculas), una factura por fila, todo o nada.
// ──────────────────────────────────────────────────────────────────────────────

func importRow(name, number, invoiceNumber, amount string) dto.ImportRow {
	return dto.ImportRow{
		CustomerName:   name,
		CustomerNumber: number,
		InvoiceNumber:  invoiceNumber,
		InvoiceDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.RequireFromString(amount),
	}
}

func runImport(t *testing.T, runner *fakeTxRunner, reader billing.InvoiceRowReader) ([]dto.ImportedInvoice, error) {
	t.Helper()
	uc := billing.NewImportInvoicesUseCase(runner, reader)
	return uc.Import(context.Background(), "cartera.xlsx", 1024, strings.NewReader("contenido"))
}

// Caso 1: número de cliente repetido en el archivo → se crea UN solo cliente
// y todas sus facturas quedan asociadas a él.
func TestImport_NumeroRepetidoCreaUnSoloCliente(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	runner := &fakeTxRunner{customers: customers, invoices: invoices}

	reader := fakeRowReader{rows: []dto.ImportRow{
		importRow("Comercial Andina", "4435345", "FAC-001", "1500.50"),
		importRow("Comercial Andina", "4435345", "FAC-002", "2300.00"),
		importRow("Comercial Andina", "4435345", "FAC-003", "780.25"),
	}}

	out, err := runImport(t, runner, reader)
	require.NoError(t, err)

	assert.Equal(t, 1, customers.creates, "un número repetido debe crear un único cliente")
	require.Len(t, customers.customers, 1)
	assert.Equal(t, "4435345", customers.customers[0].Number)

	require.Len(t, out, 3)
	customerID := customers.customers[0].ID
	for _, inv := range invoices.invoices {
		assert.Equal(t, customerID, inv.CustomerID)
		assert.Equal(t, entity.StatusPendingPayment, inv.Status)
	}
}

// Caso 2: el cliente ya existe con otra capitalización → se reutiliza, no se duplica.
func TestImport_ClienteExistenteSeConciliaSinMayusculas(t *testing.T) {
	customers := &fakeCustomerRepo{}
	require.NoError(t, customers.Create(&entity.Customer{Name: "Acme", Number: "CLI-abc"}))
	existingID := customers.customers[0].ID
	customers.creates = 0

	invoices := &fakeInvoiceRepo{}
	runner := &fakeTxRunner{customers: customers, invoices: invoices}

	reader := fakeRowReader{rows: []dto.ImportRow{
		importRow("Acme S.A.", "CLI-ABC", "FAC-010", "99.90"),
	}}

	out, err := runImport(t, runner, reader)
	require.NoError(t, err)

	assert.Equal(t, 0, customers.creates, "un número existente no debe crear cliente")
	require.Len(t, out, 1)
	require.Len(t, invoices.invoices, 1)
	assert.Equal(t, existingID, invoices.invoices[0].CustomerID)
}

// Caso 3: solo las facturas de ESTA corrida aparecen en el resultado,
// aunque la base ya tenga facturas previas.
func TestImport_ResultadoExcluyeFacturasPrevias(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	require.NoError(t, invoices.Create(&entity.Invoice{InvoiceNumber: "VIEJA-1", Status: entity.StatusPaid}))
	runner := &fakeTxRunner{customers: customers, invoices: invoices}

	reader := fakeRowReader{rows: []dto.ImportRow{
		importRow("Nuevo Cliente", "N-1", "FAC-100", "10.00"),
		importRow("Nuevo Cliente", "N-1", "FAC-101", "20.00"),
	}}

	out, err := runImport(t, runner, reader)
	require.NoError(t, err)

	require.Len(t, out, 2)
	numbers := []string{out[0].InvoiceNumber, out[1].InvoiceNumber}
	assert.NotContains(t, numbers, "VIEJA-1")
	assert.Less(t, out[0].ID, out[1].ID, "el resultado va en orden ascendente de id")
}

// Caso 4: extensión distinta de .xlsx → ErrInvalidInput sin tocar la base.
func TestImport_ExtensionInvalidaNoTocaLaBase(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	runner := &fakeTxRunner{customers: customers, invoices: invoices}
	uc := billing.NewImportInvoicesUseCase(runner, fakeRowReader{})

	_, err := uc.Import(context.Background(), "cartera.csv", 1024, strings.NewReader("a,b,c"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, runner.runs, "no debe abrirse transacción con archivo inválido")
}

// Caso 4b: la extensión se acepta sin distinguir mayúsculas (.XLSX).
func TestImport_ExtensionMayusculasEsValida(t *testing.T) {
	runner := &fakeTxRunner{customers: &fakeCustomerRepo{}, invoices: &fakeInvoiceRepo{}}
	uc := billing.NewImportInvoicesUseCase(runner, fakeRowReader{rows: []dto.ImportRow{
		importRow("Acme", "A-1", "FAC-1", "5.00"),
	}})

	out, err := uc.Import(context.Background(), "CARTERA.XLSX", 512, strings.NewReader("x"))
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

// Caso 5: archivo vacío o ausente → ErrInvalidInput.
func TestImport_ArchivoVacio(t *testing.T) {
	runner := &fakeTxRunner{customers: &fakeCustomerRepo{}, invoices: &fakeInvoiceRepo{}}
	uc := billing.NewImportInvoicesUseCase(runner, fakeRowReader{})

	_, err := uc.Import(context.Background(), "cartera.xlsx", 0, strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Import(context.Background(), "cartera.xlsx", 100, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 6: libro sin filas de datos → lista vacía, sin transacción.
func TestImport_LibroSinFilas(t *testing.T) {
	runner := &fakeTxRunner{customers: &fakeCustomerRepo{}, invoices: &fakeInvoiceRepo{}}
	uc := billing.NewImportInvoicesUseCase(runner, fakeRowReader{rows: nil})

	out, err := uc.Import(context.Background(), "cartera.xlsx", 256, strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, 0, runner.runs)
}

// Caso 7: error de parseo del lector → la corrida entera falla antes de escribir.
func TestImport_ErrorDeParseoAbortaTodo(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	runner := &fakeTxRunner{customers: customers, invoices: invoices}
	uc := billing.NewImportInvoicesUseCase(runner, fakeRowReader{err: errors.New("fila 3: fecha no reconocida")})

	_, err := uc.Import(context.Background(), "cartera.xlsx", 256, strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 0, runner.runs)
	assert.Empty(t, invoices.invoices)
}

// Caso 8: falla la inserción de una factura → el error del closure se propaga
// (la transacción real haría rollback de clientes y facturas).
func TestImport_ErrorDeEscrituraSePropaga(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{createErr: errors.New("conexión perdida")}
	runner := &fakeTxRunner{customers: customers, invoices: invoices}
	uc := billing.NewImportInvoicesUseCase(runner, fakeRowReader{rows: []dto.ImportRow{
		importRow("Acme", "A-1", "FAC-1", "5.00"),
	}})

	_, err := uc.Import(context.Background(), "cartera.xlsx", 256, strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión perdida")
}
