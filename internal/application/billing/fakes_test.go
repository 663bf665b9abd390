package billing_test

import (
	"context"
	"io"
	"strings"

	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
	"github.com/jdvergara/cartera-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// repos reales: Get* devuelven (nil, nil) sin fila, Update/Delete devuelven
// domain.ErrNotFound cuando el id no existe.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	nextID    int64
	customers []*entity.Customer

	createErr error
	creates   int
}

func (f *fakeCustomerRepo) Create(customer *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	customer.ID = f.nextID
	cp := *customer
	f.customers = append(f.customers, &cp)
	f.creates++
	return nil
}

func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByNumber(number string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if strings.EqualFold(c.Number, number) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(customer *entity.Customer) error {
	for i, c := range f.customers {
		if c.ID == customer.ID {
			cp := *customer
			cp.CreatedAt = c.CreatedAt
			f.customers[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCustomerRepo) Delete(id int64) error {
	for i, c := range f.customers {
		if c.ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

type fakeInvoiceRepo struct {
	nextID   int64
	invoices []*entity.Invoice

	createErr error
}

func (f *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	invoice.ID = f.nextID
	cp := *invoice
	f.invoices = append(f.invoices, &cp)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Update(invoice *entity.Invoice) error {
	for i, inv := range f.invoices {
		if inv.ID == invoice.ID {
			cp := *invoice
			cp.CreatedAt = inv.CreatedAt
			f.invoices[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvoiceRepo) Delete(id int64) error {
	for i, inv := range f.invoices {
		if inv.ID == id {
			f.invoices = append(f.invoices[:i], f.invoices[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvoiceRepo) GetDetailByID(id int64) (*entity.InvoiceDetail, error) {
	inv, _ := f.GetByID(id)
	if inv == nil {
		return nil, nil
	}
	return detailOf(inv), nil
}

func (f *fakeInvoiceRepo) ListDetails() ([]*entity.InvoiceDetail, error) {
	out := make([]*entity.InvoiceDetail, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, detailOf(inv))
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListDetailsByCustomerID(customerID int64) ([]*entity.InvoiceDetail, error) {
	var out []*entity.InvoiceDetail
	for _, inv := range f.invoices {
		if inv.CustomerID == customerID {
			out = append(out, detailOf(inv))
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListDetailsByCustomerNumber(customerNumber string) ([]*entity.InvoiceDetail, error) {
	// El fake no conoce clientes; basta para los casos de uso probados aquí.
	return nil, nil
}

func (f *fakeInvoiceRepo) MaxID() (int64, error) {
	var max int64
	for _, inv := range f.invoices {
		if inv.ID > max {
			max = inv.ID
		}
	}
	return max, nil
}

func (f *fakeInvoiceRepo) ListSince(sinceID int64) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.ID > sinceID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func detailOf(inv *entity.Invoice) *entity.InvoiceDetail {
	return &entity.InvoiceDetail{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Amount:        inv.Amount,
		Status:        inv.Status,
	}
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

type fakeAttachmentRepo struct {
	nextID      int64
	attachments []*entity.Attachment
}

func (f *fakeAttachmentRepo) Create(attachment *entity.Attachment) error {
	f.nextID++
	attachment.ID = f.nextID
	cp := *attachment
	f.attachments = append(f.attachments, &cp)
	return nil
}

func (f *fakeAttachmentRepo) GetByID(id int64) (*entity.Attachment, error) {
	for _, a := range f.attachments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttachmentRepo) Delete(id int64) error {
	for i, a := range f.attachments {
		if a.ID == id {
			f.attachments = append(f.attachments[:i], f.attachments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ repository.AttachmentRepository = (*fakeAttachmentRepo)(nil)

// fakeTxRunner ejecuta el closure directamente sobre los fakes, sin
// transacción real, y cuenta las corridas.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	invoices  *fakeInvoiceRepo
	runs      int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	f.runs++
	return fn(f.customers, f.invoices)
}

// fakeRowReader devuelve filas fijas sin tocar el io.Reader.
type fakeRowReader struct {
	rows []dto.ImportRow
	err  error
}

func (f fakeRowReader) Read(io.Reader) ([]dto.ImportRow, error) {
	return f.rows, f.err
}
