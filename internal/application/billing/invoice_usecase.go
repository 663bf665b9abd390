package billing

import (
	"strings"
	"time"

	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
	"github.com/jdvergara/cartera-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso CRUD y consultas de facturas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// Create crea una factura con estado pendiente de pago.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	number := strings.TrimSpace(in.InvoiceNumber)
	if in.CustomerID <= 0 || number == "" {
		return nil, domain.ErrInvalidInput
	}
	invoiceDate, err := dto.ParseDate(in.InvoiceDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := dto.ParseDate(in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	invoice := &entity.Invoice{
		CustomerID:    in.CustomerID,
		InvoiceNumber: number,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Amount:        in.Amount,
		Status:        entity.StatusPendingPayment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Get obtiene una factura por id. ErrNotFound si no existe.
func (uc *InvoiceUseCase) Get(id int64) (*entity.Invoice, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

// List lista todas las facturas.
func (uc *InvoiceUseCase) List() ([]*entity.Invoice, error) {
	return uc.repo.List()
}

// GetDetail obtiene la proyección de una factura con cliente y adjuntos.
func (uc *InvoiceUseCase) GetDetail(id int64) (*entity.InvoiceDetail, error) {
	detail, err := uc.repo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

// ListDetails lista las proyecciones de todas las facturas.
func (uc *InvoiceUseCase) ListDetails() ([]*entity.InvoiceDetail, error) {
	return uc.repo.ListDetails()
}

// ListByCustomerID lista las proyecciones de las facturas de un cliente.
func (uc *InvoiceUseCase) ListByCustomerID(customerID int64) ([]*entity.InvoiceDetail, error) {
	return uc.repo.ListDetailsByCustomerID(customerID)
}

// ListByCustomerNumber lista las proyecciones por número de cliente (exacto).
func (uc *InvoiceUseCase) ListByCustomerNumber(customerNumber string) ([]*entity.InvoiceDetail, error) {
	return uc.repo.ListDetailsByCustomerNumber(customerNumber)
}

// Update actualiza una factura. Status vacío conserva el actual; uno desconocido es inválido.
func (uc *InvoiceUseCase) Update(id int64, in dto.EditInvoiceRequest) error {
	if id != in.ID {
		return domain.ErrInvalidInput
	}
	number := strings.TrimSpace(in.InvoiceNumber)
	if in.CustomerID <= 0 || number == "" {
		return domain.ErrInvalidInput
	}
	invoiceDate, err := dto.ParseDate(in.InvoiceDate)
	if err != nil {
		return domain.ErrInvalidInput
	}
	dueDate, err := dto.ParseDate(in.DueDate)
	if err != nil {
		return domain.ErrInvalidInput
	}

	current, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	status := current.Status
	if in.Status != "" {
		if !entity.ValidStatus(in.Status) {
			return domain.ErrInvalidInput
		}
		status = in.Status
	}

	invoice := &entity.Invoice{
		ID:            id,
		CustomerID:    in.CustomerID,
		InvoiceNumber: number,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		Amount:        in.Amount,
		Status:        status,
		UpdatedAt:     time.Now(),
	}
	return uc.repo.Update(invoice)
}

// Delete elimina una factura. ErrNotFound si no existe.
func (uc *InvoiceUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
