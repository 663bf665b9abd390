package repository

import "github.com/jdvergara/cartera-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus proyecciones.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id int64) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id int64) error

	// Proyecciones con datos del cliente y referencias de adjuntos.
	GetDetailByID(id int64) (*entity.InvoiceDetail, error)
	ListDetails() ([]*entity.InvoiceDetail, error)
	ListDetailsByCustomerID(customerID int64) ([]*entity.InvoiceDetail, error)
	ListDetailsByCustomerNumber(customerNumber string) ([]*entity.InvoiceDetail, error)

	// MaxID devuelve el id máximo actual (0 si no hay facturas). Marca de agua
	// para identificar las filas nuevas de una importación.
	MaxID() (int64, error)
	// ListSince lista las facturas con id > sinceID, en orden ascendente de id.
	ListSince(sinceID int64) ([]*entity.Invoice, error)
}
