package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
	"github.com/jdvergara/cartera-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, customer_id, invoice_number, invoice_date, due_date, amount, status, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.InvoiceNumber, &inv.InvoiceDate,
		&inv.DueDate, &inv.Amount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create persiste una factura y asigna el id generado.
// ErrWriteFailed si el cliente referenciado no existe.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, invoice_number, invoice_date, due_date, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		invoice.CustomerID, invoice.InvoiceNumber, invoice.InvoiceDate, invoice.DueDate,
		invoice.Amount, invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrWriteFailed
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(context.Background(),
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List lista todas las facturas, más recientes primero.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	return r.queryInvoices(`SELECT ` + invoiceColumns + ` FROM invoices ORDER BY id DESC`)
}

// ListSince lista facturas con id > sinceID en orden ascendente (resultado de importación).
func (r *InvoiceRepo) ListSince(sinceID int64) ([]*entity.Invoice, error) {
	return r.queryInvoices(`SELECT `+invoiceColumns+` FROM invoices WHERE id > $1 ORDER BY id`, sinceID)
}

func (r *InvoiceRepo) queryInvoices(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// MaxID devuelve el id máximo actual (0 si la tabla está vacía).
func (r *InvoiceRepo) MaxID() (int64, error) {
	var maxID int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(id), 0) FROM invoices`).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("max invoice id: %w", err)
	}
	return maxID, nil
}

// Update actualiza todos los campos editables. ErrNotFound si el id no existe.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id    = $2,
		    invoice_number = $3,
		    invoice_date   = $4,
		    due_date       = $5,
		    amount         = $6,
		    status         = $7,
		    updated_at     = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.InvoiceNumber, invoice.InvoiceDate,
		invoice.DueDate, invoice.Amount, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrWriteFailed
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura por ID. Los adjuntos caen en cascada.
func (r *InvoiceRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Proyecciones ──────────────────────────────────────────────────────────────

const detailSelect = `
	SELECT i.id, i.invoice_number, i.customer_id, c.name, c.number,
	       i.invoice_date, i.due_date, i.amount, i.status
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id`

func scanDetail(row pgx.Row) (*entity.InvoiceDetail, error) {
	var d entity.InvoiceDetail
	err := row.Scan(
		&d.ID, &d.InvoiceNumber, &d.CustomerID, &d.CustomerName, &d.CustomerNumber,
		&d.InvoiceDate, &d.DueDate, &d.Amount, &d.Status,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDetailByID obtiene la proyección de una factura con cliente y adjuntos.
func (r *InvoiceRepo) GetDetailByID(id int64) (*entity.InvoiceDetail, error) {
	d, err := scanDetail(r.q.QueryRow(context.Background(), detailSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice detail: %w", err)
	}
	if err := r.loadAttachmentRefs(map[int64]*entity.InvoiceDetail{d.ID: d}); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDetails lista las proyecciones de todas las facturas, más recientes primero.
func (r *InvoiceRepo) ListDetails() ([]*entity.InvoiceDetail, error) {
	return r.queryDetails(detailSelect + ` ORDER BY i.id DESC`)
}

// ListDetailsByCustomerID lista las proyecciones de las facturas de un cliente.
func (r *InvoiceRepo) ListDetailsByCustomerID(customerID int64) ([]*entity.InvoiceDetail, error) {
	return r.queryDetails(detailSelect+` WHERE i.customer_id = $1 ORDER BY i.id DESC`, customerID)
}

// ListDetailsByCustomerNumber lista las proyecciones por número de cliente (coincidencia exacta).
func (r *InvoiceRepo) ListDetailsByCustomerNumber(customerNumber string) ([]*entity.InvoiceDetail, error) {
	return r.queryDetails(detailSelect+` WHERE c.number = $1 ORDER BY i.id DESC`, customerNumber)
}

func (r *InvoiceRepo) queryDetails(query string, args ...any) ([]*entity.InvoiceDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoice details: %w", err)
	}
	defer rows.Close()
	byID := make(map[int64]*entity.InvoiceDetail)
	var list []*entity.InvoiceDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		byID[d.ID] = d
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadAttachmentRefs(byID); err != nil {
		return nil, err
	}
	return list, nil
}

// loadAttachmentRefs completa las referencias de adjuntos de las proyecciones dadas.
func (r *InvoiceRepo) loadAttachmentRefs(byID map[int64]*entity.InvoiceDetail) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, invoice_id, file_name FROM attachments WHERE invoice_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("list attachment refs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ref entity.AttachmentRef
		var invoiceID int64
		if err := rows.Scan(&ref.ID, &invoiceID, &ref.FileName); err != nil {
			return fmt.Errorf("scan attachment ref: %w", err)
		}
		if d, ok := byID[invoiceID]; ok {
			d.Attachments = append(d.Attachments, ref)
		}
	}
	return rows.Err()
}
