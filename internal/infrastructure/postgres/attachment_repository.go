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

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo implementación de AttachmentRepository (usable con pool o tx).
type AttachmentRepo struct {
	q Querier
}

// NewAttachmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttachmentRepository(q Querier) *AttachmentRepo {
	return &AttachmentRepo{q: q}
}

// Create persiste un adjunto (bytes incluidos) y asigna el id generado.
// ErrWriteFailed si la factura referenciada no existe.
func (r *AttachmentRepo) Create(attachment *entity.Attachment) error {
	query := `
		INSERT INTO attachments (invoice_id, file_name, content_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		attachment.InvoiceID, attachment.FileName, attachment.ContentType,
		attachment.Data, attachment.CreatedAt,
	).Scan(&attachment.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrWriteFailed
		}
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// GetByID obtiene un adjunto con sus bytes. Devuelve (nil, nil) si no existe.
func (r *AttachmentRepo) GetByID(id int64) (*entity.Attachment, error) {
	query := `
		SELECT id, invoice_id, file_name, content_type, data, created_at
		FROM attachments WHERE id = $1`
	var a entity.Attachment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.InvoiceID, &a.FileName, &a.ContentType, &a.Data, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	return &a, nil
}

// Delete elimina un adjunto por ID. ErrNotFound si no existe.
func (r *AttachmentRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
