package repository

import "github.com/jdvergara/cartera-api/internal/domain/entity"

// AttachmentRepository define el puerto de persistencia para adjuntos de factura.
type AttachmentRepository interface {
	Create(attachment *entity.Attachment) error
	// GetByID devuelve el adjunto incluyendo los bytes del archivo.
	GetByID(id int64) (*entity.Attachment, error)
	Delete(id int64) error
}
