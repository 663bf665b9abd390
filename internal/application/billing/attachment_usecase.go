package billing

import (
	"strings"
	"time"

	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
	"github.com/jdvergara/cartera-api/internal/domain/repository"
)

// AttachmentUseCase casos de uso de adjuntos de factura.
type AttachmentUseCase struct {
	repo repository.AttachmentRepository
}

// NewAttachmentUseCase construye el caso de uso.
func NewAttachmentUseCase(repo repository.AttachmentRepository) *AttachmentUseCase {
	return &AttachmentUseCase{repo: repo}
}

// Create guarda un adjunto. El content type por defecto es binario genérico.
func (uc *AttachmentUseCase) Create(invoiceID int64, fileName, contentType string, data []byte) (*entity.Attachment, error) {
	fileName = strings.TrimSpace(fileName)
	if invoiceID <= 0 || fileName == "" || len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	attachment := &entity.Attachment{
		InvoiceID:   invoiceID,
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// Download obtiene un adjunto con sus bytes. ErrNotFound si no existe.
func (uc *AttachmentUseCase) Download(id int64) (*entity.Attachment, error) {
	attachment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, domain.ErrNotFound
	}
	return attachment, nil
}

// Delete elimina un adjunto. ErrNotFound si no existe.
func (uc *AttachmentUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
