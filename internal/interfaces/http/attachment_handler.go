package http

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jdvergara/cartera-api/internal/application/billing"
	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain"
)

// AttachmentHandler maneja los adjuntos de factura (rutas bajo /api/invoice).
type AttachmentHandler struct {
	uc *billing.AttachmentUseCase
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(uc *billing.AttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Create POST /api/invoice/Attachment — multipart con campos invoiceId y file.
// Responde 201 con el id asignado; los bytes se recuperan vía Download.
func (h *AttachmentHandler) Create(c *fiber.Ctx) error {
	invoiceID, err := strconv.ParseInt(c.FormValue("invoiceId"), 10, 64)
	if err != nil || invoiceID <= 0 {
		return respondError(c, domain.ErrInvalidInput)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	file, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("abrir archivo subido: %w", err))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return respondError(c, fmt.Errorf("leer archivo subido: %w", err))
	}

	attachment, err := h.uc.Create(invoiceID, fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedAttachment{ID: attachment.ID})
}

// Download GET /api/invoice/Download?attachmentId= — devuelve los bytes
// exactos y el content type guardados al crear el adjunto.
func (h *AttachmentHandler) Download(c *fiber.Ctx) error {
	id, err := queryID(c, "attachmentId")
	if err != nil {
		return respondError(c, err)
	}
	attachment, err := h.uc.Download(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, attachment.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, attachment.FileName))
	return c.Send(attachment.Data)
}

// Delete DELETE /api/invoice/DeleteAttachment?attachmentId=
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	id, err := queryID(c, "attachmentId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
