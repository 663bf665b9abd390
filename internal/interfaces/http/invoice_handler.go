package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jdvergara/cartera-api/internal/application/billing"
	"github.com/jdvergara/cartera-api/internal/application/dto"
	"github.com/jdvergara/cartera-api/internal/domain"
	"github.com/jdvergara/cartera-api/internal/domain/entity"
)

// InvoiceHandler maneja las peticiones HTTP de facturas, incluida la
// importación masiva desde Excel y la representación PDF.
type InvoiceHandler struct {
	uc       *billing.InvoiceUseCase
	importUC *billing.ImportInvoicesUseCase
	pdfUC    *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, importUC *billing.ImportInvoicesUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, importUC: importUC, pdfUC: pdfUC}
}

// List GET /api/invoice
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []*entity.Invoice{}
	}
	return c.JSON(list)
}

// Get GET /api/invoice/:id
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	invoice, err := h.uc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// GetDetails GET /api/invoice/GetInvoiceDetails
func (h *InvoiceHandler) GetDetails(c *fiber.Ctx) error {
	list, err := h.uc.ListDetails()
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []*entity.InvoiceDetail{}
	}
	return c.JSON(list)
}

// GetDetail GET /api/invoice/GetInvoiceDetail/:id
func (h *InvoiceHandler) GetDetail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	detail, err := h.uc.GetDetail(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// GetByCustomerID GET /api/invoice/GetInvoiceByCustomerId/:customerId
func (h *InvoiceHandler) GetByCustomerID(c *fiber.Ctx) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListByCustomerID(customerID)
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []*entity.InvoiceDetail{}
	}
	return c.JSON(list)
}

// GetByCustomerNumber GET /api/invoice/GetInvoiceByCustomerNumber/:customerNumber
func (h *InvoiceHandler) GetByCustomerNumber(c *fiber.Ctx) error {
	customerNumber := c.Params("customerNumber")
	if customerNumber == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	list, err := h.uc.ListByCustomerNumber(customerNumber)
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []*entity.InvoiceDetail{}
	}
	return c.JSON(list)
}

// Create POST /api/invoice
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	invoice, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Update PUT /api/invoice/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EditInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.uc.Update(id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/invoice/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Load POST /api/invoice/Load — importación masiva desde Excel (multipart,
// campo excelFile). Devuelve los resúmenes de las facturas creadas.
func (h *InvoiceHandler) Load(c *fiber.Ctx) error {
	fh, err := c.FormFile("excelFile")
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	file, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("abrir archivo subido: %w", err))
	}
	defer file.Close()

	created, err := h.importUC.Import(c.Context(), fh.Filename, fh.Size, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(created)
}

// Pdf GET /api/invoice/Pdf/:id — representación PDF de la factura.
func (h *InvoiceHandler) Pdf(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.pdfUC.Generate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="factura-%d.pdf"`, id))
	return c.Send(data)
}
