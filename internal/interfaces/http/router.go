package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jdvergara/cartera-api/internal/application/billing"
	"github.com/jdvergara/cartera-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC   *billing.CustomerUseCase
	InvoiceUC    *billing.InvoiceUseCase
	AttachmentUC *billing.AttachmentUseCase
	ImportUC     *billing.ImportInvoicesUseCase
	PDFUC        *billing.PDFUseCase
	Auth         config.AuthConfig
}

// Router registra las rutas de la API. Las rutas con nombre de acción se
// registran antes que las paramétricas para que Fiber no las capture como :id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Autenticación opcional: apagada por defecto (AUTH_ENABLED).
	if deps.Auth.Enabled {
		api.Use(AuthMiddleware(deps.Auth.Secret))
	}

	customers := api.Group("/customer")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	invoices := api.Group("/invoice")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ImportUC, deps.PDFUC)
	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC)

	invoices.Get("/GetInvoiceDetails", invoiceHandler.GetDetails)
	invoices.Get("/GetInvoiceDetail/:id", invoiceHandler.GetDetail)
	invoices.Get("/GetInvoiceByCustomerId/:customerId", invoiceHandler.GetByCustomerID)
	invoices.Get("/GetInvoiceByCustomerNumber/:customerNumber", invoiceHandler.GetByCustomerNumber)
	invoices.Get("/Pdf/:id", invoiceHandler.Pdf)
	invoices.Post("/Load", invoiceHandler.Load)

	invoices.Post("/Attachment", attachmentHandler.Create)
	invoices.Get("/Download", attachmentHandler.Download)
	invoices.Delete("/DeleteAttachment", attachmentHandler.Delete)

	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
}
