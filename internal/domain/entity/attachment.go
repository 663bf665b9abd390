package entity

import "time"

// Attachment es un archivo adjunto a una factura (soporte, remisión, etc.).
// Data se carga solo en la descarga; los listados usan AttachmentRef.
type Attachment struct {
	ID          int64     `json:"id"`
	InvoiceID   int64     `json:"invoiceId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AttachmentRef referencia ligera a un adjunto dentro de una proyección de factura.
type AttachmentRef struct {
	ID       int64  `json:"id"`
	FileName string `json:"fileName"`
}
