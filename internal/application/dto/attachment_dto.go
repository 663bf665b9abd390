package dto

// CreatedAttachment respuesta de POST /api/invoice/Attachment.
// Solo devuelve el id: los bytes se recuperan vía Download.
type CreatedAttachment struct {
	ID int64 `json:"id"`
}
