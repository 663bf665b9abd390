package dto

import (
	"fmt"
	"time"
)

// ErrorResponse cuerpo de error HTTP para 400/409/500.
// Los 404 se responden sin cuerpo.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Formatos de fecha aceptados en cuerpos de petición y archivos de importación.
var DateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05Z07:00", "01/02/2006", "1/2/2006"}

// ParseDate intenta convertir s con los formatos de DateLayouts.
func ParseDate(s string) (t time.Time, err error) {
	for _, layout := range DateLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha no reconocida: %q", s)
}
