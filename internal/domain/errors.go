package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrWriteFailed  = errors.New("la escritura no afectó filas")
	ErrDuplicate    = errors.New("recurso duplicado")
)
