package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrProgressOutOfRange = errors.New("progress_percent debe ser un entero entre 0 y 100")
	ErrAlreadyLinked      = errors.New("la función técnica ya está vinculada a este caso de uso")
	ErrNotLinked          = errors.New("la función técnica no está vinculada a este caso de uso")
	ErrInvalidReference   = errors.New("referencia a un recurso inexistente")
)
