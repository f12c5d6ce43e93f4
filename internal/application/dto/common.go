package dto

import (
	"bytes"
	"encoding/json"
)

// LoadMoreMeta metadatos de la paginación acumulativa ("cargar más"): la página N
// devuelve los primeros N*PageSize elementos filtrados.
type LoadMoreMeta struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Shown    int  `json:"shown"`
	Total    int  `json:"total"`
	HasMore  bool `json:"has_more"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse respuesta de operaciones sin cuerpo propio (ej. desvincular).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ProgressDTO progreso agregado de un grupo de TFs.
type ProgressDTO struct {
	Percent int    `json:"percent"`
	Done    int    `json:"done"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
}

// NullableString distingue "campo ausente" de "campo en null" en updates parciales.
// Set es true si la clave vino en el body; Value es nil si vino en null.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON solo se invoca cuando la clave está presente.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}
