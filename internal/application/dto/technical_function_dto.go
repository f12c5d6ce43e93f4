package dto

import "encoding/json"

// UpdateProgressRequest body de PATCH /api/technical-functions/:id/progress.
// Se conserva crudo para aceptar número o string y rechazar decimales.
type UpdateProgressRequest struct {
	ProgressPercent json.RawMessage `json:"progress_percent" swaggertype:"integer"`
}

// ProgressUpdatedDTO respuesta de la actualización de progreso.
type ProgressUpdatedDTO struct {
	ID              string `json:"id"`
	ProgressPercent int    `json:"progress_percent"`
}

// TechnicalFunctionDTO TF con la referencia a su PF.
type TechnicalFunctionDTO struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	ProgressPercent int                       `json:"progress_percent"`
	ProductFunction *ProductFunctionOptionDTO `json:"product_function"`
}

// AvailableTechnicalFunctionDTO TF candidata a vincularse a un caso de uso.
type AvailableTechnicalFunctionDTO struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	ProgressPercent     int     `json:"progress_percent"`
	ProductFunctionID   *string `json:"product_function_id"`
	ProductFunctionName string  `json:"product_function_name"`
	FeatureName         string  `json:"feature_name"`
	DomainName          string  `json:"domain_name"`
}
