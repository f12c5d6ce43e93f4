package dto

// StructureQuery filtros de GET /api/structure.
type StructureQuery struct {
	Q      string `query:"q"`
	Status string `query:"status"` // ALL, COMPLETED, IN_PROGRESS, NOT_STARTED
	PF     string `query:"pf"`     // modo de un solo PF; ignora los demás filtros
	Page   int    `query:"page"`
}

// TechnicalFunctionItemDTO TF dentro de un PF en la vista de estructura.
type TechnicalFunctionItemDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	State           *string `json:"state"`
	ProgressPercent int     `json:"progress_percent"`
}

// ProductFunctionItemDTO PF con su progreso derivado.
type ProductFunctionItemDTO struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	NameCn             *string                    `json:"name_cn"`
	DescriptionEn      *string                    `json:"description_en"`
	DescriptionCn      *string                    `json:"description_cn"`
	Tags               []string                   `json:"tags"`
	Feature            *FeatureDTO                `json:"feature"`
	TechnicalFunctions []TechnicalFunctionItemDTO `json:"technical_functions"`
	ProgressDTO
}

// StructureResponse respuesta de GET /api/structure.
type StructureResponse struct {
	Items []ProductFunctionItemDTO `json:"items"`
	Meta  LoadMoreMeta             `json:"meta"`
}

// UpdateProductFunctionRequest body de PATCH /api/product-functions/:id. Campos ausentes no se tocan.
type UpdateProductFunctionRequest struct {
	FeatureID NullableString `json:"feature_id"`
	Tags      *[]string      `json:"tags"`
}

// ProductFunctionUpdatedDTO respuesta del update parcial.
type ProductFunctionUpdatedDTO struct {
	ID        string      `json:"id"`
	FeatureID *string     `json:"feature_id"`
	Tags      []string    `json:"tags"`
	Feature   *FeatureDTO `json:"feature"`
}

// UpdateParentRequest body de PATCH /api/technical-functions/:id/parent. null desvincula.
type UpdateParentRequest struct {
	ProductFunctionID NullableString `json:"product_function_id"`
}

// TechnicalFunctionParentDTO respuesta del cambio de PF.
type TechnicalFunctionParentDTO struct {
	ID                string                    `json:"id"`
	ProductFunctionID *string                   `json:"product_function_id"`
	ProductFunction   *ProductFunctionOptionDTO `json:"product_function"`
}
