package dto

// UseCaseListQuery filtros de GET /api/use-cases.
type UseCaseListQuery struct {
	Q      string `query:"q"`
	Status string `query:"status"`
	Page   int    `query:"page"`
}

// UseCaseSummaryDTO caso de uso con el progreso agregado de sus TFs vinculadas.
type UseCaseSummaryDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ProgressDTO
}

// StatusDistributionDTO conteo por estado sobre el listado completo (sin filtros).
type StatusDistributionDTO struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
}

// UseCaseListResponse respuesta de GET /api/use-cases.
type UseCaseListResponse struct {
	Items        []UseCaseSummaryDTO   `json:"items"`
	Meta         LoadMoreMeta          `json:"meta"`
	Distribution StatusDistributionDTO `json:"distribution"`
}

// UseCaseRefDTO id y nombre (navegación y salto rápido).
type UseCaseRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UseCaseNavigationDTO posición del caso de uso en el orden por id. Index es 1-based.
type UseCaseNavigationDTO struct {
	Index int            `json:"index"`
	Total int            `json:"total"`
	Prev  *UseCaseRefDTO `json:"prev"`
	Next  *UseCaseRefDTO `json:"next"`
}

// RelatedProductFunctionDTO PF tocado por el caso de uso; el progreso cubre solo las TFs vinculadas.
type RelatedProductFunctionDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FeatureName string `json:"feature_name"`
	DomainName  string `json:"domain_name"`
	ProgressDTO
}

// UseCaseDetailDTO respuesta de GET /api/use-cases/:id.
type UseCaseDetailDTO struct {
	ID                   string                      `json:"id"`
	Name                 string                      `json:"name"`
	Description          *string                     `json:"description"`
	HmxInput             *string                     `json:"hmx_input"`
	HmxOutput            *string                     `json:"hmx_output"`
	CustomerPdFeature    *string                     `json:"customer_pd_feature"`
	TechnicalFunctionRaw *string                     `json:"technical_function_raw"`
	Navigation           UseCaseNavigationDTO        `json:"navigation"`
	Progress             ProgressDTO                 `json:"progress"`
	TechnicalFunctions   []TechnicalFunctionDTO      `json:"technical_functions"`
	ProductFunctions     []RelatedProductFunctionDTO `json:"product_functions"`
}

// LinkTechnicalFunctionRequest body de POST /api/use-cases/:id/technical-functions.
type LinkTechnicalFunctionRequest struct {
	TechnicalFunctionID string `json:"technical_function_id"`
}
