package dto

import "time"

// UseCaseReport datos del PDF de progreso de casos de uso.
type UseCaseReport struct {
	Title        string
	GeneratedAt  time.Time
	Filter       string // descripción legible de los filtros aplicados
	Distribution StatusDistributionDTO
	Overall      ProgressDTO // promedio sobre los casos de uso listados
	Items        []UseCaseSummaryDTO
}
