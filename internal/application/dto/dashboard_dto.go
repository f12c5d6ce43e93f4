package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	UseCaseCount                     int `json:"use_case_count"`
	TechnicalFunctionCount           int `json:"technical_function_count"`
	ProductFunctionCount             int `json:"product_function_count"`
	CompletedTechnicalFunctionCount  int `json:"completed_technical_function_count"`
	InProgressTechnicalFunctionCount int `json:"in_progress_technical_function_count"` // total - completadas

	// Proporción de TFs completadas (no es el promedio de porcentajes).
	OverallPercent    int `json:"overall_percent"`
	CompletedPercent  int `json:"completed_percent"`
	InProgressPercent int `json:"in_progress_percent"`

	AverageProgress decimal.Decimal `json:"average_progress"` // AVG(progress_percent), 2 decimales

	// Offline true cuando la base no respondió; el resto de campos queda en cero.
	Offline bool `json:"offline"`
}
