package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas de solo lectura para el dashboard.
type StatsRepository interface {
	CountUseCases(ctx context.Context) (int, error)
	CountProductFunctions(ctx context.Context) (int, error)
	CountTechnicalFunctions(ctx context.Context) (int, error)
	// CountCompletedTechnicalFunctions cuenta las TFs con progress_percent >= 100.
	CountCompletedTechnicalFunctions(ctx context.Context) (int, error)
	// AverageProgress AVG(progress_percent) de todas las TFs; cero si no hay filas.
	AverageProgress(ctx context.Context) (decimal.Decimal, error)
}
