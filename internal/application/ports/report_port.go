package ports

import (
	"context"

	"github.com/jhoicas/progress-api/internal/application/dto"
)

// UseCaseReportGenerator genera el reporte PDF de progreso de casos de uso.
type UseCaseReportGenerator interface {
	GenerateUseCaseReport(ctx context.Context, report *dto.UseCaseReport) ([]byte, error)
}
