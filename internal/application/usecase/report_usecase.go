package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/ports"
	"github.com/jhoicas/progress-api/internal/domain"
	"github.com/jhoicas/progress-api/internal/domain/progress"
)

// ReportUseCase genera el PDF de progreso de casos de uso.
type ReportUseCase struct {
	useCases  *UseCasesUseCase
	generator ports.UseCaseReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(useCases *UseCasesUseCase, generator ports.UseCaseReportGenerator) *ReportUseCase {
	return &ReportUseCase{useCases: useCases, generator: generator, now: time.Now}
}

// UseCasesPDF aplica los mismos filtros que el listado (sin paginar) y devuelve el PDF.
// El resumen promedia el porcentaje de cada caso de uso listado.
func (uc *ReportUseCase) UseCasesPDF(ctx context.Context, q dto.UseCaseListQuery) ([]byte, error) {
	status, err := progress.ParseStatus(q.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	all, err := uc.useCases.Summaries(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.UseCaseReport{
		Title:       "Progreso de casos de uso",
		GeneratedAt: uc.now(),
		Filter:      describeFilter(status, q.Q),
		Items:       make([]dto.UseCaseSummaryDTO, 0, len(all)),
	}
	percents := make([]int, 0, len(all))
	for _, item := range all {
		if !status.Matches(item.Percent) || !matchesQuery(q.Q, item.ID, item.Name, deref(item.Description)) {
			continue
		}
		report.Items = append(report.Items, item)
		percents = append(percents, item.Percent)
		switch progress.Classify(item.Percent) {
		case progress.StatusCompleted:
			report.Distribution.Completed++
		case progress.StatusNotStarted:
			report.Distribution.NotStarted++
		default:
			report.Distribution.InProgress++
		}
	}
	report.Overall = toProgressDTO(progress.Summarize(percents))

	return uc.generator.GenerateUseCaseReport(ctx, report)
}

func describeFilter(status progress.Status, q string) string {
	parts := []string{"Estado: " + string(status)}
	if q = strings.TrimSpace(q); q != "" {
		parts = append(parts, fmt.Sprintf("Búsqueda: %q", q))
	}
	return strings.Join(parts, " | ")
}
