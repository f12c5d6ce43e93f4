package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/usecase"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// UseCasesPDF godoc
// @Summary      Reporte PDF de progreso de casos de uso
// @Tags         reports
// @Produce      application/pdf
// @Param        q       query  string  false  "Búsqueda"
// @Param        status  query  string  false  "ALL | COMPLETED | IN_PROGRESS | NOT_STARTED"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/use-cases.pdf [get]
func (h *ReportHandler) UseCasesPDF(c *fiber.Ctx) error {
	q := dto.UseCaseListQuery{Q: c.Query("q"), Status: c.Query("status")}
	pdf, err := h.uc.UseCasesPDF(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="use-cases-progress.pdf"`)
	return c.Send(pdf)
}
