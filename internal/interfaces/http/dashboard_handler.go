package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/usecase"
	"github.com/jhoicas/progress-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del tablero principal.
type DashboardHandler struct {
	uc  *usecase.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log.Component("dashboard")}
}

// GetStats godoc
// @Summary      Estadísticas globales
// @Description  Conteos de casos de uso, PFs y TFs. Si la base no responde devuelve ceros con offline=true.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("base no disponible, dashboard en modo offline")
		return c.JSON(dto.DashboardStatsDTO{AverageProgress: decimal.Zero, Offline: true})
	}
	return c.JSON(stats)
}
