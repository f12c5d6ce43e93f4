package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/usecase"
)

// TechnicalFunctionHandler escrituras sobre TFs.
type TechnicalFunctionHandler struct {
	uc *usecase.TechnicalFunctionUseCase
}

// NewTechnicalFunctionHandler construye el handler.
func NewTechnicalFunctionHandler(uc *usecase.TechnicalFunctionUseCase) *TechnicalFunctionHandler {
	return &TechnicalFunctionHandler{uc: uc}
}

// UpdateProgress godoc
// @Summary      Actualizar progreso de una TF
// @Description  progress_percent debe ser un entero entre 0 y 100 (número o string). No se recorta.
// @Tags         technical-functions
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la TF"
// @Param        body  body  dto.UpdateProgressRequest  true  "Nuevo porcentaje"
// @Success      200   {object}  dto.ProgressUpdatedDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/technical-functions/{id}/progress [patch]
func (h *TechnicalFunctionHandler) UpdateProgress(c *fiber.Ctx) error {
	var in dto.UpdateProgressRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateProgress(c.UserContext(), c.Params("id"), in.ProgressPercent)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateParent godoc
// @Summary      Mover una TF a otro PF
// @Description  product_function_id es obligatorio; null deja la TF sin PF.
// @Tags         technical-functions
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la TF"
// @Param        body  body  dto.UpdateParentRequest  true  "PF destino"
// @Success      200   {object}  dto.TechnicalFunctionParentDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/technical-functions/{id}/parent [patch]
func (h *TechnicalFunctionHandler) UpdateParent(c *fiber.Ctx) error {
	var in dto.UpdateParentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !in.ProductFunctionID.Set {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_function_id es requerido"})
	}
	out, err := h.uc.UpdateParent(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
