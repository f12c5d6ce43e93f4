package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/usecase"
)

// StructureHandler vista de estructura y edición de PFs.
type StructureHandler struct {
	uc *usecase.StructureUseCase
}

// NewStructureHandler construye el handler.
func NewStructureHandler(uc *usecase.StructureUseCase) *StructureHandler {
	return &StructureHandler{uc: uc}
}

// List godoc
// @Summary      Estructura de PFs con progreso derivado
// @Tags         structure
// @Produce      json
// @Param        q       query  string  false  "Búsqueda"
// @Param        status  query  string  false  "ALL | COMPLETED | IN_PROGRESS | NOT_STARTED"
// @Param        pf      query  string  false  "Solo este PF"
// @Param        page    query  int     false  "Página (20 por página, acumulativa)"  default(1)
// @Success      200     {object}  dto.StructureResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/structure [get]
func (h *StructureHandler) List(c *fiber.Ctx) error {
	var q dto.StructureQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateProductFunction godoc
// @Summary      Actualizar feature y/o tags de un PF
// @Tags         structure
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del PF"
// @Param        body  body  dto.UpdateProductFunctionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductFunctionUpdatedDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-functions/{id} [patch]
func (h *StructureHandler) UpdateProductFunction(c *fiber.Ctx) error {
	var in dto.UpdateProductFunctionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateProductFunction(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
