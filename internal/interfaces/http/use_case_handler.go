package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/usecase"
)

// UseCaseHandler maneja las peticiones HTTP de casos de uso y sus vínculos con TFs.
type UseCaseHandler struct {
	uc *usecase.UseCasesUseCase
}

// NewUseCaseHandler construye el handler.
func NewUseCaseHandler(uc *usecase.UseCasesUseCase) *UseCaseHandler {
	return &UseCaseHandler{uc: uc}
}

// List godoc
// @Summary      Listar casos de uso con progreso
// @Tags         use-cases
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por id, nombre o descripción"
// @Param        status  query  string  false  "ALL | COMPLETED | IN_PROGRESS | NOT_STARTED"
// @Param        page    query  int     false  "Página (30 por página, acumulativa)"  default(1)
// @Success      200     {object}  dto.UseCaseListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/use-cases [get]
func (h *UseCaseHandler) List(c *fiber.Ctx) error {
	var q dto.UseCaseListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Jump godoc
// @Summary      Salto rápido a un caso de uso
// @Tags         use-cases
// @Produce      json
// @Param        q  query  string  true  "Id o nombre"
// @Success      200  {array}  dto.UseCaseRefDTO
// @Router       /api/use-cases/jump [get]
func (h *UseCaseHandler) Jump(c *fiber.Ctx) error {
	out, err := h.uc.Jump(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un caso de uso
// @Tags         use-cases
// @Produce      json
// @Param        id   path  string  true  "ID del caso de uso"
// @Success      200  {object}  dto.UseCaseDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/use-cases/{id} [get]
func (h *UseCaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListTechnicalFunctions godoc
// @Summary      TFs vinculadas a un caso de uso
// @Tags         use-cases
// @Produce      json
// @Param        id   path  string  true  "ID del caso de uso"
// @Success      200  {array}   dto.TechnicalFunctionDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/use-cases/{id}/technical-functions [get]
func (h *UseCaseHandler) ListTechnicalFunctions(c *fiber.Ctx) error {
	out, err := h.uc.ListTechnicalFunctions(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LinkTechnicalFunction godoc
// @Summary      Vincular una TF al caso de uso
// @Tags         use-cases
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del caso de uso"
// @Param        body  body  dto.LinkTechnicalFunctionRequest  true  "TF a vincular"
// @Success      201   {object}  dto.TechnicalFunctionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/use-cases/{id}/technical-functions [post]
func (h *UseCaseHandler) LinkTechnicalFunction(c *fiber.Ctx) error {
	var in dto.LinkTechnicalFunctionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.LinkTechnicalFunction(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UnlinkTechnicalFunction godoc
// @Summary      Desvincular una TF del caso de uso
// @Tags         use-cases
// @Produce      json
// @Param        id    path  string  true  "ID del caso de uso"
// @Param        tfId  path  string  true  "ID de la TF"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/use-cases/{id}/technical-functions/{tfId} [delete]
func (h *UseCaseHandler) UnlinkTechnicalFunction(c *fiber.Ctx) error {
	if err := h.uc.UnlinkTechnicalFunction(c.UserContext(), c.Params("id"), c.Params("tfId")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// AvailableTechnicalFunctions godoc
// @Summary      TFs disponibles para vincular
// @Tags         use-cases
// @Produce      json
// @Param        id   path  string  true  "ID del caso de uso"
// @Success      200  {array}   dto.AvailableTechnicalFunctionDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/use-cases/{id}/available-technical-functions [get]
func (h *UseCaseHandler) AvailableTechnicalFunctions(c *fiber.Ctx) error {
	out, err := h.uc.AvailableTechnicalFunctions(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
