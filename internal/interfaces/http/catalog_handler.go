package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progress-api/internal/application/usecase"
)

// CatalogHandler listados de referencia (dominios, features, PFs).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListDomains godoc
// @Summary      Listar dominios
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.DomainDTO
// @Router       /api/domains [get]
func (h *CatalogHandler) ListDomains(c *fiber.Ctx) error {
	out, err := h.uc.ListDomains(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListFeatures godoc
// @Summary      Listar features con su dominio
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.FeatureDTO
// @Router       /api/features [get]
func (h *CatalogHandler) ListFeatures(c *fiber.Ctx) error {
	out, err := h.uc.ListFeatures(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListProductFunctions godoc
// @Summary      Listar PFs (id y nombre)
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.ProductFunctionOptionDTO
// @Router       /api/product-functions [get]
func (h *CatalogHandler) ListProductFunctions(c *fiber.Ctx) error {
	out, err := h.uc.ListProductFunctionOptions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
