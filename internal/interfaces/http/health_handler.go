package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger lo implementan *pgxpool.Pool y *cache.RedisCache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler endpoints de salud.
type HealthHandler struct {
	service string
	db      Pinger
	cache   Pinger
}

// NewHealthHandler construye el handler. db nil se reporta como caída; cache nil indica
// que se usa la caché en memoria del proceso.
func NewHealthHandler(service string, db, cache Pinger) *HealthHandler {
	return &HealthHandler{service: service, db: db, cache: cache}
}

// Health godoc
// @Summary  Estado del servicio
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// Database godoc
// @Summary  Estado de la conexión a PostgreSQL
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /health/db [get]
func (h *HealthHandler) Database(c *fiber.Ctx) error {
	if h.db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": "sin conexión configurada"})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Cache godoc
// @Summary  Estado de la caché de lecturas (Redis o memoria)
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /health/cache [get]
func (h *HealthHandler) Cache(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"status": "ok", "backend": "memory"})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "backend": "redis", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok", "backend": "redis"})
}
