package repository

import (
	"context"

	"github.com/jhoicas/progress-api/internal/domain/entity"
)

// ProductFunctionRepository define el puerto de persistencia para ProductFunction (DIP).
type ProductFunctionRepository interface {
	// ListOptions devuelve solo id y nombre, ordenados por id (selectores de la UI).
	ListOptions(ctx context.Context) ([]*entity.ProductFunction, error)
	// ListWithTechnicalFunctions devuelve cada PF con feature, dominio y sus TFs ordenadas por id.
	ListWithTechnicalFunctions(ctx context.Context) ([]*entity.ProductFunction, error)
	// GetByID devuelve el PF con feature y dominio, o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.ProductFunction, error)
	// Update persiste feature_id y tags.
	Update(ctx context.Context, pf *entity.ProductFunction) error
}
