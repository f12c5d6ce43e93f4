package repository

import (
	"context"

	"github.com/jhoicas/progress-api/internal/domain/entity"
)

// DomainRepository puerto de lectura para Domains.
type DomainRepository interface {
	List(ctx context.Context) ([]*entity.Domain, error)
}

// FeatureRepository puerto de lectura para Features.
type FeatureRepository interface {
	// ListWithDomain devuelve todas las features con su dominio, ordenadas por dominio y nombre.
	ListWithDomain(ctx context.Context) ([]*entity.Feature, error)
	GetByID(ctx context.Context, id string) (*entity.Feature, error)
}
