package repository

import (
	"context"

	"github.com/jhoicas/progress-api/internal/domain/entity"
)

// TechnicalFunctionRepository define el puerto de persistencia para TechnicalFunction (DIP).
type TechnicalFunctionRepository interface {
	// GetByID devuelve la TF con el resumen de su PF, o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.TechnicalFunction, error)
	// UpdateProgress escribe progress_percent (último en escribir gana). ErrNotFound si no existe.
	UpdateProgress(ctx context.Context, id string, percent int) error
	// UpdateParent mueve la TF a otro PF; nil la desvincula. ErrNotFound si no existe.
	UpdateParent(ctx context.Context, id string, productFunctionID *string) error
	// ListAvailableForUseCase devuelve las TFs no vinculadas al caso de uso, con PF, feature
	// y dominio, ordenadas por nombre del PF y nombre de la TF.
	ListAvailableForUseCase(ctx context.Context, useCaseID string) ([]*entity.TechnicalFunction, error)
}
