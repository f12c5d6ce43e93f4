package repository

import (
	"context"

	"github.com/jhoicas/progress-api/internal/domain/entity"
)

// UseCaseProgressRow resultado crudo del listado: el caso de uso y el progress_percent
// de cada TF vinculada. El use case lo agrega con el paquete progress.
type UseCaseProgressRow struct {
	UseCase        entity.UseCase
	ProgressValues []int
}

// UseCaseRepository define el puerto de persistencia para UseCase y su vínculo con TFs.
type UseCaseRepository interface {
	ListWithProgressValues(ctx context.Context) ([]UseCaseProgressRow, error)
	// ListNavigation devuelve id y nombre de todos los casos de uso ordenados por id.
	ListNavigation(ctx context.Context) ([]entity.UseCase, error)
	GetByID(ctx context.Context, id string) (*entity.UseCase, error)
	// ListLinkedTechnicalFunctions devuelve las TFs vinculadas con su PF (y feature/dominio del PF).
	ListLinkedTechnicalFunctions(ctx context.Context, useCaseID string) ([]*entity.TechnicalFunction, error)
	IsLinked(ctx context.Context, useCaseID, technicalFunctionID string) (bool, error)
	// Link crea el vínculo. ErrAlreadyLinked si ya existe, ErrInvalidReference si falta alguna parte.
	Link(ctx context.Context, useCaseID, technicalFunctionID string) error
	// Unlink elimina el vínculo. ErrNotLinked si no existía.
	Unlink(ctx context.Context, useCaseID, technicalFunctionID string) error
}
