package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/domain"
	"github.com/jhoicas/progress-api/internal/domain/progress"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// TechnicalFunctionUseCase escrituras sobre TechnicalFunction: progreso y PF padre.
type TechnicalFunctionUseCase struct {
	tfs   repository.TechnicalFunctionRepository
	pfs   repository.ProductFunctionRepository
	cache *ReadCache
}

// NewTechnicalFunctionUseCase construye el caso de uso.
func NewTechnicalFunctionUseCase(tfs repository.TechnicalFunctionRepository, pfs repository.ProductFunctionRepository, cache *ReadCache) *TechnicalFunctionUseCase {
	return &TechnicalFunctionUseCase{tfs: tfs, pfs: pfs, cache: cache}
}

// UpdateProgress valida y persiste progress_percent (último en escribir gana).
// Un valor inválido devuelve ErrProgressOutOfRange sin tocar la base.
func (uc *TechnicalFunctionUseCase) UpdateProgress(ctx context.Context, id string, raw json.RawMessage) (*dto.ProgressUpdatedDTO, error) {
	percent, err := progress.ParsePercent(raw)
	if err != nil {
		return nil, err
	}
	if err := uc.tfs.UpdateProgress(ctx, id, percent); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)
	return &dto.ProgressUpdatedDTO{ID: id, ProgressPercent: percent}, nil
}

// UpdateParent mueve la TF a otro PF. El campo es obligatorio; null la deja sin PF.
func (uc *TechnicalFunctionUseCase) UpdateParent(ctx context.Context, id string, in dto.UpdateParentRequest) (*dto.TechnicalFunctionParentDTO, error) {
	if !in.ProductFunctionID.Set {
		return nil, domain.ErrInvalidInput
	}

	out := &dto.TechnicalFunctionParentDTO{ID: id}
	if v := in.ProductFunctionID.Value; v != nil && strings.TrimSpace(*v) != "" {
		pf, err := uc.pfs.GetByID(ctx, strings.TrimSpace(*v))
		if err != nil {
			return nil, err
		}
		if pf == nil {
			return nil, domain.ErrInvalidReference
		}
		out.ProductFunctionID = &pf.ID
		out.ProductFunction = &dto.ProductFunctionOptionDTO{ID: pf.ID, Name: pf.Name}
	}

	if err := uc.tfs.UpdateParent(ctx, id, out.ProductFunctionID); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)
	return out, nil
}
