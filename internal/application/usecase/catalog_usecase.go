package usecase

import (
	"context"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/domain/entity"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// CatalogUseCase listados de referencia para selectores (dominios, features, PFs).
type CatalogUseCase struct {
	domains  repository.DomainRepository
	features repository.FeatureRepository
	pfs      repository.ProductFunctionRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(domains repository.DomainRepository, features repository.FeatureRepository, pfs repository.ProductFunctionRepository) *CatalogUseCase {
	return &CatalogUseCase{domains: domains, features: features, pfs: pfs}
}

func (uc *CatalogUseCase) ListDomains(ctx context.Context) ([]dto.DomainDTO, error) {
	list, err := uc.domains.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DomainDTO, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DomainDTO{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) ListFeatures(ctx context.Context) ([]dto.FeatureDTO, error) {
	list, err := uc.features.ListWithDomain(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FeatureDTO, 0, len(list))
	for _, f := range list {
		out = append(out, *toFeatureDTO(f))
	}
	return out, nil
}

func (uc *CatalogUseCase) ListProductFunctionOptions(ctx context.Context) ([]dto.ProductFunctionOptionDTO, error) {
	list, err := uc.pfs.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductFunctionOptionDTO, 0, len(list))
	for _, pf := range list {
		out = append(out, dto.ProductFunctionOptionDTO{ID: pf.ID, Name: pf.Name})
	}
	return out, nil
}

func toFeatureDTO(f *entity.Feature) *dto.FeatureDTO {
	if f == nil {
		return nil
	}
	out := &dto.FeatureDTO{ID: f.ID, Name: f.Name}
	if f.Domain != nil {
		out.Domain = &dto.DomainDTO{ID: f.Domain.ID, Name: f.Domain.Name}
	}
	return out
}
