package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/domain"
	"github.com/jhoicas/progress-api/internal/domain/entity"
	"github.com/jhoicas/progress-api/internal/domain/progress"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// StructureUseCase vista Domain > Feature > PF > TF con el progreso derivado de cada PF.
type StructureUseCase struct {
	pfs      repository.ProductFunctionRepository
	features repository.FeatureRepository
	cache    *ReadCache
}

// NewStructureUseCase construye el caso de uso.
func NewStructureUseCase(pfs repository.ProductFunctionRepository, features repository.FeatureRepository, cache *ReadCache) *StructureUseCase {
	return &StructureUseCase{pfs: pfs, features: features, cache: cache}
}

// List PFs con sus TFs y progreso. Con q.PF solo se devuelve ese PF y se ignoran los demás filtros.
func (uc *StructureUseCase) List(ctx context.Context, q dto.StructureQuery) (*dto.StructureResponse, error) {
	status, err := progress.ParseStatus(q.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	pfs, err := uc.pfs.ListWithTechnicalFunctions(ctx)
	if err != nil {
		return nil, err
	}

	single := strings.TrimSpace(q.PF)
	filtered := make([]dto.ProductFunctionItemDTO, 0, len(pfs))
	for _, pf := range pfs {
		item := toProductFunctionItem(pf)
		if single != "" {
			if pf.ID == single {
				filtered = append(filtered, item)
			}
			continue
		}
		if status.Matches(item.Percent) && matchesProductFunction(q.Q, pf) {
			filtered = append(filtered, item)
		}
	}

	items, meta := loadMore(filtered, q.Page, StructurePageSize)
	return &dto.StructureResponse{Items: items, Meta: meta}, nil
}

// UpdateProductFunction actualiza feature_id y/o tags. Los campos ausentes no se modifican.
func (uc *StructureUseCase) UpdateProductFunction(ctx context.Context, id string, in dto.UpdateProductFunctionRequest) (*dto.ProductFunctionUpdatedDTO, error) {
	pf, err := uc.pfs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pf == nil {
		return nil, domain.ErrNotFound
	}

	if in.FeatureID.Set {
		pf.FeatureID, pf.Feature = nil, nil
		if in.FeatureID.Value != nil && strings.TrimSpace(*in.FeatureID.Value) != "" {
			feature, err := uc.features.GetByID(ctx, strings.TrimSpace(*in.FeatureID.Value))
			if err != nil {
				return nil, err
			}
			if feature == nil {
				return nil, domain.ErrInvalidReference
			}
			pf.FeatureID, pf.Feature = &feature.ID, feature
		}
	}
	if in.Tags != nil {
		pf.Tags = normalizeTags(*in.Tags)
	}

	if err := uc.pfs.Update(ctx, pf); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)

	return &dto.ProductFunctionUpdatedDTO{
		ID:        pf.ID,
		FeatureID: pf.FeatureID,
		Tags:      nonNilTags(pf.Tags),
		Feature:   toFeatureDTO(pf.Feature),
	}, nil
}

func matchesProductFunction(q string, pf *entity.ProductFunction) bool {
	fields := []string{pf.ID, pf.Name, deref(pf.DescriptionEn), featureName(pf.Feature), pf.Feature.DomainName()}
	fields = append(fields, pf.Tags...)
	for _, tf := range pf.TechnicalFunctions {
		fields = append(fields, tf.ID, tf.Name, deref(tf.Description))
	}
	return matchesQuery(q, fields...)
}

func toProductFunctionItem(pf *entity.ProductFunction) dto.ProductFunctionItemDTO {
	tfs := make([]dto.TechnicalFunctionItemDTO, 0, len(pf.TechnicalFunctions))
	for _, tf := range pf.TechnicalFunctions {
		tfs = append(tfs, dto.TechnicalFunctionItemDTO{
			ID:              tf.ID,
			Name:            tf.Name,
			Description:     tf.Description,
			State:           tf.State,
			ProgressPercent: tf.ProgressPercent,
		})
	}
	return dto.ProductFunctionItemDTO{
		ID:                 pf.ID,
		Name:               pf.Name,
		NameCn:             pf.NameCn,
		DescriptionEn:      pf.DescriptionEn,
		DescriptionCn:      pf.DescriptionCn,
		Tags:               nonNilTags(pf.Tags),
		Feature:            toFeatureDTO(pf.Feature),
		TechnicalFunctions: tfs,
		ProgressDTO:        toProgressDTO(progress.Summarize(pf.ProgressValues())),
	}
}

// normalizeTags recorta espacios, descarta vacíos y duplicados conservando el orden.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
