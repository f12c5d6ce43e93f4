package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/domain"
	"github.com/jhoicas/progress-api/internal/domain/entity"
	"github.com/jhoicas/progress-api/internal/domain/progress"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// UseCasesUseCase listado, detalle y vínculos de casos de uso con TFs.
type UseCasesUseCase struct {
	useCases repository.UseCaseRepository
	tfs      repository.TechnicalFunctionRepository
	tx       LinkTxRunner
	cache    *ReadCache
}

// NewUseCasesUseCase construye el caso de uso.
func NewUseCasesUseCase(
	useCases repository.UseCaseRepository,
	tfs repository.TechnicalFunctionRepository,
	tx LinkTxRunner,
	cache *ReadCache,
) *UseCasesUseCase {
	return &UseCasesUseCase{useCases: useCases, tfs: tfs, tx: tx, cache: cache}
}

// List devuelve los casos de uso con su progreso agregado, filtrados y paginados.
// La distribución por estado se calcula sobre el listado completo.
func (uc *UseCasesUseCase) List(ctx context.Context, q dto.UseCaseListQuery) (*dto.UseCaseListResponse, error) {
	status, err := progress.ParseStatus(q.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	all, err := uc.Summaries(ctx)
	if err != nil {
		return nil, err
	}

	var dist dto.StatusDistributionDTO
	filtered := make([]dto.UseCaseSummaryDTO, 0, len(all))
	for _, item := range all {
		switch progress.Classify(item.Percent) {
		case progress.StatusCompleted:
			dist.Completed++
		case progress.StatusNotStarted:
			dist.NotStarted++
		default:
			dist.InProgress++
		}
		if status.Matches(item.Percent) && matchesQuery(q.Q, item.ID, item.Name, deref(item.Description)) {
			filtered = append(filtered, item)
		}
	}

	items, meta := loadMore(filtered, q.Page, UseCasePageSize)
	return &dto.UseCaseListResponse{Items: items, Meta: meta, Distribution: dist}, nil
}

// Summaries todos los casos de uso con su progreso, ordenados por id (cacheado por CacheTTL.List).
func (uc *UseCasesUseCase) Summaries(ctx context.Context) ([]dto.UseCaseSummaryDTO, error) {
	return readThrough(ctx, uc.cache, CacheKeyUseCasesList, func(ctx context.Context) ([]dto.UseCaseSummaryDTO, error) {
		rows, err := uc.useCases.ListWithProgressValues(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.UseCaseSummaryDTO, 0, len(rows))
		for _, row := range rows {
			out = append(out, dto.UseCaseSummaryDTO{
				ID:          row.UseCase.ID,
				Name:        row.UseCase.Name,
				Description: row.UseCase.Description,
				ProgressDTO: toProgressDTO(progress.Summarize(row.ProgressValues)),
			})
		}
		return out, nil
	})
}

// Jump salto rápido: hasta JumpLimit casos de uso cuyo id o nombre contiene q.
func (uc *UseCasesUseCase) Jump(ctx context.Context, q string) ([]dto.UseCaseRefDTO, error) {
	out := []dto.UseCaseRefDTO{}
	if strings.TrimSpace(q) == "" {
		return out, nil
	}
	nav, err := uc.navigation(ctx)
	if err != nil {
		return nil, err
	}
	for _, ref := range nav {
		if matchesQuery(q, ref.ID, ref.Name) {
			out = append(out, ref)
			if len(out) == JumpLimit {
				break
			}
		}
	}
	return out, nil
}

func (uc *UseCasesUseCase) navigation(ctx context.Context) ([]dto.UseCaseRefDTO, error) {
	return readThrough(ctx, uc.cache, CacheKeyUseCaseNavigation, func(ctx context.Context) ([]dto.UseCaseRefDTO, error) {
		list, err := uc.useCases.ListNavigation(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.UseCaseRefDTO, 0, len(list))
		for _, u := range list {
			out = append(out, dto.UseCaseRefDTO{ID: u.ID, Name: u.Name})
		}
		return out, nil
	})
}

// Detail devuelve el caso de uso con navegación, progreso total, TFs vinculadas y los PFs que toca.
// El progreso de cada PF se calcula solo sobre las TFs vinculadas a este caso de uso.
func (uc *UseCasesUseCase) Detail(ctx context.Context, id string) (*dto.UseCaseDetailDTO, error) {
	var (
		useCase *entity.UseCase
		linked  []*entity.TechnicalFunction
		nav     []dto.UseCaseRefDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		useCase, err = uc.useCases.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		linked, err = uc.useCases.ListLinkedTechnicalFunctions(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		nav, err = uc.navigation(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if useCase == nil {
		return nil, domain.ErrNotFound
	}

	// PFs distintos ordenados por id; las TFs se ordenan por esa posición y luego por id.
	pfByID := map[string]*entity.ProductFunction{}
	for _, tf := range linked {
		if tf.ProductFunction != nil {
			pfByID[tf.ProductFunction.ID] = tf.ProductFunction
		}
	}
	pfIDs := make([]string, 0, len(pfByID))
	for pfID := range pfByID {
		pfIDs = append(pfIDs, pfID)
	}
	sort.Strings(pfIDs)
	pfIndex := make(map[string]int, len(pfIDs))
	for i, pfID := range pfIDs {
		pfIndex[pfID] = i
	}
	rank := func(tf *entity.TechnicalFunction) int {
		if tf.ProductFunction == nil {
			return -1
		}
		return pfIndex[tf.ProductFunction.ID]
	}
	sorted := append([]*entity.TechnicalFunction(nil), linked...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := rank(sorted[i]), rank(sorted[j])
		if ri != rj {
			return ri < rj
		}
		return sorted[i].ID < sorted[j].ID
	})

	values := make([]int, 0, len(sorted))
	valuesByPF := map[string][]int{}
	tfDTOs := make([]dto.TechnicalFunctionDTO, 0, len(sorted))
	for _, tf := range sorted {
		values = append(values, tf.ProgressPercent)
		if tf.ProductFunction != nil {
			valuesByPF[tf.ProductFunction.ID] = append(valuesByPF[tf.ProductFunction.ID], tf.ProgressPercent)
		}
		tfDTOs = append(tfDTOs, toTechnicalFunctionDTO(tf))
	}

	related := make([]dto.RelatedProductFunctionDTO, 0, len(pfIDs))
	for _, pfID := range pfIDs {
		pf := pfByID[pfID]
		related = append(related, dto.RelatedProductFunctionDTO{
			ID:          pf.ID,
			Name:        pf.Name,
			FeatureName: featureName(pf.Feature),
			DomainName:  pf.Feature.DomainName(),
			ProgressDTO: toProgressDTO(progress.Summarize(valuesByPF[pfID])),
		})
	}

	return &dto.UseCaseDetailDTO{
		ID:                   useCase.ID,
		Name:                 useCase.Name,
		Description:          useCase.Description,
		HmxInput:             useCase.HmxInput,
		HmxOutput:            useCase.HmxOutput,
		CustomerPdFeature:    useCase.CustomerPdFeature,
		TechnicalFunctionRaw: useCase.TechnicalFunctionRaw,
		Navigation:           buildNavigation(nav, useCase.ID),
		Progress:             toProgressDTO(progress.Summarize(values)),
		TechnicalFunctions:   tfDTOs,
		ProductFunctions:     related,
	}, nil
}

// buildNavigation posición de id en la lista ordenada y sus vecinos.
func buildNavigation(nav []dto.UseCaseRefDTO, id string) dto.UseCaseNavigationDTO {
	out := dto.UseCaseNavigationDTO{Total: len(nav)}
	for i := range nav {
		if nav[i].ID != id {
			continue
		}
		out.Index = i + 1
		if i > 0 {
			prev := nav[i-1]
			out.Prev = &prev
		}
		if i < len(nav)-1 {
			next := nav[i+1]
			out.Next = &next
		}
		break
	}
	return out
}

// ListTechnicalFunctions TFs vinculadas al caso de uso.
func (uc *UseCasesUseCase) ListTechnicalFunctions(ctx context.Context, useCaseID string) ([]dto.TechnicalFunctionDTO, error) {
	if err := uc.ensureUseCase(ctx, useCaseID); err != nil {
		return nil, err
	}
	linked, err := uc.useCases.ListLinkedTechnicalFunctions(ctx, useCaseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnicalFunctionDTO, 0, len(linked))
	for _, tf := range linked {
		out = append(out, toTechnicalFunctionDTO(tf))
	}
	return out, nil
}

// AvailableTechnicalFunctions TFs que aún no están vinculadas al caso de uso.
func (uc *UseCasesUseCase) AvailableTechnicalFunctions(ctx context.Context, useCaseID string) ([]dto.AvailableTechnicalFunctionDTO, error) {
	if err := uc.ensureUseCase(ctx, useCaseID); err != nil {
		return nil, err
	}
	list, err := uc.tfs.ListAvailableForUseCase(ctx, useCaseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AvailableTechnicalFunctionDTO, 0, len(list))
	for _, tf := range list {
		item := dto.AvailableTechnicalFunctionDTO{
			ID:                tf.ID,
			Name:              tf.Name,
			Description:       tf.Description,
			ProgressPercent:   tf.ProgressPercent,
			ProductFunctionID: tf.ProductFunctionID,
		}
		if pf := tf.ProductFunction; pf != nil {
			item.ProductFunctionName = pf.Name
			item.FeatureName = featureName(pf.Feature)
			item.DomainName = pf.Feature.DomainName()
		}
		out = append(out, item)
	}
	return out, nil
}

// LinkTechnicalFunction vincula la TF al caso de uso en una transacción.
// ErrInvalidInput sin id, ErrNotFound si falta alguno, ErrAlreadyLinked si ya existía.
func (uc *UseCasesUseCase) LinkTechnicalFunction(ctx context.Context, useCaseID string, in dto.LinkTechnicalFunctionRequest) (*dto.TechnicalFunctionDTO, error) {
	tfID := strings.TrimSpace(in.TechnicalFunctionID)
	if tfID == "" {
		return nil, fmt.Errorf("%w: technical_function_id es requerido", domain.ErrInvalidInput)
	}

	var linked *entity.TechnicalFunction
	err := uc.tx.RunLinks(ctx, func(useCases repository.UseCaseRepository, tfs repository.TechnicalFunctionRepository) error {
		useCase, err := useCases.GetByID(ctx, useCaseID)
		if err != nil {
			return err
		}
		if useCase == nil {
			return domain.ErrNotFound
		}
		tf, err := tfs.GetByID(ctx, tfID)
		if err != nil {
			return err
		}
		if tf == nil {
			return domain.ErrNotFound
		}
		exists, err := useCases.IsLinked(ctx, useCaseID, tfID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyLinked
		}
		if err := useCases.Link(ctx, useCaseID, tfID); err != nil {
			return err
		}
		linked = tf
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	out := toTechnicalFunctionDTO(linked)
	return &out, nil
}

// UnlinkTechnicalFunction elimina el vínculo. ErrNotLinked si no existía.
func (uc *UseCasesUseCase) UnlinkTechnicalFunction(ctx context.Context, useCaseID, tfID string) error {
	if err := uc.useCases.Unlink(ctx, useCaseID, tfID); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx)
	return nil
}

func (uc *UseCasesUseCase) ensureUseCase(ctx context.Context, id string) error {
	useCase, err := uc.useCases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if useCase == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toTechnicalFunctionDTO(tf *entity.TechnicalFunction) dto.TechnicalFunctionDTO {
	out := dto.TechnicalFunctionDTO{
		ID:              tf.ID,
		Name:            tf.Name,
		ProgressPercent: tf.ProgressPercent,
	}
	if tf.ProductFunction != nil {
		out.ProductFunction = &dto.ProductFunctionOptionDTO{ID: tf.ProductFunction.ID, Name: tf.ProductFunction.Name}
	}
	return out
}

func featureName(f *entity.Feature) string {
	if f == nil {
		return ""
	}
	return f.Name
}
