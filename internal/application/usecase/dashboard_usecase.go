package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/domain/progress"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// DashboardUseCase estadísticas globales del tablero principal.
type DashboardUseCase struct {
	stats repository.StatsRepository
	cache *ReadCache
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository, cache *ReadCache) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, cache: cache}
}

// GetStats devuelve los conteos globales (cacheados por CacheTTL.Stats).
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats, err := readThrough(ctx, uc.cache, CacheKeyDashboardStats, uc.loadStats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (uc *DashboardUseCase) loadStats(ctx context.Context) (dto.DashboardStatsDTO, error) {
	var out dto.DashboardStatsDTO

	// Consultas independientes en paralelo; la primera que falle cancela el resto.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.UseCaseCount, err = uc.stats.CountUseCases(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TechnicalFunctionCount, err = uc.stats.CountTechnicalFunctions(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.ProductFunctionCount, err = uc.stats.CountProductFunctions(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.CompletedTechnicalFunctionCount, err = uc.stats.CountCompletedTechnicalFunctions(gctx)
		return err
	})
	g.Go(func() error {
		avg, err := uc.stats.AverageProgress(gctx)
		if err != nil {
			return err
		}
		out.AverageProgress = avg.Round(2)
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.DashboardStatsDTO{}, err
	}

	total := out.TechnicalFunctionCount
	inProgress := total - out.CompletedTechnicalFunctionCount
	if inProgress < 0 {
		inProgress = 0
	}
	out.InProgressTechnicalFunctionCount = inProgress
	out.OverallPercent = progress.RatioPercent(out.CompletedTechnicalFunctionCount, total)
	out.CompletedPercent = out.OverallPercent
	out.InProgressPercent = progress.RatioPercent(inProgress, total)
	return out, nil
}
