package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progress-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas del dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

func (r *StatsRepo) CountUseCases(ctx context.Context) (int, error) {
	return r.count(ctx, "count use cases", `SELECT COUNT(*) FROM use_cases`)
}

func (r *StatsRepo) CountProductFunctions(ctx context.Context) (int, error) {
	return r.count(ctx, "count product functions", `SELECT COUNT(*) FROM product_functions`)
}

func (r *StatsRepo) CountTechnicalFunctions(ctx context.Context) (int, error) {
	return r.count(ctx, "count technical functions", `SELECT COUNT(*) FROM technical_functions`)
}

func (r *StatsRepo) CountCompletedTechnicalFunctions(ctx context.Context) (int, error) {
	return r.count(ctx, "count completed technical functions",
		`SELECT COUNT(*) FROM technical_functions WHERE progress_percent >= 100`)
}

// AverageProgress AVG sobre NUMERIC; pgxdecimal lo escanea a decimal.Decimal.
func (r *StatsRepo) AverageProgress(ctx context.Context) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(AVG(progress_percent), 0)::numeric FROM technical_functions`).Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("average progress: %w", err)
	}
	return avg, nil
}

func (r *StatsRepo) count(ctx context.Context, op, query string) (int, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(n), nil
}
