package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/progress-api/internal/application/usecase"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

var _ usecase.LinkTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunLinks inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Lo usa el alta de vínculos caso de uso ↔ TF (verificar existencia + insertar).
func (r *TxRunner) RunLinks(ctx context.Context, fn func(
	useCaseRepo repository.UseCaseRepository,
	tfRepo repository.TechnicalFunctionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUseCaseRepository(tx), NewTechnicalFunctionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStatements aplica las sentencias en orden dentro de una única transacción.
// Devuelve cuántas se ejecutaron; ante el primer error no se aplica ninguna.
func (r *TxRunner) RunStatements(ctx context.Context, statements []string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return 0, fmt.Errorf("sentencia %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return len(statements), nil
}
