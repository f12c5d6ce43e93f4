package usecase

import (
	"context"

	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// LinkTxRunner ejecuta fn dentro de una transacción con repos atados a la misma tx.
// Lo implementa postgres.TxRunner.
type LinkTxRunner interface {
	RunLinks(ctx context.Context, fn func(
		useCaseRepo repository.UseCaseRepository,
		tfRepo repository.TechnicalFunctionRepository,
	) error) error
}
