package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progress-api/internal/domain"
	"github.com/jhoicas/progress-api/internal/domain/entity"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

var _ repository.UseCaseRepository = (*UseCaseRepo)(nil)

// UseCaseRepo implementación del puerto UseCaseRepository sobre PostgreSQL (usable con pool o tx).
type UseCaseRepo struct {
	q Querier
}

// NewUseCaseRepository construye el adaptador de persistencia para casos de uso. Pasar pool o tx (Querier).
func NewUseCaseRepository(q Querier) *UseCaseRepo {
	return &UseCaseRepo{q: q}
}

// ListWithProgressValues devuelve cada caso de uso con el progress_percent de sus TFs vinculadas
// en una sola consulta (array_agg). Casos sin vínculos devuelven un slice vacío.
func (r *UseCaseRepo) ListWithProgressValues(ctx context.Context) ([]repository.UseCaseProgressRow, error) {
	query := `
		SELECT uc.id, uc.name, uc.description,
		       COALESCE(array_agg(tf.progress_percent ORDER BY tf.id) FILTER (WHERE tf.id IS NOT NULL), '{}')
		FROM use_cases uc
		LEFT JOIN use_case_technical_functions l ON l.use_case_id = uc.id
		LEFT JOIN technical_functions tf ON tf.id = l.technical_function_id
		GROUP BY uc.id
		ORDER BY uc.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list use cases: %w", err)
	}
	defer rows.Close()

	list := []repository.UseCaseProgressRow{}
	for rows.Next() {
		var (
			row    repository.UseCaseProgressRow
			values []int32
		)
		if err := rows.Scan(&row.UseCase.ID, &row.UseCase.Name, &row.UseCase.Description, &values); err != nil {
			return nil, fmt.Errorf("scan use case: %w", err)
		}
		row.ProgressValues = make([]int, len(values))
		for i, v := range values {
			row.ProgressValues[i] = int(v)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListNavigation id y nombre de todos los casos de uso.
func (r *UseCaseRepo) ListNavigation(ctx context.Context) ([]entity.UseCase, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM use_cases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list use case navigation: %w", err)
	}
	defer rows.Close()

	list := []entity.UseCase{}
	for rows.Next() {
		var uc entity.UseCase
		if err := rows.Scan(&uc.ID, &uc.Name); err != nil {
			return nil, fmt.Errorf("scan use case navigation: %w", err)
		}
		list = append(list, uc)
	}
	return list, rows.Err()
}

// GetByID obtiene un caso de uso por ID.
func (r *UseCaseRepo) GetByID(ctx context.Context, id string) (*entity.UseCase, error) {
	query := `
		SELECT id, name, description, hmx_input, hmx_output, customer_pd_feature, technical_function_raw
		FROM use_cases WHERE id = $1`
	var uc entity.UseCase
	err := r.q.QueryRow(ctx, query, id).Scan(
		&uc.ID, &uc.Name, &uc.Description, &uc.HmxInput, &uc.HmxOutput, &uc.CustomerPdFeature, &uc.TechnicalFunctionRaw,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get use case: %w", err)
	}
	return &uc, nil
}

// ListLinkedTechnicalFunctions TFs vinculadas al caso de uso, ordenadas por id.
func (r *UseCaseRepo) ListLinkedTechnicalFunctions(ctx context.Context, useCaseID string) ([]*entity.TechnicalFunction, error) {
	query := technicalFunctionSelect + `
		JOIN use_case_technical_functions l ON l.technical_function_id = tf.id
		WHERE l.use_case_id = $1
		ORDER BY tf.id`
	return queryTechnicalFunctions(ctx, r.q, query, useCaseID)
}

// IsLinked informa si existe el vínculo.
func (r *UseCaseRepo) IsLinked(ctx context.Context, useCaseID, technicalFunctionID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM use_case_technical_functions
			WHERE use_case_id = $1 AND technical_function_id = $2
		)`, useCaseID, technicalFunctionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check use case link: %w", err)
	}
	return exists, nil
}

// Link inserta el vínculo caso de uso ↔ TF.
func (r *UseCaseRepo) Link(ctx context.Context, useCaseID, technicalFunctionID string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO use_case_technical_functions (use_case_id, technical_function_id) VALUES ($1, $2)`,
		useCaseID, technicalFunctionID,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyLinked
		case isForeignKeyViolation(err):
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert use case link: %w", err)
	}
	return nil
}

// Unlink elimina el vínculo caso de uso ↔ TF.
func (r *UseCaseRepo) Unlink(ctx context.Context, useCaseID, technicalFunctionID string) error {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM use_case_technical_functions WHERE use_case_id = $1 AND technical_function_id = $2`,
		useCaseID, technicalFunctionID,
	)
	if err != nil {
		return fmt.Errorf("delete use case link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotLinked
	}
	return nil
}
