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

var _ repository.TechnicalFunctionRepository = (*TechnicalFunctionRepo)(nil)

// TechnicalFunctionRepo implementación del puerto TechnicalFunctionRepository sobre PostgreSQL.
type TechnicalFunctionRepo struct {
	q Querier
}

// NewTechnicalFunctionRepository construye el adaptador de persistencia para TFs. Pasar pool o tx (Querier).
func NewTechnicalFunctionRepository(q Querier) *TechnicalFunctionRepo {
	return &TechnicalFunctionRepo{q: q}
}

// TF + resumen de su PF (con feature y dominio).
const technicalFunctionSelect = `
	SELECT tf.id, tf.name, tf.description, tf.state, tf.progress_percent, tf.product_function_id,
	       pf.name, pf.feature_id, f.name, f.domain_id, d.name
	FROM technical_functions tf
	LEFT JOIN product_functions pf ON pf.id = tf.product_function_id
	LEFT JOIN features f ON f.id = pf.feature_id
	LEFT JOIN domains d ON d.id = f.domain_id`

// GetByID obtiene una TF por ID.
func (r *TechnicalFunctionRepo) GetByID(ctx context.Context, id string) (*entity.TechnicalFunction, error) {
	tf, err := scanTechnicalFunction(r.q.QueryRow(ctx, technicalFunctionSelect+` WHERE tf.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get technical function: %w", err)
	}
	return tf, nil
}

// UpdateProgress escribe progress_percent. El CHECK de la tabla respalda la validación previa.
func (r *TechnicalFunctionRepo) UpdateProgress(ctx context.Context, id string, percent int) error {
	tag, err := r.q.Exec(ctx, `UPDATE technical_functions SET progress_percent = $2 WHERE id = $1`, id, percent)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrProgressOutOfRange
		}
		return fmt.Errorf("update technical function progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateParent cambia product_function_id (nil = sin PF).
func (r *TechnicalFunctionRepo) UpdateParent(ctx context.Context, id string, productFunctionID *string) error {
	tag, err := r.q.Exec(ctx, `UPDATE technical_functions SET product_function_id = $2 WHERE id = $1`, id, productFunctionID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update technical function parent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAvailableForUseCase TFs que todavía no están vinculadas al caso de uso.
func (r *TechnicalFunctionRepo) ListAvailableForUseCase(ctx context.Context, useCaseID string) ([]*entity.TechnicalFunction, error) {
	query := technicalFunctionSelect + `
		WHERE NOT EXISTS (
			SELECT 1 FROM use_case_technical_functions l
			WHERE l.use_case_id = $1 AND l.technical_function_id = tf.id
		)
		ORDER BY pf.name NULLS LAST, tf.name, tf.id`
	return queryTechnicalFunctions(ctx, r.q, query, useCaseID)
}

func queryTechnicalFunctions(ctx context.Context, q Querier, query string, args ...any) ([]*entity.TechnicalFunction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list technical functions: %w", err)
	}
	defer rows.Close()

	list := []*entity.TechnicalFunction{}
	for rows.Next() {
		tf, err := scanTechnicalFunction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technical function: %w", err)
		}
		list = append(list, tf)
	}
	return list, rows.Err()
}

func scanTechnicalFunction(s scanner) (*entity.TechnicalFunction, error) {
	var (
		tf          entity.TechnicalFunction
		pfName      *string
		featureID   *string
		featureName *string
		domainID    *string
		domainName  *string
	)
	err := s.Scan(
		&tf.ID, &tf.Name, &tf.Description, &tf.State, &tf.ProgressPercent, &tf.ProductFunctionID,
		&pfName, &featureID, &featureName, &domainID, &domainName,
	)
	if err != nil {
		return nil, err
	}
	if tf.ProductFunctionID != nil && pfName != nil {
		tf.ProductFunction = &entity.ProductFunction{
			ID:        *tf.ProductFunctionID,
			Name:      *pfName,
			FeatureID: featureID,
			Feature:   buildFeature(featureID, featureName, domainID, domainName),
		}
	}
	return &tf, nil
}
