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

var _ repository.ProductFunctionRepository = (*ProductFunctionRepo)(nil)

// ProductFunctionRepo implementación del puerto ProductFunctionRepository sobre PostgreSQL (usable con pool o tx).
type ProductFunctionRepo struct {
	q Querier
}

// NewProductFunctionRepository construye el adaptador de persistencia para PFs. Pasar pool o tx (Querier).
func NewProductFunctionRepository(q Querier) *ProductFunctionRepo {
	return &ProductFunctionRepo{q: q}
}

const productFunctionSelect = `
	SELECT pf.id, pf.name, pf.name_cn, pf.description_en, pf.description_cn, pf.feature_id,
	       COALESCE(pf.tags, '{}'), f.name, f.domain_id, d.name
	FROM product_functions pf
	LEFT JOIN features f ON f.id = pf.feature_id
	LEFT JOIN domains d ON d.id = f.domain_id`

// ListOptions devuelve id y nombre de cada PF ordenados por id.
func (r *ProductFunctionRepo) ListOptions(ctx context.Context) ([]*entity.ProductFunction, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM product_functions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list product function options: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductFunction
	for rows.Next() {
		var pf entity.ProductFunction
		if err := rows.Scan(&pf.ID, &pf.Name); err != nil {
			return nil, fmt.Errorf("scan product function option: %w", err)
		}
		list = append(list, &pf)
	}
	return list, rows.Err()
}

// ListWithTechnicalFunctions carga todos los PFs y luego todas sus TFs en una segunda consulta.
func (r *ProductFunctionRepo) ListWithTechnicalFunctions(ctx context.Context) ([]*entity.ProductFunction, error) {
	pfs, err := r.queryProductFunctions(ctx, productFunctionSelect+` ORDER BY pf.id`)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.ProductFunction, len(pfs))
	for _, pf := range pfs {
		pf.TechnicalFunctions = []*entity.TechnicalFunction{}
		byID[pf.ID] = pf
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, state, progress_percent, product_function_id
		FROM technical_functions
		WHERE product_function_id IS NOT NULL
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list technical functions by product function: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tf entity.TechnicalFunction
		if err := rows.Scan(&tf.ID, &tf.Name, &tf.Description, &tf.State, &tf.ProgressPercent, &tf.ProductFunctionID); err != nil {
			return nil, fmt.Errorf("scan technical function: %w", err)
		}
		if pf, ok := byID[*tf.ProductFunctionID]; ok {
			pf.TechnicalFunctions = append(pf.TechnicalFunctions, &tf)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pfs, nil
}

// GetByID obtiene un PF por ID.
func (r *ProductFunctionRepo) GetByID(ctx context.Context, id string) (*entity.ProductFunction, error) {
	pf, err := scanProductFunction(r.q.QueryRow(ctx, productFunctionSelect+` WHERE pf.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product function: %w", err)
	}
	return pf, nil
}

// Update persiste feature_id y tags del PF.
func (r *ProductFunctionRepo) Update(ctx context.Context, pf *entity.ProductFunction) error {
	tags := pf.Tags
	if tags == nil {
		tags = []string{}
	}
	tag, err := r.q.Exec(ctx,
		`UPDATE product_functions SET feature_id = $2, tags = $3 WHERE id = $1`,
		pf.ID, pf.FeatureID, tags,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update product function: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductFunctionRepo) queryProductFunctions(ctx context.Context, query string, args ...any) ([]*entity.ProductFunction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product functions: %w", err)
	}
	defer rows.Close()

	list := []*entity.ProductFunction{}
	for rows.Next() {
		pf, err := scanProductFunction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product function: %w", err)
		}
		list = append(list, pf)
	}
	return list, rows.Err()
}

func scanProductFunction(s scanner) (*entity.ProductFunction, error) {
	var (
		pf          entity.ProductFunction
		featureName *string
		domainID    *string
		domainName  *string
	)
	err := s.Scan(
		&pf.ID, &pf.Name, &pf.NameCn, &pf.DescriptionEn, &pf.DescriptionCn, &pf.FeatureID,
		&pf.Tags, &featureName, &domainID, &domainName,
	)
	if err != nil {
		return nil, err
	}
	pf.Feature = buildFeature(pf.FeatureID, featureName, domainID, domainName)
	return &pf, nil
}

// buildFeature arma la feature de un LEFT JOIN; nil si la fila no tenía feature.
func buildFeature(id, name, domainID, domainName *string) *entity.Feature {
	if id == nil || name == nil {
		return nil
	}
	f := &entity.Feature{ID: *id, Name: *name, DomainID: domainID}
	if domainID != nil && domainName != nil {
		f.Domain = &entity.Domain{ID: *domainID, Name: *domainName}
	}
	return f
}
