package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progress-api/internal/domain/entity"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

var (
	_ repository.DomainRepository  = (*DomainRepo)(nil)
	_ repository.FeatureRepository = (*FeatureRepo)(nil)
)

// DomainRepo implementación de DomainRepository sobre PostgreSQL.
type DomainRepo struct {
	q Querier
}

// NewDomainRepository construye el adaptador de dominios.
func NewDomainRepository(q Querier) *DomainRepo {
	return &DomainRepo{q: q}
}

// List devuelve los dominios ordenados por nombre.
func (r *DomainRepo) List(ctx context.Context) ([]*entity.Domain, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM domains ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	var list []*entity.Domain
	for rows.Next() {
		var d entity.Domain
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// FeatureRepo implementación de FeatureRepository sobre PostgreSQL.
type FeatureRepo struct {
	q Querier
}

// NewFeatureRepository construye el adaptador de features.
func NewFeatureRepository(q Querier) *FeatureRepo {
	return &FeatureRepo{q: q}
}

const featureSelect = `
	SELECT f.id, f.name, f.domain_id, d.name
	FROM features f
	LEFT JOIN domains d ON d.id = f.domain_id`

// ListWithDomain devuelve las features con su dominio (las huérfanas al final).
func (r *FeatureRepo) ListWithDomain(ctx context.Context) ([]*entity.Feature, error) {
	rows, err := r.q.Query(ctx, featureSelect+` ORDER BY d.name NULLS LAST, f.name, f.id`)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	defer rows.Close()

	var list []*entity.Feature
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// GetByID obtiene una feature por ID, o (nil, nil) si no existe.
func (r *FeatureRepo) GetByID(ctx context.Context, id string) (*entity.Feature, error) {
	f, err := scanFeature(r.q.QueryRow(ctx, featureSelect+` WHERE f.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feature: %w", err)
	}
	return f, nil
}

func scanFeature(s scanner) (*entity.Feature, error) {
	var (
		f          entity.Feature
		domainName *string
	)
	if err := s.Scan(&f.ID, &f.Name, &f.DomainID, &domainName); err != nil {
		return nil, err
	}
	if f.DomainID != nil && domainName != nil {
		f.Domain = &entity.Domain{ID: *f.DomainID, Name: *domainName}
	}
	return &f, nil
}
