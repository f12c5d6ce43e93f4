package http_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progress-api/internal/domain"
	"github.com/jhoicas/progress-api/internal/domain/entity"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// store base en memoria para los tests de handlers.
type store struct {
	mu       sync.Mutex
	features map[string]*entity.Feature
	pfs      map[string]*entity.ProductFunction
	tfs      map[string]*entity.TechnicalFunction
	useCases map[string]*entity.UseCase
	links    map[string]map[string]bool
	statsErr error
}

func strPtr(s string) *string { return &s }

func newStore() *store {
	s := &store{
		features: map[string]*entity.Feature{
			"F1": {ID: "F1", Name: "Motion", DomainID: strPtr("D01"), Domain: &entity.Domain{ID: "D01", Name: "Core"}},
		},
		pfs: map[string]*entity.ProductFunction{
			"PF1": {ID: "PF1", Name: "Walk", FeatureID: strPtr("F1"), Tags: []string{"gait"}},
		},
		tfs: map[string]*entity.TechnicalFunction{
			"TF1": {ID: "TF1", Name: "Step", ProgressPercent: 100, ProductFunctionID: strPtr("PF1")},
			"TF2": {ID: "TF2", Name: "Balance", ProgressPercent: 50, ProductFunctionID: strPtr("PF1")},
			"TF3": {ID: "TF3", Name: "Detect", ProgressPercent: 0},
		},
		useCases: map[string]*entity.UseCase{
			"UC1": {ID: "UC1", Name: "Pick box"},
			"UC2": {ID: "UC2", Name: "Idle"},
		},
		links: map[string]map[string]bool{
			"UC1": {"TF1": true, "TF2": true, "TF3": true},
			"UC2": {},
		},
	}
	return s
}

func (s *store) sortedKeys(m map[string]*entity.TechnicalFunction) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *store) view(tf *entity.TechnicalFunction) *entity.TechnicalFunction {
	out := *tf
	if tf.ProductFunctionID != nil {
		if pf, ok := s.pfs[*tf.ProductFunctionID]; ok {
			cp := *pf
			if pf.FeatureID != nil {
				cp.Feature = s.features[*pf.FeatureID]
			}
			out.ProductFunction = &cp
		}
	}
	return &out
}

type statsRepo struct{ *store }

func (r statsRepo) CountUseCases(context.Context) (int, error) {
	return len(r.useCases), r.statsErr
}
func (r statsRepo) CountProductFunctions(context.Context) (int, error) {
	return len(r.pfs), r.statsErr
}
func (r statsRepo) CountTechnicalFunctions(context.Context) (int, error) {
	return len(r.tfs), r.statsErr
}
func (r statsRepo) CountCompletedTechnicalFunctions(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, tf := range r.tfs {
		if tf.ProgressPercent >= 100 {
			n++
		}
	}
	return n, r.statsErr
}
func (r statsRepo) AverageProgress(context.Context) (decimal.Decimal, error) {
	return decimal.NewFromInt(50), r.statsErr
}

type domainRepo struct{ *store }

func (r domainRepo) List(context.Context) ([]*entity.Domain, error) {
	return []*entity.Domain{{ID: "D01", Name: "Core"}}, nil
}

type featureRepo struct{ *store }

func (r featureRepo) ListWithDomain(context.Context) ([]*entity.Feature, error) {
	return []*entity.Feature{r.features["F1"]}, nil
}

func (r featureRepo) GetByID(_ context.Context, id string) (*entity.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.features[id], nil
}

type pfRepo struct{ *store }

func (r pfRepo) ListOptions(context.Context) ([]*entity.ProductFunction, error) {
	return []*entity.ProductFunction{{ID: "PF1", Name: "Walk"}}, nil
}

func (r pfRepo) ListWithTechnicalFunctions(context.Context) ([]*entity.ProductFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pf := *r.pfs["PF1"]
	pf.Feature = r.features["F1"]
	pf.TechnicalFunctions = nil
	for _, id := range r.sortedKeys(r.tfs) {
		tf := r.tfs[id]
		if tf.ProductFunctionID != nil && *tf.ProductFunctionID == "PF1" {
			cp := *tf
			pf.TechnicalFunctions = append(pf.TechnicalFunctions, &cp)
		}
	}
	return []*entity.ProductFunction{&pf}, nil
}

func (r pfRepo) GetByID(_ context.Context, id string) (*entity.ProductFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pf, ok := r.pfs[id]
	if !ok {
		return nil, nil
	}
	cp := *pf
	if pf.FeatureID != nil {
		cp.Feature = r.features[*pf.FeatureID]
	}
	return &cp, nil
}

func (r pfRepo) Update(_ context.Context, pf *entity.ProductFunction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.pfs[pf.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.FeatureID, stored.Tags = pf.FeatureID, pf.Tags
	return nil
}

type tfRepo struct{ *store }

func (r tfRepo) GetByID(_ context.Context, id string) (*entity.TechnicalFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tf, ok := r.tfs[id]
	if !ok {
		return nil, nil
	}
	return r.view(tf), nil
}

func (r tfRepo) UpdateProgress(_ context.Context, id string, percent int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tf, ok := r.tfs[id]
	if !ok {
		return domain.ErrNotFound
	}
	tf.ProgressPercent = percent
	return nil
}

func (r tfRepo) UpdateParent(_ context.Context, id string, pfID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tf, ok := r.tfs[id]
	if !ok {
		return domain.ErrNotFound
	}
	tf.ProductFunctionID = pfID
	return nil
}

func (r tfRepo) ListAvailableForUseCase(_ context.Context, ucID string) ([]*entity.TechnicalFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.TechnicalFunction{}
	for _, id := range r.sortedKeys(r.tfs) {
		if !r.links[ucID][id] {
			out = append(out, r.view(r.tfs[id]))
		}
	}
	return out, nil
}

type useCaseRepo struct{ *store }

func (r useCaseRepo) ids() []string {
	ids := make([]string, 0, len(r.useCases))
	for id := range r.useCases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r useCaseRepo) ListWithProgressValues(context.Context) ([]repository.UseCaseProgressRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []repository.UseCaseProgressRow{}
	for _, id := range r.ids() {
		row := repository.UseCaseProgressRow{UseCase: *r.useCases[id]}
		for _, tfID := range r.sortedKeys(r.tfs) {
			if r.links[id][tfID] {
				row.ProgressValues = append(row.ProgressValues, r.tfs[tfID].ProgressPercent)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r useCaseRepo) ListNavigation(context.Context) ([]entity.UseCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.UseCase{}
	for _, id := range r.ids() {
		out = append(out, entity.UseCase{ID: id, Name: r.useCases[id].Name})
	}
	return out, nil
}

func (r useCaseRepo) GetByID(_ context.Context, id string) (*entity.UseCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	uc, ok := r.useCases[id]
	if !ok {
		return nil, nil
	}
	cp := *uc
	return &cp, nil
}

func (r useCaseRepo) ListLinkedTechnicalFunctions(_ context.Context, ucID string) ([]*entity.TechnicalFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.TechnicalFunction{}
	for _, id := range r.sortedKeys(r.tfs) {
		if r.links[ucID][id] {
			out = append(out, r.view(r.tfs[id]))
		}
	}
	return out, nil
}

func (r useCaseRepo) IsLinked(_ context.Context, ucID, tfID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.links[ucID][tfID], nil
}

func (r useCaseRepo) Link(_ context.Context, ucID, tfID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.links[ucID] == nil {
		return domain.ErrInvalidReference
	}
	r.links[ucID][tfID] = true
	return nil
}

func (r useCaseRepo) Unlink(_ context.Context, ucID, tfID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.links[ucID][tfID] {
		return domain.ErrNotLinked
	}
	delete(r.links[ucID], tfID)
	return nil
}

type txRunner struct{ *store }

func (t txRunner) RunLinks(_ context.Context, fn func(repository.UseCaseRepository, repository.TechnicalFunctionRepository) error) error {
	return fn(useCaseRepo{t.store}, tfRepo{t.store})
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

var errDBDown = errors.New("dial tcp: connection refused")
