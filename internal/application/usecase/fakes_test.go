package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progress-api/internal/application/usecase"
	"github.com/jhoicas/progress-api/internal/domain"
	"github.com/jhoicas/progress-api/internal/domain/entity"
	"github.com/jhoicas/progress-api/internal/domain/repository"
)

// memStore base en memoria compartida por los repos falsos.
type memStore struct {
	mu       sync.Mutex
	domains  map[string]*entity.Domain
	features map[string]*entity.Feature
	pfs      map[string]*entity.ProductFunction
	tfs      map[string]*entity.TechnicalFunction
	useCases map[string]*entity.UseCase
	links    map[string]map[string]bool
	calls    map[string]int
	failWith error
}

func newStore() *memStore {
	return &memStore{
		domains:  map[string]*entity.Domain{},
		features: map[string]*entity.Feature{},
		pfs:      map[string]*entity.ProductFunction{},
		tfs:      map[string]*entity.TechnicalFunction{},
		useCases: map[string]*entity.UseCase{},
		links:    map[string]map[string]bool{},
		calls:    map[string]int{},
	}
}

func strPtr(s string) *string { return &s }

func (s *memStore) addDomain(id, name string) {
	s.domains[id] = &entity.Domain{ID: id, Name: name}
}

func (s *memStore) addFeature(id, name, domainID string) {
	s.features[id] = &entity.Feature{ID: id, Name: name, DomainID: strPtr(domainID)}
}

func (s *memStore) addPF(id, name, featureID string, tags ...string) {
	pf := &entity.ProductFunction{ID: id, Name: name, Tags: tags}
	if featureID != "" {
		pf.FeatureID = strPtr(featureID)
	}
	s.pfs[id] = pf
}

func (s *memStore) addTF(id, name, pfID string, percent int) {
	tf := &entity.TechnicalFunction{ID: id, Name: name, ProgressPercent: percent}
	if pfID != "" {
		tf.ProductFunctionID = strPtr(pfID)
	}
	s.tfs[id] = tf
}

func (s *memStore) addUseCase(id, name string, tfIDs ...string) {
	s.useCases[id] = &entity.UseCase{ID: id, Name: name}
	s.links[id] = map[string]bool{}
	for _, tfID := range tfIDs {
		s.links[id][tfID] = true
	}
}

func (s *memStore) count(op string) error {
	s.calls[op]++
	return s.failWith
}

func (s *memStore) callCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *memStore) feature(id *string) *entity.Feature {
	if id == nil {
		return nil
	}
	f, ok := s.features[*id]
	if !ok {
		return nil
	}
	out := *f
	if f.DomainID != nil {
		out.Domain = s.domains[*f.DomainID]
	}
	return &out
}

func (s *memStore) pfSummary(id *string) *entity.ProductFunction {
	if id == nil {
		return nil
	}
	pf, ok := s.pfs[*id]
	if !ok {
		return nil
	}
	out := *pf
	out.Feature = s.feature(pf.FeatureID)
	out.TechnicalFunctions = nil
	return &out
}

func (s *memStore) tfView(tf *entity.TechnicalFunction) *entity.TechnicalFunction {
	out := *tf
	out.ProductFunction = s.pfSummary(tf.ProductFunctionID)
	return &out
}

func (s *memStore) sortedTFIDs() []string {
	ids := make([]string, 0, len(s.tfs))
	for id := range s.tfs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ── repos ────────────────────────────────────────────────────────────────────

type statsRepo struct{ *memStore }

var _ repository.StatsRepository = statsRepo{}

func (r statsRepo) CountUseCases(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.count("CountUseCases"); err != nil {
		return 0, err
	}
	return len(r.useCases), nil
}

func (r statsRepo) CountProductFunctions(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.count("CountProductFunctions"); err != nil {
		return 0, err
	}
	return len(r.pfs), nil
}

func (r statsRepo) CountTechnicalFunctions(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.count("CountTechnicalFunctions"); err != nil {
		return 0, err
	}
	return len(r.tfs), nil
}

func (r statsRepo) CountCompletedTechnicalFunctions(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.count("CountCompletedTechnicalFunctions"); err != nil {
		return 0, err
	}
	n := 0
	for _, tf := range r.tfs {
		if tf.ProgressPercent >= 100 {
			n++
		}
	}
	return n, nil
}

func (r statsRepo) AverageProgress(context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.count("AverageProgress"); err != nil {
		return decimal.Zero, err
	}
	if len(r.tfs) == 0 {
		return decimal.Zero, nil
	}
	var sum int64
	for _, tf := range r.tfs {
		sum += int64(tf.ProgressPercent)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(r.tfs)))), nil
}

type featureRepo struct{ *memStore }

var _ repository.FeatureRepository = featureRepo{}

func (r featureRepo) ListWithDomain(context.Context) ([]*entity.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Feature
	for id := range r.features {
		out = append(out, r.feature(strPtr(id)))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DomainName() != out[j].DomainName() {
			return out[i].DomainName() < out[j].DomainName()
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r featureRepo) GetByID(_ context.Context, id string) (*entity.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feature(&id), nil
}

type domainRepo struct{ *memStore }

func (r domainRepo) List(context.Context) ([]*entity.Domain, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Domain
	for _, d := range r.domains {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type pfRepo struct{ *memStore }

var _ repository.ProductFunctionRepository = pfRepo{}

func (r pfRepo) ListOptions(context.Context) ([]*entity.ProductFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ProductFunction
	for _, pf := range r.pfs {
		out = append(out, &entity.ProductFunction{ID: pf.ID, Name: pf.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r pfRepo) ListWithTechnicalFunctions(context.Context) ([]*entity.ProductFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.count("ListWithTechnicalFunctions"); err != nil {
		return nil, err
	}
	var out []*entity.ProductFunction
	for id := range r.pfs {
		pf := r.pfSummary(strPtr(id))
		pf.TechnicalFunctions = []*entity.TechnicalFunction{}
		for _, tfID := range r.sortedTFIDs() {
			tf := r.tfs[tfID]
			if tf.ProductFunctionID != nil && *tf.ProductFunctionID == id {
				cp := *tf
				pf.TechnicalFunctions = append(pf.TechnicalFunctions, &cp)
			}
		}
		out = append(out, pf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r pfRepo) GetByID(_ context.Context, id string) (*entity.ProductFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pfSummary(&id), nil
}

func (r pfRepo) Update(_ context.Context, pf *entity.ProductFunction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.pfs[pf.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.FeatureID = pf.FeatureID
	stored.Tags = append([]string(nil), pf.Tags...)
	return nil
}

type tfRepo struct{ *memStore }

var _ repository.TechnicalFunctionRepository = tfRepo{}

func (r tfRepo) GetByID(_ context.Context, id string) (*entity.TechnicalFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tf, ok := r.tfs[id]
	if !ok {
		return nil, nil
	}
	return r.tfView(tf), nil
}

func (r tfRepo) UpdateProgress(_ context.Context, id string, percent int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["UpdateProgress"]++
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

func (r tfRepo) ListAvailableForUseCase(_ context.Context, useCaseID string) ([]*entity.TechnicalFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.TechnicalFunction{}
	for _, id := range r.sortedTFIDs() {
		if !r.links[useCaseID][id] {
			out = append(out, r.tfView(r.tfs[id]))
		}
	}
	return out, nil
}

type useCaseRepo struct{ *memStore }

var _ repository.UseCaseRepository = useCaseRepo{}

func (r useCaseRepo) sortedUseCaseIDs() []string {
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
	if err := r.count("ListWithProgressValues"); err != nil {
		return nil, err
	}
	out := []repository.UseCaseProgressRow{}
	for _, id := range r.sortedUseCaseIDs() {
		row := repository.UseCaseProgressRow{UseCase: *r.useCases[id], ProgressValues: []int{}}
		for _, tfID := range r.sortedTFIDs() {
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
	if err := r.count("ListNavigation"); err != nil {
		return nil, err
	}
	out := []entity.UseCase{}
	for _, id := range r.sortedUseCaseIDs() {
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

func (r useCaseRepo) ListLinkedTechnicalFunctions(_ context.Context, useCaseID string) ([]*entity.TechnicalFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.TechnicalFunction{}
	for _, id := range r.sortedTFIDs() {
		if r.links[useCaseID][id] {
			out = append(out, r.tfView(r.tfs[id]))
		}
	}
	return out, nil
}

func (r useCaseRepo) IsLinked(_ context.Context, useCaseID, tfID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.links[useCaseID][tfID], nil
}

func (r useCaseRepo) Link(_ context.Context, useCaseID, tfID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.links[useCaseID] == nil {
		return domain.ErrInvalidReference
	}
	if r.links[useCaseID][tfID] {
		return domain.ErrAlreadyLinked
	}
	r.links[useCaseID][tfID] = true
	return nil
}

func (r useCaseRepo) Unlink(_ context.Context, useCaseID, tfID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.links[useCaseID][tfID] {
		return domain.ErrNotLinked
	}
	delete(r.links[useCaseID], tfID)
	return nil
}

// txRunner ejecuta fn con los mismos repos (sin transacción real).
type txRunner struct{ *memStore }

var _ usecase.LinkTxRunner = txRunner{}

func (t txRunner) RunLinks(_ context.Context, fn func(repository.UseCaseRepository, repository.TechnicalFunctionRepository) error) error {
	return fn(useCaseRepo{t.memStore}, tfRepo{t.memStore})
}
