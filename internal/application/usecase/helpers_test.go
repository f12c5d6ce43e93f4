package usecase_test

import (
	"time"

	"github.com/jhoicas/progress-api/internal/application/usecase"
	"github.com/jhoicas/progress-api/internal/infrastructure/cache"
	"github.com/jhoicas/progress-api/pkg/logger"
)

// fixture: dos dominios, tres PFs (PF3 vacío), cuatro TFs (TF4 sin PF) y cuatro casos de uso.
func fixture() *memStore {
	s := newStore()
	s.addDomain("D01", "Core")
	s.addDomain("D02", "Body")
	s.addFeature("F1", "Motion", "D01")
	s.addFeature("F2", "Vision", "D02")
	s.addPF("PF1", "Walk", "F1", "gait")
	s.addPF("PF2", "See", "F2")
	s.addPF("PF3", "Empty", "")
	s.addTF("TF1", "Step", "PF1", 100)
	s.addTF("TF2", "Balance", "PF1", 50)
	s.addTF("TF3", "Detect", "PF2", 0)
	s.addTF("TF4", "Orphan", "", 100)
	s.addUseCase("UC1", "Pick box", "TF1", "TF2", "TF3")
	s.addUseCase("UC2", "Idle")
	s.addUseCase("UC3", "Done", "TF1")
	s.addUseCase("UC4", "Mixed", "TF4", "TF3")
	return s
}

func memoryReadCache() *usecase.ReadCache {
	return usecase.NewReadCache(cache.NewMemoryCache(), usecase.CacheTTL{
		Stats:      30 * time.Second,
		List:       time.Minute,
		Navigation: 5 * time.Minute,
	}, logger.Nop())
}

func newUseCases(s *memStore, rc *usecase.ReadCache) *usecase.UseCasesUseCase {
	return usecase.NewUseCasesUseCase(useCaseRepo{s}, tfRepo{s}, txRunner{s}, rc)
}
