package usecase

import (
	"strings"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/domain/progress"
)

// Tamaños de la paginación "cargar más" y del salto rápido.
const (
	UseCasePageSize   = 30
	StructurePageSize = 20
	JumpLimit         = 8
)

// loadMore devuelve items[0 : page*size] y sus metadatos. page < 1 se trata como 1.
// Una página más allá del final devuelve todo sin multiplicar (page*size desbordaría).
func loadMore[T any](items []T, page, size int) ([]T, dto.LoadMoreMeta) {
	if page < 1 {
		page = 1
	}
	end := len(items)
	if page <= len(items)/size {
		end = page * size
	}
	return items[:end], dto.LoadMoreMeta{
		Page:     page,
		PageSize: size,
		Shown:    end,
		Total:    len(items),
		HasMore:  end < len(items),
	}
}

// matchesQuery búsqueda por subcadena sin distinguir mayúsculas. q vacío coincide siempre;
// q no se recorta, así que "  " solo coincide con textos que contienen esos espacios.
func matchesQuery(q string, fields ...string) bool {
	q = strings.ToLower(q)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toProgressDTO(s progress.Summary) dto.ProgressDTO {
	return dto.ProgressDTO{
		Percent: s.Percent,
		Done:    s.Done,
		Total:   s.Total,
		Status:  string(s.Status()),
	}
}
