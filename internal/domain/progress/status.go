package progress

import (
	"fmt"
	"strings"
)

// Status estado de avance derivado de un porcentaje agregado.
type Status string

const (
	StatusAll        Status = "ALL" // solo válido como filtro
	StatusCompleted  Status = "COMPLETED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusNotStarted Status = "NOT_STARTED"
)

// ParseStatus interpreta el filtro de estado (sin distinguir mayúsculas). Vacío = ALL.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ALL":
		return StatusAll, nil
	case "COMPLETED":
		return StatusCompleted, nil
	case "IN_PROGRESS":
		return StatusInProgress, nil
	case "NOT_STARTED":
		return StatusNotStarted, nil
	default:
		return StatusAll, fmt.Errorf("estado inválido: %q", s)
	}
}

// Classify clasifica un porcentaje: >= 100 completo, <= 0 sin iniciar, resto en progreso.
func Classify(percent int) Status {
	switch {
	case percent >= 100:
		return StatusCompleted
	case percent <= 0:
		return StatusNotStarted
	default:
		return StatusInProgress
	}
}

// Matches informa si percent pasa el filtro s.
func (s Status) Matches(percent int) bool {
	if s == StatusAll || s == "" {
		return true
	}
	return Classify(percent) == s
}
