// Package progress contiene el cálculo de progreso agregado (servicio de dominio puro).
//
// El progreso de un ProductFunction o de un UseCase nunca se almacena: se recalcula en cada
// lectura a partir del progress_percent de sus TechnicalFunctions.
package progress

import "github.com/shopspring/decimal"

var half = decimal.NewFromFloat(0.5)

// AveragePercent promedio redondeado de los porcentajes individuales.
// Grupo vacío = 0. Un .5 exacto redondea hacia arriba: AveragePercent([1, 2]) == 2.
// No valida el rango; eso es responsabilidad de la frontera de escritura.
func AveragePercent(values []int) int {
	if len(values) == 0 {
		return 0
	}
	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return roundHalfUp(decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(values)))))
}

// CountCompleted cuenta los valores >= 100 (un valor mayor a 100 también cuenta como completo).
func CountCompleted(values []int) int {
	n := 0
	for _, v := range values {
		if v >= 100 {
			n++
		}
	}
	return n
}

// RatioPercent porcentaje completados/total: 0 si total <= 0, si no round(100 * done / total).
//
// Deprecated: los listados usan AveragePercent (promedio de porcentajes). RatioPercent solo
// alimenta el indicador global del dashboard; no son equivalentes.
func RatioPercent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(decimal.NewFromInt(int64(done) * 100).Div(decimal.NewFromInt(int64(total))))
}

// Summary resumen de progreso de un grupo de TFs.
type Summary struct {
	Percent int
	Done    int
	Total   int
}

// Summarize calcula promedio, completados y total de un grupo.
func Summarize(values []int) Summary {
	return Summary{
		Percent: AveragePercent(values),
		Done:    CountCompleted(values),
		Total:   len(values),
	}
}

// Status clasificación del grupo según su porcentaje agregado.
func (s Summary) Status() Status {
	return Classify(s.Percent)
}

// roundHalfUp: floor(x + 0.5).
func roundHalfUp(d decimal.Decimal) int {
	return int(d.Add(half).Floor().IntPart())
}
