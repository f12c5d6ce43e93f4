package entity

// TechnicalFunction es la unidad mínima de trabajo y la única con progreso editable.
// ProgressPercent siempre está en [0, 100]; la validación ocurre antes de persistir.
type TechnicalFunction struct {
	ID                string
	Name              string
	Description       *string
	State             *string
	ProgressPercent   int
	ProductFunctionID *string

	ProductFunction *ProductFunction // resumen (id, nombre y opcionalmente feature)
}
