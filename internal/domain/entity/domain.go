package entity

// Domain agrupa Features para navegación y filtrado (no participa en el cálculo de progreso).
type Domain struct {
	ID   string
	Name string
}
