package dto

// DomainDTO dominio para navegación.
type DomainDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FeatureDTO feature con su dominio (si tiene).
type FeatureDTO struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Domain *DomainDTO `json:"domain"`
}

// ProductFunctionOptionDTO id y nombre de un PF (selectores y referencias).
type ProductFunctionOptionDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
