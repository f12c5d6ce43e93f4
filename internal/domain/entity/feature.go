package entity

// Feature agrupa ProductFunctions dentro de un Domain.
type Feature struct {
	ID       string
	Name     string
	DomainID *string
	Domain   *Domain // cargado solo en consultas que lo requieren
}

// DomainName devuelve el nombre del dominio o "" si no está cargado.
func (f *Feature) DomainName() string {
	if f == nil || f.Domain == nil {
		return ""
	}
	return f.Domain.Name
}
