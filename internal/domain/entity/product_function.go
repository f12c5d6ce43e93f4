package entity

// ProductFunction agrupa TechnicalFunctions (uno a muchos).
// Su progreso siempre se deriva de sus TFs; nunca se persiste.
type ProductFunction struct {
	ID            string
	Name          string
	NameCn        *string
	DescriptionEn *string
	DescriptionCn *string
	FeatureID     *string
	Tags          []string

	Feature            *Feature
	TechnicalFunctions []*TechnicalFunction
}

// ProgressValues devuelve el progress_percent de cada TF en el orden cargado.
func (pf *ProductFunction) ProgressValues() []int {
	values := make([]int, 0, len(pf.TechnicalFunctions))
	for _, tf := range pf.TechnicalFunctions {
		values = append(values, tf.ProgressPercent)
	}
	return values
}
