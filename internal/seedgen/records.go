// Package seedgen genera el SQL de carga inicial a partir de los exports del catálogo
// (JSON de dominios, features, pool de PFs y TFs más el CSV de casos de uso).
package seedgen

// DomainRecord fila de domains.json.
type DomainRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FeatureRecord fila de features.json.
type FeatureRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	DomainID *string `json:"domainId"`
}

// ProductFunctionRecord entrada de pf_pool.json (objeto indexado por id de PF).
type ProductFunctionRecord struct {
	Name          string   `json:"name"`
	NameCn        *string  `json:"name_cn"`
	DescriptionEn *string  `json:"description_en"`
	Description   *string  `json:"description"`
	DescriptionCn *string  `json:"description_cn"`
	FeatureID     *string  `json:"feature_id"`
	Tags          []string `json:"tags"`
	TFIDs         []string `json:"tf_ids"`
}

// TechnicalFunctionRecord fila de tech_functions.json.
type TechnicalFunctionRecord struct {
	ReqID       string  `json:"tech_function_req_id"`
	Name        *string `json:"tech_function"`
	Description *string `json:"description"`
	State       *string `json:"state"`
}

// UseCaseRecord fila de "Use Case.csv".
type UseCaseRecord struct {
	UID               string
	Name              string
	Description       string
	HmxInput          string
	HmxOutput         string
	CustomerPdFeature string
	TechnicalFunction string
}

// Columnas esperadas del CSV de casos de uso.
const (
	ColUID               = "UID"
	ColName              = "Use Case Name"
	ColDescription       = "Use Case Description"
	ColHmxInput          = "HMX Input"
	ColHmxOutput         = "HMX Output"
	ColCustomerPdFeature = "Customer PD Feature"
	ColTechnicalFunction = "Technical Function"
)

// Inputs todo lo leído del disco.
type Inputs struct {
	Domains            []DomainRecord
	Features           []FeatureRecord
	ProductFunctions   map[string]ProductFunctionRecord
	TechnicalFunctions []TechnicalFunctionRecord
	UseCases           []UseCaseRecord
}
