package entity

// UseCase escenario vinculado a TechnicalFunctions vía la tabla use_case_technical_functions.
// La vinculación es independiente de la agrupación por ProductFunction.
type UseCase struct {
	ID                   string
	Name                 string
	Description          *string
	HmxInput             *string
	HmxOutput            *string
	CustomerPdFeature    *string
	TechnicalFunctionRaw *string
}
