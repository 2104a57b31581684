package domain

type Strategy string

const (
	StrategyRent Strategy = "arriendo"
	StrategyBuy  Strategy = "compra"
)

// RentBreakdown holds the intermediate values of the rent-and-invest strategy.
type RentBreakdown struct {
	DownPaymentFutureValue float64 `json:"vf_pie"`
	MonthlyRent            float64 `json:"arriendo_mensual"`
	MonthlyMortgage        float64 `json:"dividendo_mensual"`
	MonthlyDelta           float64 `json:"delta_mensual"`
	DeltaFutureValue       float64 `json:"vf_delta_dividendo"`
	Capital                float64 `json:"capital_relativo"`
}

// BuyBreakdown holds the intermediate values of the buy strategy.
type BuyBreakdown struct {
	PropertyFutureValue   float64 `json:"vf_propiedad"`
	EffectiveTaxRate      float64 `json:"tasa_efectiva_contribuciones"`
	QuarterlyTax          float64 `json:"contribucion_trimestral"`
	TaxesFutureValue      float64 `json:"vf_contribuciones"`
	RemodelingFutureValue float64 `json:"vf_remodelaciones"`
	Capital               float64 `json:"capital_relativo"`
}

type ScenarioEvaluation struct {
	Parameters Parameters    `json:"parametros"`
	Rent       RentBreakdown `json:"arriendo"`
	Buy        BuyBreakdown  `json:"compra"`
	Winner     Strategy      `json:"conviene"`
	Difference float64       `json:"diferencia"` // compra - arriendo
}
