package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Claves de los parámetros. Se usan como claves JSON/YAML, columnas de la
// tabla de sensibilidad y nombres de distribución.
const (
	KeyYears               = "anios"
	KeyInvestmentRate      = "tasa_rentabilidad"
	KeyPropertyPrice       = "precio_propiedad"
	KeyDownPaymentFraction = "porcentaje_pie"
	KeyMortgageRate        = "tasa_hipotecaria"
	KeyRentFraction        = "porcentaje_arriendo"
	KeyAppreciationRate    = "tasa_plusvalia"
	KeyRemodelingFraction  = "porcentaje_remodelaciones"
	KeyTaxExemptThreshold  = "avaluo_exento"
	KeyTaxBracketThreshold = "avaluo_cambio_tramo"
	KeyTaxRateBand1        = "tasa_contribuciones_tramo1"
	KeyTaxRateBand2        = "tasa_contribuciones_tramo2"
)

// Cotas superiores de los parámetros. Por encima de ellas las fórmulas de
// interés compuesto desbordan o dejan de tener sentido económico.
const (
	MaxYears         = 100 // horizonte en años
	MaxRate          = 1.0 // tasas anuales, 100%
	MaxFraction      = 1.0 // porcentajes como fracción del precio
	MaxPropertyPrice = 1e9 // precio y avalúos, en UF
)

var parameterNames = []string{
	KeyYears,
	KeyInvestmentRate,
	KeyPropertyPrice,
	KeyDownPaymentFraction,
	KeyMortgageRate,
	KeyRentFraction,
	KeyAppreciationRate,
	KeyRemodelingFraction,
	KeyTaxExemptThreshold,
	KeyTaxBracketThreshold,
	KeyTaxRateBand1,
	KeyTaxRateBand2,
}

// Parameters is the immutable input of one simulation. Rates are annual
// fractions unless the name says otherwise; RentFraction is monthly.
type Parameters struct {
	Years               int     `json:"anios" yaml:"anios"`
	InvestmentRate      float64 `json:"tasa_rentabilidad" yaml:"tasa_rentabilidad"`
	PropertyPrice       float64 `json:"precio_propiedad" yaml:"precio_propiedad"`
	DownPaymentFraction float64 `json:"porcentaje_pie" yaml:"porcentaje_pie"`
	MortgageRate        float64 `json:"tasa_hipotecaria" yaml:"tasa_hipotecaria"`
	RentFraction        float64 `json:"porcentaje_arriendo" yaml:"porcentaje_arriendo"`
	AppreciationRate    float64 `json:"tasa_plusvalia" yaml:"tasa_plusvalia"`
	RemodelingFraction  float64 `json:"porcentaje_remodelaciones" yaml:"porcentaje_remodelaciones"`
	TaxExemptThreshold  float64 `json:"avaluo_exento" yaml:"avaluo_exento"`
	TaxBracketThreshold float64 `json:"avaluo_cambio_tramo" yaml:"avaluo_cambio_tramo"`
	TaxRateBand1        float64 `json:"tasa_contribuciones_tramo1" yaml:"tasa_contribuciones_tramo1"`
	TaxRateBand2        float64 `json:"tasa_contribuciones_tramo2" yaml:"tasa_contribuciones_tramo2"`
}

// DefaultParameters returns the reference scenario.
func DefaultParameters() Parameters {
	return Parameters{
		Years:               25,
		InvestmentRate:      0.05,
		PropertyPrice:       5000,
		DownPaymentFraction: 0.20,
		MortgageRate:        0.0340,
		RentFraction:        0.0038,
		AppreciationRate:    0.0120,
		RemodelingFraction:  0.0050,
		TaxExemptThreshold:  1256,
		TaxBracketThreshold: 4424,
		TaxRateBand1:        0.0093,
		TaxRateBand2:        0.0109,
	}
}

// ParameterNames returns the recognized parameter keys in declaration order.
func ParameterNames() []string {
	names := make([]string, len(parameterNames))
	copy(names, parameterNames)
	return names
}

// IsParameterName reports whether key names a parameter.
func IsParameterName(key string) bool {
	for _, name := range parameterNames {
		if name == key {
			return true
		}
	}
	return false
}

// UnknownParameterNames returns the sorted keys of m that name no parameter.
func UnknownParameterNames[T any](m map[string]T) []string {
	var unknown []string
	for key := range m {
		if !IsParameterName(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// NewParameters merges overrides onto the defaults and validates the result.
// Unknown keys are ignored; the horizon is rounded to the nearest whole year.
func NewParameters(overrides map[string]float64) (Parameters, error) {
	p := DefaultParameters()
	for _, name := range parameterNames {
		value, ok := overrides[name]
		if !ok {
			continue
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Parameters{}, &InvalidParameterError{Field: name, Value: value, Reason: "valor no finito"}
		}
		// Acotar antes de convertir a int
		if name == KeyYears && (value < 0.5 || value >= MaxYears+0.5) {
			return Parameters{}, yearsOutOfRange(value)
		}
		p.set(name, value)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

func yearsOutOfRange(value float64) error {
	return &InvalidParameterError{
		Field:  KeyYears,
		Value:  value,
		Reason: fmt.Sprintf("el horizonte debe estar entre 1 y %d años", MaxYears),
	}
}

func (p *Parameters) set(key string, value float64) {
	switch key {
	case KeyYears:
		p.Years = int(math.Round(value))
	case KeyInvestmentRate:
		p.InvestmentRate = value
	case KeyPropertyPrice:
		p.PropertyPrice = value
	case KeyDownPaymentFraction:
		p.DownPaymentFraction = value
	case KeyMortgageRate:
		p.MortgageRate = value
	case KeyRentFraction:
		p.RentFraction = value
	case KeyAppreciationRate:
		p.AppreciationRate = value
	case KeyRemodelingFraction:
		p.RemodelingFraction = value
	case KeyTaxExemptThreshold:
		p.TaxExemptThreshold = value
	case KeyTaxBracketThreshold:
		p.TaxBracketThreshold = value
	case KeyTaxRateBand1:
		p.TaxRateBand1 = value
	case KeyTaxRateBand2:
		p.TaxRateBand2 = value
	}
}

// Row returns the parameter values in ParameterNames order.
func (p Parameters) Row() []float64 {
	return []float64{
		float64(p.Years),
		p.InvestmentRate,
		p.PropertyPrice,
		p.DownPaymentFraction,
		p.MortgageRate,
		p.RentFraction,
		p.AppreciationRate,
		p.RemodelingFraction,
		p.TaxExemptThreshold,
		p.TaxBracketThreshold,
		p.TaxRateBand1,
		p.TaxRateBand2,
	}
}

// Values returns the parameters keyed by name.
func (p Parameters) Values() map[string]float64 {
	row := p.Row()
	values := make(map[string]float64, len(row))
	for i, name := range parameterNames {
		values[name] = row[i]
	}
	return values
}

// Validate checks the preconditions the scenario formulas rely on.
func (p Parameters) Validate() error {
	row := p.Row()
	for i, name := range parameterNames {
		if math.IsNaN(row[i]) || math.IsInf(row[i], 0) {
			return &InvalidParameterError{Field: name, Value: row[i], Reason: "valor no finito"}
		}
	}
	if p.Years < 1 || p.Years > MaxYears {
		return yearsOutOfRange(float64(p.Years))
	}
	if p.PropertyPrice <= 0 || p.PropertyPrice > MaxPropertyPrice {
		return &InvalidParameterError{
			Field:  KeyPropertyPrice,
			Value:  p.PropertyPrice,
			Reason: fmt.Sprintf("el precio debe ser positivo y no mayor que %g", MaxPropertyPrice),
		}
	}
	for i, name := range parameterNames {
		v := row[i]
		switch {
		case strings.HasPrefix(name, "tasa_") && (v <= -1 || v > MaxRate):
			return &InvalidParameterError{Field: name, Value: v, Reason: fmt.Sprintf("la tasa debe ser mayor que -1 y no mayor que %g", MaxRate)}
		case strings.HasPrefix(name, "porcentaje_") && (v < 0 || v > MaxFraction):
			return &InvalidParameterError{Field: name, Value: v, Reason: fmt.Sprintf("el porcentaje debe estar entre 0 y %g", MaxFraction)}
		case strings.HasPrefix(name, "avaluo_") && (v < 0 || v > MaxPropertyPrice):
			return &InvalidParameterError{Field: name, Value: v, Reason: fmt.Sprintf("el avalúo debe estar entre 0 y %g", MaxPropertyPrice)}
		}
	}
	return nil
}
