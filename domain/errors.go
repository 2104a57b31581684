package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameter = errors.New("parámetro inválido")
	ErrSamplingFailure  = errors.New("muestreo inválido")
	ErrNonFiniteOutcome = errors.New("resultado no finito")

	ErrInvalidRequest      = errors.New("solicitud inválida")
	ErrInvalidDistribution = errors.New("distribución inválida")
)

// InvalidParameterError names the field that broke a precondition.
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("parámetro inválido %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// SamplingError reports a distribution that produced a non-finite value.
type SamplingError struct {
	Field string
	Value float64
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("la distribución de %s produjo un valor no numérico (%g)", e.Field, e.Value)
}

func (e *SamplingError) Unwrap() error {
	return ErrSamplingFailure
}

// OutcomeError reports a scenario that evaluated to NaN or an infinity.
type OutcomeError struct {
	Strategy Strategy
	Value    float64
}

func (e *OutcomeError) Error() string {
	return fmt.Sprintf("el escenario %s produjo un resultado no finito (%g)", e.Strategy, e.Value)
}

func (e *OutcomeError) Unwrap() error {
	return ErrNonFiniteOutcome
}

// CheckOutcome returns an *OutcomeError for the first non-finite value.
func CheckOutcome(strategy Strategy, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &OutcomeError{Strategy: strategy, Value: v}
		}
	}
	return nil
}
