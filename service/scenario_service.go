package service

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"arriendo-compra/domain"
	"arriendo-compra/repository"
	"arriendo-compra/scenario"
)

const scenarioCachePrefix = "escenario:"

// roundTo2Decimals redondea un monto a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

type ScenarioService struct {
	cache repository.CacheRepository

	rentBreakdown func(domain.Parameters) domain.RentBreakdown
	buyBreakdown  func(domain.Parameters) domain.BuyBreakdown
}

// NewScenarioService creates a ScenarioService that memoizes evaluations in cache.
func NewScenarioService(cache repository.CacheRepository) *ScenarioService {
	return &ScenarioService{
		cache:         cache,
		rentBreakdown: scenario.RentBreakdown,
		buyBreakdown:  scenario.BuyBreakdown,
	}
}

// Evaluate compares both strategies for one parameter set built from overrides.
func (s *ScenarioService) Evaluate(
	ctx context.Context,
	overrides map[string]float64,
) (domain.ScenarioEvaluation, error) {

	// Validar entrada
	if unknown := domain.UnknownParameterNames(overrides); len(unknown) > 0 {
		return domain.ScenarioEvaluation{}, fmt.Errorf("%w: parámetros desconocidos %v", domain.ErrInvalidRequest, unknown)
	}
	if years, ok := overrides[domain.KeyYears]; ok && years != math.Trunc(years) {
		return domain.ScenarioEvaluation{}, &domain.InvalidParameterError{
			Field:  domain.KeyYears,
			Value:  years,
			Reason: "el horizonte debe ser un número entero de años",
		}
	}

	params, err := domain.NewParameters(overrides)
	if err != nil {
		return domain.ScenarioEvaluation{}, err
	}

	key := cacheKey(params)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var eval domain.ScenarioEvaluation
		if err := json.Unmarshal([]byte(cached), &eval); err == nil {
			return eval, nil
		}
		log.Printf("Warning: discarding unreadable cache entry %s", key)
	}

	eval, err := s.evaluate(params)
	if err != nil {
		return domain.ScenarioEvaluation{}, err
	}

	// Guardar en caché (no crítico si falla)
	if data, err := json.Marshal(eval); err == nil {
		if err := s.cache.Set(ctx, key, string(data)); err != nil {
			log.Printf("Warning: failed to cache scenario evaluation: %v", err)
		}
	}

	return eval, nil
}

func (s *ScenarioService) evaluate(p domain.Parameters) (domain.ScenarioEvaluation, error) {
	rent := s.rentBreakdown(p)
	buy := s.buyBreakdown(p)

	// decimal no acepta NaN ni infinitos
	if err := domain.CheckOutcome(domain.StrategyRent,
		rent.DownPaymentFutureValue, rent.MonthlyRent, rent.MonthlyMortgage,
		rent.MonthlyDelta, rent.DeltaFutureValue, rent.Capital,
	); err != nil {
		return domain.ScenarioEvaluation{}, err
	}
	if err := domain.CheckOutcome(domain.StrategyBuy,
		buy.PropertyFutureValue, buy.EffectiveTaxRate, buy.QuarterlyTax,
		buy.TaxesFutureValue, buy.RemodelingFutureValue, buy.Capital,
		buy.Capital-rent.Capital,
	); err != nil {
		return domain.ScenarioEvaluation{}, err
	}

	winner := domain.StrategyRent
	if buy.Capital >= rent.Capital {
		winner = domain.StrategyBuy
	}

	return domain.ScenarioEvaluation{
		Parameters: p,
		Rent: domain.RentBreakdown{
			DownPaymentFutureValue: roundTo2Decimals(rent.DownPaymentFutureValue),
			MonthlyRent:            roundTo2Decimals(rent.MonthlyRent),
			MonthlyMortgage:        roundTo2Decimals(rent.MonthlyMortgage),
			MonthlyDelta:           roundTo2Decimals(rent.MonthlyDelta),
			DeltaFutureValue:       roundTo2Decimals(rent.DeltaFutureValue),
			Capital:                roundTo2Decimals(rent.Capital),
		},
		Buy: domain.BuyBreakdown{
			PropertyFutureValue:   roundTo2Decimals(buy.PropertyFutureValue),
			EffectiveTaxRate:      buy.EffectiveTaxRate,
			QuarterlyTax:          roundTo2Decimals(buy.QuarterlyTax),
			TaxesFutureValue:      roundTo2Decimals(buy.TaxesFutureValue),
			RemodelingFutureValue: roundTo2Decimals(buy.RemodelingFutureValue),
			Capital:               roundTo2Decimals(buy.Capital),
		},
		Winner:     winner,
		Difference: roundTo2Decimals(buy.Capital - rent.Capital),
	}, nil
}

func cacheKey(p domain.Parameters) string {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range p.Row() {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return scenarioCachePrefix + strconv.FormatUint(h.Sum64(), 16)
}
