// Package finance holds the time-value-of-money helpers shared by the rent
// and buy scenarios.
package finance

import "math"

// FutureValue returns the value after periods of a present sum plus a level
// contribution per period, both compounded at rate. Contributions are passed
// as positive amounts and the result is a positive asset value.
func FutureValue(rate, periods, presentValue, payment float64) float64 {
	if rate == 0 {
		return presentValue + payment*periods
	}
	growth := math.Pow(1+rate, periods)
	return presentValue*growth + payment*(growth-1)/rate
}

// MonthlyPayment returns the level payment that amortizes principal over
// years at annualRate, compounded monthly.
func MonthlyPayment(annualRate, years, principal float64) float64 {
	monthlyRate := annualRate / 12
	n := years * 12
	if monthlyRate == 0 {
		return principal / n
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
}

// CompoundRate converts an annual rate into the equivalent rate for a period
// that is 1/periodsPerYear of a year.
func CompoundRate(annualRate float64, periodsPerYear int) float64 {
	return math.Pow(1+annualRate, 1/float64(periodsPerYear)) - 1
}

// EffectiveAnnualTaxRate blends the two property-tax bands into one rate on
// price. Band 1 applies to everything above exempt and band 2 adds the rate
// difference above bracket; band 1 is not capped at bracket.
// price must be positive.
func EffectiveAnnualTaxRate(price, exempt, bracket, rate1, rate2 float64) float64 {
	var band1, band2 float64
	if price > bracket {
		band2 = (rate2 - rate1) * (price - bracket)
	}
	if price > exempt {
		band1 = rate1 * (price - exempt)
	}
	return (band1 + band2) / price
}
