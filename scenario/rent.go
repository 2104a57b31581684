// Package scenario computes the relative terminal capital of the rent and buy
// strategies for one parameter set. Both functions are pure.
package scenario

import (
	"arriendo-compra/domain"
	"arriendo-compra/finance"
)

// ComputeRentOutcome returns the capital of a renter who invests the down
// payment and, every month, the difference between a mortgage payment and
// the rent.
func ComputeRentOutcome(p domain.Parameters) float64 {
	return RentBreakdown(p).Capital
}

// RentBreakdown returns ComputeRentOutcome together with its components.
func RentBreakdown(p domain.Parameters) domain.RentBreakdown {
	years := float64(p.Years)

	downPayment := p.PropertyPrice * p.DownPaymentFraction
	fvDownPayment := finance.FutureValue(p.InvestmentRate, years, downPayment, 0)

	// Sin reajuste del arriendo.
	rent := p.PropertyPrice * p.RentFraction

	loan := p.PropertyPrice * (1 - p.DownPaymentFraction)
	mortgage := finance.MonthlyPayment(p.MortgageRate, years, loan)

	delta := mortgage - rent
	monthlyRate := finance.CompoundRate(p.InvestmentRate, 12)
	fvDelta := finance.FutureValue(monthlyRate, years*12, 0, delta)

	return domain.RentBreakdown{
		DownPaymentFutureValue: fvDownPayment,
		MonthlyRent:            rent,
		MonthlyMortgage:        mortgage,
		MonthlyDelta:           delta,
		DeltaFutureValue:       fvDelta,
		Capital:                fvDownPayment + fvDelta,
	}
}
