package scenario

import (
	"arriendo-compra/domain"
	"arriendo-compra/finance"
)

// ComputeBuyOutcome returns the appreciated property value net of the
// compounded property taxes and remodeling costs paid by the owner.
func ComputeBuyOutcome(p domain.Parameters) float64 {
	return BuyBreakdown(p).Capital
}

// BuyBreakdown returns ComputeBuyOutcome together with its components.
func BuyBreakdown(p domain.Parameters) domain.BuyBreakdown {
	years := float64(p.Years)

	fvProperty := finance.FutureValue(p.AppreciationRate, years, p.PropertyPrice, 0)

	taxRate := finance.EffectiveAnnualTaxRate(
		p.PropertyPrice,
		p.TaxExemptThreshold,
		p.TaxBracketThreshold,
		p.TaxRateBand1,
		p.TaxRateBand2,
	)
	quarterlyTax := taxRate * p.PropertyPrice / 4
	quarterlyRate := finance.CompoundRate(p.InvestmentRate, 4)
	fvTaxes := finance.FutureValue(quarterlyRate, years*4, 0, quarterlyTax)

	// Remodelaciones anuales a la tasa anual, sin capitalización intra-año.
	remodeling := p.RemodelingFraction * p.PropertyPrice
	fvRemodeling := finance.FutureValue(p.InvestmentRate, years, 0, remodeling)

	return domain.BuyBreakdown{
		PropertyFutureValue:   fvProperty,
		EffectiveTaxRate:      taxRate,
		QuarterlyTax:          quarterlyTax,
		TaxesFutureValue:      fvTaxes,
		RemodelingFutureValue: fvRemodeling,
		Capital:               fvProperty - fvTaxes - fvRemodeling,
	}
}
