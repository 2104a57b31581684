package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arriendo-compra/finance"
)

const (
	exemptCLP  = 33664775 / 26799.01
	bracketCLP = 118571329 / 26799.01
)

func TestFutureValue_ZeroRate(t *testing.T) {
	cases := []struct {
		periods, pv, pmt float64
	}{
		{0, 100, 10},
		{12, 0, 25},
		{25, 1000, 0},
		{300, 1234.5, 0.81},
	}
	for _, c := range cases {
		assert.Equal(t, c.pv+c.pmt*c.periods, finance.FutureValue(0, c.periods, c.pv, c.pmt))
	}
}

func TestFutureValue_PresentValueOnly(t *testing.T) {
	got := finance.FutureValue(0.0531, 25, 1000, 0)
	assert.InDelta(t, 3645.36, got, 0.01)
}

func TestFutureValue_PaymentStream(t *testing.T) {
	// 25 yearly contributions of 25 at 5.31%.
	got := finance.FutureValue(0.0531, 25, 0, 25)
	assert.InDelta(t, 1245.46, got, 0.1)
}

func TestMonthlyPayment_ReferenceMortgage(t *testing.T) {
	got := finance.MonthlyPayment(0.0340, 25, 4000)
	assert.InDelta(t, 19.81, got, 0.01)
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	assert.Equal(t, 100.0, finance.MonthlyPayment(0, 1, 1200))
}

func TestCompoundRate(t *testing.T) {
	monthly := finance.CompoundRate(0.0531, 12)
	require.Greater(t, monthly, 0.0)
	assert.InDelta(t, 0.0531, finance.FutureValue(monthly, 12, 1, 0)-1, 1e-12)

	assert.Equal(t, 0.0, finance.CompoundRate(0, 4))
}

func TestEffectiveAnnualTaxRate_Reference(t *testing.T) {
	got := finance.EffectiveAnnualTaxRate(5000, exemptCLP, bracketCLP, 0.00933, 0.01088)
	assert.InDelta(t, 0.00716435594673087, got, 1e-6)
}

func TestEffectiveAnnualTaxRate_BelowThresholds(t *testing.T) {
	for _, price := range []float64{1, 500, 1000, 1256} {
		assert.Equal(t, 0.0, finance.EffectiveAnnualTaxRate(price, 1256, 4424, 0.0093, 0.0109), "price %v", price)
	}
	// bracket below exempt still yields zero while price is under both
	assert.Equal(t, 0.0, finance.EffectiveAnnualTaxRate(800, 1000, 900, 0.01, 0.02))
}

func TestEffectiveAnnualTaxRate_BetweenThresholds(t *testing.T) {
	got := finance.EffectiveAnnualTaxRate(2000, 1000, 4000, 0.01, 0.02)
	assert.InDelta(t, 0.005, got, 1e-12)
}

func TestEffectiveAnnualTaxRate_AbsoluteTaxMonotone(t *testing.T) {
	thresholds := []struct{ exempt, bracket, r1, r2 float64 }{
		{1256, 4424, 0.0093, 0.0109},
		{exemptCLP, bracketCLP, 0.00933, 0.01088},
		{0, 0, 0.01, 0.02},
		{3000, 1000, 0.01, 0.015},
	}
	for _, th := range thresholds {
		prev := 0.0
		for price := 10.0; price <= 20000; price += 10 {
			tax := finance.EffectiveAnnualTaxRate(price, th.exempt, th.bracket, th.r1, th.r2) * price
			require.GreaterOrEqual(t, tax, prev-1e-9, "price %v thresholds %+v", price, th)
			prev = tax
		}
	}
}
