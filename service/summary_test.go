package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arriendo-compra/domain"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(&domain.SensitivityTable{})
	assert.Equal(t, domain.Summary{}, s)
}

func TestSummarize_ConstantTable(t *testing.T) {
	svc := NewSensitivityService(&MockSimulationRepository{}, 0)
	table, err := svc.Run(context.Background(), 4, nil)
	require.NoError(t, err)

	s := Summarize(table)
	assert.Equal(t, 4, s.Samples)
	assert.InDelta(t, 3861.42, s.Rent.Mean, 0.01)
	assert.Equal(t, 0.0, s.Rent.StdDev)
	assert.Equal(t, s.Rent.Min, s.Rent.Max)
	assert.Equal(t, 0.0, s.BuyWinsShare, "defaults favor renting")
	assert.Empty(t, s.Sensitivity)
}

func TestSummarize_RanksDrivingParameter(t *testing.T) {
	svc := NewSensitivityService(&MockSimulationRepository{}, 0)
	table, err := svc.Run(context.Background(), 40, map[string]Sampler{
		domain.KeyAppreciationRate: sequence(0.0, 0.01, 0.02, 0.03, 0.04),
		domain.KeyRentFraction:     sequence(0.0038, 0.0039),
	})
	require.NoError(t, err)

	s := Summarize(table)
	require.NotEmpty(t, s.Sensitivity)
	assert.Equal(t, domain.KeyAppreciationRate, s.Sensitivity[0].Parameter)
	assert.Greater(t, s.Sensitivity[0].Correlation, 0.9)

	assert.LessOrEqual(t, s.Buy.Min, s.Buy.P5)
	assert.LessOrEqual(t, s.Buy.P5, s.Buy.Median)
	assert.LessOrEqual(t, s.Buy.Median, s.Buy.P95)
	assert.LessOrEqual(t, s.Buy.P95, s.Buy.Max)
	assert.Greater(t, s.BuyWinsShare, 0.0)
	assert.Less(t, s.BuyWinsShare, 1.0)
}
