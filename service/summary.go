package service

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"arriendo-compra/domain"
)

// Summarize describes both result columns and ranks the varying parameters
// by their correlation with buy minus rent capital.
func Summarize(table *domain.SensitivityTable) domain.Summary {
	summary := domain.Summary{Samples: table.Len()}
	if table.Len() == 0 {
		return summary
	}

	rent, _ := table.Column(domain.ColumnRentCapital)
	buy, _ := table.Column(domain.ColumnBuyCapital)

	summary.Rent = columnStats(rent)
	summary.Buy = columnStats(buy)

	diff := make([]float64, len(buy))
	floats.SubTo(diff, buy, rent)

	wins := 0
	for _, d := range diff {
		if d >= 0 {
			wins++
		}
	}
	summary.BuyWinsShare = float64(wins) / float64(len(diff))

	if hasVariance(diff) {
		for _, name := range domain.ParameterNames() {
			col, _ := table.Column(name)
			if !hasVariance(col) {
				continue
			}
			corr := stat.Correlation(col, diff, nil)
			if math.IsNaN(corr) {
				continue
			}
			summary.Sensitivity = append(summary.Sensitivity, domain.Sensitivity{
				Parameter:   name,
				Correlation: corr,
			})
		}
		sort.SliceStable(summary.Sensitivity, func(i, j int) bool {
			return math.Abs(summary.Sensitivity[i].Correlation) > math.Abs(summary.Sensitivity[j].Correlation)
		})
	}

	return summary
}

func columnStats(values []float64) domain.ColumnStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean := stat.Mean(sorted, nil)
	std := 0.0
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}

	return domain.ColumnStats{
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		P5:     stat.Quantile(LowerPercentile, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(UpperPercentile, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}

func hasVariance(values []float64) bool {
	return len(values) > 1 && floats.Max(values) > floats.Min(values)
}
