package service

const (
	DefaultMaxSimulations = 100_000 // muestras por simulación
	MaxDistributions      = 12      // una por parámetro

	// Percentiles reportados en el resumen
	LowerPercentile = 0.05
	UpperPercentile = 0.95
)
