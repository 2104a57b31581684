package domain

type DistributionType string

const (
	DistConstant   DistributionType = "constante"
	DistNormal     DistributionType = "normal"
	DistUniform    DistributionType = "uniforme"
	DistTriangular DistributionType = "triangular"
	DistLognormal  DistributionType = "lognormal"
)

// DistributionSpec describes how to sample one parameter. Which fields apply
// depends on Type: Value for constante, Mean/StdDev for normal, Min/Max for
// uniforme, Min/Max/Mode for triangular.
//
// lognormal takes LogMean/LogStdDev (media_log, desviacion_log): the mean and
// standard deviation of the logarithm of the value, not of the value itself.
// A value around 5000 with a 20% spread is roughly media_log 8.5 and
// desviacion_log 0.2.
//
// Normal and lognormal are clamped when both Min and Max are set.
type DistributionSpec struct {
	Type      DistributionType `json:"tipo" yaml:"tipo"`
	Value     float64          `json:"valor,omitempty" yaml:"valor,omitempty"`
	Mean      float64          `json:"media,omitempty" yaml:"media,omitempty"`
	StdDev    float64          `json:"desviacion,omitempty" yaml:"desviacion,omitempty"`
	LogMean   float64          `json:"media_log,omitempty" yaml:"media_log,omitempty"`
	LogStdDev float64          `json:"desviacion_log,omitempty" yaml:"desviacion_log,omitempty"`
	Min       *float64         `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64         `json:"max,omitempty" yaml:"max,omitempty"`
	Mode      float64          `json:"moda,omitempty" yaml:"moda,omitempty"`
}
