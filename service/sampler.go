package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v2"

	"arriendo-compra/domain"
)

// Sampler draws one value per call. gonum distuv distributions satisfy it.
type Sampler interface {
	Rand() float64
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func() float64

func (f SamplerFunc) Rand() float64 { return f() }

type constantSampler float64

func (c constantSampler) Rand() float64 { return float64(c) }

type clampedSampler struct {
	Sampler
	min, max float64
}

func (c clampedSampler) Rand() float64 {
	return math.Min(c.max, math.Max(c.min, c.Sampler.Rand()))
}

// NewSampler builds the distribution described by spec on top of src.
func NewSampler(spec domain.DistributionSpec, src rand.Source) (Sampler, error) {
	switch spec.Type {
	case domain.DistConstant:
		return constantSampler(spec.Value), nil

	case domain.DistNormal, domain.DistLognormal:
		var s Sampler
		if spec.Type == domain.DistNormal {
			if spec.StdDev <= 0 {
				return nil, fmt.Errorf("%w: desviación estándar inválida", domain.ErrInvalidDistribution)
			}
			s = distuv.Normal{Mu: spec.Mean, Sigma: spec.StdDev, Src: src}
		} else {
			if spec.Mean != 0 || spec.StdDev != 0 {
				return nil, fmt.Errorf("%w: la distribución lognormal usa media_log y desviacion_log", domain.ErrInvalidDistribution)
			}
			if spec.LogStdDev <= 0 {
				return nil, fmt.Errorf("%w: desviacion_log inválida", domain.ErrInvalidDistribution)
			}
			s = distuv.LogNormal{Mu: spec.LogMean, Sigma: spec.LogStdDev, Src: src}
		}
		if spec.Min != nil && spec.Max != nil {
			if *spec.Min >= *spec.Max {
				return nil, fmt.Errorf("%w: mínimo debe ser menor que máximo", domain.ErrInvalidDistribution)
			}
			s = clampedSampler{Sampler: s, min: *spec.Min, max: *spec.Max}
		}
		return s, nil

	case domain.DistUniform:
		if spec.Min == nil || spec.Max == nil {
			return nil, fmt.Errorf("%w: la distribución uniforme requiere min y max", domain.ErrInvalidDistribution)
		}
		if *spec.Min >= *spec.Max {
			return nil, fmt.Errorf("%w: mínimo debe ser menor que máximo", domain.ErrInvalidDistribution)
		}
		return distuv.Uniform{Min: *spec.Min, Max: *spec.Max, Src: src}, nil

	case domain.DistTriangular:
		if spec.Min == nil || spec.Max == nil {
			return nil, fmt.Errorf("%w: la distribución triangular requiere min, max y moda", domain.ErrInvalidDistribution)
		}
		if *spec.Min >= *spec.Max {
			return nil, fmt.Errorf("%w: mínimo debe ser menor que máximo", domain.ErrInvalidDistribution)
		}
		if spec.Mode < *spec.Min || spec.Mode > *spec.Max {
			return nil, fmt.Errorf("%w: la moda debe estar entre min y max", domain.ErrInvalidDistribution)
		}
		return distuv.NewTriangle(*spec.Min, *spec.Max, spec.Mode, src), nil
	}

	return nil, fmt.Errorf("%w: tipo desconocido %q", domain.ErrInvalidDistribution, spec.Type)
}

// BuildSamplers builds one sampler per parameter, all drawing from a single
// PCG source seeded with seed.
func BuildSamplers(
	specs map[string]domain.DistributionSpec,
	seed uint64,
) (map[string]Sampler, error) {

	if len(specs) > MaxDistributions {
		return nil, fmt.Errorf("%w: número de distribuciones excede el máximo de %d", domain.ErrInvalidRequest, MaxDistributions)
	}
	if unknown := domain.UnknownParameterNames(specs); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: parámetros desconocidos %v", domain.ErrInvalidRequest, unknown)
	}

	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	samplers := make(map[string]Sampler, len(specs))
	for name, spec := range specs {
		s, err := NewSampler(spec, src)
		if err != nil {
			return nil, fmt.Errorf("distribución de %s: %w", name, err)
		}
		samplers[name] = s
	}
	return samplers, nil
}

// NewSeed returns a seed read from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// LoadSimulationRequest reads a YAML file with muestras, semilla and
// distribuciones keys.
func LoadSimulationRequest(path string) (domain.SimulationRequest, error) {
	var req domain.SimulationRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("leer %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &req); err != nil {
		return req, fmt.Errorf("parsear %s: %w", path, err)
	}
	return req, nil
}
