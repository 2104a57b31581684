package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"arriendo-compra/domain"
	"arriendo-compra/repository"
	"arriendo-compra/scenario"
)

// SensitivityService runs the Monte Carlo comparison of both strategies.
type SensitivityService struct {
	repo           repository.SimulationRepository
	maxSimulations int

	rentOutcome func(domain.Parameters) float64
	buyOutcome  func(domain.Parameters) float64
}

// NewSensitivityService creates a SensitivityService that stores completed
// simulations in repo. maxSimulations <= 0 uses DefaultMaxSimulations.
func NewSensitivityService(
	repo repository.SimulationRepository,
	maxSimulations int,
) *SensitivityService {
	if maxSimulations <= 0 {
		maxSimulations = DefaultMaxSimulations
	}
	return &SensitivityService{
		repo:           repo,
		maxSimulations: maxSimulations,
		rentOutcome:    scenario.ComputeRentOutcome,
		buyOutcome:     scenario.ComputeBuyOutcome,
	}
}

// Run draws n parameter sets from samplers and evaluates both scenarios on
// each. Parameters without a sampler keep their default. Any failing
// iteration aborts the run and no table is returned.
func (s *SensitivityService) Run(
	ctx context.Context,
	n int,
	samplers map[string]Sampler,
) (*domain.SensitivityTable, error) {

	if n < 0 {
		return nil, fmt.Errorf("%w: número de simulaciones inválido", domain.ErrInvalidRequest)
	}
	if n > s.maxSimulations {
		return nil, fmt.Errorf("%w: número de simulaciones excede el máximo de %d", domain.ErrInvalidRequest, s.maxSimulations)
	}
	if unknown := domain.UnknownParameterNames(samplers); len(unknown) > 0 {
		log.Printf("Warning: ignoring distributions for unknown parameters: %v", unknown)
	}

	names := domain.ParameterNames()
	table := &domain.SensitivityTable{Runs: make([]domain.SimulationRun, 0, n)}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Orden fijo de muestreo para que una semilla reproduzca la tabla
		drawn := make(map[string]float64, len(samplers))
		for _, name := range names {
			sampler, ok := samplers[name]
			if !ok {
				continue
			}
			v := sampler.Rand()
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("simulación %d: %w", i, &domain.SamplingError{Field: name, Value: v})
			}
			drawn[name] = v
		}

		params, err := domain.NewParameters(drawn)
		if err != nil {
			return nil, fmt.Errorf("simulación %d: %w", i, err)
		}

		rent, buy := s.rentOutcome(params), s.buyOutcome(params)
		if err := domain.CheckOutcome(domain.StrategyRent, rent); err != nil {
			return nil, fmt.Errorf("simulación %d: %w", i, err)
		}
		if err := domain.CheckOutcome(domain.StrategyBuy, buy); err != nil {
			return nil, fmt.Errorf("simulación %d: %w", i, err)
		}

		table.Runs = append(table.Runs, domain.SimulationRun{
			Index:       i,
			Parameters:  params,
			RentCapital: rent,
			BuyCapital:  buy,
		})
	}

	return table, nil
}

// Simulate builds samplers from req, runs them, summarizes the table and
// stores the result.
func (s *SensitivityService) Simulate(
	ctx context.Context,
	req domain.SimulationRequest,
) (domain.Simulation, error) {

	if req.Samples <= 0 {
		return domain.Simulation{}, fmt.Errorf("%w: número de muestras inválido", domain.ErrInvalidRequest)
	}

	var seed uint64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		var err error
		if seed, err = NewSeed(); err != nil {
			return domain.Simulation{}, err
		}
	}

	samplers, err := BuildSamplers(req.Distributions, seed)
	if err != nil {
		return domain.Simulation{}, err
	}

	table, err := s.Run(ctx, req.Samples, samplers)
	if err != nil {
		return domain.Simulation{}, err
	}

	sim := domain.Simulation{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now().UTC(),
		Samples:       req.Samples,
		Seed:          seed,
		Distributions: req.Distributions,
		Table:         table,
		Summary:       Summarize(table),
	}

	// Guardar la simulación (no crítico si falla)
	if err := s.repo.Save(sim); err != nil {
		log.Printf("Warning: failed to save simulation %s: %v", sim.ID, err)
	}

	return sim, nil
}

func (s *SensitivityService) Get(id string) (domain.Simulation, error) {
	return s.repo.Get(id)
}

func (s *SensitivityService) List() []domain.SimulationInfo {
	return s.repo.List()
}
