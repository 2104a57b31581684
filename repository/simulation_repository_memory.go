package repository

import (
	"sync"

	"arriendo-compra/domain"
)

// SimulationRepositoryMemory is an in-memory implementation of
// SimulationRepository that keeps the most recent simulations.
type SimulationRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	data     map[string]domain.Simulation
}

// NewSimulationRepositoryMemory creates a repository holding at most
// capacity simulations; older ones are evicted first. capacity <= 0 means
// no limit.
func NewSimulationRepositoryMemory(capacity int) *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		capacity: capacity,
		data:     make(map[string]domain.Simulation),
	}
}

// Save stores the simulation in memory.
func (r *SimulationRepositoryMemory) Save(sim domain.Simulation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[sim.ID]; !exists {
		r.order = append(r.order, sim.ID)
	}
	r.data[sim.ID] = sim

	for r.capacity > 0 && len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.data, oldest)
	}
	return nil
}

func (r *SimulationRepositoryMemory) Get(id string) (domain.Simulation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sim, ok := r.data[id]
	if !ok {
		return domain.Simulation{}, ErrSimulationNotFound
	}
	return sim, nil
}

// List returns the stored simulations, oldest first.
func (r *SimulationRepositoryMemory) List() []domain.SimulationInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]domain.SimulationInfo, 0, len(r.order))
	for _, id := range r.order {
		infos = append(infos, r.data[id].Info())
	}
	return infos
}
