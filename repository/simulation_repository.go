package repository

import (
	"errors"

	"arriendo-compra/domain"
)

var ErrSimulationNotFound = errors.New("simulación no encontrada")

type SimulationRepository interface {
	Save(sim domain.Simulation) error
	Get(id string) (domain.Simulation, error)
	List() []domain.SimulationInfo
}
