package domain

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"
)

const (
	ColumnRentCapital = "capital_relativo_arriendo"
	ColumnBuyCapital  = "capital_relativo_compra"
)

// SimulationRun pairs one sampled parameter set with both outcomes.
type SimulationRun struct {
	Index       int        `json:"indice"`
	Parameters  Parameters `json:"parametros"`
	RentCapital float64    `json:"capital_relativo_arriendo"`
	BuyCapital  float64    `json:"capital_relativo_compra"`
}

// SensitivityTable holds the runs in generation order.
type SensitivityTable struct {
	Runs []SimulationRun `json:"filas"`
}

func (t *SensitivityTable) Len() int {
	return len(t.Runs)
}

// Columns returns the parameter keys followed by the two result columns.
func (t *SensitivityTable) Columns() []string {
	return append(ParameterNames(), ColumnRentCapital, ColumnBuyCapital)
}

// Rows returns one slice per run, aligned with Columns.
func (t *SensitivityTable) Rows() [][]float64 {
	rows := make([][]float64, len(t.Runs))
	for i, run := range t.Runs {
		rows[i] = append(run.Parameters.Row(), run.RentCapital, run.BuyCapital)
	}
	return rows
}

// Column returns the values of one column, or false if the name is unknown.
func (t *SensitivityTable) Column(name string) ([]float64, bool) {
	idx := -1
	for i, col := range t.Columns() {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	values := make([]float64, len(t.Runs))
	for i, row := range t.Rows() {
		values[i] = row[idx]
	}
	return values, true
}

// Matrix returns the table as a dense matrix, or nil when it has no rows.
func (t *SensitivityTable) Matrix() *mat.Dense {
	if len(t.Runs) == 0 {
		return nil
	}
	cols := len(t.Columns())
	data := make([]float64, 0, len(t.Runs)*cols)
	for _, row := range t.Rows() {
		data = append(data, row...)
	}
	return mat.NewDense(len(t.Runs), cols, data)
}

// WriteCSV writes a header line followed by one record per run.
func (t *SensitivityTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SimulationRequest describes a sensitivity run.
type SimulationRequest struct {
	Samples       int                         `json:"muestras" yaml:"muestras"`
	Seed          *uint64                     `json:"semilla,omitempty" yaml:"semilla,omitempty"`
	Distributions map[string]DistributionSpec `json:"distribuciones" yaml:"distribuciones"`
}

// Simulation is a completed sensitivity run.
type Simulation struct {
	ID            string                      `json:"id"`
	CreatedAt     time.Time                   `json:"creado"`
	Samples       int                         `json:"muestras"`
	Seed          uint64                      `json:"semilla"`
	Distributions map[string]DistributionSpec `json:"distribuciones"`
	Table         *SensitivityTable           `json:"tabla,omitempty"`
	Summary       Summary                     `json:"resumen"`
}

// SimulationInfo is the listing view of a stored simulation.
type SimulationInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"creado"`
	Samples   int       `json:"muestras"`
}

func (s Simulation) Info() SimulationInfo {
	return SimulationInfo{ID: s.ID, CreatedAt: s.CreatedAt, Samples: s.Samples}
}
