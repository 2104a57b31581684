package http

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"arriendo-compra/domain"
	"arriendo-compra/repository"
	"arriendo-compra/service"
)

func newSimulationHandler() *SimulationHandler {
	repo := repository.NewSimulationRepositoryMemory(10)
	return NewSimulationHandler(service.NewSensitivityService(repo, 1000))
}

const simulationBody = `{
	"muestras": 20,
	"semilla": 7,
	"distribuciones": {
		"tasa_rentabilidad": {"tipo": "normal", "media": 0.05, "desviacion": 0.01},
		"tasa_plusvalia": {"tipo": "uniforme", "min": 0.0, "max": 0.03}
	}
}`

func runSimulation(t *testing.T, handler *SimulationHandler) domain.Simulation {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/simulacion", bytes.NewBufferString(simulationBody))
	w := httptest.NewRecorder()

	handler.Run(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var sim domain.Simulation
	if err := json.NewDecoder(w.Body).Decode(&sim); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return sim
}

func TestRunSimulationHandler_OK(t *testing.T) {

	handler := newSimulationHandler()
	sim := runSimulation(t, handler)

	if sim.ID == "" {
		t.Errorf("expected simulation id")
	}
	if sim.Summary.Samples != 20 {
		t.Errorf("expected 20 samples, got %d", sim.Summary.Samples)
	}
	if sim.Seed != 7 {
		t.Errorf("expected seed 7, got %d", sim.Seed)
	}
	if sim.Table != nil {
		t.Errorf("expected table to be omitted from run response")
	}
}

func TestRunSimulationHandler_BadRequest(t *testing.T) {

	handler := newSimulationHandler()

	cases := []string{
		`{invalid-json}`,
		`{"muestras": 0}`,
		`{"muestras": 10, "distribuciones": {"desconocido": {"tipo": "constante", "valor": 1}}}`,
		`{"muestras": 10, "distribuciones": {"anios": {"tipo": "uniforme"}}}`,
		`{"muestras": 5000}`,
		`{"muestras": 2, "distribuciones": {"anios": {"tipo": "constante", "valor": 20000}}}`,
		`{"muestras": 2, "distribuciones": {"tasa_rentabilidad": {"tipo": "constante", "valor": 1e300}}}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/simulacion", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Run(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestGetSimulationHandler(t *testing.T) {

	handler := newSimulationHandler()
	created := runSimulation(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/simulacion?id="+created.ID, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var sim domain.Simulation
	if err := json.NewDecoder(w.Body).Decode(&sim); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if sim.Table == nil || sim.Table.Len() != 20 {
		t.Fatalf("expected stored table with 20 rows")
	}
}

func TestGetSimulationHandler_NotFound(t *testing.T) {

	handler := newSimulationHandler()

	req := httptest.NewRequest(http.MethodGet, "/simulacion?id=nope", nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestExportCSVHandler(t *testing.T) {

	handler := newSimulationHandler()
	created := runSimulation(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/simulacion/csv?id="+created.ID, nil)
	w := httptest.NewRecorder()
	handler.ExportCSV(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 21 {
		t.Errorf("expected header plus 20 rows, got %d", len(records))
	}
	if got := records[0][len(records[0])-1]; got != domain.ColumnBuyCapital {
		t.Errorf("expected last column %s, got %s", domain.ColumnBuyCapital, got)
	}
}

func TestListSimulationsHandler(t *testing.T) {

	handler := newSimulationHandler()
	runSimulation(t, handler)
	runSimulation(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/simulaciones", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	var infos []domain.SimulationInfo
	if err := json.NewDecoder(w.Body).Decode(&infos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(infos) != 2 {
		t.Errorf("expected 2 simulations, got %d", len(infos))
	}
}

func TestRunSimulationHandler_OverflowNotStored(t *testing.T) {

	handler := newSimulationHandler()

	body := `{"muestras": 2, "distribuciones": {"anios": {"tipo": "constante", "valor": 20000}}}`
	req := httptest.NewRequest(http.MethodPost, "/simulacion", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler.Run(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := handler.service.List(); len(got) != 0 {
		t.Errorf("expected no stored simulations, got %d", len(got))
	}
}

func TestErrorStatus(t *testing.T) {

	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: número de muestras inválido", domain.ErrInvalidRequest), http.StatusBadRequest},
		{fmt.Errorf("simulación 3: %w", &domain.InvalidParameterError{Field: domain.KeyYears}), http.StatusBadRequest},
		{fmt.Errorf("distribución de anios: %w", domain.ErrInvalidDistribution), http.StatusBadRequest},
		{&domain.SamplingError{Field: domain.KeyYears}, http.StatusBadRequest},
		{&domain.OutcomeError{Strategy: domain.StrategyBuy}, http.StatusBadRequest},
		{fmt.Errorf("read random seed: %w", errors.New("entropy unavailable")), http.StatusInternalServerError},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := errorStatus(c.err); got != c.want {
			t.Errorf("%v: expected %d, got %d", c.err, c.want, got)
		}
	}
}
