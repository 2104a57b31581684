package http

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"arriendo-compra/domain"
	"arriendo-compra/repository"
	"arriendo-compra/service"
)

type SimulationHandler struct {
	service *service.SensitivityService
}

func NewSimulationHandler(service *service.SensitivityService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Run ejecuta una simulación de sensibilidad y responde con su resumen.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "método no permitido", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SimulationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "cuerpo de la solicitud inválido", http.StatusBadRequest)
		return
	}

	sim, err := h.service.Simulate(r.Context(), req)
	if err != nil {
		if r.Context().Err() != nil {
			log.Printf("Simulation aborted: %v", err)
			return
		}
		writeServiceError(w, err)
		return
	}

	// La tabla completa se obtiene con Get
	sim.Table = nil
	writeJSON(w, http.StatusCreated, sim)
}

// Get devuelve una simulación guardada, incluida su tabla.
func (h *SimulationHandler) Get(w http.ResponseWriter, r *http.Request) {
	sim, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

// ExportCSV devuelve la tabla de una simulación guardada como CSV.
func (h *SimulationHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	sim, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := sim.Table.WriteCSV(&buf); err != nil {
		log.Printf("Error encoding csv: %v", err)
		http.Error(w, "error interno del servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="simulacion-`+sim.ID+`.csv"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// List devuelve las simulaciones guardadas.
func (h *SimulationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "método no permitido", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.service.List())
}

func (h *SimulationHandler) lookup(w http.ResponseWriter, r *http.Request) (domain.Simulation, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "método no permitido", http.StatusMethodNotAllowed)
		return domain.Simulation{}, false
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "falta el parámetro id", http.StatusBadRequest)
		return domain.Simulation{}, false
	}

	sim, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrSimulationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return domain.Simulation{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return domain.Simulation{}, false
	}
	return sim, true
}
