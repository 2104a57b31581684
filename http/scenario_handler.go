package http

import (
	"log"
	"net/http"

	"arriendo-compra/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
}

func NewScenarioHandler(service *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{service: service}
}

// Evaluate compara arriendo y compra para un conjunto parcial de parámetros.
func (h *ScenarioHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "método no permitido", http.StatusMethodNotAllowed)
		return
	}

	overrides := map[string]float64{}
	if err := decodeJSON(w, r, &overrides); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "cuerpo de la solicitud inválido", http.StatusBadRequest)
		return
	}

	result, err := h.service.Evaluate(r.Context(), overrides)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
