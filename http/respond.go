package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"arriendo-compra/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "error interno del servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// errorStatus maps service errors caused by the request to 400 and anything
// else to 500.
func errorStatus(err error) int {
	for _, target := range []error{
		domain.ErrInvalidRequest,
		domain.ErrInvalidParameter,
		domain.ErrInvalidDistribution,
		domain.ErrSamplingFailure,
		domain.ErrNonFiniteOutcome,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Error processing request: %v", err)
		http.Error(w, "error interno del servidor", status)
		return
	}
	http.Error(w, err.Error(), status)
}
