package http

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"arriendo-compra/domain"
)

func TestRateLimiter_AllowsCapacityThenBlocks(t *testing.T) {

	limiter := NewRateLimiter(3, time.Hour)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Errorf("fourth request should be blocked")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Errorf("other clients keep their own budget")
	}
}

func TestRouter_RateLimited(t *testing.T) {

	limiter := NewRateLimiter(1, time.Hour)
	defer limiter.Stop()

	router := NewRouter(newScenarioHandler(), newSimulationHandler(), limiter)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/simulaciones", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/simulaciones", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", second.Code)
	}
}

func TestRateLimiter_CapacityAboveWindowNanoseconds(t *testing.T) {

	limiter := NewRateLimiter(2000, time.Microsecond)
	defer limiter.Stop()

	if limiter.limit == rate.Inf {
		t.Fatalf("expected a finite limit")
	}
	if got := float64(limiter.limit); math.Abs(got-2e9) > 1 {
		t.Errorf("expected about 2e9 tokens per second, got %v", got)
	}
}

func TestRateLimiter_RefillRate(t *testing.T) {

	limiter := NewRateLimiter(60, time.Minute)
	defer limiter.Stop()

	if limiter.limit != rate.Limit(1) {
		t.Errorf("expected 1 token per second, got %v", limiter.limit)
	}
}

func TestRouter_SimulationMethodDispatch(t *testing.T) {

	limiter := NewRateLimiter(100, time.Hour)
	defer limiter.Stop()

	router := NewRouter(newScenarioHandler(), newSimulationHandler(), limiter)

	post := httptest.NewRecorder()
	router.ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/simulacion", bytes.NewBufferString(simulationBody)))
	if post.Code != http.StatusCreated {
		t.Fatalf("POST: expected 201, got %d: %s", post.Code, post.Body.String())
	}

	var created domain.Simulation
	if err := json.NewDecoder(post.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/simulacion?id="+created.ID, nil))
	if get.Code != http.StatusOK {
		t.Fatalf("GET: expected 200, got %d", get.Code)
	}

	var stored domain.Simulation
	if err := json.NewDecoder(get.Body).Decode(&stored); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stored.ID != created.ID || stored.Table == nil {
		t.Errorf("expected stored simulation %s with its table", created.ID)
	}

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/simulacion", nil))
	if missing.Code != http.StatusBadRequest {
		t.Errorf("GET without id: expected 400, got %d", missing.Code)
	}

	put := httptest.NewRecorder()
	router.ServeHTTP(put, httptest.NewRequest(http.MethodPut, "/simulacion", nil))
	if put.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT: expected 405, got %d", put.Code)
	}
}
