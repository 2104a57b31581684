package http

import "net/http"

// NewRouter registers every endpoint behind the rate limiter.
func NewRouter(
	scenarioHandler *ScenarioHandler,
	simulationHandler *SimulationHandler,
	limiter *RateLimiter,
) http.Handler {

	routes := map[string]http.HandlerFunc{
		"/escenario/evaluar": scenarioHandler.Evaluate,
		"/simulacion":        dispatch(simulationHandler.Run, simulationHandler.Get),
		"/simulacion/csv":    simulationHandler.ExportCSV,
		"/simulaciones":      simulationHandler.List,
	}

	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.Handle(pattern, RateLimitMiddleware(limiter, handler))
	}
	return mux
}

// dispatch routes POST to create and everything else to read.
func dispatch(create, read http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			create(w, r)
			return
		}
		read(w, r)
	}
}
