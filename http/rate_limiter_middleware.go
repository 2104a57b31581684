package http

import (
	"net"
	"net/http"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			http.Error(w, "límite de solicitudes excedido", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
