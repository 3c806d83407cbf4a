package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const (
	allowedOrigin  = "*"
	allowedMethods = "GET, OPTIONS"
	allowedHeaders = "Content-Type"
)

// JSONHeaders sets the JSON content type and the permissive CORS headers on
// every response, whether or not the request carries an Origin.
func JSONHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Type", "application/json")
		h.Set("Access-Control-Allow-Origin", allowedOrigin)
		h.Set("Access-Control-Allow-Methods", allowedMethods)
		h.Set("Access-Control-Allow-Headers", allowedHeaders)
		next.ServeHTTP(w, r)
	})
}

// CORS handles browser requests carrying an Origin. Preflights are passed
// through so Preflight writes the response. Register it before JSONHeaders.
func CORS() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{allowedOrigin},
		AllowedMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:     []string{allowedHeaders},
		AllowCredentials:   false,
		OptionsPassthrough: true,
	})
}

// Preflight answers every OPTIONS request with 200 and an empty body.
func Preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
