package myhttp

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var (
	allowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}
	// admin requests also identify the user
	preflightHeaders = []string{"authorization", "x-client-info", "apikey", "content-type", "x-user-email"}
)

// SetCORSHeaders marks a response as readable from any origin, also when the request carried no Origin header.
func SetCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ", "))
}

// CORS answers preflight requests for the browser-facing endpoints.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: preflightHeaders,
		MaxAge:         300,
	})
}

// Preflight answers an OPTIONS request that the CORS middleware did not handle itself.
func Preflight(w http.ResponseWriter, r *http.Request) {
	SetCORSHeaders(w.Header())
	w.WriteHeader(http.StatusOK)
}
