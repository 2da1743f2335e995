package handler

import (
	"net/http"

	"github.com/msomdec/signup-api/internal/controller"
	"github.com/msomdec/signup-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Signup and login
// share the limiter, keyed by client IP.
func RegisterRoutes(mux *http.ServeMux, signUp, login controller.Controller, limiter *service.TokenBucket) {
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("POST /api/signup", RateLimit(limiter, AdaptRoute(signUp)))
	mux.Handle("POST /api/login", RateLimit(limiter, AdaptRoute(login)))
}
