package routes

import (
	"net/http"

	"github.com/medroute/hospital-finder/internal/api/handlers"
	"github.com/medroute/hospital-finder/internal/api/middleware"
	"github.com/medroute/hospital-finder/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	triageHandler   *handlers.TriageHandler
	hospitalHandler *handlers.HospitalHandler
	chatHandler     *handlers.ChatHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	triageHandler *handlers.TriageHandler,
	hospitalHandler *handlers.HospitalHandler,
	chatHandler *handlers.ChatHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		triageHandler:   triageHandler,
		hospitalHandler: hospitalHandler,
		chatHandler:     chatHandler,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Triage endpoints
	r.mux.HandleFunc("POST /api/find-hospitals", r.triageHandler.FindHospitals)
	r.mux.HandleFunc("POST /api/emergency-hospitals", r.triageHandler.EmergencyHospitals)

	// Hospital endpoints
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)

	// Chatbot endpoint
	r.mux.HandleFunc("POST /api/chatbot", r.chatHandler.Chat)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
