package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/roamlog/roamlog-api/pkg/middleware"
)

// SetupRouter configures all routes and returns the HTTP handler
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	registerEntryRoutes(mux, deps)
	registerUtilityRoutes(mux, deps)

	jwtSecret := []byte(deps.Config.Auth.JWTSecret)

	var limiter *rate.Limiter
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter = rate.NewLimiter(
			rate.Limit(float64(deps.Config.Server.RateLimitPerSecond)),
			deps.Config.Server.RateLimitBurst,
		)
	}

	// Outermost first: request ids before anything that logs, recovery
	// before handlers that may panic, auth last so public paths stay cheap.
	var handler http.Handler = mux
	handler = middleware.Auth(jwtSecret, "/health", "/ready", "/metrics")(handler)
	handler = middleware.RateLimit(limiter)(handler)
	handler = middleware.Recovery(deps.Logger)(handler)
	handler = middleware.Logging(deps.Logger)(handler)
	handler = middleware.Metrics(handler)
	handler = middleware.RequestID(handler)

	// Enable CORS for browser clients (local frontend)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept-Encoding",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		AllowCredentials: true,
	})

	return corsHandler.Handler(handler)
}

// registerEntryRoutes registers the entry workflow and the dry-run
// extraction endpoint
func registerEntryRoutes(mux *http.ServeMux, deps *Dependencies) {
	mux.HandleFunc("POST /v1/entries", deps.EntryHandler.CreateEntry)
	mux.HandleFunc("GET /v1/entries", deps.EntryHandler.ListEntries)
	mux.HandleFunc("GET /v1/entries/{id}", deps.EntryHandler.GetEntry)
	mux.HandleFunc("DELETE /v1/entries/{id}", deps.EntryHandler.DeleteEntry)
	mux.HandleFunc("POST /v1/extract", deps.EntryHandler.ExtractPreview)

	deps.Logger.Info("entry routes configured")
}

// registerUtilityRoutes registers health check, metrics, and other utility routes
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Pool.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unhealthy"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	deps.Logger.Info("registered health check", "path", "/health")

	// Readiness check endpoint
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	// Metrics endpoint (Prometheus)
	mux.Handle("/metrics", promhttp.Handler())
	deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
}
