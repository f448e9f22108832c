// Package api assembles the HTTP server: huma API over net/http, CORS,
// request logging, auth resolution and the Prometheus scrape endpoint.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/cms/api/router"
	"github.com/siteforge-dev/siteforge/internal/cms/auth"
	"github.com/siteforge-dev/siteforge/internal/cms/config"
	"github.com/siteforge-dev/siteforge/internal/cms/generation"
	"github.com/siteforge-dev/siteforge/internal/cms/logging"
	"github.com/siteforge-dev/siteforge/internal/cms/metrics"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/internal/version"
)

// Server is the HTTP server fronting the CMS API.
type Server struct {
	mux        *http.ServeMux
	api        huma.API
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer assembles the API server from its collaborators.
func NewServer(
	cfg *config.Config,
	content service.ContentService,
	infraServices v0.InfraServices,
	pipeline *generation.Service,
	tokens *auth.Manager,
) *Server {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("Siteforge API", version.Version))

	router.RegisterRoutes(humaAPI, content, infraServices, &v0.VersionBody{
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildDate: version.BuildDate,
	}, &router.RouteOptions{Pipeline: pipeline})

	mux.Handle("/metrics", promhttp.Handler())

	logger := logging.NewLogger("api")
	handler := requestLogging(logger, mux)
	handler = metrics.Middleware(handler)
	handler = tokens.Middleware(handler)
	handler = corsHandler(cfg.CORSOrigins).Handler(handler)

	return &Server{
		mux: mux,
		api: humaAPI,
		httpServer: &http.Server{
			Addr:              cfg.ServerAddress,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// HumaAPI returns the huma API instance for registering extra routes.
func (s *Server) HumaAPI() huma.API {
	return s.api
}

// Mux returns the underlying ServeMux.
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

// Handler returns the fully composed handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for incoming HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("address", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func corsHandler(origins string) *cors.Cors {
	allowed := []string{"*"}
	if trimmed := strings.TrimSpace(origins); trimmed != "" {
		allowed = strings.Split(trimmed, ",")
		for i := range allowed {
			allowed[i] = strings.TrimSpace(allowed[i])
		}
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogging assigns a request id, threads it through context and emits
// one event per request at a level derived from the status code.
func requestLogging(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := logging.SetRequestID(r.Context(), requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logging.Event(logger, logging.EventLevelFromStatusCode(rec.status), "http request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
