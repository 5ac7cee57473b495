package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/simonindia/safety-api/internal/config"
	"github.com/simonindia/safety-api/internal/database"
	"github.com/simonindia/safety-api/internal/http/handler"
	"github.com/simonindia/safety-api/internal/http/middleware"
)

type Router struct {
	cfg                  *config.Config
	logger               *zap.Logger
	db                   *gorm.DB
	rateLimiter          *middleware.RateLimiter
	authHandler          *handler.AuthHandler
	dataHandler          *handler.DataHandler
	projectHandler       *handler.ProjectHandler
	subContractorHandler *handler.SubContractorHandler
	observationHandler   *handler.ObservationHandler
	exportHandler        *handler.ExportHandler
	uploadHandler        *handler.UploadHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	dataHandler *handler.DataHandler,
	projectHandler *handler.ProjectHandler,
	subContractorHandler *handler.SubContractorHandler,
	observationHandler *handler.ObservationHandler,
	exportHandler *handler.ExportHandler,
	uploadHandler *handler.UploadHandler,
) *Router {
	return &Router{
		cfg:                  cfg,
		logger:               logger,
		db:                   db,
		rateLimiter:          rateLimiter,
		authHandler:          authHandler,
		dataHandler:          dataHandler,
		projectHandler:       projectHandler,
		subContractorHandler: subContractorHandler,
		observationHandler:   observationHandler,
		exportHandler:        exportHandler,
		uploadHandler:        uploadHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database readiness probe
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
		})
	})

	// Stored attachments
	r.Get("/uploads/{filename}", rt.uploadHandler.Serve)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", rt.authHandler.Login)
		r.Get("/data", rt.dataHandler.Snapshot)
		r.Get("/export-excel", rt.exportHandler.Export)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", rt.projectHandler.List)
			r.Post("/", rt.projectHandler.Create)
			r.Put("/{id}", rt.projectHandler.Update)
			r.Delete("/{id}", rt.projectHandler.Delete)
		})

		r.Route("/subcontractors", func(r chi.Router) {
			r.Post("/", rt.subContractorHandler.Create)
			r.Put("/{id}", rt.subContractorHandler.Update)
			r.Delete("/{id}", rt.subContractorHandler.Delete)
		})

		r.Route("/observations", func(r chi.Router) {
			r.Post("/", rt.observationHandler.Create)
			r.Put("/{id}", rt.observationHandler.Update)
			r.Delete("/{id}", rt.observationHandler.Delete)
		})
	})

	return r
}
