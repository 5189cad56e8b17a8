package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"nexus-asset-manager/internal/security"
	"nexus-asset-manager/internal/service"
	"nexus-asset-manager/internal/storage"
)

// RouterConfig holds everything the API routes depend on
type RouterConfig struct {
	Assets         service.AssetService
	Labels         service.LabelService
	Documents      service.DocumentService
	Assistant      service.AssistantService
	Files          storage.StorageInterface
	TokenManager   security.TokenManager
	MaxUploadBytes int64
	// HealthCheck reports whether backing services are reachable. Optional.
	HealthCheck func(ctx context.Context) error
}

func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware, RequestIDMiddleware, LoggingMiddleware, NewAuthMiddleware(cfg.TokenManager).Handler)

	RegisterHealthRoutes(router, cfg.HealthCheck)
	RegisterAssetRoutes(router, cfg.Assets)
	RegisterLabelRoutes(router, cfg.Labels)
	RegisterReportRoutes(router, cfg.Assets, cfg.Assistant)
	RegisterDocumentRoutes(router, cfg.Documents, cfg.MaxUploadBytes)
	RegisterFileRoutes(router, cfg.Files)
	return router
}

func RegisterHealthRoutes(router *mux.Router, check func(ctx context.Context) error) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
}
