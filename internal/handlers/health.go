package handlers

import (
	"context"
	"net/http"
	"time"

	"clinic-faq/internal/contextutil"
	"clinic-faq/internal/storage"
)

// DBChecker reports database reachability.
type DBChecker interface {
	PingContext(ctx context.Context) error
	ServerInfo(ctx context.Context) (storage.ServerInfo, error)
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db                 DBChecker
	healthCheckTimeout time.Duration
	now                func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db DBChecker) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		healthCheckTimeout: 5 * time.Second,
		now:                time.Now,
	}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// "ok" or "error"
	Status string `json:"status"`

	// "connected" or "disconnected"
	Database string `json:"database"`

	// Error describes the database failure, if any
	Error string `json:"error,omitempty"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`
}

// DBHealthResponse represents the database check response.
//
// swagger:model DBHealthResponse
type DBHealthResponse struct {
	// "connected" or "error"
	Status string `json:"status"`
	// CurrentTime is the database clock, not the API server's
	CurrentTime string `json:"current_time,omitempty"`
	Version     string `json:"version,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ServeHTTP handles GET /health.
//
// swagger:route GET /health healthCheck
//
// # Health check endpoint
//
// Returns 200 when the database answers a ping, 503 otherwise.
//
// ---
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: System is healthy
//	  schema:
//	    "$ref": "#/definitions/HealthResponse"
//	'503':
//	  description: Database unreachable
//	  schema:
//	    "$ref": "#/definitions/HealthResponse"
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK

	if err := h.db.PingContext(checkCtx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Error = err.Error()
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, logger, status, resp)
}

// Database handles GET /health/db.
func (h *HealthHandler) Database(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	info, err := h.db.ServerInfo(checkCtx)
	if err != nil {
		logger.WarnContext(ctx, "database info check failed", "error", err)
		writeJSON(w, logger, http.StatusServiceUnavailable, DBHealthResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, logger, http.StatusOK, DBHealthResponse{
		Status:      "connected",
		CurrentTime: info.Now.UTC().Format(time.RFC3339),
		Version:     info.Version,
	})
}
