package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/satwik073/Priscus-server/internal/generation"
	"github.com/satwik073/Priscus-server/internal/storage"
)

// Pinger reports whether the project store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status       string               `json:"status"`
	Timestamp    time.Time            `json:"timestamp"`
	Service      string               `json:"service"`
	Version      string               `json:"version"`
	DB           string               `json:"db,omitempty"`
	Generation   *generation.Snapshot `json:"generation,omitempty"`
	FallbackRate *float64             `json:"fallbackRate,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          Pinger
	metrics     *generation.Metrics
}

func NewHealthHandler(serviceName, version string, db Pinger, metrics *generation.Metrics) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		metrics:     metrics,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		err := h.db.Ping(pingCtx)
		switch {
		case err == nil:
			dbStatus = "up"
		case errors.Is(err, storage.ErrNotConnected):
			dbStatus = "not_connected"
		default:
			dbStatus = "down"
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
	}
	if h.metrics != nil {
		snap := h.metrics.Snapshot()
		rate := snap.FallbackRate()
		resp.Generation = &snap
		resp.FallbackRate = &rate
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
