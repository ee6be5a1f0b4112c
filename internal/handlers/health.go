package handlers

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthResponse reports the state of the system's dependencies.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthHandler serves GET /api/health.
type HealthHandler struct {
	db            *sql.DB
	catalogAPIKey string
}

func NewHealthHandler(db *sql.DB, catalogAPIKey string) *HealthHandler {
	return &HealthHandler{db: db, catalogAPIKey: catalogAPIKey}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	services := make(map[string]string)
	overall := "healthy"

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			services["database"] = "unhealthy: " + err.Error()
			overall = "degraded"
		} else {
			services["database"] = "healthy"
		}
	} else {
		services["database"] = "not_initialized"
		overall = "degraded"
	}

	// The catalog is billed per request, so the check stops at
	// configuration rather than an actual fetch.
	if h.catalogAPIKey != "" {
		services["catalog"] = "configured"
	} else {
		services["catalog"] = "not_configured"
		overall = "degraded"
	}

	statusCode := fiber.StatusOK
	if overall == "degraded" {
		statusCode = fiber.StatusServiceUnavailable
	}
	return c.Status(statusCode).JSON(HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Services:  services,
	})
}
