// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports whether the API and its database are up.
type HealthController struct {
	dbHealthChecker func() bool
	startedAt       time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		startedAt:       time.Now().UTC(),
	}
}

// Check handles GET /health requests. The endpoint always answers 200;
// a broken database shows up in the database field, not the status code,
// so load balancers keep routing while operators investigate.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   "dreamwell-api",
		Database:  dbStatus,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
