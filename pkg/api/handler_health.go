package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homekeep/butlerd/pkg/database"
	"github.com/homekeep/butlerd/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Only the butler's own components
// are checked; external dependencies are excluded so an unhealthy peer
// cannot get this daemon restarted.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy
	checks := gin.H{}

	if _, err := database.Health(ctx, s.db); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = gin.H{"status": healthStatusUnhealthy, "message": err.Error()}
	} else {
		checks["database"] = gin.H{"status": healthStatusHealthy}
	}

	if s.pool != nil {
		buf := s.pool.Health(ctx)
		bufStatus := healthStatusHealthy
		if buf.PendingDurable < 0 || buf.QueueDepth >= buf.QueueCapacity {
			bufStatus = healthStatusDegraded
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
		}
		checks["ingress"] = gin.H{"status": bufStatus, "buffer": buf}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{
		"status":  status,
		"butler":  s.butler.Name,
		"version": version.GitCommit,
		"checks":  checks,
	})
}
