package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homekeep/butlerd/pkg/registry"
)

type registerRequest struct {
	Butler       string   `json:"butler" binding:"required"`
	EndpointURL  string   `json:"endpoint_url" binding:"required"`
	Capabilities []string `json:"capabilities"`
	Description  string   `json:"description"`

	// LivenessTTL in seconds; zero means the registry default.
	LivenessTTL int `json:"liveness_ttl"`
}

// registerHandler handles POST /api/v1/registry/register.
func (s *Server) registerHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
		return
	}

	err := s.registry.Register(c.Request.Context(), registry.Registration{
		Butler:       req.Butler,
		EndpointURL:  req.EndpointURL,
		Capabilities: req.Capabilities,
		Description:  req.Description,
		LivenessTTL:  time.Duration(req.LivenessTTL) * time.Second,
	})
	if err != nil {
		slog.Error("Registration failed", "butler", req.Butler, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"butler": req.Butler, "status": "registered"})
}

type heartbeatRequest struct {
	Butler string `json:"butler" binding:"required"`
}

// heartbeatHandler handles POST /api/v1/registry/heartbeat. Unknown
// butlers get 404 so their reporters stop instead of retrying forever.
func (s *Server) heartbeatHandler(c *gin.Context) {
	var req heartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
		return
	}

	err := s.registry.Heartbeat(c.Request.Context(), req.Butler)
	var unknown *registry.UnknownButlerError
	switch {
	case errors.As(err, &unknown):
		c.JSON(http.StatusNotFound, errorBody("validation_error", err))
	case err != nil:
		slog.Error("Heartbeat failed", "butler", req.Butler, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
	default:
		c.JSON(http.StatusOK, gin.H{"butler": req.Butler, "status": "ok"})
	}
}

// listRegistryHandler handles GET /api/v1/registry.
func (s *Server) listRegistryHandler(c *gin.Context) {
	entries, err := s.registry.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		row := gin.H{
			"butler":       e.ID,
			"endpoint_url": e.EndpointURL,
			"state":        e.EligibilityState,
			"capabilities": e.Capabilities,
		}
		if e.LastHeartbeatAt != nil {
			row["last_heartbeat_at"] = e.LastHeartbeatAt
		}
		out = append(out, row)
	}
	c.JSON(http.StatusOK, gin.H{"butlers": out})
}

type operatorRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Reason string `json:"reason"`
}

// quarantineHandler handles POST /api/v1/registry/:butler/quarantine.
func (s *Server) quarantineHandler(c *gin.Context) {
	var req operatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
		return
	}
	reason := req.Reason
	if reason == "" {
		reason = registry.ReasonOperator
	}

	butler := c.Param("butler")
	if err := s.registry.SetQuarantined(c.Request.Context(), butler, reason, req.Actor); err != nil {
		s.operatorError(c, butler, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"butler": butler, "state": "quarantined"})
}

// restoreHandler handles POST /api/v1/registry/:butler/restore.
func (s *Server) restoreHandler(c *gin.Context) {
	var req operatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
		return
	}

	butler := c.Param("butler")
	if err := s.registry.Restore(c.Request.Context(), butler, req.Actor); err != nil {
		s.operatorError(c, butler, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"butler": butler, "state": "active"})
}

func (s *Server) operatorError(c *gin.Context, butler string, err error) {
	var unknown *registry.UnknownButlerError
	if errors.As(err, &unknown) {
		c.JSON(http.StatusNotFound, errorBody("validation_error", err))
		return
	}
	slog.Error("Registry operator action failed", "butler", butler, "error", err)
	c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
}
