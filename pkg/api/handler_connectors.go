package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homekeep/butlerd/pkg/heartbeat"
)

type connectorHeartbeatRequest struct {
	ConnectorType    string           `json:"connector_type" binding:"required"`
	EndpointIdentity string           `json:"endpoint_identity" binding:"required"`
	InstanceID       string           `json:"instance_id"`
	State            string           `json:"state" binding:"required"`
	Counters         map[string]int64 `json:"counters"`
	Checkpoint       map[string]any   `json:"checkpoint"`
	SentAt           time.Time        `json:"sent_at"`
}

// connectorHeartbeatHandler handles POST /api/v1/connectors/heartbeat.
// First sight of an endpoint creates its registry row.
func (s *Server) connectorHeartbeatHandler(c *gin.Context) {
	var req connectorHeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
		return
	}

	err := s.intake.Accept(c.Request.Context(), heartbeat.Report{
		ConnectorType:    req.ConnectorType,
		EndpointIdentity: req.EndpointIdentity,
		InstanceID:       req.InstanceID,
		State:            req.State,
		Counters:         req.Counters,
		Checkpoint:       req.Checkpoint,
		SentAt:           req.SentAt,
	})
	if err != nil {
		if heartbeat.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
			return
		}
		slog.Error("Connector heartbeat intake failed",
			"connector_type", req.ConnectorType, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listConnectorsHandler handles GET /api/v1/connectors.
func (s *Server) listConnectorsHandler(c *gin.Context) {
	endpoints, err := s.intake.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
		return
	}

	out := make([]gin.H, 0, len(endpoints))
	for _, e := range endpoints {
		out = append(out, gin.H{
			"connector_type":    e.ConnectorType,
			"endpoint_identity": e.EndpointIdentity,
			"state":             e.State,
			"first_seen_at":     e.FirstSeenAt,
			"last_seen_at":      e.LastSeenAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"connectors": out})
}
