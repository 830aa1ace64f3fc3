package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homekeep/butlerd/pkg/approvals"
)

type decisionRequest struct {
	DecidedBy string `json:"decided_by" binding:"required"`
}

// approveHandler handles POST /api/v1/approvals/:action_id/approve.
func (s *Server) approveHandler(c *gin.Context) {
	s.decide(c, s.approvals.Approve, "approved")
}

// rejectHandler handles POST /api/v1/approvals/:action_id/reject.
func (s *Server) rejectHandler(c *gin.Context) {
	s.decide(c, s.approvals.Reject, "rejected")
}

func (s *Server) decide(c *gin.Context, fn func(ctx context.Context, actionID, decidedBy string) error, outcome string) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
		return
	}

	actionID := c.Param("action_id")
	err := fn(c.Request.Context(), actionID, req.DecidedBy)

	var conflict *approvals.ConflictError
	switch {
	case errors.As(err, &conflict):
		// A concurrent decision won; report the state it left behind.
		c.JSON(http.StatusConflict, gin.H{
			"error":          "conflict_noop",
			"action_id":      actionID,
			"current_status": conflict.CurrentStatus,
		})
	case err != nil:
		slog.Error("Approval decision failed", "action_id", actionID, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
	default:
		c.JSON(http.StatusOK, gin.H{"action_id": actionID, "status": outcome})
	}
}
