package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homekeep/butlerd/pkg/ingest"
)

// ingestHandler handles POST /api/v1/ingest. Envelopes are parsed
// strictly; duplicates are success with duplicate=true in the receipt.
func (s *Server) ingestHandler(c *gin.Context) {
	env, err := ingest.DecodeEnvelope(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
		return
	}

	receipt, err := s.ingest.Accept(c.Request.Context(), env)
	if err != nil {
		if ingest.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, errorBody("validation_error", err))
			return
		}
		slog.Error("Ingest failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
		return
	}

	c.JSON(http.StatusAccepted, receipt)
}

func errorBody(kind string, err error) gin.H {
	return gin.H{"error": kind, "detail": err.Error()}
}
