package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// tickHandler handles POST /api/v1/tick: one manual scheduler pass.
// Tick is idempotent inside a scheduling period, so operators can poke
// it freely.
func (s *Server) tickHandler(c *gin.Context) {
	fired, err := s.ticker.Tick(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"fired": fired})
}
