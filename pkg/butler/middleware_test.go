package butler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSessionBinding(t *testing.T) {
	var seen string
	handler := withSessionBinding(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = sessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/mcp?runtime_session_id=sess-42", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "sess-42", seen)

	req = httptest.NewRequest(http.MethodPost, "/mcp", nil)
	seen = "stale"
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, seen)
}
