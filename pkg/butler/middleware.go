package butler

import (
	"context"
	"net/http"
)

type contextKey string

// sessionIDKey carries the runtime_session_id from the MCP listener
// into tool handlers, binding tool calls to the spawned session that
// made them.
const sessionIDKey contextKey = "runtime_session_id"

// withSessionBinding lifts the runtime_session_id query parameter into
// the request context. Spawned runtimes get the parameter baked into
// their MCP config URL, so every tool call they make arrives tagged.
func withSessionBinding(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.URL.Query().Get("runtime_session_id"); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), sessionIDKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

func sessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
