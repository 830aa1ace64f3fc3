package mcp

import (
	"net/http"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// newTransport creates a streamable HTTP transport for a butler endpoint.
// Every outgoing request carries the caller's trace context so a route
// hop shows up as one span chain across daemons.
func newTransport(endpointURL string) *mcpsdk.StreamableClientTransport {
	return &mcpsdk.StreamableClientTransport{
		Endpoint: endpointURL,
		HTTPClient: &http.Client{
			Transport: &traceInjectTransport{base: http.DefaultTransport},
		},
	}
}

// traceInjectTransport wraps an http.RoundTripper to inject W3C trace
// context headers from the request context.
type traceInjectTransport struct {
	base http.RoundTripper
}

func (t *traceInjectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	otel.GetTextMapPropagator().Inject(req.Context(), propagation.HeaderCarrier(req.Header))
	return t.base.RoundTrip(req)
}
