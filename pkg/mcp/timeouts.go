package mcp

import "time"

// Timeouts for MCP client operations.
const (
	// InitTimeout bounds the initial connect + handshake to an endpoint.
	InitTimeout = 30 * time.Second

	// ProbeTimeout bounds the pre-reuse health probe.
	ProbeTimeout = 5 * time.Second

	// OperationTimeout bounds a single tool call or tool listing.
	OperationTimeout = 120 * time.Second
)
