// Package mcp provides the MCP client infrastructure for butler-to-butler
// calls: a session cache keyed by endpoint URL with pre-reuse health
// probing, plus the streamable HTTP transport with trace propagation.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/homekeep/butlerd/pkg/version"
)

// ClientCache holds one live MCP session per endpoint URL, shared across
// all router calls. Thread-safe; session creation is serialized per
// endpoint so concurrent callers don't stampede a cold endpoint.
type ClientCache struct {
	mu       sync.RWMutex
	sessions map[string]*mcpsdk.ClientSession

	// Per-endpoint mutex for creation and recreation.
	initMu sync.Map // endpoint URL → *sync.Mutex

	logger *slog.Logger
}

// NewClientCache creates an empty cache.
func NewClientCache() *ClientCache {
	return &ClientCache{
		sessions: make(map[string]*mcpsdk.ClientSession),
		logger:   slog.Default(),
	}
}

// Session returns a healthy session for the endpoint, connecting or
// reconnecting as needed. A cached session is probed with a ping before
// reuse; on probe failure it is discarded and recreated.
func (c *ClientCache) Session(ctx context.Context, endpointURL string) (*mcpsdk.ClientSession, error) {
	c.mu.RLock()
	session, exists := c.sessions[endpointURL]
	c.mu.RUnlock()

	if exists {
		probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
		err := session.Ping(probeCtx, nil)
		cancel()
		if err == nil {
			return session, nil
		}
		c.logger.Warn("Cached MCP session failed probe, recreating",
			"endpoint", endpointURL, "error", err)
		c.Invalidate(endpointURL)
	}

	return c.connect(ctx, endpointURL)
}

// connect establishes a session, serialized per endpoint.
func (c *ClientCache) connect(ctx context.Context, endpointURL string) (*mcpsdk.ClientSession, error) {
	muI, _ := c.initMu.LoadOrStore(endpointURL, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	// Another caller may have connected while we waited for the lock.
	c.mu.RLock()
	if session, exists := c.sessions[endpointURL]; exists {
		c.mu.RUnlock()
		return session, nil
	}
	c.mu.RUnlock()

	transport := newTransport(endpointURL)

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		if closer, ok := any(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("connect to %q: %w", endpointURL, err)
	}

	c.mu.Lock()
	c.sessions[endpointURL] = session
	c.mu.Unlock()

	c.logger.Info("MCP endpoint connected", "endpoint", endpointURL)
	return session, nil
}

// CallTool invokes a tool on the endpoint under OperationTimeout.
func (c *ClientCache) CallTool(ctx context.Context, endpointURL, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	session, err := c.Session(ctx, endpointURL)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	return session.CallTool(opCtx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
}

// ListTools returns the endpoint's tool list.
func (c *ClientCache) ListTools(ctx context.Context, endpointURL string) ([]*mcpsdk.Tool, error) {
	session, err := c.Session(ctx, endpointURL)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", endpointURL, err)
	}
	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	return tools, nil
}

// Invalidate drops the cached session for an endpoint, closing it.
func (c *ClientCache) Invalidate(endpointURL string) {
	c.mu.Lock()
	session, exists := c.sessions[endpointURL]
	if exists {
		delete(c.sessions, endpointURL)
	}
	c.mu.Unlock()
	if exists {
		_ = session.Close()
	}
}

// Close shuts down every cached session.
func (c *ClientCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for url, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", url, err)
		}
	}
	c.sessions = make(map[string]*mcpsdk.ClientSession)
	return firstErr
}
