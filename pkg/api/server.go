// Package api exposes the butler HTTP surface: the ingest endpoint,
// registry registration and heartbeats, connector heartbeat intake,
// approval decisions, and health. The full surface only exists on the
// Switchboard; other butlers serve health alone.
package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/heartbeat"
	"github.com/homekeep/butlerd/pkg/ingest"
	"github.com/homekeep/butlerd/pkg/ingress"
	"github.com/homekeep/butlerd/pkg/registry"
)

// IngestAcceptor accepts ingest.v1 envelopes.
type IngestAcceptor interface {
	Accept(ctx context.Context, env *ingest.Envelope) (*ingest.Receipt, error)
}

// RegistryOps is the registry surface the API exposes.
type RegistryOps interface {
	Register(ctx context.Context, reg registry.Registration) error
	Heartbeat(ctx context.Context, butler string) error
	List(ctx context.Context) ([]*ent.RegistryEntry, error)
	SetQuarantined(ctx context.Context, butler, reason, actor string) error
	Restore(ctx context.Context, butler, actor string) error
}

// ConnectorIntake accepts connector heartbeats.
type ConnectorIntake interface {
	Accept(ctx context.Context, rep heartbeat.Report) error
	List(ctx context.Context) ([]*ent.ConnectorEndpoint, error)
}

// ApprovalDecider records operator decisions on pending actions.
type ApprovalDecider interface {
	Approve(ctx context.Context, actionID, decidedBy string) error
	Reject(ctx context.Context, actionID, decidedBy string) error
}

// BufferHealth reports the ingress buffer state.
type BufferHealth interface {
	Health(ctx context.Context) *ingress.BufferHealth
}

// Ticker runs one scheduler pass over due tasks.
type Ticker interface {
	Tick(ctx context.Context) (int, error)
}

// Server is the butler HTTP API.
type Server struct {
	butler *config.ButlerConfig
	db     *sql.DB

	ingest    IngestAcceptor
	registry  RegistryOps
	intake    ConnectorIntake
	approvals ApprovalDecider
	pool      BufferHealth
	ticker    Ticker

	httpServer *http.Server
}

// NewServer creates the API server. Switchboard-only collaborators
// (ingest, registry, intake, approvals, pool) may be nil; their routes
// are simply not mounted.
func NewServer(butler *config.ButlerConfig, db *sql.DB) *Server {
	return &Server{butler: butler, db: db}
}

// WithIngest mounts the ingest endpoint.
func (s *Server) WithIngest(svc IngestAcceptor) *Server { s.ingest = svc; return s }

// WithRegistry mounts the registry endpoints.
func (s *Server) WithRegistry(reg RegistryOps) *Server { s.registry = reg; return s }

// WithConnectorIntake mounts connector heartbeat intake.
func (s *Server) WithConnectorIntake(in ConnectorIntake) *Server { s.intake = in; return s }

// WithApprovals mounts approval decision endpoints.
func (s *Server) WithApprovals(d ApprovalDecider) *Server { s.approvals = d; return s }

// WithBufferHealth includes ingress buffer state in /health.
func (s *Server) WithBufferHealth(p BufferHealth) *Server { s.pool = p; return s }

// WithTicker mounts the manual scheduler tick endpoint.
func (s *Server) WithTicker(t Ticker) *Server { s.ticker = t; return s }

// Routes builds the gin engine with every mounted route.
func (s *Server) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	if s.ingest != nil {
		v1.POST("/ingest", s.ingestHandler)
	}
	if s.registry != nil {
		v1.POST("/registry/register", s.registerHandler)
		v1.POST("/registry/heartbeat", s.heartbeatHandler)
		v1.GET("/registry", s.listRegistryHandler)
		v1.POST("/registry/:butler/quarantine", s.quarantineHandler)
		v1.POST("/registry/:butler/restore", s.restoreHandler)
	}
	if s.intake != nil {
		v1.POST("/connectors/heartbeat", s.connectorHeartbeatHandler)
		v1.GET("/connectors", s.listConnectorsHandler)
	}
	if s.approvals != nil {
		v1.POST("/approvals/:action_id/approve", s.approveHandler)
		v1.POST("/approvals/:action_id/reject", s.rejectHandler)
	}
	if s.ticker != nil {
		v1.POST("/tick", s.tickHandler)
	}
	return r
}

// Start serves on the given port until Shutdown.
func (s *Server) Start(port int) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
