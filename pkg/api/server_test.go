package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/pkg/approvals"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/heartbeat"
	"github.com/homekeep/butlerd/pkg/ingest"
	"github.com/homekeep/butlerd/pkg/registry"
)

type fakeIngest struct {
	receipt *ingest.Receipt
	err     error
	got     *ingest.Envelope
}

func (f *fakeIngest) Accept(_ context.Context, env *ingest.Envelope) (*ingest.Receipt, error) {
	f.got = env
	return f.receipt, f.err
}

type fakeRegistry struct {
	registered []registry.Registration
	heartbeats []string
	hbErr      error
	quarantined []string
	restored    []string
	opErr       error
}

func (f *fakeRegistry) Register(_ context.Context, reg registry.Registration) error {
	f.registered = append(f.registered, reg)
	return nil
}

func (f *fakeRegistry) Heartbeat(_ context.Context, butler string) error {
	f.heartbeats = append(f.heartbeats, butler)
	return f.hbErr
}

func (f *fakeRegistry) List(context.Context) ([]*ent.RegistryEntry, error) {
	return []*ent.RegistryEntry{{ID: "health", EndpointURL: "http://127.0.0.1:7310/mcp"}}, nil
}

func (f *fakeRegistry) SetQuarantined(_ context.Context, butler, _, _ string) error {
	f.quarantined = append(f.quarantined, butler)
	return f.opErr
}

func (f *fakeRegistry) Restore(_ context.Context, butler, _ string) error {
	f.restored = append(f.restored, butler)
	return f.opErr
}

type fakeIntake struct {
	reports []heartbeat.Report
	err     error
}

func (f *fakeIntake) Accept(_ context.Context, rep heartbeat.Report) error {
	f.reports = append(f.reports, rep)
	return f.err
}

func (f *fakeIntake) List(context.Context) ([]*ent.ConnectorEndpoint, error) {
	return nil, nil
}

type fakeApprovals struct {
	approved []string
	rejected []string
	err      error
}

func (f *fakeApprovals) Approve(_ context.Context, actionID, _ string) error {
	f.approved = append(f.approved, actionID)
	return f.err
}

func (f *fakeApprovals) Reject(_ context.Context, actionID, _ string) error {
	f.rejected = append(f.rejected, actionID)
	return f.err
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func switchboard() *config.ButlerConfig {
	return &config.ButlerConfig{Name: config.ButlerSwitchboard, Port: 7300}
}

func validEnvelope() map[string]any {
	return map[string]any{
		"schema_version": "ingest.v1",
		"source": map[string]any{
			"channel":           "telegram",
			"provider":          "telegram",
			"endpoint_identity": "bot-1",
			"sender_identity":   "user-9",
		},
		"payload": map[string]any{
			"content_type": "text/plain",
			"body":         "water the plants",
			"sent_at":      "2026-08-24T10:00:00+02:00",
		},
		"idempotency_key": "k1",
	}
}

func TestIngestEndpoint(t *testing.T) {
	t.Run("accepted envelope returns 202 receipt", func(t *testing.T) {
		svc := &fakeIngest{receipt: &ingest.Receipt{RequestID: "r1", Status: "accepted"}}
		router := NewServer(switchboard(), nil).WithIngest(svc).Routes()

		w := postJSON(t, router, "/api/v1/ingest", validEnvelope())
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"request_id":"r1"`)
		require.NotNil(t, svc.got)
		assert.Equal(t, "telegram", svc.got.Source.Channel)
	})

	t.Run("unknown top-level field returns 400", func(t *testing.T) {
		svc := &fakeIngest{receipt: &ingest.Receipt{RequestID: "r1"}}
		router := NewServer(switchboard(), nil).WithIngest(svc).Routes()

		env := validEnvelope()
		env["surprise"] = true
		w := postJSON(t, router, "/api/v1/ingest", env)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
		assert.Nil(t, svc.got)
	})

	t.Run("validation failure from service returns 400", func(t *testing.T) {
		svc := &fakeIngest{err: ingest.NewValidationError("validation_error", "bad pairing")}
		router := NewServer(switchboard(), nil).WithIngest(svc).Routes()

		w := postJSON(t, router, "/api/v1/ingest", validEnvelope())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("internal failure returns 500", func(t *testing.T) {
		svc := &fakeIngest{err: assert.AnError}
		router := NewServer(switchboard(), nil).WithIngest(svc).Routes()

		w := postJSON(t, router, "/api/v1/ingest", validEnvelope())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
	})
}

func TestRegistryEndpoints(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		reg := &fakeRegistry{}
		router := NewServer(switchboard(), nil).WithRegistry(reg).Routes()

		w := postJSON(t, router, "/api/v1/registry/register", map[string]any{
			"butler":       "health",
			"endpoint_url": "http://127.0.0.1:7310/mcp",
			"liveness_ttl": 90,
		})
		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, reg.registered, 1)
		assert.Equal(t, "health", reg.registered[0].Butler)
		assert.Equal(t, float64(90), reg.registered[0].LivenessTTL.Seconds())
	})

	t.Run("heartbeat for unknown butler returns 404", func(t *testing.T) {
		reg := &fakeRegistry{hbErr: &registry.UnknownButlerError{Butler: "ghost"}}
		router := NewServer(switchboard(), nil).WithRegistry(reg).Routes()

		w := postJSON(t, router, "/api/v1/registry/heartbeat", map[string]any{"butler": "ghost"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("quarantine and restore", func(t *testing.T) {
		reg := &fakeRegistry{}
		router := NewServer(switchboard(), nil).WithRegistry(reg).Routes()

		w := postJSON(t, router, "/api/v1/registry/health/quarantine", map[string]any{"actor": "ops"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"health"}, reg.quarantined)

		w = postJSON(t, router, "/api/v1/registry/health/restore", map[string]any{"actor": "ops"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"health"}, reg.restored)
	})

	t.Run("list", func(t *testing.T) {
		router := NewServer(switchboard(), nil).WithRegistry(&fakeRegistry{}).Routes()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/registry", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"butler":"health"`)
	})
}

func TestConnectorHeartbeatEndpoint(t *testing.T) {
	t.Run("valid report accepted", func(t *testing.T) {
		intake := &fakeIntake{}
		router := NewServer(switchboard(), nil).WithConnectorIntake(intake).Routes()

		w := postJSON(t, router, "/api/v1/connectors/heartbeat", map[string]any{
			"connector_type":    "telegram",
			"endpoint_identity": "bot-1",
			"state":             "healthy",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, intake.reports, 1)
		assert.Equal(t, "telegram", intake.reports[0].ConnectorType)
	})

	t.Run("invalid state returns 400", func(t *testing.T) {
		intake := &fakeIntake{err: &heartbeat.ValidationError{Message: "invalid connector state"}}
		router := NewServer(switchboard(), nil).WithConnectorIntake(intake).Routes()

		w := postJSON(t, router, "/api/v1/connectors/heartbeat", map[string]any{
			"connector_type":    "telegram",
			"endpoint_identity": "bot-1",
			"state":             "confused",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApprovalEndpoints(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		dec := &fakeApprovals{}
		router := NewServer(switchboard(), nil).WithApprovals(dec).Routes()

		w := postJSON(t, router, "/api/v1/approvals/act-1/approve", map[string]any{"decided_by": "ops"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"act-1"}, dec.approved)
	})

	t.Run("lost race returns 409 with current status", func(t *testing.T) {
		dec := &fakeApprovals{err: &approvals.ConflictError{ActionID: "act-1", CurrentStatus: "rejected"}}
		router := NewServer(switchboard(), nil).WithApprovals(dec).Routes()

		w := postJSON(t, router, "/api/v1/approvals/act-1/approve", map[string]any{"decided_by": "ops"})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"current_status":"rejected"`)
	})

	t.Run("missing decided_by returns 400", func(t *testing.T) {
		router := NewServer(switchboard(), nil).WithApprovals(&fakeApprovals{}).Routes()
		w := postJSON(t, router, "/api/v1/approvals/act-1/reject", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRoutesNotMountedWithoutCollaborators(t *testing.T) {
	router := NewServer(&config.ButlerConfig{Name: "health"}, nil).Routes()

	w := postJSON(t, router, "/api/v1/ingest", validEnvelope())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
