// Package heartbeat handles connector liveness: the Switchboard's
// intake for connector heartbeats, auto-registration of new connector
// endpoints, and the hourly stats rollup job.
package heartbeat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/connectorendpoint"
)

// ValidationError marks a malformed heartbeat report.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Report is one connector heartbeat payload.
type Report struct {
	ConnectorType    string           `json:"connector_type"`
	EndpointIdentity string           `json:"endpoint_identity"`
	InstanceID       string           `json:"instance_id,omitempty"`
	State            string           `json:"state"` // healthy | degraded | error
	Counters         map[string]int64 `json:"counters,omitempty"`
	Checkpoint       map[string]any   `json:"checkpoint,omitempty"`
	SentAt           time.Time        `json:"sent_at"`
}

// Intake ingests connector heartbeats into the shared schema.
type Intake struct {
	client *ent.Client
}

// NewIntake creates the heartbeat intake.
func NewIntake(client *ent.Client) *Intake {
	return &Intake{client: client}
}

// Accept records one heartbeat. Unknown connectors are auto-created;
// a connector does not need prior registration to start reporting.
func (i *Intake) Accept(ctx context.Context, rep Report) error {
	if rep.ConnectorType == "" || rep.EndpointIdentity == "" {
		return &ValidationError{Message: "connector_type and endpoint_identity are required"}
	}
	state := rep.State
	switch state {
	case "healthy", "degraded", "error":
	default:
		return &ValidationError{Message: fmt.Sprintf("invalid connector state %q", state)}
	}

	now := time.Now()
	existing, err := i.client.ConnectorEndpoint.Query().
		Where(
			connectorendpoint.ConnectorTypeEQ(rep.ConnectorType),
			connectorendpoint.EndpointIdentityEQ(rep.EndpointIdentity),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		create := i.client.ConnectorEndpoint.Create().
			SetID(uuid.NewString()).
			SetConnectorType(rep.ConnectorType).
			SetEndpointIdentity(rep.EndpointIdentity).
			SetState(connectorendpoint.State(state)).
			SetLastSeenAt(now)
		if rep.InstanceID != "" {
			create.SetInstanceID(rep.InstanceID)
		}
		if rep.Counters != nil {
			create.SetCounters(rep.Counters)
		}
		if rep.Checkpoint != nil {
			create.SetCheckpoint(rep.Checkpoint)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("auto-create connector endpoint: %w", err)
		}
		slog.Info("New connector endpoint registered",
			"connector_type", rep.ConnectorType,
			"endpoint_identity", rep.EndpointIdentity)
	case err != nil:
		return fmt.Errorf("query connector endpoint: %w", err)
	default:
		update := i.client.ConnectorEndpoint.UpdateOneID(existing.ID).
			SetState(connectorendpoint.State(state)).
			SetLastSeenAt(now)
		if rep.InstanceID != "" {
			update.SetInstanceID(rep.InstanceID)
		}
		if rep.Counters != nil {
			update.SetCounters(rep.Counters)
		}
		if rep.Checkpoint != nil {
			update.SetCheckpoint(rep.Checkpoint)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("update connector endpoint: %w", err)
		}
	}

	sentAt := rep.SentAt
	if sentAt.IsZero() {
		sentAt = now
	}
	logEntry := i.client.ConnectorHeartbeat.Create().
		SetID(uuid.NewString()).
		SetConnectorType(rep.ConnectorType).
		SetEndpointIdentity(rep.EndpointIdentity).
		SetState(state).
		SetSentAt(sentAt)
	if rep.InstanceID != "" {
		logEntry.SetInstanceID(rep.InstanceID)
	}
	if rep.Counters != nil {
		logEntry.SetCounters(rep.Counters)
	}
	if rep.Checkpoint != nil {
		logEntry.SetCheckpoint(rep.Checkpoint)
	}
	if err := logEntry.Exec(ctx); err != nil {
		return fmt.Errorf("append heartbeat log: %w", err)
	}
	return nil
}

// List returns all known connector endpoints for the ops surface.
func (i *Intake) List(ctx context.Context) ([]*ent.ConnectorEndpoint, error) {
	return i.client.ConnectorEndpoint.Query().
		Order(ent.Asc(connectorendpoint.FieldConnectorType, connectorendpoint.FieldEndpointIdentity)).
		All(ctx)
}
