// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/connectorheartbeat"
)

// ConnectorHeartbeat is the model entity for the ConnectorHeartbeat schema.
type ConnectorHeartbeat struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConnectorType holds the value of the "connector_type" field.
	ConnectorType string `json:"connector_type,omitempty"`
	// EndpointIdentity holds the value of the "endpoint_identity" field.
	EndpointIdentity string `json:"endpoint_identity,omitempty"`
	// InstanceID holds the value of the "instance_id" field.
	InstanceID string `json:"instance_id,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Counters holds the value of the "counters" field.
	Counters map[string]int64 `json:"counters,omitempty"`
	// Checkpoint holds the value of the "checkpoint" field.
	Checkpoint map[string]interface{} `json:"checkpoint,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt time.Time `json:"sent_at,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt   time.Time `json:"received_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConnectorHeartbeat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case connectorheartbeat.FieldCounters, connectorheartbeat.FieldCheckpoint:
			values[i] = new([]byte)
		case connectorheartbeat.FieldID, connectorheartbeat.FieldConnectorType, connectorheartbeat.FieldEndpointIdentity, connectorheartbeat.FieldInstanceID, connectorheartbeat.FieldState:
			values[i] = new(sql.NullString)
		case connectorheartbeat.FieldSentAt, connectorheartbeat.FieldReceivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConnectorHeartbeat fields.
func (_m *ConnectorHeartbeat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case connectorheartbeat.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case connectorheartbeat.FieldConnectorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_type", values[i])
			} else if value.Valid {
				_m.ConnectorType = value.String
			}
		case connectorheartbeat.FieldEndpointIdentity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint_identity", values[i])
			} else if value.Valid {
				_m.EndpointIdentity = value.String
			}
		case connectorheartbeat.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case connectorheartbeat.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case connectorheartbeat.FieldCounters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field counters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Counters); err != nil {
					return fmt.Errorf("unmarshal field counters: %w", err)
				}
			}
		case connectorheartbeat.FieldCheckpoint:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Checkpoint); err != nil {
					return fmt.Errorf("unmarshal field checkpoint: %w", err)
				}
			}
		case connectorheartbeat.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		case connectorheartbeat.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConnectorHeartbeat.
// This includes values selected through modifiers, order, etc.
func (_m *ConnectorHeartbeat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConnectorHeartbeat.
// Note that you need to call ConnectorHeartbeat.Unwrap() before calling this method if this ConnectorHeartbeat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConnectorHeartbeat) Update() *ConnectorHeartbeatUpdateOne {
	return NewConnectorHeartbeatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConnectorHeartbeat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConnectorHeartbeat) Unwrap() *ConnectorHeartbeat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConnectorHeartbeat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConnectorHeartbeat) String() string {
	var builder strings.Builder
	builder.WriteString("ConnectorHeartbeat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("connector_type=")
	builder.WriteString(_m.ConnectorType)
	builder.WriteString(", ")
	builder.WriteString("endpoint_identity=")
	builder.WriteString(_m.EndpointIdentity)
	builder.WriteString(", ")
	builder.WriteString("instance_id=")
	builder.WriteString(_m.InstanceID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("counters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Counters))
	builder.WriteString(", ")
	builder.WriteString("checkpoint=")
	builder.WriteString(fmt.Sprintf("%v", _m.Checkpoint))
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConnectorHeartbeats is a parsable slice of ConnectorHeartbeat.
type ConnectorHeartbeats []*ConnectorHeartbeat
