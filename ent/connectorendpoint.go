// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/connectorendpoint"
)

// ConnectorEndpoint is the model entity for the ConnectorEndpoint schema.
type ConnectorEndpoint struct {
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
	State connectorendpoint.State `json:"state,omitempty"`
	// Latest monotonic counters since connector process start
	Counters map[string]int64 `json:"counters,omitempty"`
	// Checkpoint holds the value of the "checkpoint" field.
	Checkpoint map[string]interface{} `json:"checkpoint,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt   time.Time `json:"last_seen_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConnectorEndpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case connectorendpoint.FieldCounters, connectorendpoint.FieldCheckpoint:
			values[i] = new([]byte)
		case connectorendpoint.FieldID, connectorendpoint.FieldConnectorType, connectorendpoint.FieldEndpointIdentity, connectorendpoint.FieldInstanceID, connectorendpoint.FieldState:
			values[i] = new(sql.NullString)
		case connectorendpoint.FieldFirstSeenAt, connectorendpoint.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConnectorEndpoint fields.
func (_m *ConnectorEndpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case connectorendpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case connectorendpoint.FieldConnectorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_type", values[i])
			} else if value.Valid {
				_m.ConnectorType = value.String
			}
		case connectorendpoint.FieldEndpointIdentity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint_identity", values[i])
			} else if value.Valid {
				_m.EndpointIdentity = value.String
			}
		case connectorendpoint.FieldInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_id", values[i])
			} else if value.Valid {
				_m.InstanceID = value.String
			}
		case connectorendpoint.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = connectorendpoint.State(value.String)
			}
		case connectorendpoint.FieldCounters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field counters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Counters); err != nil {
					return fmt.Errorf("unmarshal field counters: %w", err)
				}
			}
		case connectorendpoint.FieldCheckpoint:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Checkpoint); err != nil {
					return fmt.Errorf("unmarshal field checkpoint: %w", err)
				}
			}
		case connectorendpoint.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case connectorendpoint.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConnectorEndpoint.
// This includes values selected through modifiers, order, etc.
func (_m *ConnectorEndpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConnectorEndpoint.
// Note that you need to call ConnectorEndpoint.Unwrap() before calling this method if this ConnectorEndpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConnectorEndpoint) Update() *ConnectorEndpointUpdateOne {
	return NewConnectorEndpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConnectorEndpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConnectorEndpoint) Unwrap() *ConnectorEndpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConnectorEndpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConnectorEndpoint) String() string {
	var builder strings.Builder
	builder.WriteString("ConnectorEndpoint(")
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
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("counters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Counters))
	builder.WriteString(", ")
	builder.WriteString("checkpoint=")
	builder.WriteString(fmt.Sprintf("%v", _m.Checkpoint))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConnectorEndpoints is a parsable slice of ConnectorEndpoint.
type ConnectorEndpoints []*ConnectorEndpoint
