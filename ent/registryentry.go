// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/registryentry"
)

// RegistryEntry is the model entity for the RegistryEntry schema.
type RegistryEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EndpointURL holds the value of the "endpoint_url" field.
	EndpointURL string `json:"endpoint_url,omitempty"`
	// RouteContractMin holds the value of the "route_contract_min" field.
	RouteContractMin int `json:"route_contract_min,omitempty"`
	// RouteContractMax holds the value of the "route_contract_max" field.
	RouteContractMax int `json:"route_contract_max,omitempty"`
	// Capabilities holds the value of the "capabilities" field.
	Capabilities []string `json:"capabilities,omitempty"`
	// Shown to the classifier when composing the eligible set
	Description string `json:"description,omitempty"`
	// EligibilityState holds the value of the "eligibility_state" field.
	EligibilityState registryentry.EligibilityState `json:"eligibility_state,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// LivenessTTLS holds the value of the "liveness_ttl_s" field.
	LivenessTTLS int `json:"liveness_ttl_s,omitempty"`
	// QuarantineReason holds the value of the "quarantine_reason" field.
	QuarantineReason *string `json:"quarantine_reason,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RegistryEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case registryentry.FieldCapabilities:
			values[i] = new([]byte)
		case registryentry.FieldRouteContractMin, registryentry.FieldRouteContractMax, registryentry.FieldLivenessTTLS:
			values[i] = new(sql.NullInt64)
		case registryentry.FieldID, registryentry.FieldEndpointURL, registryentry.FieldDescription, registryentry.FieldEligibilityState, registryentry.FieldQuarantineReason:
			values[i] = new(sql.NullString)
		case registryentry.FieldLastHeartbeatAt, registryentry.FieldFirstSeenAt, registryentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RegistryEntry fields.
func (_m *RegistryEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case registryentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case registryentry.FieldEndpointURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint_url", values[i])
			} else if value.Valid {
				_m.EndpointURL = value.String
			}
		case registryentry.FieldRouteContractMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field route_contract_min", values[i])
			} else if value.Valid {
				_m.RouteContractMin = int(value.Int64)
			}
		case registryentry.FieldRouteContractMax:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field route_contract_max", values[i])
			} else if value.Valid {
				_m.RouteContractMax = int(value.Int64)
			}
		case registryentry.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case registryentry.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case registryentry.FieldEligibilityState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field eligibility_state", values[i])
			} else if value.Valid {
				_m.EligibilityState = registryentry.EligibilityState(value.String)
			}
		case registryentry.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case registryentry.FieldLivenessTTLS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field liveness_ttl_s", values[i])
			} else if value.Valid {
				_m.LivenessTTLS = int(value.Int64)
			}
		case registryentry.FieldQuarantineReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quarantine_reason", values[i])
			} else if value.Valid {
				_m.QuarantineReason = new(string)
				*_m.QuarantineReason = value.String
			}
		case registryentry.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case registryentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RegistryEntry.
// This includes values selected through modifiers, order, etc.
func (_m *RegistryEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RegistryEntry.
// Note that you need to call RegistryEntry.Unwrap() before calling this method if this RegistryEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RegistryEntry) Update() *RegistryEntryUpdateOne {
	return NewRegistryEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RegistryEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RegistryEntry) Unwrap() *RegistryEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RegistryEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RegistryEntry) String() string {
	var builder strings.Builder
	builder.WriteString("RegistryEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("endpoint_url=")
	builder.WriteString(_m.EndpointURL)
	builder.WriteString(", ")
	builder.WriteString("route_contract_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.RouteContractMin))
	builder.WriteString(", ")
	builder.WriteString("route_contract_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.RouteContractMax))
	builder.WriteString(", ")
	builder.WriteString("capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capabilities))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("eligibility_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.EligibilityState))
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("liveness_ttl_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.LivenessTTLS))
	builder.WriteString(", ")
	if v := _m.QuarantineReason; v != nil {
		builder.WriteString("quarantine_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RegistryEntries is a parsable slice of RegistryEntry.
type RegistryEntries []*RegistryEntry
