// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/eligibilitylog"
)

// EligibilityLog is the model entity for the EligibilityLog schema.
type EligibilityLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ButlerName holds the value of the "butler_name" field.
	ButlerName string `json:"butler_name,omitempty"`
	// FromState holds the value of the "from_state" field.
	FromState string `json:"from_state,omitempty"`
	// ToState holds the value of the "to_state" field.
	ToState string `json:"to_state,omitempty"`
	// ttl_expired, health_restored, re_registered, route_failures, operator
	Reason string `json:"reason,omitempty"`
	// Operator identity for manual transitions
	Actor string `json:"actor,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EligibilityLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eligibilitylog.FieldID, eligibilitylog.FieldButlerName, eligibilitylog.FieldFromState, eligibilitylog.FieldToState, eligibilitylog.FieldReason, eligibilitylog.FieldActor:
			values[i] = new(sql.NullString)
		case eligibilitylog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EligibilityLog fields.
func (_m *EligibilityLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eligibilitylog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case eligibilitylog.FieldButlerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field butler_name", values[i])
			} else if value.Valid {
				_m.ButlerName = value.String
			}
		case eligibilitylog.FieldFromState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_state", values[i])
			} else if value.Valid {
				_m.FromState = value.String
			}
		case eligibilitylog.FieldToState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_state", values[i])
			} else if value.Valid {
				_m.ToState = value.String
			}
		case eligibilitylog.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case eligibilitylog.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case eligibilitylog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EligibilityLog.
// This includes values selected through modifiers, order, etc.
func (_m *EligibilityLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EligibilityLog.
// Note that you need to call EligibilityLog.Unwrap() before calling this method if this EligibilityLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EligibilityLog) Update() *EligibilityLogUpdateOne {
	return NewEligibilityLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EligibilityLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EligibilityLog) Unwrap() *EligibilityLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EligibilityLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EligibilityLog) String() string {
	var builder strings.Builder
	builder.WriteString("EligibilityLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("butler_name=")
	builder.WriteString(_m.ButlerName)
	builder.WriteString(", ")
	builder.WriteString("from_state=")
	builder.WriteString(_m.FromState)
	builder.WriteString(", ")
	builder.WriteString("to_state=")
	builder.WriteString(_m.ToState)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EligibilityLogs is a parsable slice of EligibilityLog.
type EligibilityLogs []*EligibilityLog
