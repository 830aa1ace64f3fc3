// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/pendingaction"
)

// PendingAction is the model entity for the PendingAction schema.
type PendingAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ButlerName holds the value of the "butler_name" field.
	ButlerName string `json:"butler_name,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// ToolArgs holds the value of the "tool_args" field.
	ToolArgs map[string]interface{} `json:"tool_args,omitempty"`
	// Status holds the value of the "status" field.
	Status pendingaction.Status `json:"status,omitempty"`
	// RiskTier holds the value of the "risk_tier" field.
	RiskTier pendingaction.RiskTier `json:"risk_tier,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// DecidedBy holds the value of the "decided_by" field.
	DecidedBy *string `json:"decided_by,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Null until executed; replayed on duplicate execute calls
	ExecutionResult map[string]interface{} `json:"execution_result,omitempty"`
	// Session whose tool call was intercepted
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendingaction.FieldToolArgs, pendingaction.FieldExecutionResult:
			values[i] = new([]byte)
		case pendingaction.FieldID, pendingaction.FieldButlerName, pendingaction.FieldToolName, pendingaction.FieldStatus, pendingaction.FieldRiskTier, pendingaction.FieldDecidedBy, pendingaction.FieldSessionID:
			values[i] = new(sql.NullString)
		case pendingaction.FieldCreatedAt, pendingaction.FieldDecidedAt, pendingaction.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingAction fields.
func (_m *PendingAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendingaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pendingaction.FieldButlerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field butler_name", values[i])
			} else if value.Valid {
				_m.ButlerName = value.String
			}
		case pendingaction.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case pendingaction.FieldToolArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolArgs); err != nil {
					return fmt.Errorf("unmarshal field tool_args: %w", err)
				}
			}
		case pendingaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pendingaction.Status(value.String)
			}
		case pendingaction.FieldRiskTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tier", values[i])
			} else if value.Valid {
				_m.RiskTier = pendingaction.RiskTier(value.String)
			}
		case pendingaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pendingaction.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case pendingaction.FieldDecidedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decided_by", values[i])
			} else if value.Valid {
				_m.DecidedBy = new(string)
				*_m.DecidedBy = value.String
			}
		case pendingaction.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case pendingaction.FieldExecutionResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field execution_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutionResult); err != nil {
					return fmt.Errorf("unmarshal field execution_result: %w", err)
				}
			}
		case pendingaction.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PendingAction.
// This includes values selected through modifiers, order, etc.
func (_m *PendingAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PendingAction.
// Note that you need to call PendingAction.Unwrap() before calling this method if this PendingAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingAction) Update() *PendingActionUpdateOne {
	return NewPendingActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingAction) Unwrap() *PendingAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingAction) String() string {
	var builder strings.Builder
	builder.WriteString("PendingAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("butler_name=")
	builder.WriteString(_m.ButlerName)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("tool_args=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolArgs))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("risk_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskTier))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DecidedBy; v != nil {
		builder.WriteString("decided_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("execution_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionResult))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// PendingActions is a parsable slice of PendingAction.
type PendingActions []*PendingAction
