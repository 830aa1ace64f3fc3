// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/approvalrule"
)

// ApprovalRule is the model entity for the ApprovalRule schema.
type ApprovalRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ButlerName holds the value of the "butler_name" field.
	ButlerName string `json:"butler_name,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// Each: {arg, kind: exact|pattern, value}
	ArgConstraints []map[string]interface{} `json:"arg_constraints,omitempty"`
	// RiskTier holds the value of the "risk_tier" field.
	RiskTier approvalrule.RiskTier `json:"risk_tier,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// MaxUses holds the value of the "max_uses" field.
	MaxUses *int `json:"max_uses,omitempty"`
	// Uses holds the value of the "uses" field.
	Uses int `json:"uses,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrule.FieldArgConstraints:
			values[i] = new([]byte)
		case approvalrule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case approvalrule.FieldMaxUses, approvalrule.FieldUses:
			values[i] = new(sql.NullInt64)
		case approvalrule.FieldID, approvalrule.FieldButlerName, approvalrule.FieldToolName, approvalrule.FieldRiskTier:
			values[i] = new(sql.NullString)
		case approvalrule.FieldExpiresAt, approvalrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRule fields.
func (_m *ApprovalRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalrule.FieldButlerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field butler_name", values[i])
			} else if value.Valid {
				_m.ButlerName = value.String
			}
		case approvalrule.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case approvalrule.FieldArgConstraints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field arg_constraints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ArgConstraints); err != nil {
					return fmt.Errorf("unmarshal field arg_constraints: %w", err)
				}
			}
		case approvalrule.FieldRiskTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tier", values[i])
			} else if value.Valid {
				_m.RiskTier = approvalrule.RiskTier(value.String)
			}
		case approvalrule.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case approvalrule.FieldMaxUses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_uses", values[i])
			} else if value.Valid {
				_m.MaxUses = new(int)
				*_m.MaxUses = int(value.Int64)
			}
		case approvalrule.FieldUses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field uses", values[i])
			} else if value.Valid {
				_m.Uses = int(value.Int64)
			}
		case approvalrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case approvalrule.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRule.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApprovalRule.
// Note that you need to call ApprovalRule.Unwrap() before calling this method if this ApprovalRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRule) Update() *ApprovalRuleUpdateOne {
	return NewApprovalRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRule) Unwrap() *ApprovalRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRule) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("butler_name=")
	builder.WriteString(_m.ButlerName)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("arg_constraints=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArgConstraints))
	builder.WriteString(", ")
	builder.WriteString("risk_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskTier))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MaxUses; v != nil {
		builder.WriteString("max_uses=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("uses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Uses))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalRules is a parsable slice of ApprovalRule.
type ApprovalRules []*ApprovalRule
