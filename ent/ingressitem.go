// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/ingressitem"
)

// IngressItem is the model entity for the IngressItem schema.
type IngressItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MessageInbox row this item carries
	RequestID string `json:"request_id,omitempty"`
	// PriorityTier holds the value of the "priority_tier" field.
	PriorityTier ingressitem.PriorityTier `json:"priority_tier,omitempty"`
	// EnqueuedAt holds the value of the "enqueued_at" field.
	EnqueuedAt time.Time `json:"enqueued_at,omitempty"`
	// Worker id holding the lease
	LeasedBy *string `json:"leased_by,omitempty"`
	// LeasedUntil holds the value of the "leased_until" field.
	LeasedUntil *time.Time `json:"leased_until,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Status holds the value of the "status" field.
	Status       ingressitem.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngressItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingressitem.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case ingressitem.FieldID, ingressitem.FieldRequestID, ingressitem.FieldPriorityTier, ingressitem.FieldLeasedBy, ingressitem.FieldStatus:
			values[i] = new(sql.NullString)
		case ingressitem.FieldEnqueuedAt, ingressitem.FieldLeasedUntil:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngressItem fields.
func (_m *IngressItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingressitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ingressitem.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case ingressitem.FieldPriorityTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority_tier", values[i])
			} else if value.Valid {
				_m.PriorityTier = ingressitem.PriorityTier(value.String)
			}
		case ingressitem.FieldEnqueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field enqueued_at", values[i])
			} else if value.Valid {
				_m.EnqueuedAt = value.Time
			}
		case ingressitem.FieldLeasedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field leased_by", values[i])
			} else if value.Valid {
				_m.LeasedBy = new(string)
				*_m.LeasedBy = value.String
			}
		case ingressitem.FieldLeasedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field leased_until", values[i])
			} else if value.Valid {
				_m.LeasedUntil = new(time.Time)
				*_m.LeasedUntil = value.Time
			}
		case ingressitem.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case ingressitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ingressitem.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngressItem.
// This includes values selected through modifiers, order, etc.
func (_m *IngressItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IngressItem.
// Note that you need to call IngressItem.Unwrap() before calling this method if this IngressItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngressItem) Update() *IngressItemUpdateOne {
	return NewIngressItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngressItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngressItem) Unwrap() *IngressItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngressItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngressItem) String() string {
	var builder strings.Builder
	builder.WriteString("IngressItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("priority_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityTier))
	builder.WriteString(", ")
	builder.WriteString("enqueued_at=")
	builder.WriteString(_m.EnqueuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LeasedBy; v != nil {
		builder.WriteString("leased_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeasedUntil; v != nil {
		builder.WriteString("leased_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// IngressItems is a parsable slice of IngressItem.
type IngressItems []*IngressItem
