// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/butlersecret"
)

// ButlerSecret is the model entity for the ButlerSecret schema.
type ButlerSecret struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ButlerName holds the value of the "butler_name" field.
	ButlerName string `json:"butler_name,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"-"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ButlerSecret) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case butlersecret.FieldID, butlersecret.FieldButlerName, butlersecret.FieldKey, butlersecret.FieldValue:
			values[i] = new(sql.NullString)
		case butlersecret.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ButlerSecret fields.
func (_m *ButlerSecret) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case butlersecret.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case butlersecret.FieldButlerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field butler_name", values[i])
			} else if value.Valid {
				_m.ButlerName = value.String
			}
		case butlersecret.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case butlersecret.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case butlersecret.FieldUpdatedAt:
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

// GetValue returns the ent.Value that was dynamically selected and assigned to the ButlerSecret.
// This includes values selected through modifiers, order, etc.
func (_m *ButlerSecret) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ButlerSecret.
// Note that you need to call ButlerSecret.Unwrap() before calling this method if this ButlerSecret
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ButlerSecret) Update() *ButlerSecretUpdateOne {
	return NewButlerSecretClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ButlerSecret entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ButlerSecret) Unwrap() *ButlerSecret {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ButlerSecret is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ButlerSecret) String() string {
	var builder strings.Builder
	builder.WriteString("ButlerSecret(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("butler_name=")
	builder.WriteString(_m.ButlerName)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("value=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ButlerSecrets is a parsable slice of ButlerSecret.
type ButlerSecrets []*ButlerSecret
