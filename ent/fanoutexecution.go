// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/fanoutexecution"
)

// FanoutExecution is the model entity for the FanoutExecution schema.
type FanoutExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// SubrequestID holds the value of the "subrequest_id" field.
	SubrequestID string `json:"subrequest_id,omitempty"`
	// SegmentID holds the value of the "segment_id" field.
	SegmentID string `json:"segment_id,omitempty"`
	// ButlerName holds the value of the "butler_name" field.
	ButlerName string `json:"butler_name,omitempty"`
	// Status holds the value of the "status" field.
	Status fanoutexecution.Status `json:"status,omitempty"`
	// Canonical route error class when failed
	ErrorKind string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FanoutExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fanoutexecution.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case fanoutexecution.FieldID, fanoutexecution.FieldRequestID, fanoutexecution.FieldSubrequestID, fanoutexecution.FieldSegmentID, fanoutexecution.FieldButlerName, fanoutexecution.FieldStatus, fanoutexecution.FieldErrorKind, fanoutexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case fanoutexecution.FieldStartedAt, fanoutexecution.FieldCompletedAt, fanoutexecution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FanoutExecution fields.
func (_m *FanoutExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fanoutexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case fanoutexecution.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case fanoutexecution.FieldSubrequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subrequest_id", values[i])
			} else if value.Valid {
				_m.SubrequestID = value.String
			}
		case fanoutexecution.FieldSegmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field segment_id", values[i])
			} else if value.Valid {
				_m.SegmentID = value.String
			}
		case fanoutexecution.FieldButlerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field butler_name", values[i])
			} else if value.Valid {
				_m.ButlerName = value.String
			}
		case fanoutexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fanoutexecution.Status(value.String)
			}
		case fanoutexecution.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = value.String
			}
		case fanoutexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case fanoutexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case fanoutexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case fanoutexecution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case fanoutexecution.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FanoutExecution.
// This includes values selected through modifiers, order, etc.
func (_m *FanoutExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FanoutExecution.
// Note that you need to call FanoutExecution.Unwrap() before calling this method if this FanoutExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FanoutExecution) Update() *FanoutExecutionUpdateOne {
	return NewFanoutExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FanoutExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FanoutExecution) Unwrap() *FanoutExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FanoutExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FanoutExecution) String() string {
	var builder strings.Builder
	builder.WriteString("FanoutExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("subrequest_id=")
	builder.WriteString(_m.SubrequestID)
	builder.WriteString(", ")
	builder.WriteString("segment_id=")
	builder.WriteString(_m.SegmentID)
	builder.WriteString(", ")
	builder.WriteString("butler_name=")
	builder.WriteString(_m.ButlerName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_kind=")
	builder.WriteString(_m.ErrorKind)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FanoutExecutions is a parsable slice of FanoutExecution.
type FanoutExecutions []*FanoutExecution
