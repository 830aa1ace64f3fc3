// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/scheduledtask"
)

// ScheduledTask is the model entity for the ScheduledTask schema.
type ScheduledTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ButlerName holds the value of the "butler_name" field.
	ButlerName string `json:"butler_name,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// 5-field UTC cron expression
	Cron string `json:"cron,omitempty"`
	// DispatchMode holds the value of the "dispatch_mode" field.
	DispatchMode scheduledtask.DispatchMode `json:"dispatch_mode,omitempty"`
	// Static prompt for dispatch_mode=prompt
	Prompt string `json:"prompt,omitempty"`
	// Registered native handler for dispatch_mode=job
	JobName string `json:"job_name,omitempty"`
	// JobArgs holds the value of the "job_args" field.
	JobArgs map[string]interface{} `json:"job_args,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// DueAt holds the value of the "due_at" field.
	DueAt *time.Time `json:"due_at,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// NextRunAt holds the value of the "next_run_at" field.
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
	// Outcome of the most recent firing (audit)
	LastStatus string `json:"last_status,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledtask.FieldJobArgs:
			values[i] = new([]byte)
		case scheduledtask.FieldEnabled:
			values[i] = new(sql.NullBool)
		case scheduledtask.FieldID, scheduledtask.FieldButlerName, scheduledtask.FieldName, scheduledtask.FieldCron, scheduledtask.FieldDispatchMode, scheduledtask.FieldPrompt, scheduledtask.FieldJobName, scheduledtask.FieldLastStatus, scheduledtask.FieldLastError:
			values[i] = new(sql.NullString)
		case scheduledtask.FieldDueAt, scheduledtask.FieldLastRunAt, scheduledtask.FieldNextRunAt, scheduledtask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledTask fields.
func (_m *ScheduledTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduledtask.FieldButlerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field butler_name", values[i])
			} else if value.Valid {
				_m.ButlerName = value.String
			}
		case scheduledtask.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case scheduledtask.FieldCron:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron", values[i])
			} else if value.Valid {
				_m.Cron = value.String
			}
		case scheduledtask.FieldDispatchMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dispatch_mode", values[i])
			} else if value.Valid {
				_m.DispatchMode = scheduledtask.DispatchMode(value.String)
			}
		case scheduledtask.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case scheduledtask.FieldJobName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_name", values[i])
			} else if value.Valid {
				_m.JobName = value.String
			}
		case scheduledtask.FieldJobArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field job_args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.JobArgs); err != nil {
					return fmt.Errorf("unmarshal field job_args: %w", err)
				}
			}
		case scheduledtask.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case scheduledtask.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = new(time.Time)
				*_m.DueAt = value.Time
			}
		case scheduledtask.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		case scheduledtask.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				_m.NextRunAt = new(time.Time)
				*_m.NextRunAt = value.Time
			}
		case scheduledtask.FieldLastStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_status", values[i])
			} else if value.Valid {
				_m.LastStatus = value.String
			}
		case scheduledtask.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case scheduledtask.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledTask.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduledTask.
// Note that you need to call ScheduledTask.Unwrap() before calling this method if this ScheduledTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledTask) Update() *ScheduledTaskUpdateOne {
	return NewScheduledTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledTask) Unwrap() *ScheduledTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledTask) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("butler_name=")
	builder.WriteString(_m.ButlerName)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("cron=")
	builder.WriteString(_m.Cron)
	builder.WriteString(", ")
	builder.WriteString("dispatch_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.DispatchMode))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("job_name=")
	builder.WriteString(_m.JobName)
	builder.WriteString(", ")
	builder.WriteString("job_args=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobArgs))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.DueAt; v != nil {
		builder.WriteString("due_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextRunAt; v != nil {
		builder.WriteString("next_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_status=")
	builder.WriteString(_m.LastStatus)
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledTasks is a parsable slice of ScheduledTask.
type ScheduledTasks []*ScheduledTask
