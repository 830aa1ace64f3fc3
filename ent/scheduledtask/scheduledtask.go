// Code generated by ent, DO NOT EDIT.

package scheduledtask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduledtask type in the database.
	Label = "scheduled_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldButlerName holds the string denoting the butler_name field in the database.
	FieldButlerName = "butler_name"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCron holds the string denoting the cron field in the database.
	FieldCron = "cron"
	// FieldDispatchMode holds the string denoting the dispatch_mode field in the database.
	FieldDispatchMode = "dispatch_mode"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldJobName holds the string denoting the job_name field in the database.
	FieldJobName = "job_name"
	// FieldJobArgs holds the string denoting the job_args field in the database.
	FieldJobArgs = "job_args"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldLastStatus holds the string denoting the last_status field in the database.
	FieldLastStatus = "last_status"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the scheduledtask in the database.
	Table = "scheduled_tasks"
)

// Columns holds all SQL columns for scheduledtask fields.
var Columns = []string{
	FieldID,
	FieldButlerName,
	FieldName,
	FieldCron,
	FieldDispatchMode,
	FieldPrompt,
	FieldJobName,
	FieldJobArgs,
	FieldEnabled,
	FieldDueAt,
	FieldLastRunAt,
	FieldNextRunAt,
	FieldLastStatus,
	FieldLastError,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// DispatchMode defines the type for the "dispatch_mode" enum field.
type DispatchMode string

// DispatchMode values.
const (
	DispatchModePrompt DispatchMode = "prompt"
	DispatchModeJob    DispatchMode = "job"
)

func (dm DispatchMode) String() string {
	return string(dm)
}

// DispatchModeValidator is a validator for the "dispatch_mode" field enum values. It is called by the builders before save.
func DispatchModeValidator(dm DispatchMode) error {
	switch dm {
	case DispatchModePrompt, DispatchModeJob:
		return nil
	default:
		return fmt.Errorf("scheduledtask: invalid enum value for dispatch_mode field: %q", dm)
	}
}

// OrderOption defines the ordering options for the ScheduledTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByButlerName orders the results by the butler_name field.
func ByButlerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldButlerName, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCron orders the results by the cron field.
func ByCron(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCron, opts...).ToFunc()
}

// ByDispatchMode orders the results by the dispatch_mode field.
func ByDispatchMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchMode, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByJobName orders the results by the job_name field.
func ByJobName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobName, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByLastStatus orders the results by the last_status field.
func ByLastStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStatus, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
