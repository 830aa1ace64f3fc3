// Code generated by ent, DO NOT EDIT.

package fanoutexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the fanoutexecution type in the database.
	Label = "fanout_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldSubrequestID holds the string denoting the subrequest_id field in the database.
	FieldSubrequestID = "subrequest_id"
	// FieldSegmentID holds the string denoting the segment_id field in the database.
	FieldSegmentID = "segment_id"
	// FieldButlerName holds the string denoting the butler_name field in the database.
	FieldButlerName = "butler_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the fanoutexecution in the database.
	Table = "fanout_execution_log"
)

// Columns holds all SQL columns for fanoutexecution fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldSubrequestID,
	FieldSegmentID,
	FieldButlerName,
	FieldStatus,
	FieldErrorKind,
	FieldErrorMessage,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
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
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimeout   Status = "timeout"
	StatusSkipped   Status = "skipped"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCompleted, StatusFailed, StatusTimeout, StatusSkipped, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("fanoutexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FanoutExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// BySubrequestID orders the results by the subrequest_id field.
func BySubrequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubrequestID, opts...).ToFunc()
}

// BySegmentID orders the results by the segment_id field.
func BySegmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentID, opts...).ToFunc()
}

// ByButlerName orders the results by the butler_name field.
func ByButlerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldButlerName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
