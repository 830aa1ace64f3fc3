// Code generated by ent, DO NOT EDIT.

package ingressitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ingressitem type in the database.
	Label = "ingress_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ingress_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldPriorityTier holds the string denoting the priority_tier field in the database.
	FieldPriorityTier = "priority_tier"
	// FieldEnqueuedAt holds the string denoting the enqueued_at field in the database.
	FieldEnqueuedAt = "enqueued_at"
	// FieldLeasedBy holds the string denoting the leased_by field in the database.
	FieldLeasedBy = "leased_by"
	// FieldLeasedUntil holds the string denoting the leased_until field in the database.
	FieldLeasedUntil = "leased_until"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the ingressitem in the database.
	Table = "ingress_buffer"
)

// Columns holds all SQL columns for ingressitem fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldPriorityTier,
	FieldEnqueuedAt,
	FieldLeasedBy,
	FieldLeasedUntil,
	FieldAttempts,
	FieldStatus,
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
	// DefaultEnqueuedAt holds the default value on creation for the "enqueued_at" field.
	DefaultEnqueuedAt func() time.Time
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
)

// PriorityTier defines the type for the "priority_tier" enum field.
type PriorityTier string

// PriorityTierDefault is the default value of the PriorityTier enum.
const DefaultPriorityTier = PriorityTierDefault

// PriorityTier values.
const (
	PriorityTierHighPriority PriorityTier = "high_priority"
	PriorityTierInteractive  PriorityTier = "interactive"
	PriorityTierDefault      PriorityTier = "default"
)

func (pt PriorityTier) String() string {
	return string(pt)
}

// PriorityTierValidator is a validator for the "priority_tier" field enum values. It is called by the builders before save.
func PriorityTierValidator(pt PriorityTier) error {
	switch pt {
	case PriorityTierHighPriority, PriorityTierInteractive, PriorityTierDefault:
		return nil
	default:
		return fmt.Errorf("ingressitem: invalid enum value for priority_tier field: %q", pt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusLeased  Status = "leased"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusLeased, StatusDone, StatusFailed:
		return nil
	default:
		return fmt.Errorf("ingressitem: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the IngressItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByPriorityTier orders the results by the priority_tier field.
func ByPriorityTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityTier, opts...).ToFunc()
}

// ByEnqueuedAt orders the results by the enqueued_at field.
func ByEnqueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnqueuedAt, opts...).ToFunc()
}

// ByLeasedBy orders the results by the leased_by field.
func ByLeasedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeasedBy, opts...).ToFunc()
}

// ByLeasedUntil orders the results by the leased_until field.
func ByLeasedUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeasedUntil, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
