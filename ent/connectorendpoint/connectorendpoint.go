// Code generated by ent, DO NOT EDIT.

package connectorendpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the connectorendpoint type in the database.
	Label = "connector_endpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConnectorType holds the string denoting the connector_type field in the database.
	FieldConnectorType = "connector_type"
	// FieldEndpointIdentity holds the string denoting the endpoint_identity field in the database.
	FieldEndpointIdentity = "endpoint_identity"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCounters holds the string denoting the counters field in the database.
	FieldCounters = "counters"
	// FieldCheckpoint holds the string denoting the checkpoint field in the database.
	FieldCheckpoint = "checkpoint"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// Table holds the table name of the connectorendpoint in the database.
	Table = "connector_registry"
)

// Columns holds all SQL columns for connectorendpoint fields.
var Columns = []string{
	FieldID,
	FieldConnectorType,
	FieldEndpointIdentity,
	FieldInstanceID,
	FieldState,
	FieldCounters,
	FieldCheckpoint,
	FieldFirstSeenAt,
	FieldLastSeenAt,
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
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
	// UpdateDefaultLastSeenAt holds the default value on update for the "last_seen_at" field.
	UpdateDefaultLastSeenAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateHealthy is the default value of the State enum.
const DefaultState = StateHealthy

// State values.
const (
	StateHealthy  State = "healthy"
	StateDegraded State = "degraded"
	StateError    State = "error"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateHealthy, StateDegraded, StateError:
		return nil
	default:
		return fmt.Errorf("connectorendpoint: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the ConnectorEndpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConnectorType orders the results by the connector_type field.
func ByConnectorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectorType, opts...).ToFunc()
}

// ByEndpointIdentity orders the results by the endpoint_identity field.
func ByEndpointIdentity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpointIdentity, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}
