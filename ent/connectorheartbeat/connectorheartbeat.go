// Code generated by ent, DO NOT EDIT.

package connectorheartbeat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the connectorheartbeat type in the database.
	Label = "connector_heartbeat"
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
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// Table holds the table name of the connectorheartbeat in the database.
	Table = "connector_heartbeat_log"
)

// Columns holds all SQL columns for connectorheartbeat fields.
var Columns = []string{
	FieldID,
	FieldConnectorType,
	FieldEndpointIdentity,
	FieldInstanceID,
	FieldState,
	FieldCounters,
	FieldCheckpoint,
	FieldSentAt,
	FieldReceivedAt,
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
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
)

// OrderOption defines the ordering options for the ConnectorHeartbeat queries.
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

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}
