// Code generated by ent, DO NOT EDIT.

package registryentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the registryentry type in the database.
	Label = "registry_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "butler_name"
	// FieldEndpointURL holds the string denoting the endpoint_url field in the database.
	FieldEndpointURL = "endpoint_url"
	// FieldRouteContractMin holds the string denoting the route_contract_min field in the database.
	FieldRouteContractMin = "route_contract_min"
	// FieldRouteContractMax holds the string denoting the route_contract_max field in the database.
	FieldRouteContractMax = "route_contract_max"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEligibilityState holds the string denoting the eligibility_state field in the database.
	FieldEligibilityState = "eligibility_state"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldLivenessTTLS holds the string denoting the liveness_ttl_s field in the database.
	FieldLivenessTTLS = "liveness_ttl_s"
	// FieldQuarantineReason holds the string denoting the quarantine_reason field in the database.
	FieldQuarantineReason = "quarantine_reason"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the registryentry in the database.
	Table = "butler_registry"
)

// Columns holds all SQL columns for registryentry fields.
var Columns = []string{
	FieldID,
	FieldEndpointURL,
	FieldRouteContractMin,
	FieldRouteContractMax,
	FieldCapabilities,
	FieldDescription,
	FieldEligibilityState,
	FieldLastHeartbeatAt,
	FieldLivenessTTLS,
	FieldQuarantineReason,
	FieldFirstSeenAt,
	FieldUpdatedAt,
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
	// DefaultRouteContractMin holds the default value on creation for the "route_contract_min" field.
	DefaultRouteContractMin int
	// DefaultRouteContractMax holds the default value on creation for the "route_contract_max" field.
	DefaultRouteContractMax int
	// DefaultLivenessTTLS holds the default value on creation for the "liveness_ttl_s" field.
	DefaultLivenessTTLS int
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EligibilityState defines the type for the "eligibility_state" enum field.
type EligibilityState string

// EligibilityStateActive is the default value of the EligibilityState enum.
const DefaultEligibilityState = EligibilityStateActive

// EligibilityState values.
const (
	EligibilityStateActive      EligibilityState = "active"
	EligibilityStateQuarantined EligibilityState = "quarantined"
	EligibilityStateStale       EligibilityState = "stale"
)

func (es EligibilityState) String() string {
	return string(es)
}

// EligibilityStateValidator is a validator for the "eligibility_state" field enum values. It is called by the builders before save.
func EligibilityStateValidator(es EligibilityState) error {
	switch es {
	case EligibilityStateActive, EligibilityStateQuarantined, EligibilityStateStale:
		return nil
	default:
		return fmt.Errorf("registryentry: invalid enum value for eligibility_state field: %q", es)
	}
}

// OrderOption defines the ordering options for the RegistryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEndpointURL orders the results by the endpoint_url field.
func ByEndpointURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpointURL, opts...).ToFunc()
}

// ByRouteContractMin orders the results by the route_contract_min field.
func ByRouteContractMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRouteContractMin, opts...).ToFunc()
}

// ByRouteContractMax orders the results by the route_contract_max field.
func ByRouteContractMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRouteContractMax, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByEligibilityState orders the results by the eligibility_state field.
func ByEligibilityState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEligibilityState, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByLivenessTTLS orders the results by the liveness_ttl_s field.
func ByLivenessTTLS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLivenessTTLS, opts...).ToFunc()
}

// ByQuarantineReason orders the results by the quarantine_reason field.
func ByQuarantineReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuarantineReason, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
