// Code generated by ent, DO NOT EDIT.

package messageinbox

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the messageinbox type in the database.
	Label = "message_inbox"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldDedupeKey holds the string denoting the dedupe_key field in the database.
	FieldDedupeKey = "dedupe_key"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldEndpointIdentity holds the string denoting the endpoint_identity field in the database.
	FieldEndpointIdentity = "endpoint_identity"
	// FieldSenderIdentity holds the string denoting the sender_identity field in the database.
	FieldSenderIdentity = "sender_identity"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldNormalizedText holds the string denoting the normalized_text field in the database.
	FieldNormalizedText = "normalized_text"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldThreadTarget holds the string denoting the thread_target field in the database.
	FieldThreadTarget = "thread_target"
	// FieldPolicyTier holds the string denoting the policy_tier field in the database.
	FieldPolicyTier = "policy_tier"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldObservedAt holds the string denoting the observed_at field in the database.
	FieldObservedAt = "observed_at"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldRoutingResults holds the string denoting the routing_results field in the database.
	FieldRoutingResults = "routing_results"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the messageinbox in the database.
	Table = "message_inbox"
)

// Columns holds all SQL columns for messageinbox fields.
var Columns = []string{
	FieldID,
	FieldDedupeKey,
	FieldChannel,
	FieldProvider,
	FieldEndpointIdentity,
	FieldSenderIdentity,
	FieldContentType,
	FieldBody,
	FieldNormalizedText,
	FieldIdempotencyKey,
	FieldThreadTarget,
	FieldPolicyTier,
	FieldSentAt,
	FieldObservedAt,
	FieldClassification,
	FieldRoutingResults,
	FieldStatus,
	FieldMetadata,
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
	// DefaultObservedAt holds the default value on creation for the "observed_at" field.
	DefaultObservedAt func() time.Time
)

// PolicyTier defines the type for the "policy_tier" enum field.
type PolicyTier string

// PolicyTierDefault is the default value of the PolicyTier enum.
const DefaultPolicyTier = PolicyTierDefault

// PolicyTier values.
const (
	PolicyTierDefault      PolicyTier = "default"
	PolicyTierInteractive  PolicyTier = "interactive"
	PolicyTierHighPriority PolicyTier = "high_priority"
)

func (pt PolicyTier) String() string {
	return string(pt)
}

// PolicyTierValidator is a validator for the "policy_tier" field enum values. It is called by the builders before save.
func PolicyTierValidator(pt PolicyTier) error {
	switch pt {
	case PolicyTierDefault, PolicyTierInteractive, PolicyTierHighPriority:
		return nil
	default:
		return fmt.Errorf("messageinbox: invalid enum value for policy_tier field: %q", pt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusAccepted is the default value of the Status enum.
const DefaultStatus = StatusAccepted

// Status values.
const (
	StatusAccepted    Status = "accepted"
	StatusClassifying Status = "classifying"
	StatusRouting     Status = "routing"
	StatusRouted      Status = "routed"
	StatusFailed      Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAccepted, StatusClassifying, StatusRouting, StatusRouted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("messageinbox: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MessageInbox queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDedupeKey orders the results by the dedupe_key field.
func ByDedupeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupeKey, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByEndpointIdentity orders the results by the endpoint_identity field.
func ByEndpointIdentity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpointIdentity, opts...).ToFunc()
}

// BySenderIdentity orders the results by the sender_identity field.
func BySenderIdentity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderIdentity, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByNormalizedText orders the results by the normalized_text field.
func ByNormalizedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedText, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByThreadTarget orders the results by the thread_target field.
func ByThreadTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadTarget, opts...).ToFunc()
}

// ByPolicyTier orders the results by the policy_tier field.
func ByPolicyTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyTier, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByObservedAt orders the results by the observed_at field.
func ByObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
