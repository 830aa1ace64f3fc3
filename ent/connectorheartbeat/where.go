// Code generated by ent, DO NOT EDIT.

package connectorheartbeat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContainsFold(FieldID, id))
}

// ConnectorType applies equality check predicate on the "connector_type" field. It's identical to ConnectorTypeEQ.
func ConnectorType(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldConnectorType, v))
}

// EndpointIdentity applies equality check predicate on the "endpoint_identity" field. It's identical to EndpointIdentityEQ.
func EndpointIdentity(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldEndpointIdentity, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldInstanceID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldState, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldSentAt, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldReceivedAt, v))
}

// ConnectorTypeEQ applies the EQ predicate on the "connector_type" field.
func ConnectorTypeEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldConnectorType, v))
}

// ConnectorTypeNEQ applies the NEQ predicate on the "connector_type" field.
func ConnectorTypeNEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNEQ(FieldConnectorType, v))
}

// ConnectorTypeIn applies the In predicate on the "connector_type" field.
func ConnectorTypeIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIn(FieldConnectorType, vs...))
}

// ConnectorTypeNotIn applies the NotIn predicate on the "connector_type" field.
func ConnectorTypeNotIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotIn(FieldConnectorType, vs...))
}

// ConnectorTypeGT applies the GT predicate on the "connector_type" field.
func ConnectorTypeGT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGT(FieldConnectorType, v))
}

// ConnectorTypeGTE applies the GTE predicate on the "connector_type" field.
func ConnectorTypeGTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGTE(FieldConnectorType, v))
}

// ConnectorTypeLT applies the LT predicate on the "connector_type" field.
func ConnectorTypeLT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLT(FieldConnectorType, v))
}

// ConnectorTypeLTE applies the LTE predicate on the "connector_type" field.
func ConnectorTypeLTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLTE(FieldConnectorType, v))
}

// ConnectorTypeContains applies the Contains predicate on the "connector_type" field.
func ConnectorTypeContains(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContains(FieldConnectorType, v))
}

// ConnectorTypeHasPrefix applies the HasPrefix predicate on the "connector_type" field.
func ConnectorTypeHasPrefix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasPrefix(FieldConnectorType, v))
}

// ConnectorTypeHasSuffix applies the HasSuffix predicate on the "connector_type" field.
func ConnectorTypeHasSuffix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasSuffix(FieldConnectorType, v))
}

// ConnectorTypeEqualFold applies the EqualFold predicate on the "connector_type" field.
func ConnectorTypeEqualFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEqualFold(FieldConnectorType, v))
}

// ConnectorTypeContainsFold applies the ContainsFold predicate on the "connector_type" field.
func ConnectorTypeContainsFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContainsFold(FieldConnectorType, v))
}

// EndpointIdentityEQ applies the EQ predicate on the "endpoint_identity" field.
func EndpointIdentityEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldEndpointIdentity, v))
}

// EndpointIdentityNEQ applies the NEQ predicate on the "endpoint_identity" field.
func EndpointIdentityNEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNEQ(FieldEndpointIdentity, v))
}

// EndpointIdentityIn applies the In predicate on the "endpoint_identity" field.
func EndpointIdentityIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIn(FieldEndpointIdentity, vs...))
}

// EndpointIdentityNotIn applies the NotIn predicate on the "endpoint_identity" field.
func EndpointIdentityNotIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotIn(FieldEndpointIdentity, vs...))
}

// EndpointIdentityGT applies the GT predicate on the "endpoint_identity" field.
func EndpointIdentityGT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGT(FieldEndpointIdentity, v))
}

// EndpointIdentityGTE applies the GTE predicate on the "endpoint_identity" field.
func EndpointIdentityGTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGTE(FieldEndpointIdentity, v))
}

// EndpointIdentityLT applies the LT predicate on the "endpoint_identity" field.
func EndpointIdentityLT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLT(FieldEndpointIdentity, v))
}

// EndpointIdentityLTE applies the LTE predicate on the "endpoint_identity" field.
func EndpointIdentityLTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLTE(FieldEndpointIdentity, v))
}

// EndpointIdentityContains applies the Contains predicate on the "endpoint_identity" field.
func EndpointIdentityContains(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContains(FieldEndpointIdentity, v))
}

// EndpointIdentityHasPrefix applies the HasPrefix predicate on the "endpoint_identity" field.
func EndpointIdentityHasPrefix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasPrefix(FieldEndpointIdentity, v))
}

// EndpointIdentityHasSuffix applies the HasSuffix predicate on the "endpoint_identity" field.
func EndpointIdentityHasSuffix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasSuffix(FieldEndpointIdentity, v))
}

// EndpointIdentityEqualFold applies the EqualFold predicate on the "endpoint_identity" field.
func EndpointIdentityEqualFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEqualFold(FieldEndpointIdentity, v))
}

// EndpointIdentityContainsFold applies the ContainsFold predicate on the "endpoint_identity" field.
func EndpointIdentityContainsFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContainsFold(FieldEndpointIdentity, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDIsNil applies the IsNil predicate on the "instance_id" field.
func InstanceIDIsNil() predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIsNull(FieldInstanceID))
}

// InstanceIDNotNil applies the NotNil predicate on the "instance_id" field.
func InstanceIDNotNil() predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotNull(FieldInstanceID))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContainsFold(FieldInstanceID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldContainsFold(FieldState, v))
}

// CountersIsNil applies the IsNil predicate on the "counters" field.
func CountersIsNil() predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIsNull(FieldCounters))
}

// CountersNotNil applies the NotNil predicate on the "counters" field.
func CountersNotNil() predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotNull(FieldCounters))
}

// CheckpointIsNil applies the IsNil predicate on the "checkpoint" field.
func CheckpointIsNil() predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIsNull(FieldCheckpoint))
}

// CheckpointNotNil applies the NotNil predicate on the "checkpoint" field.
func CheckpointNotNil() predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotNull(FieldCheckpoint))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLTE(FieldSentAt, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.FieldLTE(FieldReceivedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConnectorHeartbeat) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConnectorHeartbeat) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConnectorHeartbeat) predicate.ConnectorHeartbeat {
	return predicate.ConnectorHeartbeat(sql.NotPredicates(p))
}
