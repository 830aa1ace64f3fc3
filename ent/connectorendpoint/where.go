// Code generated by ent, DO NOT EDIT.

package connectorendpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldContainsFold(FieldID, id))
}

// ConnectorType applies equality check predicate on the "connector_type" field. It's identical to ConnectorTypeEQ.
func ConnectorType(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldConnectorType, v))
}

// EndpointIdentity applies equality check predicate on the "endpoint_identity" field. It's identical to EndpointIdentityEQ.
func EndpointIdentity(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldEndpointIdentity, v))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldInstanceID, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldLastSeenAt, v))
}

// ConnectorTypeEQ applies the EQ predicate on the "connector_type" field.
func ConnectorTypeEQ(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldConnectorType, v))
}

// ConnectorTypeNEQ applies the NEQ predicate on the "connector_type" field.
func ConnectorTypeNEQ(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNEQ(FieldConnectorType, v))
}

// ConnectorTypeIn applies the In predicate on the "connector_type" field.
func ConnectorTypeIn(vs ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIn(FieldConnectorType, vs...))
}

// ConnectorTypeNotIn applies the NotIn predicate on the "connector_type" field.
func ConnectorTypeNotIn(vs ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotIn(FieldConnectorType, vs...))
}

// ConnectorTypeGT applies the GT predicate on the "connector_type" field.
func ConnectorTypeGT(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGT(FieldConnectorType, v))
}

// ConnectorTypeGTE applies the GTE predicate on the "connector_type" field.
func ConnectorTypeGTE(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGTE(FieldConnectorType, v))
}

// ConnectorTypeLT applies the LT predicate on the "connector_type" field.
func ConnectorTypeLT(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLT(FieldConnectorType, v))
}

// ConnectorTypeLTE applies the LTE predicate on the "connector_type" field.
func ConnectorTypeLTE(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLTE(FieldConnectorType, v))
}

// ConnectorTypeContains applies the Contains predicate on the "connector_type" field.
func ConnectorTypeContains(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldContains(FieldConnectorType, v))
}

// ConnectorTypeHasPrefix applies the HasPrefix predicate on the "connector_type" field.
func ConnectorTypeHasPrefix(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldHasPrefix(FieldConnectorType, v))
}

// ConnectorTypeHasSuffix applies the HasSuffix predicate on the "connector_type" field.
func ConnectorTypeHasSuffix(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldHasSuffix(FieldConnectorType, v))
}

// ConnectorTypeEqualFold applies the EqualFold predicate on the "connector_type" field.
func ConnectorTypeEqualFold(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEqualFold(FieldConnectorType, v))
}

// ConnectorTypeContainsFold applies the ContainsFold predicate on the "connector_type" field.
func ConnectorTypeContainsFold(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldContainsFold(FieldConnectorType, v))
}

// EndpointIdentityEQ applies the EQ predicate on the "endpoint_identity" field.
func EndpointIdentityEQ(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldEndpointIdentity, v))
}

// EndpointIdentityNEQ applies the NEQ predicate on the "endpoint_identity" field.
func EndpointIdentityNEQ(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNEQ(FieldEndpointIdentity, v))
}

// EndpointIdentityIn applies the In predicate on the "endpoint_identity" field.
func EndpointIdentityIn(vs ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIn(FieldEndpointIdentity, vs...))
}

// EndpointIdentityNotIn applies the NotIn predicate on the "endpoint_identity" field.
func EndpointIdentityNotIn(vs ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotIn(FieldEndpointIdentity, vs...))
}

// EndpointIdentityGT applies the GT predicate on the "endpoint_identity" field.
func EndpointIdentityGT(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGT(FieldEndpointIdentity, v))
}

// EndpointIdentityGTE applies the GTE predicate on the "endpoint_identity" field.
func EndpointIdentityGTE(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGTE(FieldEndpointIdentity, v))
}

// EndpointIdentityLT applies the LT predicate on the "endpoint_identity" field.
func EndpointIdentityLT(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLT(FieldEndpointIdentity, v))
}

// EndpointIdentityLTE applies the LTE predicate on the "endpoint_identity" field.
func EndpointIdentityLTE(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLTE(FieldEndpointIdentity, v))
}

// EndpointIdentityContains applies the Contains predicate on the "endpoint_identity" field.
func EndpointIdentityContains(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldContains(FieldEndpointIdentity, v))
}

// EndpointIdentityHasPrefix applies the HasPrefix predicate on the "endpoint_identity" field.
func EndpointIdentityHasPrefix(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldHasPrefix(FieldEndpointIdentity, v))
}

// EndpointIdentityHasSuffix applies the HasSuffix predicate on the "endpoint_identity" field.
func EndpointIdentityHasSuffix(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldHasSuffix(FieldEndpointIdentity, v))
}

// EndpointIdentityEqualFold applies the EqualFold predicate on the "endpoint_identity" field.
func EndpointIdentityEqualFold(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEqualFold(FieldEndpointIdentity, v))
}

// EndpointIdentityContainsFold applies the ContainsFold predicate on the "endpoint_identity" field.
func EndpointIdentityContainsFold(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldContainsFold(FieldEndpointIdentity, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDIsNil applies the IsNil predicate on the "instance_id" field.
func InstanceIDIsNil() predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIsNull(FieldInstanceID))
}

// InstanceIDNotNil applies the NotNil predicate on the "instance_id" field.
func InstanceIDNotNil() predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotNull(FieldInstanceID))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldContainsFold(FieldInstanceID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotIn(FieldState, vs...))
}

// CountersIsNil applies the IsNil predicate on the "counters" field.
func CountersIsNil() predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIsNull(FieldCounters))
}

// CountersNotNil applies the NotNil predicate on the "counters" field.
func CountersNotNil() predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotNull(FieldCounters))
}

// CheckpointIsNil applies the IsNil predicate on the "checkpoint" field.
func CheckpointIsNil() predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIsNull(FieldCheckpoint))
}

// CheckpointNotNil applies the NotNil predicate on the "checkpoint" field.
func CheckpointNotNil() predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotNull(FieldCheckpoint))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.FieldLTE(FieldLastSeenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConnectorEndpoint) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConnectorEndpoint) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConnectorEndpoint) predicate.ConnectorEndpoint {
	return predicate.ConnectorEndpoint(sql.NotPredicates(p))
}
