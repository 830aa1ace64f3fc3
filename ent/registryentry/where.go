// Code generated by ent, DO NOT EDIT.

package registryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldContainsFold(FieldID, id))
}

// EndpointURL applies equality check predicate on the "endpoint_url" field. It's identical to EndpointURLEQ.
func EndpointURL(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldEndpointURL, v))
}

// RouteContractMin applies equality check predicate on the "route_contract_min" field. It's identical to RouteContractMinEQ.
func RouteContractMin(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldRouteContractMin, v))
}

// RouteContractMax applies equality check predicate on the "route_contract_max" field. It's identical to RouteContractMaxEQ.
func RouteContractMax(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldRouteContractMax, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldDescription, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LivenessTTLS applies equality check predicate on the "liveness_ttl_s" field. It's identical to LivenessTTLSEQ.
func LivenessTTLS(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldLivenessTTLS, v))
}

// QuarantineReason applies equality check predicate on the "quarantine_reason" field. It's identical to QuarantineReasonEQ.
func QuarantineReason(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldQuarantineReason, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldFirstSeenAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// EndpointURLEQ applies the EQ predicate on the "endpoint_url" field.
func EndpointURLEQ(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldEndpointURL, v))
}

// EndpointURLNEQ applies the NEQ predicate on the "endpoint_url" field.
func EndpointURLNEQ(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldEndpointURL, v))
}

// EndpointURLIn applies the In predicate on the "endpoint_url" field.
func EndpointURLIn(vs ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldEndpointURL, vs...))
}

// EndpointURLNotIn applies the NotIn predicate on the "endpoint_url" field.
func EndpointURLNotIn(vs ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldEndpointURL, vs...))
}

// EndpointURLGT applies the GT predicate on the "endpoint_url" field.
func EndpointURLGT(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldEndpointURL, v))
}

// EndpointURLGTE applies the GTE predicate on the "endpoint_url" field.
func EndpointURLGTE(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldEndpointURL, v))
}

// EndpointURLLT applies the LT predicate on the "endpoint_url" field.
func EndpointURLLT(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldEndpointURL, v))
}

// EndpointURLLTE applies the LTE predicate on the "endpoint_url" field.
func EndpointURLLTE(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldEndpointURL, v))
}

// EndpointURLContains applies the Contains predicate on the "endpoint_url" field.
func EndpointURLContains(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldContains(FieldEndpointURL, v))
}

// EndpointURLHasPrefix applies the HasPrefix predicate on the "endpoint_url" field.
func EndpointURLHasPrefix(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldHasPrefix(FieldEndpointURL, v))
}

// EndpointURLHasSuffix applies the HasSuffix predicate on the "endpoint_url" field.
func EndpointURLHasSuffix(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldHasSuffix(FieldEndpointURL, v))
}

// EndpointURLEqualFold applies the EqualFold predicate on the "endpoint_url" field.
func EndpointURLEqualFold(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEqualFold(FieldEndpointURL, v))
}

// EndpointURLContainsFold applies the ContainsFold predicate on the "endpoint_url" field.
func EndpointURLContainsFold(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldContainsFold(FieldEndpointURL, v))
}

// RouteContractMinEQ applies the EQ predicate on the "route_contract_min" field.
func RouteContractMinEQ(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldRouteContractMin, v))
}

// RouteContractMinNEQ applies the NEQ predicate on the "route_contract_min" field.
func RouteContractMinNEQ(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldRouteContractMin, v))
}

// RouteContractMinIn applies the In predicate on the "route_contract_min" field.
func RouteContractMinIn(vs ...int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldRouteContractMin, vs...))
}

// RouteContractMinNotIn applies the NotIn predicate on the "route_contract_min" field.
func RouteContractMinNotIn(vs ...int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldRouteContractMin, vs...))
}

// RouteContractMinGT applies the GT predicate on the "route_contract_min" field.
func RouteContractMinGT(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldRouteContractMin, v))
}

// RouteContractMinGTE applies the GTE predicate on the "route_contract_min" field.
func RouteContractMinGTE(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldRouteContractMin, v))
}

// RouteContractMinLT applies the LT predicate on the "route_contract_min" field.
func RouteContractMinLT(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldRouteContractMin, v))
}

// RouteContractMinLTE applies the LTE predicate on the "route_contract_min" field.
func RouteContractMinLTE(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldRouteContractMin, v))
}

// RouteContractMaxEQ applies the EQ predicate on the "route_contract_max" field.
func RouteContractMaxEQ(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldRouteContractMax, v))
}

// RouteContractMaxNEQ applies the NEQ predicate on the "route_contract_max" field.
func RouteContractMaxNEQ(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldRouteContractMax, v))
}

// RouteContractMaxIn applies the In predicate on the "route_contract_max" field.
func RouteContractMaxIn(vs ...int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldRouteContractMax, vs...))
}

// RouteContractMaxNotIn applies the NotIn predicate on the "route_contract_max" field.
func RouteContractMaxNotIn(vs ...int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldRouteContractMax, vs...))
}

// RouteContractMaxGT applies the GT predicate on the "route_contract_max" field.
func RouteContractMaxGT(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldRouteContractMax, v))
}

// RouteContractMaxGTE applies the GTE predicate on the "route_contract_max" field.
func RouteContractMaxGTE(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldRouteContractMax, v))
}

// RouteContractMaxLT applies the LT predicate on the "route_contract_max" field.
func RouteContractMaxLT(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldRouteContractMax, v))
}

// RouteContractMaxLTE applies the LTE predicate on the "route_contract_max" field.
func RouteContractMaxLTE(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldRouteContractMax, v))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotNull(FieldCapabilities))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldContainsFold(FieldDescription, v))
}

// EligibilityStateEQ applies the EQ predicate on the "eligibility_state" field.
func EligibilityStateEQ(v EligibilityState) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldEligibilityState, v))
}

// EligibilityStateNEQ applies the NEQ predicate on the "eligibility_state" field.
func EligibilityStateNEQ(v EligibilityState) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldEligibilityState, v))
}

// EligibilityStateIn applies the In predicate on the "eligibility_state" field.
func EligibilityStateIn(vs ...EligibilityState) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldEligibilityState, vs...))
}

// EligibilityStateNotIn applies the NotIn predicate on the "eligibility_state" field.
func EligibilityStateNotIn(vs ...EligibilityState) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldEligibilityState, vs...))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// LivenessTTLSEQ applies the EQ predicate on the "liveness_ttl_s" field.
func LivenessTTLSEQ(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldLivenessTTLS, v))
}

// LivenessTTLSNEQ applies the NEQ predicate on the "liveness_ttl_s" field.
func LivenessTTLSNEQ(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldLivenessTTLS, v))
}

// LivenessTTLSIn applies the In predicate on the "liveness_ttl_s" field.
func LivenessTTLSIn(vs ...int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldLivenessTTLS, vs...))
}

// LivenessTTLSNotIn applies the NotIn predicate on the "liveness_ttl_s" field.
func LivenessTTLSNotIn(vs ...int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldLivenessTTLS, vs...))
}

// LivenessTTLSGT applies the GT predicate on the "liveness_ttl_s" field.
func LivenessTTLSGT(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldLivenessTTLS, v))
}

// LivenessTTLSGTE applies the GTE predicate on the "liveness_ttl_s" field.
func LivenessTTLSGTE(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldLivenessTTLS, v))
}

// LivenessTTLSLT applies the LT predicate on the "liveness_ttl_s" field.
func LivenessTTLSLT(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldLivenessTTLS, v))
}

// LivenessTTLSLTE applies the LTE predicate on the "liveness_ttl_s" field.
func LivenessTTLSLTE(v int) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldLivenessTTLS, v))
}

// QuarantineReasonEQ applies the EQ predicate on the "quarantine_reason" field.
func QuarantineReasonEQ(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldQuarantineReason, v))
}

// QuarantineReasonNEQ applies the NEQ predicate on the "quarantine_reason" field.
func QuarantineReasonNEQ(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldQuarantineReason, v))
}

// QuarantineReasonIn applies the In predicate on the "quarantine_reason" field.
func QuarantineReasonIn(vs ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldQuarantineReason, vs...))
}

// QuarantineReasonNotIn applies the NotIn predicate on the "quarantine_reason" field.
func QuarantineReasonNotIn(vs ...string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldQuarantineReason, vs...))
}

// QuarantineReasonGT applies the GT predicate on the "quarantine_reason" field.
func QuarantineReasonGT(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldQuarantineReason, v))
}

// QuarantineReasonGTE applies the GTE predicate on the "quarantine_reason" field.
func QuarantineReasonGTE(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldQuarantineReason, v))
}

// QuarantineReasonLT applies the LT predicate on the "quarantine_reason" field.
func QuarantineReasonLT(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldQuarantineReason, v))
}

// QuarantineReasonLTE applies the LTE predicate on the "quarantine_reason" field.
func QuarantineReasonLTE(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldQuarantineReason, v))
}

// QuarantineReasonContains applies the Contains predicate on the "quarantine_reason" field.
func QuarantineReasonContains(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldContains(FieldQuarantineReason, v))
}

// QuarantineReasonHasPrefix applies the HasPrefix predicate on the "quarantine_reason" field.
func QuarantineReasonHasPrefix(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldHasPrefix(FieldQuarantineReason, v))
}

// QuarantineReasonHasSuffix applies the HasSuffix predicate on the "quarantine_reason" field.
func QuarantineReasonHasSuffix(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldHasSuffix(FieldQuarantineReason, v))
}

// QuarantineReasonIsNil applies the IsNil predicate on the "quarantine_reason" field.
func QuarantineReasonIsNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIsNull(FieldQuarantineReason))
}

// QuarantineReasonNotNil applies the NotNil predicate on the "quarantine_reason" field.
func QuarantineReasonNotNil() predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotNull(FieldQuarantineReason))
}

// QuarantineReasonEqualFold applies the EqualFold predicate on the "quarantine_reason" field.
func QuarantineReasonEqualFold(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEqualFold(FieldQuarantineReason, v))
}

// QuarantineReasonContainsFold applies the ContainsFold predicate on the "quarantine_reason" field.
func QuarantineReasonContainsFold(v string) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldContainsFold(FieldQuarantineReason, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldFirstSeenAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RegistryEntry) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RegistryEntry) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RegistryEntry) predicate.RegistryEntry {
	return predicate.RegistryEntry(sql.NotPredicates(p))
}
