// Code generated by ent, DO NOT EDIT.

package pendingaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldID, id))
}

// ButlerName applies equality check predicate on the "butler_name" field. It's identical to ButlerNameEQ.
func ButlerName(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldButlerName, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldToolName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldCreatedAt, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedBy, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldExpiresAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldSessionID, v))
}

// ButlerNameEQ applies the EQ predicate on the "butler_name" field.
func ButlerNameEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldButlerName, v))
}

// ButlerNameNEQ applies the NEQ predicate on the "butler_name" field.
func ButlerNameNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldButlerName, v))
}

// ButlerNameIn applies the In predicate on the "butler_name" field.
func ButlerNameIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldButlerName, vs...))
}

// ButlerNameNotIn applies the NotIn predicate on the "butler_name" field.
func ButlerNameNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldButlerName, vs...))
}

// ButlerNameGT applies the GT predicate on the "butler_name" field.
func ButlerNameGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldButlerName, v))
}

// ButlerNameGTE applies the GTE predicate on the "butler_name" field.
func ButlerNameGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldButlerName, v))
}

// ButlerNameLT applies the LT predicate on the "butler_name" field.
func ButlerNameLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldButlerName, v))
}

// ButlerNameLTE applies the LTE predicate on the "butler_name" field.
func ButlerNameLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldButlerName, v))
}

// ButlerNameContains applies the Contains predicate on the "butler_name" field.
func ButlerNameContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldButlerName, v))
}

// ButlerNameHasPrefix applies the HasPrefix predicate on the "butler_name" field.
func ButlerNameHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldButlerName, v))
}

// ButlerNameHasSuffix applies the HasSuffix predicate on the "butler_name" field.
func ButlerNameHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldButlerName, v))
}

// ButlerNameEqualFold applies the EqualFold predicate on the "butler_name" field.
func ButlerNameEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldButlerName, v))
}

// ButlerNameContainsFold applies the ContainsFold predicate on the "butler_name" field.
func ButlerNameContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldButlerName, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldToolName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldStatus, vs...))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...RiskTier) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldRiskTier, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldCreatedAt, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldDecidedAt))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByContains applies the Contains predicate on the "decided_by" field.
func DecidedByContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldDecidedBy, v))
}

// DecidedByHasPrefix applies the HasPrefix predicate on the "decided_by" field.
func DecidedByHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldDecidedBy, v))
}

// DecidedByHasSuffix applies the HasSuffix predicate on the "decided_by" field.
func DecidedByHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedByEqualFold applies the EqualFold predicate on the "decided_by" field.
func DecidedByEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldDecidedBy, v))
}

// DecidedByContainsFold applies the ContainsFold predicate on the "decided_by" field.
func DecidedByContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldDecidedBy, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldExpiresAt))
}

// ExecutionResultIsNil applies the IsNil predicate on the "execution_result" field.
func ExecutionResultIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldExecutionResult))
}

// ExecutionResultNotNil applies the NotNil predicate on the "execution_result" field.
func ExecutionResultNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldExecutionResult))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.NotPredicates(p))
}
