// Code generated by ent, DO NOT EDIT.

package approvalrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldID, id))
}

// ButlerName applies equality check predicate on the "butler_name" field. It's identical to ButlerNameEQ.
func ButlerName(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldButlerName, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldToolName, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldExpiresAt, v))
}

// MaxUses applies equality check predicate on the "max_uses" field. It's identical to MaxUsesEQ.
func MaxUses(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldMaxUses, v))
}

// Uses applies equality check predicate on the "uses" field. It's identical to UsesEQ.
func Uses(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldUses, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedAt, v))
}

// ButlerNameEQ applies the EQ predicate on the "butler_name" field.
func ButlerNameEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldButlerName, v))
}

// ButlerNameNEQ applies the NEQ predicate on the "butler_name" field.
func ButlerNameNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldButlerName, v))
}

// ButlerNameIn applies the In predicate on the "butler_name" field.
func ButlerNameIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldButlerName, vs...))
}

// ButlerNameNotIn applies the NotIn predicate on the "butler_name" field.
func ButlerNameNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldButlerName, vs...))
}

// ButlerNameGT applies the GT predicate on the "butler_name" field.
func ButlerNameGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldButlerName, v))
}

// ButlerNameGTE applies the GTE predicate on the "butler_name" field.
func ButlerNameGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldButlerName, v))
}

// ButlerNameLT applies the LT predicate on the "butler_name" field.
func ButlerNameLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldButlerName, v))
}

// ButlerNameLTE applies the LTE predicate on the "butler_name" field.
func ButlerNameLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldButlerName, v))
}

// ButlerNameContains applies the Contains predicate on the "butler_name" field.
func ButlerNameContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldButlerName, v))
}

// ButlerNameHasPrefix applies the HasPrefix predicate on the "butler_name" field.
func ButlerNameHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldButlerName, v))
}

// ButlerNameHasSuffix applies the HasSuffix predicate on the "butler_name" field.
func ButlerNameHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldButlerName, v))
}

// ButlerNameEqualFold applies the EqualFold predicate on the "butler_name" field.
func ButlerNameEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldButlerName, v))
}

// ButlerNameContainsFold applies the ContainsFold predicate on the "butler_name" field.
func ButlerNameContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldButlerName, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldContainsFold(FieldToolName, v))
}

// ArgConstraintsIsNil applies the IsNil predicate on the "arg_constraints" field.
func ArgConstraintsIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldArgConstraints))
}

// ArgConstraintsNotNil applies the NotNil predicate on the "arg_constraints" field.
func ArgConstraintsNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldArgConstraints))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...RiskTier) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldRiskTier, vs...))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldExpiresAt))
}

// MaxUsesEQ applies the EQ predicate on the "max_uses" field.
func MaxUsesEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldMaxUses, v))
}

// MaxUsesNEQ applies the NEQ predicate on the "max_uses" field.
func MaxUsesNEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldMaxUses, v))
}

// MaxUsesIn applies the In predicate on the "max_uses" field.
func MaxUsesIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldMaxUses, vs...))
}

// MaxUsesNotIn applies the NotIn predicate on the "max_uses" field.
func MaxUsesNotIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldMaxUses, vs...))
}

// MaxUsesGT applies the GT predicate on the "max_uses" field.
func MaxUsesGT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldMaxUses, v))
}

// MaxUsesGTE applies the GTE predicate on the "max_uses" field.
func MaxUsesGTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldMaxUses, v))
}

// MaxUsesLT applies the LT predicate on the "max_uses" field.
func MaxUsesLT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldMaxUses, v))
}

// MaxUsesLTE applies the LTE predicate on the "max_uses" field.
func MaxUsesLTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldMaxUses, v))
}

// MaxUsesIsNil applies the IsNil predicate on the "max_uses" field.
func MaxUsesIsNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIsNull(FieldMaxUses))
}

// MaxUsesNotNil applies the NotNil predicate on the "max_uses" field.
func MaxUsesNotNil() predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotNull(FieldMaxUses))
}

// UsesEQ applies the EQ predicate on the "uses" field.
func UsesEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldUses, v))
}

// UsesNEQ applies the NEQ predicate on the "uses" field.
func UsesNEQ(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldUses, v))
}

// UsesIn applies the In predicate on the "uses" field.
func UsesIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldUses, vs...))
}

// UsesNotIn applies the NotIn predicate on the "uses" field.
func UsesNotIn(vs ...int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldUses, vs...))
}

// UsesGT applies the GT predicate on the "uses" field.
func UsesGT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldUses, v))
}

// UsesGTE applies the GTE predicate on the "uses" field.
func UsesGTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldUses, v))
}

// UsesLT applies the LT predicate on the "uses" field.
func UsesLT(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldUses, v))
}

// UsesLTE applies the LTE predicate on the "uses" field.
func UsesLTE(v int) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldUses, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRule) predicate.ApprovalRule {
	return predicate.ApprovalRule(sql.NotPredicates(p))
}
