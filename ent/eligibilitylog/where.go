// Code generated by ent, DO NOT EDIT.

package eligibilitylog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContainsFold(FieldID, id))
}

// ButlerName applies equality check predicate on the "butler_name" field. It's identical to ButlerNameEQ.
func ButlerName(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldButlerName, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldToState, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldReason, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldActor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldCreatedAt, v))
}

// ButlerNameEQ applies the EQ predicate on the "butler_name" field.
func ButlerNameEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldButlerName, v))
}

// ButlerNameNEQ applies the NEQ predicate on the "butler_name" field.
func ButlerNameNEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNEQ(FieldButlerName, v))
}

// ButlerNameIn applies the In predicate on the "butler_name" field.
func ButlerNameIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIn(FieldButlerName, vs...))
}

// ButlerNameNotIn applies the NotIn predicate on the "butler_name" field.
func ButlerNameNotIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotIn(FieldButlerName, vs...))
}

// ButlerNameGT applies the GT predicate on the "butler_name" field.
func ButlerNameGT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGT(FieldButlerName, v))
}

// ButlerNameGTE applies the GTE predicate on the "butler_name" field.
func ButlerNameGTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGTE(FieldButlerName, v))
}

// ButlerNameLT applies the LT predicate on the "butler_name" field.
func ButlerNameLT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLT(FieldButlerName, v))
}

// ButlerNameLTE applies the LTE predicate on the "butler_name" field.
func ButlerNameLTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLTE(FieldButlerName, v))
}

// ButlerNameContains applies the Contains predicate on the "butler_name" field.
func ButlerNameContains(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContains(FieldButlerName, v))
}

// ButlerNameHasPrefix applies the HasPrefix predicate on the "butler_name" field.
func ButlerNameHasPrefix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasPrefix(FieldButlerName, v))
}

// ButlerNameHasSuffix applies the HasSuffix predicate on the "butler_name" field.
func ButlerNameHasSuffix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasSuffix(FieldButlerName, v))
}

// ButlerNameEqualFold applies the EqualFold predicate on the "butler_name" field.
func ButlerNameEqualFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEqualFold(FieldButlerName, v))
}

// ButlerNameContainsFold applies the ContainsFold predicate on the "butler_name" field.
func ButlerNameContainsFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContainsFold(FieldButlerName, v))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLTE(FieldFromState, v))
}

// FromStateContains applies the Contains predicate on the "from_state" field.
func FromStateContains(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContains(FieldFromState, v))
}

// FromStateHasPrefix applies the HasPrefix predicate on the "from_state" field.
func FromStateHasPrefix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasPrefix(FieldFromState, v))
}

// FromStateHasSuffix applies the HasSuffix predicate on the "from_state" field.
func FromStateHasSuffix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasSuffix(FieldFromState, v))
}

// FromStateEqualFold applies the EqualFold predicate on the "from_state" field.
func FromStateEqualFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEqualFold(FieldFromState, v))
}

// FromStateContainsFold applies the ContainsFold predicate on the "from_state" field.
func FromStateContainsFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContainsFold(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLTE(FieldToState, v))
}

// ToStateContains applies the Contains predicate on the "to_state" field.
func ToStateContains(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContains(FieldToState, v))
}

// ToStateHasPrefix applies the HasPrefix predicate on the "to_state" field.
func ToStateHasPrefix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasPrefix(FieldToState, v))
}

// ToStateHasSuffix applies the HasSuffix predicate on the "to_state" field.
func ToStateHasSuffix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasSuffix(FieldToState, v))
}

// ToStateEqualFold applies the EqualFold predicate on the "to_state" field.
func ToStateEqualFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEqualFold(FieldToState, v))
}

// ToStateContainsFold applies the ContainsFold predicate on the "to_state" field.
func ToStateContainsFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContainsFold(FieldToState, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContainsFold(FieldReason, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldHasSuffix(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotNull(FieldActor))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldContainsFold(FieldActor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EligibilityLog) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EligibilityLog) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EligibilityLog) predicate.EligibilityLog {
	return predicate.EligibilityLog(sql.NotPredicates(p))
}
