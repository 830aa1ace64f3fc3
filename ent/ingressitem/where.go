// Code generated by ent, DO NOT EDIT.

package ingressitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldRequestID, v))
}

// EnqueuedAt applies equality check predicate on the "enqueued_at" field. It's identical to EnqueuedAtEQ.
func EnqueuedAt(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldEnqueuedAt, v))
}

// LeasedBy applies equality check predicate on the "leased_by" field. It's identical to LeasedByEQ.
func LeasedBy(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldLeasedBy, v))
}

// LeasedUntil applies equality check predicate on the "leased_until" field. It's identical to LeasedUntilEQ.
func LeasedUntil(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldLeasedUntil, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldAttempts, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldContainsFold(FieldRequestID, v))
}

// PriorityTierEQ applies the EQ predicate on the "priority_tier" field.
func PriorityTierEQ(v PriorityTier) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldPriorityTier, v))
}

// PriorityTierNEQ applies the NEQ predicate on the "priority_tier" field.
func PriorityTierNEQ(v PriorityTier) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldPriorityTier, v))
}

// PriorityTierIn applies the In predicate on the "priority_tier" field.
func PriorityTierIn(vs ...PriorityTier) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldPriorityTier, vs...))
}

// PriorityTierNotIn applies the NotIn predicate on the "priority_tier" field.
func PriorityTierNotIn(vs ...PriorityTier) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldPriorityTier, vs...))
}

// EnqueuedAtEQ applies the EQ predicate on the "enqueued_at" field.
func EnqueuedAtEQ(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtNEQ applies the NEQ predicate on the "enqueued_at" field.
func EnqueuedAtNEQ(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtIn applies the In predicate on the "enqueued_at" field.
func EnqueuedAtIn(vs ...time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtNotIn applies the NotIn predicate on the "enqueued_at" field.
func EnqueuedAtNotIn(vs ...time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtGT applies the GT predicate on the "enqueued_at" field.
func EnqueuedAtGT(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGT(FieldEnqueuedAt, v))
}

// EnqueuedAtGTE applies the GTE predicate on the "enqueued_at" field.
func EnqueuedAtGTE(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGTE(FieldEnqueuedAt, v))
}

// EnqueuedAtLT applies the LT predicate on the "enqueued_at" field.
func EnqueuedAtLT(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLT(FieldEnqueuedAt, v))
}

// EnqueuedAtLTE applies the LTE predicate on the "enqueued_at" field.
func EnqueuedAtLTE(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLTE(FieldEnqueuedAt, v))
}

// LeasedByEQ applies the EQ predicate on the "leased_by" field.
func LeasedByEQ(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldLeasedBy, v))
}

// LeasedByNEQ applies the NEQ predicate on the "leased_by" field.
func LeasedByNEQ(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldLeasedBy, v))
}

// LeasedByIn applies the In predicate on the "leased_by" field.
func LeasedByIn(vs ...string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldLeasedBy, vs...))
}

// LeasedByNotIn applies the NotIn predicate on the "leased_by" field.
func LeasedByNotIn(vs ...string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldLeasedBy, vs...))
}

// LeasedByGT applies the GT predicate on the "leased_by" field.
func LeasedByGT(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGT(FieldLeasedBy, v))
}

// LeasedByGTE applies the GTE predicate on the "leased_by" field.
func LeasedByGTE(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGTE(FieldLeasedBy, v))
}

// LeasedByLT applies the LT predicate on the "leased_by" field.
func LeasedByLT(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLT(FieldLeasedBy, v))
}

// LeasedByLTE applies the LTE predicate on the "leased_by" field.
func LeasedByLTE(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLTE(FieldLeasedBy, v))
}

// LeasedByContains applies the Contains predicate on the "leased_by" field.
func LeasedByContains(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldContains(FieldLeasedBy, v))
}

// LeasedByHasPrefix applies the HasPrefix predicate on the "leased_by" field.
func LeasedByHasPrefix(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldHasPrefix(FieldLeasedBy, v))
}

// LeasedByHasSuffix applies the HasSuffix predicate on the "leased_by" field.
func LeasedByHasSuffix(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldHasSuffix(FieldLeasedBy, v))
}

// LeasedByIsNil applies the IsNil predicate on the "leased_by" field.
func LeasedByIsNil() predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIsNull(FieldLeasedBy))
}

// LeasedByNotNil applies the NotNil predicate on the "leased_by" field.
func LeasedByNotNil() predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotNull(FieldLeasedBy))
}

// LeasedByEqualFold applies the EqualFold predicate on the "leased_by" field.
func LeasedByEqualFold(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEqualFold(FieldLeasedBy, v))
}

// LeasedByContainsFold applies the ContainsFold predicate on the "leased_by" field.
func LeasedByContainsFold(v string) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldContainsFold(FieldLeasedBy, v))
}

// LeasedUntilEQ applies the EQ predicate on the "leased_until" field.
func LeasedUntilEQ(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldLeasedUntil, v))
}

// LeasedUntilNEQ applies the NEQ predicate on the "leased_until" field.
func LeasedUntilNEQ(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldLeasedUntil, v))
}

// LeasedUntilIn applies the In predicate on the "leased_until" field.
func LeasedUntilIn(vs ...time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldLeasedUntil, vs...))
}

// LeasedUntilNotIn applies the NotIn predicate on the "leased_until" field.
func LeasedUntilNotIn(vs ...time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldLeasedUntil, vs...))
}

// LeasedUntilGT applies the GT predicate on the "leased_until" field.
func LeasedUntilGT(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGT(FieldLeasedUntil, v))
}

// LeasedUntilGTE applies the GTE predicate on the "leased_until" field.
func LeasedUntilGTE(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGTE(FieldLeasedUntil, v))
}

// LeasedUntilLT applies the LT predicate on the "leased_until" field.
func LeasedUntilLT(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLT(FieldLeasedUntil, v))
}

// LeasedUntilLTE applies the LTE predicate on the "leased_until" field.
func LeasedUntilLTE(v time.Time) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLTE(FieldLeasedUntil, v))
}

// LeasedUntilIsNil applies the IsNil predicate on the "leased_until" field.
func LeasedUntilIsNil() predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIsNull(FieldLeasedUntil))
}

// LeasedUntilNotNil applies the NotNil predicate on the "leased_until" field.
func LeasedUntilNotNil() predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotNull(FieldLeasedUntil))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldLTE(FieldAttempts, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.IngressItem {
	return predicate.IngressItem(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngressItem) predicate.IngressItem {
	return predicate.IngressItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngressItem) predicate.IngressItem {
	return predicate.IngressItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngressItem) predicate.IngressItem {
	return predicate.IngressItem(sql.NotPredicates(p))
}
