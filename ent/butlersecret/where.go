// Code generated by ent, DO NOT EDIT.

package butlersecret

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldContainsFold(FieldID, id))
}

// ButlerName applies equality check predicate on the "butler_name" field. It's identical to ButlerNameEQ.
func ButlerName(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldButlerName, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldKey, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldValue, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldUpdatedAt, v))
}

// ButlerNameEQ applies the EQ predicate on the "butler_name" field.
func ButlerNameEQ(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldButlerName, v))
}

// ButlerNameNEQ applies the NEQ predicate on the "butler_name" field.
func ButlerNameNEQ(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNEQ(FieldButlerName, v))
}

// ButlerNameIn applies the In predicate on the "butler_name" field.
func ButlerNameIn(vs ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldIn(FieldButlerName, vs...))
}

// ButlerNameNotIn applies the NotIn predicate on the "butler_name" field.
func ButlerNameNotIn(vs ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNotIn(FieldButlerName, vs...))
}

// ButlerNameGT applies the GT predicate on the "butler_name" field.
func ButlerNameGT(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGT(FieldButlerName, v))
}

// ButlerNameGTE applies the GTE predicate on the "butler_name" field.
func ButlerNameGTE(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGTE(FieldButlerName, v))
}

// ButlerNameLT applies the LT predicate on the "butler_name" field.
func ButlerNameLT(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLT(FieldButlerName, v))
}

// ButlerNameLTE applies the LTE predicate on the "butler_name" field.
func ButlerNameLTE(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLTE(FieldButlerName, v))
}

// ButlerNameContains applies the Contains predicate on the "butler_name" field.
func ButlerNameContains(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldContains(FieldButlerName, v))
}

// ButlerNameHasPrefix applies the HasPrefix predicate on the "butler_name" field.
func ButlerNameHasPrefix(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldHasPrefix(FieldButlerName, v))
}

// ButlerNameHasSuffix applies the HasSuffix predicate on the "butler_name" field.
func ButlerNameHasSuffix(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldHasSuffix(FieldButlerName, v))
}

// ButlerNameEqualFold applies the EqualFold predicate on the "butler_name" field.
func ButlerNameEqualFold(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEqualFold(FieldButlerName, v))
}

// ButlerNameContainsFold applies the ContainsFold predicate on the "butler_name" field.
func ButlerNameContainsFold(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldContainsFold(FieldButlerName, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldContainsFold(FieldKey, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldContainsFold(FieldValue, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ButlerSecret) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ButlerSecret) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ButlerSecret) predicate.ButlerSecret {
	return predicate.ButlerSecret(sql.NotPredicates(p))
}
