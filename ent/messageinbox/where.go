// Code generated by ent, DO NOT EDIT.

package messageinbox

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldID, id))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldDedupeKey, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldChannel, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldProvider, v))
}

// EndpointIdentity applies equality check predicate on the "endpoint_identity" field. It's identical to EndpointIdentityEQ.
func EndpointIdentity(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldEndpointIdentity, v))
}

// SenderIdentity applies equality check predicate on the "sender_identity" field. It's identical to SenderIdentityEQ.
func SenderIdentity(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldSenderIdentity, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldContentType, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldBody, v))
}

// NormalizedText applies equality check predicate on the "normalized_text" field. It's identical to NormalizedTextEQ.
func NormalizedText(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldNormalizedText, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldIdempotencyKey, v))
}

// ThreadTarget applies equality check predicate on the "thread_target" field. It's identical to ThreadTargetEQ.
func ThreadTarget(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldThreadTarget, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldSentAt, v))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldObservedAt, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldDedupeKey, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldChannel, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldProvider, v))
}

// EndpointIdentityEQ applies the EQ predicate on the "endpoint_identity" field.
func EndpointIdentityEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldEndpointIdentity, v))
}

// EndpointIdentityNEQ applies the NEQ predicate on the "endpoint_identity" field.
func EndpointIdentityNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldEndpointIdentity, v))
}

// EndpointIdentityIn applies the In predicate on the "endpoint_identity" field.
func EndpointIdentityIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldEndpointIdentity, vs...))
}

// EndpointIdentityNotIn applies the NotIn predicate on the "endpoint_identity" field.
func EndpointIdentityNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldEndpointIdentity, vs...))
}

// EndpointIdentityGT applies the GT predicate on the "endpoint_identity" field.
func EndpointIdentityGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldEndpointIdentity, v))
}

// EndpointIdentityGTE applies the GTE predicate on the "endpoint_identity" field.
func EndpointIdentityGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldEndpointIdentity, v))
}

// EndpointIdentityLT applies the LT predicate on the "endpoint_identity" field.
func EndpointIdentityLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldEndpointIdentity, v))
}

// EndpointIdentityLTE applies the LTE predicate on the "endpoint_identity" field.
func EndpointIdentityLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldEndpointIdentity, v))
}

// EndpointIdentityContains applies the Contains predicate on the "endpoint_identity" field.
func EndpointIdentityContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldEndpointIdentity, v))
}

// EndpointIdentityHasPrefix applies the HasPrefix predicate on the "endpoint_identity" field.
func EndpointIdentityHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldEndpointIdentity, v))
}

// EndpointIdentityHasSuffix applies the HasSuffix predicate on the "endpoint_identity" field.
func EndpointIdentityHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldEndpointIdentity, v))
}

// EndpointIdentityEqualFold applies the EqualFold predicate on the "endpoint_identity" field.
func EndpointIdentityEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldEndpointIdentity, v))
}

// EndpointIdentityContainsFold applies the ContainsFold predicate on the "endpoint_identity" field.
func EndpointIdentityContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldEndpointIdentity, v))
}

// SenderIdentityEQ applies the EQ predicate on the "sender_identity" field.
func SenderIdentityEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldSenderIdentity, v))
}

// SenderIdentityNEQ applies the NEQ predicate on the "sender_identity" field.
func SenderIdentityNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldSenderIdentity, v))
}

// SenderIdentityIn applies the In predicate on the "sender_identity" field.
func SenderIdentityIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldSenderIdentity, vs...))
}

// SenderIdentityNotIn applies the NotIn predicate on the "sender_identity" field.
func SenderIdentityNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldSenderIdentity, vs...))
}

// SenderIdentityGT applies the GT predicate on the "sender_identity" field.
func SenderIdentityGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldSenderIdentity, v))
}

// SenderIdentityGTE applies the GTE predicate on the "sender_identity" field.
func SenderIdentityGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldSenderIdentity, v))
}

// SenderIdentityLT applies the LT predicate on the "sender_identity" field.
func SenderIdentityLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldSenderIdentity, v))
}

// SenderIdentityLTE applies the LTE predicate on the "sender_identity" field.
func SenderIdentityLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldSenderIdentity, v))
}

// SenderIdentityContains applies the Contains predicate on the "sender_identity" field.
func SenderIdentityContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldSenderIdentity, v))
}

// SenderIdentityHasPrefix applies the HasPrefix predicate on the "sender_identity" field.
func SenderIdentityHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldSenderIdentity, v))
}

// SenderIdentityHasSuffix applies the HasSuffix predicate on the "sender_identity" field.
func SenderIdentityHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldSenderIdentity, v))
}

// SenderIdentityEqualFold applies the EqualFold predicate on the "sender_identity" field.
func SenderIdentityEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldSenderIdentity, v))
}

// SenderIdentityContainsFold applies the ContainsFold predicate on the "sender_identity" field.
func SenderIdentityContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldSenderIdentity, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldContentType, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldBody, v))
}

// NormalizedTextEQ applies the EQ predicate on the "normalized_text" field.
func NormalizedTextEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldNormalizedText, v))
}

// NormalizedTextNEQ applies the NEQ predicate on the "normalized_text" field.
func NormalizedTextNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldNormalizedText, v))
}

// NormalizedTextIn applies the In predicate on the "normalized_text" field.
func NormalizedTextIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldNormalizedText, vs...))
}

// NormalizedTextNotIn applies the NotIn predicate on the "normalized_text" field.
func NormalizedTextNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldNormalizedText, vs...))
}

// NormalizedTextGT applies the GT predicate on the "normalized_text" field.
func NormalizedTextGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldNormalizedText, v))
}

// NormalizedTextGTE applies the GTE predicate on the "normalized_text" field.
func NormalizedTextGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldNormalizedText, v))
}

// NormalizedTextLT applies the LT predicate on the "normalized_text" field.
func NormalizedTextLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldNormalizedText, v))
}

// NormalizedTextLTE applies the LTE predicate on the "normalized_text" field.
func NormalizedTextLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldNormalizedText, v))
}

// NormalizedTextContains applies the Contains predicate on the "normalized_text" field.
func NormalizedTextContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldNormalizedText, v))
}

// NormalizedTextHasPrefix applies the HasPrefix predicate on the "normalized_text" field.
func NormalizedTextHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldNormalizedText, v))
}

// NormalizedTextHasSuffix applies the HasSuffix predicate on the "normalized_text" field.
func NormalizedTextHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldNormalizedText, v))
}

// NormalizedTextIsNil applies the IsNil predicate on the "normalized_text" field.
func NormalizedTextIsNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIsNull(FieldNormalizedText))
}

// NormalizedTextNotNil applies the NotNil predicate on the "normalized_text" field.
func NormalizedTextNotNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotNull(FieldNormalizedText))
}

// NormalizedTextEqualFold applies the EqualFold predicate on the "normalized_text" field.
func NormalizedTextEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldNormalizedText, v))
}

// NormalizedTextContainsFold applies the ContainsFold predicate on the "normalized_text" field.
func NormalizedTextContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldNormalizedText, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// ThreadTargetEQ applies the EQ predicate on the "thread_target" field.
func ThreadTargetEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldThreadTarget, v))
}

// ThreadTargetNEQ applies the NEQ predicate on the "thread_target" field.
func ThreadTargetNEQ(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldThreadTarget, v))
}

// ThreadTargetIn applies the In predicate on the "thread_target" field.
func ThreadTargetIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldThreadTarget, vs...))
}

// ThreadTargetNotIn applies the NotIn predicate on the "thread_target" field.
func ThreadTargetNotIn(vs ...string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldThreadTarget, vs...))
}

// ThreadTargetGT applies the GT predicate on the "thread_target" field.
func ThreadTargetGT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldThreadTarget, v))
}

// ThreadTargetGTE applies the GTE predicate on the "thread_target" field.
func ThreadTargetGTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldThreadTarget, v))
}

// ThreadTargetLT applies the LT predicate on the "thread_target" field.
func ThreadTargetLT(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldThreadTarget, v))
}

// ThreadTargetLTE applies the LTE predicate on the "thread_target" field.
func ThreadTargetLTE(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldThreadTarget, v))
}

// ThreadTargetContains applies the Contains predicate on the "thread_target" field.
func ThreadTargetContains(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContains(FieldThreadTarget, v))
}

// ThreadTargetHasPrefix applies the HasPrefix predicate on the "thread_target" field.
func ThreadTargetHasPrefix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasPrefix(FieldThreadTarget, v))
}

// ThreadTargetHasSuffix applies the HasSuffix predicate on the "thread_target" field.
func ThreadTargetHasSuffix(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldHasSuffix(FieldThreadTarget, v))
}

// ThreadTargetIsNil applies the IsNil predicate on the "thread_target" field.
func ThreadTargetIsNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIsNull(FieldThreadTarget))
}

// ThreadTargetNotNil applies the NotNil predicate on the "thread_target" field.
func ThreadTargetNotNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotNull(FieldThreadTarget))
}

// ThreadTargetEqualFold applies the EqualFold predicate on the "thread_target" field.
func ThreadTargetEqualFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEqualFold(FieldThreadTarget, v))
}

// ThreadTargetContainsFold applies the ContainsFold predicate on the "thread_target" field.
func ThreadTargetContainsFold(v string) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldContainsFold(FieldThreadTarget, v))
}

// PolicyTierEQ applies the EQ predicate on the "policy_tier" field.
func PolicyTierEQ(v PolicyTier) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldPolicyTier, v))
}

// PolicyTierNEQ applies the NEQ predicate on the "policy_tier" field.
func PolicyTierNEQ(v PolicyTier) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldPolicyTier, v))
}

// PolicyTierIn applies the In predicate on the "policy_tier" field.
func PolicyTierIn(vs ...PolicyTier) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldPolicyTier, vs...))
}

// PolicyTierNotIn applies the NotIn predicate on the "policy_tier" field.
func PolicyTierNotIn(vs ...PolicyTier) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldPolicyTier, vs...))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldSentAt, v))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldLTE(FieldObservedAt, v))
}

// ClassificationIsNil applies the IsNil predicate on the "classification" field.
func ClassificationIsNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIsNull(FieldClassification))
}

// ClassificationNotNil applies the NotNil predicate on the "classification" field.
func ClassificationNotNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotNull(FieldClassification))
}

// RoutingResultsIsNil applies the IsNil predicate on the "routing_results" field.
func RoutingResultsIsNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIsNull(FieldRoutingResults))
}

// RoutingResultsNotNil applies the NotNil predicate on the "routing_results" field.
func RoutingResultsNotNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotNull(FieldRoutingResults))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotIn(FieldStatus, vs...))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.MessageInbox {
	return predicate.MessageInbox(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageInbox) predicate.MessageInbox {
	return predicate.MessageInbox(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageInbox) predicate.MessageInbox {
	return predicate.MessageInbox(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageInbox) predicate.MessageInbox {
	return predicate.MessageInbox(sql.NotPredicates(p))
}
