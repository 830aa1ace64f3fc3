// Code generated by ent, DO NOT EDIT.

package fanoutexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldRequestID, v))
}

// SubrequestID applies equality check predicate on the "subrequest_id" field. It's identical to SubrequestIDEQ.
func SubrequestID(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldSubrequestID, v))
}

// SegmentID applies equality check predicate on the "segment_id" field. It's identical to SegmentIDEQ.
func SegmentID(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldSegmentID, v))
}

// ButlerName applies equality check predicate on the "butler_name" field. It's identical to ButlerNameEQ.
func ButlerName(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldButlerName, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContainsFold(FieldRequestID, v))
}

// SubrequestIDEQ applies the EQ predicate on the "subrequest_id" field.
func SubrequestIDEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldSubrequestID, v))
}

// SubrequestIDNEQ applies the NEQ predicate on the "subrequest_id" field.
func SubrequestIDNEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldSubrequestID, v))
}

// SubrequestIDIn applies the In predicate on the "subrequest_id" field.
func SubrequestIDIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldSubrequestID, vs...))
}

// SubrequestIDNotIn applies the NotIn predicate on the "subrequest_id" field.
func SubrequestIDNotIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldSubrequestID, vs...))
}

// SubrequestIDGT applies the GT predicate on the "subrequest_id" field.
func SubrequestIDGT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldSubrequestID, v))
}

// SubrequestIDGTE applies the GTE predicate on the "subrequest_id" field.
func SubrequestIDGTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldSubrequestID, v))
}

// SubrequestIDLT applies the LT predicate on the "subrequest_id" field.
func SubrequestIDLT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldSubrequestID, v))
}

// SubrequestIDLTE applies the LTE predicate on the "subrequest_id" field.
func SubrequestIDLTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldSubrequestID, v))
}

// SubrequestIDContains applies the Contains predicate on the "subrequest_id" field.
func SubrequestIDContains(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContains(FieldSubrequestID, v))
}

// SubrequestIDHasPrefix applies the HasPrefix predicate on the "subrequest_id" field.
func SubrequestIDHasPrefix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasPrefix(FieldSubrequestID, v))
}

// SubrequestIDHasSuffix applies the HasSuffix predicate on the "subrequest_id" field.
func SubrequestIDHasSuffix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasSuffix(FieldSubrequestID, v))
}

// SubrequestIDEqualFold applies the EqualFold predicate on the "subrequest_id" field.
func SubrequestIDEqualFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEqualFold(FieldSubrequestID, v))
}

// SubrequestIDContainsFold applies the ContainsFold predicate on the "subrequest_id" field.
func SubrequestIDContainsFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContainsFold(FieldSubrequestID, v))
}

// SegmentIDEQ applies the EQ predicate on the "segment_id" field.
func SegmentIDEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldSegmentID, v))
}

// SegmentIDNEQ applies the NEQ predicate on the "segment_id" field.
func SegmentIDNEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldSegmentID, v))
}

// SegmentIDIn applies the In predicate on the "segment_id" field.
func SegmentIDIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldSegmentID, vs...))
}

// SegmentIDNotIn applies the NotIn predicate on the "segment_id" field.
func SegmentIDNotIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldSegmentID, vs...))
}

// SegmentIDGT applies the GT predicate on the "segment_id" field.
func SegmentIDGT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldSegmentID, v))
}

// SegmentIDGTE applies the GTE predicate on the "segment_id" field.
func SegmentIDGTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldSegmentID, v))
}

// SegmentIDLT applies the LT predicate on the "segment_id" field.
func SegmentIDLT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldSegmentID, v))
}

// SegmentIDLTE applies the LTE predicate on the "segment_id" field.
func SegmentIDLTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldSegmentID, v))
}

// SegmentIDContains applies the Contains predicate on the "segment_id" field.
func SegmentIDContains(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContains(FieldSegmentID, v))
}

// SegmentIDHasPrefix applies the HasPrefix predicate on the "segment_id" field.
func SegmentIDHasPrefix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasPrefix(FieldSegmentID, v))
}

// SegmentIDHasSuffix applies the HasSuffix predicate on the "segment_id" field.
func SegmentIDHasSuffix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasSuffix(FieldSegmentID, v))
}

// SegmentIDIsNil applies the IsNil predicate on the "segment_id" field.
func SegmentIDIsNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIsNull(FieldSegmentID))
}

// SegmentIDNotNil applies the NotNil predicate on the "segment_id" field.
func SegmentIDNotNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotNull(FieldSegmentID))
}

// SegmentIDEqualFold applies the EqualFold predicate on the "segment_id" field.
func SegmentIDEqualFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEqualFold(FieldSegmentID, v))
}

// SegmentIDContainsFold applies the ContainsFold predicate on the "segment_id" field.
func SegmentIDContainsFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContainsFold(FieldSegmentID, v))
}

// ButlerNameEQ applies the EQ predicate on the "butler_name" field.
func ButlerNameEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldButlerName, v))
}

// ButlerNameNEQ applies the NEQ predicate on the "butler_name" field.
func ButlerNameNEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldButlerName, v))
}

// ButlerNameIn applies the In predicate on the "butler_name" field.
func ButlerNameIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldButlerName, vs...))
}

// ButlerNameNotIn applies the NotIn predicate on the "butler_name" field.
func ButlerNameNotIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldButlerName, vs...))
}

// ButlerNameGT applies the GT predicate on the "butler_name" field.
func ButlerNameGT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldButlerName, v))
}

// ButlerNameGTE applies the GTE predicate on the "butler_name" field.
func ButlerNameGTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldButlerName, v))
}

// ButlerNameLT applies the LT predicate on the "butler_name" field.
func ButlerNameLT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldButlerName, v))
}

// ButlerNameLTE applies the LTE predicate on the "butler_name" field.
func ButlerNameLTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldButlerName, v))
}

// ButlerNameContains applies the Contains predicate on the "butler_name" field.
func ButlerNameContains(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContains(FieldButlerName, v))
}

// ButlerNameHasPrefix applies the HasPrefix predicate on the "butler_name" field.
func ButlerNameHasPrefix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasPrefix(FieldButlerName, v))
}

// ButlerNameHasSuffix applies the HasSuffix predicate on the "butler_name" field.
func ButlerNameHasSuffix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasSuffix(FieldButlerName, v))
}

// ButlerNameEqualFold applies the EqualFold predicate on the "butler_name" field.
func ButlerNameEqualFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEqualFold(FieldButlerName, v))
}

// ButlerNameContainsFold applies the ContainsFold predicate on the "butler_name" field.
func ButlerNameContainsFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContainsFold(FieldButlerName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FanoutExecution) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FanoutExecution) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FanoutExecution) predicate.FanoutExecution {
	return predicate.FanoutExecution(sql.NotPredicates(p))
}
