// Code generated by ent, DO NOT EDIT.

package scheduledtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldID, id))
}

// ButlerName applies equality check predicate on the "butler_name" field. It's identical to ButlerNameEQ.
func ButlerName(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldButlerName, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldName, v))
}

// Cron applies equality check predicate on the "cron" field. It's identical to CronEQ.
func Cron(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCron, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPrompt, v))
}

// JobName applies equality check predicate on the "job_name" field. It's identical to JobNameEQ.
func JobName(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldJobName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldEnabled, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldDueAt, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextRunAt, v))
}

// LastStatus applies equality check predicate on the "last_status" field. It's identical to LastStatusEQ.
func LastStatus(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastStatus, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// ButlerNameEQ applies the EQ predicate on the "butler_name" field.
func ButlerNameEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldButlerName, v))
}

// ButlerNameNEQ applies the NEQ predicate on the "butler_name" field.
func ButlerNameNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldButlerName, v))
}

// ButlerNameIn applies the In predicate on the "butler_name" field.
func ButlerNameIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldButlerName, vs...))
}

// ButlerNameNotIn applies the NotIn predicate on the "butler_name" field.
func ButlerNameNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldButlerName, vs...))
}

// ButlerNameGT applies the GT predicate on the "butler_name" field.
func ButlerNameGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldButlerName, v))
}

// ButlerNameGTE applies the GTE predicate on the "butler_name" field.
func ButlerNameGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldButlerName, v))
}

// ButlerNameLT applies the LT predicate on the "butler_name" field.
func ButlerNameLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldButlerName, v))
}

// ButlerNameLTE applies the LTE predicate on the "butler_name" field.
func ButlerNameLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldButlerName, v))
}

// ButlerNameContains applies the Contains predicate on the "butler_name" field.
func ButlerNameContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldButlerName, v))
}

// ButlerNameHasPrefix applies the HasPrefix predicate on the "butler_name" field.
func ButlerNameHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldButlerName, v))
}

// ButlerNameHasSuffix applies the HasSuffix predicate on the "butler_name" field.
func ButlerNameHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldButlerName, v))
}

// ButlerNameEqualFold applies the EqualFold predicate on the "butler_name" field.
func ButlerNameEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldButlerName, v))
}

// ButlerNameContainsFold applies the ContainsFold predicate on the "butler_name" field.
func ButlerNameContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldButlerName, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldName, v))
}

// CronEQ applies the EQ predicate on the "cron" field.
func CronEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCron, v))
}

// CronNEQ applies the NEQ predicate on the "cron" field.
func CronNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldCron, v))
}

// CronIn applies the In predicate on the "cron" field.
func CronIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldCron, vs...))
}

// CronNotIn applies the NotIn predicate on the "cron" field.
func CronNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldCron, vs...))
}

// CronGT applies the GT predicate on the "cron" field.
func CronGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldCron, v))
}

// CronGTE applies the GTE predicate on the "cron" field.
func CronGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldCron, v))
}

// CronLT applies the LT predicate on the "cron" field.
func CronLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldCron, v))
}

// CronLTE applies the LTE predicate on the "cron" field.
func CronLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldCron, v))
}

// CronContains applies the Contains predicate on the "cron" field.
func CronContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldCron, v))
}

// CronHasPrefix applies the HasPrefix predicate on the "cron" field.
func CronHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldCron, v))
}

// CronHasSuffix applies the HasSuffix predicate on the "cron" field.
func CronHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldCron, v))
}

// CronEqualFold applies the EqualFold predicate on the "cron" field.
func CronEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldCron, v))
}

// CronContainsFold applies the ContainsFold predicate on the "cron" field.
func CronContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldCron, v))
}

// DispatchModeEQ applies the EQ predicate on the "dispatch_mode" field.
func DispatchModeEQ(v DispatchMode) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldDispatchMode, v))
}

// DispatchModeNEQ applies the NEQ predicate on the "dispatch_mode" field.
func DispatchModeNEQ(v DispatchMode) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldDispatchMode, v))
}

// DispatchModeIn applies the In predicate on the "dispatch_mode" field.
func DispatchModeIn(vs ...DispatchMode) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldDispatchMode, vs...))
}

// DispatchModeNotIn applies the NotIn predicate on the "dispatch_mode" field.
func DispatchModeNotIn(vs ...DispatchMode) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldDispatchMode, vs...))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptIsNil applies the IsNil predicate on the "prompt" field.
func PromptIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldPrompt))
}

// PromptNotNil applies the NotNil predicate on the "prompt" field.
func PromptNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldPrompt))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldPrompt, v))
}

// JobNameEQ applies the EQ predicate on the "job_name" field.
func JobNameEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldJobName, v))
}

// JobNameNEQ applies the NEQ predicate on the "job_name" field.
func JobNameNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldJobName, v))
}

// JobNameIn applies the In predicate on the "job_name" field.
func JobNameIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldJobName, vs...))
}

// JobNameNotIn applies the NotIn predicate on the "job_name" field.
func JobNameNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldJobName, vs...))
}

// JobNameGT applies the GT predicate on the "job_name" field.
func JobNameGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldJobName, v))
}

// JobNameGTE applies the GTE predicate on the "job_name" field.
func JobNameGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldJobName, v))
}

// JobNameLT applies the LT predicate on the "job_name" field.
func JobNameLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldJobName, v))
}

// JobNameLTE applies the LTE predicate on the "job_name" field.
func JobNameLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldJobName, v))
}

// JobNameContains applies the Contains predicate on the "job_name" field.
func JobNameContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldJobName, v))
}

// JobNameHasPrefix applies the HasPrefix predicate on the "job_name" field.
func JobNameHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldJobName, v))
}

// JobNameHasSuffix applies the HasSuffix predicate on the "job_name" field.
func JobNameHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldJobName, v))
}

// JobNameIsNil applies the IsNil predicate on the "job_name" field.
func JobNameIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldJobName))
}

// JobNameNotNil applies the NotNil predicate on the "job_name" field.
func JobNameNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldJobName))
}

// JobNameEqualFold applies the EqualFold predicate on the "job_name" field.
func JobNameEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldJobName, v))
}

// JobNameContainsFold applies the ContainsFold predicate on the "job_name" field.
func JobNameContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldJobName, v))
}

// JobArgsIsNil applies the IsNil predicate on the "job_args" field.
func JobArgsIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldJobArgs))
}

// JobArgsNotNil applies the NotNil predicate on the "job_args" field.
func JobArgsNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldJobArgs))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldEnabled, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldDueAt, v))
}

// DueAtIsNil applies the IsNil predicate on the "due_at" field.
func DueAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldDueAt))
}

// DueAtNotNil applies the NotNil predicate on the "due_at" field.
func DueAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldDueAt))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldLastRunAt))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldNextRunAt))
}

// LastStatusEQ applies the EQ predicate on the "last_status" field.
func LastStatusEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastStatus, v))
}

// LastStatusNEQ applies the NEQ predicate on the "last_status" field.
func LastStatusNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldLastStatus, v))
}

// LastStatusIn applies the In predicate on the "last_status" field.
func LastStatusIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldLastStatus, vs...))
}

// LastStatusNotIn applies the NotIn predicate on the "last_status" field.
func LastStatusNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldLastStatus, vs...))
}

// LastStatusGT applies the GT predicate on the "last_status" field.
func LastStatusGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldLastStatus, v))
}

// LastStatusGTE applies the GTE predicate on the "last_status" field.
func LastStatusGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldLastStatus, v))
}

// LastStatusLT applies the LT predicate on the "last_status" field.
func LastStatusLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldLastStatus, v))
}

// LastStatusLTE applies the LTE predicate on the "last_status" field.
func LastStatusLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldLastStatus, v))
}

// LastStatusContains applies the Contains predicate on the "last_status" field.
func LastStatusContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldLastStatus, v))
}

// LastStatusHasPrefix applies the HasPrefix predicate on the "last_status" field.
func LastStatusHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldLastStatus, v))
}

// LastStatusHasSuffix applies the HasSuffix predicate on the "last_status" field.
func LastStatusHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldLastStatus, v))
}

// LastStatusIsNil applies the IsNil predicate on the "last_status" field.
func LastStatusIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldLastStatus))
}

// LastStatusNotNil applies the NotNil predicate on the "last_status" field.
func LastStatusNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldLastStatus))
}

// LastStatusEqualFold applies the EqualFold predicate on the "last_status" field.
func LastStatusEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldLastStatus, v))
}

// LastStatusContainsFold applies the ContainsFold predicate on the "last_status" field.
func LastStatusContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldLastStatus, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledTask) predicate.ScheduledTask {
	return predicate.ScheduledTask(sql.NotPredicates(p))
}
