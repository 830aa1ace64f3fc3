// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/predicate"
	"github.com/homekeep/butlerd/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetButlerName sets the "butler_name" field.
func (_u *SessionUpdate) SetButlerName(v string) *SessionUpdate {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableButlerName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *SessionUpdate) SetTriggerSource(v session.TriggerSource) *SessionUpdate {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTriggerSource(v *session.TriggerSource) *SessionUpdate {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SessionUpdate) SetPrompt(v string) *SessionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePrompt(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SessionUpdate) SetModel(v string) *SessionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableModel(v *string) *SessionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SessionUpdate) ClearModel() *SessionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdate) SetCompletedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdate) ClearCompletedAt() *SessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SessionUpdate) SetDurationMs(v int64) *SessionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationMs(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SessionUpdate) AddDurationMs(v int64) *SessionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *SessionUpdate) ClearDurationMs() *SessionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *SessionUpdate) SetToolCalls(v []map[string]interface{}) *SessionUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *SessionUpdate) AppendToolCalls(v []map[string]interface{}) *SessionUpdate {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *SessionUpdate) ClearToolCalls() *SessionUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *SessionUpdate) SetInputTokens(v int) *SessionUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableInputTokens(v *int) *SessionUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *SessionUpdate) AddInputTokens(v int) *SessionUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *SessionUpdate) SetOutputTokens(v int) *SessionUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableOutputTokens(v *int) *SessionUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *SessionUpdate) AddOutputTokens(v int) *SessionUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *SessionUpdate) SetTraceID(v string) *SessionUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTraceID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *SessionUpdate) ClearTraceID() *SessionUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetOutput sets the "output" field.
func (_u *SessionUpdate) SetOutput(v string) *SessionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableOutput(v *string) *SessionUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *SessionUpdate) ClearOutput() *SessionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdate) SetErrorMessage(v string) *SessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableErrorMessage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdate) ClearErrorMessage() *SessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetParentSessionID sets the "parent_session_id" field.
func (_u *SessionUpdate) SetParentSessionID(v string) *SessionUpdate {
	_u.mutation.SetParentSessionID(v)
	return _u
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableParentSessionID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetParentSessionID(*v)
	}
	return _u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (_u *SessionUpdate) ClearParentSessionID() *SessionUpdate {
	_u.mutation.ClearParentSessionID()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.TriggerSource(); ok {
		if err := session.TriggerSourceValidator(v); err != nil {
			return &ValidationError{Name: "trigger_source", err: fmt.Errorf(`ent: validator failed for field "Session.trigger_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ButlerName(); ok {
		_spec.SetField(session.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(session.FieldTriggerSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(session.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(session.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(session.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(session.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(session.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(session.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(session.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(session.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(session.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(session.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(session.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(session.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(session.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(session.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(session.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(session.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSessionID(); ok {
		_spec.SetField(session.FieldParentSessionID, field.TypeString, value)
	}
	if _u.mutation.ParentSessionIDCleared() {
		_spec.ClearField(session.FieldParentSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetButlerName sets the "butler_name" field.
func (_u *SessionUpdateOne) SetButlerName(v string) *SessionUpdateOne {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableButlerName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *SessionUpdateOne) SetTriggerSource(v session.TriggerSource) *SessionUpdateOne {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTriggerSource(v *session.TriggerSource) *SessionUpdateOne {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SessionUpdateOne) SetPrompt(v string) *SessionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePrompt(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SessionUpdateOne) SetModel(v string) *SessionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableModel(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SessionUpdateOne) ClearModel() *SessionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdateOne) SetCompletedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdateOne) ClearCompletedAt() *SessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SessionUpdateOne) SetDurationMs(v int64) *SessionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationMs(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SessionUpdateOne) AddDurationMs(v int64) *SessionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *SessionUpdateOne) ClearDurationMs() *SessionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *SessionUpdateOne) SetToolCalls(v []map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *SessionUpdateOne) AppendToolCalls(v []map[string]interface{}) *SessionUpdateOne {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *SessionUpdateOne) ClearToolCalls() *SessionUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *SessionUpdateOne) SetInputTokens(v int) *SessionUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableInputTokens(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *SessionUpdateOne) AddInputTokens(v int) *SessionUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *SessionUpdateOne) SetOutputTokens(v int) *SessionUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableOutputTokens(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *SessionUpdateOne) AddOutputTokens(v int) *SessionUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *SessionUpdateOne) SetTraceID(v string) *SessionUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTraceID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *SessionUpdateOne) ClearTraceID() *SessionUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetOutput sets the "output" field.
func (_u *SessionUpdateOne) SetOutput(v string) *SessionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableOutput(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *SessionUpdateOne) ClearOutput() *SessionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdateOne) SetErrorMessage(v string) *SessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableErrorMessage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdateOne) ClearErrorMessage() *SessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetParentSessionID sets the "parent_session_id" field.
func (_u *SessionUpdateOne) SetParentSessionID(v string) *SessionUpdateOne {
	_u.mutation.SetParentSessionID(v)
	return _u
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableParentSessionID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetParentSessionID(*v)
	}
	return _u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (_u *SessionUpdateOne) ClearParentSessionID() *SessionUpdateOne {
	_u.mutation.ClearParentSessionID()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerSource(); ok {
		if err := session.TriggerSourceValidator(v); err != nil {
			return &ValidationError{Name: "trigger_source", err: fmt.Errorf(`ent: validator failed for field "Session.trigger_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ButlerName(); ok {
		_spec.SetField(session.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(session.FieldTriggerSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(session.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(session.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(session.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(session.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(session.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(session.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(session.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(session.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(session.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(session.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(session.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(session.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(session.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(session.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(session.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(session.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSessionID(); ok {
		_spec.SetField(session.FieldParentSessionID, field.TypeString, value)
	}
	if _u.mutation.ParentSessionIDCleared() {
		_spec.ClearField(session.FieldParentSessionID, field.TypeString)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
