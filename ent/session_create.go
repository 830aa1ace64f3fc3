// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetButlerName sets the "butler_name" field.
func (_c *SessionCreate) SetButlerName(v string) *SessionCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetTriggerSource sets the "trigger_source" field.
func (_c *SessionCreate) SetTriggerSource(v session.TriggerSource) *SessionCreate {
	_c.mutation.SetTriggerSource(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *SessionCreate) SetPrompt(v string) *SessionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *SessionCreate) SetModel(v string) *SessionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *SessionCreate) SetNillableModel(v *string) *SessionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionCreate) SetCompletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *SessionCreate) SetDurationMs(v int64) *SessionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDurationMs(v *int64) *SessionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *SessionCreate) SetToolCalls(v []map[string]interface{}) *SessionCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *SessionCreate) SetInputTokens(v int) *SessionCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *SessionCreate) SetNillableInputTokens(v *int) *SessionCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *SessionCreate) SetOutputTokens(v int) *SessionCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *SessionCreate) SetNillableOutputTokens(v *int) *SessionCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *SessionCreate) SetTraceID(v string) *SessionCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTraceID(v *string) *SessionCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *SessionCreate) SetOutput(v string) *SessionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *SessionCreate) SetNillableOutput(v *string) *SessionCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SessionCreate) SetErrorMessage(v string) *SessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SessionCreate) SetNillableErrorMessage(v *string) *SessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetParentSessionID sets the "parent_session_id" field.
func (_c *SessionCreate) SetParentSessionID(v string) *SessionCreate {
	_c.mutation.SetParentSessionID(v)
	return _c
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableParentSessionID(v *string) *SessionCreate {
	if v != nil {
		_c.SetParentSessionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := session.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := session.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "Session.butler_name"`)}
	}
	if _, ok := _c.mutation.TriggerSource(); !ok {
		return &ValidationError{Name: "trigger_source", err: errors.New(`ent: missing required field "Session.trigger_source"`)}
	}
	if v, ok := _c.mutation.TriggerSource(); ok {
		if err := session.TriggerSourceValidator(v); err != nil {
			return &ValidationError{Name: "trigger_source", err: fmt.Errorf(`ent: validator failed for field "Session.trigger_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Session.prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Session.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Session.output_tokens"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(session.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.TriggerSource(); ok {
		_spec.SetField(session.FieldTriggerSource, field.TypeEnum, value)
		_node.TriggerSource = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(session.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(session.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(session.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(session.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(session.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(session.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(session.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(session.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ParentSessionID(); ok {
		_spec.SetField(session.FieldParentSessionID, field.TypeString, value)
		_node.ParentSessionID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetButlerName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetButlerName sets the "butler_name" field.
func (u *SessionUpsert) SetButlerName(v string) *SessionUpsert {
	u.Set(session.FieldButlerName, v)
	return u
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *SessionUpsert) UpdateButlerName() *SessionUpsert {
	u.SetExcluded(session.FieldButlerName)
	return u
}

// SetTriggerSource sets the "trigger_source" field.
func (u *SessionUpsert) SetTriggerSource(v session.TriggerSource) *SessionUpsert {
	u.Set(session.FieldTriggerSource, v)
	return u
}

// UpdateTriggerSource sets the "trigger_source" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTriggerSource() *SessionUpsert {
	u.SetExcluded(session.FieldTriggerSource)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *SessionUpsert) SetPrompt(v string) *SessionUpsert {
	u.Set(session.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePrompt() *SessionUpsert {
	u.SetExcluded(session.FieldPrompt)
	return u
}

// SetModel sets the "model" field.
func (u *SessionUpsert) SetModel(v string) *SessionUpsert {
	u.Set(session.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SessionUpsert) UpdateModel() *SessionUpsert {
	u.SetExcluded(session.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *SessionUpsert) ClearModel() *SessionUpsert {
	u.SetNull(session.FieldModel)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v session.Status) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsert) SetCompletedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCompletedAt() *SessionUpsert {
	u.SetExcluded(session.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsert) ClearCompletedAt() *SessionUpsert {
	u.SetNull(session.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *SessionUpsert) SetDurationMs(v int64) *SessionUpsert {
	u.Set(session.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *SessionUpsert) UpdateDurationMs() *SessionUpsert {
	u.SetExcluded(session.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *SessionUpsert) AddDurationMs(v int64) *SessionUpsert {
	u.Add(session.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *SessionUpsert) ClearDurationMs() *SessionUpsert {
	u.SetNull(session.FieldDurationMs)
	return u
}

// SetToolCalls sets the "tool_calls" field.
func (u *SessionUpsert) SetToolCalls(v []map[string]interface{}) *SessionUpsert {
	u.Set(session.FieldToolCalls, v)
	return u
}

// UpdateToolCalls sets the "tool_calls" field to the value that was provided on create.
func (u *SessionUpsert) UpdateToolCalls() *SessionUpsert {
	u.SetExcluded(session.FieldToolCalls)
	return u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (u *SessionUpsert) ClearToolCalls() *SessionUpsert {
	u.SetNull(session.FieldToolCalls)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *SessionUpsert) SetInputTokens(v int) *SessionUpsert {
	u.Set(session.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *SessionUpsert) UpdateInputTokens() *SessionUpsert {
	u.SetExcluded(session.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *SessionUpsert) AddInputTokens(v int) *SessionUpsert {
	u.Add(session.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *SessionUpsert) SetOutputTokens(v int) *SessionUpsert {
	u.Set(session.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *SessionUpsert) UpdateOutputTokens() *SessionUpsert {
	u.SetExcluded(session.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *SessionUpsert) AddOutputTokens(v int) *SessionUpsert {
	u.Add(session.FieldOutputTokens, v)
	return u
}

// SetTraceID sets the "trace_id" field.
func (u *SessionUpsert) SetTraceID(v string) *SessionUpsert {
	u.Set(session.FieldTraceID, v)
	return u
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTraceID() *SessionUpsert {
	u.SetExcluded(session.FieldTraceID)
	return u
}

// ClearTraceID clears the value of the "trace_id" field.
func (u *SessionUpsert) ClearTraceID() *SessionUpsert {
	u.SetNull(session.FieldTraceID)
	return u
}

// SetOutput sets the "output" field.
func (u *SessionUpsert) SetOutput(v string) *SessionUpsert {
	u.Set(session.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *SessionUpsert) UpdateOutput() *SessionUpsert {
	u.SetExcluded(session.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *SessionUpsert) ClearOutput() *SessionUpsert {
	u.SetNull(session.FieldOutput)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsert) SetErrorMessage(v string) *SessionUpsert {
	u.Set(session.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsert) UpdateErrorMessage() *SessionUpsert {
	u.SetExcluded(session.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsert) ClearErrorMessage() *SessionUpsert {
	u.SetNull(session.FieldErrorMessage)
	return u
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *SessionUpsert) SetParentSessionID(v string) *SessionUpsert {
	u.Set(session.FieldParentSessionID, v)
	return u
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateParentSessionID() *SessionUpsert {
	u.SetExcluded(session.FieldParentSessionID)
	return u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *SessionUpsert) ClearParentSessionID() *SessionUpsert {
	u.SetNull(session.FieldParentSessionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *SessionUpsertOne) SetButlerName(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateButlerName() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateButlerName()
	})
}

// SetTriggerSource sets the "trigger_source" field.
func (u *SessionUpsertOne) SetTriggerSource(v session.TriggerSource) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTriggerSource(v)
	})
}

// UpdateTriggerSource sets the "trigger_source" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTriggerSource() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTriggerSource()
	})
}

// SetPrompt sets the "prompt" field.
func (u *SessionUpsertOne) SetPrompt(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePrompt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePrompt()
	})
}

// SetModel sets the "model" field.
func (u *SessionUpsertOne) SetModel(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateModel() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *SessionUpsertOne) ClearModel() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearModel()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v session.Status) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsertOne) SetCompletedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCompletedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsertOne) ClearCompletedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *SessionUpsertOne) SetDurationMs(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *SessionUpsertOne) AddDurationMs(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateDurationMs() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *SessionUpsertOne) ClearDurationMs() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearDurationMs()
	})
}

// SetToolCalls sets the "tool_calls" field.
func (u *SessionUpsertOne) SetToolCalls(v []map[string]interface{}) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetToolCalls(v)
	})
}

// UpdateToolCalls sets the "tool_calls" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateToolCalls() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateToolCalls()
	})
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (u *SessionUpsertOne) ClearToolCalls() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearToolCalls()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *SessionUpsertOne) SetInputTokens(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *SessionUpsertOne) AddInputTokens(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateInputTokens() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *SessionUpsertOne) SetOutputTokens(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *SessionUpsertOne) AddOutputTokens(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateOutputTokens() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTraceID sets the "trace_id" field.
func (u *SessionUpsertOne) SetTraceID(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTraceID(v)
	})
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTraceID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTraceID()
	})
}

// ClearTraceID clears the value of the "trace_id" field.
func (u *SessionUpsertOne) ClearTraceID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearTraceID()
	})
}

// SetOutput sets the "output" field.
func (u *SessionUpsertOne) SetOutput(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateOutput() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *SessionUpsertOne) ClearOutput() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsertOne) SetErrorMessage(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateErrorMessage() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsertOne) ClearErrorMessage() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *SessionUpsertOne) SetParentSessionID(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetParentSessionID(v)
	})
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateParentSessionID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateParentSessionID()
	})
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *SessionUpsertOne) ClearParentSessionID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearParentSessionID()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *SessionUpsertBulk) SetButlerName(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateButlerName() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateButlerName()
	})
}

// SetTriggerSource sets the "trigger_source" field.
func (u *SessionUpsertBulk) SetTriggerSource(v session.TriggerSource) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTriggerSource(v)
	})
}

// UpdateTriggerSource sets the "trigger_source" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTriggerSource() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTriggerSource()
	})
}

// SetPrompt sets the "prompt" field.
func (u *SessionUpsertBulk) SetPrompt(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePrompt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePrompt()
	})
}

// SetModel sets the "model" field.
func (u *SessionUpsertBulk) SetModel(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateModel() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *SessionUpsertBulk) ClearModel() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearModel()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v session.Status) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsertBulk) SetCompletedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCompletedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsertBulk) ClearCompletedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *SessionUpsertBulk) SetDurationMs(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *SessionUpsertBulk) AddDurationMs(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateDurationMs() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *SessionUpsertBulk) ClearDurationMs() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearDurationMs()
	})
}

// SetToolCalls sets the "tool_calls" field.
func (u *SessionUpsertBulk) SetToolCalls(v []map[string]interface{}) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetToolCalls(v)
	})
}

// UpdateToolCalls sets the "tool_calls" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateToolCalls() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateToolCalls()
	})
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (u *SessionUpsertBulk) ClearToolCalls() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearToolCalls()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *SessionUpsertBulk) SetInputTokens(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *SessionUpsertBulk) AddInputTokens(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateInputTokens() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *SessionUpsertBulk) SetOutputTokens(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *SessionUpsertBulk) AddOutputTokens(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateOutputTokens() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetTraceID sets the "trace_id" field.
func (u *SessionUpsertBulk) SetTraceID(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTraceID(v)
	})
}

// UpdateTraceID sets the "trace_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTraceID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTraceID()
	})
}

// ClearTraceID clears the value of the "trace_id" field.
func (u *SessionUpsertBulk) ClearTraceID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearTraceID()
	})
}

// SetOutput sets the "output" field.
func (u *SessionUpsertBulk) SetOutput(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateOutput() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *SessionUpsertBulk) ClearOutput() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsertBulk) SetErrorMessage(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateErrorMessage() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsertBulk) ClearErrorMessage() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *SessionUpsertBulk) SetParentSessionID(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetParentSessionID(v)
	})
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateParentSessionID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateParentSessionID()
	})
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *SessionUpsertBulk) ClearParentSessionID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearParentSessionID()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
