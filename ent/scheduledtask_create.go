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
	"github.com/homekeep/butlerd/ent/scheduledtask"
)

// ScheduledTaskCreate is the builder for creating a ScheduledTask entity.
type ScheduledTaskCreate struct {
	config
	mutation *ScheduledTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetButlerName sets the "butler_name" field.
func (_c *ScheduledTaskCreate) SetButlerName(v string) *ScheduledTaskCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ScheduledTaskCreate) SetName(v string) *ScheduledTaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCron sets the "cron" field.
func (_c *ScheduledTaskCreate) SetCron(v string) *ScheduledTaskCreate {
	_c.mutation.SetCron(v)
	return _c
}

// SetDispatchMode sets the "dispatch_mode" field.
func (_c *ScheduledTaskCreate) SetDispatchMode(v scheduledtask.DispatchMode) *ScheduledTaskCreate {
	_c.mutation.SetDispatchMode(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ScheduledTaskCreate) SetPrompt(v string) *ScheduledTaskCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillablePrompt(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetJobName sets the "job_name" field.
func (_c *ScheduledTaskCreate) SetJobName(v string) *ScheduledTaskCreate {
	_c.mutation.SetJobName(v)
	return _c
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableJobName(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetJobName(*v)
	}
	return _c
}

// SetJobArgs sets the "job_args" field.
func (_c *ScheduledTaskCreate) SetJobArgs(v map[string]interface{}) *ScheduledTaskCreate {
	_c.mutation.SetJobArgs(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ScheduledTaskCreate) SetEnabled(v bool) *ScheduledTaskCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableEnabled(v *bool) *ScheduledTaskCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ScheduledTaskCreate) SetDueAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableDueAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduledTaskCreate) SetLastRunAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableLastRunAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *ScheduledTaskCreate) SetNextRunAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableNextRunAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastStatus sets the "last_status" field.
func (_c *ScheduledTaskCreate) SetLastStatus(v string) *ScheduledTaskCreate {
	_c.mutation.SetLastStatus(v)
	return _c
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableLastStatus(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetLastStatus(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ScheduledTaskCreate) SetLastError(v string) *ScheduledTaskCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableLastError(v *string) *ScheduledTaskCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledTaskCreate) SetCreatedAt(v time.Time) *ScheduledTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledTaskCreate) SetNillableCreatedAt(v *time.Time) *ScheduledTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledTaskCreate) SetID(v string) *ScheduledTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_c *ScheduledTaskCreate) Mutation() *ScheduledTaskMutation {
	return _c.mutation
}

// Save creates the ScheduledTask in the database.
func (_c *ScheduledTaskCreate) Save(ctx context.Context) (*ScheduledTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledTaskCreate) SaveX(ctx context.Context) *ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledTaskCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := scheduledtask.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledTaskCreate) check() error {
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "ScheduledTask.butler_name"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ScheduledTask.name"`)}
	}
	if _, ok := _c.mutation.Cron(); !ok {
		return &ValidationError{Name: "cron", err: errors.New(`ent: missing required field "ScheduledTask.cron"`)}
	}
	if _, ok := _c.mutation.DispatchMode(); !ok {
		return &ValidationError{Name: "dispatch_mode", err: errors.New(`ent: missing required field "ScheduledTask.dispatch_mode"`)}
	}
	if v, ok := _c.mutation.DispatchMode(); ok {
		if err := scheduledtask.DispatchModeValidator(v); err != nil {
			return &ValidationError{Name: "dispatch_mode", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.dispatch_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ScheduledTask.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledTask.created_at"`)}
	}
	return nil
}

func (_c *ScheduledTaskCreate) sqlSave(ctx context.Context) (*ScheduledTask, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledTaskCreate) createSpec() (*ScheduledTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledtask.Table, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(scheduledtask.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Cron(); ok {
		_spec.SetField(scheduledtask.FieldCron, field.TypeString, value)
		_node.Cron = value
	}
	if value, ok := _c.mutation.DispatchMode(); ok {
		_spec.SetField(scheduledtask.FieldDispatchMode, field.TypeEnum, value)
		_node.DispatchMode = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.JobName(); ok {
		_spec.SetField(scheduledtask.FieldJobName, field.TypeString, value)
		_node.JobName = value
	}
	if value, ok := _c.mutation.JobArgs(); ok {
		_spec.SetField(scheduledtask.FieldJobArgs, field.TypeJSON, value)
		_node.JobArgs = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(scheduledtask.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastStatus(); ok {
		_spec.SetField(scheduledtask.FieldLastStatus, field.TypeString, value)
		_node.LastStatus = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(scheduledtask.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledTask.Create().
//		SetButlerName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledTaskUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledTaskCreate) OnConflict(opts ...sql.ConflictOption) *ScheduledTaskUpsertOne {
	_c.conflict = opts
	return &ScheduledTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledTaskCreate) OnConflictColumns(columns ...string) *ScheduledTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledTaskUpsertOne{
		create: _c,
	}
}

type (
	// ScheduledTaskUpsertOne is the builder for "upsert"-ing
	//  one ScheduledTask node.
	ScheduledTaskUpsertOne struct {
		create *ScheduledTaskCreate
	}

	// ScheduledTaskUpsert is the "OnConflict" setter.
	ScheduledTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetButlerName sets the "butler_name" field.
func (u *ScheduledTaskUpsert) SetButlerName(v string) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldButlerName, v)
	return u
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateButlerName() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldButlerName)
	return u
}

// SetName sets the "name" field.
func (u *ScheduledTaskUpsert) SetName(v string) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateName() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldName)
	return u
}

// SetCron sets the "cron" field.
func (u *ScheduledTaskUpsert) SetCron(v string) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldCron, v)
	return u
}

// UpdateCron sets the "cron" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateCron() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldCron)
	return u
}

// SetDispatchMode sets the "dispatch_mode" field.
func (u *ScheduledTaskUpsert) SetDispatchMode(v scheduledtask.DispatchMode) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldDispatchMode, v)
	return u
}

// UpdateDispatchMode sets the "dispatch_mode" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateDispatchMode() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldDispatchMode)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *ScheduledTaskUpsert) SetPrompt(v string) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdatePrompt() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldPrompt)
	return u
}

// ClearPrompt clears the value of the "prompt" field.
func (u *ScheduledTaskUpsert) ClearPrompt() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldPrompt)
	return u
}

// SetJobName sets the "job_name" field.
func (u *ScheduledTaskUpsert) SetJobName(v string) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldJobName, v)
	return u
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateJobName() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldJobName)
	return u
}

// ClearJobName clears the value of the "job_name" field.
func (u *ScheduledTaskUpsert) ClearJobName() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldJobName)
	return u
}

// SetJobArgs sets the "job_args" field.
func (u *ScheduledTaskUpsert) SetJobArgs(v map[string]interface{}) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldJobArgs, v)
	return u
}

// UpdateJobArgs sets the "job_args" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateJobArgs() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldJobArgs)
	return u
}

// ClearJobArgs clears the value of the "job_args" field.
func (u *ScheduledTaskUpsert) ClearJobArgs() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldJobArgs)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *ScheduledTaskUpsert) SetEnabled(v bool) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateEnabled() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldEnabled)
	return u
}

// SetDueAt sets the "due_at" field.
func (u *ScheduledTaskUpsert) SetDueAt(v time.Time) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldDueAt, v)
	return u
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateDueAt() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldDueAt)
	return u
}

// ClearDueAt clears the value of the "due_at" field.
func (u *ScheduledTaskUpsert) ClearDueAt() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldDueAt)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduledTaskUpsert) SetLastRunAt(v time.Time) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateLastRunAt() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldLastRunAt)
	return u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduledTaskUpsert) ClearLastRunAt() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldLastRunAt)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduledTaskUpsert) SetNextRunAt(v time.Time) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateNextRunAt() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldNextRunAt)
	return u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ScheduledTaskUpsert) ClearNextRunAt() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldNextRunAt)
	return u
}

// SetLastStatus sets the "last_status" field.
func (u *ScheduledTaskUpsert) SetLastStatus(v string) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldLastStatus, v)
	return u
}

// UpdateLastStatus sets the "last_status" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateLastStatus() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldLastStatus)
	return u
}

// ClearLastStatus clears the value of the "last_status" field.
func (u *ScheduledTaskUpsert) ClearLastStatus() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldLastStatus)
	return u
}

// SetLastError sets the "last_error" field.
func (u *ScheduledTaskUpsert) SetLastError(v string) *ScheduledTaskUpsert {
	u.Set(scheduledtask.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ScheduledTaskUpsert) UpdateLastError() *ScheduledTaskUpsert {
	u.SetExcluded(scheduledtask.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *ScheduledTaskUpsert) ClearLastError() *ScheduledTaskUpsert {
	u.SetNull(scheduledtask.FieldLastError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScheduledTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledTaskUpsertOne) UpdateNewValues() *ScheduledTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scheduledtask.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scheduledtask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduledTaskUpsertOne) Ignore() *ScheduledTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledTaskUpsertOne) DoNothing() *ScheduledTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledTaskCreate.OnConflict
// documentation for more info.
func (u *ScheduledTaskUpsertOne) Update(set func(*ScheduledTaskUpsert)) *ScheduledTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *ScheduledTaskUpsertOne) SetButlerName(v string) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateButlerName() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateButlerName()
	})
}

// SetName sets the "name" field.
func (u *ScheduledTaskUpsertOne) SetName(v string) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateName() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateName()
	})
}

// SetCron sets the "cron" field.
func (u *ScheduledTaskUpsertOne) SetCron(v string) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetCron(v)
	})
}

// UpdateCron sets the "cron" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateCron() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateCron()
	})
}

// SetDispatchMode sets the "dispatch_mode" field.
func (u *ScheduledTaskUpsertOne) SetDispatchMode(v scheduledtask.DispatchMode) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetDispatchMode(v)
	})
}

// UpdateDispatchMode sets the "dispatch_mode" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateDispatchMode() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateDispatchMode()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ScheduledTaskUpsertOne) SetPrompt(v string) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdatePrompt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdatePrompt()
	})
}

// ClearPrompt clears the value of the "prompt" field.
func (u *ScheduledTaskUpsertOne) ClearPrompt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearPrompt()
	})
}

// SetJobName sets the "job_name" field.
func (u *ScheduledTaskUpsertOne) SetJobName(v string) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetJobName(v)
	})
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateJobName() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateJobName()
	})
}

// ClearJobName clears the value of the "job_name" field.
func (u *ScheduledTaskUpsertOne) ClearJobName() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearJobName()
	})
}

// SetJobArgs sets the "job_args" field.
func (u *ScheduledTaskUpsertOne) SetJobArgs(v map[string]interface{}) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetJobArgs(v)
	})
}

// UpdateJobArgs sets the "job_args" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateJobArgs() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateJobArgs()
	})
}

// ClearJobArgs clears the value of the "job_args" field.
func (u *ScheduledTaskUpsertOne) ClearJobArgs() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearJobArgs()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ScheduledTaskUpsertOne) SetEnabled(v bool) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateEnabled() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateEnabled()
	})
}

// SetDueAt sets the "due_at" field.
func (u *ScheduledTaskUpsertOne) SetDueAt(v time.Time) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateDueAt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *ScheduledTaskUpsertOne) ClearDueAt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearDueAt()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduledTaskUpsertOne) SetLastRunAt(v time.Time) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateLastRunAt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduledTaskUpsertOne) ClearLastRunAt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearLastRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduledTaskUpsertOne) SetNextRunAt(v time.Time) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateNextRunAt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ScheduledTaskUpsertOne) ClearNextRunAt() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastStatus sets the "last_status" field.
func (u *ScheduledTaskUpsertOne) SetLastStatus(v string) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetLastStatus(v)
	})
}

// UpdateLastStatus sets the "last_status" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateLastStatus() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateLastStatus()
	})
}

// ClearLastStatus clears the value of the "last_status" field.
func (u *ScheduledTaskUpsertOne) ClearLastStatus() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearLastStatus()
	})
}

// SetLastError sets the "last_error" field.
func (u *ScheduledTaskUpsertOne) SetLastError(v string) *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ScheduledTaskUpsertOne) UpdateLastError() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ScheduledTaskUpsertOne) ClearLastError() *ScheduledTaskUpsertOne {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *ScheduledTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduledTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduledTaskUpsertOne.ID is not supported by MySQL driver. Use ScheduledTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduledTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduledTaskCreateBulk is the builder for creating many ScheduledTask entities in bulk.
type ScheduledTaskCreateBulk struct {
	config
	err      error
	builders []*ScheduledTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the ScheduledTask entities in the database.
func (_c *ScheduledTaskCreateBulk) Save(ctx context.Context) ([]*ScheduledTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledTaskMutation)
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
func (_c *ScheduledTaskCreateBulk) SaveX(ctx context.Context) []*ScheduledTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledTaskUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduledTaskUpsertBulk {
	_c.conflict = opts
	return &ScheduledTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledTaskCreateBulk) OnConflictColumns(columns ...string) *ScheduledTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledTaskUpsertBulk{
		create: _c,
	}
}

// ScheduledTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of ScheduledTask nodes.
type ScheduledTaskUpsertBulk struct {
	create *ScheduledTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScheduledTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledTaskUpsertBulk) UpdateNewValues() *ScheduledTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scheduledtask.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scheduledtask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduledTaskUpsertBulk) Ignore() *ScheduledTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledTaskUpsertBulk) DoNothing() *ScheduledTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledTaskCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduledTaskUpsertBulk) Update(set func(*ScheduledTaskUpsert)) *ScheduledTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *ScheduledTaskUpsertBulk) SetButlerName(v string) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateButlerName() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateButlerName()
	})
}

// SetName sets the "name" field.
func (u *ScheduledTaskUpsertBulk) SetName(v string) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateName() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateName()
	})
}

// SetCron sets the "cron" field.
func (u *ScheduledTaskUpsertBulk) SetCron(v string) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetCron(v)
	})
}

// UpdateCron sets the "cron" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateCron() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateCron()
	})
}

// SetDispatchMode sets the "dispatch_mode" field.
func (u *ScheduledTaskUpsertBulk) SetDispatchMode(v scheduledtask.DispatchMode) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetDispatchMode(v)
	})
}

// UpdateDispatchMode sets the "dispatch_mode" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateDispatchMode() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateDispatchMode()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ScheduledTaskUpsertBulk) SetPrompt(v string) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdatePrompt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdatePrompt()
	})
}

// ClearPrompt clears the value of the "prompt" field.
func (u *ScheduledTaskUpsertBulk) ClearPrompt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearPrompt()
	})
}

// SetJobName sets the "job_name" field.
func (u *ScheduledTaskUpsertBulk) SetJobName(v string) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetJobName(v)
	})
}

// UpdateJobName sets the "job_name" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateJobName() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateJobName()
	})
}

// ClearJobName clears the value of the "job_name" field.
func (u *ScheduledTaskUpsertBulk) ClearJobName() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearJobName()
	})
}

// SetJobArgs sets the "job_args" field.
func (u *ScheduledTaskUpsertBulk) SetJobArgs(v map[string]interface{}) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetJobArgs(v)
	})
}

// UpdateJobArgs sets the "job_args" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateJobArgs() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateJobArgs()
	})
}

// ClearJobArgs clears the value of the "job_args" field.
func (u *ScheduledTaskUpsertBulk) ClearJobArgs() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearJobArgs()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ScheduledTaskUpsertBulk) SetEnabled(v bool) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateEnabled() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateEnabled()
	})
}

// SetDueAt sets the "due_at" field.
func (u *ScheduledTaskUpsertBulk) SetDueAt(v time.Time) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateDueAt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *ScheduledTaskUpsertBulk) ClearDueAt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearDueAt()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduledTaskUpsertBulk) SetLastRunAt(v time.Time) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateLastRunAt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduledTaskUpsertBulk) ClearLastRunAt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearLastRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduledTaskUpsertBulk) SetNextRunAt(v time.Time) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateNextRunAt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ScheduledTaskUpsertBulk) ClearNextRunAt() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastStatus sets the "last_status" field.
func (u *ScheduledTaskUpsertBulk) SetLastStatus(v string) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetLastStatus(v)
	})
}

// UpdateLastStatus sets the "last_status" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateLastStatus() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateLastStatus()
	})
}

// ClearLastStatus clears the value of the "last_status" field.
func (u *ScheduledTaskUpsertBulk) ClearLastStatus() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearLastStatus()
	})
}

// SetLastError sets the "last_error" field.
func (u *ScheduledTaskUpsertBulk) SetLastError(v string) *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ScheduledTaskUpsertBulk) UpdateLastError() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ScheduledTaskUpsertBulk) ClearLastError() *ScheduledTaskUpsertBulk {
	return u.Update(func(s *ScheduledTaskUpsert) {
		s.ClearLastError()
	})
}

// Exec executes the query.
func (u *ScheduledTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduledTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
