// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/predicate"
	"github.com/homekeep/butlerd/ent/scheduledtask"
)

// ScheduledTaskUpdate is the builder for updating ScheduledTask entities.
type ScheduledTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdate) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetButlerName sets the "butler_name" field.
func (_u *ScheduledTaskUpdate) SetButlerName(v string) *ScheduledTaskUpdate {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableButlerName(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ScheduledTaskUpdate) SetName(v string) *ScheduledTaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableName(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduledTaskUpdate) SetCron(v string) *ScheduledTaskUpdate {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableCron(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// SetDispatchMode sets the "dispatch_mode" field.
func (_u *ScheduledTaskUpdate) SetDispatchMode(v scheduledtask.DispatchMode) *ScheduledTaskUpdate {
	_u.mutation.SetDispatchMode(v)
	return _u
}

// SetNillableDispatchMode sets the "dispatch_mode" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableDispatchMode(v *scheduledtask.DispatchMode) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetDispatchMode(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduledTaskUpdate) SetPrompt(v string) *ScheduledTaskUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillablePrompt(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ScheduledTaskUpdate) ClearPrompt() *ScheduledTaskUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetJobName sets the "job_name" field.
func (_u *ScheduledTaskUpdate) SetJobName(v string) *ScheduledTaskUpdate {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableJobName(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// ClearJobName clears the value of the "job_name" field.
func (_u *ScheduledTaskUpdate) ClearJobName() *ScheduledTaskUpdate {
	_u.mutation.ClearJobName()
	return _u
}

// SetJobArgs sets the "job_args" field.
func (_u *ScheduledTaskUpdate) SetJobArgs(v map[string]interface{}) *ScheduledTaskUpdate {
	_u.mutation.SetJobArgs(v)
	return _u
}

// ClearJobArgs clears the value of the "job_args" field.
func (_u *ScheduledTaskUpdate) ClearJobArgs() *ScheduledTaskUpdate {
	_u.mutation.ClearJobArgs()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledTaskUpdate) SetEnabled(v bool) *ScheduledTaskUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableEnabled(v *bool) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ScheduledTaskUpdate) SetDueAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableDueAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *ScheduledTaskUpdate) ClearDueAt() *ScheduledTaskUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdate) SetLastRunAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableLastRunAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdate) ClearLastRunAt() *ScheduledTaskUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledTaskUpdate) SetNextRunAt(v time.Time) *ScheduledTaskUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableNextRunAt(v *time.Time) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduledTaskUpdate) ClearNextRunAt() *ScheduledTaskUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastStatus sets the "last_status" field.
func (_u *ScheduledTaskUpdate) SetLastStatus(v string) *ScheduledTaskUpdate {
	_u.mutation.SetLastStatus(v)
	return _u
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableLastStatus(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetLastStatus(*v)
	}
	return _u
}

// ClearLastStatus clears the value of the "last_status" field.
func (_u *ScheduledTaskUpdate) ClearLastStatus() *ScheduledTaskUpdate {
	_u.mutation.ClearLastStatus()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledTaskUpdate) SetLastError(v string) *ScheduledTaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledTaskUpdate) SetNillableLastError(v *string) *ScheduledTaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledTaskUpdate) ClearLastError() *ScheduledTaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdate) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdate) check() error {
	if v, ok := _u.mutation.DispatchMode(); ok {
		if err := scheduledtask.DispatchModeValidator(v); err != nil {
			return &ValidationError{Name: "dispatch_mode", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.dispatch_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ButlerName(); ok {
		_spec.SetField(scheduledtask.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(scheduledtask.FieldCron, field.TypeString, value)
	}
	if value, ok := _u.mutation.DispatchMode(); ok {
		_spec.SetField(scheduledtask.FieldDispatchMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(scheduledtask.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(scheduledtask.FieldJobName, field.TypeString, value)
	}
	if _u.mutation.JobNameCleared() {
		_spec.ClearField(scheduledtask.FieldJobName, field.TypeString)
	}
	if value, ok := _u.mutation.JobArgs(); ok {
		_spec.SetField(scheduledtask.FieldJobArgs, field.TypeJSON, value)
	}
	if _u.mutation.JobArgsCleared() {
		_spec.ClearField(scheduledtask.FieldJobArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(scheduledtask.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(scheduledtask.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastStatus(); ok {
		_spec.SetField(scheduledtask.FieldLastStatus, field.TypeString, value)
	}
	if _u.mutation.LastStatusCleared() {
		_spec.ClearField(scheduledtask.FieldLastStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledtask.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledtask.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledTaskUpdateOne is the builder for updating a single ScheduledTask entity.
type ScheduledTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// SetButlerName sets the "butler_name" field.
func (_u *ScheduledTaskUpdateOne) SetButlerName(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableButlerName(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ScheduledTaskUpdateOne) SetName(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableName(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCron sets the "cron" field.
func (_u *ScheduledTaskUpdateOne) SetCron(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetCron(v)
	return _u
}

// SetNillableCron sets the "cron" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableCron(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetCron(*v)
	}
	return _u
}

// SetDispatchMode sets the "dispatch_mode" field.
func (_u *ScheduledTaskUpdateOne) SetDispatchMode(v scheduledtask.DispatchMode) *ScheduledTaskUpdateOne {
	_u.mutation.SetDispatchMode(v)
	return _u
}

// SetNillableDispatchMode sets the "dispatch_mode" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableDispatchMode(v *scheduledtask.DispatchMode) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetDispatchMode(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduledTaskUpdateOne) SetPrompt(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillablePrompt(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ScheduledTaskUpdateOne) ClearPrompt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetJobName sets the "job_name" field.
func (_u *ScheduledTaskUpdateOne) SetJobName(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableJobName(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// ClearJobName clears the value of the "job_name" field.
func (_u *ScheduledTaskUpdateOne) ClearJobName() *ScheduledTaskUpdateOne {
	_u.mutation.ClearJobName()
	return _u
}

// SetJobArgs sets the "job_args" field.
func (_u *ScheduledTaskUpdateOne) SetJobArgs(v map[string]interface{}) *ScheduledTaskUpdateOne {
	_u.mutation.SetJobArgs(v)
	return _u
}

// ClearJobArgs clears the value of the "job_args" field.
func (_u *ScheduledTaskUpdateOne) ClearJobArgs() *ScheduledTaskUpdateOne {
	_u.mutation.ClearJobArgs()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledTaskUpdateOne) SetEnabled(v bool) *ScheduledTaskUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableEnabled(v *bool) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ScheduledTaskUpdateOne) SetDueAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableDueAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *ScheduledTaskUpdateOne) ClearDueAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) SetLastRunAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableLastRunAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *ScheduledTaskUpdateOne) ClearLastRunAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ScheduledTaskUpdateOne) SetNextRunAt(v time.Time) *ScheduledTaskUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableNextRunAt(v *time.Time) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ScheduledTaskUpdateOne) ClearNextRunAt() *ScheduledTaskUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastStatus sets the "last_status" field.
func (_u *ScheduledTaskUpdateOne) SetLastStatus(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetLastStatus(v)
	return _u
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableLastStatus(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetLastStatus(*v)
	}
	return _u
}

// ClearLastStatus clears the value of the "last_status" field.
func (_u *ScheduledTaskUpdateOne) ClearLastStatus() *ScheduledTaskUpdateOne {
	_u.mutation.ClearLastStatus()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledTaskUpdateOne) SetLastError(v string) *ScheduledTaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledTaskUpdateOne) SetNillableLastError(v *string) *ScheduledTaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledTaskUpdateOne) ClearLastError() *ScheduledTaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ScheduledTaskMutation object of the builder.
func (_u *ScheduledTaskUpdateOne) Mutation() *ScheduledTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledTaskUpdate builder.
func (_u *ScheduledTaskUpdateOne) Where(ps ...predicate.ScheduledTask) *ScheduledTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledTaskUpdateOne) Select(field string, fields ...string) *ScheduledTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledTask entity.
func (_u *ScheduledTaskUpdateOne) Save(ctx context.Context) (*ScheduledTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) SaveX(ctx context.Context) *ScheduledTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledTaskUpdateOne) check() error {
	if v, ok := _u.mutation.DispatchMode(); ok {
		if err := scheduledtask.DispatchModeValidator(v); err != nil {
			return &ValidationError{Name: "dispatch_mode", err: fmt.Errorf(`ent: validator failed for field "ScheduledTask.dispatch_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledTaskUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledtask.Table, scheduledtask.Columns, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledtask.FieldID)
		for _, f := range fields {
			if !scheduledtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledtask.FieldID {
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
		_spec.SetField(scheduledtask.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scheduledtask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cron(); ok {
		_spec.SetField(scheduledtask.FieldCron, field.TypeString, value)
	}
	if value, ok := _u.mutation.DispatchMode(); ok {
		_spec.SetField(scheduledtask.FieldDispatchMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(scheduledtask.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(scheduledtask.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(scheduledtask.FieldJobName, field.TypeString, value)
	}
	if _u.mutation.JobNameCleared() {
		_spec.ClearField(scheduledtask.FieldJobName, field.TypeString)
	}
	if value, ok := _u.mutation.JobArgs(); ok {
		_spec.SetField(scheduledtask.FieldJobArgs, field.TypeJSON, value)
	}
	if _u.mutation.JobArgsCleared() {
		_spec.ClearField(scheduledtask.FieldJobArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledtask.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(scheduledtask.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(scheduledtask.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scheduledtask.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(scheduledtask.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(scheduledtask.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastStatus(); ok {
		_spec.SetField(scheduledtask.FieldLastStatus, field.TypeString, value)
	}
	if _u.mutation.LastStatusCleared() {
		_spec.ClearField(scheduledtask.FieldLastStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledtask.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledtask.FieldLastError, field.TypeString)
	}
	_node = &ScheduledTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
