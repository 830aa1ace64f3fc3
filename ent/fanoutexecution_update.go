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
	"github.com/homekeep/butlerd/ent/fanoutexecution"
	"github.com/homekeep/butlerd/ent/predicate"
)

// FanoutExecutionUpdate is the builder for updating FanoutExecution entities.
type FanoutExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *FanoutExecutionMutation
}

// Where appends a list predicates to the FanoutExecutionUpdate builder.
func (_u *FanoutExecutionUpdate) Where(ps ...predicate.FanoutExecution) *FanoutExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FanoutExecutionUpdate) SetStatus(v fanoutexecution.Status) *FanoutExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FanoutExecutionUpdate) SetNillableStatus(v *fanoutexecution.Status) *FanoutExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *FanoutExecutionUpdate) SetErrorKind(v string) *FanoutExecutionUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *FanoutExecutionUpdate) SetNillableErrorKind(v *string) *FanoutExecutionUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *FanoutExecutionUpdate) ClearErrorKind() *FanoutExecutionUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FanoutExecutionUpdate) SetErrorMessage(v string) *FanoutExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FanoutExecutionUpdate) SetNillableErrorMessage(v *string) *FanoutExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FanoutExecutionUpdate) ClearErrorMessage() *FanoutExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FanoutExecutionUpdate) SetCompletedAt(v time.Time) *FanoutExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FanoutExecutionUpdate) SetNillableCompletedAt(v *time.Time) *FanoutExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FanoutExecutionUpdate) ClearCompletedAt() *FanoutExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *FanoutExecutionUpdate) SetDurationMs(v int64) *FanoutExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *FanoutExecutionUpdate) SetNillableDurationMs(v *int64) *FanoutExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *FanoutExecutionUpdate) AddDurationMs(v int64) *FanoutExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the FanoutExecutionMutation object of the builder.
func (_u *FanoutExecutionUpdate) Mutation() *FanoutExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FanoutExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FanoutExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FanoutExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FanoutExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FanoutExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fanoutexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FanoutExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FanoutExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fanoutexecution.Table, fanoutexecution.Columns, sqlgraph.NewFieldSpec(fanoutexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SegmentIDCleared() {
		_spec.ClearField(fanoutexecution.FieldSegmentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fanoutexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(fanoutexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(fanoutexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fanoutexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fanoutexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(fanoutexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(fanoutexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(fanoutexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(fanoutexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fanoutexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FanoutExecutionUpdateOne is the builder for updating a single FanoutExecution entity.
type FanoutExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FanoutExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *FanoutExecutionUpdateOne) SetStatus(v fanoutexecution.Status) *FanoutExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FanoutExecutionUpdateOne) SetNillableStatus(v *fanoutexecution.Status) *FanoutExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *FanoutExecutionUpdateOne) SetErrorKind(v string) *FanoutExecutionUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *FanoutExecutionUpdateOne) SetNillableErrorKind(v *string) *FanoutExecutionUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *FanoutExecutionUpdateOne) ClearErrorKind() *FanoutExecutionUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FanoutExecutionUpdateOne) SetErrorMessage(v string) *FanoutExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FanoutExecutionUpdateOne) SetNillableErrorMessage(v *string) *FanoutExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FanoutExecutionUpdateOne) ClearErrorMessage() *FanoutExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FanoutExecutionUpdateOne) SetCompletedAt(v time.Time) *FanoutExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FanoutExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *FanoutExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FanoutExecutionUpdateOne) ClearCompletedAt() *FanoutExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *FanoutExecutionUpdateOne) SetDurationMs(v int64) *FanoutExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *FanoutExecutionUpdateOne) SetNillableDurationMs(v *int64) *FanoutExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *FanoutExecutionUpdateOne) AddDurationMs(v int64) *FanoutExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the FanoutExecutionMutation object of the builder.
func (_u *FanoutExecutionUpdateOne) Mutation() *FanoutExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the FanoutExecutionUpdate builder.
func (_u *FanoutExecutionUpdateOne) Where(ps ...predicate.FanoutExecution) *FanoutExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FanoutExecutionUpdateOne) Select(field string, fields ...string) *FanoutExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FanoutExecution entity.
func (_u *FanoutExecutionUpdateOne) Save(ctx context.Context) (*FanoutExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FanoutExecutionUpdateOne) SaveX(ctx context.Context) *FanoutExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FanoutExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FanoutExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FanoutExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fanoutexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FanoutExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FanoutExecutionUpdateOne) sqlSave(ctx context.Context) (_node *FanoutExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fanoutexecution.Table, fanoutexecution.Columns, sqlgraph.NewFieldSpec(fanoutexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FanoutExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fanoutexecution.FieldID)
		for _, f := range fields {
			if !fanoutexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fanoutexecution.FieldID {
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
	if _u.mutation.SegmentIDCleared() {
		_spec.ClearField(fanoutexecution.FieldSegmentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fanoutexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(fanoutexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(fanoutexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fanoutexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fanoutexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(fanoutexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(fanoutexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(fanoutexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(fanoutexecution.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &FanoutExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fanoutexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
