// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/fanoutexecution"
	"github.com/homekeep/butlerd/ent/predicate"
)

// FanoutExecutionDelete is the builder for deleting a FanoutExecution entity.
type FanoutExecutionDelete struct {
	config
	hooks    []Hook
	mutation *FanoutExecutionMutation
}

// Where appends a list predicates to the FanoutExecutionDelete builder.
func (_d *FanoutExecutionDelete) Where(ps ...predicate.FanoutExecution) *FanoutExecutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FanoutExecutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FanoutExecutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FanoutExecutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fanoutexecution.Table, sqlgraph.NewFieldSpec(fanoutexecution.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FanoutExecutionDeleteOne is the builder for deleting a single FanoutExecution entity.
type FanoutExecutionDeleteOne struct {
	_d *FanoutExecutionDelete
}

// Where appends a list predicates to the FanoutExecutionDelete builder.
func (_d *FanoutExecutionDeleteOne) Where(ps ...predicate.FanoutExecution) *FanoutExecutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FanoutExecutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fanoutexecution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FanoutExecutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
