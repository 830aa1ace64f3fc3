// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/predicate"
	"github.com/homekeep/butlerd/ent/scheduledtask"
)

// ScheduledTaskDelete is the builder for deleting a ScheduledTask entity.
type ScheduledTaskDelete struct {
	config
	hooks    []Hook
	mutation *ScheduledTaskMutation
}

// Where appends a list predicates to the ScheduledTaskDelete builder.
func (_d *ScheduledTaskDelete) Where(ps ...predicate.ScheduledTask) *ScheduledTaskDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScheduledTaskDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduledTaskDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScheduledTaskDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scheduledtask.Table, sqlgraph.NewFieldSpec(scheduledtask.FieldID, field.TypeString))
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

// ScheduledTaskDeleteOne is the builder for deleting a single ScheduledTask entity.
type ScheduledTaskDeleteOne struct {
	_d *ScheduledTaskDelete
}

// Where appends a list predicates to the ScheduledTaskDelete builder.
func (_d *ScheduledTaskDeleteOne) Where(ps ...predicate.ScheduledTask) *ScheduledTaskDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScheduledTaskDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scheduledtask.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduledTaskDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
