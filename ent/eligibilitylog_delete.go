// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/eligibilitylog"
	"github.com/homekeep/butlerd/ent/predicate"
)

// EligibilityLogDelete is the builder for deleting a EligibilityLog entity.
type EligibilityLogDelete struct {
	config
	hooks    []Hook
	mutation *EligibilityLogMutation
}

// Where appends a list predicates to the EligibilityLogDelete builder.
func (_d *EligibilityLogDelete) Where(ps ...predicate.EligibilityLog) *EligibilityLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EligibilityLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EligibilityLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EligibilityLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(eligibilitylog.Table, sqlgraph.NewFieldSpec(eligibilitylog.FieldID, field.TypeString))
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

// EligibilityLogDeleteOne is the builder for deleting a single EligibilityLog entity.
type EligibilityLogDeleteOne struct {
	_d *EligibilityLogDelete
}

// Where appends a list predicates to the EligibilityLogDelete builder.
func (_d *EligibilityLogDeleteOne) Where(ps ...predicate.EligibilityLog) *EligibilityLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EligibilityLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{eligibilitylog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EligibilityLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
