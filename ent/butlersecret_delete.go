// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/butlersecret"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ButlerSecretDelete is the builder for deleting a ButlerSecret entity.
type ButlerSecretDelete struct {
	config
	hooks    []Hook
	mutation *ButlerSecretMutation
}

// Where appends a list predicates to the ButlerSecretDelete builder.
func (_d *ButlerSecretDelete) Where(ps ...predicate.ButlerSecret) *ButlerSecretDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ButlerSecretDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ButlerSecretDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ButlerSecretDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(butlersecret.Table, sqlgraph.NewFieldSpec(butlersecret.FieldID, field.TypeString))
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

// ButlerSecretDeleteOne is the builder for deleting a single ButlerSecret entity.
type ButlerSecretDeleteOne struct {
	_d *ButlerSecretDelete
}

// Where appends a list predicates to the ButlerSecretDelete builder.
func (_d *ButlerSecretDeleteOne) Where(ps ...predicate.ButlerSecret) *ButlerSecretDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ButlerSecretDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{butlersecret.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ButlerSecretDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
