// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/connectorendpoint"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ConnectorEndpointDelete is the builder for deleting a ConnectorEndpoint entity.
type ConnectorEndpointDelete struct {
	config
	hooks    []Hook
	mutation *ConnectorEndpointMutation
}

// Where appends a list predicates to the ConnectorEndpointDelete builder.
func (_d *ConnectorEndpointDelete) Where(ps ...predicate.ConnectorEndpoint) *ConnectorEndpointDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConnectorEndpointDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorEndpointDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConnectorEndpointDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(connectorendpoint.Table, sqlgraph.NewFieldSpec(connectorendpoint.FieldID, field.TypeString))
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

// ConnectorEndpointDeleteOne is the builder for deleting a single ConnectorEndpoint entity.
type ConnectorEndpointDeleteOne struct {
	_d *ConnectorEndpointDelete
}

// Where appends a list predicates to the ConnectorEndpointDelete builder.
func (_d *ConnectorEndpointDeleteOne) Where(ps ...predicate.ConnectorEndpoint) *ConnectorEndpointDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConnectorEndpointDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{connectorendpoint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorEndpointDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
