// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/connectorheartbeat"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ConnectorHeartbeatDelete is the builder for deleting a ConnectorHeartbeat entity.
type ConnectorHeartbeatDelete struct {
	config
	hooks    []Hook
	mutation *ConnectorHeartbeatMutation
}

// Where appends a list predicates to the ConnectorHeartbeatDelete builder.
func (_d *ConnectorHeartbeatDelete) Where(ps ...predicate.ConnectorHeartbeat) *ConnectorHeartbeatDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConnectorHeartbeatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorHeartbeatDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConnectorHeartbeatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(connectorheartbeat.Table, sqlgraph.NewFieldSpec(connectorheartbeat.FieldID, field.TypeString))
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

// ConnectorHeartbeatDeleteOne is the builder for deleting a single ConnectorHeartbeat entity.
type ConnectorHeartbeatDeleteOne struct {
	_d *ConnectorHeartbeatDelete
}

// Where appends a list predicates to the ConnectorHeartbeatDelete builder.
func (_d *ConnectorHeartbeatDeleteOne) Where(ps ...predicate.ConnectorHeartbeat) *ConnectorHeartbeatDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConnectorHeartbeatDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{connectorheartbeat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConnectorHeartbeatDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
