// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/connectorheartbeat"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ConnectorHeartbeatUpdate is the builder for updating ConnectorHeartbeat entities.
type ConnectorHeartbeatUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorHeartbeatMutation
}

// Where appends a list predicates to the ConnectorHeartbeatUpdate builder.
func (_u *ConnectorHeartbeatUpdate) Where(ps ...predicate.ConnectorHeartbeat) *ConnectorHeartbeatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ConnectorHeartbeatMutation object of the builder.
func (_u *ConnectorHeartbeatUpdate) Mutation() *ConnectorHeartbeatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorHeartbeatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorHeartbeatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorHeartbeatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorHeartbeatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConnectorHeartbeatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(connectorheartbeat.Table, connectorheartbeat.Columns, sqlgraph.NewFieldSpec(connectorheartbeat.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(connectorheartbeat.FieldInstanceID, field.TypeString)
	}
	if _u.mutation.CountersCleared() {
		_spec.ClearField(connectorheartbeat.FieldCounters, field.TypeJSON)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(connectorheartbeat.FieldCheckpoint, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorheartbeat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorHeartbeatUpdateOne is the builder for updating a single ConnectorHeartbeat entity.
type ConnectorHeartbeatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorHeartbeatMutation
}

// Mutation returns the ConnectorHeartbeatMutation object of the builder.
func (_u *ConnectorHeartbeatUpdateOne) Mutation() *ConnectorHeartbeatMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorHeartbeatUpdate builder.
func (_u *ConnectorHeartbeatUpdateOne) Where(ps ...predicate.ConnectorHeartbeat) *ConnectorHeartbeatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorHeartbeatUpdateOne) Select(field string, fields ...string) *ConnectorHeartbeatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectorHeartbeat entity.
func (_u *ConnectorHeartbeatUpdateOne) Save(ctx context.Context) (*ConnectorHeartbeat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorHeartbeatUpdateOne) SaveX(ctx context.Context) *ConnectorHeartbeat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorHeartbeatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorHeartbeatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConnectorHeartbeatUpdateOne) sqlSave(ctx context.Context) (_node *ConnectorHeartbeat, err error) {
	_spec := sqlgraph.NewUpdateSpec(connectorheartbeat.Table, connectorheartbeat.Columns, sqlgraph.NewFieldSpec(connectorheartbeat.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectorHeartbeat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectorheartbeat.FieldID)
		for _, f := range fields {
			if !connectorheartbeat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectorheartbeat.FieldID {
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
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(connectorheartbeat.FieldInstanceID, field.TypeString)
	}
	if _u.mutation.CountersCleared() {
		_spec.ClearField(connectorheartbeat.FieldCounters, field.TypeJSON)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(connectorheartbeat.FieldCheckpoint, field.TypeJSON)
	}
	_node = &ConnectorHeartbeat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorheartbeat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
