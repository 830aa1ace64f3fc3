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
	"github.com/homekeep/butlerd/ent/connectorendpoint"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ConnectorEndpointUpdate is the builder for updating ConnectorEndpoint entities.
type ConnectorEndpointUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorEndpointMutation
}

// Where appends a list predicates to the ConnectorEndpointUpdate builder.
func (_u *ConnectorEndpointUpdate) Where(ps ...predicate.ConnectorEndpoint) *ConnectorEndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConnectorType sets the "connector_type" field.
func (_u *ConnectorEndpointUpdate) SetConnectorType(v string) *ConnectorEndpointUpdate {
	_u.mutation.SetConnectorType(v)
	return _u
}

// SetNillableConnectorType sets the "connector_type" field if the given value is not nil.
func (_u *ConnectorEndpointUpdate) SetNillableConnectorType(v *string) *ConnectorEndpointUpdate {
	if v != nil {
		_u.SetConnectorType(*v)
	}
	return _u
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (_u *ConnectorEndpointUpdate) SetEndpointIdentity(v string) *ConnectorEndpointUpdate {
	_u.mutation.SetEndpointIdentity(v)
	return _u
}

// SetNillableEndpointIdentity sets the "endpoint_identity" field if the given value is not nil.
func (_u *ConnectorEndpointUpdate) SetNillableEndpointIdentity(v *string) *ConnectorEndpointUpdate {
	if v != nil {
		_u.SetEndpointIdentity(*v)
	}
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *ConnectorEndpointUpdate) SetInstanceID(v string) *ConnectorEndpointUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *ConnectorEndpointUpdate) SetNillableInstanceID(v *string) *ConnectorEndpointUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *ConnectorEndpointUpdate) ClearInstanceID() *ConnectorEndpointUpdate {
	_u.mutation.ClearInstanceID()
	return _u
}

// SetState sets the "state" field.
func (_u *ConnectorEndpointUpdate) SetState(v connectorendpoint.State) *ConnectorEndpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ConnectorEndpointUpdate) SetNillableState(v *connectorendpoint.State) *ConnectorEndpointUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCounters sets the "counters" field.
func (_u *ConnectorEndpointUpdate) SetCounters(v map[string]int64) *ConnectorEndpointUpdate {
	_u.mutation.SetCounters(v)
	return _u
}

// ClearCounters clears the value of the "counters" field.
func (_u *ConnectorEndpointUpdate) ClearCounters() *ConnectorEndpointUpdate {
	_u.mutation.ClearCounters()
	return _u
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *ConnectorEndpointUpdate) SetCheckpoint(v map[string]interface{}) *ConnectorEndpointUpdate {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *ConnectorEndpointUpdate) ClearCheckpoint() *ConnectorEndpointUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ConnectorEndpointUpdate) SetLastSeenAt(v time.Time) *ConnectorEndpointUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// Mutation returns the ConnectorEndpointMutation object of the builder.
func (_u *ConnectorEndpointUpdate) Mutation() *ConnectorEndpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorEndpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorEndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorEndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorEndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorEndpointUpdate) defaults() {
	if _, ok := _u.mutation.LastSeenAt(); !ok {
		v := connectorendpoint.UpdateDefaultLastSeenAt()
		_u.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorEndpointUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := connectorendpoint.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ConnectorEndpoint.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorEndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectorendpoint.Table, connectorendpoint.Columns, sqlgraph.NewFieldSpec(connectorendpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConnectorType(); ok {
		_spec.SetField(connectorendpoint.FieldConnectorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointIdentity(); ok {
		_spec.SetField(connectorendpoint.FieldEndpointIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(connectorendpoint.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(connectorendpoint.FieldInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(connectorendpoint.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Counters(); ok {
		_spec.SetField(connectorendpoint.FieldCounters, field.TypeJSON, value)
	}
	if _u.mutation.CountersCleared() {
		_spec.ClearField(connectorendpoint.FieldCounters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(connectorendpoint.FieldCheckpoint, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(connectorendpoint.FieldCheckpoint, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(connectorendpoint.FieldLastSeenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorEndpointUpdateOne is the builder for updating a single ConnectorEndpoint entity.
type ConnectorEndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorEndpointMutation
}

// SetConnectorType sets the "connector_type" field.
func (_u *ConnectorEndpointUpdateOne) SetConnectorType(v string) *ConnectorEndpointUpdateOne {
	_u.mutation.SetConnectorType(v)
	return _u
}

// SetNillableConnectorType sets the "connector_type" field if the given value is not nil.
func (_u *ConnectorEndpointUpdateOne) SetNillableConnectorType(v *string) *ConnectorEndpointUpdateOne {
	if v != nil {
		_u.SetConnectorType(*v)
	}
	return _u
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (_u *ConnectorEndpointUpdateOne) SetEndpointIdentity(v string) *ConnectorEndpointUpdateOne {
	_u.mutation.SetEndpointIdentity(v)
	return _u
}

// SetNillableEndpointIdentity sets the "endpoint_identity" field if the given value is not nil.
func (_u *ConnectorEndpointUpdateOne) SetNillableEndpointIdentity(v *string) *ConnectorEndpointUpdateOne {
	if v != nil {
		_u.SetEndpointIdentity(*v)
	}
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *ConnectorEndpointUpdateOne) SetInstanceID(v string) *ConnectorEndpointUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *ConnectorEndpointUpdateOne) SetNillableInstanceID(v *string) *ConnectorEndpointUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (_u *ConnectorEndpointUpdateOne) ClearInstanceID() *ConnectorEndpointUpdateOne {
	_u.mutation.ClearInstanceID()
	return _u
}

// SetState sets the "state" field.
func (_u *ConnectorEndpointUpdateOne) SetState(v connectorendpoint.State) *ConnectorEndpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ConnectorEndpointUpdateOne) SetNillableState(v *connectorendpoint.State) *ConnectorEndpointUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCounters sets the "counters" field.
func (_u *ConnectorEndpointUpdateOne) SetCounters(v map[string]int64) *ConnectorEndpointUpdateOne {
	_u.mutation.SetCounters(v)
	return _u
}

// ClearCounters clears the value of the "counters" field.
func (_u *ConnectorEndpointUpdateOne) ClearCounters() *ConnectorEndpointUpdateOne {
	_u.mutation.ClearCounters()
	return _u
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *ConnectorEndpointUpdateOne) SetCheckpoint(v map[string]interface{}) *ConnectorEndpointUpdateOne {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *ConnectorEndpointUpdateOne) ClearCheckpoint() *ConnectorEndpointUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ConnectorEndpointUpdateOne) SetLastSeenAt(v time.Time) *ConnectorEndpointUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// Mutation returns the ConnectorEndpointMutation object of the builder.
func (_u *ConnectorEndpointUpdateOne) Mutation() *ConnectorEndpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorEndpointUpdate builder.
func (_u *ConnectorEndpointUpdateOne) Where(ps ...predicate.ConnectorEndpoint) *ConnectorEndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorEndpointUpdateOne) Select(field string, fields ...string) *ConnectorEndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectorEndpoint entity.
func (_u *ConnectorEndpointUpdateOne) Save(ctx context.Context) (*ConnectorEndpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorEndpointUpdateOne) SaveX(ctx context.Context) *ConnectorEndpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorEndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorEndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorEndpointUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSeenAt(); !ok {
		v := connectorendpoint.UpdateDefaultLastSeenAt()
		_u.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorEndpointUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := connectorendpoint.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ConnectorEndpoint.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorEndpointUpdateOne) sqlSave(ctx context.Context) (_node *ConnectorEndpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectorendpoint.Table, connectorendpoint.Columns, sqlgraph.NewFieldSpec(connectorendpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectorEndpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectorendpoint.FieldID)
		for _, f := range fields {
			if !connectorendpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectorendpoint.FieldID {
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
	if value, ok := _u.mutation.ConnectorType(); ok {
		_spec.SetField(connectorendpoint.FieldConnectorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointIdentity(); ok {
		_spec.SetField(connectorendpoint.FieldEndpointIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(connectorendpoint.FieldInstanceID, field.TypeString, value)
	}
	if _u.mutation.InstanceIDCleared() {
		_spec.ClearField(connectorendpoint.FieldInstanceID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(connectorendpoint.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Counters(); ok {
		_spec.SetField(connectorendpoint.FieldCounters, field.TypeJSON, value)
	}
	if _u.mutation.CountersCleared() {
		_spec.ClearField(connectorendpoint.FieldCounters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(connectorendpoint.FieldCheckpoint, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(connectorendpoint.FieldCheckpoint, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(connectorendpoint.FieldLastSeenAt, field.TypeTime, value)
	}
	_node = &ConnectorEndpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectorendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
