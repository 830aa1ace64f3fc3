// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/connectorendpoint"
)

// ConnectorEndpointCreate is the builder for creating a ConnectorEndpoint entity.
type ConnectorEndpointCreate struct {
	config
	mutation *ConnectorEndpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConnectorType sets the "connector_type" field.
func (_c *ConnectorEndpointCreate) SetConnectorType(v string) *ConnectorEndpointCreate {
	_c.mutation.SetConnectorType(v)
	return _c
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (_c *ConnectorEndpointCreate) SetEndpointIdentity(v string) *ConnectorEndpointCreate {
	_c.mutation.SetEndpointIdentity(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *ConnectorEndpointCreate) SetInstanceID(v string) *ConnectorEndpointCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *ConnectorEndpointCreate) SetNillableInstanceID(v *string) *ConnectorEndpointCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ConnectorEndpointCreate) SetState(v connectorendpoint.State) *ConnectorEndpointCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ConnectorEndpointCreate) SetNillableState(v *connectorendpoint.State) *ConnectorEndpointCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCounters sets the "counters" field.
func (_c *ConnectorEndpointCreate) SetCounters(v map[string]int64) *ConnectorEndpointCreate {
	_c.mutation.SetCounters(v)
	return _c
}

// SetCheckpoint sets the "checkpoint" field.
func (_c *ConnectorEndpointCreate) SetCheckpoint(v map[string]interface{}) *ConnectorEndpointCreate {
	_c.mutation.SetCheckpoint(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *ConnectorEndpointCreate) SetFirstSeenAt(v time.Time) *ConnectorEndpointCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *ConnectorEndpointCreate) SetNillableFirstSeenAt(v *time.Time) *ConnectorEndpointCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *ConnectorEndpointCreate) SetLastSeenAt(v time.Time) *ConnectorEndpointCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *ConnectorEndpointCreate) SetNillableLastSeenAt(v *time.Time) *ConnectorEndpointCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConnectorEndpointCreate) SetID(v string) *ConnectorEndpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConnectorEndpointMutation object of the builder.
func (_c *ConnectorEndpointCreate) Mutation() *ConnectorEndpointMutation {
	return _c.mutation
}

// Save creates the ConnectorEndpoint in the database.
func (_c *ConnectorEndpointCreate) Save(ctx context.Context) (*ConnectorEndpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorEndpointCreate) SaveX(ctx context.Context) *ConnectorEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorEndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorEndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorEndpointCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := connectorendpoint.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := connectorendpoint.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := connectorendpoint.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorEndpointCreate) check() error {
	if _, ok := _c.mutation.ConnectorType(); !ok {
		return &ValidationError{Name: "connector_type", err: errors.New(`ent: missing required field "ConnectorEndpoint.connector_type"`)}
	}
	if _, ok := _c.mutation.EndpointIdentity(); !ok {
		return &ValidationError{Name: "endpoint_identity", err: errors.New(`ent: missing required field "ConnectorEndpoint.endpoint_identity"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ConnectorEndpoint.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := connectorendpoint.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ConnectorEndpoint.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "ConnectorEndpoint.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "ConnectorEndpoint.last_seen_at"`)}
	}
	return nil
}

func (_c *ConnectorEndpointCreate) sqlSave(ctx context.Context) (*ConnectorEndpoint, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ConnectorEndpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConnectorEndpointCreate) createSpec() (*ConnectorEndpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectorEndpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectorendpoint.Table, sqlgraph.NewFieldSpec(connectorendpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConnectorType(); ok {
		_spec.SetField(connectorendpoint.FieldConnectorType, field.TypeString, value)
		_node.ConnectorType = value
	}
	if value, ok := _c.mutation.EndpointIdentity(); ok {
		_spec.SetField(connectorendpoint.FieldEndpointIdentity, field.TypeString, value)
		_node.EndpointIdentity = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(connectorendpoint.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(connectorendpoint.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Counters(); ok {
		_spec.SetField(connectorendpoint.FieldCounters, field.TypeJSON, value)
		_node.Counters = value
	}
	if value, ok := _c.mutation.Checkpoint(); ok {
		_spec.SetField(connectorendpoint.FieldCheckpoint, field.TypeJSON, value)
		_node.Checkpoint = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(connectorendpoint.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(connectorendpoint.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConnectorEndpoint.Create().
//		SetConnectorType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConnectorEndpointUpsert) {
//			SetConnectorType(v+v).
//		}).
//		Exec(ctx)
func (_c *ConnectorEndpointCreate) OnConflict(opts ...sql.ConflictOption) *ConnectorEndpointUpsertOne {
	_c.conflict = opts
	return &ConnectorEndpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConnectorEndpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConnectorEndpointCreate) OnConflictColumns(columns ...string) *ConnectorEndpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConnectorEndpointUpsertOne{
		create: _c,
	}
}

type (
	// ConnectorEndpointUpsertOne is the builder for "upsert"-ing
	//  one ConnectorEndpoint node.
	ConnectorEndpointUpsertOne struct {
		create *ConnectorEndpointCreate
	}

	// ConnectorEndpointUpsert is the "OnConflict" setter.
	ConnectorEndpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetConnectorType sets the "connector_type" field.
func (u *ConnectorEndpointUpsert) SetConnectorType(v string) *ConnectorEndpointUpsert {
	u.Set(connectorendpoint.FieldConnectorType, v)
	return u
}

// UpdateConnectorType sets the "connector_type" field to the value that was provided on create.
func (u *ConnectorEndpointUpsert) UpdateConnectorType() *ConnectorEndpointUpsert {
	u.SetExcluded(connectorendpoint.FieldConnectorType)
	return u
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (u *ConnectorEndpointUpsert) SetEndpointIdentity(v string) *ConnectorEndpointUpsert {
	u.Set(connectorendpoint.FieldEndpointIdentity, v)
	return u
}

// UpdateEndpointIdentity sets the "endpoint_identity" field to the value that was provided on create.
func (u *ConnectorEndpointUpsert) UpdateEndpointIdentity() *ConnectorEndpointUpsert {
	u.SetExcluded(connectorendpoint.FieldEndpointIdentity)
	return u
}

// SetInstanceID sets the "instance_id" field.
func (u *ConnectorEndpointUpsert) SetInstanceID(v string) *ConnectorEndpointUpsert {
	u.Set(connectorendpoint.FieldInstanceID, v)
	return u
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *ConnectorEndpointUpsert) UpdateInstanceID() *ConnectorEndpointUpsert {
	u.SetExcluded(connectorendpoint.FieldInstanceID)
	return u
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *ConnectorEndpointUpsert) ClearInstanceID() *ConnectorEndpointUpsert {
	u.SetNull(connectorendpoint.FieldInstanceID)
	return u
}

// SetState sets the "state" field.
func (u *ConnectorEndpointUpsert) SetState(v connectorendpoint.State) *ConnectorEndpointUpsert {
	u.Set(connectorendpoint.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ConnectorEndpointUpsert) UpdateState() *ConnectorEndpointUpsert {
	u.SetExcluded(connectorendpoint.FieldState)
	return u
}

// SetCounters sets the "counters" field.
func (u *ConnectorEndpointUpsert) SetCounters(v map[string]int64) *ConnectorEndpointUpsert {
	u.Set(connectorendpoint.FieldCounters, v)
	return u
}

// UpdateCounters sets the "counters" field to the value that was provided on create.
func (u *ConnectorEndpointUpsert) UpdateCounters() *ConnectorEndpointUpsert {
	u.SetExcluded(connectorendpoint.FieldCounters)
	return u
}

// ClearCounters clears the value of the "counters" field.
func (u *ConnectorEndpointUpsert) ClearCounters() *ConnectorEndpointUpsert {
	u.SetNull(connectorendpoint.FieldCounters)
	return u
}

// SetCheckpoint sets the "checkpoint" field.
func (u *ConnectorEndpointUpsert) SetCheckpoint(v map[string]interface{}) *ConnectorEndpointUpsert {
	u.Set(connectorendpoint.FieldCheckpoint, v)
	return u
}

// UpdateCheckpoint sets the "checkpoint" field to the value that was provided on create.
func (u *ConnectorEndpointUpsert) UpdateCheckpoint() *ConnectorEndpointUpsert {
	u.SetExcluded(connectorendpoint.FieldCheckpoint)
	return u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (u *ConnectorEndpointUpsert) ClearCheckpoint() *ConnectorEndpointUpsert {
	u.SetNull(connectorendpoint.FieldCheckpoint)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ConnectorEndpointUpsert) SetLastSeenAt(v time.Time) *ConnectorEndpointUpsert {
	u.Set(connectorendpoint.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ConnectorEndpointUpsert) UpdateLastSeenAt() *ConnectorEndpointUpsert {
	u.SetExcluded(connectorendpoint.FieldLastSeenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ConnectorEndpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(connectorendpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConnectorEndpointUpsertOne) UpdateNewValues() *ConnectorEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(connectorendpoint.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(connectorendpoint.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConnectorEndpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConnectorEndpointUpsertOne) Ignore() *ConnectorEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConnectorEndpointUpsertOne) DoNothing() *ConnectorEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConnectorEndpointCreate.OnConflict
// documentation for more info.
func (u *ConnectorEndpointUpsertOne) Update(set func(*ConnectorEndpointUpsert)) *ConnectorEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConnectorEndpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetConnectorType sets the "connector_type" field.
func (u *ConnectorEndpointUpsertOne) SetConnectorType(v string) *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetConnectorType(v)
	})
}

// UpdateConnectorType sets the "connector_type" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertOne) UpdateConnectorType() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateConnectorType()
	})
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (u *ConnectorEndpointUpsertOne) SetEndpointIdentity(v string) *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetEndpointIdentity(v)
	})
}

// UpdateEndpointIdentity sets the "endpoint_identity" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertOne) UpdateEndpointIdentity() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateEndpointIdentity()
	})
}

// SetInstanceID sets the "instance_id" field.
func (u *ConnectorEndpointUpsertOne) SetInstanceID(v string) *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetInstanceID(v)
	})
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertOne) UpdateInstanceID() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateInstanceID()
	})
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *ConnectorEndpointUpsertOne) ClearInstanceID() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.ClearInstanceID()
	})
}

// SetState sets the "state" field.
func (u *ConnectorEndpointUpsertOne) SetState(v connectorendpoint.State) *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertOne) UpdateState() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateState()
	})
}

// SetCounters sets the "counters" field.
func (u *ConnectorEndpointUpsertOne) SetCounters(v map[string]int64) *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetCounters(v)
	})
}

// UpdateCounters sets the "counters" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertOne) UpdateCounters() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateCounters()
	})
}

// ClearCounters clears the value of the "counters" field.
func (u *ConnectorEndpointUpsertOne) ClearCounters() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.ClearCounters()
	})
}

// SetCheckpoint sets the "checkpoint" field.
func (u *ConnectorEndpointUpsertOne) SetCheckpoint(v map[string]interface{}) *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetCheckpoint(v)
	})
}

// UpdateCheckpoint sets the "checkpoint" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertOne) UpdateCheckpoint() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateCheckpoint()
	})
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (u *ConnectorEndpointUpsertOne) ClearCheckpoint() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.ClearCheckpoint()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ConnectorEndpointUpsertOne) SetLastSeenAt(v time.Time) *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertOne) UpdateLastSeenAt() *ConnectorEndpointUpsertOne {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *ConnectorEndpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConnectorEndpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConnectorEndpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConnectorEndpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConnectorEndpointUpsertOne.ID is not supported by MySQL driver. Use ConnectorEndpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConnectorEndpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConnectorEndpointCreateBulk is the builder for creating many ConnectorEndpoint entities in bulk.
type ConnectorEndpointCreateBulk struct {
	config
	err      error
	builders []*ConnectorEndpointCreate
	conflict []sql.ConflictOption
}

// Save creates the ConnectorEndpoint entities in the database.
func (_c *ConnectorEndpointCreateBulk) Save(ctx context.Context) ([]*ConnectorEndpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectorEndpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorEndpointMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConnectorEndpointCreateBulk) SaveX(ctx context.Context) []*ConnectorEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorEndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorEndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConnectorEndpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConnectorEndpointUpsert) {
//			SetConnectorType(v+v).
//		}).
//		Exec(ctx)
func (_c *ConnectorEndpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConnectorEndpointUpsertBulk {
	_c.conflict = opts
	return &ConnectorEndpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConnectorEndpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConnectorEndpointCreateBulk) OnConflictColumns(columns ...string) *ConnectorEndpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConnectorEndpointUpsertBulk{
		create: _c,
	}
}

// ConnectorEndpointUpsertBulk is the builder for "upsert"-ing
// a bulk of ConnectorEndpoint nodes.
type ConnectorEndpointUpsertBulk struct {
	create *ConnectorEndpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ConnectorEndpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(connectorendpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConnectorEndpointUpsertBulk) UpdateNewValues() *ConnectorEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(connectorendpoint.FieldID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(connectorendpoint.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConnectorEndpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConnectorEndpointUpsertBulk) Ignore() *ConnectorEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConnectorEndpointUpsertBulk) DoNothing() *ConnectorEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConnectorEndpointCreateBulk.OnConflict
// documentation for more info.
func (u *ConnectorEndpointUpsertBulk) Update(set func(*ConnectorEndpointUpsert)) *ConnectorEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConnectorEndpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetConnectorType sets the "connector_type" field.
func (u *ConnectorEndpointUpsertBulk) SetConnectorType(v string) *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetConnectorType(v)
	})
}

// UpdateConnectorType sets the "connector_type" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertBulk) UpdateConnectorType() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateConnectorType()
	})
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (u *ConnectorEndpointUpsertBulk) SetEndpointIdentity(v string) *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetEndpointIdentity(v)
	})
}

// UpdateEndpointIdentity sets the "endpoint_identity" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertBulk) UpdateEndpointIdentity() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateEndpointIdentity()
	})
}

// SetInstanceID sets the "instance_id" field.
func (u *ConnectorEndpointUpsertBulk) SetInstanceID(v string) *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetInstanceID(v)
	})
}

// UpdateInstanceID sets the "instance_id" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertBulk) UpdateInstanceID() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateInstanceID()
	})
}

// ClearInstanceID clears the value of the "instance_id" field.
func (u *ConnectorEndpointUpsertBulk) ClearInstanceID() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.ClearInstanceID()
	})
}

// SetState sets the "state" field.
func (u *ConnectorEndpointUpsertBulk) SetState(v connectorendpoint.State) *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertBulk) UpdateState() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateState()
	})
}

// SetCounters sets the "counters" field.
func (u *ConnectorEndpointUpsertBulk) SetCounters(v map[string]int64) *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetCounters(v)
	})
}

// UpdateCounters sets the "counters" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertBulk) UpdateCounters() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateCounters()
	})
}

// ClearCounters clears the value of the "counters" field.
func (u *ConnectorEndpointUpsertBulk) ClearCounters() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.ClearCounters()
	})
}

// SetCheckpoint sets the "checkpoint" field.
func (u *ConnectorEndpointUpsertBulk) SetCheckpoint(v map[string]interface{}) *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetCheckpoint(v)
	})
}

// UpdateCheckpoint sets the "checkpoint" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertBulk) UpdateCheckpoint() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateCheckpoint()
	})
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (u *ConnectorEndpointUpsertBulk) ClearCheckpoint() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.ClearCheckpoint()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ConnectorEndpointUpsertBulk) SetLastSeenAt(v time.Time) *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ConnectorEndpointUpsertBulk) UpdateLastSeenAt() *ConnectorEndpointUpsertBulk {
	return u.Update(func(s *ConnectorEndpointUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *ConnectorEndpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConnectorEndpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConnectorEndpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConnectorEndpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
