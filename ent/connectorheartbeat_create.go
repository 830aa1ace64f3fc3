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
	"github.com/homekeep/butlerd/ent/connectorheartbeat"
)

// ConnectorHeartbeatCreate is the builder for creating a ConnectorHeartbeat entity.
type ConnectorHeartbeatCreate struct {
	config
	mutation *ConnectorHeartbeatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConnectorType sets the "connector_type" field.
func (_c *ConnectorHeartbeatCreate) SetConnectorType(v string) *ConnectorHeartbeatCreate {
	_c.mutation.SetConnectorType(v)
	return _c
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (_c *ConnectorHeartbeatCreate) SetEndpointIdentity(v string) *ConnectorHeartbeatCreate {
	_c.mutation.SetEndpointIdentity(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *ConnectorHeartbeatCreate) SetInstanceID(v string) *ConnectorHeartbeatCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_c *ConnectorHeartbeatCreate) SetNillableInstanceID(v *string) *ConnectorHeartbeatCreate {
	if v != nil {
		_c.SetInstanceID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ConnectorHeartbeatCreate) SetState(v string) *ConnectorHeartbeatCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetCounters sets the "counters" field.
func (_c *ConnectorHeartbeatCreate) SetCounters(v map[string]int64) *ConnectorHeartbeatCreate {
	_c.mutation.SetCounters(v)
	return _c
}

// SetCheckpoint sets the "checkpoint" field.
func (_c *ConnectorHeartbeatCreate) SetCheckpoint(v map[string]interface{}) *ConnectorHeartbeatCreate {
	_c.mutation.SetCheckpoint(v)
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ConnectorHeartbeatCreate) SetSentAt(v time.Time) *ConnectorHeartbeatCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ConnectorHeartbeatCreate) SetReceivedAt(v time.Time) *ConnectorHeartbeatCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *ConnectorHeartbeatCreate) SetNillableReceivedAt(v *time.Time) *ConnectorHeartbeatCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConnectorHeartbeatCreate) SetID(v string) *ConnectorHeartbeatCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConnectorHeartbeatMutation object of the builder.
func (_c *ConnectorHeartbeatCreate) Mutation() *ConnectorHeartbeatMutation {
	return _c.mutation
}

// Save creates the ConnectorHeartbeat in the database.
func (_c *ConnectorHeartbeatCreate) Save(ctx context.Context) (*ConnectorHeartbeat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorHeartbeatCreate) SaveX(ctx context.Context) *ConnectorHeartbeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorHeartbeatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorHeartbeatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorHeartbeatCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := connectorheartbeat.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorHeartbeatCreate) check() error {
	if _, ok := _c.mutation.ConnectorType(); !ok {
		return &ValidationError{Name: "connector_type", err: errors.New(`ent: missing required field "ConnectorHeartbeat.connector_type"`)}
	}
	if _, ok := _c.mutation.EndpointIdentity(); !ok {
		return &ValidationError{Name: "endpoint_identity", err: errors.New(`ent: missing required field "ConnectorHeartbeat.endpoint_identity"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ConnectorHeartbeat.state"`)}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "ConnectorHeartbeat.sent_at"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "ConnectorHeartbeat.received_at"`)}
	}
	return nil
}

func (_c *ConnectorHeartbeatCreate) sqlSave(ctx context.Context) (*ConnectorHeartbeat, error) {
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
			return nil, fmt.Errorf("unexpected ConnectorHeartbeat.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConnectorHeartbeatCreate) createSpec() (*ConnectorHeartbeat, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectorHeartbeat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectorheartbeat.Table, sqlgraph.NewFieldSpec(connectorheartbeat.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConnectorType(); ok {
		_spec.SetField(connectorheartbeat.FieldConnectorType, field.TypeString, value)
		_node.ConnectorType = value
	}
	if value, ok := _c.mutation.EndpointIdentity(); ok {
		_spec.SetField(connectorheartbeat.FieldEndpointIdentity, field.TypeString, value)
		_node.EndpointIdentity = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(connectorheartbeat.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(connectorheartbeat.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Counters(); ok {
		_spec.SetField(connectorheartbeat.FieldCounters, field.TypeJSON, value)
		_node.Counters = value
	}
	if value, ok := _c.mutation.Checkpoint(); ok {
		_spec.SetField(connectorheartbeat.FieldCheckpoint, field.TypeJSON, value)
		_node.Checkpoint = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(connectorheartbeat.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(connectorheartbeat.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConnectorHeartbeat.Create().
//		SetConnectorType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConnectorHeartbeatUpsert) {
//			SetConnectorType(v+v).
//		}).
//		Exec(ctx)
func (_c *ConnectorHeartbeatCreate) OnConflict(opts ...sql.ConflictOption) *ConnectorHeartbeatUpsertOne {
	_c.conflict = opts
	return &ConnectorHeartbeatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConnectorHeartbeat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConnectorHeartbeatCreate) OnConflictColumns(columns ...string) *ConnectorHeartbeatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConnectorHeartbeatUpsertOne{
		create: _c,
	}
}

type (
	// ConnectorHeartbeatUpsertOne is the builder for "upsert"-ing
	//  one ConnectorHeartbeat node.
	ConnectorHeartbeatUpsertOne struct {
		create *ConnectorHeartbeatCreate
	}

	// ConnectorHeartbeatUpsert is the "OnConflict" setter.
	ConnectorHeartbeatUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ConnectorHeartbeat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(connectorheartbeat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConnectorHeartbeatUpsertOne) UpdateNewValues() *ConnectorHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(connectorheartbeat.FieldID)
		}
		if _, exists := u.create.mutation.ConnectorType(); exists {
			s.SetIgnore(connectorheartbeat.FieldConnectorType)
		}
		if _, exists := u.create.mutation.EndpointIdentity(); exists {
			s.SetIgnore(connectorheartbeat.FieldEndpointIdentity)
		}
		if _, exists := u.create.mutation.InstanceID(); exists {
			s.SetIgnore(connectorheartbeat.FieldInstanceID)
		}
		if _, exists := u.create.mutation.State(); exists {
			s.SetIgnore(connectorheartbeat.FieldState)
		}
		if _, exists := u.create.mutation.Counters(); exists {
			s.SetIgnore(connectorheartbeat.FieldCounters)
		}
		if _, exists := u.create.mutation.Checkpoint(); exists {
			s.SetIgnore(connectorheartbeat.FieldCheckpoint)
		}
		if _, exists := u.create.mutation.SentAt(); exists {
			s.SetIgnore(connectorheartbeat.FieldSentAt)
		}
		if _, exists := u.create.mutation.ReceivedAt(); exists {
			s.SetIgnore(connectorheartbeat.FieldReceivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConnectorHeartbeat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConnectorHeartbeatUpsertOne) Ignore() *ConnectorHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConnectorHeartbeatUpsertOne) DoNothing() *ConnectorHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConnectorHeartbeatCreate.OnConflict
// documentation for more info.
func (u *ConnectorHeartbeatUpsertOne) Update(set func(*ConnectorHeartbeatUpsert)) *ConnectorHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConnectorHeartbeatUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ConnectorHeartbeatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConnectorHeartbeatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConnectorHeartbeatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConnectorHeartbeatUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConnectorHeartbeatUpsertOne.ID is not supported by MySQL driver. Use ConnectorHeartbeatUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConnectorHeartbeatUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConnectorHeartbeatCreateBulk is the builder for creating many ConnectorHeartbeat entities in bulk.
type ConnectorHeartbeatCreateBulk struct {
	config
	err      error
	builders []*ConnectorHeartbeatCreate
	conflict []sql.ConflictOption
}

// Save creates the ConnectorHeartbeat entities in the database.
func (_c *ConnectorHeartbeatCreateBulk) Save(ctx context.Context) ([]*ConnectorHeartbeat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectorHeartbeat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorHeartbeatMutation)
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
func (_c *ConnectorHeartbeatCreateBulk) SaveX(ctx context.Context) []*ConnectorHeartbeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorHeartbeatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorHeartbeatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConnectorHeartbeat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConnectorHeartbeatUpsert) {
//			SetConnectorType(v+v).
//		}).
//		Exec(ctx)
func (_c *ConnectorHeartbeatCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConnectorHeartbeatUpsertBulk {
	_c.conflict = opts
	return &ConnectorHeartbeatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConnectorHeartbeat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConnectorHeartbeatCreateBulk) OnConflictColumns(columns ...string) *ConnectorHeartbeatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConnectorHeartbeatUpsertBulk{
		create: _c,
	}
}

// ConnectorHeartbeatUpsertBulk is the builder for "upsert"-ing
// a bulk of ConnectorHeartbeat nodes.
type ConnectorHeartbeatUpsertBulk struct {
	create *ConnectorHeartbeatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ConnectorHeartbeat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(connectorheartbeat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConnectorHeartbeatUpsertBulk) UpdateNewValues() *ConnectorHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(connectorheartbeat.FieldID)
			}
			if _, exists := b.mutation.ConnectorType(); exists {
				s.SetIgnore(connectorheartbeat.FieldConnectorType)
			}
			if _, exists := b.mutation.EndpointIdentity(); exists {
				s.SetIgnore(connectorheartbeat.FieldEndpointIdentity)
			}
			if _, exists := b.mutation.InstanceID(); exists {
				s.SetIgnore(connectorheartbeat.FieldInstanceID)
			}
			if _, exists := b.mutation.State(); exists {
				s.SetIgnore(connectorheartbeat.FieldState)
			}
			if _, exists := b.mutation.Counters(); exists {
				s.SetIgnore(connectorheartbeat.FieldCounters)
			}
			if _, exists := b.mutation.Checkpoint(); exists {
				s.SetIgnore(connectorheartbeat.FieldCheckpoint)
			}
			if _, exists := b.mutation.SentAt(); exists {
				s.SetIgnore(connectorheartbeat.FieldSentAt)
			}
			if _, exists := b.mutation.ReceivedAt(); exists {
				s.SetIgnore(connectorheartbeat.FieldReceivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConnectorHeartbeat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConnectorHeartbeatUpsertBulk) Ignore() *ConnectorHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConnectorHeartbeatUpsertBulk) DoNothing() *ConnectorHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConnectorHeartbeatCreateBulk.OnConflict
// documentation for more info.
func (u *ConnectorHeartbeatUpsertBulk) Update(set func(*ConnectorHeartbeatUpsert)) *ConnectorHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConnectorHeartbeatUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ConnectorHeartbeatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConnectorHeartbeatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConnectorHeartbeatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConnectorHeartbeatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
