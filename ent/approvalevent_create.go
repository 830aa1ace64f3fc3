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
	"github.com/homekeep/butlerd/ent/approvalevent"
)

// ApprovalEventCreate is the builder for creating a ApprovalEvent entity.
type ApprovalEventCreate struct {
	config
	mutation *ApprovalEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetActionID sets the "action_id" field.
func (_c *ApprovalEventCreate) SetActionID(v string) *ApprovalEventCreate {
	_c.mutation.SetActionID(v)
	return _c
}

// SetNillableActionID sets the "action_id" field if the given value is not nil.
func (_c *ApprovalEventCreate) SetNillableActionID(v *string) *ApprovalEventCreate {
	if v != nil {
		_c.SetActionID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ApprovalEventCreate) SetEventType(v string) *ApprovalEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ApprovalEventCreate) SetDetail(v map[string]interface{}) *ApprovalEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalEventCreate) SetCreatedAt(v time.Time) *ApprovalEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalEventCreate) SetNillableCreatedAt(v *time.Time) *ApprovalEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalEventCreate) SetID(v string) *ApprovalEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalEventMutation object of the builder.
func (_c *ApprovalEventCreate) Mutation() *ApprovalEventMutation {
	return _c.mutation
}

// Save creates the ApprovalEvent in the database.
func (_c *ApprovalEventCreate) Save(ctx context.Context) (*ApprovalEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalEventCreate) SaveX(ctx context.Context) *ApprovalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalEventCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ApprovalEvent.event_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalEvent.created_at"`)}
	}
	return nil
}

func (_c *ApprovalEventCreate) sqlSave(ctx context.Context) (*ApprovalEvent, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalEventCreate) createSpec() (*ApprovalEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalevent.Table, sqlgraph.NewFieldSpec(approvalevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionID(); ok {
		_spec.SetField(approvalevent.FieldActionID, field.TypeString, value)
		_node.ActionID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(approvalevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(approvalevent.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalEvent.Create().
//		SetActionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalEventUpsert) {
//			SetActionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalEventCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalEventUpsertOne {
	_c.conflict = opts
	return &ApprovalEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalEventCreate) OnConflictColumns(columns ...string) *ApprovalEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalEventUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalEventUpsertOne is the builder for "upsert"-ing
	//  one ApprovalEvent node.
	ApprovalEventUpsertOne struct {
		create *ApprovalEventCreate
	}

	// ApprovalEventUpsert is the "OnConflict" setter.
	ApprovalEventUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApprovalEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalEventUpsertOne) UpdateNewValues() *ApprovalEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approvalevent.FieldID)
		}
		if _, exists := u.create.mutation.ActionID(); exists {
			s.SetIgnore(approvalevent.FieldActionID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(approvalevent.FieldEventType)
		}
		if _, exists := u.create.mutation.Detail(); exists {
			s.SetIgnore(approvalevent.FieldDetail)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvalevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalEventUpsertOne) Ignore() *ApprovalEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalEventUpsertOne) DoNothing() *ApprovalEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalEventCreate.OnConflict
// documentation for more info.
func (u *ApprovalEventUpsertOne) Update(set func(*ApprovalEventUpsert)) *ApprovalEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApprovalEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalEventUpsertOne.ID is not supported by MySQL driver. Use ApprovalEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalEventCreateBulk is the builder for creating many ApprovalEvent entities in bulk.
type ApprovalEventCreateBulk struct {
	config
	err      error
	builders []*ApprovalEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovalEvent entities in the database.
func (_c *ApprovalEventCreateBulk) Save(ctx context.Context) ([]*ApprovalEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalEventMutation)
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
func (_c *ApprovalEventCreateBulk) SaveX(ctx context.Context) []*ApprovalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalEventUpsert) {
//			SetActionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalEventUpsertBulk {
	_c.conflict = opts
	return &ApprovalEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalEventCreateBulk) OnConflictColumns(columns ...string) *ApprovalEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalEventUpsertBulk{
		create: _c,
	}
}

// ApprovalEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovalEvent nodes.
type ApprovalEventUpsertBulk struct {
	create *ApprovalEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovalEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalEventUpsertBulk) UpdateNewValues() *ApprovalEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approvalevent.FieldID)
			}
			if _, exists := b.mutation.ActionID(); exists {
				s.SetIgnore(approvalevent.FieldActionID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(approvalevent.FieldEventType)
			}
			if _, exists := b.mutation.Detail(); exists {
				s.SetIgnore(approvalevent.FieldDetail)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvalevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalEventUpsertBulk) Ignore() *ApprovalEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalEventUpsertBulk) DoNothing() *ApprovalEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalEventCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalEventUpsertBulk) Update(set func(*ApprovalEventUpsert)) *ApprovalEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApprovalEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
