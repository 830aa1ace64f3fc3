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
	"github.com/homekeep/butlerd/ent/butlersecret"
)

// ButlerSecretCreate is the builder for creating a ButlerSecret entity.
type ButlerSecretCreate struct {
	config
	mutation *ButlerSecretMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetButlerName sets the "butler_name" field.
func (_c *ButlerSecretCreate) SetButlerName(v string) *ButlerSecretCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ButlerSecretCreate) SetKey(v string) *ButlerSecretCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ButlerSecretCreate) SetValue(v string) *ButlerSecretCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ButlerSecretCreate) SetUpdatedAt(v time.Time) *ButlerSecretCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ButlerSecretCreate) SetNillableUpdatedAt(v *time.Time) *ButlerSecretCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ButlerSecretCreate) SetID(v string) *ButlerSecretCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ButlerSecretMutation object of the builder.
func (_c *ButlerSecretCreate) Mutation() *ButlerSecretMutation {
	return _c.mutation
}

// Save creates the ButlerSecret in the database.
func (_c *ButlerSecretCreate) Save(ctx context.Context) (*ButlerSecret, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ButlerSecretCreate) SaveX(ctx context.Context) *ButlerSecret {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ButlerSecretCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ButlerSecretCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ButlerSecretCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := butlersecret.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ButlerSecretCreate) check() error {
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "ButlerSecret.butler_name"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ButlerSecret.key"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ButlerSecret.value"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ButlerSecret.updated_at"`)}
	}
	return nil
}

func (_c *ButlerSecretCreate) sqlSave(ctx context.Context) (*ButlerSecret, error) {
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
			return nil, fmt.Errorf("unexpected ButlerSecret.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ButlerSecretCreate) createSpec() (*ButlerSecret, *sqlgraph.CreateSpec) {
	var (
		_node = &ButlerSecret{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(butlersecret.Table, sqlgraph.NewFieldSpec(butlersecret.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(butlersecret.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(butlersecret.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(butlersecret.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(butlersecret.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ButlerSecret.Create().
//		SetButlerName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ButlerSecretUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *ButlerSecretCreate) OnConflict(opts ...sql.ConflictOption) *ButlerSecretUpsertOne {
	_c.conflict = opts
	return &ButlerSecretUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ButlerSecret.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ButlerSecretCreate) OnConflictColumns(columns ...string) *ButlerSecretUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ButlerSecretUpsertOne{
		create: _c,
	}
}

type (
	// ButlerSecretUpsertOne is the builder for "upsert"-ing
	//  one ButlerSecret node.
	ButlerSecretUpsertOne struct {
		create *ButlerSecretCreate
	}

	// ButlerSecretUpsert is the "OnConflict" setter.
	ButlerSecretUpsert struct {
		*sql.UpdateSet
	}
)

// SetButlerName sets the "butler_name" field.
func (u *ButlerSecretUpsert) SetButlerName(v string) *ButlerSecretUpsert {
	u.Set(butlersecret.FieldButlerName, v)
	return u
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ButlerSecretUpsert) UpdateButlerName() *ButlerSecretUpsert {
	u.SetExcluded(butlersecret.FieldButlerName)
	return u
}

// SetKey sets the "key" field.
func (u *ButlerSecretUpsert) SetKey(v string) *ButlerSecretUpsert {
	u.Set(butlersecret.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ButlerSecretUpsert) UpdateKey() *ButlerSecretUpsert {
	u.SetExcluded(butlersecret.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *ButlerSecretUpsert) SetValue(v string) *ButlerSecretUpsert {
	u.Set(butlersecret.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ButlerSecretUpsert) UpdateValue() *ButlerSecretUpsert {
	u.SetExcluded(butlersecret.FieldValue)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ButlerSecretUpsert) SetUpdatedAt(v time.Time) *ButlerSecretUpsert {
	u.Set(butlersecret.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ButlerSecretUpsert) UpdateUpdatedAt() *ButlerSecretUpsert {
	u.SetExcluded(butlersecret.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ButlerSecret.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(butlersecret.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ButlerSecretUpsertOne) UpdateNewValues() *ButlerSecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(butlersecret.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ButlerSecret.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ButlerSecretUpsertOne) Ignore() *ButlerSecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ButlerSecretUpsertOne) DoNothing() *ButlerSecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ButlerSecretCreate.OnConflict
// documentation for more info.
func (u *ButlerSecretUpsertOne) Update(set func(*ButlerSecretUpsert)) *ButlerSecretUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ButlerSecretUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *ButlerSecretUpsertOne) SetButlerName(v string) *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ButlerSecretUpsertOne) UpdateButlerName() *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateButlerName()
	})
}

// SetKey sets the "key" field.
func (u *ButlerSecretUpsertOne) SetKey(v string) *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ButlerSecretUpsertOne) UpdateKey() *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *ButlerSecretUpsertOne) SetValue(v string) *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ButlerSecretUpsertOne) UpdateValue() *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ButlerSecretUpsertOne) SetUpdatedAt(v time.Time) *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ButlerSecretUpsertOne) UpdateUpdatedAt() *ButlerSecretUpsertOne {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ButlerSecretUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ButlerSecretCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ButlerSecretUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ButlerSecretUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ButlerSecretUpsertOne.ID is not supported by MySQL driver. Use ButlerSecretUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ButlerSecretUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ButlerSecretCreateBulk is the builder for creating many ButlerSecret entities in bulk.
type ButlerSecretCreateBulk struct {
	config
	err      error
	builders []*ButlerSecretCreate
	conflict []sql.ConflictOption
}

// Save creates the ButlerSecret entities in the database.
func (_c *ButlerSecretCreateBulk) Save(ctx context.Context) ([]*ButlerSecret, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ButlerSecret, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ButlerSecretMutation)
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
func (_c *ButlerSecretCreateBulk) SaveX(ctx context.Context) []*ButlerSecret {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ButlerSecretCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ButlerSecretCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ButlerSecret.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ButlerSecretUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *ButlerSecretCreateBulk) OnConflict(opts ...sql.ConflictOption) *ButlerSecretUpsertBulk {
	_c.conflict = opts
	return &ButlerSecretUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ButlerSecret.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ButlerSecretCreateBulk) OnConflictColumns(columns ...string) *ButlerSecretUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ButlerSecretUpsertBulk{
		create: _c,
	}
}

// ButlerSecretUpsertBulk is the builder for "upsert"-ing
// a bulk of ButlerSecret nodes.
type ButlerSecretUpsertBulk struct {
	create *ButlerSecretCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ButlerSecret.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(butlersecret.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ButlerSecretUpsertBulk) UpdateNewValues() *ButlerSecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(butlersecret.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ButlerSecret.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ButlerSecretUpsertBulk) Ignore() *ButlerSecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ButlerSecretUpsertBulk) DoNothing() *ButlerSecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ButlerSecretCreateBulk.OnConflict
// documentation for more info.
func (u *ButlerSecretUpsertBulk) Update(set func(*ButlerSecretUpsert)) *ButlerSecretUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ButlerSecretUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *ButlerSecretUpsertBulk) SetButlerName(v string) *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ButlerSecretUpsertBulk) UpdateButlerName() *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateButlerName()
	})
}

// SetKey sets the "key" field.
func (u *ButlerSecretUpsertBulk) SetKey(v string) *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ButlerSecretUpsertBulk) UpdateKey() *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *ButlerSecretUpsertBulk) SetValue(v string) *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *ButlerSecretUpsertBulk) UpdateValue() *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ButlerSecretUpsertBulk) SetUpdatedAt(v time.Time) *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ButlerSecretUpsertBulk) UpdateUpdatedAt() *ButlerSecretUpsertBulk {
	return u.Update(func(s *ButlerSecretUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ButlerSecretUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ButlerSecretCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ButlerSecretCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ButlerSecretUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
