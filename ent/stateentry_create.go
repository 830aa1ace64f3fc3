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
	"github.com/homekeep/butlerd/ent/stateentry"
)

// StateEntryCreate is the builder for creating a StateEntry entity.
type StateEntryCreate struct {
	config
	mutation *StateEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetButlerName sets the "butler_name" field.
func (_c *StateEntryCreate) SetButlerName(v string) *StateEntryCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *StateEntryCreate) SetKey(v string) *StateEntryCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *StateEntryCreate) SetValue(v map[string]interface{}) *StateEntryCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StateEntryCreate) SetUpdatedAt(v time.Time) *StateEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StateEntryCreate) SetNillableUpdatedAt(v *time.Time) *StateEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StateEntryCreate) SetID(v string) *StateEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StateEntryMutation object of the builder.
func (_c *StateEntryCreate) Mutation() *StateEntryMutation {
	return _c.mutation
}

// Save creates the StateEntry in the database.
func (_c *StateEntryCreate) Save(ctx context.Context) (*StateEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StateEntryCreate) SaveX(ctx context.Context) *StateEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StateEntryCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stateentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StateEntryCreate) check() error {
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "StateEntry.butler_name"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "StateEntry.key"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StateEntry.updated_at"`)}
	}
	return nil
}

func (_c *StateEntryCreate) sqlSave(ctx context.Context) (*StateEntry, error) {
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
			return nil, fmt.Errorf("unexpected StateEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StateEntryCreate) createSpec() (*StateEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &StateEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stateentry.Table, sqlgraph.NewFieldSpec(stateentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(stateentry.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(stateentry.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(stateentry.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stateentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StateEntry.Create().
//		SetButlerName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StateEntryUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *StateEntryCreate) OnConflict(opts ...sql.ConflictOption) *StateEntryUpsertOne {
	_c.conflict = opts
	return &StateEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StateEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StateEntryCreate) OnConflictColumns(columns ...string) *StateEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StateEntryUpsertOne{
		create: _c,
	}
}

type (
	// StateEntryUpsertOne is the builder for "upsert"-ing
	//  one StateEntry node.
	StateEntryUpsertOne struct {
		create *StateEntryCreate
	}

	// StateEntryUpsert is the "OnConflict" setter.
	StateEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetButlerName sets the "butler_name" field.
func (u *StateEntryUpsert) SetButlerName(v string) *StateEntryUpsert {
	u.Set(stateentry.FieldButlerName, v)
	return u
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *StateEntryUpsert) UpdateButlerName() *StateEntryUpsert {
	u.SetExcluded(stateentry.FieldButlerName)
	return u
}

// SetKey sets the "key" field.
func (u *StateEntryUpsert) SetKey(v string) *StateEntryUpsert {
	u.Set(stateentry.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *StateEntryUpsert) UpdateKey() *StateEntryUpsert {
	u.SetExcluded(stateentry.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *StateEntryUpsert) SetValue(v map[string]interface{}) *StateEntryUpsert {
	u.Set(stateentry.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *StateEntryUpsert) UpdateValue() *StateEntryUpsert {
	u.SetExcluded(stateentry.FieldValue)
	return u
}

// ClearValue clears the value of the "value" field.
func (u *StateEntryUpsert) ClearValue() *StateEntryUpsert {
	u.SetNull(stateentry.FieldValue)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateEntryUpsert) SetUpdatedAt(v time.Time) *StateEntryUpsert {
	u.Set(stateentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateEntryUpsert) UpdateUpdatedAt() *StateEntryUpsert {
	u.SetExcluded(stateentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StateEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stateentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StateEntryUpsertOne) UpdateNewValues() *StateEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stateentry.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StateEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StateEntryUpsertOne) Ignore() *StateEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StateEntryUpsertOne) DoNothing() *StateEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StateEntryCreate.OnConflict
// documentation for more info.
func (u *StateEntryUpsertOne) Update(set func(*StateEntryUpsert)) *StateEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StateEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *StateEntryUpsertOne) SetButlerName(v string) *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *StateEntryUpsertOne) UpdateButlerName() *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateButlerName()
	})
}

// SetKey sets the "key" field.
func (u *StateEntryUpsertOne) SetKey(v string) *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *StateEntryUpsertOne) UpdateKey() *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *StateEntryUpsertOne) SetValue(v map[string]interface{}) *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *StateEntryUpsertOne) UpdateValue() *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *StateEntryUpsertOne) ClearValue() *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.ClearValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateEntryUpsertOne) SetUpdatedAt(v time.Time) *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateEntryUpsertOne) UpdateUpdatedAt() *StateEntryUpsertOne {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StateEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StateEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StateEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StateEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StateEntryUpsertOne.ID is not supported by MySQL driver. Use StateEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StateEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StateEntryCreateBulk is the builder for creating many StateEntry entities in bulk.
type StateEntryCreateBulk struct {
	config
	err      error
	builders []*StateEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the StateEntry entities in the database.
func (_c *StateEntryCreateBulk) Save(ctx context.Context) ([]*StateEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StateEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StateEntryMutation)
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
func (_c *StateEntryCreateBulk) SaveX(ctx context.Context) []*StateEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StateEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StateEntryUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *StateEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *StateEntryUpsertBulk {
	_c.conflict = opts
	return &StateEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StateEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StateEntryCreateBulk) OnConflictColumns(columns ...string) *StateEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StateEntryUpsertBulk{
		create: _c,
	}
}

// StateEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of StateEntry nodes.
type StateEntryUpsertBulk struct {
	create *StateEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StateEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stateentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StateEntryUpsertBulk) UpdateNewValues() *StateEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stateentry.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StateEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StateEntryUpsertBulk) Ignore() *StateEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StateEntryUpsertBulk) DoNothing() *StateEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StateEntryCreateBulk.OnConflict
// documentation for more info.
func (u *StateEntryUpsertBulk) Update(set func(*StateEntryUpsert)) *StateEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StateEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *StateEntryUpsertBulk) SetButlerName(v string) *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *StateEntryUpsertBulk) UpdateButlerName() *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateButlerName()
	})
}

// SetKey sets the "key" field.
func (u *StateEntryUpsertBulk) SetKey(v string) *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *StateEntryUpsertBulk) UpdateKey() *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *StateEntryUpsertBulk) SetValue(v map[string]interface{}) *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *StateEntryUpsertBulk) UpdateValue() *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *StateEntryUpsertBulk) ClearValue() *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.ClearValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateEntryUpsertBulk) SetUpdatedAt(v time.Time) *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateEntryUpsertBulk) UpdateUpdatedAt() *StateEntryUpsertBulk {
	return u.Update(func(s *StateEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StateEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StateEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StateEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StateEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
