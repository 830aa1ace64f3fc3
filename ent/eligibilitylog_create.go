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
	"github.com/homekeep/butlerd/ent/eligibilitylog"
)

// EligibilityLogCreate is the builder for creating a EligibilityLog entity.
type EligibilityLogCreate struct {
	config
	mutation *EligibilityLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetButlerName sets the "butler_name" field.
func (_c *EligibilityLogCreate) SetButlerName(v string) *EligibilityLogCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetFromState sets the "from_state" field.
func (_c *EligibilityLogCreate) SetFromState(v string) *EligibilityLogCreate {
	_c.mutation.SetFromState(v)
	return _c
}

// SetToState sets the "to_state" field.
func (_c *EligibilityLogCreate) SetToState(v string) *EligibilityLogCreate {
	_c.mutation.SetToState(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *EligibilityLogCreate) SetReason(v string) *EligibilityLogCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *EligibilityLogCreate) SetActor(v string) *EligibilityLogCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *EligibilityLogCreate) SetNillableActor(v *string) *EligibilityLogCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EligibilityLogCreate) SetCreatedAt(v time.Time) *EligibilityLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EligibilityLogCreate) SetNillableCreatedAt(v *time.Time) *EligibilityLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EligibilityLogCreate) SetID(v string) *EligibilityLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EligibilityLogMutation object of the builder.
func (_c *EligibilityLogCreate) Mutation() *EligibilityLogMutation {
	return _c.mutation
}

// Save creates the EligibilityLog in the database.
func (_c *EligibilityLogCreate) Save(ctx context.Context) (*EligibilityLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EligibilityLogCreate) SaveX(ctx context.Context) *EligibilityLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EligibilityLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EligibilityLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EligibilityLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eligibilitylog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EligibilityLogCreate) check() error {
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "EligibilityLog.butler_name"`)}
	}
	if _, ok := _c.mutation.FromState(); !ok {
		return &ValidationError{Name: "from_state", err: errors.New(`ent: missing required field "EligibilityLog.from_state"`)}
	}
	if _, ok := _c.mutation.ToState(); !ok {
		return &ValidationError{Name: "to_state", err: errors.New(`ent: missing required field "EligibilityLog.to_state"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "EligibilityLog.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EligibilityLog.created_at"`)}
	}
	return nil
}

func (_c *EligibilityLogCreate) sqlSave(ctx context.Context) (*EligibilityLog, error) {
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
			return nil, fmt.Errorf("unexpected EligibilityLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EligibilityLogCreate) createSpec() (*EligibilityLog, *sqlgraph.CreateSpec) {
	var (
		_node = &EligibilityLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eligibilitylog.Table, sqlgraph.NewFieldSpec(eligibilitylog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(eligibilitylog.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.FromState(); ok {
		_spec.SetField(eligibilitylog.FieldFromState, field.TypeString, value)
		_node.FromState = value
	}
	if value, ok := _c.mutation.ToState(); ok {
		_spec.SetField(eligibilitylog.FieldToState, field.TypeString, value)
		_node.ToState = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(eligibilitylog.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(eligibilitylog.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eligibilitylog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EligibilityLog.Create().
//		SetButlerName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EligibilityLogUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *EligibilityLogCreate) OnConflict(opts ...sql.ConflictOption) *EligibilityLogUpsertOne {
	_c.conflict = opts
	return &EligibilityLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EligibilityLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EligibilityLogCreate) OnConflictColumns(columns ...string) *EligibilityLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EligibilityLogUpsertOne{
		create: _c,
	}
}

type (
	// EligibilityLogUpsertOne is the builder for "upsert"-ing
	//  one EligibilityLog node.
	EligibilityLogUpsertOne struct {
		create *EligibilityLogCreate
	}

	// EligibilityLogUpsert is the "OnConflict" setter.
	EligibilityLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EligibilityLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eligibilitylog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EligibilityLogUpsertOne) UpdateNewValues() *EligibilityLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(eligibilitylog.FieldID)
		}
		if _, exists := u.create.mutation.ButlerName(); exists {
			s.SetIgnore(eligibilitylog.FieldButlerName)
		}
		if _, exists := u.create.mutation.FromState(); exists {
			s.SetIgnore(eligibilitylog.FieldFromState)
		}
		if _, exists := u.create.mutation.ToState(); exists {
			s.SetIgnore(eligibilitylog.FieldToState)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(eligibilitylog.FieldReason)
		}
		if _, exists := u.create.mutation.Actor(); exists {
			s.SetIgnore(eligibilitylog.FieldActor)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(eligibilitylog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EligibilityLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EligibilityLogUpsertOne) Ignore() *EligibilityLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EligibilityLogUpsertOne) DoNothing() *EligibilityLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EligibilityLogCreate.OnConflict
// documentation for more info.
func (u *EligibilityLogUpsertOne) Update(set func(*EligibilityLogUpsert)) *EligibilityLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EligibilityLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EligibilityLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EligibilityLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EligibilityLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EligibilityLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EligibilityLogUpsertOne.ID is not supported by MySQL driver. Use EligibilityLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EligibilityLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EligibilityLogCreateBulk is the builder for creating many EligibilityLog entities in bulk.
type EligibilityLogCreateBulk struct {
	config
	err      error
	builders []*EligibilityLogCreate
	conflict []sql.ConflictOption
}

// Save creates the EligibilityLog entities in the database.
func (_c *EligibilityLogCreateBulk) Save(ctx context.Context) ([]*EligibilityLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EligibilityLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EligibilityLogMutation)
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
func (_c *EligibilityLogCreateBulk) SaveX(ctx context.Context) []*EligibilityLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EligibilityLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EligibilityLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EligibilityLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EligibilityLogUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *EligibilityLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *EligibilityLogUpsertBulk {
	_c.conflict = opts
	return &EligibilityLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EligibilityLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EligibilityLogCreateBulk) OnConflictColumns(columns ...string) *EligibilityLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EligibilityLogUpsertBulk{
		create: _c,
	}
}

// EligibilityLogUpsertBulk is the builder for "upsert"-ing
// a bulk of EligibilityLog nodes.
type EligibilityLogUpsertBulk struct {
	create *EligibilityLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EligibilityLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eligibilitylog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EligibilityLogUpsertBulk) UpdateNewValues() *EligibilityLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(eligibilitylog.FieldID)
			}
			if _, exists := b.mutation.ButlerName(); exists {
				s.SetIgnore(eligibilitylog.FieldButlerName)
			}
			if _, exists := b.mutation.FromState(); exists {
				s.SetIgnore(eligibilitylog.FieldFromState)
			}
			if _, exists := b.mutation.ToState(); exists {
				s.SetIgnore(eligibilitylog.FieldToState)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(eligibilitylog.FieldReason)
			}
			if _, exists := b.mutation.Actor(); exists {
				s.SetIgnore(eligibilitylog.FieldActor)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(eligibilitylog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EligibilityLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EligibilityLogUpsertBulk) Ignore() *EligibilityLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EligibilityLogUpsertBulk) DoNothing() *EligibilityLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EligibilityLogCreateBulk.OnConflict
// documentation for more info.
func (u *EligibilityLogUpsertBulk) Update(set func(*EligibilityLogUpsert)) *EligibilityLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EligibilityLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EligibilityLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EligibilityLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EligibilityLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EligibilityLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
