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
	"github.com/homekeep/butlerd/ent/ingressitem"
)

// IngressItemCreate is the builder for creating a IngressItem entity.
type IngressItemCreate struct {
	config
	mutation *IngressItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRequestID sets the "request_id" field.
func (_c *IngressItemCreate) SetRequestID(v string) *IngressItemCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetPriorityTier sets the "priority_tier" field.
func (_c *IngressItemCreate) SetPriorityTier(v ingressitem.PriorityTier) *IngressItemCreate {
	_c.mutation.SetPriorityTier(v)
	return _c
}

// SetNillablePriorityTier sets the "priority_tier" field if the given value is not nil.
func (_c *IngressItemCreate) SetNillablePriorityTier(v *ingressitem.PriorityTier) *IngressItemCreate {
	if v != nil {
		_c.SetPriorityTier(*v)
	}
	return _c
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_c *IngressItemCreate) SetEnqueuedAt(v time.Time) *IngressItemCreate {
	_c.mutation.SetEnqueuedAt(v)
	return _c
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_c *IngressItemCreate) SetNillableEnqueuedAt(v *time.Time) *IngressItemCreate {
	if v != nil {
		_c.SetEnqueuedAt(*v)
	}
	return _c
}

// SetLeasedBy sets the "leased_by" field.
func (_c *IngressItemCreate) SetLeasedBy(v string) *IngressItemCreate {
	_c.mutation.SetLeasedBy(v)
	return _c
}

// SetNillableLeasedBy sets the "leased_by" field if the given value is not nil.
func (_c *IngressItemCreate) SetNillableLeasedBy(v *string) *IngressItemCreate {
	if v != nil {
		_c.SetLeasedBy(*v)
	}
	return _c
}

// SetLeasedUntil sets the "leased_until" field.
func (_c *IngressItemCreate) SetLeasedUntil(v time.Time) *IngressItemCreate {
	_c.mutation.SetLeasedUntil(v)
	return _c
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_c *IngressItemCreate) SetNillableLeasedUntil(v *time.Time) *IngressItemCreate {
	if v != nil {
		_c.SetLeasedUntil(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *IngressItemCreate) SetAttempts(v int) *IngressItemCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *IngressItemCreate) SetNillableAttempts(v *int) *IngressItemCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngressItemCreate) SetStatus(v ingressitem.Status) *IngressItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngressItemCreate) SetNillableStatus(v *ingressitem.Status) *IngressItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngressItemCreate) SetID(v string) *IngressItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IngressItemMutation object of the builder.
func (_c *IngressItemCreate) Mutation() *IngressItemMutation {
	return _c.mutation
}

// Save creates the IngressItem in the database.
func (_c *IngressItemCreate) Save(ctx context.Context) (*IngressItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngressItemCreate) SaveX(ctx context.Context) *IngressItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngressItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngressItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngressItemCreate) defaults() {
	if _, ok := _c.mutation.PriorityTier(); !ok {
		v := ingressitem.DefaultPriorityTier
		_c.mutation.SetPriorityTier(v)
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		v := ingressitem.DefaultEnqueuedAt()
		_c.mutation.SetEnqueuedAt(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := ingressitem.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ingressitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngressItemCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "IngressItem.request_id"`)}
	}
	if _, ok := _c.mutation.PriorityTier(); !ok {
		return &ValidationError{Name: "priority_tier", err: errors.New(`ent: missing required field "IngressItem.priority_tier"`)}
	}
	if v, ok := _c.mutation.PriorityTier(); ok {
		if err := ingressitem.PriorityTierValidator(v); err != nil {
			return &ValidationError{Name: "priority_tier", err: fmt.Errorf(`ent: validator failed for field "IngressItem.priority_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "IngressItem.enqueued_at"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "IngressItem.attempts"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngressItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingressitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngressItem.status": %w`, err)}
		}
	}
	return nil
}

func (_c *IngressItemCreate) sqlSave(ctx context.Context) (*IngressItem, error) {
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
			return nil, fmt.Errorf("unexpected IngressItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngressItemCreate) createSpec() (*IngressItem, *sqlgraph.CreateSpec) {
	var (
		_node = &IngressItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingressitem.Table, sqlgraph.NewFieldSpec(ingressitem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(ingressitem.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.PriorityTier(); ok {
		_spec.SetField(ingressitem.FieldPriorityTier, field.TypeEnum, value)
		_node.PriorityTier = value
	}
	if value, ok := _c.mutation.EnqueuedAt(); ok {
		_spec.SetField(ingressitem.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := _c.mutation.LeasedBy(); ok {
		_spec.SetField(ingressitem.FieldLeasedBy, field.TypeString, value)
		_node.LeasedBy = &value
	}
	if value, ok := _c.mutation.LeasedUntil(); ok {
		_spec.SetField(ingressitem.FieldLeasedUntil, field.TypeTime, value)
		_node.LeasedUntil = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(ingressitem.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingressitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IngressItem.Create().
//		SetRequestID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IngressItemUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *IngressItemCreate) OnConflict(opts ...sql.ConflictOption) *IngressItemUpsertOne {
	_c.conflict = opts
	return &IngressItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IngressItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IngressItemCreate) OnConflictColumns(columns ...string) *IngressItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IngressItemUpsertOne{
		create: _c,
	}
}

type (
	// IngressItemUpsertOne is the builder for "upsert"-ing
	//  one IngressItem node.
	IngressItemUpsertOne struct {
		create *IngressItemCreate
	}

	// IngressItemUpsert is the "OnConflict" setter.
	IngressItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetRequestID sets the "request_id" field.
func (u *IngressItemUpsert) SetRequestID(v string) *IngressItemUpsert {
	u.Set(ingressitem.FieldRequestID, v)
	return u
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *IngressItemUpsert) UpdateRequestID() *IngressItemUpsert {
	u.SetExcluded(ingressitem.FieldRequestID)
	return u
}

// SetPriorityTier sets the "priority_tier" field.
func (u *IngressItemUpsert) SetPriorityTier(v ingressitem.PriorityTier) *IngressItemUpsert {
	u.Set(ingressitem.FieldPriorityTier, v)
	return u
}

// UpdatePriorityTier sets the "priority_tier" field to the value that was provided on create.
func (u *IngressItemUpsert) UpdatePriorityTier() *IngressItemUpsert {
	u.SetExcluded(ingressitem.FieldPriorityTier)
	return u
}

// SetLeasedBy sets the "leased_by" field.
func (u *IngressItemUpsert) SetLeasedBy(v string) *IngressItemUpsert {
	u.Set(ingressitem.FieldLeasedBy, v)
	return u
}

// UpdateLeasedBy sets the "leased_by" field to the value that was provided on create.
func (u *IngressItemUpsert) UpdateLeasedBy() *IngressItemUpsert {
	u.SetExcluded(ingressitem.FieldLeasedBy)
	return u
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (u *IngressItemUpsert) ClearLeasedBy() *IngressItemUpsert {
	u.SetNull(ingressitem.FieldLeasedBy)
	return u
}

// SetLeasedUntil sets the "leased_until" field.
func (u *IngressItemUpsert) SetLeasedUntil(v time.Time) *IngressItemUpsert {
	u.Set(ingressitem.FieldLeasedUntil, v)
	return u
}

// UpdateLeasedUntil sets the "leased_until" field to the value that was provided on create.
func (u *IngressItemUpsert) UpdateLeasedUntil() *IngressItemUpsert {
	u.SetExcluded(ingressitem.FieldLeasedUntil)
	return u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (u *IngressItemUpsert) ClearLeasedUntil() *IngressItemUpsert {
	u.SetNull(ingressitem.FieldLeasedUntil)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *IngressItemUpsert) SetAttempts(v int) *IngressItemUpsert {
	u.Set(ingressitem.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *IngressItemUpsert) UpdateAttempts() *IngressItemUpsert {
	u.SetExcluded(ingressitem.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *IngressItemUpsert) AddAttempts(v int) *IngressItemUpsert {
	u.Add(ingressitem.FieldAttempts, v)
	return u
}

// SetStatus sets the "status" field.
func (u *IngressItemUpsert) SetStatus(v ingressitem.Status) *IngressItemUpsert {
	u.Set(ingressitem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IngressItemUpsert) UpdateStatus() *IngressItemUpsert {
	u.SetExcluded(ingressitem.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.IngressItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ingressitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IngressItemUpsertOne) UpdateNewValues() *IngressItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ingressitem.FieldID)
		}
		if _, exists := u.create.mutation.EnqueuedAt(); exists {
			s.SetIgnore(ingressitem.FieldEnqueuedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IngressItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IngressItemUpsertOne) Ignore() *IngressItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IngressItemUpsertOne) DoNothing() *IngressItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IngressItemCreate.OnConflict
// documentation for more info.
func (u *IngressItemUpsertOne) Update(set func(*IngressItemUpsert)) *IngressItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IngressItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequestID sets the "request_id" field.
func (u *IngressItemUpsertOne) SetRequestID(v string) *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *IngressItemUpsertOne) UpdateRequestID() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateRequestID()
	})
}

// SetPriorityTier sets the "priority_tier" field.
func (u *IngressItemUpsertOne) SetPriorityTier(v ingressitem.PriorityTier) *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetPriorityTier(v)
	})
}

// UpdatePriorityTier sets the "priority_tier" field to the value that was provided on create.
func (u *IngressItemUpsertOne) UpdatePriorityTier() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdatePriorityTier()
	})
}

// SetLeasedBy sets the "leased_by" field.
func (u *IngressItemUpsertOne) SetLeasedBy(v string) *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetLeasedBy(v)
	})
}

// UpdateLeasedBy sets the "leased_by" field to the value that was provided on create.
func (u *IngressItemUpsertOne) UpdateLeasedBy() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateLeasedBy()
	})
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (u *IngressItemUpsertOne) ClearLeasedBy() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.ClearLeasedBy()
	})
}

// SetLeasedUntil sets the "leased_until" field.
func (u *IngressItemUpsertOne) SetLeasedUntil(v time.Time) *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetLeasedUntil(v)
	})
}

// UpdateLeasedUntil sets the "leased_until" field to the value that was provided on create.
func (u *IngressItemUpsertOne) UpdateLeasedUntil() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateLeasedUntil()
	})
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (u *IngressItemUpsertOne) ClearLeasedUntil() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.ClearLeasedUntil()
	})
}

// SetAttempts sets the "attempts" field.
func (u *IngressItemUpsertOne) SetAttempts(v int) *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *IngressItemUpsertOne) AddAttempts(v int) *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *IngressItemUpsertOne) UpdateAttempts() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateAttempts()
	})
}

// SetStatus sets the "status" field.
func (u *IngressItemUpsertOne) SetStatus(v ingressitem.Status) *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IngressItemUpsertOne) UpdateStatus() *IngressItemUpsertOne {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *IngressItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IngressItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IngressItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IngressItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IngressItemUpsertOne.ID is not supported by MySQL driver. Use IngressItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IngressItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IngressItemCreateBulk is the builder for creating many IngressItem entities in bulk.
type IngressItemCreateBulk struct {
	config
	err      error
	builders []*IngressItemCreate
	conflict []sql.ConflictOption
}

// Save creates the IngressItem entities in the database.
func (_c *IngressItemCreateBulk) Save(ctx context.Context) ([]*IngressItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngressItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngressItemMutation)
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
func (_c *IngressItemCreateBulk) SaveX(ctx context.Context) []*IngressItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngressItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngressItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IngressItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IngressItemUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *IngressItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *IngressItemUpsertBulk {
	_c.conflict = opts
	return &IngressItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IngressItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IngressItemCreateBulk) OnConflictColumns(columns ...string) *IngressItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IngressItemUpsertBulk{
		create: _c,
	}
}

// IngressItemUpsertBulk is the builder for "upsert"-ing
// a bulk of IngressItem nodes.
type IngressItemUpsertBulk struct {
	create *IngressItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IngressItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ingressitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IngressItemUpsertBulk) UpdateNewValues() *IngressItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ingressitem.FieldID)
			}
			if _, exists := b.mutation.EnqueuedAt(); exists {
				s.SetIgnore(ingressitem.FieldEnqueuedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IngressItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IngressItemUpsertBulk) Ignore() *IngressItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IngressItemUpsertBulk) DoNothing() *IngressItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IngressItemCreateBulk.OnConflict
// documentation for more info.
func (u *IngressItemUpsertBulk) Update(set func(*IngressItemUpsert)) *IngressItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IngressItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequestID sets the "request_id" field.
func (u *IngressItemUpsertBulk) SetRequestID(v string) *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *IngressItemUpsertBulk) UpdateRequestID() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateRequestID()
	})
}

// SetPriorityTier sets the "priority_tier" field.
func (u *IngressItemUpsertBulk) SetPriorityTier(v ingressitem.PriorityTier) *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetPriorityTier(v)
	})
}

// UpdatePriorityTier sets the "priority_tier" field to the value that was provided on create.
func (u *IngressItemUpsertBulk) UpdatePriorityTier() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdatePriorityTier()
	})
}

// SetLeasedBy sets the "leased_by" field.
func (u *IngressItemUpsertBulk) SetLeasedBy(v string) *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetLeasedBy(v)
	})
}

// UpdateLeasedBy sets the "leased_by" field to the value that was provided on create.
func (u *IngressItemUpsertBulk) UpdateLeasedBy() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateLeasedBy()
	})
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (u *IngressItemUpsertBulk) ClearLeasedBy() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.ClearLeasedBy()
	})
}

// SetLeasedUntil sets the "leased_until" field.
func (u *IngressItemUpsertBulk) SetLeasedUntil(v time.Time) *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetLeasedUntil(v)
	})
}

// UpdateLeasedUntil sets the "leased_until" field to the value that was provided on create.
func (u *IngressItemUpsertBulk) UpdateLeasedUntil() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateLeasedUntil()
	})
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (u *IngressItemUpsertBulk) ClearLeasedUntil() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.ClearLeasedUntil()
	})
}

// SetAttempts sets the "attempts" field.
func (u *IngressItemUpsertBulk) SetAttempts(v int) *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *IngressItemUpsertBulk) AddAttempts(v int) *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *IngressItemUpsertBulk) UpdateAttempts() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateAttempts()
	})
}

// SetStatus sets the "status" field.
func (u *IngressItemUpsertBulk) SetStatus(v ingressitem.Status) *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IngressItemUpsertBulk) UpdateStatus() *IngressItemUpsertBulk {
	return u.Update(func(s *IngressItemUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *IngressItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IngressItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IngressItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IngressItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
