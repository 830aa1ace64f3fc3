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
	"github.com/homekeep/butlerd/ent/fanoutexecution"
)

// FanoutExecutionCreate is the builder for creating a FanoutExecution entity.
type FanoutExecutionCreate struct {
	config
	mutation *FanoutExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRequestID sets the "request_id" field.
func (_c *FanoutExecutionCreate) SetRequestID(v string) *FanoutExecutionCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetSubrequestID sets the "subrequest_id" field.
func (_c *FanoutExecutionCreate) SetSubrequestID(v string) *FanoutExecutionCreate {
	_c.mutation.SetSubrequestID(v)
	return _c
}

// SetSegmentID sets the "segment_id" field.
func (_c *FanoutExecutionCreate) SetSegmentID(v string) *FanoutExecutionCreate {
	_c.mutation.SetSegmentID(v)
	return _c
}

// SetNillableSegmentID sets the "segment_id" field if the given value is not nil.
func (_c *FanoutExecutionCreate) SetNillableSegmentID(v *string) *FanoutExecutionCreate {
	if v != nil {
		_c.SetSegmentID(*v)
	}
	return _c
}

// SetButlerName sets the "butler_name" field.
func (_c *FanoutExecutionCreate) SetButlerName(v string) *FanoutExecutionCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FanoutExecutionCreate) SetStatus(v fanoutexecution.Status) *FanoutExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *FanoutExecutionCreate) SetErrorKind(v string) *FanoutExecutionCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *FanoutExecutionCreate) SetNillableErrorKind(v *string) *FanoutExecutionCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FanoutExecutionCreate) SetErrorMessage(v string) *FanoutExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FanoutExecutionCreate) SetNillableErrorMessage(v *string) *FanoutExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *FanoutExecutionCreate) SetStartedAt(v time.Time) *FanoutExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *FanoutExecutionCreate) SetCompletedAt(v time.Time) *FanoutExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *FanoutExecutionCreate) SetNillableCompletedAt(v *time.Time) *FanoutExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *FanoutExecutionCreate) SetDurationMs(v int64) *FanoutExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *FanoutExecutionCreate) SetNillableDurationMs(v *int64) *FanoutExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FanoutExecutionCreate) SetCreatedAt(v time.Time) *FanoutExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FanoutExecutionCreate) SetNillableCreatedAt(v *time.Time) *FanoutExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FanoutExecutionCreate) SetID(v string) *FanoutExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FanoutExecutionMutation object of the builder.
func (_c *FanoutExecutionCreate) Mutation() *FanoutExecutionMutation {
	return _c.mutation
}

// Save creates the FanoutExecution in the database.
func (_c *FanoutExecutionCreate) Save(ctx context.Context) (*FanoutExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FanoutExecutionCreate) SaveX(ctx context.Context) *FanoutExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FanoutExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FanoutExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FanoutExecutionCreate) defaults() {
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := fanoutexecution.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fanoutexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FanoutExecutionCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "FanoutExecution.request_id"`)}
	}
	if _, ok := _c.mutation.SubrequestID(); !ok {
		return &ValidationError{Name: "subrequest_id", err: errors.New(`ent: missing required field "FanoutExecution.subrequest_id"`)}
	}
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "FanoutExecution.butler_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FanoutExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fanoutexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FanoutExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "FanoutExecution.started_at"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "FanoutExecution.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FanoutExecution.created_at"`)}
	}
	return nil
}

func (_c *FanoutExecutionCreate) sqlSave(ctx context.Context) (*FanoutExecution, error) {
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
			return nil, fmt.Errorf("unexpected FanoutExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FanoutExecutionCreate) createSpec() (*FanoutExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &FanoutExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fanoutexecution.Table, sqlgraph.NewFieldSpec(fanoutexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(fanoutexecution.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.SubrequestID(); ok {
		_spec.SetField(fanoutexecution.FieldSubrequestID, field.TypeString, value)
		_node.SubrequestID = value
	}
	if value, ok := _c.mutation.SegmentID(); ok {
		_spec.SetField(fanoutexecution.FieldSegmentID, field.TypeString, value)
		_node.SegmentID = value
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(fanoutexecution.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fanoutexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(fanoutexecution.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(fanoutexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(fanoutexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(fanoutexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(fanoutexecution.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fanoutexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FanoutExecution.Create().
//		SetRequestID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FanoutExecutionUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *FanoutExecutionCreate) OnConflict(opts ...sql.ConflictOption) *FanoutExecutionUpsertOne {
	_c.conflict = opts
	return &FanoutExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FanoutExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FanoutExecutionCreate) OnConflictColumns(columns ...string) *FanoutExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FanoutExecutionUpsertOne{
		create: _c,
	}
}

type (
	// FanoutExecutionUpsertOne is the builder for "upsert"-ing
	//  one FanoutExecution node.
	FanoutExecutionUpsertOne struct {
		create *FanoutExecutionCreate
	}

	// FanoutExecutionUpsert is the "OnConflict" setter.
	FanoutExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *FanoutExecutionUpsert) SetStatus(v fanoutexecution.Status) *FanoutExecutionUpsert {
	u.Set(fanoutexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FanoutExecutionUpsert) UpdateStatus() *FanoutExecutionUpsert {
	u.SetExcluded(fanoutexecution.FieldStatus)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *FanoutExecutionUpsert) SetErrorKind(v string) *FanoutExecutionUpsert {
	u.Set(fanoutexecution.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FanoutExecutionUpsert) UpdateErrorKind() *FanoutExecutionUpsert {
	u.SetExcluded(fanoutexecution.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *FanoutExecutionUpsert) ClearErrorKind() *FanoutExecutionUpsert {
	u.SetNull(fanoutexecution.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *FanoutExecutionUpsert) SetErrorMessage(v string) *FanoutExecutionUpsert {
	u.Set(fanoutexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FanoutExecutionUpsert) UpdateErrorMessage() *FanoutExecutionUpsert {
	u.SetExcluded(fanoutexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FanoutExecutionUpsert) ClearErrorMessage() *FanoutExecutionUpsert {
	u.SetNull(fanoutexecution.FieldErrorMessage)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *FanoutExecutionUpsert) SetCompletedAt(v time.Time) *FanoutExecutionUpsert {
	u.Set(fanoutexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *FanoutExecutionUpsert) UpdateCompletedAt() *FanoutExecutionUpsert {
	u.SetExcluded(fanoutexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *FanoutExecutionUpsert) ClearCompletedAt() *FanoutExecutionUpsert {
	u.SetNull(fanoutexecution.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *FanoutExecutionUpsert) SetDurationMs(v int64) *FanoutExecutionUpsert {
	u.Set(fanoutexecution.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *FanoutExecutionUpsert) UpdateDurationMs() *FanoutExecutionUpsert {
	u.SetExcluded(fanoutexecution.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *FanoutExecutionUpsert) AddDurationMs(v int64) *FanoutExecutionUpsert {
	u.Add(fanoutexecution.FieldDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FanoutExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fanoutexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FanoutExecutionUpsertOne) UpdateNewValues() *FanoutExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fanoutexecution.FieldID)
		}
		if _, exists := u.create.mutation.RequestID(); exists {
			s.SetIgnore(fanoutexecution.FieldRequestID)
		}
		if _, exists := u.create.mutation.SubrequestID(); exists {
			s.SetIgnore(fanoutexecution.FieldSubrequestID)
		}
		if _, exists := u.create.mutation.SegmentID(); exists {
			s.SetIgnore(fanoutexecution.FieldSegmentID)
		}
		if _, exists := u.create.mutation.ButlerName(); exists {
			s.SetIgnore(fanoutexecution.FieldButlerName)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(fanoutexecution.FieldStartedAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(fanoutexecution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FanoutExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FanoutExecutionUpsertOne) Ignore() *FanoutExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FanoutExecutionUpsertOne) DoNothing() *FanoutExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FanoutExecutionCreate.OnConflict
// documentation for more info.
func (u *FanoutExecutionUpsertOne) Update(set func(*FanoutExecutionUpsert)) *FanoutExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FanoutExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *FanoutExecutionUpsertOne) SetStatus(v fanoutexecution.Status) *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FanoutExecutionUpsertOne) UpdateStatus() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *FanoutExecutionUpsertOne) SetErrorKind(v string) *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FanoutExecutionUpsertOne) UpdateErrorKind() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *FanoutExecutionUpsertOne) ClearErrorKind() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *FanoutExecutionUpsertOne) SetErrorMessage(v string) *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FanoutExecutionUpsertOne) UpdateErrorMessage() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FanoutExecutionUpsertOne) ClearErrorMessage() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *FanoutExecutionUpsertOne) SetCompletedAt(v time.Time) *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *FanoutExecutionUpsertOne) UpdateCompletedAt() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *FanoutExecutionUpsertOne) ClearCompletedAt() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *FanoutExecutionUpsertOne) SetDurationMs(v int64) *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *FanoutExecutionUpsertOne) AddDurationMs(v int64) *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *FanoutExecutionUpsertOne) UpdateDurationMs() *FanoutExecutionUpsertOne {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *FanoutExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FanoutExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FanoutExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FanoutExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FanoutExecutionUpsertOne.ID is not supported by MySQL driver. Use FanoutExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FanoutExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FanoutExecutionCreateBulk is the builder for creating many FanoutExecution entities in bulk.
type FanoutExecutionCreateBulk struct {
	config
	err      error
	builders []*FanoutExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the FanoutExecution entities in the database.
func (_c *FanoutExecutionCreateBulk) Save(ctx context.Context) ([]*FanoutExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FanoutExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FanoutExecutionMutation)
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
func (_c *FanoutExecutionCreateBulk) SaveX(ctx context.Context) []*FanoutExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FanoutExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FanoutExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FanoutExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FanoutExecutionUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *FanoutExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *FanoutExecutionUpsertBulk {
	_c.conflict = opts
	return &FanoutExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FanoutExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FanoutExecutionCreateBulk) OnConflictColumns(columns ...string) *FanoutExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FanoutExecutionUpsertBulk{
		create: _c,
	}
}

// FanoutExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of FanoutExecution nodes.
type FanoutExecutionUpsertBulk struct {
	create *FanoutExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FanoutExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fanoutexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FanoutExecutionUpsertBulk) UpdateNewValues() *FanoutExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fanoutexecution.FieldID)
			}
			if _, exists := b.mutation.RequestID(); exists {
				s.SetIgnore(fanoutexecution.FieldRequestID)
			}
			if _, exists := b.mutation.SubrequestID(); exists {
				s.SetIgnore(fanoutexecution.FieldSubrequestID)
			}
			if _, exists := b.mutation.SegmentID(); exists {
				s.SetIgnore(fanoutexecution.FieldSegmentID)
			}
			if _, exists := b.mutation.ButlerName(); exists {
				s.SetIgnore(fanoutexecution.FieldButlerName)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(fanoutexecution.FieldStartedAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(fanoutexecution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FanoutExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FanoutExecutionUpsertBulk) Ignore() *FanoutExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FanoutExecutionUpsertBulk) DoNothing() *FanoutExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FanoutExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *FanoutExecutionUpsertBulk) Update(set func(*FanoutExecutionUpsert)) *FanoutExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FanoutExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *FanoutExecutionUpsertBulk) SetStatus(v fanoutexecution.Status) *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FanoutExecutionUpsertBulk) UpdateStatus() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *FanoutExecutionUpsertBulk) SetErrorKind(v string) *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FanoutExecutionUpsertBulk) UpdateErrorKind() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *FanoutExecutionUpsertBulk) ClearErrorKind() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *FanoutExecutionUpsertBulk) SetErrorMessage(v string) *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FanoutExecutionUpsertBulk) UpdateErrorMessage() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FanoutExecutionUpsertBulk) ClearErrorMessage() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *FanoutExecutionUpsertBulk) SetCompletedAt(v time.Time) *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *FanoutExecutionUpsertBulk) UpdateCompletedAt() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *FanoutExecutionUpsertBulk) ClearCompletedAt() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *FanoutExecutionUpsertBulk) SetDurationMs(v int64) *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *FanoutExecutionUpsertBulk) AddDurationMs(v int64) *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *FanoutExecutionUpsertBulk) UpdateDurationMs() *FanoutExecutionUpsertBulk {
	return u.Update(func(s *FanoutExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *FanoutExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FanoutExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FanoutExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FanoutExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
