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
	"github.com/homekeep/butlerd/ent/pendingaction"
)

// PendingActionCreate is the builder for creating a PendingAction entity.
type PendingActionCreate struct {
	config
	mutation *PendingActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetButlerName sets the "butler_name" field.
func (_c *PendingActionCreate) SetButlerName(v string) *PendingActionCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *PendingActionCreate) SetToolName(v string) *PendingActionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolArgs sets the "tool_args" field.
func (_c *PendingActionCreate) SetToolArgs(v map[string]interface{}) *PendingActionCreate {
	_c.mutation.SetToolArgs(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingActionCreate) SetStatus(v pendingaction.Status) *PendingActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableStatus(v *pendingaction.Status) *PendingActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *PendingActionCreate) SetRiskTier(v pendingaction.RiskTier) *PendingActionCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableRiskTier(v *pendingaction.RiskTier) *PendingActionCreate {
	if v != nil {
		_c.SetRiskTier(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingActionCreate) SetCreatedAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableCreatedAt(v *time.Time) *PendingActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *PendingActionCreate) SetDecidedAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableDecidedAt(v *time.Time) *PendingActionCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *PendingActionCreate) SetDecidedBy(v string) *PendingActionCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableDecidedBy(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PendingActionCreate) SetExpiresAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableExpiresAt(v *time.Time) *PendingActionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetExecutionResult sets the "execution_result" field.
func (_c *PendingActionCreate) SetExecutionResult(v map[string]interface{}) *PendingActionCreate {
	_c.mutation.SetExecutionResult(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PendingActionCreate) SetSessionID(v string) *PendingActionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableSessionID(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingActionCreate) SetID(v string) *PendingActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PendingActionMutation object of the builder.
func (_c *PendingActionCreate) Mutation() *PendingActionMutation {
	return _c.mutation
}

// Save creates the PendingAction in the database.
func (_c *PendingActionCreate) Save(ctx context.Context) (*PendingAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingActionCreate) SaveX(ctx context.Context) *PendingAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingActionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		v := pendingaction.DefaultRiskTier
		_c.mutation.SetRiskTier(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendingaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingActionCreate) check() error {
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "PendingAction.butler_name"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "PendingAction.tool_name"`)}
	}
	if _, ok := _c.mutation.ToolArgs(); !ok {
		return &ValidationError{Name: "tool_args", err: errors.New(`ent: missing required field "PendingAction.tool_args"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "PendingAction.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := pendingaction.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "PendingAction.risk_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingAction.created_at"`)}
	}
	return nil
}

func (_c *PendingActionCreate) sqlSave(ctx context.Context) (*PendingAction, error) {
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
			return nil, fmt.Errorf("unexpected PendingAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingActionCreate) createSpec() (*PendingAction, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingaction.Table, sqlgraph.NewFieldSpec(pendingaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(pendingaction.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(pendingaction.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolArgs(); ok {
		_spec.SetField(pendingaction.FieldToolArgs, field.TypeJSON, value)
		_node.ToolArgs = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(pendingaction.FieldRiskTier, field.TypeEnum, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendingaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(pendingaction.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(pendingaction.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingaction.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.ExecutionResult(); ok {
		_spec.SetField(pendingaction.FieldExecutionResult, field.TypeJSON, value)
		_node.ExecutionResult = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pendingaction.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingAction.Create().
//		SetButlerName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingActionUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingActionCreate) OnConflict(opts ...sql.ConflictOption) *PendingActionUpsertOne {
	_c.conflict = opts
	return &PendingActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingActionCreate) OnConflictColumns(columns ...string) *PendingActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingActionUpsertOne{
		create: _c,
	}
}

type (
	// PendingActionUpsertOne is the builder for "upsert"-ing
	//  one PendingAction node.
	PendingActionUpsertOne struct {
		create *PendingActionCreate
	}

	// PendingActionUpsert is the "OnConflict" setter.
	PendingActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetButlerName sets the "butler_name" field.
func (u *PendingActionUpsert) SetButlerName(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldButlerName, v)
	return u
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateButlerName() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldButlerName)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *PendingActionUpsert) SetToolName(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateToolName() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldToolName)
	return u
}

// SetToolArgs sets the "tool_args" field.
func (u *PendingActionUpsert) SetToolArgs(v map[string]interface{}) *PendingActionUpsert {
	u.Set(pendingaction.FieldToolArgs, v)
	return u
}

// UpdateToolArgs sets the "tool_args" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateToolArgs() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldToolArgs)
	return u
}

// SetStatus sets the "status" field.
func (u *PendingActionUpsert) SetStatus(v pendingaction.Status) *PendingActionUpsert {
	u.Set(pendingaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateStatus() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldStatus)
	return u
}

// SetRiskTier sets the "risk_tier" field.
func (u *PendingActionUpsert) SetRiskTier(v pendingaction.RiskTier) *PendingActionUpsert {
	u.Set(pendingaction.FieldRiskTier, v)
	return u
}

// UpdateRiskTier sets the "risk_tier" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateRiskTier() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldRiskTier)
	return u
}

// SetDecidedAt sets the "decided_at" field.
func (u *PendingActionUpsert) SetDecidedAt(v time.Time) *PendingActionUpsert {
	u.Set(pendingaction.FieldDecidedAt, v)
	return u
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateDecidedAt() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldDecidedAt)
	return u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *PendingActionUpsert) ClearDecidedAt() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldDecidedAt)
	return u
}

// SetDecidedBy sets the "decided_by" field.
func (u *PendingActionUpsert) SetDecidedBy(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldDecidedBy, v)
	return u
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateDecidedBy() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldDecidedBy)
	return u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *PendingActionUpsert) ClearDecidedBy() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldDecidedBy)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *PendingActionUpsert) SetExpiresAt(v time.Time) *PendingActionUpsert {
	u.Set(pendingaction.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateExpiresAt() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *PendingActionUpsert) ClearExpiresAt() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldExpiresAt)
	return u
}

// SetExecutionResult sets the "execution_result" field.
func (u *PendingActionUpsert) SetExecutionResult(v map[string]interface{}) *PendingActionUpsert {
	u.Set(pendingaction.FieldExecutionResult, v)
	return u
}

// UpdateExecutionResult sets the "execution_result" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateExecutionResult() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldExecutionResult)
	return u
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (u *PendingActionUpsert) ClearExecutionResult() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldExecutionResult)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *PendingActionUpsert) SetSessionID(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateSessionID() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *PendingActionUpsert) ClearSessionID() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldSessionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingActionUpsertOne) UpdateNewValues() *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pendingaction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pendingaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PendingActionUpsertOne) Ignore() *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingActionUpsertOne) DoNothing() *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingActionCreate.OnConflict
// documentation for more info.
func (u *PendingActionUpsertOne) Update(set func(*PendingActionUpsert)) *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *PendingActionUpsertOne) SetButlerName(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateButlerName() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateButlerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *PendingActionUpsertOne) SetToolName(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateToolName() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateToolName()
	})
}

// SetToolArgs sets the "tool_args" field.
func (u *PendingActionUpsertOne) SetToolArgs(v map[string]interface{}) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetToolArgs(v)
	})
}

// UpdateToolArgs sets the "tool_args" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateToolArgs() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateToolArgs()
	})
}

// SetStatus sets the "status" field.
func (u *PendingActionUpsertOne) SetStatus(v pendingaction.Status) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateStatus() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateStatus()
	})
}

// SetRiskTier sets the "risk_tier" field.
func (u *PendingActionUpsertOne) SetRiskTier(v pendingaction.RiskTier) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetRiskTier(v)
	})
}

// UpdateRiskTier sets the "risk_tier" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateRiskTier() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateRiskTier()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *PendingActionUpsertOne) SetDecidedAt(v time.Time) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateDecidedAt() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *PendingActionUpsertOne) ClearDecidedAt() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearDecidedAt()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *PendingActionUpsertOne) SetDecidedBy(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateDecidedBy() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *PendingActionUpsertOne) ClearDecidedBy() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearDecidedBy()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *PendingActionUpsertOne) SetExpiresAt(v time.Time) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateExpiresAt() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *PendingActionUpsertOne) ClearExpiresAt() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearExpiresAt()
	})
}

// SetExecutionResult sets the "execution_result" field.
func (u *PendingActionUpsertOne) SetExecutionResult(v map[string]interface{}) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetExecutionResult(v)
	})
}

// UpdateExecutionResult sets the "execution_result" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateExecutionResult() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateExecutionResult()
	})
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (u *PendingActionUpsertOne) ClearExecutionResult() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearExecutionResult()
	})
}

// SetSessionID sets the "session_id" field.
func (u *PendingActionUpsertOne) SetSessionID(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateSessionID() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *PendingActionUpsertOne) ClearSessionID() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearSessionID()
	})
}

// Exec executes the query.
func (u *PendingActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PendingActionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PendingActionUpsertOne.ID is not supported by MySQL driver. Use PendingActionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PendingActionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PendingActionCreateBulk is the builder for creating many PendingAction entities in bulk.
type PendingActionCreateBulk struct {
	config
	err      error
	builders []*PendingActionCreate
	conflict []sql.ConflictOption
}

// Save creates the PendingAction entities in the database.
func (_c *PendingActionCreateBulk) Save(ctx context.Context) ([]*PendingAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingActionMutation)
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
func (_c *PendingActionCreateBulk) SaveX(ctx context.Context) []*PendingAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingActionUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PendingActionUpsertBulk {
	_c.conflict = opts
	return &PendingActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingActionCreateBulk) OnConflictColumns(columns ...string) *PendingActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingActionUpsertBulk{
		create: _c,
	}
}

// PendingActionUpsertBulk is the builder for "upsert"-ing
// a bulk of PendingAction nodes.
type PendingActionUpsertBulk struct {
	create *PendingActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingActionUpsertBulk) UpdateNewValues() *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pendingaction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pendingaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PendingActionUpsertBulk) Ignore() *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingActionUpsertBulk) DoNothing() *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingActionCreateBulk.OnConflict
// documentation for more info.
func (u *PendingActionUpsertBulk) Update(set func(*PendingActionUpsert)) *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *PendingActionUpsertBulk) SetButlerName(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateButlerName() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateButlerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *PendingActionUpsertBulk) SetToolName(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateToolName() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateToolName()
	})
}

// SetToolArgs sets the "tool_args" field.
func (u *PendingActionUpsertBulk) SetToolArgs(v map[string]interface{}) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetToolArgs(v)
	})
}

// UpdateToolArgs sets the "tool_args" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateToolArgs() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateToolArgs()
	})
}

// SetStatus sets the "status" field.
func (u *PendingActionUpsertBulk) SetStatus(v pendingaction.Status) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateStatus() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateStatus()
	})
}

// SetRiskTier sets the "risk_tier" field.
func (u *PendingActionUpsertBulk) SetRiskTier(v pendingaction.RiskTier) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetRiskTier(v)
	})
}

// UpdateRiskTier sets the "risk_tier" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateRiskTier() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateRiskTier()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *PendingActionUpsertBulk) SetDecidedAt(v time.Time) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateDecidedAt() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *PendingActionUpsertBulk) ClearDecidedAt() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearDecidedAt()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *PendingActionUpsertBulk) SetDecidedBy(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateDecidedBy() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *PendingActionUpsertBulk) ClearDecidedBy() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearDecidedBy()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *PendingActionUpsertBulk) SetExpiresAt(v time.Time) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateExpiresAt() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *PendingActionUpsertBulk) ClearExpiresAt() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearExpiresAt()
	})
}

// SetExecutionResult sets the "execution_result" field.
func (u *PendingActionUpsertBulk) SetExecutionResult(v map[string]interface{}) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetExecutionResult(v)
	})
}

// UpdateExecutionResult sets the "execution_result" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateExecutionResult() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateExecutionResult()
	})
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (u *PendingActionUpsertBulk) ClearExecutionResult() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearExecutionResult()
	})
}

// SetSessionID sets the "session_id" field.
func (u *PendingActionUpsertBulk) SetSessionID(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateSessionID() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *PendingActionUpsertBulk) ClearSessionID() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearSessionID()
	})
}

// Exec executes the query.
func (u *PendingActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PendingActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
