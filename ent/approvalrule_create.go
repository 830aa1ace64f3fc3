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
	"github.com/homekeep/butlerd/ent/approvalrule"
)

// ApprovalRuleCreate is the builder for creating a ApprovalRule entity.
type ApprovalRuleCreate struct {
	config
	mutation *ApprovalRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetButlerName sets the "butler_name" field.
func (_c *ApprovalRuleCreate) SetButlerName(v string) *ApprovalRuleCreate {
	_c.mutation.SetButlerName(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ApprovalRuleCreate) SetToolName(v string) *ApprovalRuleCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArgConstraints sets the "arg_constraints" field.
func (_c *ApprovalRuleCreate) SetArgConstraints(v []map[string]interface{}) *ApprovalRuleCreate {
	_c.mutation.SetArgConstraints(v)
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *ApprovalRuleCreate) SetRiskTier(v approvalrule.RiskTier) *ApprovalRuleCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableRiskTier(v *approvalrule.RiskTier) *ApprovalRuleCreate {
	if v != nil {
		_c.SetRiskTier(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalRuleCreate) SetExpiresAt(v time.Time) *ApprovalRuleCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableExpiresAt(v *time.Time) *ApprovalRuleCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetMaxUses sets the "max_uses" field.
func (_c *ApprovalRuleCreate) SetMaxUses(v int) *ApprovalRuleCreate {
	_c.mutation.SetMaxUses(v)
	return _c
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableMaxUses(v *int) *ApprovalRuleCreate {
	if v != nil {
		_c.SetMaxUses(*v)
	}
	return _c
}

// SetUses sets the "uses" field.
func (_c *ApprovalRuleCreate) SetUses(v int) *ApprovalRuleCreate {
	_c.mutation.SetUses(v)
	return _c
}

// SetNillableUses sets the "uses" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableUses(v *int) *ApprovalRuleCreate {
	if v != nil {
		_c.SetUses(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ApprovalRuleCreate) SetEnabled(v bool) *ApprovalRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableEnabled(v *bool) *ApprovalRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRuleCreate) SetCreatedAt(v time.Time) *ApprovalRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRuleCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRuleCreate) SetID(v string) *ApprovalRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalRuleMutation object of the builder.
func (_c *ApprovalRuleCreate) Mutation() *ApprovalRuleMutation {
	return _c.mutation
}

// Save creates the ApprovalRule in the database.
func (_c *ApprovalRuleCreate) Save(ctx context.Context) (*ApprovalRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRuleCreate) SaveX(ctx context.Context) *ApprovalRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRuleCreate) defaults() {
	if _, ok := _c.mutation.RiskTier(); !ok {
		v := approvalrule.DefaultRiskTier
		_c.mutation.SetRiskTier(v)
	}
	if _, ok := _c.mutation.Uses(); !ok {
		v := approvalrule.DefaultUses
		_c.mutation.SetUses(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := approvalrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRuleCreate) check() error {
	if _, ok := _c.mutation.ButlerName(); !ok {
		return &ValidationError{Name: "butler_name", err: errors.New(`ent: missing required field "ApprovalRule.butler_name"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ApprovalRule.tool_name"`)}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "ApprovalRule.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := approvalrule.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "ApprovalRule.risk_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Uses(); !ok {
		return &ValidationError{Name: "uses", err: errors.New(`ent: missing required field "ApprovalRule.uses"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ApprovalRule.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRule.created_at"`)}
	}
	return nil
}

func (_c *ApprovalRuleCreate) sqlSave(ctx context.Context) (*ApprovalRule, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRuleCreate) createSpec() (*ApprovalRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrule.Table, sqlgraph.NewFieldSpec(approvalrule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ButlerName(); ok {
		_spec.SetField(approvalrule.FieldButlerName, field.TypeString, value)
		_node.ButlerName = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(approvalrule.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ArgConstraints(); ok {
		_spec.SetField(approvalrule.FieldArgConstraints, field.TypeJSON, value)
		_node.ArgConstraints = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(approvalrule.FieldRiskTier, field.TypeEnum, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrule.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.MaxUses(); ok {
		_spec.SetField(approvalrule.FieldMaxUses, field.TypeInt, value)
		_node.MaxUses = &value
	}
	if value, ok := _c.mutation.Uses(); ok {
		_spec.SetField(approvalrule.FieldUses, field.TypeInt, value)
		_node.Uses = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(approvalrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRule.Create().
//		SetButlerName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRuleUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRuleCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalRuleUpsertOne {
	_c.conflict = opts
	return &ApprovalRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRuleCreate) OnConflictColumns(columns ...string) *ApprovalRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRuleUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalRuleUpsertOne is the builder for "upsert"-ing
	//  one ApprovalRule node.
	ApprovalRuleUpsertOne struct {
		create *ApprovalRuleCreate
	}

	// ApprovalRuleUpsert is the "OnConflict" setter.
	ApprovalRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetButlerName sets the "butler_name" field.
func (u *ApprovalRuleUpsert) SetButlerName(v string) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldButlerName, v)
	return u
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateButlerName() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldButlerName)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *ApprovalRuleUpsert) SetToolName(v string) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateToolName() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldToolName)
	return u
}

// SetArgConstraints sets the "arg_constraints" field.
func (u *ApprovalRuleUpsert) SetArgConstraints(v []map[string]interface{}) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldArgConstraints, v)
	return u
}

// UpdateArgConstraints sets the "arg_constraints" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateArgConstraints() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldArgConstraints)
	return u
}

// ClearArgConstraints clears the value of the "arg_constraints" field.
func (u *ApprovalRuleUpsert) ClearArgConstraints() *ApprovalRuleUpsert {
	u.SetNull(approvalrule.FieldArgConstraints)
	return u
}

// SetRiskTier sets the "risk_tier" field.
func (u *ApprovalRuleUpsert) SetRiskTier(v approvalrule.RiskTier) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldRiskTier, v)
	return u
}

// UpdateRiskTier sets the "risk_tier" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateRiskTier() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldRiskTier)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ApprovalRuleUpsert) SetExpiresAt(v time.Time) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateExpiresAt() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ApprovalRuleUpsert) ClearExpiresAt() *ApprovalRuleUpsert {
	u.SetNull(approvalrule.FieldExpiresAt)
	return u
}

// SetMaxUses sets the "max_uses" field.
func (u *ApprovalRuleUpsert) SetMaxUses(v int) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldMaxUses, v)
	return u
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateMaxUses() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldMaxUses)
	return u
}

// AddMaxUses adds v to the "max_uses" field.
func (u *ApprovalRuleUpsert) AddMaxUses(v int) *ApprovalRuleUpsert {
	u.Add(approvalrule.FieldMaxUses, v)
	return u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *ApprovalRuleUpsert) ClearMaxUses() *ApprovalRuleUpsert {
	u.SetNull(approvalrule.FieldMaxUses)
	return u
}

// SetUses sets the "uses" field.
func (u *ApprovalRuleUpsert) SetUses(v int) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldUses, v)
	return u
}

// UpdateUses sets the "uses" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateUses() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldUses)
	return u
}

// AddUses adds v to the "uses" field.
func (u *ApprovalRuleUpsert) AddUses(v int) *ApprovalRuleUpsert {
	u.Add(approvalrule.FieldUses, v)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *ApprovalRuleUpsert) SetEnabled(v bool) *ApprovalRuleUpsert {
	u.Set(approvalrule.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ApprovalRuleUpsert) UpdateEnabled() *ApprovalRuleUpsert {
	u.SetExcluded(approvalrule.FieldEnabled)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRuleUpsertOne) UpdateNewValues() *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approvalrule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvalrule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalRuleUpsertOne) Ignore() *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRuleUpsertOne) DoNothing() *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRuleCreate.OnConflict
// documentation for more info.
func (u *ApprovalRuleUpsertOne) Update(set func(*ApprovalRuleUpsert)) *ApprovalRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *ApprovalRuleUpsertOne) SetButlerName(v string) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateButlerName() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateButlerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ApprovalRuleUpsertOne) SetToolName(v string) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateToolName() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateToolName()
	})
}

// SetArgConstraints sets the "arg_constraints" field.
func (u *ApprovalRuleUpsertOne) SetArgConstraints(v []map[string]interface{}) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetArgConstraints(v)
	})
}

// UpdateArgConstraints sets the "arg_constraints" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateArgConstraints() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateArgConstraints()
	})
}

// ClearArgConstraints clears the value of the "arg_constraints" field.
func (u *ApprovalRuleUpsertOne) ClearArgConstraints() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearArgConstraints()
	})
}

// SetRiskTier sets the "risk_tier" field.
func (u *ApprovalRuleUpsertOne) SetRiskTier(v approvalrule.RiskTier) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetRiskTier(v)
	})
}

// UpdateRiskTier sets the "risk_tier" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateRiskTier() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateRiskTier()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ApprovalRuleUpsertOne) SetExpiresAt(v time.Time) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateExpiresAt() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ApprovalRuleUpsertOne) ClearExpiresAt() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearExpiresAt()
	})
}

// SetMaxUses sets the "max_uses" field.
func (u *ApprovalRuleUpsertOne) SetMaxUses(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetMaxUses(v)
	})
}

// AddMaxUses adds v to the "max_uses" field.
func (u *ApprovalRuleUpsertOne) AddMaxUses(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddMaxUses(v)
	})
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateMaxUses() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateMaxUses()
	})
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *ApprovalRuleUpsertOne) ClearMaxUses() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearMaxUses()
	})
}

// SetUses sets the "uses" field.
func (u *ApprovalRuleUpsertOne) SetUses(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetUses(v)
	})
}

// AddUses adds v to the "uses" field.
func (u *ApprovalRuleUpsertOne) AddUses(v int) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddUses(v)
	})
}

// UpdateUses sets the "uses" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateUses() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateUses()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ApprovalRuleUpsertOne) SetEnabled(v bool) *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ApprovalRuleUpsertOne) UpdateEnabled() *ApprovalRuleUpsertOne {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *ApprovalRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalRuleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalRuleUpsertOne.ID is not supported by MySQL driver. Use ApprovalRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalRuleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalRuleCreateBulk is the builder for creating many ApprovalRule entities in bulk.
type ApprovalRuleCreateBulk struct {
	config
	err      error
	builders []*ApprovalRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovalRule entities in the database.
func (_c *ApprovalRuleCreateBulk) Save(ctx context.Context) ([]*ApprovalRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRuleMutation)
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
func (_c *ApprovalRuleCreateBulk) SaveX(ctx context.Context) []*ApprovalRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalRuleUpsert) {
//			SetButlerName(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalRuleUpsertBulk {
	_c.conflict = opts
	return &ApprovalRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalRuleCreateBulk) OnConflictColumns(columns ...string) *ApprovalRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalRuleUpsertBulk{
		create: _c,
	}
}

// ApprovalRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovalRule nodes.
type ApprovalRuleUpsertBulk struct {
	create *ApprovalRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalRuleUpsertBulk) UpdateNewValues() *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approvalrule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvalrule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalRuleUpsertBulk) Ignore() *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalRuleUpsertBulk) DoNothing() *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalRuleCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalRuleUpsertBulk) Update(set func(*ApprovalRuleUpsert)) *ApprovalRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetButlerName sets the "butler_name" field.
func (u *ApprovalRuleUpsertBulk) SetButlerName(v string) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetButlerName(v)
	})
}

// UpdateButlerName sets the "butler_name" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateButlerName() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateButlerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ApprovalRuleUpsertBulk) SetToolName(v string) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateToolName() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateToolName()
	})
}

// SetArgConstraints sets the "arg_constraints" field.
func (u *ApprovalRuleUpsertBulk) SetArgConstraints(v []map[string]interface{}) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetArgConstraints(v)
	})
}

// UpdateArgConstraints sets the "arg_constraints" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateArgConstraints() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateArgConstraints()
	})
}

// ClearArgConstraints clears the value of the "arg_constraints" field.
func (u *ApprovalRuleUpsertBulk) ClearArgConstraints() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearArgConstraints()
	})
}

// SetRiskTier sets the "risk_tier" field.
func (u *ApprovalRuleUpsertBulk) SetRiskTier(v approvalrule.RiskTier) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetRiskTier(v)
	})
}

// UpdateRiskTier sets the "risk_tier" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateRiskTier() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateRiskTier()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ApprovalRuleUpsertBulk) SetExpiresAt(v time.Time) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateExpiresAt() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ApprovalRuleUpsertBulk) ClearExpiresAt() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearExpiresAt()
	})
}

// SetMaxUses sets the "max_uses" field.
func (u *ApprovalRuleUpsertBulk) SetMaxUses(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetMaxUses(v)
	})
}

// AddMaxUses adds v to the "max_uses" field.
func (u *ApprovalRuleUpsertBulk) AddMaxUses(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddMaxUses(v)
	})
}

// UpdateMaxUses sets the "max_uses" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateMaxUses() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateMaxUses()
	})
}

// ClearMaxUses clears the value of the "max_uses" field.
func (u *ApprovalRuleUpsertBulk) ClearMaxUses() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.ClearMaxUses()
	})
}

// SetUses sets the "uses" field.
func (u *ApprovalRuleUpsertBulk) SetUses(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetUses(v)
	})
}

// AddUses adds v to the "uses" field.
func (u *ApprovalRuleUpsertBulk) AddUses(v int) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.AddUses(v)
	})
}

// UpdateUses sets the "uses" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateUses() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateUses()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ApprovalRuleUpsertBulk) SetEnabled(v bool) *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ApprovalRuleUpsertBulk) UpdateEnabled() *ApprovalRuleUpsertBulk {
	return u.Update(func(s *ApprovalRuleUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *ApprovalRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
