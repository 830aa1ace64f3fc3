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
	"github.com/homekeep/butlerd/ent/registryentry"
)

// RegistryEntryCreate is the builder for creating a RegistryEntry entity.
type RegistryEntryCreate struct {
	config
	mutation *RegistryEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEndpointURL sets the "endpoint_url" field.
func (_c *RegistryEntryCreate) SetEndpointURL(v string) *RegistryEntryCreate {
	_c.mutation.SetEndpointURL(v)
	return _c
}

// SetRouteContractMin sets the "route_contract_min" field.
func (_c *RegistryEntryCreate) SetRouteContractMin(v int) *RegistryEntryCreate {
	_c.mutation.SetRouteContractMin(v)
	return _c
}

// SetNillableRouteContractMin sets the "route_contract_min" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableRouteContractMin(v *int) *RegistryEntryCreate {
	if v != nil {
		_c.SetRouteContractMin(*v)
	}
	return _c
}

// SetRouteContractMax sets the "route_contract_max" field.
func (_c *RegistryEntryCreate) SetRouteContractMax(v int) *RegistryEntryCreate {
	_c.mutation.SetRouteContractMax(v)
	return _c
}

// SetNillableRouteContractMax sets the "route_contract_max" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableRouteContractMax(v *int) *RegistryEntryCreate {
	if v != nil {
		_c.SetRouteContractMax(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *RegistryEntryCreate) SetCapabilities(v []string) *RegistryEntryCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RegistryEntryCreate) SetDescription(v string) *RegistryEntryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableDescription(v *string) *RegistryEntryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetEligibilityState sets the "eligibility_state" field.
func (_c *RegistryEntryCreate) SetEligibilityState(v registryentry.EligibilityState) *RegistryEntryCreate {
	_c.mutation.SetEligibilityState(v)
	return _c
}

// SetNillableEligibilityState sets the "eligibility_state" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableEligibilityState(v *registryentry.EligibilityState) *RegistryEntryCreate {
	if v != nil {
		_c.SetEligibilityState(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RegistryEntryCreate) SetLastHeartbeatAt(v time.Time) *RegistryEntryCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableLastHeartbeatAt(v *time.Time) *RegistryEntryCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetLivenessTTLS sets the "liveness_ttl_s" field.
func (_c *RegistryEntryCreate) SetLivenessTTLS(v int) *RegistryEntryCreate {
	_c.mutation.SetLivenessTTLS(v)
	return _c
}

// SetNillableLivenessTTLS sets the "liveness_ttl_s" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableLivenessTTLS(v *int) *RegistryEntryCreate {
	if v != nil {
		_c.SetLivenessTTLS(*v)
	}
	return _c
}

// SetQuarantineReason sets the "quarantine_reason" field.
func (_c *RegistryEntryCreate) SetQuarantineReason(v string) *RegistryEntryCreate {
	_c.mutation.SetQuarantineReason(v)
	return _c
}

// SetNillableQuarantineReason sets the "quarantine_reason" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableQuarantineReason(v *string) *RegistryEntryCreate {
	if v != nil {
		_c.SetQuarantineReason(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *RegistryEntryCreate) SetFirstSeenAt(v time.Time) *RegistryEntryCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableFirstSeenAt(v *time.Time) *RegistryEntryCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RegistryEntryCreate) SetUpdatedAt(v time.Time) *RegistryEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RegistryEntryCreate) SetNillableUpdatedAt(v *time.Time) *RegistryEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RegistryEntryCreate) SetID(v string) *RegistryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RegistryEntryMutation object of the builder.
func (_c *RegistryEntryCreate) Mutation() *RegistryEntryMutation {
	return _c.mutation
}

// Save creates the RegistryEntry in the database.
func (_c *RegistryEntryCreate) Save(ctx context.Context) (*RegistryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RegistryEntryCreate) SaveX(ctx context.Context) *RegistryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegistryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegistryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RegistryEntryCreate) defaults() {
	if _, ok := _c.mutation.RouteContractMin(); !ok {
		v := registryentry.DefaultRouteContractMin
		_c.mutation.SetRouteContractMin(v)
	}
	if _, ok := _c.mutation.RouteContractMax(); !ok {
		v := registryentry.DefaultRouteContractMax
		_c.mutation.SetRouteContractMax(v)
	}
	if _, ok := _c.mutation.EligibilityState(); !ok {
		v := registryentry.DefaultEligibilityState
		_c.mutation.SetEligibilityState(v)
	}
	if _, ok := _c.mutation.LivenessTTLS(); !ok {
		v := registryentry.DefaultLivenessTTLS
		_c.mutation.SetLivenessTTLS(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := registryentry.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := registryentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RegistryEntryCreate) check() error {
	if _, ok := _c.mutation.EndpointURL(); !ok {
		return &ValidationError{Name: "endpoint_url", err: errors.New(`ent: missing required field "RegistryEntry.endpoint_url"`)}
	}
	if _, ok := _c.mutation.RouteContractMin(); !ok {
		return &ValidationError{Name: "route_contract_min", err: errors.New(`ent: missing required field "RegistryEntry.route_contract_min"`)}
	}
	if _, ok := _c.mutation.RouteContractMax(); !ok {
		return &ValidationError{Name: "route_contract_max", err: errors.New(`ent: missing required field "RegistryEntry.route_contract_max"`)}
	}
	if _, ok := _c.mutation.EligibilityState(); !ok {
		return &ValidationError{Name: "eligibility_state", err: errors.New(`ent: missing required field "RegistryEntry.eligibility_state"`)}
	}
	if v, ok := _c.mutation.EligibilityState(); ok {
		if err := registryentry.EligibilityStateValidator(v); err != nil {
			return &ValidationError{Name: "eligibility_state", err: fmt.Errorf(`ent: validator failed for field "RegistryEntry.eligibility_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LivenessTTLS(); !ok {
		return &ValidationError{Name: "liveness_ttl_s", err: errors.New(`ent: missing required field "RegistryEntry.liveness_ttl_s"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "RegistryEntry.first_seen_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RegistryEntry.updated_at"`)}
	}
	return nil
}

func (_c *RegistryEntryCreate) sqlSave(ctx context.Context) (*RegistryEntry, error) {
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
			return nil, fmt.Errorf("unexpected RegistryEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RegistryEntryCreate) createSpec() (*RegistryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &RegistryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(registryentry.Table, sqlgraph.NewFieldSpec(registryentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EndpointURL(); ok {
		_spec.SetField(registryentry.FieldEndpointURL, field.TypeString, value)
		_node.EndpointURL = value
	}
	if value, ok := _c.mutation.RouteContractMin(); ok {
		_spec.SetField(registryentry.FieldRouteContractMin, field.TypeInt, value)
		_node.RouteContractMin = value
	}
	if value, ok := _c.mutation.RouteContractMax(); ok {
		_spec.SetField(registryentry.FieldRouteContractMax, field.TypeInt, value)
		_node.RouteContractMax = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(registryentry.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(registryentry.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.EligibilityState(); ok {
		_spec.SetField(registryentry.FieldEligibilityState, field.TypeEnum, value)
		_node.EligibilityState = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(registryentry.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.LivenessTTLS(); ok {
		_spec.SetField(registryentry.FieldLivenessTTLS, field.TypeInt, value)
		_node.LivenessTTLS = value
	}
	if value, ok := _c.mutation.QuarantineReason(); ok {
		_spec.SetField(registryentry.FieldQuarantineReason, field.TypeString, value)
		_node.QuarantineReason = &value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(registryentry.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(registryentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RegistryEntry.Create().
//		SetEndpointURL(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RegistryEntryUpsert) {
//			SetEndpointURL(v+v).
//		}).
//		Exec(ctx)
func (_c *RegistryEntryCreate) OnConflict(opts ...sql.ConflictOption) *RegistryEntryUpsertOne {
	_c.conflict = opts
	return &RegistryEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RegistryEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RegistryEntryCreate) OnConflictColumns(columns ...string) *RegistryEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RegistryEntryUpsertOne{
		create: _c,
	}
}

type (
	// RegistryEntryUpsertOne is the builder for "upsert"-ing
	//  one RegistryEntry node.
	RegistryEntryUpsertOne struct {
		create *RegistryEntryCreate
	}

	// RegistryEntryUpsert is the "OnConflict" setter.
	RegistryEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetEndpointURL sets the "endpoint_url" field.
func (u *RegistryEntryUpsert) SetEndpointURL(v string) *RegistryEntryUpsert {
	u.Set(registryentry.FieldEndpointURL, v)
	return u
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateEndpointURL() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldEndpointURL)
	return u
}

// SetRouteContractMin sets the "route_contract_min" field.
func (u *RegistryEntryUpsert) SetRouteContractMin(v int) *RegistryEntryUpsert {
	u.Set(registryentry.FieldRouteContractMin, v)
	return u
}

// UpdateRouteContractMin sets the "route_contract_min" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateRouteContractMin() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldRouteContractMin)
	return u
}

// AddRouteContractMin adds v to the "route_contract_min" field.
func (u *RegistryEntryUpsert) AddRouteContractMin(v int) *RegistryEntryUpsert {
	u.Add(registryentry.FieldRouteContractMin, v)
	return u
}

// SetRouteContractMax sets the "route_contract_max" field.
func (u *RegistryEntryUpsert) SetRouteContractMax(v int) *RegistryEntryUpsert {
	u.Set(registryentry.FieldRouteContractMax, v)
	return u
}

// UpdateRouteContractMax sets the "route_contract_max" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateRouteContractMax() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldRouteContractMax)
	return u
}

// AddRouteContractMax adds v to the "route_contract_max" field.
func (u *RegistryEntryUpsert) AddRouteContractMax(v int) *RegistryEntryUpsert {
	u.Add(registryentry.FieldRouteContractMax, v)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *RegistryEntryUpsert) SetCapabilities(v []string) *RegistryEntryUpsert {
	u.Set(registryentry.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateCapabilities() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldCapabilities)
	return u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *RegistryEntryUpsert) ClearCapabilities() *RegistryEntryUpsert {
	u.SetNull(registryentry.FieldCapabilities)
	return u
}

// SetDescription sets the "description" field.
func (u *RegistryEntryUpsert) SetDescription(v string) *RegistryEntryUpsert {
	u.Set(registryentry.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateDescription() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *RegistryEntryUpsert) ClearDescription() *RegistryEntryUpsert {
	u.SetNull(registryentry.FieldDescription)
	return u
}

// SetEligibilityState sets the "eligibility_state" field.
func (u *RegistryEntryUpsert) SetEligibilityState(v registryentry.EligibilityState) *RegistryEntryUpsert {
	u.Set(registryentry.FieldEligibilityState, v)
	return u
}

// UpdateEligibilityState sets the "eligibility_state" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateEligibilityState() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldEligibilityState)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *RegistryEntryUpsert) SetLastHeartbeatAt(v time.Time) *RegistryEntryUpsert {
	u.Set(registryentry.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateLastHeartbeatAt() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *RegistryEntryUpsert) ClearLastHeartbeatAt() *RegistryEntryUpsert {
	u.SetNull(registryentry.FieldLastHeartbeatAt)
	return u
}

// SetLivenessTTLS sets the "liveness_ttl_s" field.
func (u *RegistryEntryUpsert) SetLivenessTTLS(v int) *RegistryEntryUpsert {
	u.Set(registryentry.FieldLivenessTTLS, v)
	return u
}

// UpdateLivenessTTLS sets the "liveness_ttl_s" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateLivenessTTLS() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldLivenessTTLS)
	return u
}

// AddLivenessTTLS adds v to the "liveness_ttl_s" field.
func (u *RegistryEntryUpsert) AddLivenessTTLS(v int) *RegistryEntryUpsert {
	u.Add(registryentry.FieldLivenessTTLS, v)
	return u
}

// SetQuarantineReason sets the "quarantine_reason" field.
func (u *RegistryEntryUpsert) SetQuarantineReason(v string) *RegistryEntryUpsert {
	u.Set(registryentry.FieldQuarantineReason, v)
	return u
}

// UpdateQuarantineReason sets the "quarantine_reason" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateQuarantineReason() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldQuarantineReason)
	return u
}

// ClearQuarantineReason clears the value of the "quarantine_reason" field.
func (u *RegistryEntryUpsert) ClearQuarantineReason() *RegistryEntryUpsert {
	u.SetNull(registryentry.FieldQuarantineReason)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RegistryEntryUpsert) SetUpdatedAt(v time.Time) *RegistryEntryUpsert {
	u.Set(registryentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RegistryEntryUpsert) UpdateUpdatedAt() *RegistryEntryUpsert {
	u.SetExcluded(registryentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RegistryEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(registryentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RegistryEntryUpsertOne) UpdateNewValues() *RegistryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(registryentry.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(registryentry.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RegistryEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RegistryEntryUpsertOne) Ignore() *RegistryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RegistryEntryUpsertOne) DoNothing() *RegistryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RegistryEntryCreate.OnConflict
// documentation for more info.
func (u *RegistryEntryUpsertOne) Update(set func(*RegistryEntryUpsert)) *RegistryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RegistryEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *RegistryEntryUpsertOne) SetEndpointURL(v string) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetEndpointURL(v)
	})
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateEndpointURL() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateEndpointURL()
	})
}

// SetRouteContractMin sets the "route_contract_min" field.
func (u *RegistryEntryUpsertOne) SetRouteContractMin(v int) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetRouteContractMin(v)
	})
}

// AddRouteContractMin adds v to the "route_contract_min" field.
func (u *RegistryEntryUpsertOne) AddRouteContractMin(v int) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.AddRouteContractMin(v)
	})
}

// UpdateRouteContractMin sets the "route_contract_min" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateRouteContractMin() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateRouteContractMin()
	})
}

// SetRouteContractMax sets the "route_contract_max" field.
func (u *RegistryEntryUpsertOne) SetRouteContractMax(v int) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetRouteContractMax(v)
	})
}

// AddRouteContractMax adds v to the "route_contract_max" field.
func (u *RegistryEntryUpsertOne) AddRouteContractMax(v int) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.AddRouteContractMax(v)
	})
}

// UpdateRouteContractMax sets the "route_contract_max" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateRouteContractMax() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateRouteContractMax()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *RegistryEntryUpsertOne) SetCapabilities(v []string) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateCapabilities() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *RegistryEntryUpsertOne) ClearCapabilities() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearCapabilities()
	})
}

// SetDescription sets the "description" field.
func (u *RegistryEntryUpsertOne) SetDescription(v string) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateDescription() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *RegistryEntryUpsertOne) ClearDescription() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearDescription()
	})
}

// SetEligibilityState sets the "eligibility_state" field.
func (u *RegistryEntryUpsertOne) SetEligibilityState(v registryentry.EligibilityState) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetEligibilityState(v)
	})
}

// UpdateEligibilityState sets the "eligibility_state" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateEligibilityState() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateEligibilityState()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *RegistryEntryUpsertOne) SetLastHeartbeatAt(v time.Time) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateLastHeartbeatAt() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *RegistryEntryUpsertOne) ClearLastHeartbeatAt() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetLivenessTTLS sets the "liveness_ttl_s" field.
func (u *RegistryEntryUpsertOne) SetLivenessTTLS(v int) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetLivenessTTLS(v)
	})
}

// AddLivenessTTLS adds v to the "liveness_ttl_s" field.
func (u *RegistryEntryUpsertOne) AddLivenessTTLS(v int) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.AddLivenessTTLS(v)
	})
}

// UpdateLivenessTTLS sets the "liveness_ttl_s" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateLivenessTTLS() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateLivenessTTLS()
	})
}

// SetQuarantineReason sets the "quarantine_reason" field.
func (u *RegistryEntryUpsertOne) SetQuarantineReason(v string) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetQuarantineReason(v)
	})
}

// UpdateQuarantineReason sets the "quarantine_reason" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateQuarantineReason() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateQuarantineReason()
	})
}

// ClearQuarantineReason clears the value of the "quarantine_reason" field.
func (u *RegistryEntryUpsertOne) ClearQuarantineReason() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearQuarantineReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RegistryEntryUpsertOne) SetUpdatedAt(v time.Time) *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RegistryEntryUpsertOne) UpdateUpdatedAt() *RegistryEntryUpsertOne {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RegistryEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RegistryEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RegistryEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RegistryEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RegistryEntryUpsertOne.ID is not supported by MySQL driver. Use RegistryEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RegistryEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RegistryEntryCreateBulk is the builder for creating many RegistryEntry entities in bulk.
type RegistryEntryCreateBulk struct {
	config
	err      error
	builders []*RegistryEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the RegistryEntry entities in the database.
func (_c *RegistryEntryCreateBulk) Save(ctx context.Context) ([]*RegistryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RegistryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RegistryEntryMutation)
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
func (_c *RegistryEntryCreateBulk) SaveX(ctx context.Context) []*RegistryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegistryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegistryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RegistryEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RegistryEntryUpsert) {
//			SetEndpointURL(v+v).
//		}).
//		Exec(ctx)
func (_c *RegistryEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *RegistryEntryUpsertBulk {
	_c.conflict = opts
	return &RegistryEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RegistryEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RegistryEntryCreateBulk) OnConflictColumns(columns ...string) *RegistryEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RegistryEntryUpsertBulk{
		create: _c,
	}
}

// RegistryEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of RegistryEntry nodes.
type RegistryEntryUpsertBulk struct {
	create *RegistryEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RegistryEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(registryentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RegistryEntryUpsertBulk) UpdateNewValues() *RegistryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(registryentry.FieldID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(registryentry.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RegistryEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RegistryEntryUpsertBulk) Ignore() *RegistryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RegistryEntryUpsertBulk) DoNothing() *RegistryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RegistryEntryCreateBulk.OnConflict
// documentation for more info.
func (u *RegistryEntryUpsertBulk) Update(set func(*RegistryEntryUpsert)) *RegistryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RegistryEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetEndpointURL sets the "endpoint_url" field.
func (u *RegistryEntryUpsertBulk) SetEndpointURL(v string) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetEndpointURL(v)
	})
}

// UpdateEndpointURL sets the "endpoint_url" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateEndpointURL() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateEndpointURL()
	})
}

// SetRouteContractMin sets the "route_contract_min" field.
func (u *RegistryEntryUpsertBulk) SetRouteContractMin(v int) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetRouteContractMin(v)
	})
}

// AddRouteContractMin adds v to the "route_contract_min" field.
func (u *RegistryEntryUpsertBulk) AddRouteContractMin(v int) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.AddRouteContractMin(v)
	})
}

// UpdateRouteContractMin sets the "route_contract_min" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateRouteContractMin() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateRouteContractMin()
	})
}

// SetRouteContractMax sets the "route_contract_max" field.
func (u *RegistryEntryUpsertBulk) SetRouteContractMax(v int) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetRouteContractMax(v)
	})
}

// AddRouteContractMax adds v to the "route_contract_max" field.
func (u *RegistryEntryUpsertBulk) AddRouteContractMax(v int) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.AddRouteContractMax(v)
	})
}

// UpdateRouteContractMax sets the "route_contract_max" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateRouteContractMax() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateRouteContractMax()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *RegistryEntryUpsertBulk) SetCapabilities(v []string) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateCapabilities() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *RegistryEntryUpsertBulk) ClearCapabilities() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearCapabilities()
	})
}

// SetDescription sets the "description" field.
func (u *RegistryEntryUpsertBulk) SetDescription(v string) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateDescription() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *RegistryEntryUpsertBulk) ClearDescription() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearDescription()
	})
}

// SetEligibilityState sets the "eligibility_state" field.
func (u *RegistryEntryUpsertBulk) SetEligibilityState(v registryentry.EligibilityState) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetEligibilityState(v)
	})
}

// UpdateEligibilityState sets the "eligibility_state" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateEligibilityState() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateEligibilityState()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *RegistryEntryUpsertBulk) SetLastHeartbeatAt(v time.Time) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateLastHeartbeatAt() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *RegistryEntryUpsertBulk) ClearLastHeartbeatAt() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetLivenessTTLS sets the "liveness_ttl_s" field.
func (u *RegistryEntryUpsertBulk) SetLivenessTTLS(v int) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetLivenessTTLS(v)
	})
}

// AddLivenessTTLS adds v to the "liveness_ttl_s" field.
func (u *RegistryEntryUpsertBulk) AddLivenessTTLS(v int) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.AddLivenessTTLS(v)
	})
}

// UpdateLivenessTTLS sets the "liveness_ttl_s" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateLivenessTTLS() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateLivenessTTLS()
	})
}

// SetQuarantineReason sets the "quarantine_reason" field.
func (u *RegistryEntryUpsertBulk) SetQuarantineReason(v string) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetQuarantineReason(v)
	})
}

// UpdateQuarantineReason sets the "quarantine_reason" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateQuarantineReason() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateQuarantineReason()
	})
}

// ClearQuarantineReason clears the value of the "quarantine_reason" field.
func (u *RegistryEntryUpsertBulk) ClearQuarantineReason() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.ClearQuarantineReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RegistryEntryUpsertBulk) SetUpdatedAt(v time.Time) *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RegistryEntryUpsertBulk) UpdateUpdatedAt() *RegistryEntryUpsertBulk {
	return u.Update(func(s *RegistryEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RegistryEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RegistryEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RegistryEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RegistryEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
