// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/predicate"
	"github.com/homekeep/butlerd/ent/registryentry"
)

// RegistryEntryUpdate is the builder for updating RegistryEntry entities.
type RegistryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *RegistryEntryMutation
}

// Where appends a list predicates to the RegistryEntryUpdate builder.
func (_u *RegistryEntryUpdate) Where(ps ...predicate.RegistryEntry) *RegistryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndpointURL sets the "endpoint_url" field.
func (_u *RegistryEntryUpdate) SetEndpointURL(v string) *RegistryEntryUpdate {
	_u.mutation.SetEndpointURL(v)
	return _u
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableEndpointURL(v *string) *RegistryEntryUpdate {
	if v != nil {
		_u.SetEndpointURL(*v)
	}
	return _u
}

// SetRouteContractMin sets the "route_contract_min" field.
func (_u *RegistryEntryUpdate) SetRouteContractMin(v int) *RegistryEntryUpdate {
	_u.mutation.ResetRouteContractMin()
	_u.mutation.SetRouteContractMin(v)
	return _u
}

// SetNillableRouteContractMin sets the "route_contract_min" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableRouteContractMin(v *int) *RegistryEntryUpdate {
	if v != nil {
		_u.SetRouteContractMin(*v)
	}
	return _u
}

// AddRouteContractMin adds value to the "route_contract_min" field.
func (_u *RegistryEntryUpdate) AddRouteContractMin(v int) *RegistryEntryUpdate {
	_u.mutation.AddRouteContractMin(v)
	return _u
}

// SetRouteContractMax sets the "route_contract_max" field.
func (_u *RegistryEntryUpdate) SetRouteContractMax(v int) *RegistryEntryUpdate {
	_u.mutation.ResetRouteContractMax()
	_u.mutation.SetRouteContractMax(v)
	return _u
}

// SetNillableRouteContractMax sets the "route_contract_max" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableRouteContractMax(v *int) *RegistryEntryUpdate {
	if v != nil {
		_u.SetRouteContractMax(*v)
	}
	return _u
}

// AddRouteContractMax adds value to the "route_contract_max" field.
func (_u *RegistryEntryUpdate) AddRouteContractMax(v int) *RegistryEntryUpdate {
	_u.mutation.AddRouteContractMax(v)
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *RegistryEntryUpdate) SetCapabilities(v []string) *RegistryEntryUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *RegistryEntryUpdate) AppendCapabilities(v []string) *RegistryEntryUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *RegistryEntryUpdate) ClearCapabilities() *RegistryEntryUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RegistryEntryUpdate) SetDescription(v string) *RegistryEntryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableDescription(v *string) *RegistryEntryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RegistryEntryUpdate) ClearDescription() *RegistryEntryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetEligibilityState sets the "eligibility_state" field.
func (_u *RegistryEntryUpdate) SetEligibilityState(v registryentry.EligibilityState) *RegistryEntryUpdate {
	_u.mutation.SetEligibilityState(v)
	return _u
}

// SetNillableEligibilityState sets the "eligibility_state" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableEligibilityState(v *registryentry.EligibilityState) *RegistryEntryUpdate {
	if v != nil {
		_u.SetEligibilityState(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RegistryEntryUpdate) SetLastHeartbeatAt(v time.Time) *RegistryEntryUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RegistryEntryUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RegistryEntryUpdate) ClearLastHeartbeatAt() *RegistryEntryUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetLivenessTTLS sets the "liveness_ttl_s" field.
func (_u *RegistryEntryUpdate) SetLivenessTTLS(v int) *RegistryEntryUpdate {
	_u.mutation.ResetLivenessTTLS()
	_u.mutation.SetLivenessTTLS(v)
	return _u
}

// SetNillableLivenessTTLS sets the "liveness_ttl_s" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableLivenessTTLS(v *int) *RegistryEntryUpdate {
	if v != nil {
		_u.SetLivenessTTLS(*v)
	}
	return _u
}

// AddLivenessTTLS adds value to the "liveness_ttl_s" field.
func (_u *RegistryEntryUpdate) AddLivenessTTLS(v int) *RegistryEntryUpdate {
	_u.mutation.AddLivenessTTLS(v)
	return _u
}

// SetQuarantineReason sets the "quarantine_reason" field.
func (_u *RegistryEntryUpdate) SetQuarantineReason(v string) *RegistryEntryUpdate {
	_u.mutation.SetQuarantineReason(v)
	return _u
}

// SetNillableQuarantineReason sets the "quarantine_reason" field if the given value is not nil.
func (_u *RegistryEntryUpdate) SetNillableQuarantineReason(v *string) *RegistryEntryUpdate {
	if v != nil {
		_u.SetQuarantineReason(*v)
	}
	return _u
}

// ClearQuarantineReason clears the value of the "quarantine_reason" field.
func (_u *RegistryEntryUpdate) ClearQuarantineReason() *RegistryEntryUpdate {
	_u.mutation.ClearQuarantineReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RegistryEntryUpdate) SetUpdatedAt(v time.Time) *RegistryEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RegistryEntryMutation object of the builder.
func (_u *RegistryEntryUpdate) Mutation() *RegistryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegistryEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegistryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegistryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegistryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RegistryEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := registryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegistryEntryUpdate) check() error {
	if v, ok := _u.mutation.EligibilityState(); ok {
		if err := registryentry.EligibilityStateValidator(v); err != nil {
			return &ValidationError{Name: "eligibility_state", err: fmt.Errorf(`ent: validator failed for field "RegistryEntry.eligibility_state": %w`, err)}
		}
	}
	return nil
}

func (_u *RegistryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registryentry.Table, registryentry.Columns, sqlgraph.NewFieldSpec(registryentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndpointURL(); ok {
		_spec.SetField(registryentry.FieldEndpointURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.RouteContractMin(); ok {
		_spec.SetField(registryentry.FieldRouteContractMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRouteContractMin(); ok {
		_spec.AddField(registryentry.FieldRouteContractMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RouteContractMax(); ok {
		_spec.SetField(registryentry.FieldRouteContractMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRouteContractMax(); ok {
		_spec.AddField(registryentry.FieldRouteContractMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(registryentry.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, registryentry.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(registryentry.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(registryentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(registryentry.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EligibilityState(); ok {
		_spec.SetField(registryentry.FieldEligibilityState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(registryentry.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(registryentry.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LivenessTTLS(); ok {
		_spec.SetField(registryentry.FieldLivenessTTLS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLivenessTTLS(); ok {
		_spec.AddField(registryentry.FieldLivenessTTLS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuarantineReason(); ok {
		_spec.SetField(registryentry.FieldQuarantineReason, field.TypeString, value)
	}
	if _u.mutation.QuarantineReasonCleared() {
		_spec.ClearField(registryentry.FieldQuarantineReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(registryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegistryEntryUpdateOne is the builder for updating a single RegistryEntry entity.
type RegistryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegistryEntryMutation
}

// SetEndpointURL sets the "endpoint_url" field.
func (_u *RegistryEntryUpdateOne) SetEndpointURL(v string) *RegistryEntryUpdateOne {
	_u.mutation.SetEndpointURL(v)
	return _u
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableEndpointURL(v *string) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetEndpointURL(*v)
	}
	return _u
}

// SetRouteContractMin sets the "route_contract_min" field.
func (_u *RegistryEntryUpdateOne) SetRouteContractMin(v int) *RegistryEntryUpdateOne {
	_u.mutation.ResetRouteContractMin()
	_u.mutation.SetRouteContractMin(v)
	return _u
}

// SetNillableRouteContractMin sets the "route_contract_min" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableRouteContractMin(v *int) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetRouteContractMin(*v)
	}
	return _u
}

// AddRouteContractMin adds value to the "route_contract_min" field.
func (_u *RegistryEntryUpdateOne) AddRouteContractMin(v int) *RegistryEntryUpdateOne {
	_u.mutation.AddRouteContractMin(v)
	return _u
}

// SetRouteContractMax sets the "route_contract_max" field.
func (_u *RegistryEntryUpdateOne) SetRouteContractMax(v int) *RegistryEntryUpdateOne {
	_u.mutation.ResetRouteContractMax()
	_u.mutation.SetRouteContractMax(v)
	return _u
}

// SetNillableRouteContractMax sets the "route_contract_max" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableRouteContractMax(v *int) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetRouteContractMax(*v)
	}
	return _u
}

// AddRouteContractMax adds value to the "route_contract_max" field.
func (_u *RegistryEntryUpdateOne) AddRouteContractMax(v int) *RegistryEntryUpdateOne {
	_u.mutation.AddRouteContractMax(v)
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *RegistryEntryUpdateOne) SetCapabilities(v []string) *RegistryEntryUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *RegistryEntryUpdateOne) AppendCapabilities(v []string) *RegistryEntryUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *RegistryEntryUpdateOne) ClearCapabilities() *RegistryEntryUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetDescription sets the "description" field.
func (_u *RegistryEntryUpdateOne) SetDescription(v string) *RegistryEntryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableDescription(v *string) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RegistryEntryUpdateOne) ClearDescription() *RegistryEntryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetEligibilityState sets the "eligibility_state" field.
func (_u *RegistryEntryUpdateOne) SetEligibilityState(v registryentry.EligibilityState) *RegistryEntryUpdateOne {
	_u.mutation.SetEligibilityState(v)
	return _u
}

// SetNillableEligibilityState sets the "eligibility_state" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableEligibilityState(v *registryentry.EligibilityState) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetEligibilityState(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RegistryEntryUpdateOne) SetLastHeartbeatAt(v time.Time) *RegistryEntryUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RegistryEntryUpdateOne) ClearLastHeartbeatAt() *RegistryEntryUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetLivenessTTLS sets the "liveness_ttl_s" field.
func (_u *RegistryEntryUpdateOne) SetLivenessTTLS(v int) *RegistryEntryUpdateOne {
	_u.mutation.ResetLivenessTTLS()
	_u.mutation.SetLivenessTTLS(v)
	return _u
}

// SetNillableLivenessTTLS sets the "liveness_ttl_s" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableLivenessTTLS(v *int) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetLivenessTTLS(*v)
	}
	return _u
}

// AddLivenessTTLS adds value to the "liveness_ttl_s" field.
func (_u *RegistryEntryUpdateOne) AddLivenessTTLS(v int) *RegistryEntryUpdateOne {
	_u.mutation.AddLivenessTTLS(v)
	return _u
}

// SetQuarantineReason sets the "quarantine_reason" field.
func (_u *RegistryEntryUpdateOne) SetQuarantineReason(v string) *RegistryEntryUpdateOne {
	_u.mutation.SetQuarantineReason(v)
	return _u
}

// SetNillableQuarantineReason sets the "quarantine_reason" field if the given value is not nil.
func (_u *RegistryEntryUpdateOne) SetNillableQuarantineReason(v *string) *RegistryEntryUpdateOne {
	if v != nil {
		_u.SetQuarantineReason(*v)
	}
	return _u
}

// ClearQuarantineReason clears the value of the "quarantine_reason" field.
func (_u *RegistryEntryUpdateOne) ClearQuarantineReason() *RegistryEntryUpdateOne {
	_u.mutation.ClearQuarantineReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RegistryEntryUpdateOne) SetUpdatedAt(v time.Time) *RegistryEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RegistryEntryMutation object of the builder.
func (_u *RegistryEntryUpdateOne) Mutation() *RegistryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the RegistryEntryUpdate builder.
func (_u *RegistryEntryUpdateOne) Where(ps ...predicate.RegistryEntry) *RegistryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegistryEntryUpdateOne) Select(field string, fields ...string) *RegistryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RegistryEntry entity.
func (_u *RegistryEntryUpdateOne) Save(ctx context.Context) (*RegistryEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegistryEntryUpdateOne) SaveX(ctx context.Context) *RegistryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegistryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegistryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RegistryEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := registryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegistryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EligibilityState(); ok {
		if err := registryentry.EligibilityStateValidator(v); err != nil {
			return &ValidationError{Name: "eligibility_state", err: fmt.Errorf(`ent: validator failed for field "RegistryEntry.eligibility_state": %w`, err)}
		}
	}
	return nil
}

func (_u *RegistryEntryUpdateOne) sqlSave(ctx context.Context) (_node *RegistryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registryentry.Table, registryentry.Columns, sqlgraph.NewFieldSpec(registryentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RegistryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, registryentry.FieldID)
		for _, f := range fields {
			if !registryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != registryentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndpointURL(); ok {
		_spec.SetField(registryentry.FieldEndpointURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.RouteContractMin(); ok {
		_spec.SetField(registryentry.FieldRouteContractMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRouteContractMin(); ok {
		_spec.AddField(registryentry.FieldRouteContractMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RouteContractMax(); ok {
		_spec.SetField(registryentry.FieldRouteContractMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRouteContractMax(); ok {
		_spec.AddField(registryentry.FieldRouteContractMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(registryentry.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, registryentry.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(registryentry.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(registryentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(registryentry.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EligibilityState(); ok {
		_spec.SetField(registryentry.FieldEligibilityState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(registryentry.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(registryentry.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LivenessTTLS(); ok {
		_spec.SetField(registryentry.FieldLivenessTTLS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLivenessTTLS(); ok {
		_spec.AddField(registryentry.FieldLivenessTTLS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuarantineReason(); ok {
		_spec.SetField(registryentry.FieldQuarantineReason, field.TypeString, value)
	}
	if _u.mutation.QuarantineReasonCleared() {
		_spec.ClearField(registryentry.FieldQuarantineReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(registryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RegistryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
