// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/ingressitem"
	"github.com/homekeep/butlerd/ent/predicate"
)

// IngressItemUpdate is the builder for updating IngressItem entities.
type IngressItemUpdate struct {
	config
	hooks    []Hook
	mutation *IngressItemMutation
}

// Where appends a list predicates to the IngressItemUpdate builder.
func (_u *IngressItemUpdate) Where(ps ...predicate.IngressItem) *IngressItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *IngressItemUpdate) SetRequestID(v string) *IngressItemUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *IngressItemUpdate) SetNillableRequestID(v *string) *IngressItemUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetPriorityTier sets the "priority_tier" field.
func (_u *IngressItemUpdate) SetPriorityTier(v ingressitem.PriorityTier) *IngressItemUpdate {
	_u.mutation.SetPriorityTier(v)
	return _u
}

// SetNillablePriorityTier sets the "priority_tier" field if the given value is not nil.
func (_u *IngressItemUpdate) SetNillablePriorityTier(v *ingressitem.PriorityTier) *IngressItemUpdate {
	if v != nil {
		_u.SetPriorityTier(*v)
	}
	return _u
}

// SetLeasedBy sets the "leased_by" field.
func (_u *IngressItemUpdate) SetLeasedBy(v string) *IngressItemUpdate {
	_u.mutation.SetLeasedBy(v)
	return _u
}

// SetNillableLeasedBy sets the "leased_by" field if the given value is not nil.
func (_u *IngressItemUpdate) SetNillableLeasedBy(v *string) *IngressItemUpdate {
	if v != nil {
		_u.SetLeasedBy(*v)
	}
	return _u
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (_u *IngressItemUpdate) ClearLeasedBy() *IngressItemUpdate {
	_u.mutation.ClearLeasedBy()
	return _u
}

// SetLeasedUntil sets the "leased_until" field.
func (_u *IngressItemUpdate) SetLeasedUntil(v time.Time) *IngressItemUpdate {
	_u.mutation.SetLeasedUntil(v)
	return _u
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_u *IngressItemUpdate) SetNillableLeasedUntil(v *time.Time) *IngressItemUpdate {
	if v != nil {
		_u.SetLeasedUntil(*v)
	}
	return _u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (_u *IngressItemUpdate) ClearLeasedUntil() *IngressItemUpdate {
	_u.mutation.ClearLeasedUntil()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IngressItemUpdate) SetAttempts(v int) *IngressItemUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *IngressItemUpdate) SetNillableAttempts(v *int) *IngressItemUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *IngressItemUpdate) AddAttempts(v int) *IngressItemUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngressItemUpdate) SetStatus(v ingressitem.Status) *IngressItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngressItemUpdate) SetNillableStatus(v *ingressitem.Status) *IngressItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the IngressItemMutation object of the builder.
func (_u *IngressItemUpdate) Mutation() *IngressItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngressItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngressItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngressItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngressItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngressItemUpdate) check() error {
	if v, ok := _u.mutation.PriorityTier(); ok {
		if err := ingressitem.PriorityTierValidator(v); err != nil {
			return &ValidationError{Name: "priority_tier", err: fmt.Errorf(`ent: validator failed for field "IngressItem.priority_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingressitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngressItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngressItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingressitem.Table, ingressitem.Columns, sqlgraph.NewFieldSpec(ingressitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(ingressitem.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityTier(); ok {
		_spec.SetField(ingressitem.FieldPriorityTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeasedBy(); ok {
		_spec.SetField(ingressitem.FieldLeasedBy, field.TypeString, value)
	}
	if _u.mutation.LeasedByCleared() {
		_spec.ClearField(ingressitem.FieldLeasedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedUntil(); ok {
		_spec.SetField(ingressitem.FieldLeasedUntil, field.TypeTime, value)
	}
	if _u.mutation.LeasedUntilCleared() {
		_spec.ClearField(ingressitem.FieldLeasedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ingressitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ingressitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingressitem.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingressitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngressItemUpdateOne is the builder for updating a single IngressItem entity.
type IngressItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngressItemMutation
}

// SetRequestID sets the "request_id" field.
func (_u *IngressItemUpdateOne) SetRequestID(v string) *IngressItemUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *IngressItemUpdateOne) SetNillableRequestID(v *string) *IngressItemUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetPriorityTier sets the "priority_tier" field.
func (_u *IngressItemUpdateOne) SetPriorityTier(v ingressitem.PriorityTier) *IngressItemUpdateOne {
	_u.mutation.SetPriorityTier(v)
	return _u
}

// SetNillablePriorityTier sets the "priority_tier" field if the given value is not nil.
func (_u *IngressItemUpdateOne) SetNillablePriorityTier(v *ingressitem.PriorityTier) *IngressItemUpdateOne {
	if v != nil {
		_u.SetPriorityTier(*v)
	}
	return _u
}

// SetLeasedBy sets the "leased_by" field.
func (_u *IngressItemUpdateOne) SetLeasedBy(v string) *IngressItemUpdateOne {
	_u.mutation.SetLeasedBy(v)
	return _u
}

// SetNillableLeasedBy sets the "leased_by" field if the given value is not nil.
func (_u *IngressItemUpdateOne) SetNillableLeasedBy(v *string) *IngressItemUpdateOne {
	if v != nil {
		_u.SetLeasedBy(*v)
	}
	return _u
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (_u *IngressItemUpdateOne) ClearLeasedBy() *IngressItemUpdateOne {
	_u.mutation.ClearLeasedBy()
	return _u
}

// SetLeasedUntil sets the "leased_until" field.
func (_u *IngressItemUpdateOne) SetLeasedUntil(v time.Time) *IngressItemUpdateOne {
	_u.mutation.SetLeasedUntil(v)
	return _u
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_u *IngressItemUpdateOne) SetNillableLeasedUntil(v *time.Time) *IngressItemUpdateOne {
	if v != nil {
		_u.SetLeasedUntil(*v)
	}
	return _u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (_u *IngressItemUpdateOne) ClearLeasedUntil() *IngressItemUpdateOne {
	_u.mutation.ClearLeasedUntil()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IngressItemUpdateOne) SetAttempts(v int) *IngressItemUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *IngressItemUpdateOne) SetNillableAttempts(v *int) *IngressItemUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *IngressItemUpdateOne) AddAttempts(v int) *IngressItemUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngressItemUpdateOne) SetStatus(v ingressitem.Status) *IngressItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngressItemUpdateOne) SetNillableStatus(v *ingressitem.Status) *IngressItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the IngressItemMutation object of the builder.
func (_u *IngressItemUpdateOne) Mutation() *IngressItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngressItemUpdate builder.
func (_u *IngressItemUpdateOne) Where(ps ...predicate.IngressItem) *IngressItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngressItemUpdateOne) Select(field string, fields ...string) *IngressItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngressItem entity.
func (_u *IngressItemUpdateOne) Save(ctx context.Context) (*IngressItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngressItemUpdateOne) SaveX(ctx context.Context) *IngressItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngressItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngressItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngressItemUpdateOne) check() error {
	if v, ok := _u.mutation.PriorityTier(); ok {
		if err := ingressitem.PriorityTierValidator(v); err != nil {
			return &ValidationError{Name: "priority_tier", err: fmt.Errorf(`ent: validator failed for field "IngressItem.priority_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingressitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngressItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngressItemUpdateOne) sqlSave(ctx context.Context) (_node *IngressItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingressitem.Table, ingressitem.Columns, sqlgraph.NewFieldSpec(ingressitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngressItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingressitem.FieldID)
		for _, f := range fields {
			if !ingressitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingressitem.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(ingressitem.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityTier(); ok {
		_spec.SetField(ingressitem.FieldPriorityTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeasedBy(); ok {
		_spec.SetField(ingressitem.FieldLeasedBy, field.TypeString, value)
	}
	if _u.mutation.LeasedByCleared() {
		_spec.ClearField(ingressitem.FieldLeasedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedUntil(); ok {
		_spec.SetField(ingressitem.FieldLeasedUntil, field.TypeTime, value)
	}
	if _u.mutation.LeasedUntilCleared() {
		_spec.ClearField(ingressitem.FieldLeasedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ingressitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ingressitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingressitem.FieldStatus, field.TypeEnum, value)
	}
	_node = &IngressItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingressitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
