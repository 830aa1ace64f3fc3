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
	"github.com/homekeep/butlerd/ent/predicate"
	"github.com/homekeep/butlerd/ent/stateentry"
)

// StateEntryUpdate is the builder for updating StateEntry entities.
type StateEntryUpdate struct {
	config
	hooks    []Hook
	mutation *StateEntryMutation
}

// Where appends a list predicates to the StateEntryUpdate builder.
func (_u *StateEntryUpdate) Where(ps ...predicate.StateEntry) *StateEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetButlerName sets the "butler_name" field.
func (_u *StateEntryUpdate) SetButlerName(v string) *StateEntryUpdate {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *StateEntryUpdate) SetNillableButlerName(v *string) *StateEntryUpdate {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *StateEntryUpdate) SetKey(v string) *StateEntryUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *StateEntryUpdate) SetNillableKey(v *string) *StateEntryUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *StateEntryUpdate) SetValue(v map[string]interface{}) *StateEntryUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *StateEntryUpdate) ClearValue() *StateEntryUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateEntryUpdate) SetUpdatedAt(v time.Time) *StateEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StateEntryMutation object of the builder.
func (_u *StateEntryUpdate) Mutation() *StateEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StateEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StateEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stateentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StateEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stateentry.Table, stateentry.Columns, sqlgraph.NewFieldSpec(stateentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ButlerName(); ok {
		_spec.SetField(stateentry.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(stateentry.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(stateentry.FieldValue, field.TypeJSON, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(stateentry.FieldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stateentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StateEntryUpdateOne is the builder for updating a single StateEntry entity.
type StateEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateEntryMutation
}

// SetButlerName sets the "butler_name" field.
func (_u *StateEntryUpdateOne) SetButlerName(v string) *StateEntryUpdateOne {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *StateEntryUpdateOne) SetNillableButlerName(v *string) *StateEntryUpdateOne {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *StateEntryUpdateOne) SetKey(v string) *StateEntryUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *StateEntryUpdateOne) SetNillableKey(v *string) *StateEntryUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *StateEntryUpdateOne) SetValue(v map[string]interface{}) *StateEntryUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *StateEntryUpdateOne) ClearValue() *StateEntryUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateEntryUpdateOne) SetUpdatedAt(v time.Time) *StateEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StateEntryMutation object of the builder.
func (_u *StateEntryUpdateOne) Mutation() *StateEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the StateEntryUpdate builder.
func (_u *StateEntryUpdateOne) Where(ps ...predicate.StateEntry) *StateEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StateEntryUpdateOne) Select(field string, fields ...string) *StateEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StateEntry entity.
func (_u *StateEntryUpdateOne) Save(ctx context.Context) (*StateEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateEntryUpdateOne) SaveX(ctx context.Context) *StateEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StateEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stateentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StateEntryUpdateOne) sqlSave(ctx context.Context) (_node *StateEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(stateentry.Table, stateentry.Columns, sqlgraph.NewFieldSpec(stateentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StateEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stateentry.FieldID)
		for _, f := range fields {
			if !stateentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stateentry.FieldID {
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
	if value, ok := _u.mutation.ButlerName(); ok {
		_spec.SetField(stateentry.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(stateentry.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(stateentry.FieldValue, field.TypeJSON, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(stateentry.FieldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stateentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StateEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stateentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
