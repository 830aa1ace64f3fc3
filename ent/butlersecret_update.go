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
	"github.com/homekeep/butlerd/ent/butlersecret"
	"github.com/homekeep/butlerd/ent/predicate"
)

// ButlerSecretUpdate is the builder for updating ButlerSecret entities.
type ButlerSecretUpdate struct {
	config
	hooks    []Hook
	mutation *ButlerSecretMutation
}

// Where appends a list predicates to the ButlerSecretUpdate builder.
func (_u *ButlerSecretUpdate) Where(ps ...predicate.ButlerSecret) *ButlerSecretUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetButlerName sets the "butler_name" field.
func (_u *ButlerSecretUpdate) SetButlerName(v string) *ButlerSecretUpdate {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *ButlerSecretUpdate) SetNillableButlerName(v *string) *ButlerSecretUpdate {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ButlerSecretUpdate) SetKey(v string) *ButlerSecretUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ButlerSecretUpdate) SetNillableKey(v *string) *ButlerSecretUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ButlerSecretUpdate) SetValue(v string) *ButlerSecretUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ButlerSecretUpdate) SetNillableValue(v *string) *ButlerSecretUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ButlerSecretUpdate) SetUpdatedAt(v time.Time) *ButlerSecretUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ButlerSecretMutation object of the builder.
func (_u *ButlerSecretUpdate) Mutation() *ButlerSecretMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ButlerSecretUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ButlerSecretUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ButlerSecretUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ButlerSecretUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ButlerSecretUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := butlersecret.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ButlerSecretUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(butlersecret.Table, butlersecret.Columns, sqlgraph.NewFieldSpec(butlersecret.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ButlerName(); ok {
		_spec.SetField(butlersecret.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(butlersecret.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(butlersecret.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(butlersecret.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{butlersecret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ButlerSecretUpdateOne is the builder for updating a single ButlerSecret entity.
type ButlerSecretUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ButlerSecretMutation
}

// SetButlerName sets the "butler_name" field.
func (_u *ButlerSecretUpdateOne) SetButlerName(v string) *ButlerSecretUpdateOne {
	_u.mutation.SetButlerName(v)
	return _u
}

// SetNillableButlerName sets the "butler_name" field if the given value is not nil.
func (_u *ButlerSecretUpdateOne) SetNillableButlerName(v *string) *ButlerSecretUpdateOne {
	if v != nil {
		_u.SetButlerName(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ButlerSecretUpdateOne) SetKey(v string) *ButlerSecretUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ButlerSecretUpdateOne) SetNillableKey(v *string) *ButlerSecretUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ButlerSecretUpdateOne) SetValue(v string) *ButlerSecretUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ButlerSecretUpdateOne) SetNillableValue(v *string) *ButlerSecretUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ButlerSecretUpdateOne) SetUpdatedAt(v time.Time) *ButlerSecretUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ButlerSecretMutation object of the builder.
func (_u *ButlerSecretUpdateOne) Mutation() *ButlerSecretMutation {
	return _u.mutation
}

// Where appends a list predicates to the ButlerSecretUpdate builder.
func (_u *ButlerSecretUpdateOne) Where(ps ...predicate.ButlerSecret) *ButlerSecretUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ButlerSecretUpdateOne) Select(field string, fields ...string) *ButlerSecretUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ButlerSecret entity.
func (_u *ButlerSecretUpdateOne) Save(ctx context.Context) (*ButlerSecret, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ButlerSecretUpdateOne) SaveX(ctx context.Context) *ButlerSecret {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ButlerSecretUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ButlerSecretUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ButlerSecretUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := butlersecret.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ButlerSecretUpdateOne) sqlSave(ctx context.Context) (_node *ButlerSecret, err error) {
	_spec := sqlgraph.NewUpdateSpec(butlersecret.Table, butlersecret.Columns, sqlgraph.NewFieldSpec(butlersecret.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ButlerSecret.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, butlersecret.FieldID)
		for _, f := range fields {
			if !butlersecret.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != butlersecret.FieldID {
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
		_spec.SetField(butlersecret.FieldButlerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(butlersecret.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(butlersecret.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(butlersecret.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ButlerSecret{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{butlersecret.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
