// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homekeep/butlerd/ent/eligibilitylog"
	"github.com/homekeep/butlerd/ent/predicate"
)

// EligibilityLogUpdate is the builder for updating EligibilityLog entities.
type EligibilityLogUpdate struct {
	config
	hooks    []Hook
	mutation *EligibilityLogMutation
}

// Where appends a list predicates to the EligibilityLogUpdate builder.
func (_u *EligibilityLogUpdate) Where(ps ...predicate.EligibilityLog) *EligibilityLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EligibilityLogMutation object of the builder.
func (_u *EligibilityLogUpdate) Mutation() *EligibilityLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EligibilityLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EligibilityLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EligibilityLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EligibilityLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EligibilityLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(eligibilitylog.Table, eligibilitylog.Columns, sqlgraph.NewFieldSpec(eligibilitylog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(eligibilitylog.FieldActor, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eligibilitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EligibilityLogUpdateOne is the builder for updating a single EligibilityLog entity.
type EligibilityLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EligibilityLogMutation
}

// Mutation returns the EligibilityLogMutation object of the builder.
func (_u *EligibilityLogUpdateOne) Mutation() *EligibilityLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the EligibilityLogUpdate builder.
func (_u *EligibilityLogUpdateOne) Where(ps ...predicate.EligibilityLog) *EligibilityLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EligibilityLogUpdateOne) Select(field string, fields ...string) *EligibilityLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EligibilityLog entity.
func (_u *EligibilityLogUpdateOne) Save(ctx context.Context) (*EligibilityLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EligibilityLogUpdateOne) SaveX(ctx context.Context) *EligibilityLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EligibilityLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EligibilityLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EligibilityLogUpdateOne) sqlSave(ctx context.Context) (_node *EligibilityLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(eligibilitylog.Table, eligibilitylog.Columns, sqlgraph.NewFieldSpec(eligibilitylog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EligibilityLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eligibilitylog.FieldID)
		for _, f := range fields {
			if !eligibilitylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eligibilitylog.FieldID {
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
	if _u.mutation.ActorCleared() {
		_spec.ClearField(eligibilitylog.FieldActor, field.TypeString)
	}
	_node = &EligibilityLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eligibilitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
