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
	"github.com/homekeep/butlerd/ent/messageinbox"
	"github.com/homekeep/butlerd/ent/predicate"
)

// MessageInboxUpdate is the builder for updating MessageInbox entities.
type MessageInboxUpdate struct {
	config
	hooks    []Hook
	mutation *MessageInboxMutation
}

// Where appends a list predicates to the MessageInboxUpdate builder.
func (_u *MessageInboxUpdate) Where(ps ...predicate.MessageInbox) *MessageInboxUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *MessageInboxUpdate) SetChannel(v string) *MessageInboxUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableChannel(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MessageInboxUpdate) SetProvider(v string) *MessageInboxUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableProvider(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (_u *MessageInboxUpdate) SetEndpointIdentity(v string) *MessageInboxUpdate {
	_u.mutation.SetEndpointIdentity(v)
	return _u
}

// SetNillableEndpointIdentity sets the "endpoint_identity" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableEndpointIdentity(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetEndpointIdentity(*v)
	}
	return _u
}

// SetSenderIdentity sets the "sender_identity" field.
func (_u *MessageInboxUpdate) SetSenderIdentity(v string) *MessageInboxUpdate {
	_u.mutation.SetSenderIdentity(v)
	return _u
}

// SetNillableSenderIdentity sets the "sender_identity" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableSenderIdentity(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetSenderIdentity(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *MessageInboxUpdate) SetContentType(v string) *MessageInboxUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableContentType(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageInboxUpdate) SetBody(v string) *MessageInboxUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableBody(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *MessageInboxUpdate) SetNormalizedText(v string) *MessageInboxUpdate {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableNormalizedText(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (_u *MessageInboxUpdate) ClearNormalizedText() *MessageInboxUpdate {
	_u.mutation.ClearNormalizedText()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *MessageInboxUpdate) SetIdempotencyKey(v string) *MessageInboxUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableIdempotencyKey(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *MessageInboxUpdate) ClearIdempotencyKey() *MessageInboxUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetThreadTarget sets the "thread_target" field.
func (_u *MessageInboxUpdate) SetThreadTarget(v string) *MessageInboxUpdate {
	_u.mutation.SetThreadTarget(v)
	return _u
}

// SetNillableThreadTarget sets the "thread_target" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableThreadTarget(v *string) *MessageInboxUpdate {
	if v != nil {
		_u.SetThreadTarget(*v)
	}
	return _u
}

// ClearThreadTarget clears the value of the "thread_target" field.
func (_u *MessageInboxUpdate) ClearThreadTarget() *MessageInboxUpdate {
	_u.mutation.ClearThreadTarget()
	return _u
}

// SetPolicyTier sets the "policy_tier" field.
func (_u *MessageInboxUpdate) SetPolicyTier(v messageinbox.PolicyTier) *MessageInboxUpdate {
	_u.mutation.SetPolicyTier(v)
	return _u
}

// SetNillablePolicyTier sets the "policy_tier" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillablePolicyTier(v *messageinbox.PolicyTier) *MessageInboxUpdate {
	if v != nil {
		_u.SetPolicyTier(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *MessageInboxUpdate) SetSentAt(v time.Time) *MessageInboxUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableSentAt(v *time.Time) *MessageInboxUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *MessageInboxUpdate) SetClassification(v []map[string]interface{}) *MessageInboxUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// AppendClassification appends value to the "classification" field.
func (_u *MessageInboxUpdate) AppendClassification(v []map[string]interface{}) *MessageInboxUpdate {
	_u.mutation.AppendClassification(v)
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *MessageInboxUpdate) ClearClassification() *MessageInboxUpdate {
	_u.mutation.ClearClassification()
	return _u
}

// SetRoutingResults sets the "routing_results" field.
func (_u *MessageInboxUpdate) SetRoutingResults(v map[string]interface{}) *MessageInboxUpdate {
	_u.mutation.SetRoutingResults(v)
	return _u
}

// ClearRoutingResults clears the value of the "routing_results" field.
func (_u *MessageInboxUpdate) ClearRoutingResults() *MessageInboxUpdate {
	_u.mutation.ClearRoutingResults()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageInboxUpdate) SetStatus(v messageinbox.Status) *MessageInboxUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageInboxUpdate) SetNillableStatus(v *messageinbox.Status) *MessageInboxUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MessageInboxUpdate) SetMetadata(v map[string]interface{}) *MessageInboxUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MessageInboxUpdate) ClearMetadata() *MessageInboxUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the MessageInboxMutation object of the builder.
func (_u *MessageInboxUpdate) Mutation() *MessageInboxMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageInboxUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageInboxUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageInboxUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageInboxUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageInboxUpdate) check() error {
	if v, ok := _u.mutation.PolicyTier(); ok {
		if err := messageinbox.PolicyTierValidator(v); err != nil {
			return &ValidationError{Name: "policy_tier", err: fmt.Errorf(`ent: validator failed for field "MessageInbox.policy_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := messageinbox.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageInbox.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageInboxUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageinbox.Table, messageinbox.Columns, sqlgraph.NewFieldSpec(messageinbox.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(messageinbox.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(messageinbox.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointIdentity(); ok {
		_spec.SetField(messageinbox.FieldEndpointIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderIdentity(); ok {
		_spec.SetField(messageinbox.FieldSenderIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(messageinbox.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messageinbox.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(messageinbox.FieldNormalizedText, field.TypeString, value)
	}
	if _u.mutation.NormalizedTextCleared() {
		_spec.ClearField(messageinbox.FieldNormalizedText, field.TypeString)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(messageinbox.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(messageinbox.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.ThreadTarget(); ok {
		_spec.SetField(messageinbox.FieldThreadTarget, field.TypeString, value)
	}
	if _u.mutation.ThreadTargetCleared() {
		_spec.ClearField(messageinbox.FieldThreadTarget, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyTier(); ok {
		_spec.SetField(messageinbox.FieldPolicyTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(messageinbox.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(messageinbox.FieldClassification, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClassification(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, messageinbox.FieldClassification, value)
		})
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(messageinbox.FieldClassification, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoutingResults(); ok {
		_spec.SetField(messageinbox.FieldRoutingResults, field.TypeJSON, value)
	}
	if _u.mutation.RoutingResultsCleared() {
		_spec.ClearField(messageinbox.FieldRoutingResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(messageinbox.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(messageinbox.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(messageinbox.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageinbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageInboxUpdateOne is the builder for updating a single MessageInbox entity.
type MessageInboxUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageInboxMutation
}

// SetChannel sets the "channel" field.
func (_u *MessageInboxUpdateOne) SetChannel(v string) *MessageInboxUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableChannel(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MessageInboxUpdateOne) SetProvider(v string) *MessageInboxUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableProvider(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (_u *MessageInboxUpdateOne) SetEndpointIdentity(v string) *MessageInboxUpdateOne {
	_u.mutation.SetEndpointIdentity(v)
	return _u
}

// SetNillableEndpointIdentity sets the "endpoint_identity" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableEndpointIdentity(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetEndpointIdentity(*v)
	}
	return _u
}

// SetSenderIdentity sets the "sender_identity" field.
func (_u *MessageInboxUpdateOne) SetSenderIdentity(v string) *MessageInboxUpdateOne {
	_u.mutation.SetSenderIdentity(v)
	return _u
}

// SetNillableSenderIdentity sets the "sender_identity" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableSenderIdentity(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetSenderIdentity(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *MessageInboxUpdateOne) SetContentType(v string) *MessageInboxUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableContentType(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageInboxUpdateOne) SetBody(v string) *MessageInboxUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableBody(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *MessageInboxUpdateOne) SetNormalizedText(v string) *MessageInboxUpdateOne {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableNormalizedText(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (_u *MessageInboxUpdateOne) ClearNormalizedText() *MessageInboxUpdateOne {
	_u.mutation.ClearNormalizedText()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *MessageInboxUpdateOne) SetIdempotencyKey(v string) *MessageInboxUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableIdempotencyKey(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *MessageInboxUpdateOne) ClearIdempotencyKey() *MessageInboxUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetThreadTarget sets the "thread_target" field.
func (_u *MessageInboxUpdateOne) SetThreadTarget(v string) *MessageInboxUpdateOne {
	_u.mutation.SetThreadTarget(v)
	return _u
}

// SetNillableThreadTarget sets the "thread_target" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableThreadTarget(v *string) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetThreadTarget(*v)
	}
	return _u
}

// ClearThreadTarget clears the value of the "thread_target" field.
func (_u *MessageInboxUpdateOne) ClearThreadTarget() *MessageInboxUpdateOne {
	_u.mutation.ClearThreadTarget()
	return _u
}

// SetPolicyTier sets the "policy_tier" field.
func (_u *MessageInboxUpdateOne) SetPolicyTier(v messageinbox.PolicyTier) *MessageInboxUpdateOne {
	_u.mutation.SetPolicyTier(v)
	return _u
}

// SetNillablePolicyTier sets the "policy_tier" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillablePolicyTier(v *messageinbox.PolicyTier) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetPolicyTier(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *MessageInboxUpdateOne) SetSentAt(v time.Time) *MessageInboxUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableSentAt(v *time.Time) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *MessageInboxUpdateOne) SetClassification(v []map[string]interface{}) *MessageInboxUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// AppendClassification appends value to the "classification" field.
func (_u *MessageInboxUpdateOne) AppendClassification(v []map[string]interface{}) *MessageInboxUpdateOne {
	_u.mutation.AppendClassification(v)
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *MessageInboxUpdateOne) ClearClassification() *MessageInboxUpdateOne {
	_u.mutation.ClearClassification()
	return _u
}

// SetRoutingResults sets the "routing_results" field.
func (_u *MessageInboxUpdateOne) SetRoutingResults(v map[string]interface{}) *MessageInboxUpdateOne {
	_u.mutation.SetRoutingResults(v)
	return _u
}

// ClearRoutingResults clears the value of the "routing_results" field.
func (_u *MessageInboxUpdateOne) ClearRoutingResults() *MessageInboxUpdateOne {
	_u.mutation.ClearRoutingResults()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MessageInboxUpdateOne) SetStatus(v messageinbox.Status) *MessageInboxUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MessageInboxUpdateOne) SetNillableStatus(v *messageinbox.Status) *MessageInboxUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MessageInboxUpdateOne) SetMetadata(v map[string]interface{}) *MessageInboxUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MessageInboxUpdateOne) ClearMetadata() *MessageInboxUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the MessageInboxMutation object of the builder.
func (_u *MessageInboxUpdateOne) Mutation() *MessageInboxMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageInboxUpdate builder.
func (_u *MessageInboxUpdateOne) Where(ps ...predicate.MessageInbox) *MessageInboxUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageInboxUpdateOne) Select(field string, fields ...string) *MessageInboxUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageInbox entity.
func (_u *MessageInboxUpdateOne) Save(ctx context.Context) (*MessageInbox, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageInboxUpdateOne) SaveX(ctx context.Context) *MessageInbox {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageInboxUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageInboxUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageInboxUpdateOne) check() error {
	if v, ok := _u.mutation.PolicyTier(); ok {
		if err := messageinbox.PolicyTierValidator(v); err != nil {
			return &ValidationError{Name: "policy_tier", err: fmt.Errorf(`ent: validator failed for field "MessageInbox.policy_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := messageinbox.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageInbox.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageInboxUpdateOne) sqlSave(ctx context.Context) (_node *MessageInbox, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageinbox.Table, messageinbox.Columns, sqlgraph.NewFieldSpec(messageinbox.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageInbox.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messageinbox.FieldID)
		for _, f := range fields {
			if !messageinbox.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messageinbox.FieldID {
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
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(messageinbox.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(messageinbox.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointIdentity(); ok {
		_spec.SetField(messageinbox.FieldEndpointIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderIdentity(); ok {
		_spec.SetField(messageinbox.FieldSenderIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(messageinbox.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messageinbox.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(messageinbox.FieldNormalizedText, field.TypeString, value)
	}
	if _u.mutation.NormalizedTextCleared() {
		_spec.ClearField(messageinbox.FieldNormalizedText, field.TypeString)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(messageinbox.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(messageinbox.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.ThreadTarget(); ok {
		_spec.SetField(messageinbox.FieldThreadTarget, field.TypeString, value)
	}
	if _u.mutation.ThreadTargetCleared() {
		_spec.ClearField(messageinbox.FieldThreadTarget, field.TypeString)
	}
	if value, ok := _u.mutation.PolicyTier(); ok {
		_spec.SetField(messageinbox.FieldPolicyTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(messageinbox.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(messageinbox.FieldClassification, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClassification(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, messageinbox.FieldClassification, value)
		})
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(messageinbox.FieldClassification, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoutingResults(); ok {
		_spec.SetField(messageinbox.FieldRoutingResults, field.TypeJSON, value)
	}
	if _u.mutation.RoutingResultsCleared() {
		_spec.ClearField(messageinbox.FieldRoutingResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(messageinbox.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(messageinbox.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(messageinbox.FieldMetadata, field.TypeJSON)
	}
	_node = &MessageInbox{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageinbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
