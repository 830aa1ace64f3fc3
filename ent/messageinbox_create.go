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
	"github.com/homekeep/butlerd/ent/messageinbox"
)

// MessageInboxCreate is the builder for creating a MessageInbox entity.
type MessageInboxCreate struct {
	config
	mutation *MessageInboxMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDedupeKey sets the "dedupe_key" field.
func (_c *MessageInboxCreate) SetDedupeKey(v string) *MessageInboxCreate {
	_c.mutation.SetDedupeKey(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *MessageInboxCreate) SetChannel(v string) *MessageInboxCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *MessageInboxCreate) SetProvider(v string) *MessageInboxCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (_c *MessageInboxCreate) SetEndpointIdentity(v string) *MessageInboxCreate {
	_c.mutation.SetEndpointIdentity(v)
	return _c
}

// SetSenderIdentity sets the "sender_identity" field.
func (_c *MessageInboxCreate) SetSenderIdentity(v string) *MessageInboxCreate {
	_c.mutation.SetSenderIdentity(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *MessageInboxCreate) SetContentType(v string) *MessageInboxCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *MessageInboxCreate) SetBody(v string) *MessageInboxCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNormalizedText sets the "normalized_text" field.
func (_c *MessageInboxCreate) SetNormalizedText(v string) *MessageInboxCreate {
	_c.mutation.SetNormalizedText(v)
	return _c
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_c *MessageInboxCreate) SetNillableNormalizedText(v *string) *MessageInboxCreate {
	if v != nil {
		_c.SetNormalizedText(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *MessageInboxCreate) SetIdempotencyKey(v string) *MessageInboxCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *MessageInboxCreate) SetNillableIdempotencyKey(v *string) *MessageInboxCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetThreadTarget sets the "thread_target" field.
func (_c *MessageInboxCreate) SetThreadTarget(v string) *MessageInboxCreate {
	_c.mutation.SetThreadTarget(v)
	return _c
}

// SetNillableThreadTarget sets the "thread_target" field if the given value is not nil.
func (_c *MessageInboxCreate) SetNillableThreadTarget(v *string) *MessageInboxCreate {
	if v != nil {
		_c.SetThreadTarget(*v)
	}
	return _c
}

// SetPolicyTier sets the "policy_tier" field.
func (_c *MessageInboxCreate) SetPolicyTier(v messageinbox.PolicyTier) *MessageInboxCreate {
	_c.mutation.SetPolicyTier(v)
	return _c
}

// SetNillablePolicyTier sets the "policy_tier" field if the given value is not nil.
func (_c *MessageInboxCreate) SetNillablePolicyTier(v *messageinbox.PolicyTier) *MessageInboxCreate {
	if v != nil {
		_c.SetPolicyTier(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *MessageInboxCreate) SetSentAt(v time.Time) *MessageInboxCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetObservedAt sets the "observed_at" field.
func (_c *MessageInboxCreate) SetObservedAt(v time.Time) *MessageInboxCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_c *MessageInboxCreate) SetNillableObservedAt(v *time.Time) *MessageInboxCreate {
	if v != nil {
		_c.SetObservedAt(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *MessageInboxCreate) SetClassification(v []map[string]interface{}) *MessageInboxCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetRoutingResults sets the "routing_results" field.
func (_c *MessageInboxCreate) SetRoutingResults(v map[string]interface{}) *MessageInboxCreate {
	_c.mutation.SetRoutingResults(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MessageInboxCreate) SetStatus(v messageinbox.Status) *MessageInboxCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MessageInboxCreate) SetNillableStatus(v *messageinbox.Status) *MessageInboxCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MessageInboxCreate) SetMetadata(v map[string]interface{}) *MessageInboxCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MessageInboxCreate) SetID(v string) *MessageInboxCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MessageInboxMutation object of the builder.
func (_c *MessageInboxCreate) Mutation() *MessageInboxMutation {
	return _c.mutation
}

// Save creates the MessageInbox in the database.
func (_c *MessageInboxCreate) Save(ctx context.Context) (*MessageInbox, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageInboxCreate) SaveX(ctx context.Context) *MessageInbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageInboxCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageInboxCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageInboxCreate) defaults() {
	if _, ok := _c.mutation.PolicyTier(); !ok {
		v := messageinbox.DefaultPolicyTier
		_c.mutation.SetPolicyTier(v)
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		v := messageinbox.DefaultObservedAt()
		_c.mutation.SetObservedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := messageinbox.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageInboxCreate) check() error {
	if _, ok := _c.mutation.DedupeKey(); !ok {
		return &ValidationError{Name: "dedupe_key", err: errors.New(`ent: missing required field "MessageInbox.dedupe_key"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "MessageInbox.channel"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "MessageInbox.provider"`)}
	}
	if _, ok := _c.mutation.EndpointIdentity(); !ok {
		return &ValidationError{Name: "endpoint_identity", err: errors.New(`ent: missing required field "MessageInbox.endpoint_identity"`)}
	}
	if _, ok := _c.mutation.SenderIdentity(); !ok {
		return &ValidationError{Name: "sender_identity", err: errors.New(`ent: missing required field "MessageInbox.sender_identity"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "MessageInbox.content_type"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "MessageInbox.body"`)}
	}
	if _, ok := _c.mutation.PolicyTier(); !ok {
		return &ValidationError{Name: "policy_tier", err: errors.New(`ent: missing required field "MessageInbox.policy_tier"`)}
	}
	if v, ok := _c.mutation.PolicyTier(); ok {
		if err := messageinbox.PolicyTierValidator(v); err != nil {
			return &ValidationError{Name: "policy_tier", err: fmt.Errorf(`ent: validator failed for field "MessageInbox.policy_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "MessageInbox.sent_at"`)}
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "MessageInbox.observed_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MessageInbox.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := messageinbox.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MessageInbox.status": %w`, err)}
		}
	}
	return nil
}

func (_c *MessageInboxCreate) sqlSave(ctx context.Context) (*MessageInbox, error) {
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
			return nil, fmt.Errorf("unexpected MessageInbox.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageInboxCreate) createSpec() (*MessageInbox, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageInbox{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messageinbox.Table, sqlgraph.NewFieldSpec(messageinbox.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DedupeKey(); ok {
		_spec.SetField(messageinbox.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(messageinbox.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(messageinbox.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.EndpointIdentity(); ok {
		_spec.SetField(messageinbox.FieldEndpointIdentity, field.TypeString, value)
		_node.EndpointIdentity = value
	}
	if value, ok := _c.mutation.SenderIdentity(); ok {
		_spec.SetField(messageinbox.FieldSenderIdentity, field.TypeString, value)
		_node.SenderIdentity = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(messageinbox.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(messageinbox.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.NormalizedText(); ok {
		_spec.SetField(messageinbox.FieldNormalizedText, field.TypeString, value)
		_node.NormalizedText = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(messageinbox.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.ThreadTarget(); ok {
		_spec.SetField(messageinbox.FieldThreadTarget, field.TypeString, value)
		_node.ThreadTarget = &value
	}
	if value, ok := _c.mutation.PolicyTier(); ok {
		_spec.SetField(messageinbox.FieldPolicyTier, field.TypeEnum, value)
		_node.PolicyTier = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(messageinbox.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(messageinbox.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(messageinbox.FieldClassification, field.TypeJSON, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.RoutingResults(); ok {
		_spec.SetField(messageinbox.FieldRoutingResults, field.TypeJSON, value)
		_node.RoutingResults = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(messageinbox.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(messageinbox.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageInbox.Create().
//		SetDedupeKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageInboxUpsert) {
//			SetDedupeKey(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageInboxCreate) OnConflict(opts ...sql.ConflictOption) *MessageInboxUpsertOne {
	_c.conflict = opts
	return &MessageInboxUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageInbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageInboxCreate) OnConflictColumns(columns ...string) *MessageInboxUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageInboxUpsertOne{
		create: _c,
	}
}

type (
	// MessageInboxUpsertOne is the builder for "upsert"-ing
	//  one MessageInbox node.
	MessageInboxUpsertOne struct {
		create *MessageInboxCreate
	}

	// MessageInboxUpsert is the "OnConflict" setter.
	MessageInboxUpsert struct {
		*sql.UpdateSet
	}
)

// SetChannel sets the "channel" field.
func (u *MessageInboxUpsert) SetChannel(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateChannel() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldChannel)
	return u
}

// SetProvider sets the "provider" field.
func (u *MessageInboxUpsert) SetProvider(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateProvider() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldProvider)
	return u
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (u *MessageInboxUpsert) SetEndpointIdentity(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldEndpointIdentity, v)
	return u
}

// UpdateEndpointIdentity sets the "endpoint_identity" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateEndpointIdentity() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldEndpointIdentity)
	return u
}

// SetSenderIdentity sets the "sender_identity" field.
func (u *MessageInboxUpsert) SetSenderIdentity(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldSenderIdentity, v)
	return u
}

// UpdateSenderIdentity sets the "sender_identity" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateSenderIdentity() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldSenderIdentity)
	return u
}

// SetContentType sets the "content_type" field.
func (u *MessageInboxUpsert) SetContentType(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateContentType() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldContentType)
	return u
}

// SetBody sets the "body" field.
func (u *MessageInboxUpsert) SetBody(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateBody() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldBody)
	return u
}

// SetNormalizedText sets the "normalized_text" field.
func (u *MessageInboxUpsert) SetNormalizedText(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldNormalizedText, v)
	return u
}

// UpdateNormalizedText sets the "normalized_text" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateNormalizedText() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldNormalizedText)
	return u
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (u *MessageInboxUpsert) ClearNormalizedText() *MessageInboxUpsert {
	u.SetNull(messageinbox.FieldNormalizedText)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MessageInboxUpsert) SetIdempotencyKey(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateIdempotencyKey() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldIdempotencyKey)
	return u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MessageInboxUpsert) ClearIdempotencyKey() *MessageInboxUpsert {
	u.SetNull(messageinbox.FieldIdempotencyKey)
	return u
}

// SetThreadTarget sets the "thread_target" field.
func (u *MessageInboxUpsert) SetThreadTarget(v string) *MessageInboxUpsert {
	u.Set(messageinbox.FieldThreadTarget, v)
	return u
}

// UpdateThreadTarget sets the "thread_target" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateThreadTarget() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldThreadTarget)
	return u
}

// ClearThreadTarget clears the value of the "thread_target" field.
func (u *MessageInboxUpsert) ClearThreadTarget() *MessageInboxUpsert {
	u.SetNull(messageinbox.FieldThreadTarget)
	return u
}

// SetPolicyTier sets the "policy_tier" field.
func (u *MessageInboxUpsert) SetPolicyTier(v messageinbox.PolicyTier) *MessageInboxUpsert {
	u.Set(messageinbox.FieldPolicyTier, v)
	return u
}

// UpdatePolicyTier sets the "policy_tier" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdatePolicyTier() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldPolicyTier)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *MessageInboxUpsert) SetSentAt(v time.Time) *MessageInboxUpsert {
	u.Set(messageinbox.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateSentAt() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldSentAt)
	return u
}

// SetClassification sets the "classification" field.
func (u *MessageInboxUpsert) SetClassification(v []map[string]interface{}) *MessageInboxUpsert {
	u.Set(messageinbox.FieldClassification, v)
	return u
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateClassification() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldClassification)
	return u
}

// ClearClassification clears the value of the "classification" field.
func (u *MessageInboxUpsert) ClearClassification() *MessageInboxUpsert {
	u.SetNull(messageinbox.FieldClassification)
	return u
}

// SetRoutingResults sets the "routing_results" field.
func (u *MessageInboxUpsert) SetRoutingResults(v map[string]interface{}) *MessageInboxUpsert {
	u.Set(messageinbox.FieldRoutingResults, v)
	return u
}

// UpdateRoutingResults sets the "routing_results" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateRoutingResults() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldRoutingResults)
	return u
}

// ClearRoutingResults clears the value of the "routing_results" field.
func (u *MessageInboxUpsert) ClearRoutingResults() *MessageInboxUpsert {
	u.SetNull(messageinbox.FieldRoutingResults)
	return u
}

// SetStatus sets the "status" field.
func (u *MessageInboxUpsert) SetStatus(v messageinbox.Status) *MessageInboxUpsert {
	u.Set(messageinbox.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateStatus() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldStatus)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *MessageInboxUpsert) SetMetadata(v map[string]interface{}) *MessageInboxUpsert {
	u.Set(messageinbox.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MessageInboxUpsert) UpdateMetadata() *MessageInboxUpsert {
	u.SetExcluded(messageinbox.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MessageInboxUpsert) ClearMetadata() *MessageInboxUpsert {
	u.SetNull(messageinbox.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MessageInbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messageinbox.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageInboxUpsertOne) UpdateNewValues() *MessageInboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(messageinbox.FieldID)
		}
		if _, exists := u.create.mutation.DedupeKey(); exists {
			s.SetIgnore(messageinbox.FieldDedupeKey)
		}
		if _, exists := u.create.mutation.ObservedAt(); exists {
			s.SetIgnore(messageinbox.FieldObservedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageInbox.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageInboxUpsertOne) Ignore() *MessageInboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageInboxUpsertOne) DoNothing() *MessageInboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageInboxCreate.OnConflict
// documentation for more info.
func (u *MessageInboxUpsertOne) Update(set func(*MessageInboxUpsert)) *MessageInboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageInboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *MessageInboxUpsertOne) SetChannel(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateChannel() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateChannel()
	})
}

// SetProvider sets the "provider" field.
func (u *MessageInboxUpsertOne) SetProvider(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateProvider() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateProvider()
	})
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (u *MessageInboxUpsertOne) SetEndpointIdentity(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetEndpointIdentity(v)
	})
}

// UpdateEndpointIdentity sets the "endpoint_identity" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateEndpointIdentity() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateEndpointIdentity()
	})
}

// SetSenderIdentity sets the "sender_identity" field.
func (u *MessageInboxUpsertOne) SetSenderIdentity(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetSenderIdentity(v)
	})
}

// UpdateSenderIdentity sets the "sender_identity" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateSenderIdentity() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateSenderIdentity()
	})
}

// SetContentType sets the "content_type" field.
func (u *MessageInboxUpsertOne) SetContentType(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateContentType() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateContentType()
	})
}

// SetBody sets the "body" field.
func (u *MessageInboxUpsertOne) SetBody(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateBody() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateBody()
	})
}

// SetNormalizedText sets the "normalized_text" field.
func (u *MessageInboxUpsertOne) SetNormalizedText(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetNormalizedText(v)
	})
}

// UpdateNormalizedText sets the "normalized_text" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateNormalizedText() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateNormalizedText()
	})
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (u *MessageInboxUpsertOne) ClearNormalizedText() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearNormalizedText()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MessageInboxUpsertOne) SetIdempotencyKey(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateIdempotencyKey() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MessageInboxUpsertOne) ClearIdempotencyKey() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearIdempotencyKey()
	})
}

// SetThreadTarget sets the "thread_target" field.
func (u *MessageInboxUpsertOne) SetThreadTarget(v string) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetThreadTarget(v)
	})
}

// UpdateThreadTarget sets the "thread_target" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateThreadTarget() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateThreadTarget()
	})
}

// ClearThreadTarget clears the value of the "thread_target" field.
func (u *MessageInboxUpsertOne) ClearThreadTarget() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearThreadTarget()
	})
}

// SetPolicyTier sets the "policy_tier" field.
func (u *MessageInboxUpsertOne) SetPolicyTier(v messageinbox.PolicyTier) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetPolicyTier(v)
	})
}

// UpdatePolicyTier sets the "policy_tier" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdatePolicyTier() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdatePolicyTier()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *MessageInboxUpsertOne) SetSentAt(v time.Time) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateSentAt() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateSentAt()
	})
}

// SetClassification sets the "classification" field.
func (u *MessageInboxUpsertOne) SetClassification(v []map[string]interface{}) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateClassification() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateClassification()
	})
}

// ClearClassification clears the value of the "classification" field.
func (u *MessageInboxUpsertOne) ClearClassification() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearClassification()
	})
}

// SetRoutingResults sets the "routing_results" field.
func (u *MessageInboxUpsertOne) SetRoutingResults(v map[string]interface{}) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetRoutingResults(v)
	})
}

// UpdateRoutingResults sets the "routing_results" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateRoutingResults() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateRoutingResults()
	})
}

// ClearRoutingResults clears the value of the "routing_results" field.
func (u *MessageInboxUpsertOne) ClearRoutingResults() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearRoutingResults()
	})
}

// SetStatus sets the "status" field.
func (u *MessageInboxUpsertOne) SetStatus(v messageinbox.Status) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateStatus() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateStatus()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MessageInboxUpsertOne) SetMetadata(v map[string]interface{}) *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MessageInboxUpsertOne) UpdateMetadata() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MessageInboxUpsertOne) ClearMetadata() *MessageInboxUpsertOne {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *MessageInboxUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageInboxCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageInboxUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageInboxUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageInboxUpsertOne.ID is not supported by MySQL driver. Use MessageInboxUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageInboxUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageInboxCreateBulk is the builder for creating many MessageInbox entities in bulk.
type MessageInboxCreateBulk struct {
	config
	err      error
	builders []*MessageInboxCreate
	conflict []sql.ConflictOption
}

// Save creates the MessageInbox entities in the database.
func (_c *MessageInboxCreateBulk) Save(ctx context.Context) ([]*MessageInbox, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageInbox, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageInboxMutation)
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
func (_c *MessageInboxCreateBulk) SaveX(ctx context.Context) []*MessageInbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageInboxCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageInboxCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MessageInbox.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageInboxUpsert) {
//			SetDedupeKey(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageInboxCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageInboxUpsertBulk {
	_c.conflict = opts
	return &MessageInboxUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MessageInbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageInboxCreateBulk) OnConflictColumns(columns ...string) *MessageInboxUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageInboxUpsertBulk{
		create: _c,
	}
}

// MessageInboxUpsertBulk is the builder for "upsert"-ing
// a bulk of MessageInbox nodes.
type MessageInboxUpsertBulk struct {
	create *MessageInboxCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MessageInbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(messageinbox.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageInboxUpsertBulk) UpdateNewValues() *MessageInboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(messageinbox.FieldID)
			}
			if _, exists := b.mutation.DedupeKey(); exists {
				s.SetIgnore(messageinbox.FieldDedupeKey)
			}
			if _, exists := b.mutation.ObservedAt(); exists {
				s.SetIgnore(messageinbox.FieldObservedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MessageInbox.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageInboxUpsertBulk) Ignore() *MessageInboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageInboxUpsertBulk) DoNothing() *MessageInboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageInboxCreateBulk.OnConflict
// documentation for more info.
func (u *MessageInboxUpsertBulk) Update(set func(*MessageInboxUpsert)) *MessageInboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageInboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannel sets the "channel" field.
func (u *MessageInboxUpsertBulk) SetChannel(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateChannel() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateChannel()
	})
}

// SetProvider sets the "provider" field.
func (u *MessageInboxUpsertBulk) SetProvider(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateProvider() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateProvider()
	})
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (u *MessageInboxUpsertBulk) SetEndpointIdentity(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetEndpointIdentity(v)
	})
}

// UpdateEndpointIdentity sets the "endpoint_identity" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateEndpointIdentity() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateEndpointIdentity()
	})
}

// SetSenderIdentity sets the "sender_identity" field.
func (u *MessageInboxUpsertBulk) SetSenderIdentity(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetSenderIdentity(v)
	})
}

// UpdateSenderIdentity sets the "sender_identity" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateSenderIdentity() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateSenderIdentity()
	})
}

// SetContentType sets the "content_type" field.
func (u *MessageInboxUpsertBulk) SetContentType(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateContentType() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateContentType()
	})
}

// SetBody sets the "body" field.
func (u *MessageInboxUpsertBulk) SetBody(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateBody() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateBody()
	})
}

// SetNormalizedText sets the "normalized_text" field.
func (u *MessageInboxUpsertBulk) SetNormalizedText(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetNormalizedText(v)
	})
}

// UpdateNormalizedText sets the "normalized_text" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateNormalizedText() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateNormalizedText()
	})
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (u *MessageInboxUpsertBulk) ClearNormalizedText() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearNormalizedText()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MessageInboxUpsertBulk) SetIdempotencyKey(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateIdempotencyKey() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MessageInboxUpsertBulk) ClearIdempotencyKey() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearIdempotencyKey()
	})
}

// SetThreadTarget sets the "thread_target" field.
func (u *MessageInboxUpsertBulk) SetThreadTarget(v string) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetThreadTarget(v)
	})
}

// UpdateThreadTarget sets the "thread_target" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateThreadTarget() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateThreadTarget()
	})
}

// ClearThreadTarget clears the value of the "thread_target" field.
func (u *MessageInboxUpsertBulk) ClearThreadTarget() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearThreadTarget()
	})
}

// SetPolicyTier sets the "policy_tier" field.
func (u *MessageInboxUpsertBulk) SetPolicyTier(v messageinbox.PolicyTier) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetPolicyTier(v)
	})
}

// UpdatePolicyTier sets the "policy_tier" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdatePolicyTier() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdatePolicyTier()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *MessageInboxUpsertBulk) SetSentAt(v time.Time) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateSentAt() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateSentAt()
	})
}

// SetClassification sets the "classification" field.
func (u *MessageInboxUpsertBulk) SetClassification(v []map[string]interface{}) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateClassification() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateClassification()
	})
}

// ClearClassification clears the value of the "classification" field.
func (u *MessageInboxUpsertBulk) ClearClassification() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearClassification()
	})
}

// SetRoutingResults sets the "routing_results" field.
func (u *MessageInboxUpsertBulk) SetRoutingResults(v map[string]interface{}) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetRoutingResults(v)
	})
}

// UpdateRoutingResults sets the "routing_results" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateRoutingResults() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateRoutingResults()
	})
}

// ClearRoutingResults clears the value of the "routing_results" field.
func (u *MessageInboxUpsertBulk) ClearRoutingResults() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearRoutingResults()
	})
}

// SetStatus sets the "status" field.
func (u *MessageInboxUpsertBulk) SetStatus(v messageinbox.Status) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateStatus() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateStatus()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MessageInboxUpsertBulk) SetMetadata(v map[string]interface{}) *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MessageInboxUpsertBulk) UpdateMetadata() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MessageInboxUpsertBulk) ClearMetadata() *MessageInboxUpsertBulk {
	return u.Update(func(s *MessageInboxUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *MessageInboxUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageInboxCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageInboxCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageInboxUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
