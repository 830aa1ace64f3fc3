// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/approvalevent"
	"github.com/homekeep/butlerd/ent/approvalrule"
	"github.com/homekeep/butlerd/ent/butlersecret"
	"github.com/homekeep/butlerd/ent/connectorendpoint"
	"github.com/homekeep/butlerd/ent/connectorheartbeat"
	"github.com/homekeep/butlerd/ent/eligibilitylog"
	"github.com/homekeep/butlerd/ent/fanoutexecution"
	"github.com/homekeep/butlerd/ent/ingressitem"
	"github.com/homekeep/butlerd/ent/messageinbox"
	"github.com/homekeep/butlerd/ent/pendingaction"
	"github.com/homekeep/butlerd/ent/predicate"
	"github.com/homekeep/butlerd/ent/registryentry"
	"github.com/homekeep/butlerd/ent/scheduledtask"
	"github.com/homekeep/butlerd/ent/session"
	"github.com/homekeep/butlerd/ent/stateentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalEvent      = "ApprovalEvent"
	TypeApprovalRule       = "ApprovalRule"
	TypeButlerSecret       = "ButlerSecret"
	TypeConnectorEndpoint  = "ConnectorEndpoint"
	TypeConnectorHeartbeat = "ConnectorHeartbeat"
	TypeEligibilityLog     = "EligibilityLog"
	TypeFanoutExecution    = "FanoutExecution"
	TypeIngressItem        = "IngressItem"
	TypeMessageInbox       = "MessageInbox"
	TypePendingAction      = "PendingAction"
	TypeRegistryEntry      = "RegistryEntry"
	TypeScheduledTask      = "ScheduledTask"
	TypeSession            = "Session"
	TypeStateEntry         = "StateEntry"
)

// ApprovalEventMutation represents an operation that mutates the ApprovalEvent nodes in the graph.
type ApprovalEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	action_id     *string
	event_type    *string
	detail        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ApprovalEvent, error)
	predicates    []predicate.ApprovalEvent
}

var _ ent.Mutation = (*ApprovalEventMutation)(nil)

// approvaleventOption allows management of the mutation configuration using functional options.
type approvaleventOption func(*ApprovalEventMutation)

// newApprovalEventMutation creates new mutation for the ApprovalEvent entity.
func newApprovalEventMutation(c config, op Op, opts ...approvaleventOption) *ApprovalEventMutation {
	m := &ApprovalEventMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalEventID sets the ID field of the mutation.
func withApprovalEventID(id string) approvaleventOption {
	return func(m *ApprovalEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalEvent
		)
		m.oldValue = func(ctx context.Context) (*ApprovalEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalEvent sets the old ApprovalEvent of the mutation.
func withApprovalEvent(node *ApprovalEvent) approvaleventOption {
	return func(m *ApprovalEventMutation) {
		m.oldValue = func(context.Context) (*ApprovalEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalEvent entities.
func (m *ApprovalEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActionID sets the "action_id" field.
func (m *ApprovalEventMutation) SetActionID(s string) {
	m.action_id = &s
}

// ActionID returns the value of the "action_id" field in the mutation.
func (m *ApprovalEventMutation) ActionID() (r string, exists bool) {
	v := m.action_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActionID returns the old "action_id" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldActionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionID: %w", err)
	}
	return oldValue.ActionID, nil
}

// ClearActionID clears the value of the "action_id" field.
func (m *ApprovalEventMutation) ClearActionID() {
	m.action_id = nil
	m.clearedFields[approvalevent.FieldActionID] = struct{}{}
}

// ActionIDCleared returns if the "action_id" field was cleared in this mutation.
func (m *ApprovalEventMutation) ActionIDCleared() bool {
	_, ok := m.clearedFields[approvalevent.FieldActionID]
	return ok
}

// ResetActionID resets all changes to the "action_id" field.
func (m *ApprovalEventMutation) ResetActionID() {
	m.action_id = nil
	delete(m.clearedFields, approvalevent.FieldActionID)
}

// SetEventType sets the "event_type" field.
func (m *ApprovalEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ApprovalEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ApprovalEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetDetail sets the "detail" field.
func (m *ApprovalEventMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *ApprovalEventMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *ApprovalEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[approvalevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *ApprovalEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[approvalevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *ApprovalEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, approvalevent.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalEvent entity.
// If the ApprovalEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ApprovalEventMutation builder.
func (m *ApprovalEventMutation) Where(ps ...predicate.ApprovalEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalEvent).
func (m *ApprovalEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.action_id != nil {
		fields = append(fields, approvalevent.FieldActionID)
	}
	if m.event_type != nil {
		fields = append(fields, approvalevent.FieldEventType)
	}
	if m.detail != nil {
		fields = append(fields, approvalevent.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, approvalevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalevent.FieldActionID:
		return m.ActionID()
	case approvalevent.FieldEventType:
		return m.EventType()
	case approvalevent.FieldDetail:
		return m.Detail()
	case approvalevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalevent.FieldActionID:
		return m.OldActionID(ctx)
	case approvalevent.FieldEventType:
		return m.OldEventType(ctx)
	case approvalevent.FieldDetail:
		return m.OldDetail(ctx)
	case approvalevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalevent.FieldActionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionID(v)
		return nil
	case approvalevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case approvalevent.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case approvalevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalevent.FieldActionID) {
		fields = append(fields, approvalevent.FieldActionID)
	}
	if m.FieldCleared(approvalevent.FieldDetail) {
		fields = append(fields, approvalevent.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalEventMutation) ClearField(name string) error {
	switch name {
	case approvalevent.FieldActionID:
		m.ClearActionID()
		return nil
	case approvalevent.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown ApprovalEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalEventMutation) ResetField(name string) error {
	switch name {
	case approvalevent.FieldActionID:
		m.ResetActionID()
		return nil
	case approvalevent.FieldEventType:
		m.ResetEventType()
		return nil
	case approvalevent.FieldDetail:
		m.ResetDetail()
		return nil
	case approvalevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalEvent edge %s", name)
}

// ApprovalRuleMutation represents an operation that mutates the ApprovalRule nodes in the graph.
type ApprovalRuleMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	butler_name           *string
	tool_name             *string
	arg_constraints       *[]map[string]interface{}
	appendarg_constraints []map[string]interface{}
	risk_tier             *approvalrule.RiskTier
	expires_at            *time.Time
	max_uses              *int
	addmax_uses           *int
	uses                  *int
	adduses               *int
	enabled               *bool
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ApprovalRule, error)
	predicates            []predicate.ApprovalRule
}

var _ ent.Mutation = (*ApprovalRuleMutation)(nil)

// approvalruleOption allows management of the mutation configuration using functional options.
type approvalruleOption func(*ApprovalRuleMutation)

// newApprovalRuleMutation creates new mutation for the ApprovalRule entity.
func newApprovalRuleMutation(c config, op Op, opts ...approvalruleOption) *ApprovalRuleMutation {
	m := &ApprovalRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRuleID sets the ID field of the mutation.
func withApprovalRuleID(id string) approvalruleOption {
	return func(m *ApprovalRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRule
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRule sets the old ApprovalRule of the mutation.
func withApprovalRule(node *ApprovalRule) approvalruleOption {
	return func(m *ApprovalRuleMutation) {
		m.oldValue = func(context.Context) (*ApprovalRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRule entities.
func (m *ApprovalRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButlerName sets the "butler_name" field.
func (m *ApprovalRuleMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *ApprovalRuleMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *ApprovalRuleMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetToolName sets the "tool_name" field.
func (m *ApprovalRuleMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ApprovalRuleMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ApprovalRuleMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArgConstraints sets the "arg_constraints" field.
func (m *ApprovalRuleMutation) SetArgConstraints(value []map[string]interface{}) {
	m.arg_constraints = &value
	m.appendarg_constraints = nil
}

// ArgConstraints returns the value of the "arg_constraints" field in the mutation.
func (m *ApprovalRuleMutation) ArgConstraints() (r []map[string]interface{}, exists bool) {
	v := m.arg_constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldArgConstraints returns the old "arg_constraints" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldArgConstraints(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgConstraints: %w", err)
	}
	return oldValue.ArgConstraints, nil
}

// AppendArgConstraints adds value to the "arg_constraints" field.
func (m *ApprovalRuleMutation) AppendArgConstraints(value []map[string]interface{}) {
	m.appendarg_constraints = append(m.appendarg_constraints, value...)
}

// AppendedArgConstraints returns the list of values that were appended to the "arg_constraints" field in this mutation.
func (m *ApprovalRuleMutation) AppendedArgConstraints() ([]map[string]interface{}, bool) {
	if len(m.appendarg_constraints) == 0 {
		return nil, false
	}
	return m.appendarg_constraints, true
}

// ClearArgConstraints clears the value of the "arg_constraints" field.
func (m *ApprovalRuleMutation) ClearArgConstraints() {
	m.arg_constraints = nil
	m.appendarg_constraints = nil
	m.clearedFields[approvalrule.FieldArgConstraints] = struct{}{}
}

// ArgConstraintsCleared returns if the "arg_constraints" field was cleared in this mutation.
func (m *ApprovalRuleMutation) ArgConstraintsCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldArgConstraints]
	return ok
}

// ResetArgConstraints resets all changes to the "arg_constraints" field.
func (m *ApprovalRuleMutation) ResetArgConstraints() {
	m.arg_constraints = nil
	m.appendarg_constraints = nil
	delete(m.clearedFields, approvalrule.FieldArgConstraints)
}

// SetRiskTier sets the "risk_tier" field.
func (m *ApprovalRuleMutation) SetRiskTier(at approvalrule.RiskTier) {
	m.risk_tier = &at
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *ApprovalRuleMutation) RiskTier() (r approvalrule.RiskTier, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldRiskTier(ctx context.Context) (v approvalrule.RiskTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *ApprovalRuleMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalRuleMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalRuleMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ApprovalRuleMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[approvalrule.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ApprovalRuleMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalRuleMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, approvalrule.FieldExpiresAt)
}

// SetMaxUses sets the "max_uses" field.
func (m *ApprovalRuleMutation) SetMaxUses(i int) {
	m.max_uses = &i
	m.addmax_uses = nil
}

// MaxUses returns the value of the "max_uses" field in the mutation.
func (m *ApprovalRuleMutation) MaxUses() (r int, exists bool) {
	v := m.max_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxUses returns the old "max_uses" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldMaxUses(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxUses: %w", err)
	}
	return oldValue.MaxUses, nil
}

// AddMaxUses adds i to the "max_uses" field.
func (m *ApprovalRuleMutation) AddMaxUses(i int) {
	if m.addmax_uses != nil {
		*m.addmax_uses += i
	} else {
		m.addmax_uses = &i
	}
}

// AddedMaxUses returns the value that was added to the "max_uses" field in this mutation.
func (m *ApprovalRuleMutation) AddedMaxUses() (r int, exists bool) {
	v := m.addmax_uses
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxUses clears the value of the "max_uses" field.
func (m *ApprovalRuleMutation) ClearMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	m.clearedFields[approvalrule.FieldMaxUses] = struct{}{}
}

// MaxUsesCleared returns if the "max_uses" field was cleared in this mutation.
func (m *ApprovalRuleMutation) MaxUsesCleared() bool {
	_, ok := m.clearedFields[approvalrule.FieldMaxUses]
	return ok
}

// ResetMaxUses resets all changes to the "max_uses" field.
func (m *ApprovalRuleMutation) ResetMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
	delete(m.clearedFields, approvalrule.FieldMaxUses)
}

// SetUses sets the "uses" field.
func (m *ApprovalRuleMutation) SetUses(i int) {
	m.uses = &i
	m.adduses = nil
}

// Uses returns the value of the "uses" field in the mutation.
func (m *ApprovalRuleMutation) Uses() (r int, exists bool) {
	v := m.uses
	if v == nil {
		return
	}
	return *v, true
}

// OldUses returns the old "uses" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldUses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUses: %w", err)
	}
	return oldValue.Uses, nil
}

// AddUses adds i to the "uses" field.
func (m *ApprovalRuleMutation) AddUses(i int) {
	if m.adduses != nil {
		*m.adduses += i
	} else {
		m.adduses = &i
	}
}

// AddedUses returns the value that was added to the "uses" field in this mutation.
func (m *ApprovalRuleMutation) AddedUses() (r int, exists bool) {
	v := m.adduses
	if v == nil {
		return
	}
	return *v, true
}

// ResetUses resets all changes to the "uses" field.
func (m *ApprovalRuleMutation) ResetUses() {
	m.uses = nil
	m.adduses = nil
}

// SetEnabled sets the "enabled" field.
func (m *ApprovalRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ApprovalRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ApprovalRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalRule entity.
// If the ApprovalRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ApprovalRuleMutation builder.
func (m *ApprovalRuleMutation) Where(ps ...predicate.ApprovalRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRule).
func (m *ApprovalRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRuleMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.butler_name != nil {
		fields = append(fields, approvalrule.FieldButlerName)
	}
	if m.tool_name != nil {
		fields = append(fields, approvalrule.FieldToolName)
	}
	if m.arg_constraints != nil {
		fields = append(fields, approvalrule.FieldArgConstraints)
	}
	if m.risk_tier != nil {
		fields = append(fields, approvalrule.FieldRiskTier)
	}
	if m.expires_at != nil {
		fields = append(fields, approvalrule.FieldExpiresAt)
	}
	if m.max_uses != nil {
		fields = append(fields, approvalrule.FieldMaxUses)
	}
	if m.uses != nil {
		fields = append(fields, approvalrule.FieldUses)
	}
	if m.enabled != nil {
		fields = append(fields, approvalrule.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, approvalrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrule.FieldButlerName:
		return m.ButlerName()
	case approvalrule.FieldToolName:
		return m.ToolName()
	case approvalrule.FieldArgConstraints:
		return m.ArgConstraints()
	case approvalrule.FieldRiskTier:
		return m.RiskTier()
	case approvalrule.FieldExpiresAt:
		return m.ExpiresAt()
	case approvalrule.FieldMaxUses:
		return m.MaxUses()
	case approvalrule.FieldUses:
		return m.Uses()
	case approvalrule.FieldEnabled:
		return m.Enabled()
	case approvalrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrule.FieldButlerName:
		return m.OldButlerName(ctx)
	case approvalrule.FieldToolName:
		return m.OldToolName(ctx)
	case approvalrule.FieldArgConstraints:
		return m.OldArgConstraints(ctx)
	case approvalrule.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case approvalrule.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case approvalrule.FieldMaxUses:
		return m.OldMaxUses(ctx)
	case approvalrule.FieldUses:
		return m.OldUses(ctx)
	case approvalrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case approvalrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrule.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case approvalrule.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case approvalrule.FieldArgConstraints:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgConstraints(v)
		return nil
	case approvalrule.FieldRiskTier:
		v, ok := value.(approvalrule.RiskTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case approvalrule.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case approvalrule.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxUses(v)
		return nil
	case approvalrule.FieldUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUses(v)
		return nil
	case approvalrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case approvalrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRuleMutation) AddedFields() []string {
	var fields []string
	if m.addmax_uses != nil {
		fields = append(fields, approvalrule.FieldMaxUses)
	}
	if m.adduses != nil {
		fields = append(fields, approvalrule.FieldUses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case approvalrule.FieldMaxUses:
		return m.AddedMaxUses()
	case approvalrule.FieldUses:
		return m.AddedUses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case approvalrule.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxUses(v)
		return nil
	case approvalrule.FieldUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUses(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrule.FieldArgConstraints) {
		fields = append(fields, approvalrule.FieldArgConstraints)
	}
	if m.FieldCleared(approvalrule.FieldExpiresAt) {
		fields = append(fields, approvalrule.FieldExpiresAt)
	}
	if m.FieldCleared(approvalrule.FieldMaxUses) {
		fields = append(fields, approvalrule.FieldMaxUses)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRuleMutation) ClearField(name string) error {
	switch name {
	case approvalrule.FieldArgConstraints:
		m.ClearArgConstraints()
		return nil
	case approvalrule.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case approvalrule.FieldMaxUses:
		m.ClearMaxUses()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRuleMutation) ResetField(name string) error {
	switch name {
	case approvalrule.FieldButlerName:
		m.ResetButlerName()
		return nil
	case approvalrule.FieldToolName:
		m.ResetToolName()
		return nil
	case approvalrule.FieldArgConstraints:
		m.ResetArgConstraints()
		return nil
	case approvalrule.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case approvalrule.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case approvalrule.FieldMaxUses:
		m.ResetMaxUses()
		return nil
	case approvalrule.FieldUses:
		m.ResetUses()
		return nil
	case approvalrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case approvalrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRule edge %s", name)
}

// ButlerSecretMutation represents an operation that mutates the ButlerSecret nodes in the graph.
type ButlerSecretMutation struct {
	config
	op            Op
	typ           string
	id            *string
	butler_name   *string
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ButlerSecret, error)
	predicates    []predicate.ButlerSecret
}

var _ ent.Mutation = (*ButlerSecretMutation)(nil)

// butlersecretOption allows management of the mutation configuration using functional options.
type butlersecretOption func(*ButlerSecretMutation)

// newButlerSecretMutation creates new mutation for the ButlerSecret entity.
func newButlerSecretMutation(c config, op Op, opts ...butlersecretOption) *ButlerSecretMutation {
	m := &ButlerSecretMutation{
		config:        c,
		op:            op,
		typ:           TypeButlerSecret,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withButlerSecretID sets the ID field of the mutation.
func withButlerSecretID(id string) butlersecretOption {
	return func(m *ButlerSecretMutation) {
		var (
			err   error
			once  sync.Once
			value *ButlerSecret
		)
		m.oldValue = func(ctx context.Context) (*ButlerSecret, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ButlerSecret.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withButlerSecret sets the old ButlerSecret of the mutation.
func withButlerSecret(node *ButlerSecret) butlersecretOption {
	return func(m *ButlerSecretMutation) {
		m.oldValue = func(context.Context) (*ButlerSecret, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ButlerSecretMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ButlerSecretMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ButlerSecret entities.
func (m *ButlerSecretMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ButlerSecretMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ButlerSecretMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ButlerSecret.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButlerName sets the "butler_name" field.
func (m *ButlerSecretMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *ButlerSecretMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the ButlerSecret entity.
// If the ButlerSecret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ButlerSecretMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *ButlerSecretMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetKey sets the "key" field.
func (m *ButlerSecretMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ButlerSecretMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the ButlerSecret entity.
// If the ButlerSecret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ButlerSecretMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ButlerSecretMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *ButlerSecretMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *ButlerSecretMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ButlerSecret entity.
// If the ButlerSecret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ButlerSecretMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *ButlerSecretMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ButlerSecretMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ButlerSecretMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ButlerSecret entity.
// If the ButlerSecret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ButlerSecretMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ButlerSecretMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ButlerSecretMutation builder.
func (m *ButlerSecretMutation) Where(ps ...predicate.ButlerSecret) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ButlerSecretMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ButlerSecretMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ButlerSecret, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ButlerSecretMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ButlerSecretMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ButlerSecret).
func (m *ButlerSecretMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ButlerSecretMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.butler_name != nil {
		fields = append(fields, butlersecret.FieldButlerName)
	}
	if m.key != nil {
		fields = append(fields, butlersecret.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, butlersecret.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, butlersecret.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ButlerSecretMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case butlersecret.FieldButlerName:
		return m.ButlerName()
	case butlersecret.FieldKey:
		return m.Key()
	case butlersecret.FieldValue:
		return m.Value()
	case butlersecret.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ButlerSecretMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case butlersecret.FieldButlerName:
		return m.OldButlerName(ctx)
	case butlersecret.FieldKey:
		return m.OldKey(ctx)
	case butlersecret.FieldValue:
		return m.OldValue(ctx)
	case butlersecret.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ButlerSecret field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ButlerSecretMutation) SetField(name string, value ent.Value) error {
	switch name {
	case butlersecret.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case butlersecret.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case butlersecret.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case butlersecret.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ButlerSecret field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ButlerSecretMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ButlerSecretMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ButlerSecretMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ButlerSecret numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ButlerSecretMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ButlerSecretMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ButlerSecretMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ButlerSecret nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ButlerSecretMutation) ResetField(name string) error {
	switch name {
	case butlersecret.FieldButlerName:
		m.ResetButlerName()
		return nil
	case butlersecret.FieldKey:
		m.ResetKey()
		return nil
	case butlersecret.FieldValue:
		m.ResetValue()
		return nil
	case butlersecret.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ButlerSecret field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ButlerSecretMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ButlerSecretMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ButlerSecretMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ButlerSecretMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ButlerSecretMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ButlerSecretMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ButlerSecretMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ButlerSecret unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ButlerSecretMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ButlerSecret edge %s", name)
}

// ConnectorEndpointMutation represents an operation that mutates the ConnectorEndpoint nodes in the graph.
type ConnectorEndpointMutation struct {
	config
	op                Op
	typ               string
	id                *string
	connector_type    *string
	endpoint_identity *string
	instance_id       *string
	state             *connectorendpoint.State
	counters          *map[string]int64
	checkpoint        *map[string]interface{}
	first_seen_at     *time.Time
	last_seen_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ConnectorEndpoint, error)
	predicates        []predicate.ConnectorEndpoint
}

var _ ent.Mutation = (*ConnectorEndpointMutation)(nil)

// connectorendpointOption allows management of the mutation configuration using functional options.
type connectorendpointOption func(*ConnectorEndpointMutation)

// newConnectorEndpointMutation creates new mutation for the ConnectorEndpoint entity.
func newConnectorEndpointMutation(c config, op Op, opts ...connectorendpointOption) *ConnectorEndpointMutation {
	m := &ConnectorEndpointMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectorEndpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorEndpointID sets the ID field of the mutation.
func withConnectorEndpointID(id string) connectorendpointOption {
	return func(m *ConnectorEndpointMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectorEndpoint
		)
		m.oldValue = func(ctx context.Context) (*ConnectorEndpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectorEndpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectorEndpoint sets the old ConnectorEndpoint of the mutation.
func withConnectorEndpoint(node *ConnectorEndpoint) connectorendpointOption {
	return func(m *ConnectorEndpointMutation) {
		m.oldValue = func(context.Context) (*ConnectorEndpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorEndpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorEndpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConnectorEndpoint entities.
func (m *ConnectorEndpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorEndpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorEndpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectorEndpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorType sets the "connector_type" field.
func (m *ConnectorEndpointMutation) SetConnectorType(s string) {
	m.connector_type = &s
}

// ConnectorType returns the value of the "connector_type" field in the mutation.
func (m *ConnectorEndpointMutation) ConnectorType() (r string, exists bool) {
	v := m.connector_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorType returns the old "connector_type" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldConnectorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorType: %w", err)
	}
	return oldValue.ConnectorType, nil
}

// ResetConnectorType resets all changes to the "connector_type" field.
func (m *ConnectorEndpointMutation) ResetConnectorType() {
	m.connector_type = nil
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (m *ConnectorEndpointMutation) SetEndpointIdentity(s string) {
	m.endpoint_identity = &s
}

// EndpointIdentity returns the value of the "endpoint_identity" field in the mutation.
func (m *ConnectorEndpointMutation) EndpointIdentity() (r string, exists bool) {
	v := m.endpoint_identity
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointIdentity returns the old "endpoint_identity" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldEndpointIdentity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointIdentity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointIdentity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointIdentity: %w", err)
	}
	return oldValue.EndpointIdentity, nil
}

// ResetEndpointIdentity resets all changes to the "endpoint_identity" field.
func (m *ConnectorEndpointMutation) ResetEndpointIdentity() {
	m.endpoint_identity = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *ConnectorEndpointMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *ConnectorEndpointMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *ConnectorEndpointMutation) ClearInstanceID() {
	m.instance_id = nil
	m.clearedFields[connectorendpoint.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *ConnectorEndpointMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[connectorendpoint.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *ConnectorEndpointMutation) ResetInstanceID() {
	m.instance_id = nil
	delete(m.clearedFields, connectorendpoint.FieldInstanceID)
}

// SetState sets the "state" field.
func (m *ConnectorEndpointMutation) SetState(c connectorendpoint.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *ConnectorEndpointMutation) State() (r connectorendpoint.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldState(ctx context.Context) (v connectorendpoint.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ConnectorEndpointMutation) ResetState() {
	m.state = nil
}

// SetCounters sets the "counters" field.
func (m *ConnectorEndpointMutation) SetCounters(value map[string]int64) {
	m.counters = &value
}

// Counters returns the value of the "counters" field in the mutation.
func (m *ConnectorEndpointMutation) Counters() (r map[string]int64, exists bool) {
	v := m.counters
	if v == nil {
		return
	}
	return *v, true
}

// OldCounters returns the old "counters" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldCounters(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounters: %w", err)
	}
	return oldValue.Counters, nil
}

// ClearCounters clears the value of the "counters" field.
func (m *ConnectorEndpointMutation) ClearCounters() {
	m.counters = nil
	m.clearedFields[connectorendpoint.FieldCounters] = struct{}{}
}

// CountersCleared returns if the "counters" field was cleared in this mutation.
func (m *ConnectorEndpointMutation) CountersCleared() bool {
	_, ok := m.clearedFields[connectorendpoint.FieldCounters]
	return ok
}

// ResetCounters resets all changes to the "counters" field.
func (m *ConnectorEndpointMutation) ResetCounters() {
	m.counters = nil
	delete(m.clearedFields, connectorendpoint.FieldCounters)
}

// SetCheckpoint sets the "checkpoint" field.
func (m *ConnectorEndpointMutation) SetCheckpoint(value map[string]interface{}) {
	m.checkpoint = &value
}

// Checkpoint returns the value of the "checkpoint" field in the mutation.
func (m *ConnectorEndpointMutation) Checkpoint() (r map[string]interface{}, exists bool) {
	v := m.checkpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpoint returns the old "checkpoint" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldCheckpoint(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpoint: %w", err)
	}
	return oldValue.Checkpoint, nil
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (m *ConnectorEndpointMutation) ClearCheckpoint() {
	m.checkpoint = nil
	m.clearedFields[connectorendpoint.FieldCheckpoint] = struct{}{}
}

// CheckpointCleared returns if the "checkpoint" field was cleared in this mutation.
func (m *ConnectorEndpointMutation) CheckpointCleared() bool {
	_, ok := m.clearedFields[connectorendpoint.FieldCheckpoint]
	return ok
}

// ResetCheckpoint resets all changes to the "checkpoint" field.
func (m *ConnectorEndpointMutation) ResetCheckpoint() {
	m.checkpoint = nil
	delete(m.clearedFields, connectorendpoint.FieldCheckpoint)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ConnectorEndpointMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ConnectorEndpointMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ConnectorEndpointMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *ConnectorEndpointMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *ConnectorEndpointMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the ConnectorEndpoint entity.
// If the ConnectorEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorEndpointMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *ConnectorEndpointMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// Where appends a list predicates to the ConnectorEndpointMutation builder.
func (m *ConnectorEndpointMutation) Where(ps ...predicate.ConnectorEndpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorEndpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorEndpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectorEndpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorEndpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorEndpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectorEndpoint).
func (m *ConnectorEndpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorEndpointMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.connector_type != nil {
		fields = append(fields, connectorendpoint.FieldConnectorType)
	}
	if m.endpoint_identity != nil {
		fields = append(fields, connectorendpoint.FieldEndpointIdentity)
	}
	if m.instance_id != nil {
		fields = append(fields, connectorendpoint.FieldInstanceID)
	}
	if m.state != nil {
		fields = append(fields, connectorendpoint.FieldState)
	}
	if m.counters != nil {
		fields = append(fields, connectorendpoint.FieldCounters)
	}
	if m.checkpoint != nil {
		fields = append(fields, connectorendpoint.FieldCheckpoint)
	}
	if m.first_seen_at != nil {
		fields = append(fields, connectorendpoint.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, connectorendpoint.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorEndpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectorendpoint.FieldConnectorType:
		return m.ConnectorType()
	case connectorendpoint.FieldEndpointIdentity:
		return m.EndpointIdentity()
	case connectorendpoint.FieldInstanceID:
		return m.InstanceID()
	case connectorendpoint.FieldState:
		return m.State()
	case connectorendpoint.FieldCounters:
		return m.Counters()
	case connectorendpoint.FieldCheckpoint:
		return m.Checkpoint()
	case connectorendpoint.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case connectorendpoint.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorEndpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectorendpoint.FieldConnectorType:
		return m.OldConnectorType(ctx)
	case connectorendpoint.FieldEndpointIdentity:
		return m.OldEndpointIdentity(ctx)
	case connectorendpoint.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case connectorendpoint.FieldState:
		return m.OldState(ctx)
	case connectorendpoint.FieldCounters:
		return m.OldCounters(ctx)
	case connectorendpoint.FieldCheckpoint:
		return m.OldCheckpoint(ctx)
	case connectorendpoint.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case connectorendpoint.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectorEndpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorEndpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectorendpoint.FieldConnectorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorType(v)
		return nil
	case connectorendpoint.FieldEndpointIdentity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointIdentity(v)
		return nil
	case connectorendpoint.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case connectorendpoint.FieldState:
		v, ok := value.(connectorendpoint.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case connectorendpoint.FieldCounters:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounters(v)
		return nil
	case connectorendpoint.FieldCheckpoint:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpoint(v)
		return nil
	case connectorendpoint.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case connectorendpoint.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorEndpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorEndpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorEndpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorEndpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConnectorEndpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorEndpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectorendpoint.FieldInstanceID) {
		fields = append(fields, connectorendpoint.FieldInstanceID)
	}
	if m.FieldCleared(connectorendpoint.FieldCounters) {
		fields = append(fields, connectorendpoint.FieldCounters)
	}
	if m.FieldCleared(connectorendpoint.FieldCheckpoint) {
		fields = append(fields, connectorendpoint.FieldCheckpoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorEndpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorEndpointMutation) ClearField(name string) error {
	switch name {
	case connectorendpoint.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	case connectorendpoint.FieldCounters:
		m.ClearCounters()
		return nil
	case connectorendpoint.FieldCheckpoint:
		m.ClearCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown ConnectorEndpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorEndpointMutation) ResetField(name string) error {
	switch name {
	case connectorendpoint.FieldConnectorType:
		m.ResetConnectorType()
		return nil
	case connectorendpoint.FieldEndpointIdentity:
		m.ResetEndpointIdentity()
		return nil
	case connectorendpoint.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case connectorendpoint.FieldState:
		m.ResetState()
		return nil
	case connectorendpoint.FieldCounters:
		m.ResetCounters()
		return nil
	case connectorendpoint.FieldCheckpoint:
		m.ResetCheckpoint()
		return nil
	case connectorendpoint.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case connectorendpoint.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectorEndpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorEndpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorEndpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorEndpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorEndpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorEndpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorEndpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorEndpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectorEndpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorEndpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectorEndpoint edge %s", name)
}

// ConnectorHeartbeatMutation represents an operation that mutates the ConnectorHeartbeat nodes in the graph.
type ConnectorHeartbeatMutation struct {
	config
	op                Op
	typ               string
	id                *string
	connector_type    *string
	endpoint_identity *string
	instance_id       *string
	state             *string
	counters          *map[string]int64
	checkpoint        *map[string]interface{}
	sent_at           *time.Time
	received_at       *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ConnectorHeartbeat, error)
	predicates        []predicate.ConnectorHeartbeat
}

var _ ent.Mutation = (*ConnectorHeartbeatMutation)(nil)

// connectorheartbeatOption allows management of the mutation configuration using functional options.
type connectorheartbeatOption func(*ConnectorHeartbeatMutation)

// newConnectorHeartbeatMutation creates new mutation for the ConnectorHeartbeat entity.
func newConnectorHeartbeatMutation(c config, op Op, opts ...connectorheartbeatOption) *ConnectorHeartbeatMutation {
	m := &ConnectorHeartbeatMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectorHeartbeat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorHeartbeatID sets the ID field of the mutation.
func withConnectorHeartbeatID(id string) connectorheartbeatOption {
	return func(m *ConnectorHeartbeatMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectorHeartbeat
		)
		m.oldValue = func(ctx context.Context) (*ConnectorHeartbeat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectorHeartbeat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectorHeartbeat sets the old ConnectorHeartbeat of the mutation.
func withConnectorHeartbeat(node *ConnectorHeartbeat) connectorheartbeatOption {
	return func(m *ConnectorHeartbeatMutation) {
		m.oldValue = func(context.Context) (*ConnectorHeartbeat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorHeartbeatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorHeartbeatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConnectorHeartbeat entities.
func (m *ConnectorHeartbeatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorHeartbeatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorHeartbeatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectorHeartbeat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorType sets the "connector_type" field.
func (m *ConnectorHeartbeatMutation) SetConnectorType(s string) {
	m.connector_type = &s
}

// ConnectorType returns the value of the "connector_type" field in the mutation.
func (m *ConnectorHeartbeatMutation) ConnectorType() (r string, exists bool) {
	v := m.connector_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorType returns the old "connector_type" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldConnectorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorType: %w", err)
	}
	return oldValue.ConnectorType, nil
}

// ResetConnectorType resets all changes to the "connector_type" field.
func (m *ConnectorHeartbeatMutation) ResetConnectorType() {
	m.connector_type = nil
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (m *ConnectorHeartbeatMutation) SetEndpointIdentity(s string) {
	m.endpoint_identity = &s
}

// EndpointIdentity returns the value of the "endpoint_identity" field in the mutation.
func (m *ConnectorHeartbeatMutation) EndpointIdentity() (r string, exists bool) {
	v := m.endpoint_identity
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointIdentity returns the old "endpoint_identity" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldEndpointIdentity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointIdentity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointIdentity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointIdentity: %w", err)
	}
	return oldValue.EndpointIdentity, nil
}

// ResetEndpointIdentity resets all changes to the "endpoint_identity" field.
func (m *ConnectorHeartbeatMutation) ResetEndpointIdentity() {
	m.endpoint_identity = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *ConnectorHeartbeatMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *ConnectorHeartbeatMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ClearInstanceID clears the value of the "instance_id" field.
func (m *ConnectorHeartbeatMutation) ClearInstanceID() {
	m.instance_id = nil
	m.clearedFields[connectorheartbeat.FieldInstanceID] = struct{}{}
}

// InstanceIDCleared returns if the "instance_id" field was cleared in this mutation.
func (m *ConnectorHeartbeatMutation) InstanceIDCleared() bool {
	_, ok := m.clearedFields[connectorheartbeat.FieldInstanceID]
	return ok
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *ConnectorHeartbeatMutation) ResetInstanceID() {
	m.instance_id = nil
	delete(m.clearedFields, connectorheartbeat.FieldInstanceID)
}

// SetState sets the "state" field.
func (m *ConnectorHeartbeatMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ConnectorHeartbeatMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ConnectorHeartbeatMutation) ResetState() {
	m.state = nil
}

// SetCounters sets the "counters" field.
func (m *ConnectorHeartbeatMutation) SetCounters(value map[string]int64) {
	m.counters = &value
}

// Counters returns the value of the "counters" field in the mutation.
func (m *ConnectorHeartbeatMutation) Counters() (r map[string]int64, exists bool) {
	v := m.counters
	if v == nil {
		return
	}
	return *v, true
}

// OldCounters returns the old "counters" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldCounters(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounters: %w", err)
	}
	return oldValue.Counters, nil
}

// ClearCounters clears the value of the "counters" field.
func (m *ConnectorHeartbeatMutation) ClearCounters() {
	m.counters = nil
	m.clearedFields[connectorheartbeat.FieldCounters] = struct{}{}
}

// CountersCleared returns if the "counters" field was cleared in this mutation.
func (m *ConnectorHeartbeatMutation) CountersCleared() bool {
	_, ok := m.clearedFields[connectorheartbeat.FieldCounters]
	return ok
}

// ResetCounters resets all changes to the "counters" field.
func (m *ConnectorHeartbeatMutation) ResetCounters() {
	m.counters = nil
	delete(m.clearedFields, connectorheartbeat.FieldCounters)
}

// SetCheckpoint sets the "checkpoint" field.
func (m *ConnectorHeartbeatMutation) SetCheckpoint(value map[string]interface{}) {
	m.checkpoint = &value
}

// Checkpoint returns the value of the "checkpoint" field in the mutation.
func (m *ConnectorHeartbeatMutation) Checkpoint() (r map[string]interface{}, exists bool) {
	v := m.checkpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpoint returns the old "checkpoint" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldCheckpoint(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpoint: %w", err)
	}
	return oldValue.Checkpoint, nil
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (m *ConnectorHeartbeatMutation) ClearCheckpoint() {
	m.checkpoint = nil
	m.clearedFields[connectorheartbeat.FieldCheckpoint] = struct{}{}
}

// CheckpointCleared returns if the "checkpoint" field was cleared in this mutation.
func (m *ConnectorHeartbeatMutation) CheckpointCleared() bool {
	_, ok := m.clearedFields[connectorheartbeat.FieldCheckpoint]
	return ok
}

// ResetCheckpoint resets all changes to the "checkpoint" field.
func (m *ConnectorHeartbeatMutation) ResetCheckpoint() {
	m.checkpoint = nil
	delete(m.clearedFields, connectorheartbeat.FieldCheckpoint)
}

// SetSentAt sets the "sent_at" field.
func (m *ConnectorHeartbeatMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *ConnectorHeartbeatMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *ConnectorHeartbeatMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *ConnectorHeartbeatMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *ConnectorHeartbeatMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the ConnectorHeartbeat entity.
// If the ConnectorHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorHeartbeatMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *ConnectorHeartbeatMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the ConnectorHeartbeatMutation builder.
func (m *ConnectorHeartbeatMutation) Where(ps ...predicate.ConnectorHeartbeat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorHeartbeatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorHeartbeatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectorHeartbeat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorHeartbeatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorHeartbeatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectorHeartbeat).
func (m *ConnectorHeartbeatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorHeartbeatMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.connector_type != nil {
		fields = append(fields, connectorheartbeat.FieldConnectorType)
	}
	if m.endpoint_identity != nil {
		fields = append(fields, connectorheartbeat.FieldEndpointIdentity)
	}
	if m.instance_id != nil {
		fields = append(fields, connectorheartbeat.FieldInstanceID)
	}
	if m.state != nil {
		fields = append(fields, connectorheartbeat.FieldState)
	}
	if m.counters != nil {
		fields = append(fields, connectorheartbeat.FieldCounters)
	}
	if m.checkpoint != nil {
		fields = append(fields, connectorheartbeat.FieldCheckpoint)
	}
	if m.sent_at != nil {
		fields = append(fields, connectorheartbeat.FieldSentAt)
	}
	if m.received_at != nil {
		fields = append(fields, connectorheartbeat.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorHeartbeatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectorheartbeat.FieldConnectorType:
		return m.ConnectorType()
	case connectorheartbeat.FieldEndpointIdentity:
		return m.EndpointIdentity()
	case connectorheartbeat.FieldInstanceID:
		return m.InstanceID()
	case connectorheartbeat.FieldState:
		return m.State()
	case connectorheartbeat.FieldCounters:
		return m.Counters()
	case connectorheartbeat.FieldCheckpoint:
		return m.Checkpoint()
	case connectorheartbeat.FieldSentAt:
		return m.SentAt()
	case connectorheartbeat.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorHeartbeatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectorheartbeat.FieldConnectorType:
		return m.OldConnectorType(ctx)
	case connectorheartbeat.FieldEndpointIdentity:
		return m.OldEndpointIdentity(ctx)
	case connectorheartbeat.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case connectorheartbeat.FieldState:
		return m.OldState(ctx)
	case connectorheartbeat.FieldCounters:
		return m.OldCounters(ctx)
	case connectorheartbeat.FieldCheckpoint:
		return m.OldCheckpoint(ctx)
	case connectorheartbeat.FieldSentAt:
		return m.OldSentAt(ctx)
	case connectorheartbeat.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectorHeartbeat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorHeartbeatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectorheartbeat.FieldConnectorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorType(v)
		return nil
	case connectorheartbeat.FieldEndpointIdentity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointIdentity(v)
		return nil
	case connectorheartbeat.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case connectorheartbeat.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case connectorheartbeat.FieldCounters:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounters(v)
		return nil
	case connectorheartbeat.FieldCheckpoint:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpoint(v)
		return nil
	case connectorheartbeat.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case connectorheartbeat.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorHeartbeat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorHeartbeatMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorHeartbeatMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorHeartbeatMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConnectorHeartbeat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorHeartbeatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectorheartbeat.FieldInstanceID) {
		fields = append(fields, connectorheartbeat.FieldInstanceID)
	}
	if m.FieldCleared(connectorheartbeat.FieldCounters) {
		fields = append(fields, connectorheartbeat.FieldCounters)
	}
	if m.FieldCleared(connectorheartbeat.FieldCheckpoint) {
		fields = append(fields, connectorheartbeat.FieldCheckpoint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorHeartbeatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorHeartbeatMutation) ClearField(name string) error {
	switch name {
	case connectorheartbeat.FieldInstanceID:
		m.ClearInstanceID()
		return nil
	case connectorheartbeat.FieldCounters:
		m.ClearCounters()
		return nil
	case connectorheartbeat.FieldCheckpoint:
		m.ClearCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown ConnectorHeartbeat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorHeartbeatMutation) ResetField(name string) error {
	switch name {
	case connectorheartbeat.FieldConnectorType:
		m.ResetConnectorType()
		return nil
	case connectorheartbeat.FieldEndpointIdentity:
		m.ResetEndpointIdentity()
		return nil
	case connectorheartbeat.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case connectorheartbeat.FieldState:
		m.ResetState()
		return nil
	case connectorheartbeat.FieldCounters:
		m.ResetCounters()
		return nil
	case connectorheartbeat.FieldCheckpoint:
		m.ResetCheckpoint()
		return nil
	case connectorheartbeat.FieldSentAt:
		m.ResetSentAt()
		return nil
	case connectorheartbeat.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectorHeartbeat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorHeartbeatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorHeartbeatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorHeartbeatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorHeartbeatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorHeartbeatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorHeartbeatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorHeartbeatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectorHeartbeat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorHeartbeatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectorHeartbeat edge %s", name)
}

// EligibilityLogMutation represents an operation that mutates the EligibilityLog nodes in the graph.
type EligibilityLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	butler_name   *string
	from_state    *string
	to_state      *string
	reason        *string
	actor         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EligibilityLog, error)
	predicates    []predicate.EligibilityLog
}

var _ ent.Mutation = (*EligibilityLogMutation)(nil)

// eligibilitylogOption allows management of the mutation configuration using functional options.
type eligibilitylogOption func(*EligibilityLogMutation)

// newEligibilityLogMutation creates new mutation for the EligibilityLog entity.
func newEligibilityLogMutation(c config, op Op, opts ...eligibilitylogOption) *EligibilityLogMutation {
	m := &EligibilityLogMutation{
		config:        c,
		op:            op,
		typ:           TypeEligibilityLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEligibilityLogID sets the ID field of the mutation.
func withEligibilityLogID(id string) eligibilitylogOption {
	return func(m *EligibilityLogMutation) {
		var (
			err   error
			once  sync.Once
			value *EligibilityLog
		)
		m.oldValue = func(ctx context.Context) (*EligibilityLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EligibilityLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEligibilityLog sets the old EligibilityLog of the mutation.
func withEligibilityLog(node *EligibilityLog) eligibilitylogOption {
	return func(m *EligibilityLogMutation) {
		m.oldValue = func(context.Context) (*EligibilityLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EligibilityLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EligibilityLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EligibilityLog entities.
func (m *EligibilityLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EligibilityLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EligibilityLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EligibilityLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButlerName sets the "butler_name" field.
func (m *EligibilityLogMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *EligibilityLogMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the EligibilityLog entity.
// If the EligibilityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EligibilityLogMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *EligibilityLogMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetFromState sets the "from_state" field.
func (m *EligibilityLogMutation) SetFromState(s string) {
	m.from_state = &s
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *EligibilityLogMutation) FromState() (r string, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the EligibilityLog entity.
// If the EligibilityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EligibilityLogMutation) OldFromState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// ResetFromState resets all changes to the "from_state" field.
func (m *EligibilityLogMutation) ResetFromState() {
	m.from_state = nil
}

// SetToState sets the "to_state" field.
func (m *EligibilityLogMutation) SetToState(s string) {
	m.to_state = &s
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *EligibilityLogMutation) ToState() (r string, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the EligibilityLog entity.
// If the EligibilityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EligibilityLogMutation) OldToState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// ResetToState resets all changes to the "to_state" field.
func (m *EligibilityLogMutation) ResetToState() {
	m.to_state = nil
}

// SetReason sets the "reason" field.
func (m *EligibilityLogMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *EligibilityLogMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the EligibilityLog entity.
// If the EligibilityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EligibilityLogMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *EligibilityLogMutation) ResetReason() {
	m.reason = nil
}

// SetActor sets the "actor" field.
func (m *EligibilityLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *EligibilityLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the EligibilityLog entity.
// If the EligibilityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EligibilityLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *EligibilityLogMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[eligibilitylog.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *EligibilityLogMutation) ActorCleared() bool {
	_, ok := m.clearedFields[eligibilitylog.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *EligibilityLogMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, eligibilitylog.FieldActor)
}

// SetCreatedAt sets the "created_at" field.
func (m *EligibilityLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EligibilityLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EligibilityLog entity.
// If the EligibilityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EligibilityLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EligibilityLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EligibilityLogMutation builder.
func (m *EligibilityLogMutation) Where(ps ...predicate.EligibilityLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EligibilityLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EligibilityLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EligibilityLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EligibilityLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EligibilityLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EligibilityLog).
func (m *EligibilityLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EligibilityLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.butler_name != nil {
		fields = append(fields, eligibilitylog.FieldButlerName)
	}
	if m.from_state != nil {
		fields = append(fields, eligibilitylog.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, eligibilitylog.FieldToState)
	}
	if m.reason != nil {
		fields = append(fields, eligibilitylog.FieldReason)
	}
	if m.actor != nil {
		fields = append(fields, eligibilitylog.FieldActor)
	}
	if m.created_at != nil {
		fields = append(fields, eligibilitylog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EligibilityLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eligibilitylog.FieldButlerName:
		return m.ButlerName()
	case eligibilitylog.FieldFromState:
		return m.FromState()
	case eligibilitylog.FieldToState:
		return m.ToState()
	case eligibilitylog.FieldReason:
		return m.Reason()
	case eligibilitylog.FieldActor:
		return m.Actor()
	case eligibilitylog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EligibilityLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eligibilitylog.FieldButlerName:
		return m.OldButlerName(ctx)
	case eligibilitylog.FieldFromState:
		return m.OldFromState(ctx)
	case eligibilitylog.FieldToState:
		return m.OldToState(ctx)
	case eligibilitylog.FieldReason:
		return m.OldReason(ctx)
	case eligibilitylog.FieldActor:
		return m.OldActor(ctx)
	case eligibilitylog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EligibilityLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EligibilityLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eligibilitylog.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case eligibilitylog.FieldFromState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case eligibilitylog.FieldToState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case eligibilitylog.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case eligibilitylog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case eligibilitylog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EligibilityLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EligibilityLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EligibilityLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EligibilityLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EligibilityLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EligibilityLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eligibilitylog.FieldActor) {
		fields = append(fields, eligibilitylog.FieldActor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EligibilityLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EligibilityLogMutation) ClearField(name string) error {
	switch name {
	case eligibilitylog.FieldActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown EligibilityLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EligibilityLogMutation) ResetField(name string) error {
	switch name {
	case eligibilitylog.FieldButlerName:
		m.ResetButlerName()
		return nil
	case eligibilitylog.FieldFromState:
		m.ResetFromState()
		return nil
	case eligibilitylog.FieldToState:
		m.ResetToState()
		return nil
	case eligibilitylog.FieldReason:
		m.ResetReason()
		return nil
	case eligibilitylog.FieldActor:
		m.ResetActor()
		return nil
	case eligibilitylog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EligibilityLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EligibilityLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EligibilityLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EligibilityLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EligibilityLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EligibilityLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EligibilityLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EligibilityLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EligibilityLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EligibilityLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EligibilityLog edge %s", name)
}

// FanoutExecutionMutation represents an operation that mutates the FanoutExecution nodes in the graph.
type FanoutExecutionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	request_id     *string
	subrequest_id  *string
	segment_id     *string
	butler_name    *string
	status         *fanoutexecution.Status
	error_kind     *string
	error_message  *string
	started_at     *time.Time
	completed_at   *time.Time
	duration_ms    *int64
	addduration_ms *int64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*FanoutExecution, error)
	predicates     []predicate.FanoutExecution
}

var _ ent.Mutation = (*FanoutExecutionMutation)(nil)

// fanoutexecutionOption allows management of the mutation configuration using functional options.
type fanoutexecutionOption func(*FanoutExecutionMutation)

// newFanoutExecutionMutation creates new mutation for the FanoutExecution entity.
func newFanoutExecutionMutation(c config, op Op, opts ...fanoutexecutionOption) *FanoutExecutionMutation {
	m := &FanoutExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeFanoutExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFanoutExecutionID sets the ID field of the mutation.
func withFanoutExecutionID(id string) fanoutexecutionOption {
	return func(m *FanoutExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *FanoutExecution
		)
		m.oldValue = func(ctx context.Context) (*FanoutExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FanoutExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFanoutExecution sets the old FanoutExecution of the mutation.
func withFanoutExecution(node *FanoutExecution) fanoutexecutionOption {
	return func(m *FanoutExecutionMutation) {
		m.oldValue = func(context.Context) (*FanoutExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FanoutExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FanoutExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FanoutExecution entities.
func (m *FanoutExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FanoutExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FanoutExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FanoutExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *FanoutExecutionMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *FanoutExecutionMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *FanoutExecutionMutation) ResetRequestID() {
	m.request_id = nil
}

// SetSubrequestID sets the "subrequest_id" field.
func (m *FanoutExecutionMutation) SetSubrequestID(s string) {
	m.subrequest_id = &s
}

// SubrequestID returns the value of the "subrequest_id" field in the mutation.
func (m *FanoutExecutionMutation) SubrequestID() (r string, exists bool) {
	v := m.subrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubrequestID returns the old "subrequest_id" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldSubrequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubrequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubrequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubrequestID: %w", err)
	}
	return oldValue.SubrequestID, nil
}

// ResetSubrequestID resets all changes to the "subrequest_id" field.
func (m *FanoutExecutionMutation) ResetSubrequestID() {
	m.subrequest_id = nil
}

// SetSegmentID sets the "segment_id" field.
func (m *FanoutExecutionMutation) SetSegmentID(s string) {
	m.segment_id = &s
}

// SegmentID returns the value of the "segment_id" field in the mutation.
func (m *FanoutExecutionMutation) SegmentID() (r string, exists bool) {
	v := m.segment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentID returns the old "segment_id" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldSegmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentID: %w", err)
	}
	return oldValue.SegmentID, nil
}

// ClearSegmentID clears the value of the "segment_id" field.
func (m *FanoutExecutionMutation) ClearSegmentID() {
	m.segment_id = nil
	m.clearedFields[fanoutexecution.FieldSegmentID] = struct{}{}
}

// SegmentIDCleared returns if the "segment_id" field was cleared in this mutation.
func (m *FanoutExecutionMutation) SegmentIDCleared() bool {
	_, ok := m.clearedFields[fanoutexecution.FieldSegmentID]
	return ok
}

// ResetSegmentID resets all changes to the "segment_id" field.
func (m *FanoutExecutionMutation) ResetSegmentID() {
	m.segment_id = nil
	delete(m.clearedFields, fanoutexecution.FieldSegmentID)
}

// SetButlerName sets the "butler_name" field.
func (m *FanoutExecutionMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *FanoutExecutionMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *FanoutExecutionMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetStatus sets the "status" field.
func (m *FanoutExecutionMutation) SetStatus(f fanoutexecution.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FanoutExecutionMutation) Status() (r fanoutexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldStatus(ctx context.Context) (v fanoutexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FanoutExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *FanoutExecutionMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *FanoutExecutionMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *FanoutExecutionMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[fanoutexecution.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *FanoutExecutionMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[fanoutexecution.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *FanoutExecutionMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, fanoutexecution.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *FanoutExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FanoutExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FanoutExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[fanoutexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FanoutExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[fanoutexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FanoutExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, fanoutexecution.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *FanoutExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *FanoutExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *FanoutExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *FanoutExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *FanoutExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *FanoutExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[fanoutexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *FanoutExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[fanoutexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *FanoutExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, fanoutexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *FanoutExecutionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *FanoutExecutionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *FanoutExecutionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *FanoutExecutionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *FanoutExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FanoutExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FanoutExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FanoutExecution entity.
// If the FanoutExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FanoutExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FanoutExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FanoutExecutionMutation builder.
func (m *FanoutExecutionMutation) Where(ps ...predicate.FanoutExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FanoutExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FanoutExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FanoutExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FanoutExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FanoutExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FanoutExecution).
func (m *FanoutExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FanoutExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.request_id != nil {
		fields = append(fields, fanoutexecution.FieldRequestID)
	}
	if m.subrequest_id != nil {
		fields = append(fields, fanoutexecution.FieldSubrequestID)
	}
	if m.segment_id != nil {
		fields = append(fields, fanoutexecution.FieldSegmentID)
	}
	if m.butler_name != nil {
		fields = append(fields, fanoutexecution.FieldButlerName)
	}
	if m.status != nil {
		fields = append(fields, fanoutexecution.FieldStatus)
	}
	if m.error_kind != nil {
		fields = append(fields, fanoutexecution.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, fanoutexecution.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, fanoutexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, fanoutexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, fanoutexecution.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, fanoutexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FanoutExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fanoutexecution.FieldRequestID:
		return m.RequestID()
	case fanoutexecution.FieldSubrequestID:
		return m.SubrequestID()
	case fanoutexecution.FieldSegmentID:
		return m.SegmentID()
	case fanoutexecution.FieldButlerName:
		return m.ButlerName()
	case fanoutexecution.FieldStatus:
		return m.Status()
	case fanoutexecution.FieldErrorKind:
		return m.ErrorKind()
	case fanoutexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case fanoutexecution.FieldStartedAt:
		return m.StartedAt()
	case fanoutexecution.FieldCompletedAt:
		return m.CompletedAt()
	case fanoutexecution.FieldDurationMs:
		return m.DurationMs()
	case fanoutexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FanoutExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fanoutexecution.FieldRequestID:
		return m.OldRequestID(ctx)
	case fanoutexecution.FieldSubrequestID:
		return m.OldSubrequestID(ctx)
	case fanoutexecution.FieldSegmentID:
		return m.OldSegmentID(ctx)
	case fanoutexecution.FieldButlerName:
		return m.OldButlerName(ctx)
	case fanoutexecution.FieldStatus:
		return m.OldStatus(ctx)
	case fanoutexecution.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case fanoutexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case fanoutexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case fanoutexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case fanoutexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case fanoutexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FanoutExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FanoutExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fanoutexecution.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case fanoutexecution.FieldSubrequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubrequestID(v)
		return nil
	case fanoutexecution.FieldSegmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentID(v)
		return nil
	case fanoutexecution.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case fanoutexecution.FieldStatus:
		v, ok := value.(fanoutexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fanoutexecution.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case fanoutexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case fanoutexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case fanoutexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case fanoutexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case fanoutexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FanoutExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FanoutExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, fanoutexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FanoutExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fanoutexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FanoutExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fanoutexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown FanoutExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FanoutExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fanoutexecution.FieldSegmentID) {
		fields = append(fields, fanoutexecution.FieldSegmentID)
	}
	if m.FieldCleared(fanoutexecution.FieldErrorKind) {
		fields = append(fields, fanoutexecution.FieldErrorKind)
	}
	if m.FieldCleared(fanoutexecution.FieldErrorMessage) {
		fields = append(fields, fanoutexecution.FieldErrorMessage)
	}
	if m.FieldCleared(fanoutexecution.FieldCompletedAt) {
		fields = append(fields, fanoutexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FanoutExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FanoutExecutionMutation) ClearField(name string) error {
	switch name {
	case fanoutexecution.FieldSegmentID:
		m.ClearSegmentID()
		return nil
	case fanoutexecution.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case fanoutexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case fanoutexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown FanoutExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FanoutExecutionMutation) ResetField(name string) error {
	switch name {
	case fanoutexecution.FieldRequestID:
		m.ResetRequestID()
		return nil
	case fanoutexecution.FieldSubrequestID:
		m.ResetSubrequestID()
		return nil
	case fanoutexecution.FieldSegmentID:
		m.ResetSegmentID()
		return nil
	case fanoutexecution.FieldButlerName:
		m.ResetButlerName()
		return nil
	case fanoutexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case fanoutexecution.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case fanoutexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case fanoutexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case fanoutexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case fanoutexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case fanoutexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FanoutExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FanoutExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FanoutExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FanoutExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FanoutExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FanoutExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FanoutExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FanoutExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FanoutExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FanoutExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FanoutExecution edge %s", name)
}

// IngressItemMutation represents an operation that mutates the IngressItem nodes in the graph.
type IngressItemMutation struct {
	config
	op            Op
	typ           string
	id            *string
	request_id    *string
	priority_tier *ingressitem.PriorityTier
	enqueued_at   *time.Time
	leased_by     *string
	leased_until  *time.Time
	attempts      *int
	addattempts   *int
	status        *ingressitem.Status
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IngressItem, error)
	predicates    []predicate.IngressItem
}

var _ ent.Mutation = (*IngressItemMutation)(nil)

// ingressitemOption allows management of the mutation configuration using functional options.
type ingressitemOption func(*IngressItemMutation)

// newIngressItemMutation creates new mutation for the IngressItem entity.
func newIngressItemMutation(c config, op Op, opts ...ingressitemOption) *IngressItemMutation {
	m := &IngressItemMutation{
		config:        c,
		op:            op,
		typ:           TypeIngressItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngressItemID sets the ID field of the mutation.
func withIngressItemID(id string) ingressitemOption {
	return func(m *IngressItemMutation) {
		var (
			err   error
			once  sync.Once
			value *IngressItem
		)
		m.oldValue = func(ctx context.Context) (*IngressItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngressItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngressItem sets the old IngressItem of the mutation.
func withIngressItem(node *IngressItem) ingressitemOption {
	return func(m *IngressItemMutation) {
		m.oldValue = func(context.Context) (*IngressItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngressItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngressItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngressItem entities.
func (m *IngressItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngressItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngressItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngressItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *IngressItemMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *IngressItemMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the IngressItem entity.
// If the IngressItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngressItemMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *IngressItemMutation) ResetRequestID() {
	m.request_id = nil
}

// SetPriorityTier sets the "priority_tier" field.
func (m *IngressItemMutation) SetPriorityTier(it ingressitem.PriorityTier) {
	m.priority_tier = &it
}

// PriorityTier returns the value of the "priority_tier" field in the mutation.
func (m *IngressItemMutation) PriorityTier() (r ingressitem.PriorityTier, exists bool) {
	v := m.priority_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityTier returns the old "priority_tier" field's value of the IngressItem entity.
// If the IngressItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngressItemMutation) OldPriorityTier(ctx context.Context) (v ingressitem.PriorityTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityTier: %w", err)
	}
	return oldValue.PriorityTier, nil
}

// ResetPriorityTier resets all changes to the "priority_tier" field.
func (m *IngressItemMutation) ResetPriorityTier() {
	m.priority_tier = nil
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *IngressItemMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *IngressItemMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the IngressItem entity.
// If the IngressItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngressItemMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *IngressItemMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetLeasedBy sets the "leased_by" field.
func (m *IngressItemMutation) SetLeasedBy(s string) {
	m.leased_by = &s
}

// LeasedBy returns the value of the "leased_by" field in the mutation.
func (m *IngressItemMutation) LeasedBy() (r string, exists bool) {
	v := m.leased_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLeasedBy returns the old "leased_by" field's value of the IngressItem entity.
// If the IngressItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngressItemMutation) OldLeasedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeasedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeasedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeasedBy: %w", err)
	}
	return oldValue.LeasedBy, nil
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (m *IngressItemMutation) ClearLeasedBy() {
	m.leased_by = nil
	m.clearedFields[ingressitem.FieldLeasedBy] = struct{}{}
}

// LeasedByCleared returns if the "leased_by" field was cleared in this mutation.
func (m *IngressItemMutation) LeasedByCleared() bool {
	_, ok := m.clearedFields[ingressitem.FieldLeasedBy]
	return ok
}

// ResetLeasedBy resets all changes to the "leased_by" field.
func (m *IngressItemMutation) ResetLeasedBy() {
	m.leased_by = nil
	delete(m.clearedFields, ingressitem.FieldLeasedBy)
}

// SetLeasedUntil sets the "leased_until" field.
func (m *IngressItemMutation) SetLeasedUntil(t time.Time) {
	m.leased_until = &t
}

// LeasedUntil returns the value of the "leased_until" field in the mutation.
func (m *IngressItemMutation) LeasedUntil() (r time.Time, exists bool) {
	v := m.leased_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLeasedUntil returns the old "leased_until" field's value of the IngressItem entity.
// If the IngressItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngressItemMutation) OldLeasedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeasedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeasedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeasedUntil: %w", err)
	}
	return oldValue.LeasedUntil, nil
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (m *IngressItemMutation) ClearLeasedUntil() {
	m.leased_until = nil
	m.clearedFields[ingressitem.FieldLeasedUntil] = struct{}{}
}

// LeasedUntilCleared returns if the "leased_until" field was cleared in this mutation.
func (m *IngressItemMutation) LeasedUntilCleared() bool {
	_, ok := m.clearedFields[ingressitem.FieldLeasedUntil]
	return ok
}

// ResetLeasedUntil resets all changes to the "leased_until" field.
func (m *IngressItemMutation) ResetLeasedUntil() {
	m.leased_until = nil
	delete(m.clearedFields, ingressitem.FieldLeasedUntil)
}

// SetAttempts sets the "attempts" field.
func (m *IngressItemMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *IngressItemMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the IngressItem entity.
// If the IngressItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngressItemMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *IngressItemMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *IngressItemMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *IngressItemMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetStatus sets the "status" field.
func (m *IngressItemMutation) SetStatus(i ingressitem.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IngressItemMutation) Status() (r ingressitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngressItem entity.
// If the IngressItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngressItemMutation) OldStatus(ctx context.Context) (v ingressitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngressItemMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the IngressItemMutation builder.
func (m *IngressItemMutation) Where(ps ...predicate.IngressItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngressItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngressItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngressItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngressItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngressItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngressItem).
func (m *IngressItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngressItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.request_id != nil {
		fields = append(fields, ingressitem.FieldRequestID)
	}
	if m.priority_tier != nil {
		fields = append(fields, ingressitem.FieldPriorityTier)
	}
	if m.enqueued_at != nil {
		fields = append(fields, ingressitem.FieldEnqueuedAt)
	}
	if m.leased_by != nil {
		fields = append(fields, ingressitem.FieldLeasedBy)
	}
	if m.leased_until != nil {
		fields = append(fields, ingressitem.FieldLeasedUntil)
	}
	if m.attempts != nil {
		fields = append(fields, ingressitem.FieldAttempts)
	}
	if m.status != nil {
		fields = append(fields, ingressitem.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngressItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingressitem.FieldRequestID:
		return m.RequestID()
	case ingressitem.FieldPriorityTier:
		return m.PriorityTier()
	case ingressitem.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case ingressitem.FieldLeasedBy:
		return m.LeasedBy()
	case ingressitem.FieldLeasedUntil:
		return m.LeasedUntil()
	case ingressitem.FieldAttempts:
		return m.Attempts()
	case ingressitem.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngressItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingressitem.FieldRequestID:
		return m.OldRequestID(ctx)
	case ingressitem.FieldPriorityTier:
		return m.OldPriorityTier(ctx)
	case ingressitem.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case ingressitem.FieldLeasedBy:
		return m.OldLeasedBy(ctx)
	case ingressitem.FieldLeasedUntil:
		return m.OldLeasedUntil(ctx)
	case ingressitem.FieldAttempts:
		return m.OldAttempts(ctx)
	case ingressitem.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown IngressItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngressItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingressitem.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case ingressitem.FieldPriorityTier:
		v, ok := value.(ingressitem.PriorityTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityTier(v)
		return nil
	case ingressitem.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case ingressitem.FieldLeasedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeasedBy(v)
		return nil
	case ingressitem.FieldLeasedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeasedUntil(v)
		return nil
	case ingressitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case ingressitem.FieldStatus:
		v, ok := value.(ingressitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown IngressItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngressItemMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, ingressitem.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngressItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingressitem.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngressItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingressitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown IngressItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngressItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingressitem.FieldLeasedBy) {
		fields = append(fields, ingressitem.FieldLeasedBy)
	}
	if m.FieldCleared(ingressitem.FieldLeasedUntil) {
		fields = append(fields, ingressitem.FieldLeasedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngressItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngressItemMutation) ClearField(name string) error {
	switch name {
	case ingressitem.FieldLeasedBy:
		m.ClearLeasedBy()
		return nil
	case ingressitem.FieldLeasedUntil:
		m.ClearLeasedUntil()
		return nil
	}
	return fmt.Errorf("unknown IngressItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngressItemMutation) ResetField(name string) error {
	switch name {
	case ingressitem.FieldRequestID:
		m.ResetRequestID()
		return nil
	case ingressitem.FieldPriorityTier:
		m.ResetPriorityTier()
		return nil
	case ingressitem.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case ingressitem.FieldLeasedBy:
		m.ResetLeasedBy()
		return nil
	case ingressitem.FieldLeasedUntil:
		m.ResetLeasedUntil()
		return nil
	case ingressitem.FieldAttempts:
		m.ResetAttempts()
		return nil
	case ingressitem.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown IngressItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngressItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngressItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngressItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngressItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngressItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngressItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngressItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngressItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngressItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngressItem edge %s", name)
}

// MessageInboxMutation represents an operation that mutates the MessageInbox nodes in the graph.
type MessageInboxMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	dedupe_key           *string
	channel              *string
	provider             *string
	endpoint_identity    *string
	sender_identity      *string
	content_type         *string
	body                 *string
	normalized_text      *string
	idempotency_key      *string
	thread_target        *string
	policy_tier          *messageinbox.PolicyTier
	sent_at              *time.Time
	observed_at          *time.Time
	classification       *[]map[string]interface{}
	appendclassification []map[string]interface{}
	routing_results      *map[string]interface{}
	status               *messageinbox.Status
	metadata             *map[string]interface{}
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*MessageInbox, error)
	predicates           []predicate.MessageInbox
}

var _ ent.Mutation = (*MessageInboxMutation)(nil)

// messageinboxOption allows management of the mutation configuration using functional options.
type messageinboxOption func(*MessageInboxMutation)

// newMessageInboxMutation creates new mutation for the MessageInbox entity.
func newMessageInboxMutation(c config, op Op, opts ...messageinboxOption) *MessageInboxMutation {
	m := &MessageInboxMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageInbox,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageInboxID sets the ID field of the mutation.
func withMessageInboxID(id string) messageinboxOption {
	return func(m *MessageInboxMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageInbox
		)
		m.oldValue = func(ctx context.Context) (*MessageInbox, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageInbox.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageInbox sets the old MessageInbox of the mutation.
func withMessageInbox(node *MessageInbox) messageinboxOption {
	return func(m *MessageInboxMutation) {
		m.oldValue = func(context.Context) (*MessageInbox, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageInboxMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageInboxMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageInbox entities.
func (m *MessageInboxMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageInboxMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageInboxMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageInbox.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *MessageInboxMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *MessageInboxMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *MessageInboxMutation) ResetDedupeKey() {
	m.dedupe_key = nil
}

// SetChannel sets the "channel" field.
func (m *MessageInboxMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *MessageInboxMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *MessageInboxMutation) ResetChannel() {
	m.channel = nil
}

// SetProvider sets the "provider" field.
func (m *MessageInboxMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *MessageInboxMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *MessageInboxMutation) ResetProvider() {
	m.provider = nil
}

// SetEndpointIdentity sets the "endpoint_identity" field.
func (m *MessageInboxMutation) SetEndpointIdentity(s string) {
	m.endpoint_identity = &s
}

// EndpointIdentity returns the value of the "endpoint_identity" field in the mutation.
func (m *MessageInboxMutation) EndpointIdentity() (r string, exists bool) {
	v := m.endpoint_identity
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointIdentity returns the old "endpoint_identity" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldEndpointIdentity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointIdentity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointIdentity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointIdentity: %w", err)
	}
	return oldValue.EndpointIdentity, nil
}

// ResetEndpointIdentity resets all changes to the "endpoint_identity" field.
func (m *MessageInboxMutation) ResetEndpointIdentity() {
	m.endpoint_identity = nil
}

// SetSenderIdentity sets the "sender_identity" field.
func (m *MessageInboxMutation) SetSenderIdentity(s string) {
	m.sender_identity = &s
}

// SenderIdentity returns the value of the "sender_identity" field in the mutation.
func (m *MessageInboxMutation) SenderIdentity() (r string, exists bool) {
	v := m.sender_identity
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderIdentity returns the old "sender_identity" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldSenderIdentity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderIdentity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderIdentity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderIdentity: %w", err)
	}
	return oldValue.SenderIdentity, nil
}

// ResetSenderIdentity resets all changes to the "sender_identity" field.
func (m *MessageInboxMutation) ResetSenderIdentity() {
	m.sender_identity = nil
}

// SetContentType sets the "content_type" field.
func (m *MessageInboxMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *MessageInboxMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *MessageInboxMutation) ResetContentType() {
	m.content_type = nil
}

// SetBody sets the "body" field.
func (m *MessageInboxMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageInboxMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageInboxMutation) ResetBody() {
	m.body = nil
}

// SetNormalizedText sets the "normalized_text" field.
func (m *MessageInboxMutation) SetNormalizedText(s string) {
	m.normalized_text = &s
}

// NormalizedText returns the value of the "normalized_text" field in the mutation.
func (m *MessageInboxMutation) NormalizedText() (r string, exists bool) {
	v := m.normalized_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedText returns the old "normalized_text" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldNormalizedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedText: %w", err)
	}
	return oldValue.NormalizedText, nil
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (m *MessageInboxMutation) ClearNormalizedText() {
	m.normalized_text = nil
	m.clearedFields[messageinbox.FieldNormalizedText] = struct{}{}
}

// NormalizedTextCleared returns if the "normalized_text" field was cleared in this mutation.
func (m *MessageInboxMutation) NormalizedTextCleared() bool {
	_, ok := m.clearedFields[messageinbox.FieldNormalizedText]
	return ok
}

// ResetNormalizedText resets all changes to the "normalized_text" field.
func (m *MessageInboxMutation) ResetNormalizedText() {
	m.normalized_text = nil
	delete(m.clearedFields, messageinbox.FieldNormalizedText)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *MessageInboxMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *MessageInboxMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *MessageInboxMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[messageinbox.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *MessageInboxMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[messageinbox.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *MessageInboxMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, messageinbox.FieldIdempotencyKey)
}

// SetThreadTarget sets the "thread_target" field.
func (m *MessageInboxMutation) SetThreadTarget(s string) {
	m.thread_target = &s
}

// ThreadTarget returns the value of the "thread_target" field in the mutation.
func (m *MessageInboxMutation) ThreadTarget() (r string, exists bool) {
	v := m.thread_target
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadTarget returns the old "thread_target" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldThreadTarget(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadTarget: %w", err)
	}
	return oldValue.ThreadTarget, nil
}

// ClearThreadTarget clears the value of the "thread_target" field.
func (m *MessageInboxMutation) ClearThreadTarget() {
	m.thread_target = nil
	m.clearedFields[messageinbox.FieldThreadTarget] = struct{}{}
}

// ThreadTargetCleared returns if the "thread_target" field was cleared in this mutation.
func (m *MessageInboxMutation) ThreadTargetCleared() bool {
	_, ok := m.clearedFields[messageinbox.FieldThreadTarget]
	return ok
}

// ResetThreadTarget resets all changes to the "thread_target" field.
func (m *MessageInboxMutation) ResetThreadTarget() {
	m.thread_target = nil
	delete(m.clearedFields, messageinbox.FieldThreadTarget)
}

// SetPolicyTier sets the "policy_tier" field.
func (m *MessageInboxMutation) SetPolicyTier(mt messageinbox.PolicyTier) {
	m.policy_tier = &mt
}

// PolicyTier returns the value of the "policy_tier" field in the mutation.
func (m *MessageInboxMutation) PolicyTier() (r messageinbox.PolicyTier, exists bool) {
	v := m.policy_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyTier returns the old "policy_tier" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldPolicyTier(ctx context.Context) (v messageinbox.PolicyTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyTier: %w", err)
	}
	return oldValue.PolicyTier, nil
}

// ResetPolicyTier resets all changes to the "policy_tier" field.
func (m *MessageInboxMutation) ResetPolicyTier() {
	m.policy_tier = nil
}

// SetSentAt sets the "sent_at" field.
func (m *MessageInboxMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *MessageInboxMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *MessageInboxMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetObservedAt sets the "observed_at" field.
func (m *MessageInboxMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *MessageInboxMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *MessageInboxMutation) ResetObservedAt() {
	m.observed_at = nil
}

// SetClassification sets the "classification" field.
func (m *MessageInboxMutation) SetClassification(value []map[string]interface{}) {
	m.classification = &value
	m.appendclassification = nil
}

// Classification returns the value of the "classification" field in the mutation.
func (m *MessageInboxMutation) Classification() (r []map[string]interface{}, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldClassification(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// AppendClassification adds value to the "classification" field.
func (m *MessageInboxMutation) AppendClassification(value []map[string]interface{}) {
	m.appendclassification = append(m.appendclassification, value...)
}

// AppendedClassification returns the list of values that were appended to the "classification" field in this mutation.
func (m *MessageInboxMutation) AppendedClassification() ([]map[string]interface{}, bool) {
	if len(m.appendclassification) == 0 {
		return nil, false
	}
	return m.appendclassification, true
}

// ClearClassification clears the value of the "classification" field.
func (m *MessageInboxMutation) ClearClassification() {
	m.classification = nil
	m.appendclassification = nil
	m.clearedFields[messageinbox.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *MessageInboxMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[messageinbox.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *MessageInboxMutation) ResetClassification() {
	m.classification = nil
	m.appendclassification = nil
	delete(m.clearedFields, messageinbox.FieldClassification)
}

// SetRoutingResults sets the "routing_results" field.
func (m *MessageInboxMutation) SetRoutingResults(value map[string]interface{}) {
	m.routing_results = &value
}

// RoutingResults returns the value of the "routing_results" field in the mutation.
func (m *MessageInboxMutation) RoutingResults() (r map[string]interface{}, exists bool) {
	v := m.routing_results
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutingResults returns the old "routing_results" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldRoutingResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutingResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutingResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutingResults: %w", err)
	}
	return oldValue.RoutingResults, nil
}

// ClearRoutingResults clears the value of the "routing_results" field.
func (m *MessageInboxMutation) ClearRoutingResults() {
	m.routing_results = nil
	m.clearedFields[messageinbox.FieldRoutingResults] = struct{}{}
}

// RoutingResultsCleared returns if the "routing_results" field was cleared in this mutation.
func (m *MessageInboxMutation) RoutingResultsCleared() bool {
	_, ok := m.clearedFields[messageinbox.FieldRoutingResults]
	return ok
}

// ResetRoutingResults resets all changes to the "routing_results" field.
func (m *MessageInboxMutation) ResetRoutingResults() {
	m.routing_results = nil
	delete(m.clearedFields, messageinbox.FieldRoutingResults)
}

// SetStatus sets the "status" field.
func (m *MessageInboxMutation) SetStatus(value messageinbox.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MessageInboxMutation) Status() (r messageinbox.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldStatus(ctx context.Context) (v messageinbox.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MessageInboxMutation) ResetStatus() {
	m.status = nil
}

// SetMetadata sets the "metadata" field.
func (m *MessageInboxMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MessageInboxMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the MessageInbox entity.
// If the MessageInbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageInboxMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MessageInboxMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[messageinbox.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MessageInboxMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[messageinbox.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MessageInboxMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, messageinbox.FieldMetadata)
}

// Where appends a list predicates to the MessageInboxMutation builder.
func (m *MessageInboxMutation) Where(ps ...predicate.MessageInbox) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageInboxMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageInboxMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageInbox, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageInboxMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageInboxMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageInbox).
func (m *MessageInboxMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageInboxMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.dedupe_key != nil {
		fields = append(fields, messageinbox.FieldDedupeKey)
	}
	if m.channel != nil {
		fields = append(fields, messageinbox.FieldChannel)
	}
	if m.provider != nil {
		fields = append(fields, messageinbox.FieldProvider)
	}
	if m.endpoint_identity != nil {
		fields = append(fields, messageinbox.FieldEndpointIdentity)
	}
	if m.sender_identity != nil {
		fields = append(fields, messageinbox.FieldSenderIdentity)
	}
	if m.content_type != nil {
		fields = append(fields, messageinbox.FieldContentType)
	}
	if m.body != nil {
		fields = append(fields, messageinbox.FieldBody)
	}
	if m.normalized_text != nil {
		fields = append(fields, messageinbox.FieldNormalizedText)
	}
	if m.idempotency_key != nil {
		fields = append(fields, messageinbox.FieldIdempotencyKey)
	}
	if m.thread_target != nil {
		fields = append(fields, messageinbox.FieldThreadTarget)
	}
	if m.policy_tier != nil {
		fields = append(fields, messageinbox.FieldPolicyTier)
	}
	if m.sent_at != nil {
		fields = append(fields, messageinbox.FieldSentAt)
	}
	if m.observed_at != nil {
		fields = append(fields, messageinbox.FieldObservedAt)
	}
	if m.classification != nil {
		fields = append(fields, messageinbox.FieldClassification)
	}
	if m.routing_results != nil {
		fields = append(fields, messageinbox.FieldRoutingResults)
	}
	if m.status != nil {
		fields = append(fields, messageinbox.FieldStatus)
	}
	if m.metadata != nil {
		fields = append(fields, messageinbox.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageInboxMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messageinbox.FieldDedupeKey:
		return m.DedupeKey()
	case messageinbox.FieldChannel:
		return m.Channel()
	case messageinbox.FieldProvider:
		return m.Provider()
	case messageinbox.FieldEndpointIdentity:
		return m.EndpointIdentity()
	case messageinbox.FieldSenderIdentity:
		return m.SenderIdentity()
	case messageinbox.FieldContentType:
		return m.ContentType()
	case messageinbox.FieldBody:
		return m.Body()
	case messageinbox.FieldNormalizedText:
		return m.NormalizedText()
	case messageinbox.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case messageinbox.FieldThreadTarget:
		return m.ThreadTarget()
	case messageinbox.FieldPolicyTier:
		return m.PolicyTier()
	case messageinbox.FieldSentAt:
		return m.SentAt()
	case messageinbox.FieldObservedAt:
		return m.ObservedAt()
	case messageinbox.FieldClassification:
		return m.Classification()
	case messageinbox.FieldRoutingResults:
		return m.RoutingResults()
	case messageinbox.FieldStatus:
		return m.Status()
	case messageinbox.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageInboxMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messageinbox.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case messageinbox.FieldChannel:
		return m.OldChannel(ctx)
	case messageinbox.FieldProvider:
		return m.OldProvider(ctx)
	case messageinbox.FieldEndpointIdentity:
		return m.OldEndpointIdentity(ctx)
	case messageinbox.FieldSenderIdentity:
		return m.OldSenderIdentity(ctx)
	case messageinbox.FieldContentType:
		return m.OldContentType(ctx)
	case messageinbox.FieldBody:
		return m.OldBody(ctx)
	case messageinbox.FieldNormalizedText:
		return m.OldNormalizedText(ctx)
	case messageinbox.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case messageinbox.FieldThreadTarget:
		return m.OldThreadTarget(ctx)
	case messageinbox.FieldPolicyTier:
		return m.OldPolicyTier(ctx)
	case messageinbox.FieldSentAt:
		return m.OldSentAt(ctx)
	case messageinbox.FieldObservedAt:
		return m.OldObservedAt(ctx)
	case messageinbox.FieldClassification:
		return m.OldClassification(ctx)
	case messageinbox.FieldRoutingResults:
		return m.OldRoutingResults(ctx)
	case messageinbox.FieldStatus:
		return m.OldStatus(ctx)
	case messageinbox.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown MessageInbox field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageInboxMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messageinbox.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case messageinbox.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case messageinbox.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case messageinbox.FieldEndpointIdentity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointIdentity(v)
		return nil
	case messageinbox.FieldSenderIdentity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderIdentity(v)
		return nil
	case messageinbox.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case messageinbox.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case messageinbox.FieldNormalizedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedText(v)
		return nil
	case messageinbox.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case messageinbox.FieldThreadTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadTarget(v)
		return nil
	case messageinbox.FieldPolicyTier:
		v, ok := value.(messageinbox.PolicyTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyTier(v)
		return nil
	case messageinbox.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case messageinbox.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	case messageinbox.FieldClassification:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case messageinbox.FieldRoutingResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutingResults(v)
		return nil
	case messageinbox.FieldStatus:
		v, ok := value.(messageinbox.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case messageinbox.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown MessageInbox field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageInboxMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageInboxMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageInboxMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageInbox numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageInboxMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messageinbox.FieldNormalizedText) {
		fields = append(fields, messageinbox.FieldNormalizedText)
	}
	if m.FieldCleared(messageinbox.FieldIdempotencyKey) {
		fields = append(fields, messageinbox.FieldIdempotencyKey)
	}
	if m.FieldCleared(messageinbox.FieldThreadTarget) {
		fields = append(fields, messageinbox.FieldThreadTarget)
	}
	if m.FieldCleared(messageinbox.FieldClassification) {
		fields = append(fields, messageinbox.FieldClassification)
	}
	if m.FieldCleared(messageinbox.FieldRoutingResults) {
		fields = append(fields, messageinbox.FieldRoutingResults)
	}
	if m.FieldCleared(messageinbox.FieldMetadata) {
		fields = append(fields, messageinbox.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageInboxMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageInboxMutation) ClearField(name string) error {
	switch name {
	case messageinbox.FieldNormalizedText:
		m.ClearNormalizedText()
		return nil
	case messageinbox.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case messageinbox.FieldThreadTarget:
		m.ClearThreadTarget()
		return nil
	case messageinbox.FieldClassification:
		m.ClearClassification()
		return nil
	case messageinbox.FieldRoutingResults:
		m.ClearRoutingResults()
		return nil
	case messageinbox.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown MessageInbox nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageInboxMutation) ResetField(name string) error {
	switch name {
	case messageinbox.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case messageinbox.FieldChannel:
		m.ResetChannel()
		return nil
	case messageinbox.FieldProvider:
		m.ResetProvider()
		return nil
	case messageinbox.FieldEndpointIdentity:
		m.ResetEndpointIdentity()
		return nil
	case messageinbox.FieldSenderIdentity:
		m.ResetSenderIdentity()
		return nil
	case messageinbox.FieldContentType:
		m.ResetContentType()
		return nil
	case messageinbox.FieldBody:
		m.ResetBody()
		return nil
	case messageinbox.FieldNormalizedText:
		m.ResetNormalizedText()
		return nil
	case messageinbox.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case messageinbox.FieldThreadTarget:
		m.ResetThreadTarget()
		return nil
	case messageinbox.FieldPolicyTier:
		m.ResetPolicyTier()
		return nil
	case messageinbox.FieldSentAt:
		m.ResetSentAt()
		return nil
	case messageinbox.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	case messageinbox.FieldClassification:
		m.ResetClassification()
		return nil
	case messageinbox.FieldRoutingResults:
		m.ResetRoutingResults()
		return nil
	case messageinbox.FieldStatus:
		m.ResetStatus()
		return nil
	case messageinbox.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown MessageInbox field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageInboxMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageInboxMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageInboxMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageInboxMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageInboxMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageInboxMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageInboxMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MessageInbox unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageInboxMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MessageInbox edge %s", name)
}

// PendingActionMutation represents an operation that mutates the PendingAction nodes in the graph.
type PendingActionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	butler_name      *string
	tool_name        *string
	tool_args        *map[string]interface{}
	status           *pendingaction.Status
	risk_tier        *pendingaction.RiskTier
	created_at       *time.Time
	decided_at       *time.Time
	decided_by       *string
	expires_at       *time.Time
	execution_result *map[string]interface{}
	session_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PendingAction, error)
	predicates       []predicate.PendingAction
}

var _ ent.Mutation = (*PendingActionMutation)(nil)

// pendingactionOption allows management of the mutation configuration using functional options.
type pendingactionOption func(*PendingActionMutation)

// newPendingActionMutation creates new mutation for the PendingAction entity.
func newPendingActionMutation(c config, op Op, opts ...pendingactionOption) *PendingActionMutation {
	m := &PendingActionMutation{
		config:        c,
		op:            op,
		typ:           TypePendingAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingActionID sets the ID field of the mutation.
func withPendingActionID(id string) pendingactionOption {
	return func(m *PendingActionMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingAction
		)
		m.oldValue = func(ctx context.Context) (*PendingAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingAction sets the old PendingAction of the mutation.
func withPendingAction(node *PendingAction) pendingactionOption {
	return func(m *PendingActionMutation) {
		m.oldValue = func(context.Context) (*PendingAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingAction entities.
func (m *PendingActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButlerName sets the "butler_name" field.
func (m *PendingActionMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *PendingActionMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *PendingActionMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetToolName sets the "tool_name" field.
func (m *PendingActionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *PendingActionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *PendingActionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetToolArgs sets the "tool_args" field.
func (m *PendingActionMutation) SetToolArgs(value map[string]interface{}) {
	m.tool_args = &value
}

// ToolArgs returns the value of the "tool_args" field in the mutation.
func (m *PendingActionMutation) ToolArgs() (r map[string]interface{}, exists bool) {
	v := m.tool_args
	if v == nil {
		return
	}
	return *v, true
}

// OldToolArgs returns the old "tool_args" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldToolArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolArgs: %w", err)
	}
	return oldValue.ToolArgs, nil
}

// ResetToolArgs resets all changes to the "tool_args" field.
func (m *PendingActionMutation) ResetToolArgs() {
	m.tool_args = nil
}

// SetStatus sets the "status" field.
func (m *PendingActionMutation) SetStatus(pe pendingaction.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingActionMutation) Status() (r pendingaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldStatus(ctx context.Context) (v pendingaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PendingActionMutation) ResetStatus() {
	m.status = nil
}

// SetRiskTier sets the "risk_tier" field.
func (m *PendingActionMutation) SetRiskTier(pt pendingaction.RiskTier) {
	m.risk_tier = &pt
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *PendingActionMutation) RiskTier() (r pendingaction.RiskTier, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldRiskTier(ctx context.Context) (v pendingaction.RiskTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *PendingActionMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PendingActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PendingActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PendingActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDecidedAt sets the "decided_at" field.
func (m *PendingActionMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *PendingActionMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *PendingActionMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[pendingaction.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *PendingActionMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *PendingActionMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, pendingaction.FieldDecidedAt)
}

// SetDecidedBy sets the "decided_by" field.
func (m *PendingActionMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *PendingActionMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldDecidedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *PendingActionMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[pendingaction.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *PendingActionMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *PendingActionMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, pendingaction.FieldDecidedBy)
}

// SetExpiresAt sets the "expires_at" field.
func (m *PendingActionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PendingActionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *PendingActionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[pendingaction.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *PendingActionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PendingActionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, pendingaction.FieldExpiresAt)
}

// SetExecutionResult sets the "execution_result" field.
func (m *PendingActionMutation) SetExecutionResult(value map[string]interface{}) {
	m.execution_result = &value
}

// ExecutionResult returns the value of the "execution_result" field in the mutation.
func (m *PendingActionMutation) ExecutionResult() (r map[string]interface{}, exists bool) {
	v := m.execution_result
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionResult returns the old "execution_result" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldExecutionResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionResult: %w", err)
	}
	return oldValue.ExecutionResult, nil
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (m *PendingActionMutation) ClearExecutionResult() {
	m.execution_result = nil
	m.clearedFields[pendingaction.FieldExecutionResult] = struct{}{}
}

// ExecutionResultCleared returns if the "execution_result" field was cleared in this mutation.
func (m *PendingActionMutation) ExecutionResultCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldExecutionResult]
	return ok
}

// ResetExecutionResult resets all changes to the "execution_result" field.
func (m *PendingActionMutation) ResetExecutionResult() {
	m.execution_result = nil
	delete(m.clearedFields, pendingaction.FieldExecutionResult)
}

// SetSessionID sets the "session_id" field.
func (m *PendingActionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PendingActionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *PendingActionMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[pendingaction.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *PendingActionMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PendingActionMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, pendingaction.FieldSessionID)
}

// Where appends a list predicates to the PendingActionMutation builder.
func (m *PendingActionMutation) Where(ps ...predicate.PendingAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingAction).
func (m *PendingActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingActionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.butler_name != nil {
		fields = append(fields, pendingaction.FieldButlerName)
	}
	if m.tool_name != nil {
		fields = append(fields, pendingaction.FieldToolName)
	}
	if m.tool_args != nil {
		fields = append(fields, pendingaction.FieldToolArgs)
	}
	if m.status != nil {
		fields = append(fields, pendingaction.FieldStatus)
	}
	if m.risk_tier != nil {
		fields = append(fields, pendingaction.FieldRiskTier)
	}
	if m.created_at != nil {
		fields = append(fields, pendingaction.FieldCreatedAt)
	}
	if m.decided_at != nil {
		fields = append(fields, pendingaction.FieldDecidedAt)
	}
	if m.decided_by != nil {
		fields = append(fields, pendingaction.FieldDecidedBy)
	}
	if m.expires_at != nil {
		fields = append(fields, pendingaction.FieldExpiresAt)
	}
	if m.execution_result != nil {
		fields = append(fields, pendingaction.FieldExecutionResult)
	}
	if m.session_id != nil {
		fields = append(fields, pendingaction.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendingaction.FieldButlerName:
		return m.ButlerName()
	case pendingaction.FieldToolName:
		return m.ToolName()
	case pendingaction.FieldToolArgs:
		return m.ToolArgs()
	case pendingaction.FieldStatus:
		return m.Status()
	case pendingaction.FieldRiskTier:
		return m.RiskTier()
	case pendingaction.FieldCreatedAt:
		return m.CreatedAt()
	case pendingaction.FieldDecidedAt:
		return m.DecidedAt()
	case pendingaction.FieldDecidedBy:
		return m.DecidedBy()
	case pendingaction.FieldExpiresAt:
		return m.ExpiresAt()
	case pendingaction.FieldExecutionResult:
		return m.ExecutionResult()
	case pendingaction.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendingaction.FieldButlerName:
		return m.OldButlerName(ctx)
	case pendingaction.FieldToolName:
		return m.OldToolName(ctx)
	case pendingaction.FieldToolArgs:
		return m.OldToolArgs(ctx)
	case pendingaction.FieldStatus:
		return m.OldStatus(ctx)
	case pendingaction.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case pendingaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pendingaction.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case pendingaction.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case pendingaction.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case pendingaction.FieldExecutionResult:
		return m.OldExecutionResult(ctx)
	case pendingaction.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown PendingAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendingaction.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case pendingaction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case pendingaction.FieldToolArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolArgs(v)
		return nil
	case pendingaction.FieldStatus:
		v, ok := value.(pendingaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendingaction.FieldRiskTier:
		v, ok := value.(pendingaction.RiskTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case pendingaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pendingaction.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case pendingaction.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case pendingaction.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case pendingaction.FieldExecutionResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionResult(v)
		return nil
	case pendingaction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown PendingAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PendingAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendingaction.FieldDecidedAt) {
		fields = append(fields, pendingaction.FieldDecidedAt)
	}
	if m.FieldCleared(pendingaction.FieldDecidedBy) {
		fields = append(fields, pendingaction.FieldDecidedBy)
	}
	if m.FieldCleared(pendingaction.FieldExpiresAt) {
		fields = append(fields, pendingaction.FieldExpiresAt)
	}
	if m.FieldCleared(pendingaction.FieldExecutionResult) {
		fields = append(fields, pendingaction.FieldExecutionResult)
	}
	if m.FieldCleared(pendingaction.FieldSessionID) {
		fields = append(fields, pendingaction.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingActionMutation) ClearField(name string) error {
	switch name {
	case pendingaction.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	case pendingaction.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case pendingaction.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case pendingaction.FieldExecutionResult:
		m.ClearExecutionResult()
		return nil
	case pendingaction.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown PendingAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingActionMutation) ResetField(name string) error {
	switch name {
	case pendingaction.FieldButlerName:
		m.ResetButlerName()
		return nil
	case pendingaction.FieldToolName:
		m.ResetToolName()
		return nil
	case pendingaction.FieldToolArgs:
		m.ResetToolArgs()
		return nil
	case pendingaction.FieldStatus:
		m.ResetStatus()
		return nil
	case pendingaction.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case pendingaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pendingaction.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case pendingaction.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case pendingaction.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case pendingaction.FieldExecutionResult:
		m.ResetExecutionResult()
		return nil
	case pendingaction.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown PendingAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PendingAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PendingAction edge %s", name)
}

// RegistryEntryMutation represents an operation that mutates the RegistryEntry nodes in the graph.
type RegistryEntryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	endpoint_url          *string
	route_contract_min    *int
	addroute_contract_min *int
	route_contract_max    *int
	addroute_contract_max *int
	capabilities          *[]string
	appendcapabilities    []string
	description           *string
	eligibility_state     *registryentry.EligibilityState
	last_heartbeat_at     *time.Time
	liveness_ttl_s        *int
	addliveness_ttl_s     *int
	quarantine_reason     *string
	first_seen_at         *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*RegistryEntry, error)
	predicates            []predicate.RegistryEntry
}

var _ ent.Mutation = (*RegistryEntryMutation)(nil)

// registryentryOption allows management of the mutation configuration using functional options.
type registryentryOption func(*RegistryEntryMutation)

// newRegistryEntryMutation creates new mutation for the RegistryEntry entity.
func newRegistryEntryMutation(c config, op Op, opts ...registryentryOption) *RegistryEntryMutation {
	m := &RegistryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeRegistryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRegistryEntryID sets the ID field of the mutation.
func withRegistryEntryID(id string) registryentryOption {
	return func(m *RegistryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *RegistryEntry
		)
		m.oldValue = func(ctx context.Context) (*RegistryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RegistryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRegistryEntry sets the old RegistryEntry of the mutation.
func withRegistryEntry(node *RegistryEntry) registryentryOption {
	return func(m *RegistryEntryMutation) {
		m.oldValue = func(context.Context) (*RegistryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RegistryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RegistryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RegistryEntry entities.
func (m *RegistryEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RegistryEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RegistryEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RegistryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEndpointURL sets the "endpoint_url" field.
func (m *RegistryEntryMutation) SetEndpointURL(s string) {
	m.endpoint_url = &s
}

// EndpointURL returns the value of the "endpoint_url" field in the mutation.
func (m *RegistryEntryMutation) EndpointURL() (r string, exists bool) {
	v := m.endpoint_url
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointURL returns the old "endpoint_url" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldEndpointURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointURL: %w", err)
	}
	return oldValue.EndpointURL, nil
}

// ResetEndpointURL resets all changes to the "endpoint_url" field.
func (m *RegistryEntryMutation) ResetEndpointURL() {
	m.endpoint_url = nil
}

// SetRouteContractMin sets the "route_contract_min" field.
func (m *RegistryEntryMutation) SetRouteContractMin(i int) {
	m.route_contract_min = &i
	m.addroute_contract_min = nil
}

// RouteContractMin returns the value of the "route_contract_min" field in the mutation.
func (m *RegistryEntryMutation) RouteContractMin() (r int, exists bool) {
	v := m.route_contract_min
	if v == nil {
		return
	}
	return *v, true
}

// OldRouteContractMin returns the old "route_contract_min" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldRouteContractMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRouteContractMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRouteContractMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRouteContractMin: %w", err)
	}
	return oldValue.RouteContractMin, nil
}

// AddRouteContractMin adds i to the "route_contract_min" field.
func (m *RegistryEntryMutation) AddRouteContractMin(i int) {
	if m.addroute_contract_min != nil {
		*m.addroute_contract_min += i
	} else {
		m.addroute_contract_min = &i
	}
}

// AddedRouteContractMin returns the value that was added to the "route_contract_min" field in this mutation.
func (m *RegistryEntryMutation) AddedRouteContractMin() (r int, exists bool) {
	v := m.addroute_contract_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetRouteContractMin resets all changes to the "route_contract_min" field.
func (m *RegistryEntryMutation) ResetRouteContractMin() {
	m.route_contract_min = nil
	m.addroute_contract_min = nil
}

// SetRouteContractMax sets the "route_contract_max" field.
func (m *RegistryEntryMutation) SetRouteContractMax(i int) {
	m.route_contract_max = &i
	m.addroute_contract_max = nil
}

// RouteContractMax returns the value of the "route_contract_max" field in the mutation.
func (m *RegistryEntryMutation) RouteContractMax() (r int, exists bool) {
	v := m.route_contract_max
	if v == nil {
		return
	}
	return *v, true
}

// OldRouteContractMax returns the old "route_contract_max" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldRouteContractMax(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRouteContractMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRouteContractMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRouteContractMax: %w", err)
	}
	return oldValue.RouteContractMax, nil
}

// AddRouteContractMax adds i to the "route_contract_max" field.
func (m *RegistryEntryMutation) AddRouteContractMax(i int) {
	if m.addroute_contract_max != nil {
		*m.addroute_contract_max += i
	} else {
		m.addroute_contract_max = &i
	}
}

// AddedRouteContractMax returns the value that was added to the "route_contract_max" field in this mutation.
func (m *RegistryEntryMutation) AddedRouteContractMax() (r int, exists bool) {
	v := m.addroute_contract_max
	if v == nil {
		return
	}
	return *v, true
}

// ResetRouteContractMax resets all changes to the "route_contract_max" field.
func (m *RegistryEntryMutation) ResetRouteContractMax() {
	m.route_contract_max = nil
	m.addroute_contract_max = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *RegistryEntryMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *RegistryEntryMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *RegistryEntryMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *RegistryEntryMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *RegistryEntryMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[registryentry.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *RegistryEntryMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[registryentry.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *RegistryEntryMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, registryentry.FieldCapabilities)
}

// SetDescription sets the "description" field.
func (m *RegistryEntryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RegistryEntryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RegistryEntryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[registryentry.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RegistryEntryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[registryentry.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RegistryEntryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, registryentry.FieldDescription)
}

// SetEligibilityState sets the "eligibility_state" field.
func (m *RegistryEntryMutation) SetEligibilityState(rs registryentry.EligibilityState) {
	m.eligibility_state = &rs
}

// EligibilityState returns the value of the "eligibility_state" field in the mutation.
func (m *RegistryEntryMutation) EligibilityState() (r registryentry.EligibilityState, exists bool) {
	v := m.eligibility_state
	if v == nil {
		return
	}
	return *v, true
}

// OldEligibilityState returns the old "eligibility_state" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldEligibilityState(ctx context.Context) (v registryentry.EligibilityState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEligibilityState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEligibilityState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEligibilityState: %w", err)
	}
	return oldValue.EligibilityState, nil
}

// ResetEligibilityState resets all changes to the "eligibility_state" field.
func (m *RegistryEntryMutation) ResetEligibilityState() {
	m.eligibility_state = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RegistryEntryMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RegistryEntryMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RegistryEntryMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[registryentry.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RegistryEntryMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[registryentry.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RegistryEntryMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, registryentry.FieldLastHeartbeatAt)
}

// SetLivenessTTLS sets the "liveness_ttl_s" field.
func (m *RegistryEntryMutation) SetLivenessTTLS(i int) {
	m.liveness_ttl_s = &i
	m.addliveness_ttl_s = nil
}

// LivenessTTLS returns the value of the "liveness_ttl_s" field in the mutation.
func (m *RegistryEntryMutation) LivenessTTLS() (r int, exists bool) {
	v := m.liveness_ttl_s
	if v == nil {
		return
	}
	return *v, true
}

// OldLivenessTTLS returns the old "liveness_ttl_s" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldLivenessTTLS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLivenessTTLS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLivenessTTLS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLivenessTTLS: %w", err)
	}
	return oldValue.LivenessTTLS, nil
}

// AddLivenessTTLS adds i to the "liveness_ttl_s" field.
func (m *RegistryEntryMutation) AddLivenessTTLS(i int) {
	if m.addliveness_ttl_s != nil {
		*m.addliveness_ttl_s += i
	} else {
		m.addliveness_ttl_s = &i
	}
}

// AddedLivenessTTLS returns the value that was added to the "liveness_ttl_s" field in this mutation.
func (m *RegistryEntryMutation) AddedLivenessTTLS() (r int, exists bool) {
	v := m.addliveness_ttl_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetLivenessTTLS resets all changes to the "liveness_ttl_s" field.
func (m *RegistryEntryMutation) ResetLivenessTTLS() {
	m.liveness_ttl_s = nil
	m.addliveness_ttl_s = nil
}

// SetQuarantineReason sets the "quarantine_reason" field.
func (m *RegistryEntryMutation) SetQuarantineReason(s string) {
	m.quarantine_reason = &s
}

// QuarantineReason returns the value of the "quarantine_reason" field in the mutation.
func (m *RegistryEntryMutation) QuarantineReason() (r string, exists bool) {
	v := m.quarantine_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldQuarantineReason returns the old "quarantine_reason" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldQuarantineReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuarantineReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuarantineReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuarantineReason: %w", err)
	}
	return oldValue.QuarantineReason, nil
}

// ClearQuarantineReason clears the value of the "quarantine_reason" field.
func (m *RegistryEntryMutation) ClearQuarantineReason() {
	m.quarantine_reason = nil
	m.clearedFields[registryentry.FieldQuarantineReason] = struct{}{}
}

// QuarantineReasonCleared returns if the "quarantine_reason" field was cleared in this mutation.
func (m *RegistryEntryMutation) QuarantineReasonCleared() bool {
	_, ok := m.clearedFields[registryentry.FieldQuarantineReason]
	return ok
}

// ResetQuarantineReason resets all changes to the "quarantine_reason" field.
func (m *RegistryEntryMutation) ResetQuarantineReason() {
	m.quarantine_reason = nil
	delete(m.clearedFields, registryentry.FieldQuarantineReason)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *RegistryEntryMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *RegistryEntryMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *RegistryEntryMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RegistryEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RegistryEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RegistryEntry entity.
// If the RegistryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistryEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RegistryEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RegistryEntryMutation builder.
func (m *RegistryEntryMutation) Where(ps ...predicate.RegistryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RegistryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RegistryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RegistryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RegistryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RegistryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RegistryEntry).
func (m *RegistryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RegistryEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.endpoint_url != nil {
		fields = append(fields, registryentry.FieldEndpointURL)
	}
	if m.route_contract_min != nil {
		fields = append(fields, registryentry.FieldRouteContractMin)
	}
	if m.route_contract_max != nil {
		fields = append(fields, registryentry.FieldRouteContractMax)
	}
	if m.capabilities != nil {
		fields = append(fields, registryentry.FieldCapabilities)
	}
	if m.description != nil {
		fields = append(fields, registryentry.FieldDescription)
	}
	if m.eligibility_state != nil {
		fields = append(fields, registryentry.FieldEligibilityState)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, registryentry.FieldLastHeartbeatAt)
	}
	if m.liveness_ttl_s != nil {
		fields = append(fields, registryentry.FieldLivenessTTLS)
	}
	if m.quarantine_reason != nil {
		fields = append(fields, registryentry.FieldQuarantineReason)
	}
	if m.first_seen_at != nil {
		fields = append(fields, registryentry.FieldFirstSeenAt)
	}
	if m.updated_at != nil {
		fields = append(fields, registryentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RegistryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case registryentry.FieldEndpointURL:
		return m.EndpointURL()
	case registryentry.FieldRouteContractMin:
		return m.RouteContractMin()
	case registryentry.FieldRouteContractMax:
		return m.RouteContractMax()
	case registryentry.FieldCapabilities:
		return m.Capabilities()
	case registryentry.FieldDescription:
		return m.Description()
	case registryentry.FieldEligibilityState:
		return m.EligibilityState()
	case registryentry.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case registryentry.FieldLivenessTTLS:
		return m.LivenessTTLS()
	case registryentry.FieldQuarantineReason:
		return m.QuarantineReason()
	case registryentry.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case registryentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RegistryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case registryentry.FieldEndpointURL:
		return m.OldEndpointURL(ctx)
	case registryentry.FieldRouteContractMin:
		return m.OldRouteContractMin(ctx)
	case registryentry.FieldRouteContractMax:
		return m.OldRouteContractMax(ctx)
	case registryentry.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case registryentry.FieldDescription:
		return m.OldDescription(ctx)
	case registryentry.FieldEligibilityState:
		return m.OldEligibilityState(ctx)
	case registryentry.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case registryentry.FieldLivenessTTLS:
		return m.OldLivenessTTLS(ctx)
	case registryentry.FieldQuarantineReason:
		return m.OldQuarantineReason(ctx)
	case registryentry.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case registryentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RegistryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegistryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case registryentry.FieldEndpointURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointURL(v)
		return nil
	case registryentry.FieldRouteContractMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRouteContractMin(v)
		return nil
	case registryentry.FieldRouteContractMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRouteContractMax(v)
		return nil
	case registryentry.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case registryentry.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case registryentry.FieldEligibilityState:
		v, ok := value.(registryentry.EligibilityState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEligibilityState(v)
		return nil
	case registryentry.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case registryentry.FieldLivenessTTLS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLivenessTTLS(v)
		return nil
	case registryentry.FieldQuarantineReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuarantineReason(v)
		return nil
	case registryentry.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case registryentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RegistryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RegistryEntryMutation) AddedFields() []string {
	var fields []string
	if m.addroute_contract_min != nil {
		fields = append(fields, registryentry.FieldRouteContractMin)
	}
	if m.addroute_contract_max != nil {
		fields = append(fields, registryentry.FieldRouteContractMax)
	}
	if m.addliveness_ttl_s != nil {
		fields = append(fields, registryentry.FieldLivenessTTLS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RegistryEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case registryentry.FieldRouteContractMin:
		return m.AddedRouteContractMin()
	case registryentry.FieldRouteContractMax:
		return m.AddedRouteContractMax()
	case registryentry.FieldLivenessTTLS:
		return m.AddedLivenessTTLS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegistryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case registryentry.FieldRouteContractMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRouteContractMin(v)
		return nil
	case registryentry.FieldRouteContractMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRouteContractMax(v)
		return nil
	case registryentry.FieldLivenessTTLS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLivenessTTLS(v)
		return nil
	}
	return fmt.Errorf("unknown RegistryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RegistryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(registryentry.FieldCapabilities) {
		fields = append(fields, registryentry.FieldCapabilities)
	}
	if m.FieldCleared(registryentry.FieldDescription) {
		fields = append(fields, registryentry.FieldDescription)
	}
	if m.FieldCleared(registryentry.FieldLastHeartbeatAt) {
		fields = append(fields, registryentry.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(registryentry.FieldQuarantineReason) {
		fields = append(fields, registryentry.FieldQuarantineReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RegistryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RegistryEntryMutation) ClearField(name string) error {
	switch name {
	case registryentry.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case registryentry.FieldDescription:
		m.ClearDescription()
		return nil
	case registryentry.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case registryentry.FieldQuarantineReason:
		m.ClearQuarantineReason()
		return nil
	}
	return fmt.Errorf("unknown RegistryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RegistryEntryMutation) ResetField(name string) error {
	switch name {
	case registryentry.FieldEndpointURL:
		m.ResetEndpointURL()
		return nil
	case registryentry.FieldRouteContractMin:
		m.ResetRouteContractMin()
		return nil
	case registryentry.FieldRouteContractMax:
		m.ResetRouteContractMax()
		return nil
	case registryentry.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case registryentry.FieldDescription:
		m.ResetDescription()
		return nil
	case registryentry.FieldEligibilityState:
		m.ResetEligibilityState()
		return nil
	case registryentry.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case registryentry.FieldLivenessTTLS:
		m.ResetLivenessTTLS()
		return nil
	case registryentry.FieldQuarantineReason:
		m.ResetQuarantineReason()
		return nil
	case registryentry.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case registryentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RegistryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RegistryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RegistryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RegistryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RegistryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RegistryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RegistryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RegistryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RegistryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RegistryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RegistryEntry edge %s", name)
}

// ScheduledTaskMutation represents an operation that mutates the ScheduledTask nodes in the graph.
type ScheduledTaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	butler_name   *string
	name          *string
	cron          *string
	dispatch_mode *scheduledtask.DispatchMode
	prompt        *string
	job_name      *string
	job_args      *map[string]interface{}
	enabled       *bool
	due_at        *time.Time
	last_run_at   *time.Time
	next_run_at   *time.Time
	last_status   *string
	last_error    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ScheduledTask, error)
	predicates    []predicate.ScheduledTask
}

var _ ent.Mutation = (*ScheduledTaskMutation)(nil)

// scheduledtaskOption allows management of the mutation configuration using functional options.
type scheduledtaskOption func(*ScheduledTaskMutation)

// newScheduledTaskMutation creates new mutation for the ScheduledTask entity.
func newScheduledTaskMutation(c config, op Op, opts ...scheduledtaskOption) *ScheduledTaskMutation {
	m := &ScheduledTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledTaskID sets the ID field of the mutation.
func withScheduledTaskID(id string) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledTask
		)
		m.oldValue = func(ctx context.Context) (*ScheduledTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledTask sets the old ScheduledTask of the mutation.
func withScheduledTask(node *ScheduledTask) scheduledtaskOption {
	return func(m *ScheduledTaskMutation) {
		m.oldValue = func(context.Context) (*ScheduledTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledTask entities.
func (m *ScheduledTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButlerName sets the "butler_name" field.
func (m *ScheduledTaskMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *ScheduledTaskMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *ScheduledTaskMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetName sets the "name" field.
func (m *ScheduledTaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScheduledTaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScheduledTaskMutation) ResetName() {
	m.name = nil
}

// SetCron sets the "cron" field.
func (m *ScheduledTaskMutation) SetCron(s string) {
	m.cron = &s
}

// Cron returns the value of the "cron" field in the mutation.
func (m *ScheduledTaskMutation) Cron() (r string, exists bool) {
	v := m.cron
	if v == nil {
		return
	}
	return *v, true
}

// OldCron returns the old "cron" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldCron(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCron is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCron requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCron: %w", err)
	}
	return oldValue.Cron, nil
}

// ResetCron resets all changes to the "cron" field.
func (m *ScheduledTaskMutation) ResetCron() {
	m.cron = nil
}

// SetDispatchMode sets the "dispatch_mode" field.
func (m *ScheduledTaskMutation) SetDispatchMode(sm scheduledtask.DispatchMode) {
	m.dispatch_mode = &sm
}

// DispatchMode returns the value of the "dispatch_mode" field in the mutation.
func (m *ScheduledTaskMutation) DispatchMode() (r scheduledtask.DispatchMode, exists bool) {
	v := m.dispatch_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchMode returns the old "dispatch_mode" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldDispatchMode(ctx context.Context) (v scheduledtask.DispatchMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchMode: %w", err)
	}
	return oldValue.DispatchMode, nil
}

// ResetDispatchMode resets all changes to the "dispatch_mode" field.
func (m *ScheduledTaskMutation) ResetDispatchMode() {
	m.dispatch_mode = nil
}

// SetPrompt sets the "prompt" field.
func (m *ScheduledTaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ScheduledTaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *ScheduledTaskMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[scheduledtask.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *ScheduledTaskMutation) PromptCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ScheduledTaskMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, scheduledtask.FieldPrompt)
}

// SetJobName sets the "job_name" field.
func (m *ScheduledTaskMutation) SetJobName(s string) {
	m.job_name = &s
}

// JobName returns the value of the "job_name" field in the mutation.
func (m *ScheduledTaskMutation) JobName() (r string, exists bool) {
	v := m.job_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJobName returns the old "job_name" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldJobName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobName: %w", err)
	}
	return oldValue.JobName, nil
}

// ClearJobName clears the value of the "job_name" field.
func (m *ScheduledTaskMutation) ClearJobName() {
	m.job_name = nil
	m.clearedFields[scheduledtask.FieldJobName] = struct{}{}
}

// JobNameCleared returns if the "job_name" field was cleared in this mutation.
func (m *ScheduledTaskMutation) JobNameCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldJobName]
	return ok
}

// ResetJobName resets all changes to the "job_name" field.
func (m *ScheduledTaskMutation) ResetJobName() {
	m.job_name = nil
	delete(m.clearedFields, scheduledtask.FieldJobName)
}

// SetJobArgs sets the "job_args" field.
func (m *ScheduledTaskMutation) SetJobArgs(value map[string]interface{}) {
	m.job_args = &value
}

// JobArgs returns the value of the "job_args" field in the mutation.
func (m *ScheduledTaskMutation) JobArgs() (r map[string]interface{}, exists bool) {
	v := m.job_args
	if v == nil {
		return
	}
	return *v, true
}

// OldJobArgs returns the old "job_args" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldJobArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobArgs: %w", err)
	}
	return oldValue.JobArgs, nil
}

// ClearJobArgs clears the value of the "job_args" field.
func (m *ScheduledTaskMutation) ClearJobArgs() {
	m.job_args = nil
	m.clearedFields[scheduledtask.FieldJobArgs] = struct{}{}
}

// JobArgsCleared returns if the "job_args" field was cleared in this mutation.
func (m *ScheduledTaskMutation) JobArgsCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldJobArgs]
	return ok
}

// ResetJobArgs resets all changes to the "job_args" field.
func (m *ScheduledTaskMutation) ResetJobArgs() {
	m.job_args = nil
	delete(m.clearedFields, scheduledtask.FieldJobArgs)
}

// SetEnabled sets the "enabled" field.
func (m *ScheduledTaskMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduledTaskMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduledTaskMutation) ResetEnabled() {
	m.enabled = nil
}

// SetDueAt sets the "due_at" field.
func (m *ScheduledTaskMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *ScheduledTaskMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldDueAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ClearDueAt clears the value of the "due_at" field.
func (m *ScheduledTaskMutation) ClearDueAt() {
	m.due_at = nil
	m.clearedFields[scheduledtask.FieldDueAt] = struct{}{}
}

// DueAtCleared returns if the "due_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) DueAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldDueAt]
	return ok
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *ScheduledTaskMutation) ResetDueAt() {
	m.due_at = nil
	delete(m.clearedFields, scheduledtask.FieldDueAt)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScheduledTaskMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScheduledTaskMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ScheduledTaskMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[scheduledtask.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScheduledTaskMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, scheduledtask.FieldLastRunAt)
}

// SetNextRunAt sets the "next_run_at" field.
func (m *ScheduledTaskMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *ScheduledTaskMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *ScheduledTaskMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[scheduledtask.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *ScheduledTaskMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *ScheduledTaskMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, scheduledtask.FieldNextRunAt)
}

// SetLastStatus sets the "last_status" field.
func (m *ScheduledTaskMutation) SetLastStatus(s string) {
	m.last_status = &s
}

// LastStatus returns the value of the "last_status" field in the mutation.
func (m *ScheduledTaskMutation) LastStatus() (r string, exists bool) {
	v := m.last_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStatus returns the old "last_status" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldLastStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStatus: %w", err)
	}
	return oldValue.LastStatus, nil
}

// ClearLastStatus clears the value of the "last_status" field.
func (m *ScheduledTaskMutation) ClearLastStatus() {
	m.last_status = nil
	m.clearedFields[scheduledtask.FieldLastStatus] = struct{}{}
}

// LastStatusCleared returns if the "last_status" field was cleared in this mutation.
func (m *ScheduledTaskMutation) LastStatusCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldLastStatus]
	return ok
}

// ResetLastStatus resets all changes to the "last_status" field.
func (m *ScheduledTaskMutation) ResetLastStatus() {
	m.last_status = nil
	delete(m.clearedFields, scheduledtask.FieldLastStatus)
}

// SetLastError sets the "last_error" field.
func (m *ScheduledTaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ScheduledTaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ScheduledTaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[scheduledtask.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ScheduledTaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[scheduledtask.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ScheduledTaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, scheduledtask.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledTask entity.
// If the ScheduledTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ScheduledTaskMutation builder.
func (m *ScheduledTaskMutation) Where(ps ...predicate.ScheduledTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledTask).
func (m *ScheduledTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledTaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.butler_name != nil {
		fields = append(fields, scheduledtask.FieldButlerName)
	}
	if m.name != nil {
		fields = append(fields, scheduledtask.FieldName)
	}
	if m.cron != nil {
		fields = append(fields, scheduledtask.FieldCron)
	}
	if m.dispatch_mode != nil {
		fields = append(fields, scheduledtask.FieldDispatchMode)
	}
	if m.prompt != nil {
		fields = append(fields, scheduledtask.FieldPrompt)
	}
	if m.job_name != nil {
		fields = append(fields, scheduledtask.FieldJobName)
	}
	if m.job_args != nil {
		fields = append(fields, scheduledtask.FieldJobArgs)
	}
	if m.enabled != nil {
		fields = append(fields, scheduledtask.FieldEnabled)
	}
	if m.due_at != nil {
		fields = append(fields, scheduledtask.FieldDueAt)
	}
	if m.last_run_at != nil {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.next_run_at != nil {
		fields = append(fields, scheduledtask.FieldNextRunAt)
	}
	if m.last_status != nil {
		fields = append(fields, scheduledtask.FieldLastStatus)
	}
	if m.last_error != nil {
		fields = append(fields, scheduledtask.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledtask.FieldButlerName:
		return m.ButlerName()
	case scheduledtask.FieldName:
		return m.Name()
	case scheduledtask.FieldCron:
		return m.Cron()
	case scheduledtask.FieldDispatchMode:
		return m.DispatchMode()
	case scheduledtask.FieldPrompt:
		return m.Prompt()
	case scheduledtask.FieldJobName:
		return m.JobName()
	case scheduledtask.FieldJobArgs:
		return m.JobArgs()
	case scheduledtask.FieldEnabled:
		return m.Enabled()
	case scheduledtask.FieldDueAt:
		return m.DueAt()
	case scheduledtask.FieldLastRunAt:
		return m.LastRunAt()
	case scheduledtask.FieldNextRunAt:
		return m.NextRunAt()
	case scheduledtask.FieldLastStatus:
		return m.LastStatus()
	case scheduledtask.FieldLastError:
		return m.LastError()
	case scheduledtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledtask.FieldButlerName:
		return m.OldButlerName(ctx)
	case scheduledtask.FieldName:
		return m.OldName(ctx)
	case scheduledtask.FieldCron:
		return m.OldCron(ctx)
	case scheduledtask.FieldDispatchMode:
		return m.OldDispatchMode(ctx)
	case scheduledtask.FieldPrompt:
		return m.OldPrompt(ctx)
	case scheduledtask.FieldJobName:
		return m.OldJobName(ctx)
	case scheduledtask.FieldJobArgs:
		return m.OldJobArgs(ctx)
	case scheduledtask.FieldEnabled:
		return m.OldEnabled(ctx)
	case scheduledtask.FieldDueAt:
		return m.OldDueAt(ctx)
	case scheduledtask.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case scheduledtask.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case scheduledtask.FieldLastStatus:
		return m.OldLastStatus(ctx)
	case scheduledtask.FieldLastError:
		return m.OldLastError(ctx)
	case scheduledtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledtask.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case scheduledtask.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scheduledtask.FieldCron:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCron(v)
		return nil
	case scheduledtask.FieldDispatchMode:
		v, ok := value.(scheduledtask.DispatchMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchMode(v)
		return nil
	case scheduledtask.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case scheduledtask.FieldJobName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobName(v)
		return nil
	case scheduledtask.FieldJobArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobArgs(v)
		return nil
	case scheduledtask.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case scheduledtask.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case scheduledtask.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case scheduledtask.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case scheduledtask.FieldLastStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStatus(v)
		return nil
	case scheduledtask.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case scheduledtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledtask.FieldPrompt) {
		fields = append(fields, scheduledtask.FieldPrompt)
	}
	if m.FieldCleared(scheduledtask.FieldJobName) {
		fields = append(fields, scheduledtask.FieldJobName)
	}
	if m.FieldCleared(scheduledtask.FieldJobArgs) {
		fields = append(fields, scheduledtask.FieldJobArgs)
	}
	if m.FieldCleared(scheduledtask.FieldDueAt) {
		fields = append(fields, scheduledtask.FieldDueAt)
	}
	if m.FieldCleared(scheduledtask.FieldLastRunAt) {
		fields = append(fields, scheduledtask.FieldLastRunAt)
	}
	if m.FieldCleared(scheduledtask.FieldNextRunAt) {
		fields = append(fields, scheduledtask.FieldNextRunAt)
	}
	if m.FieldCleared(scheduledtask.FieldLastStatus) {
		fields = append(fields, scheduledtask.FieldLastStatus)
	}
	if m.FieldCleared(scheduledtask.FieldLastError) {
		fields = append(fields, scheduledtask.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ClearField(name string) error {
	switch name {
	case scheduledtask.FieldPrompt:
		m.ClearPrompt()
		return nil
	case scheduledtask.FieldJobName:
		m.ClearJobName()
		return nil
	case scheduledtask.FieldJobArgs:
		m.ClearJobArgs()
		return nil
	case scheduledtask.FieldDueAt:
		m.ClearDueAt()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case scheduledtask.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	case scheduledtask.FieldLastStatus:
		m.ClearLastStatus()
		return nil
	case scheduledtask.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledTaskMutation) ResetField(name string) error {
	switch name {
	case scheduledtask.FieldButlerName:
		m.ResetButlerName()
		return nil
	case scheduledtask.FieldName:
		m.ResetName()
		return nil
	case scheduledtask.FieldCron:
		m.ResetCron()
		return nil
	case scheduledtask.FieldDispatchMode:
		m.ResetDispatchMode()
		return nil
	case scheduledtask.FieldPrompt:
		m.ResetPrompt()
		return nil
	case scheduledtask.FieldJobName:
		m.ResetJobName()
		return nil
	case scheduledtask.FieldJobArgs:
		m.ResetJobArgs()
		return nil
	case scheduledtask.FieldEnabled:
		m.ResetEnabled()
		return nil
	case scheduledtask.FieldDueAt:
		m.ResetDueAt()
		return nil
	case scheduledtask.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case scheduledtask.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case scheduledtask.FieldLastStatus:
		m.ResetLastStatus()
		return nil
	case scheduledtask.FieldLastError:
		m.ResetLastError()
		return nil
	case scheduledtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledTask edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	butler_name       *string
	trigger_source    *session.TriggerSource
	prompt            *string
	model             *string
	status            *session.Status
	created_at        *time.Time
	completed_at      *time.Time
	duration_ms       *int64
	addduration_ms    *int64
	tool_calls        *[]map[string]interface{}
	appendtool_calls  []map[string]interface{}
	input_tokens      *int
	addinput_tokens   *int
	output_tokens     *int
	addoutput_tokens  *int
	trace_id          *string
	output            *string
	error_message     *string
	parent_session_id *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Session, error)
	predicates        []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButlerName sets the "butler_name" field.
func (m *SessionMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *SessionMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *SessionMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetTriggerSource sets the "trigger_source" field.
func (m *SessionMutation) SetTriggerSource(ss session.TriggerSource) {
	m.trigger_source = &ss
}

// TriggerSource returns the value of the "trigger_source" field in the mutation.
func (m *SessionMutation) TriggerSource() (r session.TriggerSource, exists bool) {
	v := m.trigger_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerSource returns the old "trigger_source" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTriggerSource(ctx context.Context) (v session.TriggerSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerSource: %w", err)
	}
	return oldValue.TriggerSource, nil
}

// ResetTriggerSource resets all changes to the "trigger_source" field.
func (m *SessionMutation) ResetTriggerSource() {
	m.trigger_source = nil
}

// SetPrompt sets the "prompt" field.
func (m *SessionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *SessionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *SessionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetModel sets the "model" field.
func (m *SessionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SessionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *SessionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[session.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *SessionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[session.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *SessionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, session.FieldModel)
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *SessionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *SessionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *SessionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *SessionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *SessionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[session.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *SessionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[session.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *SessionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, session.FieldDurationMs)
}

// SetToolCalls sets the "tool_calls" field.
func (m *SessionMutation) SetToolCalls(value []map[string]interface{}) {
	m.tool_calls = &value
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *SessionMutation) ToolCalls() (r []map[string]interface{}, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldToolCalls(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds value to the "tool_calls" field.
func (m *SessionMutation) AppendToolCalls(value []map[string]interface{}) {
	m.appendtool_calls = append(m.appendtool_calls, value...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *SessionMutation) AppendedToolCalls() ([]map[string]interface{}, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *SessionMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[session.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *SessionMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[session.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *SessionMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, session.FieldToolCalls)
}

// SetInputTokens sets the "input_tokens" field.
func (m *SessionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *SessionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *SessionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *SessionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *SessionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *SessionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *SessionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *SessionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *SessionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *SessionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTraceID sets the "trace_id" field.
func (m *SessionMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *SessionMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *SessionMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[session.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *SessionMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[session.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *SessionMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, session.FieldTraceID)
}

// SetOutput sets the "output" field.
func (m *SessionMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *SessionMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *SessionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[session.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *SessionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[session.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *SessionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, session.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *SessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[session.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[session.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, session.FieldErrorMessage)
}

// SetParentSessionID sets the "parent_session_id" field.
func (m *SessionMutation) SetParentSessionID(s string) {
	m.parent_session_id = &s
}

// ParentSessionID returns the value of the "parent_session_id" field in the mutation.
func (m *SessionMutation) ParentSessionID() (r string, exists bool) {
	v := m.parent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSessionID returns the old "parent_session_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldParentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSessionID: %w", err)
	}
	return oldValue.ParentSessionID, nil
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (m *SessionMutation) ClearParentSessionID() {
	m.parent_session_id = nil
	m.clearedFields[session.FieldParentSessionID] = struct{}{}
}

// ParentSessionIDCleared returns if the "parent_session_id" field was cleared in this mutation.
func (m *SessionMutation) ParentSessionIDCleared() bool {
	_, ok := m.clearedFields[session.FieldParentSessionID]
	return ok
}

// ResetParentSessionID resets all changes to the "parent_session_id" field.
func (m *SessionMutation) ResetParentSessionID() {
	m.parent_session_id = nil
	delete(m.clearedFields, session.FieldParentSessionID)
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.butler_name != nil {
		fields = append(fields, session.FieldButlerName)
	}
	if m.trigger_source != nil {
		fields = append(fields, session.FieldTriggerSource)
	}
	if m.prompt != nil {
		fields = append(fields, session.FieldPrompt)
	}
	if m.model != nil {
		fields = append(fields, session.FieldModel)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, session.FieldDurationMs)
	}
	if m.tool_calls != nil {
		fields = append(fields, session.FieldToolCalls)
	}
	if m.input_tokens != nil {
		fields = append(fields, session.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, session.FieldOutputTokens)
	}
	if m.trace_id != nil {
		fields = append(fields, session.FieldTraceID)
	}
	if m.output != nil {
		fields = append(fields, session.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.parent_session_id != nil {
		fields = append(fields, session.FieldParentSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldButlerName:
		return m.ButlerName()
	case session.FieldTriggerSource:
		return m.TriggerSource()
	case session.FieldPrompt:
		return m.Prompt()
	case session.FieldModel:
		return m.Model()
	case session.FieldStatus:
		return m.Status()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	case session.FieldDurationMs:
		return m.DurationMs()
	case session.FieldToolCalls:
		return m.ToolCalls()
	case session.FieldInputTokens:
		return m.InputTokens()
	case session.FieldOutputTokens:
		return m.OutputTokens()
	case session.FieldTraceID:
		return m.TraceID()
	case session.FieldOutput:
		return m.Output()
	case session.FieldErrorMessage:
		return m.ErrorMessage()
	case session.FieldParentSessionID:
		return m.ParentSessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldButlerName:
		return m.OldButlerName(ctx)
	case session.FieldTriggerSource:
		return m.OldTriggerSource(ctx)
	case session.FieldPrompt:
		return m.OldPrompt(ctx)
	case session.FieldModel:
		return m.OldModel(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case session.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case session.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case session.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case session.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case session.FieldTraceID:
		return m.OldTraceID(ctx)
	case session.FieldOutput:
		return m.OldOutput(ctx)
	case session.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case session.FieldParentSessionID:
		return m.OldParentSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case session.FieldTriggerSource:
		v, ok := value.(session.TriggerSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerSource(v)
		return nil
	case session.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case session.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case session.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case session.FieldToolCalls:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case session.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case session.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case session.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case session.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case session.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case session.FieldParentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, session.FieldDurationMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, session.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, session.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldDurationMs:
		return m.AddedDurationMs()
	case session.FieldInputTokens:
		return m.AddedInputTokens()
	case session.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case session.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case session.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldModel) {
		fields = append(fields, session.FieldModel)
	}
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	if m.FieldCleared(session.FieldDurationMs) {
		fields = append(fields, session.FieldDurationMs)
	}
	if m.FieldCleared(session.FieldToolCalls) {
		fields = append(fields, session.FieldToolCalls)
	}
	if m.FieldCleared(session.FieldTraceID) {
		fields = append(fields, session.FieldTraceID)
	}
	if m.FieldCleared(session.FieldOutput) {
		fields = append(fields, session.FieldOutput)
	}
	if m.FieldCleared(session.FieldErrorMessage) {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.FieldCleared(session.FieldParentSessionID) {
		fields = append(fields, session.FieldParentSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldModel:
		m.ClearModel()
		return nil
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case session.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case session.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case session.FieldTraceID:
		m.ClearTraceID()
		return nil
	case session.FieldOutput:
		m.ClearOutput()
		return nil
	case session.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case session.FieldParentSessionID:
		m.ClearParentSessionID()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldButlerName:
		m.ResetButlerName()
		return nil
	case session.FieldTriggerSource:
		m.ResetTriggerSource()
		return nil
	case session.FieldPrompt:
		m.ResetPrompt()
		return nil
	case session.FieldModel:
		m.ResetModel()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case session.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case session.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case session.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case session.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case session.FieldTraceID:
		m.ResetTraceID()
		return nil
	case session.FieldOutput:
		m.ResetOutput()
		return nil
	case session.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case session.FieldParentSessionID:
		m.ResetParentSessionID()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// StateEntryMutation represents an operation that mutates the StateEntry nodes in the graph.
type StateEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	butler_name   *string
	key           *string
	value         *map[string]interface{}
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StateEntry, error)
	predicates    []predicate.StateEntry
}

var _ ent.Mutation = (*StateEntryMutation)(nil)

// stateentryOption allows management of the mutation configuration using functional options.
type stateentryOption func(*StateEntryMutation)

// newStateEntryMutation creates new mutation for the StateEntry entity.
func newStateEntryMutation(c config, op Op, opts ...stateentryOption) *StateEntryMutation {
	m := &StateEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeStateEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStateEntryID sets the ID field of the mutation.
func withStateEntryID(id string) stateentryOption {
	return func(m *StateEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *StateEntry
		)
		m.oldValue = func(ctx context.Context) (*StateEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StateEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStateEntry sets the old StateEntry of the mutation.
func withStateEntry(node *StateEntry) stateentryOption {
	return func(m *StateEntryMutation) {
		m.oldValue = func(context.Context) (*StateEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StateEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StateEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StateEntry entities.
func (m *StateEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StateEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StateEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StateEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetButlerName sets the "butler_name" field.
func (m *StateEntryMutation) SetButlerName(s string) {
	m.butler_name = &s
}

// ButlerName returns the value of the "butler_name" field in the mutation.
func (m *StateEntryMutation) ButlerName() (r string, exists bool) {
	v := m.butler_name
	if v == nil {
		return
	}
	return *v, true
}

// OldButlerName returns the old "butler_name" field's value of the StateEntry entity.
// If the StateEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateEntryMutation) OldButlerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldButlerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldButlerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldButlerName: %w", err)
	}
	return oldValue.ButlerName, nil
}

// ResetButlerName resets all changes to the "butler_name" field.
func (m *StateEntryMutation) ResetButlerName() {
	m.butler_name = nil
}

// SetKey sets the "key" field.
func (m *StateEntryMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *StateEntryMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the StateEntry entity.
// If the StateEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateEntryMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *StateEntryMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *StateEntryMutation) SetValue(value map[string]interface{}) {
	m.value = &value
}

// Value returns the value of the "value" field in the mutation.
func (m *StateEntryMutation) Value() (r map[string]interface{}, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the StateEntry entity.
// If the StateEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateEntryMutation) OldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *StateEntryMutation) ClearValue() {
	m.value = nil
	m.clearedFields[stateentry.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *StateEntryMutation) ValueCleared() bool {
	_, ok := m.clearedFields[stateentry.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *StateEntryMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, stateentry.FieldValue)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StateEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StateEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StateEntry entity.
// If the StateEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StateEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StateEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StateEntryMutation builder.
func (m *StateEntryMutation) Where(ps ...predicate.StateEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StateEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StateEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StateEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StateEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StateEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StateEntry).
func (m *StateEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StateEntryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.butler_name != nil {
		fields = append(fields, stateentry.FieldButlerName)
	}
	if m.key != nil {
		fields = append(fields, stateentry.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, stateentry.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, stateentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StateEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stateentry.FieldButlerName:
		return m.ButlerName()
	case stateentry.FieldKey:
		return m.Key()
	case stateentry.FieldValue:
		return m.Value()
	case stateentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StateEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stateentry.FieldButlerName:
		return m.OldButlerName(ctx)
	case stateentry.FieldKey:
		return m.OldKey(ctx)
	case stateentry.FieldValue:
		return m.OldValue(ctx)
	case stateentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StateEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stateentry.FieldButlerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetButlerName(v)
		return nil
	case stateentry.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case stateentry.FieldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case stateentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StateEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StateEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StateEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StateEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StateEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StateEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stateentry.FieldValue) {
		fields = append(fields, stateentry.FieldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StateEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StateEntryMutation) ClearField(name string) error {
	switch name {
	case stateentry.FieldValue:
		m.ClearValue()
		return nil
	}
	return fmt.Errorf("unknown StateEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StateEntryMutation) ResetField(name string) error {
	switch name {
	case stateentry.FieldButlerName:
		m.ResetButlerName()
		return nil
	case stateentry.FieldKey:
		m.ResetKey()
		return nil
	case stateentry.FieldValue:
		m.ResetValue()
		return nil
	case stateentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StateEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StateEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StateEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StateEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StateEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StateEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StateEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StateEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StateEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StateEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StateEntry edge %s", name)
}
