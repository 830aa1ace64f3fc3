// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/homekeep/butlerd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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
	"github.com/homekeep/butlerd/ent/registryentry"
	"github.com/homekeep/butlerd/ent/scheduledtask"
	"github.com/homekeep/butlerd/ent/session"
	"github.com/homekeep/butlerd/ent/stateentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalEvent is the client for interacting with the ApprovalEvent builders.
	ApprovalEvent *ApprovalEventClient
	// ApprovalRule is the client for interacting with the ApprovalRule builders.
	ApprovalRule *ApprovalRuleClient
	// ButlerSecret is the client for interacting with the ButlerSecret builders.
	ButlerSecret *ButlerSecretClient
	// ConnectorEndpoint is the client for interacting with the ConnectorEndpoint builders.
	ConnectorEndpoint *ConnectorEndpointClient
	// ConnectorHeartbeat is the client for interacting with the ConnectorHeartbeat builders.
	ConnectorHeartbeat *ConnectorHeartbeatClient
	// EligibilityLog is the client for interacting with the EligibilityLog builders.
	EligibilityLog *EligibilityLogClient
	// FanoutExecution is the client for interacting with the FanoutExecution builders.
	FanoutExecution *FanoutExecutionClient
	// IngressItem is the client for interacting with the IngressItem builders.
	IngressItem *IngressItemClient
	// MessageInbox is the client for interacting with the MessageInbox builders.
	MessageInbox *MessageInboxClient
	// PendingAction is the client for interacting with the PendingAction builders.
	PendingAction *PendingActionClient
	// RegistryEntry is the client for interacting with the RegistryEntry builders.
	RegistryEntry *RegistryEntryClient
	// ScheduledTask is the client for interacting with the ScheduledTask builders.
	ScheduledTask *ScheduledTaskClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// StateEntry is the client for interacting with the StateEntry builders.
	StateEntry *StateEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalEvent = NewApprovalEventClient(c.config)
	c.ApprovalRule = NewApprovalRuleClient(c.config)
	c.ButlerSecret = NewButlerSecretClient(c.config)
	c.ConnectorEndpoint = NewConnectorEndpointClient(c.config)
	c.ConnectorHeartbeat = NewConnectorHeartbeatClient(c.config)
	c.EligibilityLog = NewEligibilityLogClient(c.config)
	c.FanoutExecution = NewFanoutExecutionClient(c.config)
	c.IngressItem = NewIngressItemClient(c.config)
	c.MessageInbox = NewMessageInboxClient(c.config)
	c.PendingAction = NewPendingActionClient(c.config)
	c.RegistryEntry = NewRegistryEntryClient(c.config)
	c.ScheduledTask = NewScheduledTaskClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.StateEntry = NewStateEntryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ApprovalEvent:      NewApprovalEventClient(cfg),
		ApprovalRule:       NewApprovalRuleClient(cfg),
		ButlerSecret:       NewButlerSecretClient(cfg),
		ConnectorEndpoint:  NewConnectorEndpointClient(cfg),
		ConnectorHeartbeat: NewConnectorHeartbeatClient(cfg),
		EligibilityLog:     NewEligibilityLogClient(cfg),
		FanoutExecution:    NewFanoutExecutionClient(cfg),
		IngressItem:        NewIngressItemClient(cfg),
		MessageInbox:       NewMessageInboxClient(cfg),
		PendingAction:      NewPendingActionClient(cfg),
		RegistryEntry:      NewRegistryEntryClient(cfg),
		ScheduledTask:      NewScheduledTaskClient(cfg),
		Session:            NewSessionClient(cfg),
		StateEntry:         NewStateEntryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ApprovalEvent:      NewApprovalEventClient(cfg),
		ApprovalRule:       NewApprovalRuleClient(cfg),
		ButlerSecret:       NewButlerSecretClient(cfg),
		ConnectorEndpoint:  NewConnectorEndpointClient(cfg),
		ConnectorHeartbeat: NewConnectorHeartbeatClient(cfg),
		EligibilityLog:     NewEligibilityLogClient(cfg),
		FanoutExecution:    NewFanoutExecutionClient(cfg),
		IngressItem:        NewIngressItemClient(cfg),
		MessageInbox:       NewMessageInboxClient(cfg),
		PendingAction:      NewPendingActionClient(cfg),
		RegistryEntry:      NewRegistryEntryClient(cfg),
		ScheduledTask:      NewScheduledTaskClient(cfg),
		Session:            NewSessionClient(cfg),
		StateEntry:         NewStateEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ApprovalEvent, c.ApprovalRule, c.ButlerSecret, c.ConnectorEndpoint,
		c.ConnectorHeartbeat, c.EligibilityLog, c.FanoutExecution, c.IngressItem,
		c.MessageInbox, c.PendingAction, c.RegistryEntry, c.ScheduledTask, c.Session,
		c.StateEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApprovalEvent, c.ApprovalRule, c.ButlerSecret, c.ConnectorEndpoint,
		c.ConnectorHeartbeat, c.EligibilityLog, c.FanoutExecution, c.IngressItem,
		c.MessageInbox, c.PendingAction, c.RegistryEntry, c.ScheduledTask, c.Session,
		c.StateEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalEventMutation:
		return c.ApprovalEvent.mutate(ctx, m)
	case *ApprovalRuleMutation:
		return c.ApprovalRule.mutate(ctx, m)
	case *ButlerSecretMutation:
		return c.ButlerSecret.mutate(ctx, m)
	case *ConnectorEndpointMutation:
		return c.ConnectorEndpoint.mutate(ctx, m)
	case *ConnectorHeartbeatMutation:
		return c.ConnectorHeartbeat.mutate(ctx, m)
	case *EligibilityLogMutation:
		return c.EligibilityLog.mutate(ctx, m)
	case *FanoutExecutionMutation:
		return c.FanoutExecution.mutate(ctx, m)
	case *IngressItemMutation:
		return c.IngressItem.mutate(ctx, m)
	case *MessageInboxMutation:
		return c.MessageInbox.mutate(ctx, m)
	case *PendingActionMutation:
		return c.PendingAction.mutate(ctx, m)
	case *RegistryEntryMutation:
		return c.RegistryEntry.mutate(ctx, m)
	case *ScheduledTaskMutation:
		return c.ScheduledTask.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *StateEntryMutation:
		return c.StateEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalEventClient is a client for the ApprovalEvent schema.
type ApprovalEventClient struct {
	config
}

// NewApprovalEventClient returns a client for the ApprovalEvent from the given config.
func NewApprovalEventClient(c config) *ApprovalEventClient {
	return &ApprovalEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalevent.Hooks(f(g(h())))`.
func (c *ApprovalEventClient) Use(hooks ...Hook) {
	c.hooks.ApprovalEvent = append(c.hooks.ApprovalEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalevent.Intercept(f(g(h())))`.
func (c *ApprovalEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalEvent = append(c.inters.ApprovalEvent, interceptors...)
}

// Create returns a builder for creating a ApprovalEvent entity.
func (c *ApprovalEventClient) Create() *ApprovalEventCreate {
	mutation := newApprovalEventMutation(c.config, OpCreate)
	return &ApprovalEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalEvent entities.
func (c *ApprovalEventClient) CreateBulk(builders ...*ApprovalEventCreate) *ApprovalEventCreateBulk {
	return &ApprovalEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalEventClient) MapCreateBulk(slice any, setFunc func(*ApprovalEventCreate, int)) *ApprovalEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalEventCreateBulk{err: fmt.Errorf("calling to ApprovalEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalEvent.
func (c *ApprovalEventClient) Update() *ApprovalEventUpdate {
	mutation := newApprovalEventMutation(c.config, OpUpdate)
	return &ApprovalEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalEventClient) UpdateOne(_m *ApprovalEvent) *ApprovalEventUpdateOne {
	mutation := newApprovalEventMutation(c.config, OpUpdateOne, withApprovalEvent(_m))
	return &ApprovalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalEventClient) UpdateOneID(id string) *ApprovalEventUpdateOne {
	mutation := newApprovalEventMutation(c.config, OpUpdateOne, withApprovalEventID(id))
	return &ApprovalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalEvent.
func (c *ApprovalEventClient) Delete() *ApprovalEventDelete {
	mutation := newApprovalEventMutation(c.config, OpDelete)
	return &ApprovalEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalEventClient) DeleteOne(_m *ApprovalEvent) *ApprovalEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalEventClient) DeleteOneID(id string) *ApprovalEventDeleteOne {
	builder := c.Delete().Where(approvalevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalEventDeleteOne{builder}
}

// Query returns a query builder for ApprovalEvent.
func (c *ApprovalEventClient) Query() *ApprovalEventQuery {
	return &ApprovalEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalEvent entity by its id.
func (c *ApprovalEventClient) Get(ctx context.Context, id string) (*ApprovalEvent, error) {
	return c.Query().Where(approvalevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalEventClient) GetX(ctx context.Context, id string) *ApprovalEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalEventClient) Hooks() []Hook {
	return c.hooks.ApprovalEvent
}

// Interceptors returns the client interceptors.
func (c *ApprovalEventClient) Interceptors() []Interceptor {
	return c.inters.ApprovalEvent
}

func (c *ApprovalEventClient) mutate(ctx context.Context, m *ApprovalEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalEvent mutation op: %q", m.Op())
	}
}

// ApprovalRuleClient is a client for the ApprovalRule schema.
type ApprovalRuleClient struct {
	config
}

// NewApprovalRuleClient returns a client for the ApprovalRule from the given config.
func NewApprovalRuleClient(c config) *ApprovalRuleClient {
	return &ApprovalRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalrule.Hooks(f(g(h())))`.
func (c *ApprovalRuleClient) Use(hooks ...Hook) {
	c.hooks.ApprovalRule = append(c.hooks.ApprovalRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalrule.Intercept(f(g(h())))`.
func (c *ApprovalRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalRule = append(c.inters.ApprovalRule, interceptors...)
}

// Create returns a builder for creating a ApprovalRule entity.
func (c *ApprovalRuleClient) Create() *ApprovalRuleCreate {
	mutation := newApprovalRuleMutation(c.config, OpCreate)
	return &ApprovalRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalRule entities.
func (c *ApprovalRuleClient) CreateBulk(builders ...*ApprovalRuleCreate) *ApprovalRuleCreateBulk {
	return &ApprovalRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalRuleClient) MapCreateBulk(slice any, setFunc func(*ApprovalRuleCreate, int)) *ApprovalRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalRuleCreateBulk{err: fmt.Errorf("calling to ApprovalRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalRule.
func (c *ApprovalRuleClient) Update() *ApprovalRuleUpdate {
	mutation := newApprovalRuleMutation(c.config, OpUpdate)
	return &ApprovalRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalRuleClient) UpdateOne(_m *ApprovalRule) *ApprovalRuleUpdateOne {
	mutation := newApprovalRuleMutation(c.config, OpUpdateOne, withApprovalRule(_m))
	return &ApprovalRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalRuleClient) UpdateOneID(id string) *ApprovalRuleUpdateOne {
	mutation := newApprovalRuleMutation(c.config, OpUpdateOne, withApprovalRuleID(id))
	return &ApprovalRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalRule.
func (c *ApprovalRuleClient) Delete() *ApprovalRuleDelete {
	mutation := newApprovalRuleMutation(c.config, OpDelete)
	return &ApprovalRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalRuleClient) DeleteOne(_m *ApprovalRule) *ApprovalRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalRuleClient) DeleteOneID(id string) *ApprovalRuleDeleteOne {
	builder := c.Delete().Where(approvalrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalRuleDeleteOne{builder}
}

// Query returns a query builder for ApprovalRule.
func (c *ApprovalRuleClient) Query() *ApprovalRuleQuery {
	return &ApprovalRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalRule entity by its id.
func (c *ApprovalRuleClient) Get(ctx context.Context, id string) (*ApprovalRule, error) {
	return c.Query().Where(approvalrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalRuleClient) GetX(ctx context.Context, id string) *ApprovalRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalRuleClient) Hooks() []Hook {
	return c.hooks.ApprovalRule
}

// Interceptors returns the client interceptors.
func (c *ApprovalRuleClient) Interceptors() []Interceptor {
	return c.inters.ApprovalRule
}

func (c *ApprovalRuleClient) mutate(ctx context.Context, m *ApprovalRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalRule mutation op: %q", m.Op())
	}
}

// ButlerSecretClient is a client for the ButlerSecret schema.
type ButlerSecretClient struct {
	config
}

// NewButlerSecretClient returns a client for the ButlerSecret from the given config.
func NewButlerSecretClient(c config) *ButlerSecretClient {
	return &ButlerSecretClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `butlersecret.Hooks(f(g(h())))`.
func (c *ButlerSecretClient) Use(hooks ...Hook) {
	c.hooks.ButlerSecret = append(c.hooks.ButlerSecret, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `butlersecret.Intercept(f(g(h())))`.
func (c *ButlerSecretClient) Intercept(interceptors ...Interceptor) {
	c.inters.ButlerSecret = append(c.inters.ButlerSecret, interceptors...)
}

// Create returns a builder for creating a ButlerSecret entity.
func (c *ButlerSecretClient) Create() *ButlerSecretCreate {
	mutation := newButlerSecretMutation(c.config, OpCreate)
	return &ButlerSecretCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ButlerSecret entities.
func (c *ButlerSecretClient) CreateBulk(builders ...*ButlerSecretCreate) *ButlerSecretCreateBulk {
	return &ButlerSecretCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ButlerSecretClient) MapCreateBulk(slice any, setFunc func(*ButlerSecretCreate, int)) *ButlerSecretCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ButlerSecretCreateBulk{err: fmt.Errorf("calling to ButlerSecretClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ButlerSecretCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ButlerSecretCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ButlerSecret.
func (c *ButlerSecretClient) Update() *ButlerSecretUpdate {
	mutation := newButlerSecretMutation(c.config, OpUpdate)
	return &ButlerSecretUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ButlerSecretClient) UpdateOne(_m *ButlerSecret) *ButlerSecretUpdateOne {
	mutation := newButlerSecretMutation(c.config, OpUpdateOne, withButlerSecret(_m))
	return &ButlerSecretUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ButlerSecretClient) UpdateOneID(id string) *ButlerSecretUpdateOne {
	mutation := newButlerSecretMutation(c.config, OpUpdateOne, withButlerSecretID(id))
	return &ButlerSecretUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ButlerSecret.
func (c *ButlerSecretClient) Delete() *ButlerSecretDelete {
	mutation := newButlerSecretMutation(c.config, OpDelete)
	return &ButlerSecretDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ButlerSecretClient) DeleteOne(_m *ButlerSecret) *ButlerSecretDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ButlerSecretClient) DeleteOneID(id string) *ButlerSecretDeleteOne {
	builder := c.Delete().Where(butlersecret.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ButlerSecretDeleteOne{builder}
}

// Query returns a query builder for ButlerSecret.
func (c *ButlerSecretClient) Query() *ButlerSecretQuery {
	return &ButlerSecretQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeButlerSecret},
		inters: c.Interceptors(),
	}
}

// Get returns a ButlerSecret entity by its id.
func (c *ButlerSecretClient) Get(ctx context.Context, id string) (*ButlerSecret, error) {
	return c.Query().Where(butlersecret.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ButlerSecretClient) GetX(ctx context.Context, id string) *ButlerSecret {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ButlerSecretClient) Hooks() []Hook {
	return c.hooks.ButlerSecret
}

// Interceptors returns the client interceptors.
func (c *ButlerSecretClient) Interceptors() []Interceptor {
	return c.inters.ButlerSecret
}

func (c *ButlerSecretClient) mutate(ctx context.Context, m *ButlerSecretMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ButlerSecretCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ButlerSecretUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ButlerSecretUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ButlerSecretDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ButlerSecret mutation op: %q", m.Op())
	}
}

// ConnectorEndpointClient is a client for the ConnectorEndpoint schema.
type ConnectorEndpointClient struct {
	config
}

// NewConnectorEndpointClient returns a client for the ConnectorEndpoint from the given config.
func NewConnectorEndpointClient(c config) *ConnectorEndpointClient {
	return &ConnectorEndpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `connectorendpoint.Hooks(f(g(h())))`.
func (c *ConnectorEndpointClient) Use(hooks ...Hook) {
	c.hooks.ConnectorEndpoint = append(c.hooks.ConnectorEndpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `connectorendpoint.Intercept(f(g(h())))`.
func (c *ConnectorEndpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConnectorEndpoint = append(c.inters.ConnectorEndpoint, interceptors...)
}

// Create returns a builder for creating a ConnectorEndpoint entity.
func (c *ConnectorEndpointClient) Create() *ConnectorEndpointCreate {
	mutation := newConnectorEndpointMutation(c.config, OpCreate)
	return &ConnectorEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConnectorEndpoint entities.
func (c *ConnectorEndpointClient) CreateBulk(builders ...*ConnectorEndpointCreate) *ConnectorEndpointCreateBulk {
	return &ConnectorEndpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConnectorEndpointClient) MapCreateBulk(slice any, setFunc func(*ConnectorEndpointCreate, int)) *ConnectorEndpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConnectorEndpointCreateBulk{err: fmt.Errorf("calling to ConnectorEndpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConnectorEndpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConnectorEndpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConnectorEndpoint.
func (c *ConnectorEndpointClient) Update() *ConnectorEndpointUpdate {
	mutation := newConnectorEndpointMutation(c.config, OpUpdate)
	return &ConnectorEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConnectorEndpointClient) UpdateOne(_m *ConnectorEndpoint) *ConnectorEndpointUpdateOne {
	mutation := newConnectorEndpointMutation(c.config, OpUpdateOne, withConnectorEndpoint(_m))
	return &ConnectorEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConnectorEndpointClient) UpdateOneID(id string) *ConnectorEndpointUpdateOne {
	mutation := newConnectorEndpointMutation(c.config, OpUpdateOne, withConnectorEndpointID(id))
	return &ConnectorEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConnectorEndpoint.
func (c *ConnectorEndpointClient) Delete() *ConnectorEndpointDelete {
	mutation := newConnectorEndpointMutation(c.config, OpDelete)
	return &ConnectorEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConnectorEndpointClient) DeleteOne(_m *ConnectorEndpoint) *ConnectorEndpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConnectorEndpointClient) DeleteOneID(id string) *ConnectorEndpointDeleteOne {
	builder := c.Delete().Where(connectorendpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConnectorEndpointDeleteOne{builder}
}

// Query returns a query builder for ConnectorEndpoint.
func (c *ConnectorEndpointClient) Query() *ConnectorEndpointQuery {
	return &ConnectorEndpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConnectorEndpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a ConnectorEndpoint entity by its id.
func (c *ConnectorEndpointClient) Get(ctx context.Context, id string) (*ConnectorEndpoint, error) {
	return c.Query().Where(connectorendpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConnectorEndpointClient) GetX(ctx context.Context, id string) *ConnectorEndpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConnectorEndpointClient) Hooks() []Hook {
	return c.hooks.ConnectorEndpoint
}

// Interceptors returns the client interceptors.
func (c *ConnectorEndpointClient) Interceptors() []Interceptor {
	return c.inters.ConnectorEndpoint
}

func (c *ConnectorEndpointClient) mutate(ctx context.Context, m *ConnectorEndpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConnectorEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConnectorEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConnectorEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConnectorEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConnectorEndpoint mutation op: %q", m.Op())
	}
}

// ConnectorHeartbeatClient is a client for the ConnectorHeartbeat schema.
type ConnectorHeartbeatClient struct {
	config
}

// NewConnectorHeartbeatClient returns a client for the ConnectorHeartbeat from the given config.
func NewConnectorHeartbeatClient(c config) *ConnectorHeartbeatClient {
	return &ConnectorHeartbeatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `connectorheartbeat.Hooks(f(g(h())))`.
func (c *ConnectorHeartbeatClient) Use(hooks ...Hook) {
	c.hooks.ConnectorHeartbeat = append(c.hooks.ConnectorHeartbeat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `connectorheartbeat.Intercept(f(g(h())))`.
func (c *ConnectorHeartbeatClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConnectorHeartbeat = append(c.inters.ConnectorHeartbeat, interceptors...)
}

// Create returns a builder for creating a ConnectorHeartbeat entity.
func (c *ConnectorHeartbeatClient) Create() *ConnectorHeartbeatCreate {
	mutation := newConnectorHeartbeatMutation(c.config, OpCreate)
	return &ConnectorHeartbeatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConnectorHeartbeat entities.
func (c *ConnectorHeartbeatClient) CreateBulk(builders ...*ConnectorHeartbeatCreate) *ConnectorHeartbeatCreateBulk {
	return &ConnectorHeartbeatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConnectorHeartbeatClient) MapCreateBulk(slice any, setFunc func(*ConnectorHeartbeatCreate, int)) *ConnectorHeartbeatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConnectorHeartbeatCreateBulk{err: fmt.Errorf("calling to ConnectorHeartbeatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConnectorHeartbeatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConnectorHeartbeatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConnectorHeartbeat.
func (c *ConnectorHeartbeatClient) Update() *ConnectorHeartbeatUpdate {
	mutation := newConnectorHeartbeatMutation(c.config, OpUpdate)
	return &ConnectorHeartbeatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConnectorHeartbeatClient) UpdateOne(_m *ConnectorHeartbeat) *ConnectorHeartbeatUpdateOne {
	mutation := newConnectorHeartbeatMutation(c.config, OpUpdateOne, withConnectorHeartbeat(_m))
	return &ConnectorHeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConnectorHeartbeatClient) UpdateOneID(id string) *ConnectorHeartbeatUpdateOne {
	mutation := newConnectorHeartbeatMutation(c.config, OpUpdateOne, withConnectorHeartbeatID(id))
	return &ConnectorHeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConnectorHeartbeat.
func (c *ConnectorHeartbeatClient) Delete() *ConnectorHeartbeatDelete {
	mutation := newConnectorHeartbeatMutation(c.config, OpDelete)
	return &ConnectorHeartbeatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConnectorHeartbeatClient) DeleteOne(_m *ConnectorHeartbeat) *ConnectorHeartbeatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConnectorHeartbeatClient) DeleteOneID(id string) *ConnectorHeartbeatDeleteOne {
	builder := c.Delete().Where(connectorheartbeat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConnectorHeartbeatDeleteOne{builder}
}

// Query returns a query builder for ConnectorHeartbeat.
func (c *ConnectorHeartbeatClient) Query() *ConnectorHeartbeatQuery {
	return &ConnectorHeartbeatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConnectorHeartbeat},
		inters: c.Interceptors(),
	}
}

// Get returns a ConnectorHeartbeat entity by its id.
func (c *ConnectorHeartbeatClient) Get(ctx context.Context, id string) (*ConnectorHeartbeat, error) {
	return c.Query().Where(connectorheartbeat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConnectorHeartbeatClient) GetX(ctx context.Context, id string) *ConnectorHeartbeat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConnectorHeartbeatClient) Hooks() []Hook {
	return c.hooks.ConnectorHeartbeat
}

// Interceptors returns the client interceptors.
func (c *ConnectorHeartbeatClient) Interceptors() []Interceptor {
	return c.inters.ConnectorHeartbeat
}

func (c *ConnectorHeartbeatClient) mutate(ctx context.Context, m *ConnectorHeartbeatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConnectorHeartbeatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConnectorHeartbeatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConnectorHeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConnectorHeartbeatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConnectorHeartbeat mutation op: %q", m.Op())
	}
}

// EligibilityLogClient is a client for the EligibilityLog schema.
type EligibilityLogClient struct {
	config
}

// NewEligibilityLogClient returns a client for the EligibilityLog from the given config.
func NewEligibilityLogClient(c config) *EligibilityLogClient {
	return &EligibilityLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eligibilitylog.Hooks(f(g(h())))`.
func (c *EligibilityLogClient) Use(hooks ...Hook) {
	c.hooks.EligibilityLog = append(c.hooks.EligibilityLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eligibilitylog.Intercept(f(g(h())))`.
func (c *EligibilityLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.EligibilityLog = append(c.inters.EligibilityLog, interceptors...)
}

// Create returns a builder for creating a EligibilityLog entity.
func (c *EligibilityLogClient) Create() *EligibilityLogCreate {
	mutation := newEligibilityLogMutation(c.config, OpCreate)
	return &EligibilityLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EligibilityLog entities.
func (c *EligibilityLogClient) CreateBulk(builders ...*EligibilityLogCreate) *EligibilityLogCreateBulk {
	return &EligibilityLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EligibilityLogClient) MapCreateBulk(slice any, setFunc func(*EligibilityLogCreate, int)) *EligibilityLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EligibilityLogCreateBulk{err: fmt.Errorf("calling to EligibilityLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EligibilityLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EligibilityLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EligibilityLog.
func (c *EligibilityLogClient) Update() *EligibilityLogUpdate {
	mutation := newEligibilityLogMutation(c.config, OpUpdate)
	return &EligibilityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EligibilityLogClient) UpdateOne(_m *EligibilityLog) *EligibilityLogUpdateOne {
	mutation := newEligibilityLogMutation(c.config, OpUpdateOne, withEligibilityLog(_m))
	return &EligibilityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EligibilityLogClient) UpdateOneID(id string) *EligibilityLogUpdateOne {
	mutation := newEligibilityLogMutation(c.config, OpUpdateOne, withEligibilityLogID(id))
	return &EligibilityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EligibilityLog.
func (c *EligibilityLogClient) Delete() *EligibilityLogDelete {
	mutation := newEligibilityLogMutation(c.config, OpDelete)
	return &EligibilityLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EligibilityLogClient) DeleteOne(_m *EligibilityLog) *EligibilityLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EligibilityLogClient) DeleteOneID(id string) *EligibilityLogDeleteOne {
	builder := c.Delete().Where(eligibilitylog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EligibilityLogDeleteOne{builder}
}

// Query returns a query builder for EligibilityLog.
func (c *EligibilityLogClient) Query() *EligibilityLogQuery {
	return &EligibilityLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEligibilityLog},
		inters: c.Interceptors(),
	}
}

// Get returns a EligibilityLog entity by its id.
func (c *EligibilityLogClient) Get(ctx context.Context, id string) (*EligibilityLog, error) {
	return c.Query().Where(eligibilitylog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EligibilityLogClient) GetX(ctx context.Context, id string) *EligibilityLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EligibilityLogClient) Hooks() []Hook {
	return c.hooks.EligibilityLog
}

// Interceptors returns the client interceptors.
func (c *EligibilityLogClient) Interceptors() []Interceptor {
	return c.inters.EligibilityLog
}

func (c *EligibilityLogClient) mutate(ctx context.Context, m *EligibilityLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EligibilityLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EligibilityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EligibilityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EligibilityLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EligibilityLog mutation op: %q", m.Op())
	}
}

// FanoutExecutionClient is a client for the FanoutExecution schema.
type FanoutExecutionClient struct {
	config
}

// NewFanoutExecutionClient returns a client for the FanoutExecution from the given config.
func NewFanoutExecutionClient(c config) *FanoutExecutionClient {
	return &FanoutExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fanoutexecution.Hooks(f(g(h())))`.
func (c *FanoutExecutionClient) Use(hooks ...Hook) {
	c.hooks.FanoutExecution = append(c.hooks.FanoutExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fanoutexecution.Intercept(f(g(h())))`.
func (c *FanoutExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.FanoutExecution = append(c.inters.FanoutExecution, interceptors...)
}

// Create returns a builder for creating a FanoutExecution entity.
func (c *FanoutExecutionClient) Create() *FanoutExecutionCreate {
	mutation := newFanoutExecutionMutation(c.config, OpCreate)
	return &FanoutExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FanoutExecution entities.
func (c *FanoutExecutionClient) CreateBulk(builders ...*FanoutExecutionCreate) *FanoutExecutionCreateBulk {
	return &FanoutExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FanoutExecutionClient) MapCreateBulk(slice any, setFunc func(*FanoutExecutionCreate, int)) *FanoutExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FanoutExecutionCreateBulk{err: fmt.Errorf("calling to FanoutExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FanoutExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FanoutExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FanoutExecution.
func (c *FanoutExecutionClient) Update() *FanoutExecutionUpdate {
	mutation := newFanoutExecutionMutation(c.config, OpUpdate)
	return &FanoutExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FanoutExecutionClient) UpdateOne(_m *FanoutExecution) *FanoutExecutionUpdateOne {
	mutation := newFanoutExecutionMutation(c.config, OpUpdateOne, withFanoutExecution(_m))
	return &FanoutExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FanoutExecutionClient) UpdateOneID(id string) *FanoutExecutionUpdateOne {
	mutation := newFanoutExecutionMutation(c.config, OpUpdateOne, withFanoutExecutionID(id))
	return &FanoutExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FanoutExecution.
func (c *FanoutExecutionClient) Delete() *FanoutExecutionDelete {
	mutation := newFanoutExecutionMutation(c.config, OpDelete)
	return &FanoutExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FanoutExecutionClient) DeleteOne(_m *FanoutExecution) *FanoutExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FanoutExecutionClient) DeleteOneID(id string) *FanoutExecutionDeleteOne {
	builder := c.Delete().Where(fanoutexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FanoutExecutionDeleteOne{builder}
}

// Query returns a query builder for FanoutExecution.
func (c *FanoutExecutionClient) Query() *FanoutExecutionQuery {
	return &FanoutExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFanoutExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a FanoutExecution entity by its id.
func (c *FanoutExecutionClient) Get(ctx context.Context, id string) (*FanoutExecution, error) {
	return c.Query().Where(fanoutexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FanoutExecutionClient) GetX(ctx context.Context, id string) *FanoutExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FanoutExecutionClient) Hooks() []Hook {
	return c.hooks.FanoutExecution
}

// Interceptors returns the client interceptors.
func (c *FanoutExecutionClient) Interceptors() []Interceptor {
	return c.inters.FanoutExecution
}

func (c *FanoutExecutionClient) mutate(ctx context.Context, m *FanoutExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FanoutExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FanoutExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FanoutExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FanoutExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FanoutExecution mutation op: %q", m.Op())
	}
}

// IngressItemClient is a client for the IngressItem schema.
type IngressItemClient struct {
	config
}

// NewIngressItemClient returns a client for the IngressItem from the given config.
func NewIngressItemClient(c config) *IngressItemClient {
	return &IngressItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingressitem.Hooks(f(g(h())))`.
func (c *IngressItemClient) Use(hooks ...Hook) {
	c.hooks.IngressItem = append(c.hooks.IngressItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingressitem.Intercept(f(g(h())))`.
func (c *IngressItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngressItem = append(c.inters.IngressItem, interceptors...)
}

// Create returns a builder for creating a IngressItem entity.
func (c *IngressItemClient) Create() *IngressItemCreate {
	mutation := newIngressItemMutation(c.config, OpCreate)
	return &IngressItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngressItem entities.
func (c *IngressItemClient) CreateBulk(builders ...*IngressItemCreate) *IngressItemCreateBulk {
	return &IngressItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngressItemClient) MapCreateBulk(slice any, setFunc func(*IngressItemCreate, int)) *IngressItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngressItemCreateBulk{err: fmt.Errorf("calling to IngressItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngressItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngressItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngressItem.
func (c *IngressItemClient) Update() *IngressItemUpdate {
	mutation := newIngressItemMutation(c.config, OpUpdate)
	return &IngressItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngressItemClient) UpdateOne(_m *IngressItem) *IngressItemUpdateOne {
	mutation := newIngressItemMutation(c.config, OpUpdateOne, withIngressItem(_m))
	return &IngressItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngressItemClient) UpdateOneID(id string) *IngressItemUpdateOne {
	mutation := newIngressItemMutation(c.config, OpUpdateOne, withIngressItemID(id))
	return &IngressItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngressItem.
func (c *IngressItemClient) Delete() *IngressItemDelete {
	mutation := newIngressItemMutation(c.config, OpDelete)
	return &IngressItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngressItemClient) DeleteOne(_m *IngressItem) *IngressItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngressItemClient) DeleteOneID(id string) *IngressItemDeleteOne {
	builder := c.Delete().Where(ingressitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngressItemDeleteOne{builder}
}

// Query returns a query builder for IngressItem.
func (c *IngressItemClient) Query() *IngressItemQuery {
	return &IngressItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngressItem},
		inters: c.Interceptors(),
	}
}

// Get returns a IngressItem entity by its id.
func (c *IngressItemClient) Get(ctx context.Context, id string) (*IngressItem, error) {
	return c.Query().Where(ingressitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngressItemClient) GetX(ctx context.Context, id string) *IngressItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngressItemClient) Hooks() []Hook {
	return c.hooks.IngressItem
}

// Interceptors returns the client interceptors.
func (c *IngressItemClient) Interceptors() []Interceptor {
	return c.inters.IngressItem
}

func (c *IngressItemClient) mutate(ctx context.Context, m *IngressItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngressItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngressItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngressItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngressItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngressItem mutation op: %q", m.Op())
	}
}

// MessageInboxClient is a client for the MessageInbox schema.
type MessageInboxClient struct {
	config
}

// NewMessageInboxClient returns a client for the MessageInbox from the given config.
func NewMessageInboxClient(c config) *MessageInboxClient {
	return &MessageInboxClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messageinbox.Hooks(f(g(h())))`.
func (c *MessageInboxClient) Use(hooks ...Hook) {
	c.hooks.MessageInbox = append(c.hooks.MessageInbox, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messageinbox.Intercept(f(g(h())))`.
func (c *MessageInboxClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageInbox = append(c.inters.MessageInbox, interceptors...)
}

// Create returns a builder for creating a MessageInbox entity.
func (c *MessageInboxClient) Create() *MessageInboxCreate {
	mutation := newMessageInboxMutation(c.config, OpCreate)
	return &MessageInboxCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageInbox entities.
func (c *MessageInboxClient) CreateBulk(builders ...*MessageInboxCreate) *MessageInboxCreateBulk {
	return &MessageInboxCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageInboxClient) MapCreateBulk(slice any, setFunc func(*MessageInboxCreate, int)) *MessageInboxCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageInboxCreateBulk{err: fmt.Errorf("calling to MessageInboxClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageInboxCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageInboxCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageInbox.
func (c *MessageInboxClient) Update() *MessageInboxUpdate {
	mutation := newMessageInboxMutation(c.config, OpUpdate)
	return &MessageInboxUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageInboxClient) UpdateOne(_m *MessageInbox) *MessageInboxUpdateOne {
	mutation := newMessageInboxMutation(c.config, OpUpdateOne, withMessageInbox(_m))
	return &MessageInboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageInboxClient) UpdateOneID(id string) *MessageInboxUpdateOne {
	mutation := newMessageInboxMutation(c.config, OpUpdateOne, withMessageInboxID(id))
	return &MessageInboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageInbox.
func (c *MessageInboxClient) Delete() *MessageInboxDelete {
	mutation := newMessageInboxMutation(c.config, OpDelete)
	return &MessageInboxDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageInboxClient) DeleteOne(_m *MessageInbox) *MessageInboxDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageInboxClient) DeleteOneID(id string) *MessageInboxDeleteOne {
	builder := c.Delete().Where(messageinbox.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageInboxDeleteOne{builder}
}

// Query returns a query builder for MessageInbox.
func (c *MessageInboxClient) Query() *MessageInboxQuery {
	return &MessageInboxQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageInbox},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageInbox entity by its id.
func (c *MessageInboxClient) Get(ctx context.Context, id string) (*MessageInbox, error) {
	return c.Query().Where(messageinbox.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageInboxClient) GetX(ctx context.Context, id string) *MessageInbox {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageInboxClient) Hooks() []Hook {
	return c.hooks.MessageInbox
}

// Interceptors returns the client interceptors.
func (c *MessageInboxClient) Interceptors() []Interceptor {
	return c.inters.MessageInbox
}

func (c *MessageInboxClient) mutate(ctx context.Context, m *MessageInboxMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageInboxCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageInboxUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageInboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageInboxDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageInbox mutation op: %q", m.Op())
	}
}

// PendingActionClient is a client for the PendingAction schema.
type PendingActionClient struct {
	config
}

// NewPendingActionClient returns a client for the PendingAction from the given config.
func NewPendingActionClient(c config) *PendingActionClient {
	return &PendingActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingaction.Hooks(f(g(h())))`.
func (c *PendingActionClient) Use(hooks ...Hook) {
	c.hooks.PendingAction = append(c.hooks.PendingAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingaction.Intercept(f(g(h())))`.
func (c *PendingActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingAction = append(c.inters.PendingAction, interceptors...)
}

// Create returns a builder for creating a PendingAction entity.
func (c *PendingActionClient) Create() *PendingActionCreate {
	mutation := newPendingActionMutation(c.config, OpCreate)
	return &PendingActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingAction entities.
func (c *PendingActionClient) CreateBulk(builders ...*PendingActionCreate) *PendingActionCreateBulk {
	return &PendingActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingActionClient) MapCreateBulk(slice any, setFunc func(*PendingActionCreate, int)) *PendingActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingActionCreateBulk{err: fmt.Errorf("calling to PendingActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingAction.
func (c *PendingActionClient) Update() *PendingActionUpdate {
	mutation := newPendingActionMutation(c.config, OpUpdate)
	return &PendingActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingActionClient) UpdateOne(_m *PendingAction) *PendingActionUpdateOne {
	mutation := newPendingActionMutation(c.config, OpUpdateOne, withPendingAction(_m))
	return &PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingActionClient) UpdateOneID(id string) *PendingActionUpdateOne {
	mutation := newPendingActionMutation(c.config, OpUpdateOne, withPendingActionID(id))
	return &PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingAction.
func (c *PendingActionClient) Delete() *PendingActionDelete {
	mutation := newPendingActionMutation(c.config, OpDelete)
	return &PendingActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingActionClient) DeleteOne(_m *PendingAction) *PendingActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingActionClient) DeleteOneID(id string) *PendingActionDeleteOne {
	builder := c.Delete().Where(pendingaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingActionDeleteOne{builder}
}

// Query returns a query builder for PendingAction.
func (c *PendingActionClient) Query() *PendingActionQuery {
	return &PendingActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingAction},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingAction entity by its id.
func (c *PendingActionClient) Get(ctx context.Context, id string) (*PendingAction, error) {
	return c.Query().Where(pendingaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingActionClient) GetX(ctx context.Context, id string) *PendingAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingActionClient) Hooks() []Hook {
	return c.hooks.PendingAction
}

// Interceptors returns the client interceptors.
func (c *PendingActionClient) Interceptors() []Interceptor {
	return c.inters.PendingAction
}

func (c *PendingActionClient) mutate(ctx context.Context, m *PendingActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingAction mutation op: %q", m.Op())
	}
}

// RegistryEntryClient is a client for the RegistryEntry schema.
type RegistryEntryClient struct {
	config
}

// NewRegistryEntryClient returns a client for the RegistryEntry from the given config.
func NewRegistryEntryClient(c config) *RegistryEntryClient {
	return &RegistryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `registryentry.Hooks(f(g(h())))`.
func (c *RegistryEntryClient) Use(hooks ...Hook) {
	c.hooks.RegistryEntry = append(c.hooks.RegistryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `registryentry.Intercept(f(g(h())))`.
func (c *RegistryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.RegistryEntry = append(c.inters.RegistryEntry, interceptors...)
}

// Create returns a builder for creating a RegistryEntry entity.
func (c *RegistryEntryClient) Create() *RegistryEntryCreate {
	mutation := newRegistryEntryMutation(c.config, OpCreate)
	return &RegistryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RegistryEntry entities.
func (c *RegistryEntryClient) CreateBulk(builders ...*RegistryEntryCreate) *RegistryEntryCreateBulk {
	return &RegistryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegistryEntryClient) MapCreateBulk(slice any, setFunc func(*RegistryEntryCreate, int)) *RegistryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegistryEntryCreateBulk{err: fmt.Errorf("calling to RegistryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegistryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegistryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RegistryEntry.
func (c *RegistryEntryClient) Update() *RegistryEntryUpdate {
	mutation := newRegistryEntryMutation(c.config, OpUpdate)
	return &RegistryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegistryEntryClient) UpdateOne(_m *RegistryEntry) *RegistryEntryUpdateOne {
	mutation := newRegistryEntryMutation(c.config, OpUpdateOne, withRegistryEntry(_m))
	return &RegistryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegistryEntryClient) UpdateOneID(id string) *RegistryEntryUpdateOne {
	mutation := newRegistryEntryMutation(c.config, OpUpdateOne, withRegistryEntryID(id))
	return &RegistryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RegistryEntry.
func (c *RegistryEntryClient) Delete() *RegistryEntryDelete {
	mutation := newRegistryEntryMutation(c.config, OpDelete)
	return &RegistryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegistryEntryClient) DeleteOne(_m *RegistryEntry) *RegistryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegistryEntryClient) DeleteOneID(id string) *RegistryEntryDeleteOne {
	builder := c.Delete().Where(registryentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegistryEntryDeleteOne{builder}
}

// Query returns a query builder for RegistryEntry.
func (c *RegistryEntryClient) Query() *RegistryEntryQuery {
	return &RegistryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegistryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a RegistryEntry entity by its id.
func (c *RegistryEntryClient) Get(ctx context.Context, id string) (*RegistryEntry, error) {
	return c.Query().Where(registryentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegistryEntryClient) GetX(ctx context.Context, id string) *RegistryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RegistryEntryClient) Hooks() []Hook {
	return c.hooks.RegistryEntry
}

// Interceptors returns the client interceptors.
func (c *RegistryEntryClient) Interceptors() []Interceptor {
	return c.inters.RegistryEntry
}

func (c *RegistryEntryClient) mutate(ctx context.Context, m *RegistryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegistryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegistryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegistryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegistryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RegistryEntry mutation op: %q", m.Op())
	}
}

// ScheduledTaskClient is a client for the ScheduledTask schema.
type ScheduledTaskClient struct {
	config
}

// NewScheduledTaskClient returns a client for the ScheduledTask from the given config.
func NewScheduledTaskClient(c config) *ScheduledTaskClient {
	return &ScheduledTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledtask.Hooks(f(g(h())))`.
func (c *ScheduledTaskClient) Use(hooks ...Hook) {
	c.hooks.ScheduledTask = append(c.hooks.ScheduledTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledtask.Intercept(f(g(h())))`.
func (c *ScheduledTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledTask = append(c.inters.ScheduledTask, interceptors...)
}

// Create returns a builder for creating a ScheduledTask entity.
func (c *ScheduledTaskClient) Create() *ScheduledTaskCreate {
	mutation := newScheduledTaskMutation(c.config, OpCreate)
	return &ScheduledTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledTask entities.
func (c *ScheduledTaskClient) CreateBulk(builders ...*ScheduledTaskCreate) *ScheduledTaskCreateBulk {
	return &ScheduledTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledTaskClient) MapCreateBulk(slice any, setFunc func(*ScheduledTaskCreate, int)) *ScheduledTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledTaskCreateBulk{err: fmt.Errorf("calling to ScheduledTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledTask.
func (c *ScheduledTaskClient) Update() *ScheduledTaskUpdate {
	mutation := newScheduledTaskMutation(c.config, OpUpdate)
	return &ScheduledTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledTaskClient) UpdateOne(_m *ScheduledTask) *ScheduledTaskUpdateOne {
	mutation := newScheduledTaskMutation(c.config, OpUpdateOne, withScheduledTask(_m))
	return &ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledTaskClient) UpdateOneID(id string) *ScheduledTaskUpdateOne {
	mutation := newScheduledTaskMutation(c.config, OpUpdateOne, withScheduledTaskID(id))
	return &ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledTask.
func (c *ScheduledTaskClient) Delete() *ScheduledTaskDelete {
	mutation := newScheduledTaskMutation(c.config, OpDelete)
	return &ScheduledTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledTaskClient) DeleteOne(_m *ScheduledTask) *ScheduledTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledTaskClient) DeleteOneID(id string) *ScheduledTaskDeleteOne {
	builder := c.Delete().Where(scheduledtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledTaskDeleteOne{builder}
}

// Query returns a query builder for ScheduledTask.
func (c *ScheduledTaskClient) Query() *ScheduledTaskQuery {
	return &ScheduledTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledTask entity by its id.
func (c *ScheduledTaskClient) Get(ctx context.Context, id string) (*ScheduledTask, error) {
	return c.Query().Where(scheduledtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledTaskClient) GetX(ctx context.Context, id string) *ScheduledTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduledTaskClient) Hooks() []Hook {
	return c.hooks.ScheduledTask
}

// Interceptors returns the client interceptors.
func (c *ScheduledTaskClient) Interceptors() []Interceptor {
	return c.inters.ScheduledTask
}

func (c *ScheduledTaskClient) mutate(ctx context.Context, m *ScheduledTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledTask mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// StateEntryClient is a client for the StateEntry schema.
type StateEntryClient struct {
	config
}

// NewStateEntryClient returns a client for the StateEntry from the given config.
func NewStateEntryClient(c config) *StateEntryClient {
	return &StateEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stateentry.Hooks(f(g(h())))`.
func (c *StateEntryClient) Use(hooks ...Hook) {
	c.hooks.StateEntry = append(c.hooks.StateEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stateentry.Intercept(f(g(h())))`.
func (c *StateEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.StateEntry = append(c.inters.StateEntry, interceptors...)
}

// Create returns a builder for creating a StateEntry entity.
func (c *StateEntryClient) Create() *StateEntryCreate {
	mutation := newStateEntryMutation(c.config, OpCreate)
	return &StateEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StateEntry entities.
func (c *StateEntryClient) CreateBulk(builders ...*StateEntryCreate) *StateEntryCreateBulk {
	return &StateEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateEntryClient) MapCreateBulk(slice any, setFunc func(*StateEntryCreate, int)) *StateEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateEntryCreateBulk{err: fmt.Errorf("calling to StateEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StateEntry.
func (c *StateEntryClient) Update() *StateEntryUpdate {
	mutation := newStateEntryMutation(c.config, OpUpdate)
	return &StateEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateEntryClient) UpdateOne(_m *StateEntry) *StateEntryUpdateOne {
	mutation := newStateEntryMutation(c.config, OpUpdateOne, withStateEntry(_m))
	return &StateEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateEntryClient) UpdateOneID(id string) *StateEntryUpdateOne {
	mutation := newStateEntryMutation(c.config, OpUpdateOne, withStateEntryID(id))
	return &StateEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StateEntry.
func (c *StateEntryClient) Delete() *StateEntryDelete {
	mutation := newStateEntryMutation(c.config, OpDelete)
	return &StateEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateEntryClient) DeleteOne(_m *StateEntry) *StateEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateEntryClient) DeleteOneID(id string) *StateEntryDeleteOne {
	builder := c.Delete().Where(stateentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateEntryDeleteOne{builder}
}

// Query returns a query builder for StateEntry.
func (c *StateEntryClient) Query() *StateEntryQuery {
	return &StateEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStateEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a StateEntry entity by its id.
func (c *StateEntryClient) Get(ctx context.Context, id string) (*StateEntry, error) {
	return c.Query().Where(stateentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateEntryClient) GetX(ctx context.Context, id string) *StateEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateEntryClient) Hooks() []Hook {
	return c.hooks.StateEntry
}

// Interceptors returns the client interceptors.
func (c *StateEntryClient) Interceptors() []Interceptor {
	return c.inters.StateEntry
}

func (c *StateEntryClient) mutate(ctx context.Context, m *StateEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StateEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalEvent, ApprovalRule, ButlerSecret, ConnectorEndpoint,
		ConnectorHeartbeat, EligibilityLog, FanoutExecution, IngressItem, MessageInbox,
		PendingAction, RegistryEntry, ScheduledTask, Session, StateEntry []ent.Hook
	}
	inters struct {
		ApprovalEvent, ApprovalRule, ButlerSecret, ConnectorEndpoint,
		ConnectorHeartbeat, EligibilityLog, FanoutExecution, IngressItem, MessageInbox,
		PendingAction, RegistryEntry, ScheduledTask, Session,
		StateEntry []ent.Interceptor
	}
)
