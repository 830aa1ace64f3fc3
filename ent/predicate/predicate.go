// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalEvent is the predicate function for approvalevent builders.
type ApprovalEvent func(*sql.Selector)

// ApprovalRule is the predicate function for approvalrule builders.
type ApprovalRule func(*sql.Selector)

// ButlerSecret is the predicate function for butlersecret builders.
type ButlerSecret func(*sql.Selector)

// ConnectorEndpoint is the predicate function for connectorendpoint builders.
type ConnectorEndpoint func(*sql.Selector)

// ConnectorHeartbeat is the predicate function for connectorheartbeat builders.
type ConnectorHeartbeat func(*sql.Selector)

// EligibilityLog is the predicate function for eligibilitylog builders.
type EligibilityLog func(*sql.Selector)

// FanoutExecution is the predicate function for fanoutexecution builders.
type FanoutExecution func(*sql.Selector)

// IngressItem is the predicate function for ingressitem builders.
type IngressItem func(*sql.Selector)

// MessageInbox is the predicate function for messageinbox builders.
type MessageInbox func(*sql.Selector)

// PendingAction is the predicate function for pendingaction builders.
type PendingAction func(*sql.Selector)

// RegistryEntry is the predicate function for registryentry builders.
type RegistryEntry func(*sql.Selector)

// ScheduledTask is the predicate function for scheduledtask builders.
type ScheduledTask func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// StateEntry is the predicate function for stateentry builders.
type StateEntry func(*sql.Selector)
