// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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
	"github.com/homekeep/butlerd/ent/schema"
	"github.com/homekeep/butlerd/ent/session"
	"github.com/homekeep/butlerd/ent/stateentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvaleventFields := schema.ApprovalEvent{}.Fields()
	_ = approvaleventFields
	// approvaleventDescCreatedAt is the schema descriptor for created_at field.
	approvaleventDescCreatedAt := approvaleventFields[4].Descriptor()
	// approvalevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalevent.DefaultCreatedAt = approvaleventDescCreatedAt.Default.(func() time.Time)
	approvalruleFields := schema.ApprovalRule{}.Fields()
	_ = approvalruleFields
	// approvalruleDescUses is the schema descriptor for uses field.
	approvalruleDescUses := approvalruleFields[7].Descriptor()
	// approvalrule.DefaultUses holds the default value on creation for the uses field.
	approvalrule.DefaultUses = approvalruleDescUses.Default.(int)
	// approvalruleDescEnabled is the schema descriptor for enabled field.
	approvalruleDescEnabled := approvalruleFields[8].Descriptor()
	// approvalrule.DefaultEnabled holds the default value on creation for the enabled field.
	approvalrule.DefaultEnabled = approvalruleDescEnabled.Default.(bool)
	// approvalruleDescCreatedAt is the schema descriptor for created_at field.
	approvalruleDescCreatedAt := approvalruleFields[9].Descriptor()
	// approvalrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrule.DefaultCreatedAt = approvalruleDescCreatedAt.Default.(func() time.Time)
	butlersecretFields := schema.ButlerSecret{}.Fields()
	_ = butlersecretFields
	// butlersecretDescUpdatedAt is the schema descriptor for updated_at field.
	butlersecretDescUpdatedAt := butlersecretFields[4].Descriptor()
	// butlersecret.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	butlersecret.DefaultUpdatedAt = butlersecretDescUpdatedAt.Default.(func() time.Time)
	// butlersecret.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	butlersecret.UpdateDefaultUpdatedAt = butlersecretDescUpdatedAt.UpdateDefault.(func() time.Time)
	connectorendpointFields := schema.ConnectorEndpoint{}.Fields()
	_ = connectorendpointFields
	// connectorendpointDescFirstSeenAt is the schema descriptor for first_seen_at field.
	connectorendpointDescFirstSeenAt := connectorendpointFields[7].Descriptor()
	// connectorendpoint.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	connectorendpoint.DefaultFirstSeenAt = connectorendpointDescFirstSeenAt.Default.(func() time.Time)
	// connectorendpointDescLastSeenAt is the schema descriptor for last_seen_at field.
	connectorendpointDescLastSeenAt := connectorendpointFields[8].Descriptor()
	// connectorendpoint.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	connectorendpoint.DefaultLastSeenAt = connectorendpointDescLastSeenAt.Default.(func() time.Time)
	// connectorendpoint.UpdateDefaultLastSeenAt holds the default value on update for the last_seen_at field.
	connectorendpoint.UpdateDefaultLastSeenAt = connectorendpointDescLastSeenAt.UpdateDefault.(func() time.Time)
	connectorheartbeatFields := schema.ConnectorHeartbeat{}.Fields()
	_ = connectorheartbeatFields
	// connectorheartbeatDescReceivedAt is the schema descriptor for received_at field.
	connectorheartbeatDescReceivedAt := connectorheartbeatFields[8].Descriptor()
	// connectorheartbeat.DefaultReceivedAt holds the default value on creation for the received_at field.
	connectorheartbeat.DefaultReceivedAt = connectorheartbeatDescReceivedAt.Default.(func() time.Time)
	eligibilitylogFields := schema.EligibilityLog{}.Fields()
	_ = eligibilitylogFields
	// eligibilitylogDescCreatedAt is the schema descriptor for created_at field.
	eligibilitylogDescCreatedAt := eligibilitylogFields[6].Descriptor()
	// eligibilitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	eligibilitylog.DefaultCreatedAt = eligibilitylogDescCreatedAt.Default.(func() time.Time)
	fanoutexecutionFields := schema.FanoutExecution{}.Fields()
	_ = fanoutexecutionFields
	// fanoutexecutionDescDurationMs is the schema descriptor for duration_ms field.
	fanoutexecutionDescDurationMs := fanoutexecutionFields[10].Descriptor()
	// fanoutexecution.DefaultDurationMs holds the default value on creation for the duration_ms field.
	fanoutexecution.DefaultDurationMs = fanoutexecutionDescDurationMs.Default.(int64)
	// fanoutexecutionDescCreatedAt is the schema descriptor for created_at field.
	fanoutexecutionDescCreatedAt := fanoutexecutionFields[11].Descriptor()
	// fanoutexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	fanoutexecution.DefaultCreatedAt = fanoutexecutionDescCreatedAt.Default.(func() time.Time)
	ingressitemFields := schema.IngressItem{}.Fields()
	_ = ingressitemFields
	// ingressitemDescEnqueuedAt is the schema descriptor for enqueued_at field.
	ingressitemDescEnqueuedAt := ingressitemFields[3].Descriptor()
	// ingressitem.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	ingressitem.DefaultEnqueuedAt = ingressitemDescEnqueuedAt.Default.(func() time.Time)
	// ingressitemDescAttempts is the schema descriptor for attempts field.
	ingressitemDescAttempts := ingressitemFields[6].Descriptor()
	// ingressitem.DefaultAttempts holds the default value on creation for the attempts field.
	ingressitem.DefaultAttempts = ingressitemDescAttempts.Default.(int)
	messageinboxFields := schema.MessageInbox{}.Fields()
	_ = messageinboxFields
	// messageinboxDescObservedAt is the schema descriptor for observed_at field.
	messageinboxDescObservedAt := messageinboxFields[13].Descriptor()
	// messageinbox.DefaultObservedAt holds the default value on creation for the observed_at field.
	messageinbox.DefaultObservedAt = messageinboxDescObservedAt.Default.(func() time.Time)
	pendingactionFields := schema.PendingAction{}.Fields()
	_ = pendingactionFields
	// pendingactionDescCreatedAt is the schema descriptor for created_at field.
	pendingactionDescCreatedAt := pendingactionFields[6].Descriptor()
	// pendingaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendingaction.DefaultCreatedAt = pendingactionDescCreatedAt.Default.(func() time.Time)
	registryentryFields := schema.RegistryEntry{}.Fields()
	_ = registryentryFields
	// registryentryDescRouteContractMin is the schema descriptor for route_contract_min field.
	registryentryDescRouteContractMin := registryentryFields[2].Descriptor()
	// registryentry.DefaultRouteContractMin holds the default value on creation for the route_contract_min field.
	registryentry.DefaultRouteContractMin = registryentryDescRouteContractMin.Default.(int)
	// registryentryDescRouteContractMax is the schema descriptor for route_contract_max field.
	registryentryDescRouteContractMax := registryentryFields[3].Descriptor()
	// registryentry.DefaultRouteContractMax holds the default value on creation for the route_contract_max field.
	registryentry.DefaultRouteContractMax = registryentryDescRouteContractMax.Default.(int)
	// registryentryDescLivenessTTLS is the schema descriptor for liveness_ttl_s field.
	registryentryDescLivenessTTLS := registryentryFields[8].Descriptor()
	// registryentry.DefaultLivenessTTLS holds the default value on creation for the liveness_ttl_s field.
	registryentry.DefaultLivenessTTLS = registryentryDescLivenessTTLS.Default.(int)
	// registryentryDescFirstSeenAt is the schema descriptor for first_seen_at field.
	registryentryDescFirstSeenAt := registryentryFields[10].Descriptor()
	// registryentry.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	registryentry.DefaultFirstSeenAt = registryentryDescFirstSeenAt.Default.(func() time.Time)
	// registryentryDescUpdatedAt is the schema descriptor for updated_at field.
	registryentryDescUpdatedAt := registryentryFields[11].Descriptor()
	// registryentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	registryentry.DefaultUpdatedAt = registryentryDescUpdatedAt.Default.(func() time.Time)
	// registryentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	registryentry.UpdateDefaultUpdatedAt = registryentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduledtaskFields := schema.ScheduledTask{}.Fields()
	_ = scheduledtaskFields
	// scheduledtaskDescEnabled is the schema descriptor for enabled field.
	scheduledtaskDescEnabled := scheduledtaskFields[8].Descriptor()
	// scheduledtask.DefaultEnabled holds the default value on creation for the enabled field.
	scheduledtask.DefaultEnabled = scheduledtaskDescEnabled.Default.(bool)
	// scheduledtaskDescCreatedAt is the schema descriptor for created_at field.
	scheduledtaskDescCreatedAt := scheduledtaskFields[14].Descriptor()
	// scheduledtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledtask.DefaultCreatedAt = scheduledtaskDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[6].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescInputTokens is the schema descriptor for input_tokens field.
	sessionDescInputTokens := sessionFields[10].Descriptor()
	// session.DefaultInputTokens holds the default value on creation for the input_tokens field.
	session.DefaultInputTokens = sessionDescInputTokens.Default.(int)
	// sessionDescOutputTokens is the schema descriptor for output_tokens field.
	sessionDescOutputTokens := sessionFields[11].Descriptor()
	// session.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	session.DefaultOutputTokens = sessionDescOutputTokens.Default.(int)
	stateentryFields := schema.StateEntry{}.Fields()
	_ = stateentryFields
	// stateentryDescUpdatedAt is the schema descriptor for updated_at field.
	stateentryDescUpdatedAt := stateentryFields[4].Descriptor()
	// stateentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stateentry.DefaultUpdatedAt = stateentryDescUpdatedAt.Default.(func() time.Time)
	// stateentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stateentry.UpdateDefaultUpdatedAt = stateentryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
