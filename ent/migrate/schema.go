// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalEventsColumns holds the columns for the "approval_events" table.
	ApprovalEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "action_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ApprovalEventsTable holds the schema information for the "approval_events" table.
	ApprovalEventsTable = &schema.Table{
		Name:       "approval_events",
		Columns:    ApprovalEventsColumns,
		PrimaryKey: []*schema.Column{ApprovalEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalevent_action_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalEventsColumns[1], ApprovalEventsColumns[4]},
			},
		},
	}
	// ApprovalRulesColumns holds the columns for the "approval_rules" table.
	ApprovalRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "arg_constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_tier", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "max_uses", Type: field.TypeInt, Nullable: true},
		{Name: "uses", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ApprovalRulesTable holds the schema information for the "approval_rules" table.
	ApprovalRulesTable = &schema.Table{
		Name:       "approval_rules",
		Columns:    ApprovalRulesColumns,
		PrimaryKey: []*schema.Column{ApprovalRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrule_butler_name_tool_name_enabled",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRulesColumns[1], ApprovalRulesColumns[2], ApprovalRulesColumns[8]},
			},
		},
	}
	// ButlerSecretsColumns holds the columns for the "butler_secrets" table.
	ButlerSecretsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ButlerSecretsTable holds the schema information for the "butler_secrets" table.
	ButlerSecretsTable = &schema.Table{
		Name:       "butler_secrets",
		Columns:    ButlerSecretsColumns,
		PrimaryKey: []*schema.Column{ButlerSecretsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "butlersecret_butler_name_key",
				Unique:  true,
				Columns: []*schema.Column{ButlerSecretsColumns[1], ButlerSecretsColumns[2]},
			},
		},
	}
	// ConnectorRegistryColumns holds the columns for the "connector_registry" table.
	ConnectorRegistryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "connector_type", Type: field.TypeString},
		{Name: "endpoint_identity", Type: field.TypeString},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"healthy", "degraded", "error"}, Default: "healthy"},
		{Name: "counters", Type: field.TypeJSON, Nullable: true},
		{Name: "checkpoint", Type: field.TypeJSON, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
	}
	// ConnectorRegistryTable holds the schema information for the "connector_registry" table.
	ConnectorRegistryTable = &schema.Table{
		Name:       "connector_registry",
		Columns:    ConnectorRegistryColumns,
		PrimaryKey: []*schema.Column{ConnectorRegistryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connectorendpoint_connector_type_endpoint_identity",
				Unique:  true,
				Columns: []*schema.Column{ConnectorRegistryColumns[1], ConnectorRegistryColumns[2]},
			},
			{
				Name:    "connectorendpoint_state",
				Unique:  false,
				Columns: []*schema.Column{ConnectorRegistryColumns[4]},
			},
		},
	}
	// ConnectorHeartbeatLogColumns holds the columns for the "connector_heartbeat_log" table.
	ConnectorHeartbeatLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "connector_type", Type: field.TypeString},
		{Name: "endpoint_identity", Type: field.TypeString},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString},
		{Name: "counters", Type: field.TypeJSON, Nullable: true},
		{Name: "checkpoint", Type: field.TypeJSON, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "received_at", Type: field.TypeTime},
	}
	// ConnectorHeartbeatLogTable holds the schema information for the "connector_heartbeat_log" table.
	ConnectorHeartbeatLogTable = &schema.Table{
		Name:       "connector_heartbeat_log",
		Columns:    ConnectorHeartbeatLogColumns,
		PrimaryKey: []*schema.Column{ConnectorHeartbeatLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connectorheartbeat_connector_type_endpoint_identity_received_at",
				Unique:  false,
				Columns: []*schema.Column{ConnectorHeartbeatLogColumns[1], ConnectorHeartbeatLogColumns[2], ConnectorHeartbeatLogColumns[8]},
			},
			{
				Name:    "connectorheartbeat_received_at",
				Unique:  false,
				Columns: []*schema.Column{ConnectorHeartbeatLogColumns[8]},
			},
		},
	}
	// EligibilityLogColumns holds the columns for the "eligibility_log" table.
	EligibilityLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EligibilityLogTable holds the schema information for the "eligibility_log" table.
	EligibilityLogTable = &schema.Table{
		Name:       "eligibility_log",
		Columns:    EligibilityLogColumns,
		PrimaryKey: []*schema.Column{EligibilityLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eligibilitylog_butler_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{EligibilityLogColumns[1], EligibilityLogColumns[6]},
			},
		},
	}
	// FanoutExecutionLogColumns holds the columns for the "fanout_execution_log" table.
	FanoutExecutionLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "subrequest_id", Type: field.TypeString},
		{Name: "segment_id", Type: field.TypeString, Nullable: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed", "timeout", "skipped", "cancelled"}},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FanoutExecutionLogTable holds the schema information for the "fanout_execution_log" table.
	FanoutExecutionLogTable = &schema.Table{
		Name:       "fanout_execution_log",
		Columns:    FanoutExecutionLogColumns,
		PrimaryKey: []*schema.Column{FanoutExecutionLogColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fanoutexecution_request_id",
				Unique:  false,
				Columns: []*schema.Column{FanoutExecutionLogColumns[1]},
			},
			{
				Name:    "fanoutexecution_butler_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{FanoutExecutionLogColumns[4], FanoutExecutionLogColumns[11]},
			},
		},
	}
	// IngressBufferColumns holds the columns for the "ingress_buffer" table.
	IngressBufferColumns = []*schema.Column{
		{Name: "ingress_id", Type: field.TypeString, Unique: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "priority_tier", Type: field.TypeEnum, Enums: []string{"high_priority", "interactive", "default"}, Default: "default"},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "leased_by", Type: field.TypeString, Nullable: true},
		{Name: "leased_until", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "leased", "done", "failed"}, Default: "pending"},
	}
	// IngressBufferTable holds the schema information for the "ingress_buffer" table.
	IngressBufferTable = &schema.Table{
		Name:       "ingress_buffer",
		Columns:    IngressBufferColumns,
		PrimaryKey: []*schema.Column{IngressBufferColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingressitem_status_priority_tier_enqueued_at",
				Unique:  false,
				Columns: []*schema.Column{IngressBufferColumns[7], IngressBufferColumns[2], IngressBufferColumns[3]},
			},
			{
				Name:    "ingressitem_status_leased_until",
				Unique:  false,
				Columns: []*schema.Column{IngressBufferColumns[7], IngressBufferColumns[5]},
			},
			{
				Name:    "ingressitem_request_id",
				Unique:  false,
				Columns: []*schema.Column{IngressBufferColumns[1]},
			},
		},
	}
	// MessageInboxColumns holds the columns for the "message_inbox" table.
	MessageInboxColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "dedupe_key", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "endpoint_identity", Type: field.TypeString},
		{Name: "sender_identity", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "normalized_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "thread_target", Type: field.TypeString, Nullable: true},
		{Name: "policy_tier", Type: field.TypeEnum, Enums: []string{"default", "interactive", "high_priority"}, Default: "default"},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "observed_at", Type: field.TypeTime},
		{Name: "classification", Type: field.TypeJSON, Nullable: true},
		{Name: "routing_results", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"accepted", "classifying", "routing", "routed", "failed"}, Default: "accepted"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// MessageInboxTable holds the schema information for the "message_inbox" table.
	MessageInboxTable = &schema.Table{
		Name:       "message_inbox",
		Columns:    MessageInboxColumns,
		PrimaryKey: []*schema.Column{MessageInboxColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messageinbox_status",
				Unique:  false,
				Columns: []*schema.Column{MessageInboxColumns[16]},
			},
			{
				Name:    "messageinbox_endpoint_identity_sender_identity",
				Unique:  false,
				Columns: []*schema.Column{MessageInboxColumns[4], MessageInboxColumns[5]},
			},
			{
				Name:    "messageinbox_status_observed_at",
				Unique:  false,
				Columns: []*schema.Column{MessageInboxColumns[16], MessageInboxColumns[13]},
			},
		},
	}
	// PendingActionsColumns holds the columns for the "pending_actions" table.
	PendingActionsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_args", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired", "executed"}, Default: "pending"},
		{Name: "risk_tier", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_result", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// PendingActionsTable holds the schema information for the "pending_actions" table.
	PendingActionsTable = &schema.Table{
		Name:       "pending_actions",
		Columns:    PendingActionsColumns,
		PrimaryKey: []*schema.Column{PendingActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingaction_status",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[4]},
			},
			{
				Name:    "pendingaction_butler_name_status",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[1], PendingActionsColumns[4]},
			},
			{
				Name:    "pendingaction_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[4], PendingActionsColumns[9]},
			},
		},
	}
	// ButlerRegistryColumns holds the columns for the "butler_registry" table.
	ButlerRegistryColumns = []*schema.Column{
		{Name: "butler_name", Type: field.TypeString, Unique: true},
		{Name: "endpoint_url", Type: field.TypeString},
		{Name: "route_contract_min", Type: field.TypeInt, Default: 1},
		{Name: "route_contract_max", Type: field.TypeInt, Default: 1},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "eligibility_state", Type: field.TypeEnum, Enums: []string{"active", "quarantined", "stale"}, Default: "active"},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "liveness_ttl_s", Type: field.TypeInt, Default: 300},
		{Name: "quarantine_reason", Type: field.TypeString, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ButlerRegistryTable holds the schema information for the "butler_registry" table.
	ButlerRegistryTable = &schema.Table{
		Name:       "butler_registry",
		Columns:    ButlerRegistryColumns,
		PrimaryKey: []*schema.Column{ButlerRegistryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "registryentry_eligibility_state",
				Unique:  false,
				Columns: []*schema.Column{ButlerRegistryColumns[6]},
			},
			{
				Name:    "registryentry_eligibility_state_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{ButlerRegistryColumns[6], ButlerRegistryColumns[7]},
			},
		},
	}
	// ScheduledTasksColumns holds the columns for the "scheduled_tasks" table.
	ScheduledTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "cron", Type: field.TypeString},
		{Name: "dispatch_mode", Type: field.TypeEnum, Enums: []string{"prompt", "job"}},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "job_name", Type: field.TypeString, Nullable: true},
		{Name: "job_args", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_status", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScheduledTasksTable holds the schema information for the "scheduled_tasks" table.
	ScheduledTasksTable = &schema.Table{
		Name:       "scheduled_tasks",
		Columns:    ScheduledTasksColumns,
		PrimaryKey: []*schema.Column{ScheduledTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledtask_butler_name_name",
				Unique:  true,
				Columns: []*schema.Column{ScheduledTasksColumns[1], ScheduledTasksColumns[2]},
			},
			{
				Name:    "scheduledtask_enabled_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTasksColumns[8], ScheduledTasksColumns[11]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "trigger_source", Type: field.TypeEnum, Enums: []string{"external", "schedule", "route", "trigger", "test", "heartbeat"}},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "error"}, Default: "running"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "parent_session_id", Type: field.TypeString, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_butler_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[6]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
			},
			{
				Name:    "session_trigger_source",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_parent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[15]},
			},
		},
	}
	// StateColumns holds the columns for the "state" table.
	StateColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "butler_name", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StateTable holds the schema information for the "state" table.
	StateTable = &schema.Table{
		Name:       "state",
		Columns:    StateColumns,
		PrimaryKey: []*schema.Column{StateColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stateentry_butler_name_key",
				Unique:  true,
				Columns: []*schema.Column{StateColumns[1], StateColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalEventsTable,
		ApprovalRulesTable,
		ButlerSecretsTable,
		ConnectorRegistryTable,
		ConnectorHeartbeatLogTable,
		EligibilityLogTable,
		FanoutExecutionLogTable,
		IngressBufferTable,
		MessageInboxTable,
		PendingActionsTable,
		ButlerRegistryTable,
		ScheduledTasksTable,
		SessionsTable,
		StateTable,
	}
)

func init() {
	ApprovalEventsTable.Annotation = &entsql.Annotation{
		Table: "approval_events",
	}
	ApprovalRulesTable.Annotation = &entsql.Annotation{
		Table: "approval_rules",
	}
	ButlerSecretsTable.Annotation = &entsql.Annotation{
		Table: "butler_secrets",
	}
	ConnectorRegistryTable.Annotation = &entsql.Annotation{
		Table: "connector_registry",
	}
	ConnectorHeartbeatLogTable.Annotation = &entsql.Annotation{
		Table: "connector_heartbeat_log",
	}
	EligibilityLogTable.Annotation = &entsql.Annotation{
		Table: "eligibility_log",
	}
	FanoutExecutionLogTable.Annotation = &entsql.Annotation{
		Table: "fanout_execution_log",
	}
	IngressBufferTable.Annotation = &entsql.Annotation{
		Table: "ingress_buffer",
	}
	MessageInboxTable.Annotation = &entsql.Annotation{
		Table: "message_inbox",
	}
	PendingActionsTable.Annotation = &entsql.Annotation{
		Table: "pending_actions",
	}
	ButlerRegistryTable.Annotation = &entsql.Annotation{
		Table: "butler_registry",
	}
	ScheduledTasksTable.Annotation = &entsql.Annotation{
		Table: "scheduled_tasks",
	}
	SessionsTable.Annotation = &entsql.Annotation{
		Table: "sessions",
	}
	StateTable.Annotation = &entsql.Annotation{
		Table: "state",
	}
}
