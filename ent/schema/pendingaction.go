package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingAction holds the schema definition for approval-gated tool calls.
// Decision writes are compare-and-set: every terminal transition carries a
// WHERE status='pending' predicate so concurrent deciders cannot clobber
// one another.
type PendingAction struct {
	ent.Schema
}

// Fields of the PendingAction.
func (PendingAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("butler_name"),
		field.String("tool_name"),
		field.JSON("tool_args", map[string]any{}),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired", "executed").
			Default("pending"),
		field.Enum("risk_tier").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.JSON("execution_result", map[string]any{}).
			Optional().
			Comment("Null until executed; replayed on duplicate execute calls"),
		field.String("session_id").
			Optional().
			Comment("Session whose tool call was intercepted"),
	}
}

// Indexes of the PendingAction.
func (PendingAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("butler_name", "status"),
		index.Fields("status", "expires_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (PendingAction) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "pending_actions"},
	}
}
