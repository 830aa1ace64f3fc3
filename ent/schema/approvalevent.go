package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalEvent is the immutable audit trail of pending-action transitions.
// A DB trigger (see migrations) rejects UPDATE and DELETE on this table.
type ApprovalEvent struct {
	ent.Schema
}

// Fields of the ApprovalEvent.
func (ApprovalEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("action_id").
			Optional().
			Immutable().
			Comment("Empty for rule_matched events, which have no action"),
		field.String("event_type").
			Immutable().
			Comment("action_created, action_approved, action_rejected, action_expired, action_executed, rule_matched"),
		field.JSON("detail", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ApprovalEvent.
func (ApprovalEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action_id", "created_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (ApprovalEvent) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "approval_events"},
	}
}
