package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageInbox holds the schema definition for ingested external messages.
// One row per canonical request_id; the dedupe_key unique index is what makes
// ingest idempotent.
type MessageInbox struct {
	ent.Schema
}

// Fields of the MessageInbox.
func (MessageInbox) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable().
			Comment("Server-minted canonical request identifier (UUID v4)"),
		field.String("dedupe_key").
			Unique().
			Immutable().
			Comment("SHA256 over endpoint/sender identity + idempotency discriminator"),
		field.String("channel"),
		field.String("provider"),
		field.String("endpoint_identity"),
		field.String("sender_identity"),
		field.String("content_type"),
		field.Text("body").
			Comment("Opaque payload body as received"),
		field.Text("normalized_text").
			Optional().
			Comment("Connector-normalized plain text, when provided"),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.String("thread_target").
			Optional().
			Nillable(),
		field.Enum("policy_tier").
			Values("default", "interactive", "high_priority").
			Default("default"),
		field.Time("sent_at"),
		field.Time("observed_at").
			Default(time.Now).
			Immutable(),
		field.JSON("classification", []map[string]any{}).
			Optional().
			Comment("Classifier output: routing entries"),
		field.JSON("routing_results", map[string]any{}).
			Optional().
			Comment("Final fanout outcome per subrequest"),
		field.Enum("status").
			Values("accepted", "classifying", "routing", "routed", "failed").
			Default("accepted"),
		field.JSON("metadata", map[string]any{}).
			Optional(),
	}
}

// Indexes of the MessageInbox.
func (MessageInbox) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("endpoint_identity", "sender_identity"),
		index.Fields("status", "observed_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (MessageInbox) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "message_inbox"},
	}
}
