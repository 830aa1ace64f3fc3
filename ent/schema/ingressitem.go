package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IngressItem is the durable backing row for the in-memory ingress queue.
// The cold-path scanner re-leases rows whose lease has expired, so a crash
// between accept and route never loses work.
type IngressItem struct {
	ent.Schema
}

// Fields of the IngressItem.
func (IngressItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ingress_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Comment("MessageInbox row this item carries"),
		field.Enum("priority_tier").
			Values("high_priority", "interactive", "default").
			Default("default"),
		field.Time("enqueued_at").
			Default(time.Now).
			Immutable(),
		field.String("leased_by").
			Optional().
			Nillable().
			Comment("Worker id holding the lease"),
		field.Time("leased_until").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0),
		field.Enum("status").
			Values("pending", "leased", "done", "failed").
			Default("pending"),
	}
}

// Indexes of the IngressItem.
func (IngressItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "priority_tier", "enqueued_at"),
		index.Fields("status", "leased_until"),
		index.Fields("request_id"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (IngressItem) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "ingress_buffer"},
	}
}
