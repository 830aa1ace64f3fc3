package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for one LLM-CLI invocation.
// A row is inserted with status=running before the runtime adapter is
// invoked and updated exactly once with the terminal outcome.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("butler_name"),
		field.Enum("trigger_source").
			Values("external", "schedule", "route", "trigger", "test", "heartbeat"),
		field.Text("prompt"),
		field.String("model").
			Optional(),
		field.Enum("status").
			Values("running", "completed", "error").
			Default("running"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable().
			Comment("Wall-clock duration; >= 0 once terminal"),
		field.JSON("tool_calls", []map[string]any{}).
			Optional().
			Comment("Ground-truth tool-call audit captured by the daemon middleware"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.String("trace_id").
			Optional(),
		field.Text("output").
			Optional().
			Comment("Final adapter output text"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("parent_session_id").
			Optional().
			Nillable().
			Comment("Lineage: session that triggered this one, if any"),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("butler_name", "created_at"),
		index.Fields("status"),
		index.Fields("trigger_source"),
		index.Fields("parent_session_id"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (Session) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "sessions"},
	}
}
