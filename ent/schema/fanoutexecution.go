package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FanoutExecution records the outcome of one fanout subrequest.
type FanoutExecution struct {
	ent.Schema
}

// Fields of the FanoutExecution.
func (FanoutExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("subrequest_id").
			Immutable(),
		field.String("segment_id").
			Optional().
			Immutable(),
		field.String("butler_name").
			Immutable(),
		field.Enum("status").
			Values("completed", "failed", "timeout", "skipped", "cancelled"),
		field.String("error_kind").
			Optional().
			Comment("Canonical route error class when failed"),
		field.String("error_message").
			Optional(),
		field.Time("started_at").
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FanoutExecution.
func (FanoutExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("butler_name", "created_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (FanoutExecution) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "fanout_execution_log"},
	}
}
