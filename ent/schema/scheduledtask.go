package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledTask holds the schema definition for a butler's scheduled task.
type ScheduledTask struct {
	ent.Schema
}

// Fields of the ScheduledTask.
func (ScheduledTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("butler_name"),
		field.String("name"),
		field.String("cron").
			Comment("5-field UTC cron expression"),
		field.Enum("dispatch_mode").
			Values("prompt", "job"),
		field.Text("prompt").
			Optional().
			Comment("Static prompt for dispatch_mode=prompt"),
		field.String("job_name").
			Optional().
			Comment("Registered native handler for dispatch_mode=job"),
		field.JSON("job_args", map[string]any{}).
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Time("next_run_at").
			Optional().
			Nillable(),
		field.String("last_status").
			Optional().
			Comment("Outcome of the most recent firing (audit)"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScheduledTask.
func (ScheduledTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("butler_name", "name").
			Unique(),
		index.Fields("enabled", "next_run_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (ScheduledTask) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "scheduled_tasks"},
	}
}
