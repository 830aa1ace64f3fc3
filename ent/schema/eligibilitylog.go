package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EligibilityLog is the append-only record of registry state transitions.
type EligibilityLog struct {
	ent.Schema
}

// Fields of the EligibilityLog.
func (EligibilityLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("butler_name").
			Immutable(),
		field.String("from_state").
			Immutable(),
		field.String("to_state").
			Immutable(),
		field.String("reason").
			Immutable().
			Comment("ttl_expired, health_restored, re_registered, route_failures, operator"),
		field.String("actor").
			Optional().
			Immutable().
			Comment("Operator identity for manual transitions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EligibilityLog.
func (EligibilityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("butler_name", "created_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (EligibilityLog) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "eligibility_log"},
	}
}
