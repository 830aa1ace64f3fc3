package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateEntry is the per-butler KV store exposed through the state tools.
type StateEntry struct {
	ent.Schema
}

// Fields of the StateEntry.
func (StateEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("butler_name"),
		field.String("key"),
		field.JSON("value", map[string]any{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the StateEntry.
func (StateEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("butler_name", "key").
			Unique(),
	}
}

// Annotations pins the table name to the persisted state layout.
func (StateEntry) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "state"},
	}
}
