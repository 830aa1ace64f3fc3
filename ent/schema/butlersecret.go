package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ButlerSecret is a named credential scoped to a butler. The credential
// store resolves DB-first and falls back to the process environment.
type ButlerSecret struct {
	ent.Schema
}

// Fields of the ButlerSecret.
func (ButlerSecret) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("butler_name"),
		field.String("key"),
		field.Text("value").
			Sensitive(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ButlerSecret.
func (ButlerSecret) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("butler_name", "key").
			Unique(),
	}
}

// Annotations pins the table name to the persisted state layout.
func (ButlerSecret) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "butler_secrets"},
	}
}
