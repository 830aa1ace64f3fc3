package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RegistryEntry holds the schema definition for the butler registry.
// The id is the butler name; the Switchboard butler is the only writer.
type RegistryEntry struct {
	ent.Schema
}

// Fields of the RegistryEntry.
func (RegistryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("butler_name").
			Unique().
			Immutable(),
		field.String("endpoint_url"),
		field.Int("route_contract_min").
			Default(1),
		field.Int("route_contract_max").
			Default(1),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.Text("description").
			Optional().
			Comment("Shown to the classifier when composing the eligible set"),
		field.Enum("eligibility_state").
			Values("active", "quarantined", "stale").
			Default("active"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Int("liveness_ttl_s").
			Default(300),
		field.String("quarantine_reason").
			Optional().
			Nillable(),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RegistryEntry.
func (RegistryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("eligibility_state"),
		index.Fields("eligibility_state", "last_heartbeat_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (RegistryEntry) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "butler_registry"},
	}
}
