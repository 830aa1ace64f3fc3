package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConnectorEndpoint is the registry of known connector instances,
// auto-created on first heartbeat from an unknown
// (connector_type, endpoint_identity) pair.
type ConnectorEndpoint struct {
	ent.Schema
}

// Fields of the ConnectorEndpoint.
func (ConnectorEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("connector_type"),
		field.String("endpoint_identity"),
		field.String("instance_id").
			Optional(),
		field.Enum("state").
			Values("healthy", "degraded", "error").
			Default("healthy"),
		field.JSON("counters", map[string]int64{}).
			Optional().
			Comment("Latest monotonic counters since connector process start"),
		field.JSON("checkpoint", map[string]any{}).
			Optional(),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConnectorEndpoint.
func (ConnectorEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("connector_type", "endpoint_identity").
			Unique(),
		index.Fields("state"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (ConnectorEndpoint) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "connector_registry"},
	}
}
