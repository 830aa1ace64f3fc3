package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConnectorHeartbeat is the raw heartbeat log; rollup jobs aggregate it
// into hourly stats and prune old rows.
type ConnectorHeartbeat struct {
	ent.Schema
}

// Fields of the ConnectorHeartbeat.
func (ConnectorHeartbeat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("connector_type").
			Immutable(),
		field.String("endpoint_identity").
			Immutable(),
		field.String("instance_id").
			Optional().
			Immutable(),
		field.String("state").
			Immutable(),
		field.JSON("counters", map[string]int64{}).
			Optional().
			Immutable(),
		field.JSON("checkpoint", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("sent_at").
			Immutable(),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ConnectorHeartbeat.
func (ConnectorHeartbeat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("connector_type", "endpoint_identity", "received_at"),
		index.Fields("received_at"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (ConnectorHeartbeat) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "connector_heartbeat_log"},
	}
}
