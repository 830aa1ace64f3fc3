package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRule is a standing pre-approval for a gated tool.
// High and critical risk tiers require at least one exact or pattern
// constraint plus bounded scope (expires_at or max_uses); the engine
// enforces this at rule creation.
type ApprovalRule struct {
	ent.Schema
}

// Fields of the ApprovalRule.
func (ApprovalRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("butler_name"),
		field.String("tool_name"),
		field.JSON("arg_constraints", []map[string]any{}).
			Optional().
			Comment("Each: {arg, kind: exact|pattern, value}"),
		field.Enum("risk_tier").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Int("max_uses").
			Optional().
			Nillable(),
		field.Int("uses").
			Default(0),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ApprovalRule.
func (ApprovalRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("butler_name", "tool_name", "enabled"),
	}
}

// Annotations pins the table name to the persisted state layout.
func (ApprovalRule) Annotations() []entschema.Annotation {
	return []entschema.Annotation{
		entsql.Annotation{Table: "approval_rules"},
	}
}
