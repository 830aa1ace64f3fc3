// Code generated by ent, DO NOT EDIT.

package approvalrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approvalrule type in the database.
	Label = "approval_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldButlerName holds the string denoting the butler_name field in the database.
	FieldButlerName = "butler_name"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldArgConstraints holds the string denoting the arg_constraints field in the database.
	FieldArgConstraints = "arg_constraints"
	// FieldRiskTier holds the string denoting the risk_tier field in the database.
	FieldRiskTier = "risk_tier"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldMaxUses holds the string denoting the max_uses field in the database.
	FieldMaxUses = "max_uses"
	// FieldUses holds the string denoting the uses field in the database.
	FieldUses = "uses"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the approvalrule in the database.
	Table = "approval_rules"
)

// Columns holds all SQL columns for approvalrule fields.
var Columns = []string{
	FieldID,
	FieldButlerName,
	FieldToolName,
	FieldArgConstraints,
	FieldRiskTier,
	FieldExpiresAt,
	FieldMaxUses,
	FieldUses,
	FieldEnabled,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUses holds the default value on creation for the "uses" field.
	DefaultUses int
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RiskTier defines the type for the "risk_tier" enum field.
type RiskTier string

// RiskTierMedium is the default value of the RiskTier enum.
const DefaultRiskTier = RiskTierMedium

// RiskTier values.
const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

func (rt RiskTier) String() string {
	return string(rt)
}

// RiskTierValidator is a validator for the "risk_tier" field enum values. It is called by the builders before save.
func RiskTierValidator(rt RiskTier) error {
	switch rt {
	case RiskTierLow, RiskTierMedium, RiskTierHigh, RiskTierCritical:
		return nil
	default:
		return fmt.Errorf("approvalrule: invalid enum value for risk_tier field: %q", rt)
	}
}

// OrderOption defines the ordering options for the ApprovalRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByButlerName orders the results by the butler_name field.
func ByButlerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldButlerName, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByRiskTier orders the results by the risk_tier field.
func ByRiskTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskTier, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByMaxUses orders the results by the max_uses field.
func ByMaxUses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxUses, opts...).ToFunc()
}

// ByUses orders the results by the uses field.
func ByUses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUses, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
