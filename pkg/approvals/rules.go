// Package approvals gates risky tool calls behind human decisions and
// standing pre-approval rules. Every transition is audit-logged to an
// append-only event table; decision writes are compare-and-set so
// concurrent deciders cannot overwrite one another.
package approvals

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/homekeep/butlerd/ent"
)

// Constraint kinds.
const (
	ConstraintExact   = "exact"
	ConstraintPattern = "pattern"
)

// Constraint restricts one tool argument.
type Constraint struct {
	Arg   string `json:"arg"`
	Kind  string `json:"kind"` // exact | pattern
	Value string `json:"value"`
}

// Matches reports whether the argument map satisfies the constraint.
// Missing arguments never match.
func (c Constraint) Matches(args map[string]any) bool {
	raw, ok := args[c.Arg]
	if !ok {
		return false
	}
	val := fmt.Sprintf("%v", raw)
	switch c.Kind {
	case ConstraintExact:
		return val == c.Value
	case ConstraintPattern:
		re, err := regexp.Compile(c.Value)
		if err != nil {
			return false
		}
		return re.MatchString(val)
	default:
		return false
	}
}

// decodeConstraints converts the stored JSON shape into constraints.
func decodeConstraints(raw []map[string]any) []Constraint {
	out := make([]Constraint, 0, len(raw))
	for _, m := range raw {
		c := Constraint{}
		if v, ok := m["arg"].(string); ok {
			c.Arg = v
		}
		if v, ok := m["kind"].(string); ok {
			c.Kind = v
		}
		if v, ok := m["value"].(string); ok {
			c.Value = v
		}
		if c.Arg != "" && c.Value != "" {
			out = append(out, c)
		}
	}
	return out
}

// ruleMatches reports whether every constraint of the rule passes.
// A rule with no constraints matches any args (low/medium only; the
// validator forbids unconstrained high/critical rules).
func ruleMatches(rule *ent.ApprovalRule, args map[string]any) bool {
	for _, c := range decodeConstraints(rule.ArgConstraints) {
		if !c.Matches(args) {
			return false
		}
	}
	return true
}

// ruleBounded reports whether the rule has bounded scope.
func ruleBounded(rule *ent.ApprovalRule) bool {
	return rule.ExpiresAt != nil || (rule.MaxUses != nil && *rule.MaxUses > 0)
}

// sortByPrecedence orders matching rules: most specific first, bounded
// before unbounded, newest first, rule id as the stable tiebreak.
func sortByPrecedence(rules []*ent.ApprovalRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		si, sj := len(rules[i].ArgConstraints), len(rules[j].ArgConstraints)
		if si != sj {
			return si > sj
		}
		bi, bj := ruleBounded(rules[i]), ruleBounded(rules[j])
		if bi != bj {
			return bi
		}
		if !rules[i].CreatedAt.Equal(rules[j].CreatedAt) {
			return rules[i].CreatedAt.After(rules[j].CreatedAt)
		}
		return rules[i].ID < rules[j].ID
	})
}

// ValidateRule enforces the standing-rule safety invariant: high and
// critical tiers need at least one exact or pattern constraint and a
// bounded scope (expiry or max uses).
func ValidateRule(riskTier string, constraints []Constraint, expiresAt *time.Time, maxUses int) error {
	if riskTier != "high" && riskTier != "critical" {
		return nil
	}
	if len(constraints) == 0 {
		return fmt.Errorf("%s-risk rule requires at least one arg constraint", riskTier)
	}
	if expiresAt == nil && maxUses <= 0 {
		return fmt.Errorf("%s-risk rule requires bounded scope (expires_at or max_uses)", riskTier)
	}
	return nil
}
