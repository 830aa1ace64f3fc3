package approvals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/ent"
)

func TestConstraintMatches(t *testing.T) {
	args := map[string]any{
		"recipient": "owner@example.com",
		"amount":    42,
	}

	t.Run("exact", func(t *testing.T) {
		assert.True(t, Constraint{Arg: "recipient", Kind: ConstraintExact, Value: "owner@example.com"}.Matches(args))
		assert.False(t, Constraint{Arg: "recipient", Kind: ConstraintExact, Value: "other@example.com"}.Matches(args))
		assert.True(t, Constraint{Arg: "amount", Kind: ConstraintExact, Value: "42"}.Matches(args),
			"non-string args compare by string form")
	})

	t.Run("pattern", func(t *testing.T) {
		assert.True(t, Constraint{Arg: "recipient", Kind: ConstraintPattern, Value: `@example\.com$`}.Matches(args))
		assert.False(t, Constraint{Arg: "recipient", Kind: ConstraintPattern, Value: `@corp\.com$`}.Matches(args))
	})

	t.Run("missing arg never matches", func(t *testing.T) {
		assert.False(t, Constraint{Arg: "subject", Kind: ConstraintExact, Value: ""}.Matches(args))
	})

	t.Run("invalid pattern never matches", func(t *testing.T) {
		assert.False(t, Constraint{Arg: "recipient", Kind: ConstraintPattern, Value: "("}.Matches(args))
	})

	t.Run("unknown kind never matches", func(t *testing.T) {
		assert.False(t, Constraint{Arg: "recipient", Kind: "fuzzy", Value: "owner"}.Matches(args))
	})
}

func constraintJSON(cs ...Constraint) []map[string]any {
	out := make([]map[string]any, 0, len(cs))
	for _, c := range cs {
		out = append(out, map[string]any{"arg": c.Arg, "kind": c.Kind, "value": c.Value})
	}
	return out
}

func TestRuleMatches(t *testing.T) {
	rule := &ent.ApprovalRule{
		ArgConstraints: constraintJSON(
			Constraint{Arg: "recipient", Kind: ConstraintExact, Value: "owner"},
			Constraint{Arg: "channel", Kind: ConstraintExact, Value: "telegram"},
		),
	}
	assert.True(t, ruleMatches(rule, map[string]any{"recipient": "owner", "channel": "telegram"}))
	assert.False(t, ruleMatches(rule, map[string]any{"recipient": "owner", "channel": "slack"}),
		"all constraints must pass")

	unconstrained := &ent.ApprovalRule{}
	assert.True(t, ruleMatches(unconstrained, map[string]any{"anything": 1}))
}

func TestSortByPrecedence(t *testing.T) {
	now := time.Now()
	expiry := now.Add(time.Hour)
	oneConstraint := constraintJSON(Constraint{Arg: "a", Kind: ConstraintExact, Value: "1"})
	twoConstraints := constraintJSON(
		Constraint{Arg: "a", Kind: ConstraintExact, Value: "1"},
		Constraint{Arg: "b", Kind: ConstraintExact, Value: "2"},
	)

	rules := []*ent.ApprovalRule{
		{ID: "unbounded-one", ArgConstraints: oneConstraint, CreatedAt: now},
		{ID: "bounded-two", ArgConstraints: twoConstraints, ExpiresAt: &expiry, CreatedAt: now.Add(-time.Hour)},
		{ID: "bounded-one", ArgConstraints: oneConstraint, MaxUses: intPtr(3), CreatedAt: now},
		{ID: "unbounded-two", ArgConstraints: twoConstraints, CreatedAt: now},
	}
	sortByPrecedence(rules)

	ids := []string{rules[0].ID, rules[1].ID, rules[2].ID, rules[3].ID}
	assert.Equal(t, []string{"bounded-two", "unbounded-two", "bounded-one", "unbounded-one"}, ids)
}

func TestSortByPrecedenceTiebreaks(t *testing.T) {
	now := time.Now()
	c := constraintJSON(Constraint{Arg: "a", Kind: ConstraintExact, Value: "1"})

	newer := &ent.ApprovalRule{ID: "z-newer", ArgConstraints: c, MaxUses: intPtr(1), CreatedAt: now}
	older := &ent.ApprovalRule{ID: "a-older", ArgConstraints: c, MaxUses: intPtr(1), CreatedAt: now.Add(-time.Minute)}
	rules := []*ent.ApprovalRule{older, newer}
	sortByPrecedence(rules)
	assert.Equal(t, "z-newer", rules[0].ID, "newer rule wins")

	sameTime := now
	a := &ent.ApprovalRule{ID: "aaa", ArgConstraints: c, MaxUses: intPtr(1), CreatedAt: sameTime}
	b := &ent.ApprovalRule{ID: "bbb", ArgConstraints: c, MaxUses: intPtr(1), CreatedAt: sameTime}
	rules = []*ent.ApprovalRule{b, a}
	sortByPrecedence(rules)
	assert.Equal(t, "aaa", rules[0].ID, "rule id breaks created_at ties")
}

func TestValidateRule(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	one := []Constraint{{Arg: "a", Kind: ConstraintExact, Value: "1"}}

	t.Run("low tier unrestricted", func(t *testing.T) {
		require.NoError(t, ValidateRule("low", nil, nil, 0))
		require.NoError(t, ValidateRule("medium", nil, nil, 0))
	})

	t.Run("high tier needs constraints and bounds", func(t *testing.T) {
		require.Error(t, ValidateRule("high", nil, &expiry, 0))
		require.Error(t, ValidateRule("high", one, nil, 0))
		require.NoError(t, ValidateRule("high", one, &expiry, 0))
		require.NoError(t, ValidateRule("high", one, nil, 5))
	})

	t.Run("critical same as high", func(t *testing.T) {
		require.Error(t, ValidateRule("critical", nil, nil, 0))
		require.NoError(t, ValidateRule("critical", one, nil, 1))
	})
}

// intPtr returns a pointer to n for nillable int fields in literals.
func intPtr(n int) *int { return &n }
