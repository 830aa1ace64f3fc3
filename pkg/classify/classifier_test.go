package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoker struct {
	output string
	err    error
	prompt string
}

func (f *fakeInvoker) Invoke(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.output, f.err
}

type fakeLister struct {
	butlers []ButlerInfo
	err     error
}

func (f *fakeLister) EligibleButlers(context.Context) ([]ButlerInfo, error) {
	return f.butlers, f.err
}

func TestClassify(t *testing.T) {
	roster := &fakeLister{butlers: []ButlerInfo{
		{Name: "chef", Description: "meals and groceries"},
		{Name: "gardener", Description: "plants and yard"},
		{Name: "general", Description: "everything else"},
	}}

	t.Run("multi-domain message", func(t *testing.T) {
		inv := &fakeInvoker{output: `[
			{"butler":"chef","prompt":"buy milk","segment":{"rationale":"groceries"}},
			{"butler":"gardener","prompt":"mow the lawn","segment":{"rationale":"yard"}}
		]`}
		entries, err := NewClassifier(inv, roster).Classify(context.Background(), "buy milk and mow the lawn")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "chef", entries[0].Butler)
		assert.Equal(t, "gardener", entries[1].Butler)
		assert.Contains(t, inv.prompt, "chef: meals and groceries")
		assert.Contains(t, inv.prompt, "buy milk and mow the lawn")
	})

	t.Run("ineligible butler dropped", func(t *testing.T) {
		inv := &fakeInvoker{output: `[
			{"butler":"mechanic","prompt":"fix the car","segment":{"rationale":"car"}},
			{"butler":"chef","prompt":"dinner","segment":{"rationale":"food"}}
		]`}
		entries, err := NewClassifier(inv, roster).Classify(context.Background(), "fix the car, then dinner")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "chef", entries[0].Butler)
	})

	t.Run("invoker failure falls back to general", func(t *testing.T) {
		inv := &fakeInvoker{err: errors.New("adapter timed out")}
		entries, err := NewClassifier(inv, roster).Classify(context.Background(), "hello there")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, FallbackButler, entries[0].Butler)
		assert.Equal(t, "hello there", entries[0].Prompt)
		assert.Equal(t, "fallback", entries[0].Segment.Rationale)
	})

	t.Run("garbage output falls back to general", func(t *testing.T) {
		inv := &fakeInvoker{output: "I am not sure how to classify this."}
		entries, err := NewClassifier(inv, roster).Classify(context.Background(), "mystery")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, FallbackButler, entries[0].Butler)
	})

	t.Run("lister failure is an error", func(t *testing.T) {
		inv := &fakeInvoker{}
		broken := &fakeLister{err: errors.New("db down")}
		_, err := NewClassifier(inv, broken).Classify(context.Background(), "hi")
		require.Error(t, err)
	})
}
