package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/pkg/classify"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/fanout"
)

type fakeInbox struct {
	row            *ent.MessageInbox
	getErr         error
	classifying    []string
	classification [][]map[string]any
	failed         []string
}

func (f *fakeInbox) Get(_ context.Context, requestID string) (*ent.MessageInbox, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.row, nil
}

func (f *fakeInbox) MarkClassifying(_ context.Context, requestID string) error {
	f.classifying = append(f.classifying, requestID)
	return nil
}

func (f *fakeInbox) RecordClassification(_ context.Context, requestID string, entries []map[string]any) error {
	f.classification = append(f.classification, entries)
	return nil
}

func (f *fakeInbox) MarkFailed(_ context.Context, requestID string) error {
	f.failed = append(f.failed, requestID)
	return nil
}

type fakeClassifier struct {
	entries []classify.Entry
	err     error
	gotText string
}

func (f *fakeClassifier) Classify(_ context.Context, text string) ([]classify.Entry, error) {
	f.gotText = text
	return f.entries, f.err
}

type fakeExecutor struct {
	plans []*fanout.Plan
	err   error
}

func (f *fakeExecutor) Execute(_ context.Context, plan *fanout.Plan) (*fanout.Outcome, error) {
	f.plans = append(f.plans, plan)
	if f.err != nil {
		return nil, f.err
	}
	return &fanout.Outcome{RequestID: plan.RequestID, Status: "routed"}, nil
}

func inboxRow() *ent.MessageInbox {
	return &ent.MessageInbox{
		ID:             "req-1",
		Status:         "accepted",
		NormalizedText: "water the plants",
		Body:           `{"text":"water the plants"}`,
	}
}

func TestPipelineProcess(t *testing.T) {
	cfg := config.DefaultFanoutConfig()

	t.Run("happy path classifies and dispatches", func(t *testing.T) {
		inbox := &fakeInbox{row: inboxRow()}
		classifier := &fakeClassifier{entries: []classify.Entry{
			{Butler: "gardener", Prompt: "water the plants"},
		}}
		executor := &fakeExecutor{}

		p := New(inbox, classifier, executor, cfg)
		err := p.Process(context.Background(), "req-1")
		require.NoError(t, err)

		assert.Equal(t, []string{"req-1"}, inbox.classifying)
		require.Len(t, inbox.classification, 1)
		assert.Equal(t, "gardener", inbox.classification[0][0]["butler"])
		require.Len(t, executor.plans, 1)
		assert.Equal(t, "req-1", executor.plans[0].RequestID)
		assert.Equal(t, "water the plants", classifier.gotText)
		assert.Empty(t, inbox.failed)
	})

	t.Run("falls back to raw body without normalized text", func(t *testing.T) {
		row := inboxRow()
		row.NormalizedText = ""
		inbox := &fakeInbox{row: row}
		classifier := &fakeClassifier{entries: []classify.Entry{
			{Butler: "gardener", Prompt: "x"},
		}}

		p := New(inbox, classifier, &fakeExecutor{}, cfg)
		require.NoError(t, p.Process(context.Background(), "req-1"))
		assert.Equal(t, `{"text":"water the plants"}`, classifier.gotText)
	})

	t.Run("JSON string body is unquoted for the classifier", func(t *testing.T) {
		row := inboxRow()
		row.NormalizedText = ""
		row.Body = `"water the plants"`
		inbox := &fakeInbox{row: row}
		classifier := &fakeClassifier{entries: []classify.Entry{
			{Butler: "gardener", Prompt: "x"},
		}}

		p := New(inbox, classifier, &fakeExecutor{}, cfg)
		require.NoError(t, p.Process(context.Background(), "req-1"))
		assert.Equal(t, "water the plants", classifier.gotText)
	})

	t.Run("terminal row is skipped", func(t *testing.T) {
		row := inboxRow()
		row.Status = "routed"
		inbox := &fakeInbox{row: row}
		executor := &fakeExecutor{}

		p := New(inbox, &fakeClassifier{}, executor, cfg)
		require.NoError(t, p.Process(context.Background(), "req-1"))
		assert.Empty(t, inbox.classifying)
		assert.Empty(t, executor.plans)
	})

	t.Run("classifier error is retryable", func(t *testing.T) {
		inbox := &fakeInbox{row: inboxRow()}
		classifier := &fakeClassifier{err: errors.New("registry down")}

		p := New(inbox, classifier, &fakeExecutor{}, cfg)
		err := p.Process(context.Background(), "req-1")
		require.Error(t, err)
		assert.Empty(t, inbox.failed)
	})

	t.Run("unplannable message fails terminally without retry", func(t *testing.T) {
		// Over the subrequest cap: planning fails, the row is marked failed,
		// and no error propagates back to the worker.
		small := &config.FanoutConfig{SubrequestTimeout: cfg.SubrequestTimeout, MaxSubrequests: 1}
		inbox := &fakeInbox{row: inboxRow()}
		classifier := &fakeClassifier{entries: []classify.Entry{
			{Butler: "gardener", Prompt: "a"},
			{Butler: "chef", Prompt: "b"},
		}}
		executor := &fakeExecutor{}

		p := New(inbox, classifier, executor, small)
		require.NoError(t, p.Process(context.Background(), "req-1"))
		assert.Equal(t, []string{"req-1"}, inbox.failed)
		assert.Empty(t, executor.plans)
	})

	t.Run("dispatch error is retryable", func(t *testing.T) {
		inbox := &fakeInbox{row: inboxRow()}
		classifier := &fakeClassifier{entries: []classify.Entry{
			{Butler: "gardener", Prompt: "x"},
		}}
		executor := &fakeExecutor{err: errors.New("db write failed")}

		p := New(inbox, classifier, executor, cfg)
		require.Error(t, p.Process(context.Background(), "req-1"))
		assert.Empty(t, inbox.failed)
	})

	t.Run("routing hints shape the plan", func(t *testing.T) {
		row := inboxRow()
		row.Metadata = map[string]any{
			"routing_hints": map[string]any{"mode": "ordered"},
		}
		inbox := &fakeInbox{row: row}
		classifier := &fakeClassifier{entries: []classify.Entry{
			{Butler: "gardener", Prompt: "a"},
			{Butler: "chef", Prompt: "b"},
		}}
		executor := &fakeExecutor{}

		p := New(inbox, classifier, executor, cfg)
		require.NoError(t, p.Process(context.Background(), "req-1"))
		require.Len(t, executor.plans, 1)
		assert.Equal(t, fanout.ModeOrdered, executor.plans[0].Mode)
	})
}

func TestHintsFromMetadata(t *testing.T) {
	assert.Nil(t, hintsFromMetadata(nil))
	assert.Nil(t, hintsFromMetadata(map[string]any{"other": 1}))
	assert.Nil(t, hintsFromMetadata(map[string]any{"routing_hints": map[string]any{}}))

	h := hintsFromMetadata(map[string]any{
		"routing_hints": map[string]any{
			"mode":        "conditional",
			"join_policy": "first_success",
		},
	})
	require.NotNil(t, h)
	assert.Equal(t, "conditional", h.Mode)
	assert.Equal(t, "first_success", h.JoinPolicy)
	assert.Empty(t, h.AbortPolicy)
}
