// Package pipeline runs the Switchboard's classify→dispatch path for one
// accepted message. It is the Processor behind the ingress worker pool.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/pkg/classify"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/fanout"
	"github.com/homekeep/butlerd/pkg/ingest"
)

// InboxStore is the message inbox access the pipeline needs.
type InboxStore interface {
	Get(ctx context.Context, requestID string) (*ent.MessageInbox, error)
	MarkClassifying(ctx context.Context, requestID string) error
	RecordClassification(ctx context.Context, requestID string, entries []map[string]any) error
	MarkFailed(ctx context.Context, requestID string) error
}

// Classifier produces routing entries for a message body.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]classify.Entry, error)
}

// Executor runs a fanout plan. The dispatcher's recorder writes the final
// routing result and terminal inbox status.
type Executor interface {
	Execute(ctx context.Context, plan *fanout.Plan) (*fanout.Outcome, error)
}

// Pipeline implements ingress.Processor.
type Pipeline struct {
	inbox      InboxStore
	classifier Classifier
	executor   Executor
	cfg        *config.FanoutConfig
}

// New creates the pipeline. All collaborators are required.
func New(inbox InboxStore, classifier Classifier, executor Executor, cfg *config.FanoutConfig) *Pipeline {
	if inbox == nil || classifier == nil || executor == nil || cfg == nil {
		panic("pipeline: nil collaborator")
	}
	return &Pipeline{inbox: inbox, classifier: classifier, executor: executor, cfg: cfg}
}

// Process runs one message through classification and fanout dispatch.
//
// Errors returned here put the item back through the ingress retry path, so
// only transient failures return non-nil. Terminal problems (validation,
// over-cap plans) mark the row failed and return nil.
func (p *Pipeline) Process(ctx context.Context, requestID string) error {
	row, err := p.inbox.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("load inbox row: %w", err)
	}

	switch row.Status {
	case "routed", "failed":
		// Replayed by the scanner after a crash mid-acknowledge; nothing to do.
		slog.Info("Skipping already-terminal message",
			"request_id", requestID, "status", row.Status)
		return nil
	}

	if err := p.inbox.MarkClassifying(ctx, requestID); err != nil {
		return fmt.Errorf("mark classifying: %w", err)
	}

	text := row.NormalizedText
	if text == "" {
		text = ingest.BodyString([]byte(row.Body))
	}

	entries, err := p.classifier.Classify(ctx, text)
	if err != nil {
		return fmt.Errorf("classify request %s: %w", requestID, err)
	}

	if err := p.inbox.RecordClassification(ctx, requestID, encodeEntries(entries)); err != nil {
		return fmt.Errorf("record classification: %w", err)
	}

	plan, err := fanout.BuildPlan(requestID, entries, hintsFromMetadata(row.Metadata), p.cfg)
	if err != nil {
		// A plan that cannot be built will never build; fail terminally.
		slog.Error("Rejecting unplannable message",
			"request_id", requestID, "error", err)
		if markErr := p.inbox.MarkFailed(ctx, requestID); markErr != nil {
			return fmt.Errorf("mark failed: %w", markErr)
		}
		return nil
	}

	outcome, err := p.executor.Execute(ctx, plan)
	if err != nil {
		return fmt.Errorf("dispatch request %s: %w", requestID, err)
	}

	slog.Info("Message dispatched",
		"request_id", requestID,
		"status", outcome.Status,
		"subrequests", len(outcome.Results))
	return nil
}

// encodeEntries flattens classifier entries for the classification JSON column.
func encodeEntries(entries []classify.Entry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		m := map[string]any{
			"butler": e.Butler,
			"prompt": e.Prompt,
		}
		if len(e.Segment.SentenceSpans) > 0 {
			m["sentence_spans"] = e.Segment.SentenceSpans
		}
		if len(e.Segment.Offsets) > 0 {
			m["offsets"] = e.Segment.Offsets
		}
		if e.Segment.Rationale != "" {
			m["rationale"] = e.Segment.Rationale
		}
		out = append(out, m)
	}
	return out
}

// hintsFromMetadata recovers connector routing hints persisted at ingest time.
func hintsFromMetadata(meta map[string]any) *ingest.RoutingHints {
	raw, ok := meta["routing_hints"].(map[string]any)
	if !ok {
		return nil
	}
	str := func(key string) string {
		s, _ := raw[key].(string)
		return s
	}
	hints := &ingest.RoutingHints{
		Mode:        str("mode"),
		JoinPolicy:  str("join_policy"),
		AbortPolicy: str("abort_policy"),
	}
	if hints.Mode == "" && hints.JoinPolicy == "" && hints.AbortPolicy == "" {
		return nil
	}
	return hints
}
