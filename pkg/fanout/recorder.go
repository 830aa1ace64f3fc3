package fanout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/fanoutexecution"
	"github.com/homekeep/butlerd/ent/messageinbox"
)

// EntRecorder persists outcomes to the fanout execution log and writes
// the final routing results back onto the inbox row.
type EntRecorder struct {
	client *ent.Client
}

// NewEntRecorder creates the database-backed recorder.
func NewEntRecorder(client *ent.Client) *EntRecorder {
	return &EntRecorder{client: client}
}

// RecordSub appends one execution log row.
func (r *EntRecorder) RecordSub(ctx context.Context, requestID string, res SubResult) error {
	create := r.client.FanoutExecution.Create().
		SetID(uuid.NewString()).
		SetRequestID(requestID).
		SetSubrequestID(res.SubrequestID).
		SetButlerName(res.Butler).
		SetStatus(fanoutexecution.Status(res.Status)).
		SetStartedAt(res.StartedAt).
		SetCompletedAt(res.FinishedAt).
		SetDurationMs(res.FinishedAt.Sub(res.StartedAt).Milliseconds())
	if res.ErrorKind != "" {
		create.SetErrorKind(string(res.ErrorKind))
	}
	if res.Error != "" {
		create.SetErrorMessage(res.Error)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("insert fanout execution row: %w", err)
	}
	return nil
}

// RecordFinal writes the aggregate onto message_inbox.routing_results
// and flips the inbox row to its terminal status.
func (r *EntRecorder) RecordFinal(ctx context.Context, outcome *Outcome) error {
	results := make([]map[string]any, 0, len(outcome.Results))
	for _, res := range outcome.Results {
		entry := map[string]any{
			"subrequest_id": res.SubrequestID,
			"butler":        res.Butler,
			"status":        res.Status,
			"duration_ms":   res.FinishedAt.Sub(res.StartedAt).Milliseconds(),
		}
		if res.ErrorKind != "" {
			entry["error_kind"] = string(res.ErrorKind)
		}
		if res.Error != "" {
			entry["error"] = res.Error
		}
		results = append(results, entry)
	}

	err := r.client.MessageInbox.UpdateOneID(outcome.RequestID).
		SetRoutingResults(map[string]any{
			"status":  outcome.Status,
			"results": results,
		}).
		SetStatus(messageinbox.Status(outcome.Status)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record routing results: %w", err)
	}
	return nil
}
