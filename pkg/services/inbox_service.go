package services

import (
	"context"
	"fmt"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/messageinbox"
)

// InboxService reads and transitions message inbox rows for the
// Switchboard's classify→dispatch pipeline and the ops surface.
type InboxService struct {
	client *ent.Client
}

// NewInboxService creates the inbox service.
func NewInboxService(client *ent.Client) *InboxService {
	return &InboxService{client: client}
}

// Get returns one inbox row by request id.
func (s *InboxService) Get(ctx context.Context, requestID string) (*ent.MessageInbox, error) {
	if requestID == "" {
		return nil, NewValidationError("request_id", "required")
	}
	row, err := s.client.MessageInbox.Query().
		Where(messageinbox.IDEQ(requestID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("inbox row %q: %w", requestID, ErrNotFound)
	}
	return row, err
}

// MarkClassifying flips an accepted row to classifying. Idempotent per
// the pipeline's retry semantics: re-processing an already-advanced row
// is allowed.
func (s *InboxService) MarkClassifying(ctx context.Context, requestID string) error {
	return s.client.MessageInbox.UpdateOneID(requestID).
		SetStatus(messageinbox.StatusClassifying).
		Exec(ctx)
}

// RecordClassification stores the classification entries and advances
// the row to routing.
func (s *InboxService) RecordClassification(ctx context.Context, requestID string, entries []map[string]any) error {
	return s.client.MessageInbox.UpdateOneID(requestID).
		SetClassification(entries).
		SetStatus(messageinbox.StatusRouting).
		Exec(ctx)
}

// MarkFailed records a terminal pipeline failure.
func (s *InboxService) MarkFailed(ctx context.Context, requestID string) error {
	return s.client.MessageInbox.UpdateOneID(requestID).
		SetStatus(messageinbox.StatusFailed).
		Exec(ctx)
}

// Recent returns the latest inbox rows for the ops surface.
func (s *InboxService) Recent(ctx context.Context, limit int) ([]*ent.MessageInbox, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.client.MessageInbox.Query().
		Order(ent.Desc(messageinbox.FieldObservedAt)).
		Limit(limit).
		All(ctx)
}
