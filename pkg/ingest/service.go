package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/messageinbox"
)

// Enqueuer hands an accepted message to the ingress buffer.
// The buffer absorbs backpressure; Enqueue never blocks.
type Enqueuer interface {
	Enqueue(ctx context.Context, requestID, tier string) error
}

// Service accepts ingest.v1 envelopes: validate, dedupe, persist, enqueue.
type Service struct {
	client   *ent.Client
	enqueuer Enqueuer
}

// NewService creates the ingest service. enqueuer may be nil (CLI one-shot
// ingest persists only; the Switchboard scanner picks the row up).
func NewService(client *ent.Client, enqueuer Enqueuer) *Service {
	return &Service{client: client, enqueuer: enqueuer}
}

// Accept processes one envelope.
//
// Guarantee: two envelopes with the same (endpoint_identity, sender_identity,
// idempotency_key) yield the same request_id; the second insert is a no-op
// and the receipt carries duplicate=true. Both cases are success.
func (s *Service) Accept(ctx context.Context, env *Envelope) (*Receipt, error) {
	sentAt, err := Validate(env)
	if err != nil {
		return nil, err
	}

	dedupeKey := DedupeKey(env, sentAt)
	requestID := uuid.NewString()

	create := s.client.MessageInbox.Create().
		SetID(requestID).
		SetDedupeKey(dedupeKey).
		SetChannel(env.Source.Channel).
		SetProvider(env.Source.Provider).
		SetEndpointIdentity(env.Source.EndpointIdentity).
		SetSenderIdentity(env.Source.SenderIdentity).
		SetContentType(env.Payload.ContentType).
		SetBody(string(env.Payload.Body)).
		SetNormalizedText(env.Payload.NormalizedText).
		SetPolicyTier(messageinbox.PolicyTier(env.PolicyTier())).
		SetSentAt(sentAt)
	if env.IdempotencyKey != "" {
		create = create.SetIdempotencyKey(env.IdempotencyKey)
	}
	if env.ThreadTarget != "" {
		create = create.SetThreadTarget(env.ThreadTarget)
	}
	meta := env.Metadata
	if env.RoutingHints != nil {
		meta = mergeHints(env.Metadata, env.RoutingHints)
	}
	if meta != nil {
		create = create.SetMetadata(meta)
	}

	// Upsert-on-conflict-do-nothing against the dedupe_key unique index.
	err = create.
		OnConflictColumns(messageinbox.FieldDedupeKey).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert message_inbox: %w", err)
	}

	// The canonical row may predate this call; read it back by dedupe key.
	row, err := s.client.MessageInbox.Query().
		Where(messageinbox.DedupeKeyEQ(dedupeKey)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("read back message_inbox: %w", err)
	}

	duplicate := row.ID != requestID
	if duplicate {
		slog.Info("Duplicate ingest",
			"request_id", row.ID,
			"endpoint_identity", env.Source.EndpointIdentity)
		return &Receipt{RequestID: row.ID, Duplicate: true, Status: "accepted"}, nil
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.Enqueue(ctx, row.ID, env.PolicyTier()); err != nil {
			// The row is durable; the cold-path scanner will pick it up.
			slog.Warn("Enqueue failed, deferring to scanner",
				"request_id", row.ID, "error", err)
		}
	}

	slog.Info("Message accepted",
		"request_id", row.ID,
		"channel", env.Source.Channel,
		"tier", env.PolicyTier())
	return &Receipt{RequestID: row.ID, Duplicate: false, Status: "accepted"}, nil
}

func mergeHints(meta map[string]any, hints *RoutingHints) map[string]any {
	out := make(map[string]any, len(meta)+1)
	for k, v := range meta {
		out[k] = v
	}
	h := map[string]any{}
	if hints.Mode != "" {
		h["mode"] = hints.Mode
	}
	if hints.JoinPolicy != "" {
		h["join_policy"] = hints.JoinPolicy
	}
	if hints.AbortPolicy != "" {
		h["abort_policy"] = hints.AbortPolicy
	}
	out["routing_hints"] = h
	return out
}
