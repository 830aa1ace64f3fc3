package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupeKeyIdempotencyKeyWins(t *testing.T) {
	sentAt := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	a := validEnvelope()
	a.IdempotencyKey = "k-1"
	b := validEnvelope()
	b.IdempotencyKey = "k-1"
	b.Payload.SentAt = "2026-08-24T11:00:00Z"

	assert.Equal(t, DedupeKey(a, sentAt), DedupeKey(b, sentAt.Add(time.Hour)))

	b.IdempotencyKey = "k-2"
	assert.NotEqual(t, DedupeKey(a, sentAt), DedupeKey(b, sentAt))
}

func TestDedupeKeyExternalEventID(t *testing.T) {
	sentAt := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	a := validEnvelope()
	a.Metadata = map[string]any{"external_event_id": "msg-99"}
	b := validEnvelope()
	b.Metadata = map[string]any{"external_event_id": "msg-99"}

	assert.Equal(t, DedupeKey(a, sentAt), DedupeKey(b, sentAt))
}

func TestDedupeKeyPayloadBucket(t *testing.T) {
	base := time.Date(2026, 8, 24, 10, 2, 0, 0, time.UTC)
	env := validEnvelope()

	// Same 5-minute window, same key.
	assert.Equal(t, DedupeKey(env, base), DedupeKey(env, base.Add(2*time.Minute)))

	// Next window, different key.
	assert.NotEqual(t, DedupeKey(env, base), DedupeKey(env, base.Add(5*time.Minute)))
}

func TestDedupeKeyScopedToSender(t *testing.T) {
	sentAt := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	a := validEnvelope()
	b := validEnvelope()
	b.Source.SenderIdentity = "user-8"

	assert.NotEqual(t, DedupeKey(a, sentAt), DedupeKey(b, sentAt))
}
