package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// payloadHashBucket is the dedupe window for envelopes carrying neither an
// idempotency key nor an external event id.
const payloadHashBucket = 5 * time.Minute

// DedupeKey derives the unique ingest key:
//
//	SHA256(endpoint_identity || sender_identity || discriminator)
//
// where the discriminator is, in priority order: the idempotency key, the
// connector's external event id (metadata.external_event_id), or the payload
// hash bucketed into exact 5-minute windows of sent_at.
func DedupeKey(env *Envelope, sentAt time.Time) string {
	h := sha256.New()
	h.Write([]byte(env.Source.EndpointIdentity))
	h.Write([]byte{0})
	h.Write([]byte(env.Source.SenderIdentity))
	h.Write([]byte{0})
	h.Write([]byte(discriminator(env, sentAt)))
	return hex.EncodeToString(h.Sum(nil))
}

func discriminator(env *Envelope, sentAt time.Time) string {
	if env.IdempotencyKey != "" {
		return "idem:" + env.IdempotencyKey
	}
	if env.Metadata != nil {
		if id, ok := env.Metadata["external_event_id"].(string); ok && id != "" {
			return "evt:" + id
		}
	}
	bucket := sentAt.UTC().Truncate(payloadHashBucket)
	payload := sha256.Sum256(env.Payload.Body)
	return fmt.Sprintf("payload:%s:%s", hex.EncodeToString(payload[:]), bucket.Format(time.RFC3339))
}
