// Package ingest implements the ingest.v1 contract: envelope validation,
// dedupe/idempotency, and canonical request-id minting.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// SchemaVersion is the only accepted envelope schema version.
const SchemaVersion = "ingest.v1"

// Envelope is the canonical ingest.v1 payload posted by connectors.
type Envelope struct {
	SchemaVersion  string         `json:"schema_version"`
	Source         Source         `json:"source"`
	Payload        Payload        `json:"payload"`
	IdempotencyKey string         `json:"idempotency_key,omitempty"`
	ThreadTarget   string         `json:"thread_target,omitempty"`
	RoutingHints   *RoutingHints  `json:"routing_hints,omitempty"`
	Control        *Control       `json:"control,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Source identifies where a message came from.
type Source struct {
	Channel          string `json:"channel"`
	Provider         string `json:"provider"`
	EndpointIdentity string `json:"endpoint_identity"`
	SenderIdentity   string `json:"sender_identity"`
}

// Payload carries the message content.
type Payload struct {
	ContentType    string          `json:"content_type"`
	Body           json.RawMessage `json:"body"`
	NormalizedText string          `json:"normalized_text,omitempty"`
	SentAt         string          `json:"sent_at"`
}

// Control carries connector-requested handling knobs.
type Control struct {
	PolicyTier string `json:"policy_tier,omitempty"` // default | interactive | high_priority
}

// RoutingHints lets a connector request a fanout shape.
type RoutingHints struct {
	Mode        string `json:"mode,omitempty"`         // parallel | ordered | conditional
	JoinPolicy  string `json:"join_policy,omitempty"`  // wait_for_all | first_success
	AbortPolicy string `json:"abort_policy,omitempty"` // continue | on_required_failure | on_any_failure
}

// Receipt is the 202 response body for accepted (or duplicate) envelopes.
type Receipt struct {
	RequestID string `json:"request_id"`
	Duplicate bool   `json:"duplicate"`
	Status    string `json:"status"`
}

// DecodeEnvelope parses an envelope strictly: unknown top-level fields are
// rejected per the ingest.v1 contract.
func DecodeEnvelope(r io.Reader) (*Envelope, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return nil, NewValidationError("validation_error", fmt.Sprintf("malformed envelope: %v", err))
	}
	return &env, nil
}

// DecodeEnvelopeBytes is DecodeEnvelope over a byte slice.
func DecodeEnvelopeBytes(data []byte) (*Envelope, error) {
	return DecodeEnvelope(bytes.NewReader(data))
}

// BodyText returns the best-effort text of the payload: normalized_text if
// present, otherwise the body as a string (unquoted when it is a JSON string).
func (e *Envelope) BodyText() string {
	if e.Payload.NormalizedText != "" {
		return e.Payload.NormalizedText
	}
	return BodyString(e.Payload.Body)
}

// BodyString renders a raw payload body as text, unquoting JSON string
// bodies. Non-string bodies come back verbatim.
func BodyString(body []byte) string {
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	return string(body)
}

// PolicyTier returns the requested tier, defaulting to "default".
func (e *Envelope) PolicyTier() string {
	if e.Control != nil && e.Control.PolicyTier != "" {
		return e.Control.PolicyTier
	}
	return "default"
}
