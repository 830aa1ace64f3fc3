package ingest

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnvelope() *Envelope {
	return &Envelope{
		SchemaVersion: SchemaVersion,
		Source: Source{
			Channel:          "telegram",
			Provider:         "telegram",
			EndpointIdentity: "bot-main",
			SenderIdentity:   "user-7",
		},
		Payload: Payload{
			ContentType: "text/plain",
			Body:        json.RawMessage(`"dinner at 7 please"`),
			SentAt:      "2026-08-24T10:00:00Z",
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	sentAt, err := Validate(validEnvelope())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), sentAt.UTC())
}

func TestValidateSchemaVersion(t *testing.T) {
	env := validEnvelope()
	env.SchemaVersion = "ingest.v2"
	_, err := Validate(env)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "unsupported_schema_version")
}

func TestValidatePairings(t *testing.T) {
	good := [][2]string{
		{"telegram", "telegram"}, {"email", "gmail"}, {"email", "imap"},
		{"slack", "slack"}, {"api", "internal"}, {"mcp", "internal"},
	}
	for _, p := range good {
		env := validEnvelope()
		env.Source.Channel, env.Source.Provider = p[0], p[1]
		_, err := Validate(env)
		assert.NoError(t, err, "%s/%s", p[0], p[1])
	}

	env := validEnvelope()
	env.Source.Provider = "gmail"
	_, err := Validate(env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pairing")
}

func TestValidateRequiredFields(t *testing.T) {
	cases := map[string]func(*Envelope){
		"endpoint_identity": func(e *Envelope) { e.Source.EndpointIdentity = "" },
		"sender_identity":   func(e *Envelope) { e.Source.SenderIdentity = "" },
		"content_type":      func(e *Envelope) { e.Payload.ContentType = "" },
		"body":              func(e *Envelope) { e.Payload.Body = nil },
		"sent_at":           func(e *Envelope) { e.Payload.SentAt = "" },
	}
	for name, mutate := range cases {
		env := validEnvelope()
		mutate(env)
		_, err := Validate(env)
		assert.True(t, IsValidationError(err), name)
	}
}

func TestValidateRejectsNaiveTimestamp(t *testing.T) {
	env := validEnvelope()
	env.Payload.SentAt = "2026-08-24T10:00:00"
	_, err := Validate(env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explicit offset")
}

func TestValidatePolicyTier(t *testing.T) {
	env := validEnvelope()
	env.Control = &Control{PolicyTier: "urgent"}
	_, err := Validate(env)
	require.Error(t, err)

	env.Control.PolicyTier = "high_priority"
	_, err = Validate(env)
	assert.NoError(t, err)
}

func TestValidateRoutingHints(t *testing.T) {
	env := validEnvelope()
	env.RoutingHints = &RoutingHints{Mode: "ordered", JoinPolicy: "first_success", AbortPolicy: "on_any_failure"}
	_, err := Validate(env)
	require.NoError(t, err)

	env.RoutingHints.Mode = "sequential"
	_, err = Validate(env)
	assert.True(t, IsValidationError(err))
}

func TestDecodeEnvelopeRejectsUnknownFields(t *testing.T) {
	_, err := DecodeEnvelope(strings.NewReader(`{"schema_version": "ingest.v1", "surprise": 1}`))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBodyText(t *testing.T) {
	env := validEnvelope()
	assert.Equal(t, "dinner at 7 please", env.BodyText())

	env.Payload.NormalizedText = "dinner at seven"
	assert.Equal(t, "dinner at seven", env.BodyText())

	env = validEnvelope()
	env.Payload.Body = json.RawMessage(`{"text": "raw"}`)
	assert.Equal(t, `{"text": "raw"}`, env.BodyText())
}
