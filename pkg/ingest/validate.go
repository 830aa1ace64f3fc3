package ingest

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError is a rejected envelope. Code is one of the canonical
// ingest failure modes (unsupported_schema_version, validation_error).
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError creates a validation error with a canonical code.
func NewValidationError(code, message string) error {
	return &ValidationError{Code: code, Message: message}
}

// IsValidationError reports whether err is an envelope validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// validPairings is the closed set of accepted channel/provider pairs.
var validPairings = map[[2]string]bool{
	{"telegram", "telegram"}: true,
	{"email", "gmail"}:       true,
	{"email", "imap"}:        true,
	{"slack", "slack"}:       true,
	{"api", "internal"}:      true,
	{"mcp", "internal"}:      true,
}

var validTiers = map[string]bool{
	"default":       true,
	"interactive":   true,
	"high_priority": true,
}

// Validate checks an envelope against the ingest.v1 contract and returns
// the parsed sent_at timestamp on success.
func Validate(env *Envelope) (time.Time, error) {
	if env.SchemaVersion != SchemaVersion {
		return time.Time{}, NewValidationError("unsupported_schema_version",
			fmt.Sprintf("schema_version %q is not %q", env.SchemaVersion, SchemaVersion))
	}

	if !validPairings[[2]string{env.Source.Channel, env.Source.Provider}] {
		return time.Time{}, NewValidationError("validation_error",
			fmt.Sprintf("unsupported channel/provider pairing %s/%s",
				env.Source.Channel, env.Source.Provider))
	}
	if env.Source.EndpointIdentity == "" {
		return time.Time{}, NewValidationError("validation_error", "source.endpoint_identity is required")
	}
	if env.Source.SenderIdentity == "" {
		return time.Time{}, NewValidationError("validation_error", "source.sender_identity is required")
	}

	if env.Payload.ContentType == "" {
		return time.Time{}, NewValidationError("validation_error", "payload.content_type is required")
	}
	if len(env.Payload.Body) == 0 {
		return time.Time{}, NewValidationError("validation_error", "payload.body is required")
	}
	if env.Payload.SentAt == "" {
		return time.Time{}, NewValidationError("validation_error", "payload.sent_at is required")
	}

	// RFC3339 requires an explicit offset (Z or ±hh:mm); naive timestamps
	// fail this parse and are rejected.
	sentAt, err := time.Parse(time.RFC3339, env.Payload.SentAt)
	if err != nil {
		return time.Time{}, NewValidationError("validation_error",
			fmt.Sprintf("payload.sent_at %q is not RFC3339 with explicit offset", env.Payload.SentAt))
	}

	if env.Control != nil && env.Control.PolicyTier != "" && !validTiers[env.Control.PolicyTier] {
		return time.Time{}, NewValidationError("validation_error",
			fmt.Sprintf("control.policy_tier %q is not one of default, interactive, high_priority", env.Control.PolicyTier))
	}

	if env.RoutingHints != nil {
		if err := validateHints(env.RoutingHints); err != nil {
			return time.Time{}, err
		}
	}

	return sentAt, nil
}

func validateHints(h *RoutingHints) error {
	switch h.Mode {
	case "", "parallel", "ordered", "conditional":
	default:
		return NewValidationError("validation_error",
			fmt.Sprintf("routing_hints.mode %q is invalid", h.Mode))
	}
	switch h.JoinPolicy {
	case "", "wait_for_all", "first_success":
	default:
		return NewValidationError("validation_error",
			fmt.Sprintf("routing_hints.join_policy %q is invalid", h.JoinPolicy))
	}
	switch h.AbortPolicy {
	case "", "continue", "on_required_failure", "on_any_failure":
	default:
		return NewValidationError("validation_error",
			fmt.Sprintf("routing_hints.abort_policy %q is invalid", h.AbortPolicy))
	}
	return nil
}
