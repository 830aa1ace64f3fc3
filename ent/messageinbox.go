// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent/messageinbox"
)

// MessageInbox is the model entity for the MessageInbox schema.
type MessageInbox struct {
	config `json:"-"`
	// ID of the ent.
	// Server-minted canonical request identifier (UUID v4)
	ID string `json:"id,omitempty"`
	// SHA256 over endpoint/sender identity + idempotency discriminator
	DedupeKey string `json:"dedupe_key,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel string `json:"channel,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// EndpointIdentity holds the value of the "endpoint_identity" field.
	EndpointIdentity string `json:"endpoint_identity,omitempty"`
	// SenderIdentity holds the value of the "sender_identity" field.
	SenderIdentity string `json:"sender_identity,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// Opaque payload body as received
	Body string `json:"body,omitempty"`
	// Connector-normalized plain text, when provided
	NormalizedText string `json:"normalized_text,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// ThreadTarget holds the value of the "thread_target" field.
	ThreadTarget *string `json:"thread_target,omitempty"`
	// PolicyTier holds the value of the "policy_tier" field.
	PolicyTier messageinbox.PolicyTier `json:"policy_tier,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt time.Time `json:"sent_at,omitempty"`
	// ObservedAt holds the value of the "observed_at" field.
	ObservedAt time.Time `json:"observed_at,omitempty"`
	// Classifier output: routing entries
	Classification []map[string]interface{} `json:"classification,omitempty"`
	// Final fanout outcome per subrequest
	RoutingResults map[string]interface{} `json:"routing_results,omitempty"`
	// Status holds the value of the "status" field.
	Status messageinbox.Status `json:"status,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageInbox) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messageinbox.FieldClassification, messageinbox.FieldRoutingResults, messageinbox.FieldMetadata:
			values[i] = new([]byte)
		case messageinbox.FieldID, messageinbox.FieldDedupeKey, messageinbox.FieldChannel, messageinbox.FieldProvider, messageinbox.FieldEndpointIdentity, messageinbox.FieldSenderIdentity, messageinbox.FieldContentType, messageinbox.FieldBody, messageinbox.FieldNormalizedText, messageinbox.FieldIdempotencyKey, messageinbox.FieldThreadTarget, messageinbox.FieldPolicyTier, messageinbox.FieldStatus:
			values[i] = new(sql.NullString)
		case messageinbox.FieldSentAt, messageinbox.FieldObservedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageInbox fields.
func (_m *MessageInbox) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messageinbox.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case messageinbox.FieldDedupeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedupe_key", values[i])
			} else if value.Valid {
				_m.DedupeKey = value.String
			}
		case messageinbox.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case messageinbox.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case messageinbox.FieldEndpointIdentity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint_identity", values[i])
			} else if value.Valid {
				_m.EndpointIdentity = value.String
			}
		case messageinbox.FieldSenderIdentity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_identity", values[i])
			} else if value.Valid {
				_m.SenderIdentity = value.String
			}
		case messageinbox.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case messageinbox.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case messageinbox.FieldNormalizedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_text", values[i])
			} else if value.Valid {
				_m.NormalizedText = value.String
			}
		case messageinbox.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case messageinbox.FieldThreadTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_target", values[i])
			} else if value.Valid {
				_m.ThreadTarget = new(string)
				*_m.ThreadTarget = value.String
			}
		case messageinbox.FieldPolicyTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_tier", values[i])
			} else if value.Valid {
				_m.PolicyTier = messageinbox.PolicyTier(value.String)
			}
		case messageinbox.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		case messageinbox.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		case messageinbox.FieldClassification:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Classification); err != nil {
					return fmt.Errorf("unmarshal field classification: %w", err)
				}
			}
		case messageinbox.FieldRoutingResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field routing_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RoutingResults); err != nil {
					return fmt.Errorf("unmarshal field routing_results: %w", err)
				}
			}
		case messageinbox.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = messageinbox.Status(value.String)
			}
		case messageinbox.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageInbox.
// This includes values selected through modifiers, order, etc.
func (_m *MessageInbox) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MessageInbox.
// Note that you need to call MessageInbox.Unwrap() before calling this method if this MessageInbox
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageInbox) Update() *MessageInboxUpdateOne {
	return NewMessageInboxClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageInbox entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageInbox) Unwrap() *MessageInbox {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageInbox is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageInbox) String() string {
	var builder strings.Builder
	builder.WriteString("MessageInbox(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dedupe_key=")
	builder.WriteString(_m.DedupeKey)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("endpoint_identity=")
	builder.WriteString(_m.EndpointIdentity)
	builder.WriteString(", ")
	builder.WriteString("sender_identity=")
	builder.WriteString(_m.SenderIdentity)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("normalized_text=")
	builder.WriteString(_m.NormalizedText)
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ThreadTarget; v != nil {
		builder.WriteString("thread_target=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("policy_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyTier))
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Classification))
	builder.WriteString(", ")
	builder.WriteString("routing_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoutingResults))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// MessageInboxes is a parsable slice of MessageInbox.
type MessageInboxes []*MessageInbox
