// Package route implements target resolution and tool invocation across
// butlers, including the canonical error taxonomy shared by the MCP, route,
// and notify layers.
package route

import (
	"errors"
	"fmt"
)

// Kind is the canonical error class carried across MCP, route, and notify
// layers. The set is closed; connectors and the dispatcher key retry
// decisions off it.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindTargetUnavailable Kind = "target_unavailable"
	KindTargetQuarantined Kind = "target_quarantined"
	KindTimeout           Kind = "timeout"
	KindOverloadRejected  Kind = "overload_rejected"
	KindInternal          Kind = "internal_error"
	KindConflictNoop      Kind = "conflict_noop"
)

// Retryable reports whether a caller may retry an error of this kind.
// Timeout is the caller's choice and reported non-retryable here; the
// dispatcher's abort policy decides.
func (k Kind) Retryable() bool {
	switch k {
	case KindTargetUnavailable, KindOverloadRejected, KindInternal:
		return true
	default:
		return false
	}
}

// Error is a classified route error.
type Error struct {
	Kind   Kind
	Butler string
	Tool   string
	Err    error
}

func (e *Error) Error() string {
	if e.Butler != "" {
		return fmt.Sprintf("%s: butler %q tool %q: %v", e.Kind, e.Butler, e.Tool, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a classified route error.
func NewError(kind Kind, butler, tool string, err error) *Error {
	return &Error{Kind: kind, Butler: butler, Tool: tool, Err: err}
}

// Errorf builds a classified route error from a format string.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// ParseKind maps a wire string back to its canonical kind. The set is
// closed; anything else reports false.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindValidation, KindTargetUnavailable, KindTargetQuarantined,
		KindTimeout, KindOverloadRejected, KindInternal, KindConflictNoop:
		return k, true
	}
	return "", false
}

// KindOf extracts the canonical kind from an error chain.
// Unclassified errors are internal_error.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given canonical kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
