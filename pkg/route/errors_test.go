package route

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRetryable(t *testing.T) {
	assert.True(t, KindTargetUnavailable.Retryable())
	assert.True(t, KindOverloadRejected.Retryable())
	assert.True(t, KindInternal.Retryable())
	assert.False(t, KindValidation.Retryable())
	assert.False(t, KindTargetQuarantined.Retryable())
	assert.False(t, KindTimeout.Retryable())
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("overload_rejected")
	require.True(t, ok)
	assert.Equal(t, KindOverloadRejected, kind)

	_, ok = ParseKind("catastrophic_failure")
	assert.False(t, ok)
	_, ok = ParseKind("")
	assert.False(t, ok)
}

func TestKindOf(t *testing.T) {
	err := NewError(KindTimeout, "chef", "trigger", errors.New("deadline"))
	assert.Equal(t, KindTimeout, KindOf(err))

	wrapped := fmt.Errorf("dispatch: %w", err)
	assert.Equal(t, KindTimeout, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindTimeout))

	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(KindTargetUnavailable, "chef", "status", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "chef")
}
