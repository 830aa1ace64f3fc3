package butler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerOrigin(t *testing.T) {
	ctx := context.Background()

	source, parent := triggerOrigin(ctx, "")
	assert.Equal(t, "route", source, "calls without a bound session arrived via the router")
	assert.Empty(t, parent)

	source, parent = triggerOrigin(ctx, "parent-1")
	assert.Equal(t, "route", source)
	assert.Equal(t, "parent-1", parent)

	nested := context.WithValue(ctx, sessionIDKey, "sess-9")
	source, parent = triggerOrigin(nested, "")
	assert.Equal(t, "trigger", source, "a session invoking its own butler fails fast")
	assert.Equal(t, "sess-9", parent, "nested sessions parent to the caller by default")

	source, parent = triggerOrigin(nested, "explicit")
	assert.Equal(t, "trigger", source)
	assert.Equal(t, "explicit", parent)
}
