package ingress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemQueueTierPriority(t *testing.T) {
	q := newMemQueue(10)
	require.NoError(t, q.TryPush(Item{RequestID: "low-1", Tier: "default"}))
	require.NoError(t, q.TryPush(Item{RequestID: "mid-1", Tier: "interactive"}))
	require.NoError(t, q.TryPush(Item{RequestID: "high-1", Tier: "high_priority"}))
	require.NoError(t, q.TryPush(Item{RequestID: "high-2", Tier: "high_priority"}))

	var order []string
	for {
		item, ok := q.TryPop()
		if !ok {
			break
		}
		order = append(order, item.RequestID)
	}
	assert.Equal(t, []string{"high-1", "high-2", "mid-1", "low-1"}, order)
}

func TestMemQueueCapacity(t *testing.T) {
	q := newMemQueue(2)
	require.NoError(t, q.TryPush(Item{RequestID: "a"}))
	require.NoError(t, q.TryPush(Item{RequestID: "b"}))
	assert.ErrorIs(t, q.TryPush(Item{RequestID: "c"}), ErrQueueFull)

	_, ok := q.TryPop()
	require.True(t, ok)
	assert.NoError(t, q.TryPush(Item{RequestID: "c"}))
}

func TestMemQueueUnknownTierFallsBack(t *testing.T) {
	q := newMemQueue(4)
	require.NoError(t, q.TryPush(Item{RequestID: "odd", Tier: "urgent"}))

	item, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, "default", item.Tier)
}

func TestMemQueueNotify(t *testing.T) {
	q := newMemQueue(4)
	require.NoError(t, q.TryPush(Item{RequestID: "a"}))

	select {
	case <-q.Notify():
	default:
		t.Fatal("expected a wakeup signal after push")
	}
}

func TestMemQueueLen(t *testing.T) {
	q := newMemQueue(4)
	assert.Zero(t, q.Len())
	require.NoError(t, q.TryPush(Item{RequestID: "a"}))
	require.NoError(t, q.TryPush(Item{RequestID: "b", Tier: "interactive"}))
	assert.Equal(t, 2, q.Len())
}
