package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/homekeep/butlerd/test/database"
)

func TestStateServiceRoundtrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client, "chef")
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "pantry", map[string]any{"eggs": "12"}))

	value, err := svc.Get(ctx, "pantry")
	require.NoError(t, err)
	assert.Equal(t, "12", value["eggs"])

	// Overwrite keeps one row per key.
	require.NoError(t, svc.Set(ctx, "pantry", map[string]any{"eggs": "6"}))
	value, err = svc.Get(ctx, "pantry")
	require.NoError(t, err)
	assert.Equal(t, "6", value["eggs"])

	keys, err := svc.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pantry"}, keys)
}

func TestStateServiceGetMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client, "chef")

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStateServiceDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client, "chef")
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "memo/one", map[string]any{"text": "hi"}))
	require.NoError(t, svc.Delete(ctx, "memo/one"))
	_, err := svc.Get(ctx, "memo/one")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is a no-op.
	assert.NoError(t, svc.Delete(ctx, "memo/one"))
}

func TestStateServiceScopedByButler(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	chef := NewStateService(client.Client, "chef")
	gardener := NewStateService(client.Client, "gardener")

	require.NoError(t, chef.Set(ctx, "shared-name", map[string]any{"owner": "chef"}))

	_, err := gardener.Get(ctx, "shared-name")
	assert.ErrorIs(t, err, ErrNotFound)

	keys, err := gardener.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
