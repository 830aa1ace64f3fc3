package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/homekeep/butlerd/test/database"
)

type captureEnqueuer struct {
	ids   []string
	tiers []string
}

func (c *captureEnqueuer) Enqueue(_ context.Context, requestID, tier string) error {
	c.ids = append(c.ids, requestID)
	c.tiers = append(c.tiers, tier)
	return nil
}

func TestAcceptPersistsAndEnqueues(t *testing.T) {
	client := testdb.NewTestClient(t)
	enq := &captureEnqueuer{}
	svc := NewService(client.Client, enq)
	ctx := context.Background()

	receipt, err := svc.Accept(ctx, validEnvelope())
	require.NoError(t, err)
	assert.False(t, receipt.Duplicate)
	assert.Equal(t, "accepted", receipt.Status)
	require.NotEmpty(t, receipt.RequestID)

	row, err := client.MessageInbox.Get(ctx, receipt.RequestID)
	require.NoError(t, err)
	assert.Equal(t, "telegram", row.Channel)
	assert.Equal(t, "bot-main", row.EndpointIdentity)
	assert.Equal(t, `"dinner at 7 please"`, row.Body)

	assert.Equal(t, []string{receipt.RequestID}, enq.ids)
	assert.Equal(t, []string{"default"}, enq.tiers)
}

func TestAcceptDuplicateRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	enq := &captureEnqueuer{}
	svc := NewService(client.Client, enq)
	ctx := context.Background()

	env := validEnvelope()
	env.IdempotencyKey = "evt-123"

	first, err := svc.Accept(ctx, env)
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	// A connector retrying the same event gets the same request id back
	// and the row is inserted exactly once.
	replay := validEnvelope()
	replay.IdempotencyKey = "evt-123"
	second, err := svc.Accept(ctx, replay)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.RequestID, second.RequestID)

	n, err := client.MessageInbox.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, []string{first.RequestID}, enq.ids,
		"duplicates are never enqueued again")
}

func TestAcceptRejectsInvalidEnvelope(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, nil)

	env := validEnvelope()
	env.Source.Provider = "gmail"
	_, err := svc.Accept(context.Background(), env)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	n, err := client.MessageInbox.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
