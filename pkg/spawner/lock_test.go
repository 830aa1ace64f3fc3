package spawner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialLock(t *testing.T) {
	t.Run("tryAcquire fails while held", func(t *testing.T) {
		l := newSerialLock(2)
		require.True(t, l.tryAcquire())
		assert.False(t, l.tryAcquire())
		l.release()
		assert.True(t, l.tryAcquire())
	})

	t.Run("queued caller runs after release", func(t *testing.T) {
		l := newSerialLock(2)
		require.True(t, l.tryAcquire())

		done := make(chan bool, 1)
		go func() {
			ok, err := l.acquire(context.Background())
			done <- ok && err == nil
		}()

		time.Sleep(20 * time.Millisecond)
		l.release()
		select {
		case ok := <-done:
			assert.True(t, ok)
		case <-time.After(time.Second):
			t.Fatal("queued caller never acquired the lock")
		}
	})

	t.Run("queue overflow rejected", func(t *testing.T) {
		l := newSerialLock(1)
		require.True(t, l.tryAcquire())

		var wg sync.WaitGroup
		started := make(chan struct{})
		wg.Add(1)
		go func() {
			defer wg.Done()
			close(started)
			l.acquire(context.Background())
			l.release()
		}()
		<-started
		time.Sleep(20 * time.Millisecond)

		// Second waiter exceeds max_queued=1.
		ok, err := l.acquire(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)

		l.release()
		wg.Wait()
	})

	t.Run("context cancel while queued", func(t *testing.T) {
		l := newSerialLock(2)
		require.True(t, l.tryAcquire())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := l.acquire(ctx)
		require.Error(t, err)
	})

	t.Run("sessions are strictly serial", func(t *testing.T) {
		l := newSerialLock(10)
		var active, maxActive int
		var mu sync.Mutex
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := l.acquire(context.Background())
				require.NoError(t, err)
				require.True(t, ok)
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()
				time.Sleep(5 * time.Millisecond)
				mu.Lock()
				active--
				mu.Unlock()
				l.release()
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, maxActive)
	})
}

func TestLockTable(t *testing.T) {
	table := newLockTable(3)
	a := table.get("chef")
	b := table.get("gardener")
	assert.NotSame(t, a, b)
	assert.Same(t, a, table.get("chef"))
}
