package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/pkg/config"
)

func testRegistration() Registration {
	return Registration{
		Butler:      "chef",
		EndpointURL: "http://127.0.0.1:7302/mcp",
		Description: "meals and groceries",
		LivenessTTL: 5 * time.Minute,
	}
}

func TestReporter(t *testing.T) {
	t.Run("registers then heartbeats", func(t *testing.T) {
		var registers, heartbeats atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			switch req.URL.Path {
			case "/api/v1/registry/register":
				registers.Add(1)
			case "/api/v1/registry/heartbeat":
				heartbeats.Add(1)
			default:
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		rep := NewReporter(testRegistration(), srv.URL, &config.RegistryConfig{
			HeartbeatPeriod: 20 * time.Millisecond,
		})
		require.NoError(t, rep.Start(context.Background()))
		defer rep.Stop()

		require.Eventually(t, func() bool {
			return heartbeats.Load() >= 2
		}, 2*time.Second, 10*time.Millisecond)
		assert.Equal(t, int32(1), registers.Load())
	})

	t.Run("404 stops the reporter without retrying", func(t *testing.T) {
		var heartbeats atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path == "/api/v1/registry/register" {
				w.WriteHeader(http.StatusOK)
				return
			}
			heartbeats.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		rep := NewReporter(testRegistration(), srv.URL, &config.RegistryConfig{
			HeartbeatPeriod: 20 * time.Millisecond,
		})
		require.NoError(t, rep.Start(context.Background()))
		defer rep.Stop()

		require.Eventually(t, func() bool {
			return heartbeats.Load() == 1
		}, 2*time.Second, 10*time.Millisecond)

		// The loop must have exited; no further heartbeats arrive.
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(1), heartbeats.Load())
	})

	t.Run("registration retries until the switchboard is up", func(t *testing.T) {
		var attempts atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if attempts.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		rep := NewReporter(testRegistration(), srv.URL, &config.RegistryConfig{
			HeartbeatPeriod: time.Minute,
		})
		require.NoError(t, rep.Start(context.Background()))
		rep.Stop()
		assert.GreaterOrEqual(t, attempts.Load(), int32(3))
	})
}
