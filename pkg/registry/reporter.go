package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/homekeep/butlerd/pkg/config"
)

// Reporter is the client side of liveness: a non-switchboard butler
// registers itself at startup and then heartbeats on a fixed period.
type Reporter struct {
	reg        Registration
	baseURL    string
	period     time.Duration
	httpClient *http.Client

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReporter creates a liveness reporter targeting the Switchboard's
// API base URL.
func NewReporter(reg Registration, switchboardBaseURL string, cfg *config.RegistryConfig) *Reporter {
	return &Reporter{
		reg:        reg,
		baseURL:    switchboardBaseURL,
		period:     cfg.HeartbeatPeriod,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		stopCh:     make(chan struct{}),
	}
}

// Start registers with the Switchboard (retrying with backoff until the
// context dies) and then launches the heartbeat loop.
func (r *Reporter) Start(ctx context.Context) error {
	register := func() error {
		return r.post(ctx, "/api/v1/registry/register", map[string]any{
			"butler":       r.reg.Butler,
			"endpoint_url": r.reg.EndpointURL,
			"capabilities": r.reg.Capabilities,
			"description":  r.reg.Description,
			"liveness_ttl": int(r.reg.LivenessTTL.Seconds()),
		})
	}

	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	if err := backoff.Retry(register, bo); err != nil {
		return fmt.Errorf("register with switchboard: %w", err)
	}
	slog.Info("Registered with switchboard", "butler", r.reg.Butler)

	r.wg.Add(1)
	go r.run(ctx)
	return nil
}

// Stop halts the heartbeat loop.
func (r *Reporter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *Reporter) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := r.post(ctx, "/api/v1/registry/heartbeat", map[string]any{
				"butler": r.reg.Butler,
			})
			if err == nil {
				continue
			}
			var se *statusError
			if isStatus(err, http.StatusNotFound, &se) {
				// Persistent misconfiguration: the switchboard does not
				// know this butler. Retrying cannot fix that.
				slog.Error("Heartbeat endpoint returned 404, stopping liveness reporter",
					"butler", r.reg.Butler, "url", se.url)
				return
			}
			slog.Warn("Heartbeat failed", "butler", r.reg.Butler, "error", err)
		}
	}
}

// post sends a JSON body and treats any non-2xx as an error.
func (r *Reporter) post(ctx context.Context, path string, body map[string]any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusError{code: resp.StatusCode, url: r.baseURL + path}
	}
	return nil
}

type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.url, e.code)
}

func isStatus(err error, code int, out **statusError) bool {
	se, ok := err.(*statusError)
	if ok && se.code == code {
		*out = se
		return true
	}
	return false
}
