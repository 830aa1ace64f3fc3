// Package registry is the Switchboard's view of the butler fleet: who
// exists, where their endpoints live, and whether routing to them is
// allowed. Every eligibility transition appends one audit row.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/registryentry"
	"github.com/homekeep/butlerd/pkg/classify"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/route"
)

// Transition reasons recorded in the eligibility log.
const (
	ReasonTTLExpired     = "ttl_expired"
	ReasonHealthRestored = "health_restored"
	ReasonReRegistered   = "re_registered"
	ReasonRouteFailures  = "route_failures"
	ReasonOperator       = "operator"
)

// Registration is a butler's self-registration payload.
type Registration struct {
	Butler       string
	EndpointURL  string
	Capabilities []string
	Description  string
	LivenessTTL  time.Duration
}

// Registry owns the butler_registry table. Single writer: only the
// Switchboard daemon mutates it; other butlers read through the shared
// schema.
type Registry struct {
	client *ent.Client
	cfg    *config.RegistryConfig
}

// New creates the registry service.
func New(client *ent.Client, cfg *config.RegistryConfig) *Registry {
	return &Registry{client: client, cfg: cfg}
}

// Register creates or refreshes a butler's registry entry. A stale
// butler re-registering becomes active again (reason re_registered).
func (r *Registry) Register(ctx context.Context, reg Registration) error {
	ttl := reg.LivenessTTL
	if ttl <= 0 {
		ttl = r.cfg.LivenessTTL
	}
	now := time.Now()

	existing, err := r.client.RegistryEntry.Query().
		Where(registryentry.IDEQ(reg.Butler)).
		Only(ctx)
	if ent.IsNotFound(err) {
		err := r.client.RegistryEntry.Create().
			SetID(reg.Butler).
			SetEndpointURL(reg.EndpointURL).
			SetCapabilities(reg.Capabilities).
			SetDescription(reg.Description).
			SetEligibilityState(registryentry.EligibilityStateActive).
			SetLastHeartbeatAt(now).
			SetLivenessTTLS(int(ttl.Seconds())).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create registry entry for %q: %w", reg.Butler, err)
		}
		slog.Info("Butler registered", "butler", reg.Butler, "endpoint", reg.EndpointURL)
		return nil
	}
	if err != nil {
		return fmt.Errorf("query registry entry for %q: %w", reg.Butler, err)
	}

	update := r.client.RegistryEntry.UpdateOneID(reg.Butler).
		SetEndpointURL(reg.EndpointURL).
		SetCapabilities(reg.Capabilities).
		SetDescription(reg.Description).
		SetLastHeartbeatAt(now).
		SetLivenessTTLS(int(ttl.Seconds())).
		SetUpdatedAt(now)

	// Re-registration revives a stale butler. Quarantine sticks until
	// an operator clears it.
	if existing.EligibilityState == registryentry.EligibilityStateStale {
		update.SetEligibilityState(registryentry.EligibilityStateActive)
		r.logTransition(ctx, reg.Butler, string(existing.EligibilityState), "active",
			ReasonReRegistered, "system")
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("refresh registry entry for %q: %w", reg.Butler, err)
	}
	slog.Info("Butler registration refreshed", "butler", reg.Butler)
	return nil
}

// Heartbeat records liveness. A stale butler heartbeating becomes
// active again (reason health_restored). Unknown butlers get a 404
// from the API layer, which this error signals.
func (r *Registry) Heartbeat(ctx context.Context, butler string) error {
	existing, err := r.client.RegistryEntry.Query().
		Where(registryentry.IDEQ(butler)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &UnknownButlerError{Butler: butler}
	}
	if err != nil {
		return fmt.Errorf("query registry entry for %q: %w", butler, err)
	}

	now := time.Now()
	update := r.client.RegistryEntry.UpdateOneID(butler).
		SetLastHeartbeatAt(now).
		SetUpdatedAt(now)
	if existing.EligibilityState == registryentry.EligibilityStateStale {
		update.SetEligibilityState(registryentry.EligibilityStateActive)
		r.logTransition(ctx, butler, "stale", "active", ReasonHealthRestored, "system")
		slog.Info("Butler health restored", "butler", butler)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("record heartbeat for %q: %w", butler, err)
	}
	return nil
}

// SweepStale flips active butlers whose heartbeat TTL has lapsed to
// stale. Runs as the eligibility-sweep job on the Switchboard.
func (r *Registry) SweepStale(ctx context.Context) (int, error) {
	entries, err := r.client.RegistryEntry.Query().
		Where(registryentry.EligibilityStateEQ(registryentry.EligibilityStateActive)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query active butlers: %w", err)
	}

	now := time.Now()
	flipped := 0
	for _, e := range entries {
		deadline := e.LastHeartbeatAt.Add(time.Duration(e.LivenessTTLS) * time.Second)
		if now.Before(deadline) {
			continue
		}
		err := r.client.RegistryEntry.UpdateOneID(e.ID).
			SetEligibilityState(registryentry.EligibilityStateStale).
			SetUpdatedAt(now).
			Exec(ctx)
		if err != nil {
			return flipped, fmt.Errorf("mark %q stale: %w", e.ID, err)
		}
		r.logTransition(ctx, e.ID, "active", "stale", ReasonTTLExpired, "system")
		slog.Warn("Butler went stale", "butler", e.ID,
			"last_heartbeat", e.LastHeartbeatAt)
		flipped++
	}
	return flipped, nil
}

// QuarantineButler flips a butler to quarantined after repeated route
// failures. Satisfies the router's Quarantiner. Best effort; the
// breaker already blocks traffic if the write fails.
func (r *Registry) QuarantineButler(butler, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.SetQuarantined(ctx, butler, reason, "system"); err != nil {
		slog.Error("Failed to quarantine butler", "butler", butler, "error", err)
	}
}

// SetQuarantined moves a butler to quarantined with a reason.
func (r *Registry) SetQuarantined(ctx context.Context, butler, reason, actor string) error {
	existing, err := r.client.RegistryEntry.Query().
		Where(registryentry.IDEQ(butler)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &UnknownButlerError{Butler: butler}
	}
	if err != nil {
		return err
	}
	if existing.EligibilityState == registryentry.EligibilityStateQuarantined {
		return nil
	}

	err = r.client.RegistryEntry.UpdateOneID(butler).
		SetEligibilityState(registryentry.EligibilityStateQuarantined).
		SetQuarantineReason(reason).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("quarantine %q: %w", butler, err)
	}
	logReason := ReasonRouteFailures
	if actor != "system" {
		logReason = ReasonOperator
	}
	r.logTransition(ctx, butler, string(existing.EligibilityState), "quarantined", logReason, actor)
	slog.Warn("Butler quarantined", "butler", butler, "reason", reason, "actor", actor)
	return nil
}

// Restore moves a quarantined butler back to active. Operator only.
func (r *Registry) Restore(ctx context.Context, butler, actor string) error {
	existing, err := r.client.RegistryEntry.Query().
		Where(registryentry.IDEQ(butler)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &UnknownButlerError{Butler: butler}
	}
	if err != nil {
		return err
	}
	if existing.EligibilityState != registryentry.EligibilityStateQuarantined {
		return fmt.Errorf("butler %q is %s, not quarantined", butler, existing.EligibilityState)
	}

	err = r.client.RegistryEntry.UpdateOneID(butler).
		SetEligibilityState(registryentry.EligibilityStateActive).
		ClearQuarantineReason().
		SetLastHeartbeatAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("restore %q: %w", butler, err)
	}
	r.logTransition(ctx, butler, "quarantined", "active", ReasonOperator, actor)
	slog.Info("Butler restored from quarantine", "butler", butler, "actor", actor)
	return nil
}

// ResolveRoutingTarget is the canonical eligibility gate: only active
// butlers are routable. Satisfies route.TargetResolver.
func (r *Registry) ResolveRoutingTarget(ctx context.Context, butler string) (*route.Target, error) {
	entry, err := r.client.RegistryEntry.Query().
		Where(registryentry.IDEQ(butler)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, route.NewError(route.KindTargetUnavailable, butler, "",
			fmt.Errorf("butler %q is not registered", butler))
	}
	if err != nil {
		return nil, route.NewError(route.KindInternal, butler, "", err)
	}

	switch entry.EligibilityState {
	case registryentry.EligibilityStateQuarantined:
		reason := ""
		if entry.QuarantineReason != nil {
			reason = *entry.QuarantineReason
		}
		return nil, route.NewError(route.KindTargetQuarantined, butler, "",
			fmt.Errorf("butler %q is quarantined: %s", butler, reason))
	case registryentry.EligibilityStateStale:
		return nil, route.NewError(route.KindTargetUnavailable, butler, "",
			fmt.Errorf("butler %q is stale", butler))
	}
	return &route.Target{Butler: butler, EndpointURL: entry.EndpointURL}, nil
}

// EligibleButlers lists active butlers with descriptions for the
// classifier. Satisfies classify.EligibleLister.
func (r *Registry) EligibleButlers(ctx context.Context) ([]classify.ButlerInfo, error) {
	entries, err := r.client.RegistryEntry.Query().
		Where(registryentry.EligibilityStateEQ(registryentry.EligibilityStateActive)).
		Order(ent.Asc(registryentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query eligible butlers: %w", err)
	}
	out := make([]classify.ButlerInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, classify.ButlerInfo{Name: e.ID, Description: e.Description})
	}
	return out, nil
}

// List returns all registry entries for the ops surface.
func (r *Registry) List(ctx context.Context) ([]*ent.RegistryEntry, error) {
	return r.client.RegistryEntry.Query().
		Order(ent.Asc(registryentry.FieldID)).
		All(ctx)
}

// logTransition appends one eligibility audit row. Audit failures are
// logged, never propagated; the state change itself already happened.
func (r *Registry) logTransition(ctx context.Context, butler, from, to, reason, actor string) {
	err := r.client.EligibilityLog.Create().
		SetID(uuid.NewString()).
		SetButlerName(butler).
		SetFromState(from).
		SetToState(to).
		SetReason(reason).
		SetActor(actor).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to append eligibility log",
			"butler", butler, "from", from, "to", to, "error", err)
	}
}

// UnknownButlerError reports a heartbeat or operation against a butler
// the registry has never seen. The API layer maps it to 404.
type UnknownButlerError struct {
	Butler string
}

func (e *UnknownButlerError) Error() string {
	return fmt.Sprintf("unknown butler %q", e.Butler)
}
