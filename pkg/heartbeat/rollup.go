package heartbeat

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Rollup aggregates raw heartbeat rows into connector_stats_hourly and
// prunes raw rows past the retention window. Runs as the
// connector-stats-rollup job on the Switchboard.
type Rollup struct {
	db        *sql.DB
	retention time.Duration
}

// NewRollup creates the rollup job over the raw database handle. The
// aggregate is a plain GROUP BY upsert; ent has no view of the stats
// table, so this stays SQL.
func NewRollup(db *sql.DB, retention time.Duration) *Rollup {
	if retention <= 0 {
		retention = 7 * 24 * time.Hour
	}
	return &Rollup{db: db, retention: retention}
}

// Run rolls up the previous hour (and any stragglers) and prunes old
// raw rows. Idempotent: re-running upserts the same buckets.
func (r *Rollup) Run(ctx context.Context, _ map[string]any) error {
	const upsert = `
		INSERT INTO connector_stats_hourly
			(connector_type, endpoint_identity, bucket, heartbeats, degraded, errored)
		SELECT
			connector_type,
			endpoint_identity,
			date_trunc('hour', sent_at) AS bucket,
			count(*),
			count(*) FILTER (WHERE state = 'degraded'),
			count(*) FILTER (WHERE state = 'error')
		FROM connector_heartbeat_log
		WHERE sent_at >= $1 AND sent_at < date_trunc('hour', now())
		GROUP BY connector_type, endpoint_identity, date_trunc('hour', sent_at)
		ON CONFLICT (connector_type, endpoint_identity, bucket) DO UPDATE SET
			heartbeats = EXCLUDED.heartbeats,
			degraded   = EXCLUDED.degraded,
			errored    = EXCLUDED.errored`

	since := time.Now().Add(-6 * time.Hour)
	if _, err := r.db.ExecContext(ctx, upsert, since); err != nil {
		return fmt.Errorf("roll up connector stats: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM connector_heartbeat_log WHERE sent_at < $1`,
		time.Now().Add(-r.retention))
	if err != nil {
		return fmt.Errorf("prune heartbeat log: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		slog.Info("Pruned connector heartbeat log", "rows", n)
	}
	return nil
}
