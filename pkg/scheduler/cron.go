package scheduler

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard 5-field expressions, evaluated in UTC.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// ParseCron validates a 5-field cron expression.
func ParseCron(expr string) (cron.Schedule, error) {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron %q: %w", expr, err)
	}
	return sched, nil
}

// NextRun computes the next firing after the given instant, shifted by
// the butler's deterministic stagger offset. The offset is bounded by
// min(staggerCap, interval/2) so cadence is preserved while
// synchronized bursts across butlers spread out.
func NextRun(sched cron.Schedule, after time.Time, butler string, staggerCap time.Duration) time.Time {
	base := sched.Next(after.UTC())
	interval := sched.Next(base).Sub(base)

	window := staggerCap
	if half := interval / 2; half < window {
		window = half
	}
	if window <= 0 {
		return base
	}
	return base.Add(staggerOffset(butler, window))
}

// staggerOffset derives a stable offset in [0, window) from the butler
// name.
func staggerOffset(butler string, window time.Duration) time.Duration {
	h := fnv.New32a()
	h.Write([]byte(butler))
	return time.Duration(uint64(h.Sum32()) % uint64(window))
}
