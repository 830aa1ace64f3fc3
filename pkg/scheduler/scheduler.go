// Package scheduler fires a butler's scheduled tasks. Tasks live in the
// scheduled_tasks table, synced from the roster config at startup. An
// internal ticker drives Tick; the MCP tick tool calls the same entry
// point, which is idempotent inside a scheduling period.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/scheduledtask"
	"github.com/homekeep/butlerd/pkg/config"
)

// TriggerFunc dispatches a prompt-mode task through the spawner.
type TriggerFunc func(ctx context.Context, butler, prompt string) error

// Scheduler owns the tick loop for one butler.
type Scheduler struct {
	client  *ent.Client
	cfg     *config.SchedulerConfig
	butler  *config.ButlerConfig
	trigger TriggerFunc
	jobs    *JobRegistry

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a scheduler for one butler daemon.
func New(client *ent.Client, cfg *config.SchedulerConfig, butler *config.ButlerConfig, trigger TriggerFunc, jobs *JobRegistry) *Scheduler {
	return &Scheduler{
		client:  client,
		cfg:     cfg,
		butler:  butler,
		trigger: trigger,
		jobs:    jobs,
		stopCh:  make(chan struct{}),
	}
}

// SyncTasks reconciles the scheduled_tasks table with the roster
// config: missing tasks are created, changed ones updated. Tasks in
// the table but absent from config are disabled, not deleted, so their
// audit trail survives.
func (s *Scheduler) SyncTasks(ctx context.Context) error {
	now := time.Now()
	declared := make(map[string]bool, len(s.butler.Schedules))

	for _, sc := range s.butler.Schedules {
		declared[sc.Name] = true
		sched, err := ParseCron(sc.Cron)
		if err != nil {
			return err
		}
		enabled := sc.Enabled == nil || *sc.Enabled
		next := NextRun(sched, now, s.butler.Name, s.cfg.StaggerCap)

		existing, err := s.client.ScheduledTask.Query().
			Where(
				scheduledtask.ButlerNameEQ(s.butler.Name),
				scheduledtask.NameEQ(sc.Name),
			).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			create := s.client.ScheduledTask.Create().
				SetID(uuid.NewString()).
				SetButlerName(s.butler.Name).
				SetName(sc.Name).
				SetCron(sc.Cron).
				SetDispatchMode(scheduledtask.DispatchMode(sc.DispatchMode)).
				SetEnabled(enabled).
				SetNextRunAt(next)
			if sc.Prompt != "" {
				create.SetPrompt(sc.Prompt)
			}
			if sc.JobName != "" {
				create.SetJobName(sc.JobName)
			}
			if sc.JobArgs != nil {
				create.SetJobArgs(sc.JobArgs)
			}
			if err := create.Exec(ctx); err != nil {
				return fmt.Errorf("create task %q: %w", sc.Name, err)
			}
		case err != nil:
			return fmt.Errorf("query task %q: %w", sc.Name, err)
		default:
			update := s.client.ScheduledTask.UpdateOneID(existing.ID).
				SetDispatchMode(scheduledtask.DispatchMode(sc.DispatchMode)).
				SetEnabled(enabled)
			if sc.Prompt != "" {
				update.SetPrompt(sc.Prompt)
			}
			if sc.JobName != "" {
				update.SetJobName(sc.JobName)
			}
			if sc.JobArgs != nil {
				update.SetJobArgs(sc.JobArgs)
			}
			// A cron change resets the firing schedule.
			if existing.Cron != sc.Cron {
				update.SetCron(sc.Cron).SetNextRunAt(next)
			} else if existing.NextRunAt == nil {
				update.SetNextRunAt(next)
			}
			if err := update.Exec(ctx); err != nil {
				return fmt.Errorf("update task %q: %w", sc.Name, err)
			}
		}
	}

	// Disable tasks dropped from the roster.
	stale, err := s.client.ScheduledTask.Query().
		Where(
			scheduledtask.ButlerNameEQ(s.butler.Name),
			scheduledtask.EnabledEQ(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query stale tasks: %w", err)
	}
	for _, task := range stale {
		if declared[task.Name] {
			continue
		}
		if err := s.client.ScheduledTask.UpdateOneID(task.ID).
			SetEnabled(false).
			Exec(ctx); err != nil {
			return fmt.Errorf("disable task %q: %w", task.Name, err)
		}
		slog.Info("Disabled scheduled task no longer in roster",
			"butler", s.butler.Name, "task", task.Name)
	}
	return nil
}

// ScheduleOneShot creates a prompt task that fires once at the given
// time and then disables itself. Backs the remind tool.
func (s *Scheduler) ScheduleOneShot(ctx context.Context, name, prompt string, at time.Time) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("one-shot task needs a prompt")
	}
	if !at.After(time.Now()) {
		return "", fmt.Errorf("one-shot time %s is in the past", at.Format(time.RFC3339))
	}
	id := uuid.NewString()
	if name == "" {
		name = "remind-" + id[:8]
	}
	err := s.client.ScheduledTask.Create().
		SetID(id).
		SetButlerName(s.butler.Name).
		SetName(name).
		SetCron("").
		SetDispatchMode(scheduledtask.DispatchModePrompt).
		SetPrompt(prompt).
		SetEnabled(true).
		SetDueAt(at).
		SetNextRunAt(at).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("create one-shot task %q: %w", name, err)
	}
	return id, nil
}

// List returns this butler's tasks, enabled first, then by name.
func (s *Scheduler) List(ctx context.Context) ([]*ent.ScheduledTask, error) {
	return s.client.ScheduledTask.Query().
		Where(scheduledtask.ButlerNameEQ(s.butler.Name)).
		Order(ent.Desc(scheduledtask.FieldEnabled), ent.Asc(scheduledtask.FieldName)).
		All(ctx)
}

// Start launches the internal tick loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts the tick loop and waits for an in-flight tick to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	slog.Info("Scheduler started",
		"butler", s.butler.Name, "tick_interval", s.cfg.TickInterval)

	for {
		select {
		case <-s.stopCh:
			slog.Info("Scheduler stopped", "butler", s.butler.Name)
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Tick(ctx); err != nil {
				slog.Error("Scheduler tick failed",
					"butler", s.butler.Name, "error", err)
			}
		}
	}
}

// Tick fires every due task once and returns the number fired. The
// claim is a compare-and-set on next_run_at, so concurrent ticks (the
// internal ticker racing the MCP tick tool) fire each task at most once
// per cron cycle.
func (s *Scheduler) Tick(ctx context.Context) (int, error) {
	now := time.Now()

	due, err := s.client.ScheduledTask.Query().
		Where(
			scheduledtask.ButlerNameEQ(s.butler.Name),
			scheduledtask.EnabledEQ(true),
			scheduledtask.NextRunAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query due tasks: %w", err)
	}

	fired := 0
	for _, task := range due {
		// One-shot tasks (reminders) carry no cron; they fire once and
		// disable themselves.
		if task.Cron == "" {
			n, err := s.client.ScheduledTask.Update().
				Where(
					scheduledtask.IDEQ(task.ID),
					scheduledtask.NextRunAtEQ(*task.NextRunAt),
				).
				SetEnabled(false).
				ClearNextRunAt().
				SetLastRunAt(now).
				Save(ctx)
			if err != nil {
				return fired, fmt.Errorf("claim one-shot %q: %w", task.Name, err)
			}
			if n == 0 {
				continue
			}
			s.fire(ctx, task)
			fired++
			continue
		}

		sched, err := ParseCron(task.Cron)
		if err != nil {
			slog.Error("Scheduled task has invalid cron, disabling",
				"task", task.Name, "cron", task.Cron, "error", err)
			_ = s.client.ScheduledTask.UpdateOneID(task.ID).
				SetEnabled(false).
				SetLastStatus("error").
				SetLastError(err.Error()).
				Exec(ctx)
			continue
		}
		next := NextRun(sched, now, s.butler.Name, s.cfg.StaggerCap)

		// Claim the firing: whoever advances next_run_at owns it.
		n, err := s.client.ScheduledTask.Update().
			Where(
				scheduledtask.IDEQ(task.ID),
				scheduledtask.NextRunAtEQ(*task.NextRunAt),
			).
			SetNextRunAt(next).
			SetLastRunAt(now).
			Save(ctx)
		if err != nil {
			return fired, fmt.Errorf("claim task %q: %w", task.Name, err)
		}
		if n == 0 {
			continue
		}

		s.fire(ctx, task)
		fired++
	}
	return fired, nil
}

// fire dispatches one claimed task and records the audit outcome.
func (s *Scheduler) fire(ctx context.Context, task *ent.ScheduledTask) {
	log := slog.With("butler", s.butler.Name, "task", task.Name,
		"mode", task.DispatchMode)
	log.Info("Firing scheduled task")

	var err error
	switch task.DispatchMode {
	case scheduledtask.DispatchModeJob:
		fn, ok := s.jobs.Get(task.JobName)
		if !ok {
			err = fmt.Errorf("no registered job %q", task.JobName)
		} else {
			err = fn(ctx, task.JobArgs)
		}
	default:
		err = s.trigger(ctx, s.butler.Name, task.Prompt)
	}

	update := s.client.ScheduledTask.UpdateOneID(task.ID)
	if err != nil {
		log.Warn("Scheduled task failed", "error", err)
		update.SetLastStatus("error").SetLastError(err.Error())
	} else {
		update.SetLastStatus("ok").ClearLastError()
	}
	if uerr := update.Exec(ctx); uerr != nil {
		log.Error("Failed to record task outcome", "error", uerr)
	}
}
