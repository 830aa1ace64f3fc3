package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/ent/scheduledtask"
	"github.com/homekeep/butlerd/pkg/config"
	testdb "github.com/homekeep/butlerd/test/database"
)

type promptRecorder struct {
	prompts []string
	err     error
}

func (r *promptRecorder) trigger(_ context.Context, _ string, prompt string) error {
	r.prompts = append(r.prompts, prompt)
	return r.err
}

func newTestScheduler(client *ent.Client, butler *config.ButlerConfig, rec *promptRecorder, jobs *JobRegistry) *Scheduler {
	if jobs == nil {
		jobs = NewJobRegistry()
	}
	return New(client, config.DefaultSchedulerConfig(), butler, rec.trigger, jobs)
}

func createDueTask(t *testing.T, client *ent.Client, butler, name, cron string) string {
	t.Helper()
	id := uuid.NewString()
	err := client.ScheduledTask.Create().
		SetID(id).
		SetButlerName(butler).
		SetName(name).
		SetCron(cron).
		SetDispatchMode(scheduledtask.DispatchModePrompt).
		SetPrompt("prompt for " + name).
		SetEnabled(true).
		SetNextRunAt(time.Now().Add(-time.Minute)).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestTickFiresEachDueTaskOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	rec := &promptRecorder{}
	s := newTestScheduler(client.Client, &config.ButlerConfig{Name: "chef"}, rec, nil)

	taskID := createDueTask(t, client.Client, "chef", "daily-brief", "0 7 * * *")
	createDueTask(t, client.Client, "gardener", "watering", "0 6 * * *")

	fired, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fired, "only this butler's tasks fire")
	assert.Equal(t, []string{"prompt for daily-brief"}, rec.prompts)

	// The claim advanced next_run_at, so an immediate second tick (the
	// internal ticker racing the tick tool) fires nothing.
	fired, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Zero(t, fired)
	assert.Len(t, rec.prompts, 1)

	task, err := client.ScheduledTask.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, "ok", task.LastStatus)
	require.NotNil(t, task.NextRunAt)
	assert.True(t, task.NextRunAt.After(time.Now()))
	require.NotNil(t, task.LastRunAt)
}

func TestTickOneShotDisablesItself(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	rec := &promptRecorder{}
	s := newTestScheduler(client.Client, &config.ButlerConfig{Name: "chef"}, rec, nil)

	id, err := s.ScheduleOneShot(ctx, "", "buy milk", time.Now().Add(time.Hour))
	require.NoError(t, err)

	// Not due yet.
	fired, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Zero(t, fired)

	// Pull the due time into the past and tick again.
	require.NoError(t, client.ScheduledTask.UpdateOneID(id).
		SetNextRunAt(time.Now().Add(-time.Second)).
		Exec(ctx))
	fired, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	assert.Equal(t, []string{"buy milk"}, rec.prompts)

	task, err := client.ScheduledTask.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, task.Enabled, "one-shot tasks disable after firing")
	assert.Nil(t, task.NextRunAt)

	fired, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Zero(t, fired, "a fired one-shot never fires again")
}

func TestTickDispatchesJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	rec := &promptRecorder{}

	ran := 0
	jobs := NewJobRegistry()
	jobs.Register("sweep", func(ctx context.Context, args map[string]any) error {
		ran++
		assert.Equal(t, "shared", args["scope"])
		return nil
	})
	s := newTestScheduler(client.Client, &config.ButlerConfig{Name: "chef"}, rec, jobs)

	id := uuid.NewString()
	require.NoError(t, client.ScheduledTask.Create().
		SetID(id).
		SetButlerName("chef").
		SetName("nightly-sweep").
		SetCron("0 4 * * *").
		SetDispatchMode(scheduledtask.DispatchModeJob).
		SetJobName("sweep").
		SetJobArgs(map[string]any{"scope": "shared"}).
		SetEnabled(true).
		SetNextRunAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	fired, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, ran)
	assert.Empty(t, rec.prompts, "job tasks never spawn a session")

	task, err := client.ScheduledTask.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ok", task.LastStatus)
}

func TestTickRecordsFailures(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	rec := &promptRecorder{err: errors.New("runtime exploded")}
	s := newTestScheduler(client.Client, &config.ButlerConfig{Name: "chef"}, rec, nil)

	id := createDueTask(t, client.Client, "chef", "daily-brief", "0 7 * * *")

	fired, err := s.Tick(ctx)
	require.NoError(t, err, "a failing task does not fail the tick")
	assert.Equal(t, 1, fired)

	task, err := client.ScheduledTask.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "error", task.LastStatus)
	require.NotNil(t, task.LastError)
	assert.Contains(t, *task.LastError, "runtime exploded")
}

func TestSyncTasksReconcilesRoster(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	rec := &promptRecorder{}

	butler := &config.ButlerConfig{
		Name: "chef",
		Schedules: []config.ScheduleConfig{
			{Name: "daily-brief", Cron: "0 7 * * *", DispatchMode: "prompt", Prompt: "brief me"},
		},
	}
	s := newTestScheduler(client.Client, butler, rec, nil)
	require.NoError(t, s.SyncTasks(ctx))

	task, err := client.ScheduledTask.Query().
		Where(scheduledtask.NameEQ("daily-brief")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, task.Enabled)
	require.NotNil(t, task.NextRunAt)

	// Syncing again leaves one row.
	require.NoError(t, s.SyncTasks(ctx))
	n, err := client.ScheduledTask.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Dropping the schedule from the roster disables the task but keeps
	// its audit trail.
	butler.Schedules = nil
	require.NoError(t, s.SyncTasks(ctx))
	task, err = client.ScheduledTask.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, task.Enabled)
}
