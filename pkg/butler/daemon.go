// Package butler runs one butler daemon: the phased startup, the MCP
// listener with core and module tools, the background loops, and the
// reverse-order shutdown.
package butler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/homekeep/butlerd/pkg/api"
	"github.com/homekeep/butlerd/pkg/approvals"
	"github.com/homekeep/butlerd/pkg/classify"
	"github.com/homekeep/butlerd/pkg/cleanup"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/credentials"
	"github.com/homekeep/butlerd/pkg/database"
	"github.com/homekeep/butlerd/pkg/fanout"
	"github.com/homekeep/butlerd/pkg/heartbeat"
	"github.com/homekeep/butlerd/pkg/ingest"
	"github.com/homekeep/butlerd/pkg/ingress"
	"github.com/homekeep/butlerd/pkg/mcp"
	"github.com/homekeep/butlerd/pkg/modules"
	"github.com/homekeep/butlerd/pkg/notify"
	"github.com/homekeep/butlerd/pkg/pipeline"
	"github.com/homekeep/butlerd/pkg/registry"
	"github.com/homekeep/butlerd/pkg/route"
	"github.com/homekeep/butlerd/pkg/runtime"
	"github.com/homekeep/butlerd/pkg/scheduler"
	"github.com/homekeep/butlerd/pkg/services"
	"github.com/homekeep/butlerd/pkg/spawner"
	"github.com/homekeep/butlerd/pkg/telemetry"
	"github.com/homekeep/butlerd/pkg/version"
)

// ShutdownTimeout bounds the in-flight session drain on shutdown.
const ShutdownTimeout = 30 * time.Second

// Daemon is one running butler.
type Daemon struct {
	cfg    *config.Config
	butler *config.ButlerConfig

	db       *database.Client
	creds    *credentials.Store
	adapter  runtime.Adapter
	callLog  *spawner.CallLog
	spawner  *spawner.Spawner
	registry *registry.Registry
	router   *route.Router
	engine   *approvals.Engine
	notifier *notify.Notifier
	sched    *scheduler.Scheduler
	jobs     *scheduler.JobRegistry
	sessions *services.SessionService
	state    *services.StateService
	tools    *toolSet
	ungated  map[string]modules.ToolFunc

	moduleRegistry *modules.Registry
	moduleSet      *modules.Set

	// Switchboard-only components.
	pool     *ingress.Pool
	intake   *heartbeat.Intake
	reporter *registry.Reporter

	httpServer        *http.Server
	telemetryShutdown telemetry.ShutdownFunc
	cancelLoops       context.CancelFunc
}

// New creates an unstarted daemon for one roster butler.
func New(cfg *config.Config, name string, moduleRegistry *modules.Registry) (*Daemon, error) {
	butlerCfg, ok := cfg.Butlers[name]
	if !ok {
		return nil, fmt.Errorf("butler %q is not in the roster", name)
	}
	if moduleRegistry == nil {
		moduleRegistry = BuiltinModules()
	}
	return &Daemon{cfg: cfg, butler: butlerCfg, moduleRegistry: moduleRegistry}, nil
}

// BuiltinModules returns the registry of modules shipped with butlerd.
func BuiltinModules() *modules.Registry {
	r := modules.NewRegistry()
	r.Register(modules.NewChannelsModule())
	r.Register(modules.NewMemosModule())
	return r
}

// Run starts the daemon and blocks until ctx is cancelled, then shuts
// down in reverse order. Failures in the early phases are fatal; module
// failures after the database is up are tracked, not fatal.
func (d *Daemon) Run(ctx context.Context) error {
	log := slog.With("butler", d.butler.Name)
	log.Info("Starting butler daemon", "port", d.butler.Port, "schema", d.butler.Schema)

	// Phase 1: runtime adapter.
	adapter, err := runtime.New(d.cfg.Runtime)
	if err != nil {
		return fmt.Errorf("select runtime adapter: %w", err)
	}
	d.adapter = adapter

	// Phase 2: telemetry.
	shutdownTelemetry, err := telemetry.Init(ctx, d.butler.Name)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	d.telemetryShutdown = shutdownTelemetry

	// Phase 3+4: database pool with schema-scoped search path, then the
	// credential store over it.
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}
	d.db, err = database.Open(ctx, dbCfg, d.butler.Schema)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	d.creds = credentials.NewStore(d.db.Client)

	// Phase 5: migrations. Shared chain, butler chain, then each enabled
	// module's chain inside the module start phase.
	migrator := database.NewMigrator(d.db.DB(), dbCfg)
	if err := migrator.RunShared(ctx); err != nil {
		return fmt.Errorf("run shared migrations: %w", err)
	}
	if err := migrator.RunButler(ctx, d.butler.Schema); err != nil {
		return fmt.Errorf("run butler migrations: %w", err)
	}

	// Core services.
	d.callLog = spawner.NewCallLog()
	d.state = services.NewStateService(d.db.Client, d.butler.Name)
	d.sessions = services.NewSessionService(d.db.Client, d.butler.Name)
	d.spawner = spawner.New(d.cfg, d.adapter, d.creds, d.db.Client, d.callLog, d)
	d.registry = registry.New(d.db.Client, d.cfg.Registry)
	d.router = route.NewRouter(d.registry, mcp.NewClientCache(), d.registry, d.cfg.Registry)
	d.engine = approvals.NewEngine(d.db.Client, d.cfg.Approvals)
	d.notifier = notify.New(d.butler, d.router, nil)
	d.jobs = scheduler.NewJobRegistry()
	d.jobs.Register("retention_sweep",
		cleanup.NewService(d.db.Client, d.cfg.Retention, d.butler).Run)
	d.sched = scheduler.New(d.db.Client, d.cfg.Scheduler, d.butler, d.scheduleTrigger, d.jobs)
	d.injectBuiltinSchedules()

	// Phase 6: modules in dependency order; failures cascade, daemon
	// continues.
	d.moduleSet, err = d.moduleRegistry.Start(ctx, &modules.Deps{
		Client:      d.db.Client,
		Migrator:    migrator,
		Butler:      d.butler,
		Credentials: d.creds,
	})
	if err != nil {
		return fmt.Errorf("start modules: %w", err)
	}
	for name, keys := range d.moduleSet.CredentialKeys() {
		d.spawner.DeclareModuleCredentials(d.butler.Name, keys)
		log.Info("Module credentials declared", "module", name, "keys", len(keys))
	}
	if d.butler.IsMessenger() {
		d.wireEgress()
	}

	// Phases 7+8: core tools, then module tools through the
	// egress-ownership filter.
	d.tools = newToolSet()
	d.registerCoreTools()
	for _, tool := range modules.FilterEgress(d.moduleSet.Tools(), d.butler) {
		d.tools.add(tool.Def, tool.Func)
	}

	// Phase 9: approval gates.
	d.applyApprovalGates()

	// Switchboard-only services.
	var apiServer *api.Server
	if d.butler.IsSwitchboard() {
		apiServer = d.startSwitchboard(ctx)
	} else {
		apiServer = api.NewServer(d.butler, d.db.DB())
	}
	apiServer.WithTicker(d.sched)

	// Phase 10: listener. One port serves the HTTP API, the streamable
	// MCP endpoint, and the legacy SSE endpoint.
	if err := d.startListener(apiServer); err != nil {
		return err
	}

	// Phase 11: registration with the Switchboard.
	loopCtx, cancel := context.WithCancel(context.Background())
	d.cancelLoops = cancel
	d.startRegistration(loopCtx)

	// Phase 12: background loops.
	if err := d.sched.SyncTasks(ctx); err != nil {
		return fmt.Errorf("sync scheduled tasks: %w", err)
	}
	d.sched.Start(loopCtx)
	if d.pool != nil {
		if err := d.pool.Start(loopCtx); err != nil {
			return fmt.Errorf("start ingress pool: %w", err)
		}
	}

	log.Info("Butler daemon started", "tools", len(d.tools.names()))

	<-ctx.Done()
	d.shutdown()
	return nil
}

// scheduleTrigger dispatches a prompt-mode scheduled task through the
// spawner.
func (d *Daemon) scheduleTrigger(ctx context.Context, butler, prompt string) error {
	_, err := d.spawner.Trigger(ctx, spawner.TriggerRequest{
		Butler:        butler,
		Prompt:        prompt,
		TriggerSource: "schedule",
	})
	return err
}

// MemoryContext satisfies spawner.MemoryProvider: long-lived context a
// butler has saved for itself under the memory_context state key.
func (d *Daemon) MemoryContext(ctx context.Context, butler string) (string, error) {
	value, err := d.state.Get(ctx, "memory_context")
	if errors.Is(err, services.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	text, _ := value["text"].(string)
	return text, nil
}

// wireEgress connects the Messenger's notifier to its egress module.
func (d *Daemon) wireEgress() {
	for _, m := range d.moduleSet.Running() {
		if egress, ok := m.(notify.Egress); ok {
			d.notifier = notify.New(d.butler, d.router, egress)
			slog.Info("Egress wired", "module", m.Name())
			return
		}
	}
	slog.Warn("Messenger has no egress module; notify will fail locally")
}

// startSwitchboard brings up the ingest pipeline, connector intake and
// built-in jobs, and returns the fully mounted API server.
func (d *Daemon) startSwitchboard(ctx context.Context) *api.Server {
	d.intake = heartbeat.NewIntake(d.db.Client)

	buffer := ingress.NewBuffer(d.db.Client, d.cfg.Ingress)
	classifier := classify.NewClassifier(d.spawner, d.registry)
	inbox := services.NewInboxService(d.db.Client)
	dispatcher := fanout.NewDispatcher(d.router, fanout.NewEntRecorder(d.db.Client))
	proc := pipeline.New(inbox, classifier, dispatcher, d.cfg.Fanout)
	d.pool = ingress.NewPool(buffer, proc)

	ingestSvc := ingest.NewService(d.db.Client, buffer)

	// Native jobs behind the built-in Switchboard schedules.
	d.jobs.Register("eligibility_sweep", func(ctx context.Context, _ map[string]any) error {
		_, err := d.registry.SweepStale(ctx)
		return err
	})
	d.jobs.Register("approval_expiry", func(ctx context.Context, _ map[string]any) error {
		_, err := d.engine.ExpireOverdue(ctx)
		return err
	})
	d.jobs.Register("connector_stats_rollup",
		heartbeat.NewRollup(d.db.DB(), d.cfg.Retention.HeartbeatRetention).Run)

	return api.NewServer(d.butler, d.db.DB()).
		WithIngest(ingestSvc).
		WithRegistry(d.registry).
		WithConnectorIntake(d.intake).
		WithApprovals(d.engine).
		WithBufferHealth(d.pool)
}

// injectBuiltinSchedules adds the per-butler retention sweep to the
// roster before SyncTasks runs. The Switchboard's other maintenance
// schedules come from the built-in config. Roster entries with the same
// name win.
func (d *Daemon) injectBuiltinSchedules() {
	for _, sc := range d.butler.Schedules {
		if sc.Name == "retention-sweep" {
			return
		}
	}
	d.butler.Schedules = append(d.butler.Schedules, config.ScheduleConfig{
		Name:         "retention-sweep",
		Cron:         "0 4 * * *",
		DispatchMode: "job",
		JobName:      "retention_sweep",
	})
}

// startListener mounts the API routes plus the MCP endpoints on the
// butler's port and starts serving.
func (d *Daemon) startListener(apiServer *api.Server) error {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    version.AppName + "-" + d.butler.Name,
		Version: version.GitCommit,
	}, nil)
	d.tools.attach(server, d.callLog)

	streamable := mcpsdk.NewStreamableHTTPHandler(
		func(*http.Request) *mcpsdk.Server { return server }, nil)
	sse := mcpsdk.NewSSEHandler(
		func(*http.Request) *mcpsdk.Server { return server })

	engine := apiServer.Routes()
	engine.Any("/mcp", gin.WrapH(withSessionBinding(streamable)))
	engine.Any("/sse", gin.WrapH(withSessionBinding(sse)))

	d.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", d.butler.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := d.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Listener failed", "butler", d.butler.Name, "error", err)
			errCh <- err
		}
	}()

	// Give an immediate bind failure a moment to surface.
	select {
	case err := <-errCh:
		return fmt.Errorf("start listener on :%d: %w", d.butler.Port, err)
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// startRegistration registers this butler with the Switchboard. The
// Switchboard writes its own registry row directly; everyone else runs
// the HTTP reporter loop.
func (d *Daemon) startRegistration(ctx context.Context) {
	reg := registry.Registration{
		Butler:       d.butler.Name,
		EndpointURL:  d.butler.EndpointURL(),
		Capabilities: d.tools.names(),
		Description:  d.butler.Description,
		LivenessTTL:  d.butler.LivenessTTL,
	}

	if d.butler.IsSwitchboard() {
		if err := d.registry.Register(ctx, reg); err != nil {
			slog.Error("Switchboard self-registration failed", "error", err)
		}
		return
	}

	switchboard, ok := d.cfg.Butlers[config.ButlerSwitchboard]
	if !ok {
		slog.Warn("No switchboard in roster; skipping registration")
		return
	}
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", switchboard.Port)
	d.reporter = registry.NewReporter(reg, baseURL, d.cfg.Registry)
	go func() {
		if err := d.reporter.Start(ctx); err != nil {
			slog.Error("Liveness reporter failed to register", "butler", d.butler.Name, "error", err)
		}
	}()
}

// shutdown unwinds the daemon in reverse start order, draining
// in-flight sessions within ShutdownTimeout.
func (d *Daemon) shutdown() {
	log := slog.With("butler", d.butler.Name)
	log.Info("Shutting down")

	drainCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if d.cancelLoops != nil {
		d.cancelLoops()
	}
	if d.reporter != nil {
		d.reporter.Stop()
	}
	if d.pool != nil {
		d.pool.Stop()
	}
	d.sched.Stop()
	d.drainSessions(drainCtx)

	if d.httpServer != nil {
		if err := d.httpServer.Shutdown(drainCtx); err != nil {
			log.Error("Listener shutdown failed", "error", err)
		}
	}
	if d.moduleSet != nil {
		d.moduleSet.Shutdown(drainCtx)
	}
	if d.telemetryShutdown != nil {
		if err := d.telemetryShutdown(drainCtx); err != nil {
			log.Warn("Telemetry shutdown failed", "error", err)
		}
	}
	if err := d.db.Close(); err != nil {
		log.Error("Database close failed", "error", err)
	}
	log.Info("Shutdown complete")
}

// drainSessions waits for running sessions to reach a terminal status.
func (d *Daemon) drainSessions(ctx context.Context) {
	for {
		running, err := d.sessions.Running(ctx)
		if err != nil || len(running) == 0 {
			return
		}
		slog.Info("Draining sessions", "butler", d.butler.Name, "running", len(running))
		select {
		case <-ctx.Done():
			slog.Warn("Session drain timed out", "butler", d.butler.Name,
				"abandoned", len(running))
			return
		case <-time.After(time.Second):
		}
	}
}
