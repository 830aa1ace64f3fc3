// butlerd hosts the household butler roster: one daemon per butler,
// each serving its MCP tools and HTTP API on its roster port.
//
// Subcommands:
//
//	up [butler ...]   run the named butlers (default: whole roster)
//	migrate <butler>  run shared and butler migrations, then exit
//	tick <butler>     run one scheduler pass, then exit
//	ingest [-file F]  post an ingest.v1 envelope to the Switchboard
//
// Exit codes: 0 success, 2 configuration or usage error, 3 runtime
// failure.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/homekeep/butlerd/pkg/butler"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/database"
	"github.com/homekeep/butlerd/pkg/telemetry"
)

const (
	exitOK      = 0
	exitConfig  = 2
	exitRuntime = 3
)

// exitForStatus maps a daemon HTTP response to a process exit code. A
// 4xx means the request itself was bad; other non-2xx means the daemon
// failed to serve it.
func exitForStatus(status int) int {
	switch {
	case status >= 200 && status < 300:
		return exitOK
	case status >= 400 && status < 500:
		return exitConfig
	default:
		return exitRuntime
	}
}

// postDaemon sends one JSON POST to a local daemon, carrying any
// ambient W3C trace context from the TRACEPARENT environment variable.
func postDaemon(url string, payload []byte) (*http.Response, error) {
	ctx := telemetry.ContextFromEnv(context.Background())
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	telemetry.InjectHeaders(ctx, req.Header)
	return (&http.Client{Timeout: 30 * time.Second}).Do(req)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return exitConfig
	}
	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	configDir := fs.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	file := fs.String("file", "", "Envelope file for ingest (default stdin)")
	if err := fs.Parse(rest); err != nil {
		return exitConfig
	}

	setupLogging()
	loadDotEnv(*configDir)

	switch cmd {
	case "up":
		return cmdUp(*configDir, fs.Args())
	case "migrate":
		return cmdMigrate(*configDir, fs.Args())
	case "tick":
		return cmdTick(*configDir, fs.Args())
	case "ingest":
		return cmdIngest(*configDir, *file)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		return exitConfig
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: butlerd <up|migrate|tick|ingest> [flags] [args]")
}

func setupLogging() {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func loadDotEnv(configDir string) {
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}
}

// cmdUp runs the named butlers, or the whole roster, until SIGINT or
// SIGTERM.
func cmdUp(configDir string, names []string) int {
	cfg, err := config.Initialize(configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitConfig
	}

	if len(names) == 0 {
		for name := range cfg.Butlers {
			names = append(names, name)
		}
	}

	daemons := make([]*butler.Daemon, 0, len(names))
	for _, name := range names {
		d, err := butler.New(cfg, name, nil)
		if err != nil {
			slog.Error("Unknown butler", "butler", name, "error", err)
			return exitConfig
		}
		daemons = append(daemons, d)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, len(daemons))
	for _, d := range daemons {
		go func() { errCh <- d.Run(ctx) }()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Received signal, shutting down", "signal", sig)
		cancel()
	case err := <-errCh:
		if err != nil {
			slog.Error("Butler daemon failed", "error", err)
			cancel()
			drainDaemons(errCh, len(daemons)-1)
			return exitRuntime
		}
	}

	drainDaemons(errCh, len(daemons))
	slog.Info("All butlers stopped")
	return exitOK
}

// drainDaemons waits for the remaining daemons to unwind, bounded so a
// stuck shutdown cannot hang the process forever.
func drainDaemons(errCh <-chan error, n int) {
	deadline := time.After(butler.ShutdownTimeout + 5*time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-errCh:
		case <-deadline:
			slog.Warn("Timed out waiting for daemons to stop")
			return
		}
	}
}

// cmdMigrate runs the shared and butler migration chains and exits.
// Module chains run at daemon startup, not here.
func cmdMigrate(configDir string, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: butlerd migrate <butler>")
		return exitConfig
	}
	cfg, err := config.Initialize(configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitConfig
	}
	butlerCfg, ok := cfg.Butlers[args[0]]
	if !ok {
		slog.Error("Unknown butler", "butler", args[0])
		return exitConfig
	}

	ctx := context.Background()
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return exitConfig
	}
	db, err := database.Open(ctx, dbCfg, butlerCfg.Schema)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		return exitRuntime
	}
	defer db.Close()

	migrator := database.NewMigrator(db.DB(), dbCfg)
	if err := migrator.RunShared(ctx); err != nil {
		slog.Error("Shared migrations failed", "error", err)
		return exitRuntime
	}
	if err := migrator.RunButler(ctx, butlerCfg.Schema); err != nil {
		slog.Error("Butler migrations failed", "butler", butlerCfg.Name, "error", err)
		return exitRuntime
	}
	slog.Info("Migrations complete", "butler", butlerCfg.Name, "schema", butlerCfg.Schema)
	return exitOK
}

// cmdTick asks a running butler for one scheduler pass via its tick
// tool endpoint. The daemon owns the runtime stack, so the CLI pokes it
// over HTTP rather than opening a second spawner against the same
// tables.
func cmdTick(configDir string, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: butlerd tick <butler>")
		return exitConfig
	}
	cfg, err := config.Initialize(configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitConfig
	}
	butlerCfg, ok := cfg.Butlers[args[0]]
	if !ok {
		slog.Error("Unknown butler", "butler", args[0])
		return exitConfig
	}

	url := fmt.Sprintf("http://127.0.0.1:%d/api/v1/tick", butlerCfg.Port)
	resp, err := postDaemon(url, nil)
	if err != nil {
		slog.Error("Tick request failed", "butler", butlerCfg.Name, "url", url, "error", err)
		return exitRuntime
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if code := exitForStatus(resp.StatusCode); code != exitOK {
		slog.Error("Tick rejected", "butler", butlerCfg.Name, "status", resp.StatusCode,
			"body", string(out))
		return code
	}
	fmt.Println(string(out))
	return exitOK
}

// cmdIngest posts an ingest.v1 envelope to the Switchboard and prints
// the receipt.
func cmdIngest(configDir, file string) int {
	cfg, err := config.Initialize(configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitConfig
	}
	switchboard, ok := cfg.Butlers[config.ButlerSwitchboard]
	if !ok {
		slog.Error("No switchboard in roster")
		return exitConfig
	}

	var payload []byte
	if file != "" {
		payload, err = os.ReadFile(file)
	} else {
		payload, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		slog.Error("Failed to read envelope", "error", err)
		return exitConfig
	}

	url := fmt.Sprintf("http://127.0.0.1:%d/api/v1/ingest", switchboard.Port)
	resp, err := postDaemon(url, payload)
	if err != nil {
		slog.Error("Ingest request failed", "url", url, "error", err)
		return exitRuntime
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if code := exitForStatus(resp.StatusCode); code != exitOK {
		slog.Error("Envelope rejected", "status", resp.StatusCode, "body", string(out))
		return code
	}
	fmt.Println(string(out))
	return exitOK
}
