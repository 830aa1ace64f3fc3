// Package modules implements the butler module system: optional feature
// bundles a roster entry enables per butler. Modules declare dependencies
// on each other, own a migration chain, contribute MCP tools, and start
// and stop with the daemon.
package modules

import (
	"context"
	"io/fs"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/homekeep/butlerd/ent"
	"github.com/homekeep/butlerd/pkg/config"
	"github.com/homekeep/butlerd/pkg/credentials"
	"github.com/homekeep/butlerd/pkg/database"
)

// ToolFunc is the plain-function form of a tool: decoded arguments in,
// structured result out. The daemon adapts it onto the MCP server and
// the route.execute path.
type ToolFunc func(ctx context.Context, args map[string]any) (map[string]any, error)

// Tool is one MCP tool a module contributes.
type Tool struct {
	Def  *mcpsdk.Tool
	Func ToolFunc

	// Egress marks channel send/reply tools. Only the Messenger may
	// register egress tools; they are stripped everywhere else.
	Egress bool
}

// Deps is what a module gets to work with at startup.
type Deps struct {
	Client      *ent.Client
	Migrator    *database.Migrator
	Butler      *config.ButlerConfig
	Credentials *credentials.Store
}

// Module is one feature bundle. Implementations keep this surface small:
// declare, start, stop, contribute tools.
type Module interface {
	// Name is the roster key that enables this module.
	Name() string

	// Dependencies names modules that must be running first.
	Dependencies() []string

	// Migrations returns the module's embedded migration chain, or a nil
	// FS when the module owns no tables.
	Migrations() (fs.FS, string)

	// Startup runs after migrations, in dependency order.
	Startup(ctx context.Context, deps *Deps) error

	// Shutdown runs in reverse start order.
	Shutdown(ctx context.Context) error

	// Tools returns the MCP tools this module contributes. Called only
	// after a successful Startup.
	Tools() []Tool

	// CredentialKeys names the secrets this module resolves at spawn time.
	CredentialKeys() []string
}

// Status of one enabled module after the startup phase.
type Status string

const (
	StatusRunning       Status = "running"
	StatusFailed        Status = "failed"
	StatusCascadeFailed Status = "cascade_failed"
)

// FilterEgress strips egress tools unless the butler is the Messenger.
func FilterEgress(tools []Tool, butler *config.ButlerConfig) []Tool {
	if butler.IsMessenger() {
		return tools
	}
	kept := make([]Tool, 0, len(tools))
	for _, t := range tools {
		if t.Egress {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
