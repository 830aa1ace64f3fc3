// Package database provides the PostgreSQL client, schema-scoped pools,
// and the migration chain runner.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/homekeep/butlerd/ent"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

// SharedSchema is the cross-butler schema holding the registry, inbox,
// secrets, and connector tables.
const SharedSchema = "shared"

// Client wraps an Ent client scoped to one butler's search path.
type Client struct {
	*ent.Client
	db     *stdsql.DB
	schema string
}

// DB returns the underlying database connection for health checks and raw SQL.
func (c *Client) DB() *stdsql.DB { return c.db }

// Schema returns the butler schema this client is scoped to.
func (c *Client) Schema() string { return c.schema }

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// SearchPath builds the search path for a butler schema:
// the butler's own schema first, then shared, then public.
func SearchPath(butlerSchema string) string {
	return strings.Join([]string{butlerSchema, SharedSchema, "public"}, ",")
}

// Open creates a pooled, schema-scoped database client for one butler.
// Migrations are NOT applied here; callers run the Migrator explicitly
// during the daemon startup phases.
func Open(ctx context.Context, cfg Config, butlerSchema string) (*Client, error) {
	dsn := cfg.DSN(SearchPath(butlerSchema))

	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	return &Client{
		Client: entClient,
		db:     db,
		schema: butlerSchema,
	}, nil
}

// Close closes the Ent client and the underlying pool.
func (c *Client) Close() error {
	return c.Client.Close()
}
