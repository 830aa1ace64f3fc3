package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator applies migration chains in order: the shared (core) chain first,
// then the per-butler chain into each butler schema, then any module chains
// a butler's enabled modules contribute.
//
// Each chain keeps its own version table inside its target schema, so chains
// never interfere with one another.
type Migrator struct {
	db  *stdsql.DB
	cfg Config
}

// NewMigrator creates a migrator over an existing connection.
func NewMigrator(db *stdsql.DB, cfg Config) *Migrator {
	return &Migrator{db: db, cfg: cfg}
}

// RunShared applies the core chain into the shared schema.
func (m *Migrator) RunShared(ctx context.Context) error {
	return m.runChain(ctx, migrationsFS, "migrations/shared", SharedSchema, "schema_migrations")
}

// RunButler applies the butler chain into one butler schema.
func (m *Migrator) RunButler(ctx context.Context, butlerSchema string) error {
	return m.runChain(ctx, migrationsFS, "migrations/butler", butlerSchema, "schema_migrations")
}

// RunModule applies a module-provided chain into the butler schema.
// Module chains version independently via a per-module migrations table.
func (m *Migrator) RunModule(ctx context.Context, butlerSchema, moduleName string, src fs.FS, dir string) error {
	table := "schema_migrations_" + moduleName
	return m.runChain(ctx, src, dir, butlerSchema, table)
}

func (m *Migrator) runChain(ctx context.Context, src fs.FS, dir, schema, table string) error {
	if _, err := m.db.ExecContext(ctx,
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %q", schema)); err != nil {
		return fmt.Errorf("failed to create schema %q: %w", schema, err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{
		SchemaName:      schema,
		MigrationsTable: table,
	})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(src, dir)
	if err != nil {
		return fmt.Errorf("failed to create migration source %q: %w", dir, err)
	}

	mg, err := migrate.NewWithInstance("iofs", sourceDriver, schema, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = mg.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply %s chain into %q: %w", dir, schema, err)
	}

	// Close only the source driver. mg.Close() would also close the shared
	// *sql.DB passed through postgres.WithInstance.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	slog.Info("Migration chain applied", "chain", dir, "schema", schema)
	return nil
}
