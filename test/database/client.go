// Package database provides a ready-made test client over an isolated
// schema.
package database

import (
	"testing"

	"github.com/homekeep/butlerd/pkg/database"
	"github.com/homekeep/butlerd/test/util"
)

// NewTestClient creates a database client over an isolated per-test
// schema. In CI (CI_DATABASE_URL set) it connects to the external
// PostgreSQL service; locally it spins up a shared testcontainer. The
// schema is dropped when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
