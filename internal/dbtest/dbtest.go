// Package dbtest opens migrated databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/qa_api/internal/db"
	"github.com/Skotchmaster/qa_api/internal/models"
)

const PostgresEnv = "QAAPI_TEST_DATABASE_URL"

// New returns a migrated in-memory sqlite database that is closed with the test.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, "sqlite://:memory:")
}

// NewPostgres returns a migrated, truncated postgres database, or skips the
// test when QAAPI_TEST_DATABASE_URL is unset.
func NewPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(PostgresEnv)
	if dsn == "" {
		t.Skip(PostgresEnv + " is required for postgres tests")
	}

	gdb := open(t, dsn)
	Truncate(t, gdb)
	t.Cleanup(func() { Truncate(t, gdb) })
	return gdb
}

func Truncate(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	tables := make([]string, 0, len(models.All()))
	for _, m := range []string{"transactions", "statuses", "products", "users"} {
		tables = append(tables, pq.QuoteIdentifier(m))
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	require.NoError(t, gdb.Exec(query).Error)
}

func open(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	gdb, err := db.Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, gdb))

	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}
