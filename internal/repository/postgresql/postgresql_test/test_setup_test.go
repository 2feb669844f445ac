package postgresql_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// newTestDB connects to TEST_DATABASE_URL and applies the migrations once per run.
// Tests are skipped when the variable is not set.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	migrateOnce.Do(func() {
		migrateErr = db.Migrate(ctx, filepath.Join("..", "..", "..", "..", "migrations"))
	})
	require.NoError(t, migrateErr)

	truncateAllTables(t, db)
	return db
}

// truncateAllTables menghapus semua data dari tabel
func truncateAllTables(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		TRUNCATE TABLE attendance, employees, events, monthly_working_days,
			company_working_settings, working_days_config CASCADE
	`)
	require.NoError(t, err)
}
