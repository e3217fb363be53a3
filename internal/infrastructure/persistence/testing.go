//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"model_serving_service/internal/infrastructure/persistence/models"
	"model_serving_service/internal/pkg/config"
	"model_serving_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext bundles the database connection and repository used by the
// persistence integration tests.
type TestContext struct {
	DB                   *gorm.DB
	PredictionRepository *GormPredictionRepository
	DBType               string
}

// SetupTestDB creates a test database connection with migrations applied.
// SQLite runs in memory; PostgreSQL gets a uniquely named throwaway database
// that is dropped on cleanup.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	var settings config.DatabaseSettings
	var testDBName string

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
	case config.PostgresDbType:
		testDBName = "test_" + strings.ReplaceAll(uuid.New().String(), "-", "")
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
			Name: testDBName,
		}
	default:
		t.Fatalf("unsupported test database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "failed to connect to test database")

	err = db.AutoMigrate(&models.PredictionModel{})
	require.NoError(t, err, "failed to migrate test database")

	repo, err := NewGormPredictionRepository(db, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
		if dbType == config.PostgresDbType {
			if err := DropDatabase(settings.DSN, testDBName); err != nil {
				t.Logf("failed to drop test database %s: %v", testDBName, err)
			}
		}
	})

	return &TestContext{
		DB:                   db,
		PredictionRepository: repo,
		DBType:               dbType,
	}
}

// RequirePostgres skips the test when no local PostgreSQL is reachable.
func RequirePostgres(t *testing.T) {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.PostgresDbType,
		DSN:  "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
	}
	db, err := NewDBConnection(settings)
	if err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}
	if err := CloseDB(db); err != nil {
		t.Logf("failed to close probe connection: %v", err)
	}
}
