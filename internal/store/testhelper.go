package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"voice-bridge/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the PostgreSQL instance described by the TEST_DB_*
// environment variables. Tests are skipped when no database is reachable.
// Migrations are applied by Flyway from the migrations directory.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := connectTestDB(t)
	if err != nil {
		t.Skipf("skipping database test: %v", err)
	}

	logger := observability.NewLogger()
	return &TestDB{
		db:     db,
		logger: logger,
		Store:  Store{db: db, logger: logger},
	}
}

func connectTestDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := getTestEnv("TEST_DB_HOST", "localhost")
	dbPort := getTestEnv("TEST_DB_PORT", "5432")
	dbUser := getTestEnv("TEST_DB_USER", "bridge_user")
	dbPass := getTestEnv("TEST_DB_PASSWORD", "bridge_password")
	dbName := getTestEnv("TEST_DB_NAME", "bridge_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

func getTestEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		// Reverse dependency order
		tables = []string{
			"catalog_order_items",
			"catalog_orders",
			"catalog_products",
			"monthly_usage",
			"call_usage",
			"credit_transactions",
			"account_credits",
			"agents",
			"accounts",
		}
	}

	for _, table := range tables {
		_, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil && !strings.Contains(err.Error(), "does not exist") {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	_, err := tdb.db.Exec(query, args...)
	if err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}

// WithContext returns a context for testing
func (tdb *TestDB) WithContext() context.Context {
	return context.Background()
}
