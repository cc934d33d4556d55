package integration

import (
	"context"
	"fmt"
	"time"

	"content-service/app/config"
	"content-service/app/driver/postgres"
	"content-service/app/utils/logger"
)

const (
	// Test environment configuration
	testPostgresHost     = "localhost"
	testPostgresPort     = "5433"
	testPostgresDB       = "content_test_db"
	testPostgresUser     = "content_test_user"
	testPostgresPassword = "test_password"
)

// testConfig creates a configuration for integration tests. The test database
// runs locally without TLS, so certificate verification stays off.
func testConfig() *config.Config {
	return &config.Config{
		// Server
		Port:     "3001",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		// Database
		DatabaseHost:     testPostgresHost,
		DatabasePort:     testPostgresPort,
		DatabaseName:     testPostgresDB,
		DatabaseUser:     testPostgresUser,
		DatabasePassword: testPostgresPassword,

		DatabaseSSLEnabled: false,

		// Features
		EnableMetrics: false,
	}
}

// testConnector creates a connector against the test database
func testConnector() (*postgres.Connector, error) {
	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return postgres.NewConnector(testConfig(), testLogger), nil
}

// testConnection opens a single connection to the test database. The caller
// owns the connection and must close it.
func testConnection(ctx context.Context) (postgres.DatabaseIface, error) {
	connector, err := testConnector()
	if err != nil {
		return nil, err
	}

	return connector.Connect(ctx)
}

// waitForService waits for a service to be healthy
func waitForService(ctx context.Context, healthCheckFunc func(context.Context) error, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if err := healthCheckFunc(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
			// Continue waiting
		}
	}

	return fmt.Errorf("service did not become healthy within %v", timeout)
}

// waitForDatabase waits for the test database to accept connections
func waitForDatabase(ctx context.Context) error {
	connector, err := testConnector()
	if err != nil {
		return err
	}

	return waitForService(ctx, connector.Verify, 30*time.Second)
}

// cleanupContent removes rows created by integration tests. Every test in
// this package derives its slugs from titles starting with "Integration",
// so the generated slugs share the integration- prefix.
func cleanupContent(ctx context.Context) error {
	db, err := testConnection(ctx)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	cleanupQueries := []string{
		"DELETE FROM posts WHERE slug LIKE 'integration-%'",
		"DELETE FROM drafts WHERE slug LIKE 'integration-%'",
	}

	for _, query := range cleanupQueries {
		if _, err := db.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute cleanup query: %w", err)
		}
	}

	return nil
}
