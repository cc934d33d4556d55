package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"content-service/app/config"
	"content-service/app/domain"
	"content-service/app/metrics"
)

// Connector opens a dedicated PostgreSQL connection for each operation.
// There is no connection pool: every repository call acquires its own
// connection and releases it when the statement completes.
type Connector struct {
	dsn    string
	logger *slog.Logger
}

// NewConnector creates a connector from the database configuration
func NewConnector(cfg *config.Config, logger *slog.Logger) *Connector {
	return &Connector{
		dsn:    buildDSN(cfg),
		logger: logger.With("component", "postgres_connector"),
	}
}

// Connect opens a new database connection. A failure here means the
// database is unreachable, so the error wraps domain.ErrDatabaseUnavailable
// for the handlers to translate.
func (c *Connector) Connect(ctx context.Context) (DatabaseIface, error) {
	start := time.Now()

	conn, err := pgx.Connect(ctx, c.dsn)
	if err != nil {
		metrics.RecordDBConnection("error", time.Since(start))
		c.logger.Error("failed to open database connection", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseUnavailable, err)
	}

	metrics.RecordDBConnection("success", time.Since(start))
	return conn, nil
}

// Verify opens and closes a connection to confirm the database is reachable
func (c *Connector) Verify(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := c.Connect(ctx)
	if err != nil {
		return err
	}

	if err := db.Close(ctx); err != nil {
		return fmt.Errorf("failed to close verification connection: %w", err)
	}

	return nil
}

// releaseConnection closes a per-request connection. Close failures are
// logged and swallowed; the statement has already completed.
func releaseConnection(ctx context.Context, db DatabaseIface, logger *slog.Logger) {
	if err := db.Close(ctx); err != nil {
		logger.Warn("failed to close database connection", "error", err)
	}
}

// buildDSN builds the PostgreSQL connection string. With TLS enabled the
// server certificate is verified against the configured root CA bundle;
// otherwise TLS is switched off entirely.
func buildDSN(cfg *config.Config) string {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s",
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
	)

	if cfg.DatabaseSSLEnabled {
		dsn += fmt.Sprintf(" sslmode=verify-full sslrootcert=%s", cfg.DatabaseSSLRootCert)
	} else {
		dsn += " sslmode=disable"
	}

	return dsn
}
