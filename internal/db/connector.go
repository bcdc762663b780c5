package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dstore-labs/piiscan/internal/retry"
	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns limits concurrent connections. Scans are
	// single-threaded consumers; a small pool covers enumeration and
	// sampling queries plus label writes.
	DefaultMaxConns = 4

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime keeps connections alive across long sampling
	// runs to avoid reconnection overhead.
	DefaultMaxConnIdleTime = 30 * time.Minute
)

func configurePool(poolConfig *pgxpool.Config) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
}

// Connector establishes the connection pool a scan runs against.
type Connector struct {
	connString    string
	retryExecutor *retry.Executor
}

// NewConnector creates a Connector for the given connection string.
// Retry behavior uses piiscan defaults: DefaultRetryMaxAttempts attempts,
// exponential backoff from DefaultRetryInitialDelay up to DefaultRetryMaxDelay.
func NewConnector(connString string) *Connector {
	classifier := retry.NewPostgreSQLErrorClassifier()
	strategy := retry.NewExponentialBackoff(piiscan.DefaultRetryMaxAttempts,
		retry.WithInitialDelay(piiscan.DefaultRetryInitialDelay),
		retry.WithMaxDelay(piiscan.DefaultRetryMaxDelay),
	)

	return &Connector{
		connString:    connString,
		retryExecutor: retry.NewExecutor(classifier, strategy),
	}
}

// Connect establishes a connection pool with automatic retry on transient
// failures. The returned pool must be closed by the caller.
func (c *Connector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	err := c.retryExecutor.Execute(ctx, func(ctx context.Context) error {
		poolConfig, err := pgxpool.ParseConfig(c.connString)
		if err != nil {
			return fmt.Errorf("failed to parse connection config: %w", err)
		}

		configurePool(poolConfig)

		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return wrapConnectionError(err, poolConfig.ConnConfig.Host, int(poolConfig.ConnConfig.Port), poolConfig.ConnConfig.Database)
		}

		// Test the connection
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return wrapConnectionError(err, poolConfig.ConnConfig.Host, int(poolConfig.ConnConfig.Port), poolConfig.ConnConfig.Database)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", piiscan.ErrConnectionFailed, err)
	}

	return pool, nil
}

// wrapConnectionError rewrites raw pgx connection errors with actionable guidance.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %w`, addr, host, port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`cannot resolve host "%s"

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable
  - Network connection issue

Original error: %w`, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`password authentication failed for database "%s"

Possible causes:
  - Wrong password (check $PGPASSWORD or ~/.pgpass)
  - Wrong username
  - User does not have access to the database

Original error: %w`, database, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`database "%s" does not exist

Check the database name, or list databases with: psql -l

Original error: %w`, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Firewall silently dropping packets

Original error: %w`, addr, err)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		return fmt.Errorf(`SSL/TLS connection error

Possible causes:
  - Server requires SSL but sslmode is wrong
  - Certificate verification failed (try sslmode=require)

Original error: %w`, err)

	default:
		return fmt.Errorf("failed to connect to database: %w", err)
	}
}
