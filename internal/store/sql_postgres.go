package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// DB wraps the standard connection pool with a fixed size and an acquire
// timeout. Repositories check a connection out per unit of work via [DB.Acquire]
// instead of running queries on the shared pool handle, so a saturated pool
// fails fast with [ErrPoolExhausted] rather than queueing requests without bound.
type DB struct {
	*sql.DB
	acquireTimeout     time.Duration
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	// the pool size is fixed at startup; leases never exceed it
	conn.SetMaxOpenConns(cfg.PoolSize)
	conn.SetMaxIdleConns(cfg.PoolSize)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Int("pool_size", cfg.PoolSize).Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		acquireTimeout:     cfg.AcquireTimeout,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// Acquire checks a connection out of the pool, waiting at most the configured
// acquire timeout for one to become free. When every connection is busy for
// the whole window it returns [ErrPoolExhausted]; cancellation of the caller's
// context is reported as-is.
func (db *DB) Acquire(ctx context.Context) (*Lease, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, db.acquireTimeout)
	defer cancel()

	conn, err := db.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrPoolExhausted
		}
		return nil, fmt.Errorf("error acquiring database connection: %w", err)
	}

	return &Lease{conn: conn}, nil
}

// Lease is a single pooled connection checked out for one unit of work.
// Release returns it to the pool; releasing twice is safe.
type Lease struct {
	conn *sql.Conn
	once sync.Once
}

func (l *Lease) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return l.conn.QueryRowContext(ctx, query, args...)
}

func (l *Lease) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return l.conn.QueryContext(ctx, query, args...)
}

func (l *Lease) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return l.conn.ExecContext(ctx, query, args...)
}

// Release returns the connection to the pool. Idempotent.
func (l *Lease) Release() {
	l.once.Do(func() {
		_ = l.conn.Close()
	})
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
