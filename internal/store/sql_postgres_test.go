package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-api/internal/logger"
)

func newTestPool(t *testing.T, size int, acquireTimeout time.Duration) (*DB, *sql.DB) {
	t.Helper()

	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	conn.SetMaxOpenConns(size)

	return &DB{
		DB:                 conn,
		acquireTimeout:     acquireTimeout,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, conn
}

// NewConnectPostgres opens the pool by driver name, so the pgx stdlib driver
// must be registered by this package's imports.
func TestPgxDriverRegistered(t *testing.T) {
	for _, name := range sql.Drivers() {
		if name == "pgx" {
			return
		}
	}
	t.Fatal(`database/sql driver "pgx" is not registered`)
}

func TestAcquire_WaitsThenFailsWithPoolExhausted(t *testing.T) {
	db, conn := newTestPool(t, 1, 50*time.Millisecond)
	defer conn.Close()

	ctx := context.Background()

	first, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("unexpected error acquiring first lease: %v", err)
	}

	// the single connection is held, so the second acquire must time out
	_, err = db.Acquire(ctx)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}

	first.Release()

	second, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("expected acquire to succeed after release, got %v", err)
	}
	second.Release()
}

func TestAcquire_CallerCancellationIsNotPoolExhaustion(t *testing.T) {
	db, conn := newTestPool(t, 1, time.Second)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.Acquire(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("caller cancellation must not be reported as pool exhaustion: %v", err)
	}
}

func TestDeadlineExpiryMidQueryReleasesLease(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	l := logger.Nop()
	pool := &DB{
		DB:                 conn,
		acquireTimeout:     250 * time.Millisecond,
		logger:             l,
		errorClassificator: NewPostgresErrorClassifier(),
	}
	repo := &userRepository{db: pool, logger: l}

	mock.ExpectQuery("SELECT id, email, password").
		WithArgs("john@example.com").
		WillDelayFor(time.Second).
		WillReturnRows(userRows("uuid-1", "john@example.com", "hash", time.Now()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := repo.FindUserByEmail(ctx, "john@example.com"); err == nil {
		t.Fatal("expected the expired deadline to abort the query")
	}

	// the pool holds exactly one connection, so this acquire can only
	// succeed if the aborted unit of work gave its lease back
	lease, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("expected acquire to succeed after the aborted work released its lease, got %v", err)
	}
	lease.Release()
}

func TestLease_ReleaseIsIdempotent(t *testing.T) {
	db, conn := newTestPool(t, 1, 50*time.Millisecond)
	defer conn.Close()

	lease, err := db.Acquire(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lease.Release()
	lease.Release() // second release must be a no-op

	again, err := db.Acquire(context.Background())
	if err != nil {
		t.Fatalf("expected pool to hold exactly one free connection, got %v", err)
	}
	again.Release()
}
