package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// migrationLockID keys the PostgreSQL advisory lock taken for the duration of
// a migration run. Every instance uses the same key, so concurrent deployments
// apply the schema one at a time instead of racing.
const migrationLockID int64 = 961303218

// Migrate applies all pending schema migrations. It serialises concurrent
// runners with a session-level advisory lock held on a dedicated connection;
// instances that lose the race block until the winner finishes and then see
// an up-to-date schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	// the lock is session-scoped, so it must live on its own connection for
	// the whole run
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("migration error acquiring connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("migration error acquiring advisory lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID)
	}()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
