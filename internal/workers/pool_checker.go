package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/logger"
)

// pingTimeout bounds a single health probe against a dependency.
const pingTimeout = 3 * time.Second

// DatabasePinger reports database reachability. Satisfied by *store.DB.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// SessionPinger reports session store reachability. Satisfied by
// *session.Manager.
type SessionPinger interface {
	Ping(ctx context.Context) error
}

// PoolChecker periodically probes the database pool and the session store so
// dependency outages show up in the logs before the first failing request.
type PoolChecker struct {
	db       DatabasePinger
	sessions SessionPinger
	interval time.Duration
	logger   *logger.Logger
}

func NewPoolChecker(db DatabasePinger, sessions SessionPinger, interval time.Duration, log *logger.Logger) *PoolChecker {
	return &PoolChecker{
		db:       db,
		sessions: sessions,
		interval: interval,
		logger:   log,
	}
}

// Run probes both dependencies on every tick until ctx is cancelled.
func (w *PoolChecker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *PoolChecker) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := w.db.PingContext(pingCtx); err != nil {
		w.logger.Warn().Err(err).Msg("database health check failed")
	}
	if err := w.sessions.Ping(pingCtx); err != nil {
		w.logger.Warn().Err(err).Msg("session store health check failed")
	}
}
