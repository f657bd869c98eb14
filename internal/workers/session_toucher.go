package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/session"
)

// touchTimeout bounds a single sliding-TTL refresh against the session store.
const touchTimeout = 2 * time.Second

// SessionToucher refreshes session TTLs off the request path. Authenticated
// requests enqueue their token and move on; the worker drains the queue and
// performs the store round trip in the background, so response latency never
// includes the refresh.
type SessionToucher struct {
	manager *session.Manager
	queue   chan string
	logger  *logger.Logger
}

func NewSessionToucher(manager *session.Manager, queueSize int, log *logger.Logger) *SessionToucher {
	return &SessionToucher{
		manager: manager,
		queue:   make(chan string, queueSize),
		logger:  log,
	}
}

// Enqueue schedules a sliding-TTL refresh for the token without blocking.
// When the queue is full the refresh is dropped; the next authenticated
// request for the same session will enqueue another one.
func (w *SessionToucher) Enqueue(token string) bool {
	select {
	case w.queue <- token:
		return true
	default:
		w.logger.Debug().Msg("touch queue full, dropping session refresh")
		return false
	}
}

// Run drains the queue until ctx is cancelled. Refresh failures are logged
// and skipped; an expired or deleted session is not worth reporting.
func (w *SessionToucher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case token := <-w.queue:
			w.touch(token)
		}
	}
}

func (w *SessionToucher) touch(token string) {
	// detached from the request context: the response has already been sent
	ctx, cancel := context.WithTimeout(context.Background(), touchTimeout)
	defer cancel()

	err := w.manager.Touch(ctx, token)
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		w.logger.Warn().Err(err).Msg("session touch failed")
	}
}
