package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-auth-api/internal/logger"
)

// withTimeout bounds the whole downstream pipeline with the configured
// request timeout. On expiry it writes a single 504 and detaches the
// handler's writer, so a handler that finishes late cannot corrupt the
// response. The inner context is cancelled, which releases database leases
// and aborts store round trips.
//
// If the handler started streaming its response before the deadline, it is
// too late for a 504; the middleware then waits for the handler to return
// instead of abandoning a writer that is still in use.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timeout := h.cfg.Server.RequestTimeout
		if timeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		gw := &guardedResponseWriter{rw: w}
		done := make(chan struct{})
		panicChan := make(chan any, 1)

		go func() {
			defer func() {
				if p := recover(); p != nil {
					panicChan <- p
				}
			}()
			next.ServeHTTP(gw, r.WithContext(ctx))
			close(done)
		}()

		select {
		case p := <-panicChan:
			panic(p)
		case <-done:
		case <-ctx.Done():
			if gw.markTimedOut() {
				logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("request timed out")
				writeError(w, r, http.StatusGatewayTimeout, "request timed out")
				return
			}
			// response already started; the writer stays with the handler
			select {
			case p := <-panicChan:
				panic(p)
			case <-done:
			}
		}
	})
}

// guardedResponseWriter owns all access to the underlying ResponseWriter on
// the handler's behalf. Headers are buffered locally and copied through only
// when the handler commits the response, so the 504 path never races the
// handler over the real header map. After markTimedOut it swallows
// everything from the late handler; the 504 the middleware writes directly
// to the underlying writer is the only response the client sees.
type guardedResponseWriter struct {
	rw http.ResponseWriter

	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
	header      http.Header
}

func (w *guardedResponseWriter) Header() http.Header {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.header == nil {
		w.header = make(http.Header)
	}
	return w.header
}

func (w *guardedResponseWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut || w.wroteHeader {
		return
	}
	w.commitHeaderLocked()
	w.rw.WriteHeader(statusCode)
}

func (w *guardedResponseWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(data), nil
	}
	if !w.wroteHeader {
		w.commitHeaderLocked()
	}
	return w.rw.Write(data)
}

// commitHeaderLocked copies the buffered headers onto the real response.
// Caller must hold mu.
func (w *guardedResponseWriter) commitHeaderLocked() {
	w.wroteHeader = true
	dst := w.rw.Header()
	for k, v := range w.header {
		dst[k] = v
	}
}

// markTimedOut flips the writer into swallow mode. It reports false when the
// handler already started the response; then it is too late for a 504 and
// the middleware must wait the handler out instead.
func (w *guardedResponseWriter) markTimedOut() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.wroteHeader {
		return false
	}
	w.timedOut = true
	return true
}
