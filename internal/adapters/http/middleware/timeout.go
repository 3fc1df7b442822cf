package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"net/http"
	"sync"
	"time"
)

// msgTimeout is the body of the 504 written when a request runs out of time.
const msgTimeout = "Request timed out."

// Timeout bounds each request to d. The handler runs on its own goroutine
// against a buffered writer carrying a context with the deadline; whichever
// of "handler finished" and "deadline passed" happens first decides what
// reaches the client. On deadline the client gets a plain-text 504 and
// anything the handler buffered is thrown away. If the client disconnects
// first nothing is written. A non-positive d disables the middleware.
//
// Panics on the handler goroutine are handed back to the serving goroutine
// so an outer Recovery still sees them.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			finished := make(chan any, 1)

			go func() {
				var pv any
				defer func() {
					if v := recover(); v != nil {
						pv = v
					}
					finished <- pv
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case pv := <-finished:
				if pv != nil {
					panic(pv)
				}
				bw.copyTo(w)
			case <-ctx.Done():
				bw.abandon()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					w.Header().Set("Content-Type", "text/plain; charset=utf-8")
					w.WriteHeader(http.StatusGatewayTimeout)
					_, _ = io.WriteString(w, msgTimeout)
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides its fate.
// Once abandoned, further writes fail with http.ErrHandlerTimeout.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	bw.abandoned = true
	bw.mu.Unlock()
}

// copyTo replays the buffered response onto w. Only called after the
// handler goroutine has returned.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if bw.body.Len() > 0 {
		_, _ = w.Write(bw.body.Bytes())
	}
}
