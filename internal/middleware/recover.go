package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime"
)

// stackSize is the maximum captured stack trace size in bytes.
const stackSize = 4096

// Recover returns middleware that recovers from handler panics.
// The panic is logged with a stack trace and the client receives a plain 500.
// http.ErrAbortHandler passes through untouched, net/http uses it to abort
// quietly.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				stack := make([]byte, stackSize)
				n := runtime.Stack(stack, false)

				log.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(stack[:n])),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				w.WriteHeader(http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
