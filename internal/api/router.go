// Package api serves the opt-in debug listener. The application itself
// has no network surface; this router only exposes process health and
// prometheus metrics for whoever is poking at the demo.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JosiahVarughese/mojo-social/internal/metrics"
)

// NewRouter builds the debug mux: /health and /metrics.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	return r
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Serve runs the debug listener until the process exits. Failures are
// logged, not fatal: the demo works fine without its debug port.
func Serve(addr string, log *slog.Logger) {
	srv := &http.Server{Addr: addr, Handler: NewRouter()}
	log.Info("debug listener starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("debug listener", "err", err)
	}
}
