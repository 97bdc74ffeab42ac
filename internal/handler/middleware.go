package handler

import (
	"net/http"
	"time"

	"studio-site/internal/domain"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request through Observability.API
func RequestLogger(obs domain.Observability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			obs.WithContext(r.Context()).API(r.Method, r.URL.Path, r.RemoteAddr, status, time.Since(start))
		})
	}
}
